package executor

import (
	"context"
	"fmt"

	"github.com/specialistvlad/predictgo/internal/ctxlog"
	"github.com/specialistvlad/predictgo/internal/prediction"
	"github.com/specialistvlad/predictgo/internal/predictor"
	"github.com/specialistvlad/predictgo/internal/projectgraph"
	"golang.org/x/sync/errgroup"
)

// GraphExecutor runs project predictors and graph predictors across a
// project graph.
type GraphExecutor struct {
	inner           *ProjectExecutor
	graphPredictors []predictor.GraphPredictor
	parallelism     int
	opts            Options
}

// NewGraphExecutor creates an executor. Nil predictors panic.
func NewGraphExecutor(projectPredictors []predictor.ProjectPredictor, graphPredictors []predictor.GraphPredictor, opts Options) *GraphExecutor {
	for i, p := range graphPredictors {
		if p == nil {
			panic(fmt.Sprintf("executor: graph predictor %d is nil", i))
		}
	}
	innerOpts := opts
	innerOpts.Parallelism = 1
	return &GraphExecutor{
		inner:           NewProjectExecutor(projectPredictors, innerOpts),
		graphPredictors: graphPredictors,
		parallelism:     opts.parallelism(),
		opts:            opts,
	}
}

// PredictInputsAndOutputs returns one bundle per node of g, including nodes
// nothing was predicted for.
func (e *GraphExecutor) PredictInputsAndOutputs(ctx context.Context, g *projectgraph.Graph) (prediction.GraphBundle, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Predicting project graph.", "projects", g.Len(), "parallelism", e.parallelism)

	// Every node gets its collector before anything runs, so graph
	// predictors can report into any dependency.
	gc := prediction.NewGraphCollector(g.ProjectPaths(), e.opts.Comparer)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.parallelism)
	for _, n := range g.Nodes() {
		n := n
		eg.Go(func() error {
			if err := e.predictNode(gctx, gc, n); err != nil {
				return fmt.Errorf("project %s: %w", n.Path(), err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	bundles := gc.Bundles()
	logger.Info("Project graph predicted.", "projects", len(bundles))
	return bundles, nil
}

func (e *GraphExecutor) predictNode(ctx context.Context, gc *prediction.GraphCollector, n *projectgraph.Node) error {
	ctx, logger := ctxlog.With(ctx, "project", n.Path())
	logger.Debug("Worker picked up project.")

	if err := e.inner.PredictInto(ctx, n.Project, gc.For(n.Path())); err != nil {
		return err
	}
	for _, p := range e.graphPredictors {
		if err := p.PredictInputsAndOutputs(ctx, n, predictor.NewGraphReporter(gc, p.Name())); err != nil {
			return fmt.Errorf("graph predictor %s failed: %w", p.Name(), err)
		}
	}

	logger.Debug("Project predicted.")
	return nil
}
