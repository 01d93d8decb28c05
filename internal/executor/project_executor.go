package executor

import (
	"context"
	"fmt"

	"github.com/specialistvlad/predictgo/internal/ctxlog"
	"github.com/specialistvlad/predictgo/internal/prediction"
	"github.com/specialistvlad/predictgo/internal/predictor"
	"github.com/specialistvlad/predictgo/internal/project"
	"golang.org/x/sync/errgroup"
)

// ProjectExecutor runs a fixed, ordered set of project predictors.
type ProjectExecutor struct {
	predictors  []predictor.ProjectPredictor
	parallelism int
	opts        Options
}

// NewProjectExecutor creates an executor. A nil predictor is a wiring
// mistake and panics.
func NewProjectExecutor(predictors []predictor.ProjectPredictor, opts Options) *ProjectExecutor {
	for i, p := range predictors {
		if p == nil {
			panic(fmt.Sprintf("executor: predictor %d is nil", i))
		}
	}
	return &ProjectExecutor{
		predictors:  predictors,
		parallelism: opts.parallelism(),
		opts:        opts,
	}
}

// PredictInputsAndOutputs runs every predictor against proj and returns
// what they reported.
func (e *ProjectExecutor) PredictInputsAndOutputs(ctx context.Context, proj *project.Project) (*prediction.Bundle, error) {
	c := prediction.NewCollector(proj.Dir, e.opts.Comparer)
	if err := e.PredictInto(ctx, proj, c); err != nil {
		return nil, err
	}
	return c.Bundle(), nil
}

// PredictInto runs every predictor against proj, reporting into c.
func (e *ProjectExecutor) PredictInto(ctx context.Context, proj *project.Project, c *prediction.Collector) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Running project predictors.", "project", proj.FullPath, "predictors", len(e.predictors), "parallelism", e.parallelism)

	if e.parallelism == 1 || len(e.predictors) < 2 {
		for _, p := range e.predictors {
			if err := run(ctx, p, proj, c); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for _, p := range e.predictors {
		p := p
		g.Go(func() error {
			return run(gctx, p, proj, c)
		})
	}
	return g.Wait()
}

func run(ctx context.Context, p predictor.ProjectPredictor, proj *project.Project, c *prediction.Collector) error {
	if err := p.PredictInputsAndOutputs(ctx, proj, predictor.NewReporter(c, p.Name())); err != nil {
		return fmt.Errorf("predictor %s failed: %w", p.Name(), err)
	}
	return nil
}
