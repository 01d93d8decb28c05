package predictor

import (
	"context"

	"github.com/specialistvlad/predictgo/internal/project"
	"github.com/specialistvlad/predictgo/internal/projectgraph"
)

// Reporter receives predictions for a single project. Relative paths are
// resolved against the project's directory.
type Reporter interface {
	ReportInputFile(path string)
	ReportInputDirectory(path string)
	ReportOutputFile(path string)
	ReportOutputDirectory(path string)
}

// GraphReporter receives predictions for any project of the graph. Each
// report lands in the collector of the project it names.
type GraphReporter interface {
	ReportInputFile(proj *project.Project, path string)
	ReportInputDirectory(proj *project.Project, path string)
	ReportOutputFile(proj *project.Project, path string)
	ReportOutputDirectory(proj *project.Project, path string)
}

// ProjectPredictor predicts the inputs and outputs of one project.
// Implementations must not mutate the project and must be safe to call
// concurrently with other predictors on the same project.
type ProjectPredictor interface {
	Name() string
	PredictInputsAndOutputs(ctx context.Context, proj *project.Project, r Reporter) error
}

// GraphPredictor predicts inputs and outputs with access to a node's
// dependencies and dependents.
type GraphPredictor interface {
	Name() string
	PredictInputsAndOutputs(ctx context.Context, node *projectgraph.Node, r GraphReporter) error
}

// Func adapts a function to ProjectPredictor.
type Func struct {
	PredictorName string
	Fn            func(ctx context.Context, proj *project.Project, r Reporter) error
}

// Name implements ProjectPredictor.
func (f Func) Name() string { return f.PredictorName }

// PredictInputsAndOutputs implements ProjectPredictor.
func (f Func) PredictInputsAndOutputs(ctx context.Context, proj *project.Project, r Reporter) error {
	return f.Fn(ctx, proj, r)
}

// GraphFunc adapts a function to GraphPredictor.
type GraphFunc struct {
	PredictorName string
	Fn            func(ctx context.Context, node *projectgraph.Node, r GraphReporter) error
}

// Name implements GraphPredictor.
func (f GraphFunc) Name() string { return f.PredictorName }

// PredictInputsAndOutputs implements GraphPredictor.
func (f GraphFunc) PredictInputsAndOutputs(ctx context.Context, node *projectgraph.Node, r GraphReporter) error {
	return f.Fn(ctx, node, r)
}
