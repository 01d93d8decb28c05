package reference_outputs

import (
	"context"
	"strings"

	"github.com/specialistvlad/predictgo/internal/pathid"
	"github.com/specialistvlad/predictgo/internal/predictor"
	"github.com/specialistvlad/predictgo/internal/projectgraph"
	"github.com/specialistvlad/predictgo/internal/registry"
)

// Name is the attribution recorded by this predictor.
const Name = "ProjectReferenceOutputsGraphPredictor"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Predictor reports the output directory of every referenced project as an
// input directory of the referencing project, and as an output directory of
// the referenced one.
type Predictor struct{}

// Name implements predictor.GraphPredictor.
func (Predictor) Name() string { return Name }

// PredictInputsAndOutputs implements predictor.GraphPredictor.
func (Predictor) PredictInputsAndOutputs(_ context.Context, node *projectgraph.Node, r predictor.GraphReporter) error {
	for _, dep := range node.Dependencies() {
		outDir, ok := dep.Project.Property("OutDir")
		if !ok || strings.TrimSpace(outDir) == "" {
			continue
		}
		// Anchor to the dependency; the reporter would resolve against node.
		full := pathid.Canonicalize(strings.TrimSpace(outDir), dep.Project.Dir)
		r.ReportInputDirectory(node.Project, full)
		r.ReportOutputDirectory(dep.Project, full)
	}
	return nil
}

// Register registers the predictor with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterGraphPredictor(Predictor{})
}
