package output_directory

import (
	"context"
	"strings"

	"github.com/specialistvlad/predictgo/internal/predictor"
	"github.com/specialistvlad/predictgo/internal/project"
	"github.com/specialistvlad/predictgo/internal/registry"
)

// Name is the attribution recorded by this predictor.
const Name = "OutputDirectoryPredictor"

// Properties are the properties whose values name output directories.
var Properties = []string{"OutDir", "OutputPath", "IntermediateOutputPath"}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Predictor reports the directories a build writes its outputs into.
type Predictor struct{}

// Name implements predictor.ProjectPredictor.
func (Predictor) Name() string { return Name }

// PredictInputsAndOutputs implements predictor.ProjectPredictor.
func (Predictor) PredictInputsAndOutputs(_ context.Context, proj *project.Project, r predictor.Reporter) error {
	for _, name := range Properties {
		if v, ok := proj.Property(name); ok && strings.TrimSpace(v) != "" {
			r.ReportOutputDirectory(strings.TrimSpace(v))
		}
	}
	return nil
}

// Register registers the predictor with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProjectPredictor(Predictor{})
}
