package project_file

import (
	"context"

	"github.com/specialistvlad/predictgo/internal/predictor"
	"github.com/specialistvlad/predictgo/internal/project"
	"github.com/specialistvlad/predictgo/internal/registry"
)

// Name is the attribution recorded by this predictor.
const Name = "ProjectFilePredictor"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Predictor reports the project file and every file it imports as inputs.
type Predictor struct{}

// Name implements predictor.ProjectPredictor.
func (Predictor) Name() string { return Name }

// PredictInputsAndOutputs implements predictor.ProjectPredictor.
func (Predictor) PredictInputsAndOutputs(_ context.Context, proj *project.Project, r predictor.Reporter) error {
	r.ReportInputFile(proj.FullPath)
	for _, imp := range proj.Imports {
		r.ReportInputFile(imp)
	}
	return nil
}

// Register registers the predictor with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProjectPredictor(Predictor{})
}
