package item_types

import (
	"context"

	"github.com/specialistvlad/predictgo/internal/predictor"
	"github.com/specialistvlad/predictgo/internal/project"
	"github.com/specialistvlad/predictgo/internal/registry"
)

// Name is the attribution recorded by this predictor.
const Name = "ItemTypesPredictor"

// InputItemTypes are the item types whose items a build reads.
var InputItemTypes = []string{"Compile", "Content", "EmbeddedResource", "None"}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Predictor reports the items of InputItemTypes as input files.
type Predictor struct{}

// Name implements predictor.ProjectPredictor.
func (Predictor) Name() string { return Name }

// PredictInputsAndOutputs implements predictor.ProjectPredictor.
func (Predictor) PredictInputsAndOutputs(_ context.Context, proj *project.Project, r predictor.Reporter) error {
	for _, itemType := range InputItemTypes {
		for _, item := range proj.Items(itemType) {
			r.ReportInputFile(item.FullPath())
		}
	}
	return nil
}

// Register registers the predictor with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProjectPredictor(Predictor{})
}
