package copy_task

import (
	"github.com/specialistvlad/predictgo/internal/copytask"
	"github.com/specialistvlad/predictgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the Copy task predictor with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProjectPredictor(copytask.Predictor{})
}
