package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/predictgo/internal/ctxlog"
	"github.com/specialistvlad/predictgo/internal/predictor"
)

// Module is the interface that all predictor modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered project and graph predictors for a single
// application instance.
type Registry struct {
	projectPredictors []predictor.ProjectPredictor
	graphPredictors   []predictor.GraphPredictor
	names             map[string]struct{}
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// FromModules creates a registry populated by every module, in order.
func FromModules(modules ...Module) *Registry {
	r := New()
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

func (r *Registry) claim(name string) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		panic("predictor registered without a name")
	}
	if _, exists := r.names[key]; exists {
		panic(fmt.Sprintf("predictor with name '%s' already registered", name))
	}
	r.names[key] = struct{}{}
}

// RegisterProjectPredictor adds a project predictor. Names must be unique
// across both predictor kinds.
func (r *Registry) RegisterProjectPredictor(p predictor.ProjectPredictor) {
	r.claim(p.Name())
	r.projectPredictors = append(r.projectPredictors, p)
}

// RegisterGraphPredictor adds a graph predictor.
func (r *Registry) RegisterGraphPredictor(p predictor.GraphPredictor) {
	r.claim(p.Name())
	r.graphPredictors = append(r.graphPredictors, p)
}

// ProjectPredictors returns the project predictors in registration order.
func (r *Registry) ProjectPredictors() []predictor.ProjectPredictor {
	return r.projectPredictors
}

// GraphPredictors returns the graph predictors in registration order.
func (r *Registry) GraphPredictors() []predictor.GraphPredictor {
	return r.graphPredictors
}

// Validate checks that the registry can produce predictions at all.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if len(r.projectPredictors) == 0 && len(r.graphPredictors) == 0 {
		return fmt.Errorf("no predictors registered")
	}
	logger.Debug("Registry validation passed.",
		"project_predictors", len(r.projectPredictors),
		"graph_predictors", len(r.graphPredictors),
	)
	return nil
}
