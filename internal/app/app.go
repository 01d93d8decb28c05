package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/predictgo/internal/ctxlog"
	"github.com/specialistvlad/predictgo/internal/executor"
	"github.com/specialistvlad/predictgo/internal/fsutil"
	"github.com/specialistvlad/predictgo/internal/projectgraph"
	"github.com/specialistvlad/predictgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loader   projectgraph.ProjectLoader
	config   *Config
}

// NewApp is the constructor for the main application. Predictions are
// written to outW and logs to logW. Without modules the core modules are
// registered.
func NewApp(outW, logW io.Writer, cfg *Config, loader projectgraph.ProjectLoader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.FromModules(modules...)
	logger.Debug("All predictor modules registered.", "count", len(modules))

	if err := reg.Validate(ctx); err != nil {
		// A registry without predictors is a programmer error.
		panic(err)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loader:   loader,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// ProjectFileSuffix names the files searched for when a project path is a
// directory.
const ProjectFileSuffix = ".proj.hcl"

// Run loads the project graph, predicts every project and writes the
// result in the configured format.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	entries, err := fsutil.ExpandPaths(a.config.ProjectPaths, ProjectFileSuffix)
	if err != nil {
		return fmt.Errorf("failed to resolve project paths: %w", err)
	}

	comparer := a.config.Comparer()
	graph, err := projectgraph.Load(ctx, a.loader, comparer, entries...)
	if err != nil {
		return fmt.Errorf("failed to load project graph: %w", err)
	}
	a.logger.Info("Project graph loaded.", "projects", graph.Len(), "entries", len(graph.Entries()))

	exec := executor.NewGraphExecutor(
		a.registry.ProjectPredictors(),
		a.registry.GraphPredictors(),
		executor.Options{Parallelism: a.config.Parallelism, Comparer: comparer},
	)
	bundles, err := exec.PredictInputsAndOutputs(ctx, graph)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	if err := encode(a.outW, a.config.OutputFormat, newReport(graph, bundles)); err != nil {
		return fmt.Errorf("failed to write predictions: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}
