package copy_to_output

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/predictgo/internal/pathid"
	"github.com/specialistvlad/predictgo/internal/predictor"
	"github.com/specialistvlad/predictgo/internal/project"
	"github.com/specialistvlad/predictgo/internal/projectgraph"
	"github.com/specialistvlad/predictgo/internal/registry"
)

// Name is the attribution recorded by this predictor.
const Name = "CopyToOutputDirectoryGraphPredictor"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Predictor follows items of referenced projects marked with
// CopyToOutputDirectory into the referencing project's OutDir.
type Predictor struct{}

// Name implements predictor.GraphPredictor.
func (Predictor) Name() string { return Name }

// PredictInputsAndOutputs implements predictor.GraphPredictor.
func (Predictor) PredictInputsAndOutputs(_ context.Context, node *projectgraph.Node, r predictor.GraphReporter) error {
	outDir, _ := node.Project.Property("OutDir")
	outDir = strings.TrimSpace(outDir)
	if outDir != "" {
		outDir = pathid.Canonicalize(outDir, node.Project.Dir)
	}

	for _, dep := range node.Dependencies() {
		for _, itemType := range dep.Project.ItemTypes() {
			for _, item := range dep.Project.Items(itemType) {
				if !copied(item) {
					continue
				}
				r.ReportInputFile(node.Project, item.FullPath())
				if outDir != "" {
					r.ReportOutputFile(node.Project, filepath.Join(outDir, destination(item)))
				}
			}
		}
	}
	return nil
}

func copied(item *project.Item) bool {
	switch strings.ToLower(strings.TrimSpace(item.Metadata("CopyToOutputDirectory"))) {
	case "always", "preservenewest":
		return true
	default:
		return false
	}
}

// destination is the item's path relative to an output directory: its
// TargetPath or Link when set, otherwise RecursiveDir plus file name.
func destination(item *project.Item) string {
	for _, name := range []string{"TargetPath", "Link"} {
		if v := strings.TrimSpace(item.Metadata(name)); v != "" {
			return pathid.NormalizeSeparators(v)
		}
	}
	return pathid.NormalizeSeparators(item.Metadata("RecursiveDir")) + item.Metadata("Filename") + item.Metadata("Extension")
}

// Register registers the predictor with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterGraphPredictor(Predictor{})
}
