package predictor

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/predictgo/internal/pathid"
	"github.com/specialistvlad/predictgo/internal/prediction"
	"github.com/specialistvlad/predictgo/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_AttributesEveryCategory(t *testing.T) {
	dir := t.TempDir()
	c := prediction.NewCollector(dir, pathid.Default)
	r := NewReporter(c, "Mine")

	r.ReportInputFile("in.txt")
	r.ReportInputDirectory("src")
	r.ReportOutputFile("out/app.bin")
	r.ReportOutputDirectory("out")

	b := c.Bundle()
	require.Len(t, b.InputFiles, 1)
	assert.Equal(t, filepath.Join(dir, "in.txt"), b.InputFiles[0].Path)
	assert.Equal(t, []string{"Mine"}, b.InputFiles[0].PredictedBy)
	require.Len(t, b.InputDirectories, 1)
	require.Len(t, b.OutputFiles, 1)
	require.Len(t, b.OutputDirectories, 1)
	assert.Equal(t, filepath.Join(dir, "out"), b.OutputDirectories[0].Path)
}

func TestGraphReporter_RoutesByProject(t *testing.T) {
	root := t.TempDir()
	app := project.New(filepath.Join(root, "app", "app.proj.hcl"), nil)
	lib := project.New(filepath.Join(root, "lib", "lib.proj.hcl"), nil)
	gc := prediction.NewGraphCollector([]string{app.FullPath, lib.FullPath}, pathid.Default)
	r := NewGraphReporter(gc, "Graph")

	r.ReportInputFile(app, "a.txt")
	r.ReportInputDirectory(app, "../lib/bin")
	r.ReportOutputFile(lib, "lib.bin")
	r.ReportOutputDirectory(lib, "bin")

	bundles := gc.Bundles()
	appBundle := bundles[app.FullPath]
	libBundle := bundles[lib.FullPath]
	require.NotNil(t, appBundle)
	require.NotNil(t, libBundle)

	assert.Equal(t, 2, appBundle.Len())
	assert.Equal(t, filepath.Join(root, "lib", "bin"), appBundle.InputDirectories[0].Path)
	assert.Equal(t, 2, libBundle.Len())
	assert.Equal(t, filepath.Join(root, "lib", "lib.bin"), libBundle.OutputFiles[0].Path)
	assert.Equal(t, []string{"Graph"}, libBundle.OutputFiles[0].PredictedBy)

	stranger := project.New(filepath.Join(root, "other", "other.proj.hcl"), nil)
	assert.Panics(t, func() { r.ReportInputFile(stranger, "x") })
}

func TestFuncAdapters(t *testing.T) {
	f := Func{PredictorName: "F"}
	g := GraphFunc{PredictorName: "G"}
	var _ ProjectPredictor = f
	var _ GraphPredictor = g
	assert.Equal(t, "F", f.Name())
	assert.Equal(t, "G", g.Name())
}
