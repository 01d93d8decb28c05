package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/predictgo/internal/copytask"
	"github.com/specialistvlad/predictgo/internal/hcl_adapter"
	"github.com/specialistvlad/predictgo/internal/prediction"
	"github.com/specialistvlad/predictgo/internal/registry"
	"github.com/specialistvlad/predictgo/internal/testutil"
	"github.com/specialistvlad/predictgo/modules/copy_to_output"
	"github.com/specialistvlad/predictgo/modules/item_types"
	"github.com/specialistvlad/predictgo/modules/output_directory"
	"github.com/specialistvlad/predictgo/modules/project_file"
	"github.com/specialistvlad/predictgo/modules/reference_outputs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var fixture = map[string]string{
	"app/app.proj.hcl": `
project {
  default_targets = ["Build"]
  references      = ["../lib/lib.proj.hcl"]
}

property "OutDir" {
  value = "bin/"
}

item "Compile" {
  include = "main.go"
}

target "Build" {
  task "Copy" {
    parameters = {
      SourceFiles       = "@(Compile)"
      DestinationFolder = "$(OutDir)"
    }
  }
}
`,
	"app/main.go": "package main",
	"lib/lib.proj.hcl": `
property "OutDir" {
  value = "out/"
}

item "Content" {
  include  = "data.json"
  metadata = { CopyToOutputDirectory = "Always" }
}
`,
	"lib/data.json": "{}",
}

// setupAppTest creates an app over the fixture with logs captured in the
// returned buffer.
func setupAppTest(t *testing.T, cfg Config, modules ...registry.Module) (*App, *bytes.Buffer, *testutil.SafeBuffer, string) {
	t.Helper()
	root := testutil.WriteFiles(t, fixture)
	if len(cfg.ProjectPaths) == 0 {
		cfg.ProjectPaths = []string{filepath.Join(root, "app", "app.proj.hcl")}
	}
	cfg.LogLevel = "debug"
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	loader := hcl_adapter.NewLoader(validated.GlobalProperties, validated.Comparer())
	a := NewApp(out, logs, validated, loader, modules...)

	t.Cleanup(func() {
		if os.Getenv("PREDICTGO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs, root
}

type itemView struct {
	path string
	by   []string
}

func view(items []prediction.Item) []itemView {
	out := make([]itemView, len(items))
	for i, it := range items {
		out[i] = itemView{it.Path, it.PredictedBy}
	}
	return out
}

func TestRun_JSON(t *testing.T) {
	a, out, logs, root := setupAppTest(t, Config{})
	require.NoError(t, a.Run(context.Background()))

	var report Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Projects, 2)

	lib, app := report.Projects[0], report.Projects[1]
	assert.Equal(t, filepath.Join(root, "lib", "lib.proj.hcl"), lib.Project, "dependencies come first")
	assert.Equal(t, filepath.Join(root, "app", "app.proj.hcl"), app.Project)

	appDir := filepath.Join(root, "app")
	libDir := filepath.Join(root, "lib")
	assert.Equal(t, []itemView{
		{filepath.Join(appDir, "app.proj.hcl"), []string{project_file.Name}},
		{filepath.Join(appDir, "main.go"), []string{copytask.PredictorName, item_types.Name}},
		{filepath.Join(libDir, "data.json"), []string{copy_to_output.Name}},
	}, view(app.InputFiles))
	assert.Equal(t, []itemView{
		{filepath.Join(libDir, "out"), []string{reference_outputs.Name}},
	}, view(app.InputDirectories))
	assert.Equal(t, []itemView{
		{filepath.Join(appDir, "bin", "data.json"), []string{copy_to_output.Name}},
	}, view(app.OutputFiles))
	assert.Equal(t, []itemView{
		{filepath.Join(appDir, "bin"), []string{copytask.PredictorName, output_directory.Name}},
	}, view(app.OutputDirectories))

	assert.Equal(t, []itemView{
		{filepath.Join(libDir, "data.json"), []string{item_types.Name}},
		{filepath.Join(libDir, "lib.proj.hcl"), []string{project_file.Name}},
	}, view(lib.InputFiles))
	assert.Equal(t, []itemView{
		{filepath.Join(libDir, "out"), []string{output_directory.Name, reference_outputs.Name}},
	}, view(lib.OutputDirectories))

	assert.Contains(t, logs.String(), "Project graph loaded.")
}

func TestRun_YAML(t *testing.T) {
	a, out, _, root := setupAppTest(t, Config{OutputFormat: "YAML"})
	require.NoError(t, a.Run(context.Background()))

	var report Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Projects, 2)
	assert.Equal(t, filepath.Join(root, "app", "app.proj.hcl"), report.Projects[1].Project)
	assert.Len(t, report.Projects[1].InputFiles, 3)
	assert.Contains(t, out.String(), "inputFiles:")
}

func TestRun_HCL(t *testing.T) {
	a, out, _, root := setupAppTest(t, Config{OutputFormat: FormatHCL})
	require.NoError(t, a.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, `project "`+filepath.Join(root, "app", "app.proj.hcl")+`" {`)
	assert.Contains(t, text, `output_directory "`+filepath.Join(root, "app", "bin")+`" {`)
	assert.Contains(t, text, `predicted_by = ["CopyTaskPredictor", "OutputDirectoryPredictor"]`)
}

func TestRun_GlobalProperties(t *testing.T) {
	a, out, _, _ := setupAppTest(t, Config{
		GlobalProperties: map[string]string{"OutDir": "custom/"},
	}, &output_directory.Module{})
	require.NoError(t, a.Run(context.Background()))

	var report Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	for _, pr := range report.Projects {
		require.Len(t, pr.OutputDirectories, 1)
		assert.Equal(t, filepath.Join(filepath.Dir(pr.Project), "custom"), pr.OutputDirectories[0].Path)
	}
	assert.Len(t, report.Projects, 2)
}

func TestRun_MissingProject(t *testing.T) {
	a, out, _, root := setupAppTest(t, Config{})
	a.config.ProjectPaths = []string{filepath.Join(root, "missing.proj.hcl")}

	err := a.Run(context.Background())
	assert.ErrorContains(t, err, "failed to load project graph")
	assert.Zero(t, out.Len())
}

func TestRun_DirectoryProjectPath(t *testing.T) {
	a, out, _, root := setupAppTest(t, Config{})
	a.config.ProjectPaths = []string{root}
	require.NoError(t, a.Run(context.Background()))

	var report Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Projects, 2)
	assert.Equal(t, filepath.Join(root, "lib", "lib.proj.hcl"), report.Projects[0].Project)
}

func TestRun_EmptyDirectory(t *testing.T) {
	a, _, _, _ := setupAppTest(t, Config{})
	a.config.ProjectPaths = []string{t.TempDir()}

	err := a.Run(context.Background())
	assert.ErrorContains(t, err, "failed to resolve project paths")
}

func TestNewApp_RegistersCoreModules(t *testing.T) {
	a, _, _, _ := setupAppTest(t, Config{})
	assert.Len(t, a.Registry().ProjectPredictors(), 4)
	assert.Len(t, a.Registry().GraphPredictors(), 2)
}

type emptyModule struct{}

func (emptyModule) Register(*registry.Registry) {}

func TestNewApp_PanicsWithoutPredictors(t *testing.T) {
	assert.Panics(t, func() {
		setupAppTest(t, Config{}, emptyModule{})
	})
}
