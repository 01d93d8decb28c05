package copy_to_output

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/predictgo/internal/hcl_adapter"
	"github.com/specialistvlad/predictgo/internal/pathid"
	"github.com/specialistvlad/predictgo/internal/prediction"
	"github.com/specialistvlad/predictgo/internal/predictor"
	"github.com/specialistvlad/predictgo/internal/projectgraph"
	"github.com/specialistvlad/predictgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictor(t *testing.T) {
	ctx, _ := testutil.Context(t)
	root := testutil.WriteFiles(t, map[string]string{
		"app/app.proj.hcl": `
project {
  references = ["../lib/lib.proj.hcl"]
}

property "OutDir" {
  value = "out/"
}
`,
		"lib/lib.proj.hcl": `
item "Content" {
  include  = "data/**/*.json"
  metadata = { CopyToOutputDirectory = "PreserveNewest" }
}

item "None" {
  include  = "notes.txt"
  metadata = { CopyToOutputDirectory = "Never" }
}

item "None" {
  include  = "license.txt"
  metadata = { CopyToOutputDirectory = "always", Link = "legal/LICENSE" }
}
`,
		"lib/data/a.json":        "{}",
		"lib/data/nested/b.json": "{}",
	})

	g, err := projectgraph.Load(ctx, hcl_adapter.NewLoader(nil, pathid.Default), pathid.Default, filepath.Join(root, "app", "app.proj.hcl"))
	require.NoError(t, err)
	gc := prediction.NewGraphCollector(g.ProjectPaths(), pathid.Default)
	r := predictor.NewGraphReporter(gc, Name)

	for _, n := range g.Nodes() {
		require.NoError(t, Predictor{}.PredictInputsAndOutputs(ctx, n, r))
	}

	bundles := gc.Bundles()
	app := bundles[filepath.Join(root, "app", "app.proj.hcl")]
	lib := bundles[filepath.Join(root, "lib", "lib.proj.hcl")]

	var inputs, outputs []string
	for _, item := range app.InputFiles {
		inputs = append(inputs, item.Path)
	}
	for _, item := range app.OutputFiles {
		outputs = append(outputs, item.Path)
	}
	assert.Equal(t, []string{
		filepath.Join(root, "lib", "data", "a.json"),
		filepath.Join(root, "lib", "data", "nested", "b.json"),
		filepath.Join(root, "lib", "license.txt"),
	}, inputs)
	assert.Equal(t, []string{
		filepath.Join(root, "app", "out", "a.json"),
		filepath.Join(root, "app", "out", "legal", "LICENSE"),
		filepath.Join(root, "app", "out", "nested", "b.json"),
	}, outputs)
	assert.Zero(t, lib.Len())
}
