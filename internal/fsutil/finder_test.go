package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/predictgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesBySuffix(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"b/b.proj.hcl":      "",
		"a.proj.hcl":        "",
		"a/deep/c.proj.hcl": "",
		"common.hcl":        "",
		".git/x.proj.hcl":   "",
	})

	files, err := FindFilesBySuffix(root, ".proj.hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.proj.hcl"),
		filepath.Join(root, "a", "deep", "c.proj.hcl"),
		filepath.Join(root, "b", "b.proj.hcl"),
	}, files)

	assert.Panics(t, func() { _, _ = FindFilesBySuffix(root, "") })
}

func TestExpandPaths(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"repo/app/app.proj.hcl": "",
		"repo/lib/lib.proj.hcl": "",
		"empty/readme.md":       "",
	})
	missing := filepath.Join(root, "missing.proj.hcl")

	paths, err := ExpandPaths([]string{missing, filepath.Join(root, "repo")}, ".proj.hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		missing,
		filepath.Join(root, "repo", "app", "app.proj.hcl"),
		filepath.Join(root, "repo", "lib", "lib.proj.hcl"),
	}, paths)

	_, err = ExpandPaths([]string{filepath.Join(root, "empty")}, ".proj.hcl")
	assert.ErrorContains(t, err, "no *.proj.hcl files found")
}
