package targets

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/predictgo/internal/expr"
	"github.com/specialistvlad/predictgo/internal/project"
	"github.com/specialistvlad/predictgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records how often each expression is expanded.
type countingSource struct {
	*project.Project
	expansions map[string]int
}

func (c *countingSource) ExpandString(s string) (string, error) {
	c.expansions[s]++
	return c.Project.ExpandString(s)
}

func newProject(t *testing.T, targets ...*project.Target) *project.Project {
	t.Helper()
	proj := project.New(filepath.Join(t.TempDir(), "app.proj.hcl"), nil)
	for _, tg := range targets {
		if tg.File == "" {
			tg.File = proj.FullPath
		}
		proj.AddTarget(tg)
	}
	return proj
}

func TestResolve_DirectClosure(t *testing.T) {
	ctx, _ := testutil.Context(t)
	proj := newProject(t,
		&project.Target{Name: "Build", DependsOn: "Compile; $(ExtraDeps)"},
		&project.Target{Name: "Compile", DependsOn: "Restore"},
		&project.Target{Name: "Restore"},
		&project.Target{Name: "Package"},
		&project.Target{Name: "Sign"},
	)
	proj.SetProperty("ExtraDeps", "sign;Missing")

	active, err := Resolve(ctx, proj, []string{"build"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Build", "Compile", "Restore", "Sign"}, active.Names())
	assert.True(t, active.Contains(" COMPILE "))
	assert.False(t, active.Contains("Package"))
	assert.False(t, active.Contains("Missing"), "undeclared names are ignored")
	assert.Equal(t, 4, active.Len())
	assert.Len(t, active.Targets(), 4)
}

func TestResolve_CycleSafety(t *testing.T) {
	ctx, _ := testutil.Context(t)
	proj := newProject(t,
		&project.Target{Name: "A", DependsOn: "B"},
		&project.Target{Name: "B", DependsOn: "C;A"},
		&project.Target{Name: "C", DependsOn: "A;B"},
	)
	src := &countingSource{Project: proj, expansions: make(map[string]int)}

	active, err := Resolve(ctx, src, []string{"A", "a", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, active.Names())
	for expression, n := range src.expansions {
		assert.Equal(t, 1, n, "depends_on %q expanded more than once", expression)
	}
}

func TestResolve_Hooks(t *testing.T) {
	ctx, _ := testutil.Context(t)
	proj := newProject(t,
		// Hooks onto a target that only becomes active in a later pass.
		&project.Target{Name: "Late", AfterTargets: "Notify"},
		&project.Target{Name: "Build"},
		&project.Target{Name: "PreBuild", BeforeTargets: "Build", DependsOn: "Prepare"},
		&project.Target{Name: "Prepare"},
		&project.Target{Name: "Notify", AfterTargets: "PreBuild"},
		&project.Target{Name: "Unrelated", AfterTargets: "Clean"},
	)

	active, err := Resolve(ctx, proj, []string{"Build"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Build", "PreBuild", "Prepare", "Notify", "Late"}, active.Names())
	assert.Equal(t, "Build", active.Names()[0])
	assert.False(t, active.Contains("Unrelated"))
}

func TestResolve_ConditionsAreIgnored(t *testing.T) {
	ctx, _ := testutil.Context(t)
	// A nil condition is as good as a false one here: the resolver never looks.
	proj := newProject(t, &project.Target{Name: "Build", DependsOn: "Skipped"}, &project.Target{Name: "Skipped"})
	active, err := Resolve(ctx, proj, []string{"Build"})
	require.NoError(t, err)
	assert.True(t, active.Contains("Skipped"))
}

func TestResolve_ExpansionErrorsPropagate(t *testing.T) {
	testCases := []struct {
		name    string
		target  *project.Target
		wantErr string
	}{
		{"depends_on", &project.Target{Name: "Build", DependsOn: "$(Foo.Bar())"}, "depends_on of target Build"},
		{"after_targets", &project.Target{Name: "Hook", AfterTargets: "$([System.IO.Path]::Combine())"}, "after_targets of target Hook"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.Context(t)
			proj := newProject(t, &project.Target{Name: "Root"}, tc.target)
			_, err := Resolve(ctx, proj, []string{"Root", "Build"})
			require.Error(t, err)
			assert.ErrorIs(t, err, expr.ErrUnsupported)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDefaultSeeds(t *testing.T) {
	t.Run("default, initial and local targets", func(t *testing.T) {
		proj := newProject(t,
			&project.Target{Name: "Imported", File: "/elsewhere/common.hcl"},
			&project.Target{Name: "Build"},
			&project.Target{Name: "Custom"},
		)
		proj.DefaultTargets = []string{"Build"}
		proj.InitialTargets = []string{"Init", " build "}
		assert.Equal(t, []string{"Build", "Init", "Custom"}, DefaultSeeds(proj))
	})

	t.Run("first target when no defaults", func(t *testing.T) {
		proj := newProject(t,
			&project.Target{Name: "Imported", File: "/elsewhere/common.hcl"},
			&project.Target{Name: "Build"},
		)
		assert.Equal(t, []string{"Imported", "Build"}, DefaultSeeds(proj))
	})

	t.Run("empty project", func(t *testing.T) {
		assert.Empty(t, DefaultSeeds(newProject(t)))
	})
}
