package targets

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/predictgo/internal/ctxlog"
	"github.com/specialistvlad/predictgo/internal/expr"
	"github.com/specialistvlad/predictgo/internal/project"
)

// Source is the part of an evaluated project the resolver reads.
// *project.Project satisfies it.
type Source interface {
	Target(name string) (*project.Target, bool)
	Targets() []*project.Target
	ExpandString(s string) (string, error)
}

// ActiveTargets is an insertion-ordered set of targets keyed by
// case-insensitive name.
type ActiveTargets struct {
	byName map[string]*project.Target
	order  []*project.Target
}

func newActiveTargets() *ActiveTargets {
	return &ActiveTargets{byName: make(map[string]*project.Target)}
}

func (a *ActiveTargets) add(t *project.Target) {
	a.byName[strings.ToLower(t.Name)] = t
	a.order = append(a.order, t)
}

// Contains reports whether a target with the given name is active.
func (a *ActiveTargets) Contains(name string) bool {
	_, ok := a.byName[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Len returns the number of active targets.
func (a *ActiveTargets) Len() int {
	return len(a.order)
}

// Targets returns the active targets in the order they became active.
func (a *ActiveTargets) Targets() []*project.Target {
	return a.order
}

// Names returns the names of the active targets in activation order.
func (a *ActiveTargets) Names() []string {
	names := make([]string, len(a.order))
	for i, t := range a.order {
		names[i] = t.Name
	}
	return names
}

// Resolve returns the closure of the seed targets: every target reachable
// through depends_on, plus every target hooked before or after an active
// one, repeated until nothing new is added. Seeds and dependency names that
// the project does not declare are ignored. Expansion errors are returned.
func Resolve(ctx context.Context, src Source, seeds []string) (*ActiveTargets, error) {
	logger := ctxlog.FromContext(ctx)
	active := newActiveTargets()

	for _, seed := range seeds {
		if err := closeOver(src, active, seed); err != nil {
			return nil, err
		}
	}

	for {
		added := false
		for _, t := range src.Targets() {
			if active.Contains(t.Name) {
				continue
			}
			hooked, err := hooksActive(src, active, t)
			if err != nil {
				return nil, err
			}
			if !hooked {
				continue
			}
			logger.Debug("Target activated by hook.", "target", t.Name)
			if err := closeOver(src, active, t.Name); err != nil {
				return nil, err
			}
			added = true
		}
		if !added {
			break
		}
	}

	logger.Debug("Resolved active targets.", "seeds", seeds, "active", active.Names())
	return active, nil
}

// closeOver adds the named target and its depends_on closure. A target is
// marked active before its dependencies are expanded, which is what stops
// dependency cycles.
func closeOver(src Source, active *ActiveTargets, name string) error {
	stack := []string{name}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if active.Contains(n) {
			continue
		}
		t, ok := src.Target(n)
		if !ok {
			continue
		}
		active.add(t)

		deps, err := expandNames(src, t.DependsOn)
		if err != nil {
			return fmt.Errorf("error expanding depends_on of target %s: %w", t.Name, err)
		}
		// Reverse so the first listed dependency is expanded first.
		for i := len(deps) - 1; i >= 0; i-- {
			if !active.Contains(deps[i]) {
				stack = append(stack, deps[i])
			}
		}
	}
	return nil
}

func hooksActive(src Source, active *ActiveTargets, t *project.Target) (bool, error) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"before_targets", t.BeforeTargets},
		{"after_targets", t.AfterTargets},
	} {
		names, err := expandNames(src, field.value)
		if err != nil {
			return false, fmt.Errorf("error expanding %s of target %s: %w", field.name, t.Name, err)
		}
		for _, n := range names {
			if active.Contains(n) {
				return true, nil
			}
		}
	}
	return false, nil
}

func expandNames(src Source, value string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	expanded, err := src.ExpandString(value)
	if err != nil {
		return nil, err
	}
	return expr.Split(expanded), nil
}

// DefaultSeeds returns the targets a build of proj starts from: its default
// targets (or its first target when none are declared), its initial targets
// and every target declared in the project file itself. Duplicates are
// dropped case-insensitively.
func DefaultSeeds(proj *project.Project) []string {
	var seeds []string
	seen := make(map[string]struct{})
	add := func(name string) {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		seeds = append(seeds, name)
	}

	all := proj.Targets()
	if len(proj.DefaultTargets) > 0 {
		for _, n := range proj.DefaultTargets {
			add(n)
		}
	} else if len(all) > 0 {
		add(all[0].Name)
	}
	for _, n := range proj.InitialTargets {
		add(n)
	}
	for _, t := range all {
		if t.File == proj.FullPath {
			add(t.Name)
		}
	}
	return seeds
}
