package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/predictgo/internal/ctxlog"
	"github.com/specialistvlad/predictgo/internal/expr"
	"github.com/specialistvlad/predictgo/internal/pathid"
	"github.com/specialistvlad/predictgo/internal/project"
)

func (st *loadState) applyProject(ctx context.Context, scope *fileScope, block *hclsyntax.Block) error {
	var pb projectBlock
	if err := decode(block, &pb); err != nil {
		return err
	}

	defaults, err := expandAll(scope, pb.DefaultTargets)
	if err != nil {
		return fmt.Errorf("%s: default_targets: %w", block.DefRange(), err)
	}
	// The first declaration of default targets wins.
	if len(st.proj.DefaultTargets) == 0 {
		st.proj.DefaultTargets = defaults
	}

	initial, err := expandAll(scope, pb.InitialTargets)
	if err != nil {
		return fmt.Errorf("%s: initial_targets: %w", block.DefRange(), err)
	}
	st.proj.InitialTargets = append(st.proj.InitialTargets, initial...)

	refs, err := expandAll(scope, pb.References)
	if err != nil {
		return fmt.Errorf("%s: references: %w", block.DefRange(), err)
	}
	baseDir := filepath.Dir(scope.thisFile["thisfilefullpath"])
	seen := make(map[string]struct{}, len(st.proj.References))
	for _, r := range st.proj.References {
		seen[st.comparer.Key(r)] = struct{}{}
	}
	for _, r := range refs {
		full := pathid.Canonicalize(r, baseDir)
		key := st.comparer.Key(full)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		st.proj.References = append(st.proj.References, full)
	}

	ctxlog.FromContext(ctx).Debug("Applied project block.", "default_targets", st.proj.DefaultTargets, "references", len(st.proj.References))
	return nil
}

func (st *loadState) applyImport(ctx context.Context, scope *fileScope, block *hclsyntax.Block) error {
	logger := ctxlog.FromContext(ctx)

	var ib importBlock
	if err := decode(block, &ib); err != nil {
		return err
	}
	if ok, err := st.conditionHolds(block, ib.Condition); err != nil || !ok {
		return err
	}

	target, err := expr.ExpandProperties(block.Labels[0], scope)
	if err != nil {
		return fmt.Errorf("%s: import path: %w", block.DefRange(), err)
	}
	full := pathid.Canonicalize(expr.Unescape(target), filepath.Dir(scope.thisFile["thisfilefullpath"]))
	if _, seen := st.visited[st.comparer.Key(full)]; seen {
		logger.Debug("Skipping file that was already imported.", "import", full)
		return nil
	}

	logger.Debug("Importing file.", "import", full)
	st.proj.Imports = append(st.proj.Imports, full)
	return st.loadFile(ctx, full)
}

func (st *loadState) applyProperty(_ context.Context, scope *fileScope, block *hclsyntax.Block) error {
	var pb propertyBlock
	if err := decode(block, &pb); err != nil {
		return err
	}
	if ok, err := st.conditionHolds(block, pb.Condition); err != nil || !ok {
		return err
	}

	value, err := expr.ExpandProperties(pb.Value, scope)
	if err != nil {
		return fmt.Errorf("%s: property %q: %w", block.DefRange(), block.Labels[0], err)
	}
	st.proj.SetProperty(block.Labels[0], value)
	return nil
}

func (st *loadState) applyItem(ctx context.Context, scope *fileScope, block *hclsyntax.Block) error {
	var ib itemBlock
	if err := decode(block, &ib); err != nil {
		return err
	}
	if ok, err := st.conditionHolds(block, ib.Condition); err != nil || !ok {
		return err
	}
	itemType := block.Labels[0]
	file := scope.thisFile["thisfilefullpath"]

	metadata := make(map[string]string, len(ib.Metadata))
	for k, v := range ib.Metadata {
		expanded, err := expr.ExpandProperties(v, scope)
		if err != nil {
			return fmt.Errorf("%s: metadata %q: %w", block.DefRange(), k, err)
		}
		metadata[k] = expr.Unescape(expanded)
	}

	includes, err := scope.expandList(ib.Include)
	if err != nil {
		return fmt.Errorf("%s: item %q include: %w", block.DefRange(), itemType, err)
	}
	excludes, err := scope.expandList(ib.Exclude)
	if err != nil {
		return fmt.Errorf("%s: item %q exclude: %w", block.DefRange(), itemType, err)
	}
	excluded, err := st.exclusions(excludes)
	if err != nil {
		return fmt.Errorf("%s: item %q exclude: %w", block.DefRange(), itemType, err)
	}

	added := 0
	for _, spec := range includes {
		values := []wildcardMatch{{include: spec}}
		if hasWildcard(spec) {
			if values, err = expandWildcard(st.proj.Dir, spec); err != nil {
				return fmt.Errorf("%s: item %q include %q: %w", block.DefRange(), itemType, spec, err)
			}
		}
		for _, v := range values {
			if _, skip := excluded[st.comparer.Key(pathid.Canonicalize(v.include, st.proj.Dir))]; skip {
				continue
			}
			md := metadata
			if v.recursiveDir != "" {
				md = make(map[string]string, len(metadata)+1)
				for k, mv := range metadata {
					md[k] = mv
				}
				md["RecursiveDir"] = v.recursiveDir
			}
			st.proj.AddItem(project.NewItem(itemType, v.include, st.proj.Dir, file, md))
			added++
		}
	}

	ctxlog.FromContext(ctx).Debug("Applied item block.", "item_type", itemType, "added", added)
	return nil
}

func (st *loadState) exclusions(specs []string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for _, spec := range specs {
		if !hasWildcard(spec) {
			out[st.comparer.Key(pathid.Canonicalize(spec, st.proj.Dir))] = struct{}{}
			continue
		}
		matches, err := expandWildcard(st.proj.Dir, spec)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			out[st.comparer.Key(pathid.Canonicalize(m.include, st.proj.Dir))] = struct{}{}
		}
	}
	return out, nil
}

func (st *loadState) applyTarget(ctx context.Context, scope *fileScope, block *hclsyntax.Block) error {
	var tb targetBlock
	if err := decode(block, &tb); err != nil {
		return err
	}
	file := scope.thisFile["thisfilefullpath"]

	t := &project.Target{
		Name:          block.Labels[0],
		DependsOn:     tb.DependsOn,
		BeforeTargets: tb.BeforeTargets,
		AfterTargets:  tb.AfterTargets,
		Condition:     tb.Condition,
		File:          file,
	}
	for _, task := range tb.Tasks {
		t.Tasks = append(t.Tasks, &project.Task{
			Name:       task.Name,
			Condition:  task.Condition,
			Parameters: task.Parameters,
			File:       file,
		})
	}
	st.proj.AddTarget(t)

	ctxlog.FromContext(ctx).Debug("Declared target.", "target", t.Name, "tasks", len(t.Tasks))
	return nil
}

func expandAll(scope *fileScope, values []string) ([]string, error) {
	var out []string
	for _, v := range values {
		parts, err := scope.expandList(v)
		if err != nil {
			return nil, err
		}
		out = append(out, parts...)
	}
	return out, nil
}
