package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/predictgo/internal/ctxlog"
	"github.com/specialistvlad/predictgo/internal/pathid"
	"github.com/specialistvlad/predictgo/internal/project"
)

// Loader evaluates HCL project description files into project.Project
// values. It is safe for concurrent use; every LoadProject call has its own
// parser.
type Loader struct {
	globalProperties map[string]string
	comparer         pathid.Comparer
}

// NewLoader creates a loader. Global properties are applied to every project
// it loads and cannot be overridden by declarations.
func NewLoader(globalProperties map[string]string, comparer pathid.Comparer) *Loader {
	return &Loader{globalProperties: globalProperties, comparer: comparer}
}

// loadState is the evaluation state of one project.
type loadState struct {
	proj     *project.Project
	parser   *hclparse.Parser
	comparer pathid.Comparer
	visited  map[string]struct{}
}

// LoadProject parses and evaluates the project at path along with
// everything it imports.
func (l *Loader) LoadProject(ctx context.Context, path string) (*project.Project, error) {
	full, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving project path %s: %w", path, err)
	}

	ctx, logger := ctxlog.With(ctx, "project", full)
	logger.Debug("HCL loader started.")

	st := &loadState{
		proj:     project.New(full, l.globalProperties),
		parser:   hclparse.NewParser(),
		comparer: l.comparer,
		visited:  make(map[string]struct{}),
	}
	st.proj.Comparer = l.comparer
	if err := st.loadFile(ctx, full); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.",
		"imports", len(st.proj.Imports),
		"item_types", len(st.proj.ItemTypes()),
		"targets", len(st.proj.Targets()),
		"references", len(st.proj.References),
	)
	return st.proj, nil
}

func (st *loadState) loadFile(ctx context.Context, file string) error {
	st.visited[st.comparer.Key(file)] = struct{}{}

	hclFile, diags := st.parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
	}
	body, ok := hclFile.Body.(*hclsyntax.Body)
	if !ok {
		return fmt.Errorf("failed to parse HCL file %s: unexpected body type %T", file, hclFile.Body)
	}
	for name, attr := range body.Attributes {
		return fmt.Errorf("%s: top-level attribute %q is not allowed; declare it in a block", attr.SrcRange, name)
	}

	scope := newFileScope(st.proj, file)
	for _, block := range body.Blocks {
		want, known := blockLabels[block.Type]
		if !known {
			return fmt.Errorf("%s: unsupported block type %q", block.DefRange(), block.Type)
		}
		if len(block.Labels) != want {
			return fmt.Errorf("%s: block %q expects %d label(s), got %d", block.DefRange(), block.Type, want, len(block.Labels))
		}

		var err error
		switch block.Type {
		case "project":
			err = st.applyProject(ctx, scope, block)
		case "import":
			err = st.applyImport(ctx, scope, block)
		case "property":
			err = st.applyProperty(ctx, scope, block)
		case "item":
			err = st.applyItem(ctx, scope, block)
		case "target":
			err = st.applyTarget(ctx, scope, block)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// decode decodes a block body into target, converting diagnostics to an error.
func decode(block *hclsyntax.Block, target any) error {
	if diags := gohcl.DecodeBody(block.Body, nil, target); diags.HasErrors() {
		return fmt.Errorf("failed to decode %s block: %w", block.Type, diags)
	}
	return nil
}

// conditionHolds evaluates a load-time condition. Unlike prediction-time
// checks, failures here are load errors.
func (st *loadState) conditionHolds(block *hclsyntax.Block, cond hcl.Expression) (bool, error) {
	ok, err := st.proj.EvaluateCondition(cond)
	if err != nil {
		return false, fmt.Errorf("%s: %w", block.DefRange(), err)
	}
	return ok, nil
}
