package project

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/predictgo/internal/ctxlog"
	"github.com/specialistvlad/predictgo/internal/pathid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// ExprDefined reports whether an expression was actually written in the
// source. Decoders fill omitted optional attributes with zero-width
// placeholder expressions, so a nil check alone is not enough.
func ExprDefined(e hcl.Expression) bool {
	if e == nil {
		return false
	}
	rng := e.Range()
	return rng.End.Byte > rng.Start.Byte
}

// EvalContext builds the evaluation context conditions run in:
// `prop` (map of string), `items` (map of list of identities) and a small
// function library.
func (p *Project) EvalContext() *hcl.EvalContext {
	props := cty.MapValEmpty(cty.String)
	if len(p.properties) > 0 {
		m := make(map[string]cty.Value, len(p.properties))
		for _, prop := range p.properties {
			m[prop.name] = cty.StringVal(prop.value)
		}
		props = cty.MapVal(m)
	}

	items := cty.MapValEmpty(cty.List(cty.String))
	if len(p.itemTypes) > 0 {
		m := make(map[string]cty.Value, len(p.itemTypes))
		for _, itemType := range p.itemTypes {
			list := p.Items(itemType)
			if len(list) == 0 {
				m[itemType] = cty.ListValEmpty(cty.String)
				continue
			}
			vals := make([]cty.Value, len(list))
			for i, item := range list {
				vals[i] = cty.StringVal(item.Include)
			}
			m[itemType] = cty.ListVal(vals)
		}
		items = cty.MapVal(m)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"prop":  props,
			"items": items,
		},
		Functions: p.functions(),
	}
}

func (p *Project) functions() map[string]function.Function {
	return map[string]function.Function{
		"exists": function.New(&function.Spec{
			Params: []function.Parameter{{Name: "path", Type: cty.String}},
			Type:   function.StaticReturnType(cty.Bool),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				path := args[0].AsString()
				if path == "" {
					return cty.False, nil
				}
				_, err := os.Stat(pathid.Canonicalize(path, p.Dir))
				return cty.BoolVal(err == nil), nil
			},
		}),
		"has_trailing_slash": function.New(&function.Spec{
			Params: []function.Parameter{{Name: "value", Type: cty.String}},
			Type:   function.StaticReturnType(cty.Bool),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				return cty.BoolVal(pathid.HasTrailingSeparator(args[0].AsString())), nil
			},
		}),
		"property": function.New(&function.Spec{
			Params: []function.Parameter{{Name: "name", Type: cty.String}},
			Type:   function.StaticReturnType(cty.String),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				v, _ := p.Property(args[0].AsString())
				return cty.StringVal(v), nil
			},
		}),
		"lower":     stdlib.LowerFunc,
		"upper":     stdlib.UpperFunc,
		"contains":  stdlib.ContainsFunc,
		"length":    stdlib.LengthFunc,
		"trimspace": stdlib.TrimSpaceFunc,
		"coalesce":  stdlib.CoalesceFunc,
	}
}

// EvaluateCondition evaluates a condition expression. An absent condition
// is true.
func (p *Project) EvaluateCondition(e hcl.Expression) (bool, error) {
	if !ExprDefined(e) {
		return true, nil
	}

	val, diags := e.Value(p.EvalContext())
	if diags.HasErrors() {
		return false, fmt.Errorf("evaluating condition at %s: %w", e.Range(), diags)
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return false, fmt.Errorf("condition at %s has no value", e.Range())
	}
	val, err := convert.Convert(val, cty.Bool)
	if err != nil {
		return false, fmt.Errorf("condition at %s is not a bool: %w", e.Range(), err)
	}
	return val.True(), nil
}

// ConditionHolds is EvaluateCondition with evaluator failures downgraded to
// false, for callers deciding whether to trust a declared operation.
func (p *Project) ConditionHolds(ctx context.Context, e hcl.Expression) bool {
	ok, err := p.EvaluateCondition(e)
	if err != nil {
		ctxlog.FromContext(ctx).Debug("Condition evaluation failed, treating as false.", "project", p.FullPath, "error", err)
		return false
	}
	return ok
}
