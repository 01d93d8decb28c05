// Package project is the evaluated, format-agnostic model of a build unit:
// its properties, items, imports, references and declared targets.
//
// A Project is populated by a loader (see hcl_adapter) and is read-only from
// then on, which is what lets many predictors inspect it concurrently. It
// also plays the part of the expression evaluator: ExpandString expands
// `$(...)`/`@(...)` expressions against the project and EvaluateCondition
// evaluates HCL condition expressions through go-cty.
//
// Property, item type, metadata and target names are case-insensitive.
package project
