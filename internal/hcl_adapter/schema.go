package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// The structs below mirror the blocks of a project description file. Each
// top-level block is decoded on its own so that declaration order survives.

// projectBlock is `project { ... }`.
type projectBlock struct {
	DefaultTargets []string `hcl:"default_targets,optional"`
	InitialTargets []string `hcl:"initial_targets,optional"`
	References     []string `hcl:"references,optional"`
}

// importBlock is `import "path" { ... }`.
type importBlock struct {
	Condition hcl.Expression `hcl:"condition,optional"`
}

// propertyBlock is `property "Name" { ... }`.
type propertyBlock struct {
	Value     string         `hcl:"value"`
	Condition hcl.Expression `hcl:"condition,optional"`
}

// itemBlock is `item "Type" { ... }`.
type itemBlock struct {
	Include   string            `hcl:"include"`
	Exclude   string            `hcl:"exclude,optional"`
	Metadata  map[string]string `hcl:"metadata,optional"`
	Condition hcl.Expression    `hcl:"condition,optional"`
}

// targetBlock is `target "Name" { ... }`.
type targetBlock struct {
	DependsOn     string         `hcl:"depends_on,optional"`
	BeforeTargets string         `hcl:"before_targets,optional"`
	AfterTargets  string         `hcl:"after_targets,optional"`
	Condition     hcl.Expression `hcl:"condition,optional"`
	Tasks         []*taskBlock   `hcl:"task,block"`
}

// taskBlock is `task "Name" { ... }` inside a target.
type taskBlock struct {
	Name       string            `hcl:"name,label"`
	Condition  hcl.Expression    `hcl:"condition,optional"`
	Parameters map[string]string `hcl:"parameters,optional"`
}

// blockLabels lists the label count each top-level block type requires.
var blockLabels = map[string]int{
	"project":  0,
	"import":   1,
	"property": 1,
	"item":     1,
	"target":   1,
}
