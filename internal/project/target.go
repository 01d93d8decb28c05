package project

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Target is a declared, named unit of build actions. DependsOn,
// BeforeTargets and AfterTargets are unexpanded expressions.
type Target struct {
	Name          string
	DependsOn     string
	BeforeTargets string
	AfterTargets  string
	Condition     hcl.Expression
	Tasks         []*Task
	// File is the description file that declared the target.
	File string
}

// Task is one declared operation inside a target. Parameter values are
// unexpanded expressions.
type Task struct {
	Name       string
	Condition  hcl.Expression
	Parameters map[string]string
	File       string
}

// Parameter looks up a parameter by case-insensitive name.
func (t *Task) Parameter(name string) (string, bool) {
	if v, ok := t.Parameters[name]; ok {
		return v, true
	}
	for k, v := range t.Parameters {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// HasParameter reports whether a parameter is present with a non-blank value.
func (t *Task) HasParameter(name string) bool {
	v, ok := t.Parameter(name)
	return ok && strings.TrimSpace(v) != ""
}
