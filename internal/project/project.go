package project

import (
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/specialistvlad/predictgo/internal/expr"
	"github.com/specialistvlad/predictgo/internal/pathid"
)

const expansionCacheSize = 1024

type property struct {
	name  string
	value string
}

// Project is an evaluated build unit.
type Project struct {
	// FullPath is the absolute path of the project description file.
	FullPath string
	// Dir is the directory containing FullPath.
	Dir string
	// Comparer decides when two paths reported for this project are the
	// same. The zero value is case-insensitive.
	Comparer pathid.Comparer

	DefaultTargets []string
	InitialTargets []string
	// References are absolute paths of referenced projects.
	References []string
	// Imports are absolute paths of imported description files, in
	// evaluation order.
	Imports []string

	properties  map[string]property
	global      map[string]struct{}
	items       map[string][]*Item
	itemTypes   []string
	targets     map[string]*Target
	targetOrder []string

	expansions *lru.Cache[string, string]
}

// New creates an empty project for the description file at fullPath.
// Global properties take precedence over anything the project declares.
func New(fullPath string, globalProperties map[string]string) *Project {
	cache, err := lru.New[string, string](expansionCacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}

	p := &Project{
		FullPath:   fullPath,
		Dir:        filepath.Dir(fullPath),
		properties: make(map[string]property),
		global:     make(map[string]struct{}),
		items:      make(map[string][]*Item),
		targets:    make(map[string]*Target),
		expansions: cache,
	}
	for name, value := range projectProperties(fullPath) {
		p.properties[strings.ToLower(name)] = property{name: name, value: value}
	}
	for name, value := range globalProperties {
		key := strings.ToLower(name)
		p.properties[key] = property{name: name, value: value}
		p.global[key] = struct{}{}
	}
	return p
}

// SetProperty defines or redefines a property. Global properties cannot be
// overridden; it reports whether the value was applied.
func (p *Project) SetProperty(name, value string) bool {
	key := strings.ToLower(name)
	if _, ok := p.global[key]; ok {
		return false
	}
	p.properties[key] = property{name: name, value: value}
	p.expansions.Purge()
	return true
}

// Property implements expr.Scope.
func (p *Project) Property(name string) (string, bool) {
	prop, ok := p.properties[strings.ToLower(name)]
	return prop.value, ok
}

// Properties returns a copy of all properties keyed by declared name.
func (p *Project) Properties() map[string]string {
	out := make(map[string]string, len(p.properties))
	for _, prop := range p.properties {
		out[prop.name] = prop.value
	}
	return out
}

// AddItem appends an item.
func (p *Project) AddItem(item *Item) {
	key := strings.ToLower(item.ItemType)
	if _, ok := p.items[key]; !ok {
		p.itemTypes = append(p.itemTypes, item.ItemType)
	}
	p.items[key] = append(p.items[key], item)
	p.expansions.Purge()
}

// Items returns the items of a type in declaration order.
func (p *Project) Items(itemType string) []*Item {
	return p.items[strings.ToLower(itemType)]
}

// ItemsOf implements expr.Scope.
func (p *Project) ItemsOf(itemType string) []expr.Item {
	items := p.Items(itemType)
	out := make([]expr.Item, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// ItemTypes returns every item type in first-declaration order.
func (p *Project) ItemTypes() []string {
	return p.itemTypes
}

// AddTarget declares a target. A later declaration with the same name
// replaces the earlier one but keeps its position.
func (p *Project) AddTarget(t *Target) {
	key := strings.ToLower(t.Name)
	if _, ok := p.targets[key]; !ok {
		p.targetOrder = append(p.targetOrder, key)
	}
	p.targets[key] = t
}

// Target looks up a target by name.
func (p *Project) Target(name string) (*Target, bool) {
	t, ok := p.targets[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Targets returns all targets in declaration order.
func (p *Project) Targets() []*Target {
	out := make([]*Target, 0, len(p.targetOrder))
	for _, key := range p.targetOrder {
		out = append(out, p.targets[key])
	}
	return out
}

// ExpandString expands `$(...)` and `@(...)` references against the project.
// Successful expansions are cached; the project is immutable after loading.
func (p *Project) ExpandString(s string) (string, error) {
	if v, ok := p.expansions.Get(s); ok {
		return v, nil
	}
	v, err := expr.Expand(s, p)
	if err != nil {
		return "", err
	}
	p.expansions.Add(s, v)
	return v, nil
}
