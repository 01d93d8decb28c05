package projectgraph

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/predictgo/internal/ctxlog"
	"github.com/specialistvlad/predictgo/internal/dag"
	"github.com/specialistvlad/predictgo/internal/pathid"
	"github.com/specialistvlad/predictgo/internal/project"
)

// ErrCycle is returned when project references form a cycle.
var ErrCycle = dag.ErrCycle

// ProjectLoader evaluates a single project description file.
type ProjectLoader interface {
	LoadProject(ctx context.Context, path string) (*project.Project, error)
}

// Node is one project in the graph.
type Node struct {
	Project *project.Project

	dependencies []*Node
	dependents   []*Node
}

// Path returns the full path of the node's project file.
func (n *Node) Path() string {
	return n.Project.FullPath
}

// Dependencies returns the projects this node references, sorted by path.
func (n *Node) Dependencies() []*Node {
	return n.dependencies
}

// Dependents returns the projects that reference this node, sorted by path.
func (n *Node) Dependents() []*Node {
	return n.dependents
}

// Graph is an immutable, acyclic set of loaded projects.
type Graph struct {
	nodes    []*Node
	entries  []*Node
	byKey    map[string]*Node
	comparer pathid.Comparer
}

// Nodes returns every node with dependencies ahead of their dependents.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Entries returns the nodes for the entry paths passed to Load, in the
// order given and without duplicates.
func (g *Graph) Entries() []*Node {
	return g.entries
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node looks a project up by its absolute path.
func (g *Graph) Node(path string) (*Node, bool) {
	n, ok := g.byKey[g.comparer.Key(pathid.Canonicalize(path, ""))]
	return n, ok
}

// ProjectPaths returns the project file of every node, in Nodes order.
func (g *Graph) ProjectPaths() []string {
	paths := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		paths[i] = n.Path()
	}
	return paths
}

// Load evaluates the entry projects and everything they reference.
func Load(ctx context.Context, loader ProjectLoader, comparer pathid.Comparer, entryPaths ...string) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	if len(entryPaths) == 0 {
		return nil, fmt.Errorf("no entry projects given")
	}

	g := &Graph{
		byKey:    make(map[string]*Node),
		comparer: comparer,
	}
	d := dag.New()

	var queue []*Node
	visit := func(path string) (*Node, error) {
		key := comparer.Key(pathid.Canonicalize(path, ""))
		if n, ok := g.byKey[key]; ok {
			return n, nil
		}
		proj, err := loader.LoadProject(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("error loading project %s: %w", path, err)
		}
		// The loader may normalise the path; key on what it settled on.
		key = comparer.Key(proj.FullPath)
		if n, ok := g.byKey[key]; ok {
			return n, nil
		}
		n := &Node{Project: proj}
		g.byKey[key] = n
		d.AddNode(key)
		queue = append(queue, n)
		return n, nil
	}

	seen := make(map[*Node]struct{})
	for _, p := range entryPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("error resolving project path %s: %w", p, err)
		}
		n, err := visit(abs)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[n]; !dup {
			seen[n] = struct{}{}
			g.entries = append(g.entries, n)
		}
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, ref := range n.Project.References {
			dep, err := visit(ref)
			if err != nil {
				return nil, fmt.Errorf("error following reference from %s: %w", n.Path(), err)
			}
			if err := d.AddEdge(comparer.Key(dep.Path()), comparer.Key(n.Path())); err != nil {
				return nil, fmt.Errorf("error adding reference %s -> %s: %w", n.Path(), dep.Path(), err)
			}
		}
	}

	order, err := d.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("error ordering project graph: %w", err)
	}

	for _, key := range order {
		n := g.byKey[key]
		deps, _ := d.Dependencies(key)
		for _, k := range deps {
			n.dependencies = append(n.dependencies, g.byKey[k])
		}
		dependents, _ := d.Dependents(key)
		for _, k := range dependents {
			n.dependents = append(n.dependents, g.byKey[k])
		}
		g.nodes = append(g.nodes, n)
	}

	logger.Debug("Project graph loaded.", "nodes", len(g.nodes), "entries", len(g.entries))
	return g, nil
}
