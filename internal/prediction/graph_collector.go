package prediction

import (
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/predictgo/internal/pathid"
)

// GraphCollector owns one Collector per project of a graph. The set of
// projects is fixed at construction so graph predictors walking dependency
// edges always find a home for what they report.
type GraphCollector struct {
	comparer   pathid.Comparer
	collectors map[string]*Collector
	order      []string
}

// NewGraphCollector creates a collector for every project file path given.
func NewGraphCollector(projectPaths []string, comparer pathid.Comparer) *GraphCollector {
	g := &GraphCollector{
		comparer:   comparer,
		collectors: make(map[string]*Collector, len(projectPaths)),
	}
	for _, p := range projectPaths {
		canonical := pathid.Canonicalize(p, "")
		key := comparer.Key(canonical)
		if _, ok := g.collectors[key]; ok {
			continue
		}
		g.collectors[key] = NewCollector(filepath.Dir(canonical), comparer)
		g.order = append(g.order, canonical)
	}
	return g
}

// For returns the collector owning projectPath. An unknown project means the
// caller wired the graph incorrectly, so it panics.
func (g *GraphCollector) For(projectPath string) *Collector {
	key := g.comparer.Key(pathid.Canonicalize(projectPath, ""))
	c, ok := g.collectors[key]
	if !ok {
		panic(fmt.Sprintf("prediction: project %q is not part of the graph", projectPath))
	}
	return c
}

// Len returns the number of projects tracked.
func (g *GraphCollector) Len() int {
	return len(g.collectors)
}

// Bundles snapshots every project's collector. The result has exactly one
// entry per project, including projects nothing was reported for.
func (g *GraphCollector) Bundles() GraphBundle {
	out := make(GraphBundle, len(g.order))
	for _, p := range g.order {
		out[p] = g.collectors[g.comparer.Key(p)].Bundle()
	}
	return out
}
