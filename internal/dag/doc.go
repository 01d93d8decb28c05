// Package dag holds the directed graph underneath the project graph. Nodes
// are identified by string keys (canonical project paths in practice) and
// edges point from a dependency to its dependent. The package knows nothing
// about projects; it only stores edges, answers neighbour queries in a
// deterministic order and reports cycles.
package dag
