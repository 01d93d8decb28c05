// Package projectgraph builds the graph of projects reachable from one or
// more entry projects through their references. Every node owns an evaluated
// project.Project; edges run from a project to the projects it references.
//
// Loading is breadth first. Each project is loaded once no matter how many
// projects reference it, and a reference cycle is reported as ErrCycle.
package projectgraph
