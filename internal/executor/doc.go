// Package executor runs predictors and aggregates what they report.
//
// ProjectExecutor runs every project predictor against one project, fanning
// out across up to Options.Parallelism goroutines. GraphExecutor runs a
// ProjectExecutor for every node of a project graph, again bounded by
// Options.Parallelism, and then the graph predictors for that node. Inside a
// graph run the per-project fan-out is forced down to one so the two levels
// do not multiply.
//
// The first predictor error aborts the run and is returned; whatever the
// remaining predictors collected for that project is discarded.
package executor
