// Package prediction holds the prediction record model and the collectors
// that aggregate reports from concurrently running predictors.
//
// A Collector owns four independent category stores (input files, input
// directories, output files, output directories). Each store is a map keyed
// by canonical path and guarded by its own mutex, so predictors reporting
// into different categories never contend, while two predictors racing on
// the same category serialize the check-then-insert-or-merge sequence.
//
// A GraphCollector pre-creates one Collector per project in a graph and
// routes reports by project path.
package prediction
