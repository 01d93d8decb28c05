// Package registry collects the predictors a run uses.
//
// Predictor implementations live in modules. Each module exposes a Module
// value whose Register method adds its predictors to a Registry. The
// registry keeps registration order, which is the order executors hand
// predictors their work, and rejects duplicate names since names are what
// predictions are attributed to.
package registry
