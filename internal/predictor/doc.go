// Package predictor defines the plugin surface for prediction logic.
//
// A ProjectPredictor looks at one evaluated project and reports what it
// expects the build to read and write. A GraphPredictor additionally sees a
// project's position in the project graph and may report into the
// collectors of its dependencies. Reporters attach the predictor's name to
// every report so the final bundle records who predicted what.
package predictor
