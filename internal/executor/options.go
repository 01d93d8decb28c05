package executor

import (
	"runtime"

	"github.com/specialistvlad/predictgo/internal/pathid"
)

// Options configure both executors.
type Options struct {
	// Parallelism bounds concurrent predictor calls (ProjectExecutor) or
	// concurrently processed projects (GraphExecutor). Values below one
	// select runtime.NumCPU(); one runs everything on the calling goroutine.
	Parallelism int
	// Comparer decides when two reported paths are the same path.
	Comparer pathid.Comparer
}

// DefaultOptions uses one worker per CPU and case-insensitive paths.
func DefaultOptions() Options {
	return Options{Parallelism: runtime.NumCPU(), Comparer: pathid.Default}
}

func (o Options) parallelism() int {
	if o.Parallelism < 1 {
		return runtime.NumCPU()
	}
	return o.Parallelism
}
