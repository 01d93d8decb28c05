package copytask

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/predictgo/internal/ctxlog"
	"github.com/specialistvlad/predictgo/internal/predictor"
	"github.com/specialistvlad/predictgo/internal/project"
)

// Copy task parameter names.
const (
	ParamSourceFiles       = "SourceFiles"
	ParamSourceFolders     = "SourceFolders"
	ParamDestinationFiles  = "DestinationFiles"
	ParamDestinationFolder = "DestinationFolder"
)

// Correlate evaluates a Copy task's parameters against proj and reports the
// paired sources as inputs and the destination directories as outputs.
// Parameter combinations the Copy task itself rejects are skipped, as are
// batching shapes whose pairing is ambiguous.
func Correlate(ctx context.Context, proj *project.Project, task *project.Task, r predictor.Reporter) error {
	logger := ctxlog.FromContext(ctx).With("task", task.Name, "file", task.File)

	hasSourceFiles := task.HasParameter(ParamSourceFiles)
	hasSourceFolders := task.HasParameter(ParamSourceFolders)
	hasDestFiles := task.HasParameter(ParamDestinationFiles)
	hasDestFolder := task.HasParameter(ParamDestinationFolder)

	switch {
	case !hasSourceFiles && !hasSourceFolders:
		logger.Debug("Skipping copy task without sources.")
		return nil
	case !hasDestFiles && !hasDestFolder:
		logger.Debug("Skipping copy task without destination.")
		return nil
	case hasDestFiles && hasDestFolder:
		logger.Debug("Skipping copy task with both destination forms.")
		return nil
	case hasSourceFolders && hasDestFiles:
		logger.Debug("Skipping copy task copying folders to files.")
		return nil
	}

	evaluate := func(param string) (FileExpressionResult, error) {
		value, _ := task.Parameter(param)
		res, err := EvaluateFileExpression(proj, proj.Comparer, value, task.File, proj.FullPath)
		if err != nil {
			return FileExpressionResult{}, fmt.Errorf("error evaluating %s of task %s: %w", param, task.Name, err)
		}
		return res, nil
	}

	destParam := ParamDestinationFolder
	if hasDestFiles {
		destParam = ParamDestinationFiles
	}
	dest, err := evaluate(destParam)
	if err != nil {
		return err
	}

	sources := []struct {
		param string
		isDir bool
	}{
		{ParamSourceFiles, false},
		{ParamSourceFolders, true},
	}
	for _, s := range sources {
		if !task.HasParameter(s.param) {
			continue
		}
		src, err := evaluate(s.param)
		if err != nil {
			return err
		}
		pairs, ok := pair(src, dest)
		if !ok {
			logger.Debug("Skipping copy task with ambiguous batching.",
				"source", s.param,
				"source_batched", src.BatchedExpressionCount,
				"source_total", src.TotalExpressionCount,
				"destination_batched", dest.BatchedExpressionCount,
				"destination_total", dest.TotalExpressionCount,
			)
			continue
		}
		for _, p := range pairs {
			if s.isDir {
				r.ReportInputDirectory(p.source)
			} else {
				r.ReportInputFile(p.source)
			}
			if hasDestFolder {
				r.ReportOutputDirectory(p.destination)
			} else {
				r.ReportOutputDirectory(filepath.Dir(p.destination))
			}
		}
		logger.Debug("Correlated copy task.", "source", s.param, "pairs", len(pairs))
	}
	return nil
}

type pairing struct {
	source      string
	destination string
}

// pair matches sources to destinations. A single batched expression on both
// sides pairs item by item. Unbatched sides pair positionally, with a single
// destination shared by every source. Any other shape is ambiguous.
func pair(src, dest FileExpressionResult) ([]pairing, bool) {
	switch {
	case src.FullyBatched() && dest.FullyBatched():
		n := min(len(src.Paths), len(dest.Paths))
		out := make([]pairing, n)
		for i := 0; i < n; i++ {
			out[i] = pairing{src.Paths[i], dest.Paths[i]}
		}
		return out, true

	case src.BatchedExpressionCount == 0 && dest.BatchedExpressionCount == 0:
		if len(dest.Paths) == 1 {
			out := make([]pairing, len(src.Paths))
			for i, s := range src.Paths {
				out[i] = pairing{s, dest.Paths[0]}
			}
			return out, true
		}
		n := min(len(src.Paths), len(dest.Paths))
		out := make([]pairing, n)
		for i := 0; i < n; i++ {
			out[i] = pairing{src.Paths[i], dest.Paths[i]}
		}
		return out, true

	default:
		return nil, false
	}
}
