package copytask

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/predictgo/internal/ctxlog"
	"github.com/specialistvlad/predictgo/internal/predictor"
	"github.com/specialistvlad/predictgo/internal/project"
	"github.com/specialistvlad/predictgo/internal/targets"
)

// PredictorName is the attribution recorded for copy predictions.
const PredictorName = "CopyTaskPredictor"

// TaskName is the task this package understands, compared case-insensitively.
const TaskName = "Copy"

// Predictor reports the inputs and outputs of every Copy task in the
// project's active targets.
type Predictor struct{}

var _ predictor.ProjectPredictor = Predictor{}

// Name implements predictor.ProjectPredictor.
func (Predictor) Name() string { return PredictorName }

// PredictInputsAndOutputs implements predictor.ProjectPredictor.
func (Predictor) PredictInputsAndOutputs(ctx context.Context, proj *project.Project, r predictor.Reporter) error {
	ctx, logger := ctxlog.With(ctx, "predictor", PredictorName)

	active, err := targets.Resolve(ctx, proj, targets.DefaultSeeds(proj))
	if err != nil {
		return fmt.Errorf("error resolving active targets: %w", err)
	}

	copies := 0
	for _, t := range active.Targets() {
		for _, task := range t.Tasks {
			if !strings.EqualFold(task.Name, TaskName) {
				continue
			}
			if !proj.ConditionHolds(ctx, task.Condition) {
				logger.Debug("Skipping copy task with false condition.", "target", t.Name)
				continue
			}
			if err := Correlate(ctx, proj, task, r); err != nil {
				return fmt.Errorf("target %s: %w", t.Name, err)
			}
			copies++
		}
	}
	logger.Debug("Copy tasks inspected.", "active_targets", active.Len(), "copy_tasks", copies)
	return nil
}
