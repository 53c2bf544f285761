package executor

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/maestro/ent"
	entstep "github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/workflow"
)

const (
	supervisorInterval = 15 * time.Second

	// progressLagThreshold is how far actual progress may trail the
	// elapsed-time expectation before the supervisor flags the plan.
	progressLagThreshold = 0.2
)

// superviseProgress watches a running plan and emits one slow_progress
// event when actual progress trails the expected pace by more than the
// threshold. It flags, it does not intervene; re-planning is the stage
// machine's call.
func (e *Executor) superviseProgress(ctx context.Context, rctx *workflow.RuntimeContext, plan *ent.Plan, done <-chan struct{}) {
	if plan.ExpectedDurationMs <= 0 {
		return
	}

	start := time.Now()
	ticker := time.NewTicker(supervisorInterval)
	defer ticker.Stop()

	flagged := false
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if flagged {
			continue
		}

		expected := float64(time.Since(start).Milliseconds()) / float64(plan.ExpectedDurationMs)
		if expected > 1 {
			expected = 1
		}
		actual, err := e.actualProgress(ctx, plan)
		if err != nil {
			slog.Warn("Progress check failed", "plan_id", plan.ID, "error", err)
			continue
		}

		if expected-actual <= progressLagThreshold {
			continue
		}
		flagged = true
		_, err = rctx.Emit(ctx, models.AppendEventRequest{
			EventType:     models.EventSlowProgress,
			Status:        "lagging",
			ReasonCode:    "slow_progress",
			OutputSummary: "plan progress trails the expected pace",
			Metadata: map[string]any{
				"plan_id":           plan.ID,
				"expected_progress": expected,
				"actual_progress":   actual,
			},
		})
		if err != nil {
			slog.Error("Failed to append slow_progress event", "plan_id", plan.ID, "error", err)
		}
	}
}

// actualProgress is the fraction of the plan's expected duration covered by
// steps that already settled positively. Step timeouts weight the estimate,
// so a long step counts for more than a short one.
func (e *Executor) actualProgress(ctx context.Context, plan *ent.Plan) (float64, error) {
	settled, err := e.client.Step.Query().
		Where(
			entstep.PlanID(plan.ID),
			entstep.StateIn(entstep.StateSucceeded, entstep.StateSkipped),
		).
		All(ctx)
	if err != nil {
		return 0, err
	}

	var coveredMS int64
	for _, s := range settled {
		coveredMS += s.TimeoutMs
	}
	progress := float64(coveredMS) / float64(plan.ExpectedDurationMs)
	if progress > 1 {
		progress = 1
	}
	return progress, nil
}
