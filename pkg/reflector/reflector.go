// Package reflector is the learning layer: it measures concluded plans,
// folds the observations into LearningPatterns the planner recalls, keeps
// per-prompt metrics, and files improvement proposals for humans to judge.
// It never changes an active registry entity on its own.
package reflector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codeready-toolchain/maestro/ent"
	entevent "github.com/codeready-toolchain/maestro/ent/executionevent"
	entstep "github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/pkg/approval"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/workflow"
)

const (
	// qualityGood is the bar for recording a plan's strategy as a success
	// the planner may recall.
	qualityGood = 0.5

	// qualityProposal is the bar below which the reflector files a prompt
	// review proposal.
	qualityProposal = 0.4
)

// Reflector digests concluded workflows.
type Reflector struct {
	client   *ent.Client
	registry *registry.Registry
	gate     *approval.Gate
}

// New creates a reflector. gate may be nil; proposals are then skipped.
func New(client *ent.Client, reg *registry.Registry, gate *approval.Gate) *Reflector {
	return &Reflector{client: client, registry: reg, gate: gate}
}

// ReflectWorkflow runs the synchronous reflection stage for one workflow.
// plan is nil for the simple-question shortcut.
func (r *Reflector) ReflectWorkflow(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, plan *ent.Plan) error {
	if err := r.recordPromptMetrics(ctx, wf); err != nil {
		return err
	}

	goal := wf.Message
	if interpreted, ok := wf.Metadata["interpreted_goal"].(string); ok && interpreted != "" {
		goal = interpreted
	}
	signature := models.RequestSignature(models.RequestType(wf.RequestType), goal)

	if plan == nil {
		// Shortcut path: the observation is just that the direct answer
		// worked (reflection only runs after a successful execution stage).
		_, err := r.registry.UpsertPattern(ctx, registry.PatternObservation{
			Kind:      models.PatternStrategy,
			Level:     models.PatternMacro,
			Signature: signature,
			Body:      map[string]any{"shortcut": true, "request_type": string(wf.RequestType)},
			Success:   true,
		})
		return err
	}

	steps, err := r.client.Step.Query().
		Where(entstep.PlanID(plan.ID)).
		Order(ent.Asc(entstep.FieldIndex)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load steps for reflection: %w", err)
	}

	rate := successRate(steps)
	actualMS := int64(0)
	if plan.ActualDurationMs != nil {
		actualMS = *plan.ActualDurationMs
	}
	quality := planQuality(rate, plan.RiskScore, plan.ExpectedDurationMs, actualMS)

	if err := r.recordStepPatterns(ctx, steps); err != nil {
		return err
	}
	if err := r.recordGroupPattern(ctx, steps, rate); err != nil {
		return err
	}

	completed := models.PlanStatus(plan.Status) == models.PlanCompleted
	_, err = r.registry.UpsertPattern(ctx, registry.PatternObservation{
		Kind:      models.PatternStrategy,
		Level:     models.PatternMacro,
		Signature: signature,
		Body: map[string]any{
			"strategy_name": plan.StrategyName,
			"strategy":      plan.Strategy,
			"risk_score":    plan.RiskScore,
			"quality":       quality,
			"steps":         len(steps),
		},
		Success: completed && quality >= qualityGood,
	})
	if err != nil {
		return err
	}

	if quality < qualityProposal {
		r.propose(ctx, wf, plan, quality)
	}
	return nil
}

// planQuality is the composite score of a concluded plan: mostly the step
// success rate, tempered by how risky the plan was and how badly it blew
// its time budget.
func planQuality(successRate, riskScore float64, expectedMS, actualMS int64) float64 {
	timeTerm := 1.0
	if actualMS > 0 && expectedMS > 0 {
		timeTerm = float64(expectedMS) / float64(actualMS)
		if timeTerm > 1 {
			timeTerm = 1
		}
	}
	return successRate*0.6 + (1-riskScore)*0.2 + timeTerm*0.2
}

// successRate is the fraction of attempted steps that succeeded. Skipped
// steps were never attempted and do not count either way.
func successRate(steps []*ent.Step) float64 {
	attempted, succeeded := 0, 0
	for _, s := range steps {
		switch models.StepState(s.State) {
		case models.StepSkipped, models.StepWaiting, models.StepReady:
			continue
		case models.StepSucceeded:
			succeeded++
			attempted++
		default:
			attempted++
		}
	}
	if attempted == 0 {
		return 0
	}
	return float64(succeeded) / float64(attempted)
}

// recordStepPatterns folds micro observations: one per tool step, keyed by
// the tool, so tool selection learns which tools actually deliver.
func (r *Reflector) recordStepPatterns(ctx context.Context, steps []*ent.Step) error {
	for _, s := range steps {
		if models.ExecutorKind(s.ExecutorKind) != models.ExecutorTool || s.ExecutorRef == "" {
			continue
		}
		state := models.StepState(s.State)
		if state != models.StepSucceeded && state != models.StepFailed {
			continue
		}
		_, err := r.registry.UpsertPattern(ctx, registry.PatternObservation{
			Kind:      models.PatternToolSelection,
			Level:     models.PatternMicro,
			Signature: "tool:" + s.ExecutorRef,
			Body:      map[string]any{"tool": s.ExecutorRef, "step_type": s.Type},
			Success:   state == models.StepSucceeded,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// recordGroupPattern folds the meso observation: the plan's shape as the
// ordered sequence of executor kinds. Plans with the same shape share one
// pattern regardless of wording.
func (r *Reflector) recordGroupPattern(ctx context.Context, steps []*ent.Step, rate float64) error {
	if len(steps) == 0 {
		return nil
	}
	kinds := make([]string, len(steps))
	for i, s := range steps {
		kinds[i] = string(s.ExecutorKind)
	}

	_, err := r.registry.UpsertPattern(ctx, registry.PatternObservation{
		Kind:      models.PatternStrategy,
		Level:     models.PatternMeso,
		Signature: models.StructuralSignature(kinds),
		Body:      map[string]any{"kinds": kinds, "success_rate": rate},
		Success:   rate >= 1,
	})
	return err
}

// recordPromptMetrics folds per-prompt success counts and moving-average
// latency from the workflow's model_response events.
func (r *Reflector) recordPromptMetrics(ctx context.Context, wf *ent.Workflow) error {
	events, err := r.client.ExecutionEvent.Query().
		Where(
			entevent.WorkflowID(wf.ID),
			entevent.EventTypeEQ(entevent.EventTypeModelResponse),
			entevent.PromptIDNotNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load model events for reflection: %w", err)
	}

	for _, ev := range events {
		version := 0
		if ev.PromptVersion != nil {
			version = *ev.PromptVersion
		}
		signature := fmt.Sprintf("prompt:%s@v%d", *ev.PromptID, version)

		latency := 0.0
		if ms, ok := ev.EventMetadata["latency_ms"].(float64); ok {
			latency = ms
		}
		avg := latency
		if existing, err := r.registry.FindPattern(ctx, models.PatternPrompt, signature); err == nil && existing != nil {
			if prev, ok := existing.Body["avg_latency_ms"].(float64); ok {
				// Same incremental mean the success rate uses.
				avg = prev + (latency-prev)/float64(existing.SampleCount+1)
			}
		}

		_, err := r.registry.UpsertPattern(ctx, registry.PatternObservation{
			Kind:      models.PatternPrompt,
			Level:     models.PatternMicro,
			Signature: signature,
			Body: map[string]any{
				"prompt_id":      *ev.PromptID,
				"prompt_version": version,
				"avg_latency_ms": avg,
			},
			Success: ev.Status == "ok",
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// propose files a prompt-review proposal when a plan scored badly. Humans
// decide; the reflector only points.
func (r *Reflector) propose(ctx context.Context, wf *ent.Workflow, plan *ent.Plan, quality float64) {
	if r.gate == nil {
		return
	}
	recommendation := fmt.Sprintf(
		"Plan v%d for request type %s concluded with quality %.2f; review the planning prompt and strategy %q.",
		plan.Version, wf.RequestType, quality, plan.StrategyName)

	_, err := r.gate.Propose(ctx, wf.ID, wf.SessionID, "prompt:planning", recommendation, map[string]any{
		"quality":    quality,
		"plan_id":    plan.ID,
		"risk_score": plan.RiskScore,
	})
	if err != nil {
		slog.Warn("Failed to file reflection proposal", "workflow_id", wf.ID, "error", err)
	}
}
