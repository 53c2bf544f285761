// Package orchestrator is the stage machine: it drives each workflow
// through the canonical pipeline, one stage at a time, with every
// transition checked against the table and every stage bracketed by
// events. It is the only component that moves workflows between stages.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/maestro/ent"
	entplan "github.com/codeready-toolchain/maestro/ent/plan"
	entstep "github.com/codeready-toolchain/maestro/ent/step"
	entworkflow "github.com/codeready-toolchain/maestro/ent/workflow"
	"github.com/codeready-toolchain/maestro/pkg/approval"
	"github.com/codeready-toolchain/maestro/pkg/checkpoint"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/executor"
	"github.com/codeready-toolchain/maestro/pkg/gateway"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/planner"
	"github.com/codeready-toolchain/maestro/pkg/queue"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/sandbox"
	"github.com/codeready-toolchain/maestro/pkg/workflow"
)

// Reflector digests a concluded workflow during the reflection stage.
// Implemented by reflector.Reflector; an interface here so the stage
// machine does not depend on the learning layer.
type Reflector interface {
	ReflectWorkflow(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, plan *ent.Plan) error
}

// Orchestrator owns the stage machine. It implements the queue worker
// pool's WorkflowExecutor contract: a claimed workflow.run task becomes a
// full pipeline run ending in a terminal workflow status.
type Orchestrator struct {
	client      *ent.Client
	events      *eventlog.Log
	registry    *registry.Registry
	llm         workflow.Generator
	sandbox     *sandbox.Sandbox
	checkpoints *checkpoint.Store
	planner     *planner.Planner
	gate        *approval.Gate
	executor    *executor.Executor
	reflector   Reflector
	cfg         *config.Config
}

// New wires the stage machine. reflector may be nil; reflection then only
// brackets the stage with events.
func New(
	client *ent.Client,
	events *eventlog.Log,
	reg *registry.Registry,
	llm workflow.Generator,
	sb *sandbox.Sandbox,
	checkpoints *checkpoint.Store,
	plnr *planner.Planner,
	gate *approval.Gate,
	exec *executor.Executor,
	reflector Reflector,
	cfg *config.Config,
) *Orchestrator {
	return &Orchestrator{
		client:      client,
		events:      events,
		registry:    reg,
		llm:         llm,
		sandbox:     sb,
		checkpoints: checkpoints,
		planner:     plnr,
		gate:        gate,
		executor:    exec,
		reflector:   reflector,
		cfg:         cfg,
	}
}

// flow is the in-memory state of one pipeline run. Everything durable
// lives in the database; flow only carries loop bounds and hand-offs
// between adjacent stages.
type flow struct {
	plan  *ent.Plan
	steps []*ent.Step

	clarified       bool   // validator_a may loop to interpretation once
	clarifyFeedback string // the validator's objection, fed back in

	replanned      bool // execution and validator_b share one re-plan budget
	planVersion    int
	feedback       string // human modification feedback
	failureContext string // executor failure summary

	response  string
	reasoning string
	modelUsed string
}

// Execute runs one workflow through the pipeline. Implements
// queue.WorkflowExecutor.
func (o *Orchestrator) Execute(ctx context.Context, workflowID string) error {
	wf, err := o.client.Workflow.Get(ctx, workflowID)
	if err != nil {
		return fmt.Errorf("failed to load workflow: %w", err)
	}

	rctx := &workflow.RuntimeContext{
		WorkflowID:  wf.ID,
		SessionID:   wf.SessionID,
		Events:      o.events,
		Registry:    o.registry,
		LLM:         o.llm,
		Sandbox:     o.sandbox,
		Checkpoints: o.checkpoints,
	}

	if wf.EventSequence == 0 {
		started, err := rctx.WithStage(models.StageInterpretation, "orchestrator", "stage_machine").
			Emit(ctx, models.AppendEventRequest{
				EventType:    models.EventWorkflowStart,
				Status:       "running",
				InputSummary: wf.Message,
				Metadata:     map[string]any{"request_type": wf.RequestType},
			})
		if err != nil {
			return o.abort(ctx, wf, err)
		}
		rctx = rctx.WithParent(started.EventID)
	} else {
		_, err := rctx.WithStage(models.Stage(wf.CurrentStage), "orchestrator", "stage_machine").
			Emit(ctx, models.AppendEventRequest{
				EventType: models.EventWorkflowResumed,
				Status:    "running",
				Metadata:  map[string]any{"stage": wf.CurrentStage},
			})
		if err != nil {
			return o.abort(ctx, wf, err)
		}
	}

	f := &flow{planVersion: 1}
	o.restoreFlow(ctx, wf, f)

	stage := models.Stage(wf.CurrentStage)
	for {
		next, err := o.runStage(ctx, rctx, wf, stage, f)
		if err != nil {
			return o.settleFailure(ctx, rctx, wf, stage, err)
		}
		if next == "" {
			return nil
		}
		if !canTransition(stage, next) {
			return o.settleFailure(ctx, rctx, wf, stage, &TransitionError{From: string(stage), To: string(next)})
		}

		wf, err = o.client.Workflow.UpdateOneID(wf.ID).
			SetCurrentStage(entworkflow.CurrentStage(next)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to advance stage: %w", err)
		}
		stage = next
	}
}

// restoreFlow rebuilds loop state for a resumed workflow so bounds hold
// across restarts: an existing plan means planning already ran; a
// superseded plan means the re-plan budget is spent.
func (o *Orchestrator) restoreFlow(ctx context.Context, wf *ent.Workflow, f *flow) {
	plans, err := o.client.Plan.Query().
		Where(entplan.WorkflowID(wf.ID)).
		Order(ent.Desc(entplan.FieldVersion)).
		All(ctx)
	if err != nil || len(plans) == 0 {
		return
	}

	for _, p := range plans {
		if models.PlanStatus(p.Status) == models.PlanSuperseded {
			f.replanned = true
		}
	}
	latest := plans[0]
	if latest.Primary {
		f.plan = latest
		f.planVersion = latest.Version
		f.steps, _ = o.client.Step.Query().
			Where(entstep.PlanID(latest.ID)).
			Order(ent.Asc(entstep.FieldIndex)).
			All(ctx)
	}
}

// runStage brackets one stage with started/completed events and dispatches
// to its handler. The returned stage is the requested successor; empty
// means the pipeline concluded.
func (o *Orchestrator) runStage(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, stage models.Stage, f *flow) (models.Stage, error) {
	role, ok := stageRoles[stage]
	if !ok {
		return "", &TransitionError{From: string(wf.CurrentStage), To: string(stage)}
	}
	srctx := rctx.WithStage(stage, role, "stage_machine")

	started, err := srctx.Emit(ctx, models.AppendEventRequest{
		EventType: models.EventStageStarted,
		Status:    "running",
	})
	if err != nil {
		return "", err
	}
	srctx = srctx.WithParent(started.EventID)

	var next models.Stage
	switch stage {
	case models.StageInterpretation:
		next, err = o.interpret(ctx, srctx, wf, f)
	case models.StageValidatorA:
		next, err = o.validateInterpretation(ctx, srctx, wf, f)
	case models.StageRouting:
		next, err = o.route(ctx, srctx, wf, f)
	case models.StagePlanning:
		next, err = o.plan(ctx, srctx, wf, f)
	case models.StageValidatorB:
		next, err = o.validatePlan(ctx, srctx, wf, f)
	case models.StageExecution:
		next, err = o.execute(ctx, srctx, wf, f)
	case models.StageReflection:
		next, err = o.reflect(ctx, srctx, wf, f)
	case models.StageRegistryUpdate:
		next, err = o.finish(ctx, srctx, wf, f)
	default:
		err = &TransitionError{From: string(stage), To: "?"}
	}
	if err != nil {
		_, emitErr := srctx.Emit(ctx, models.AppendEventRequest{
			EventType:     models.EventStageFailed,
			Status:        "failed",
			OutputSummary: err.Error(),
		})
		if emitErr != nil {
			slog.Error("Failed to append stage.failed event", "workflow_id", wf.ID, "stage", stage, "error", emitErr)
		}
		return "", err
	}

	_, err = srctx.Emit(ctx, models.AppendEventRequest{
		EventType: models.EventStageCompleted,
		Status:    "completed",
		Metadata:  map[string]any{"next_stage": string(next)},
	})
	if err != nil {
		return "", err
	}
	return next, nil
}

// route picks the path after validation: simple questions shortcut straight
// to execution, everything else goes through planning. The stage bracket in
// runStage records the outcome, with the target in next_stage.
func (o *Orchestrator) route(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, f *flow) (models.Stage, error) {
	if models.RequestType(wf.RequestType) == models.RequestTypeSimpleQuestion {
		return models.StageExecution, nil
	}
	return models.StagePlanning, nil
}

// plan runs the planner: a fresh plan on the first pass, a re-plan with
// failure context or human feedback on the bounded loops back.
func (o *Orchestrator) plan(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, f *flow) (models.Stage, error) {
	alternatives := 0
	if o.cfg != nil && o.cfg.Planner != nil {
		alternatives = o.cfg.Planner.DefaultAlternatives
	}
	if n, ok := wf.Metadata["num_alternatives"].(float64); ok && int(n) > 0 {
		alternatives = int(n)
	}

	var result *planner.Result
	var err error
	if f.plan != nil && (f.failureContext != "" || f.feedback != "") {
		result, err = o.planner.Replan(ctx, rctx, f.plan, f.failureContext, f.feedback)
	} else {
		result, err = o.planner.GeneratePlan(ctx, rctx, planner.Request{
			WorkflowID:           wf.ID,
			SessionID:            wf.SessionID,
			Goal:                 goalOf(wf),
			RequestType:          models.RequestType(wf.RequestType),
			Version:              f.planVersion,
			GenerateAlternatives: alternatives > 1,
			NumAlternatives:      alternatives,
		})
	}
	if err != nil {
		return "", err
	}

	f.plan = result.Plan
	f.steps = result.Steps
	f.planVersion = result.Plan.Version
	f.failureContext = ""
	f.feedback = ""
	return models.StageValidatorB, nil
}

// validatePlan is the approval gate: auto-approve when policy allows,
// otherwise block on the human decision.
func (o *Orchestrator) validatePlan(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, f *flow) (models.Stage, error) {
	decision, err := o.gate.Evaluate(ctx, f.plan, f.steps, models.RequestType(wf.RequestType))
	if err != nil {
		return "", err
	}

	if !decision.Required {
		err := o.client.Plan.UpdateOneID(f.plan.ID).
			SetStatus(entplan.StatusApproved).
			Exec(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to auto-approve plan: %w", err)
		}
		_, err = rctx.Emit(ctx, models.AppendEventRequest{
			EventType:     models.EventApprovalDecided,
			Status:        "approved",
			OutputSummary: decision.Rationale,
			Metadata: map[string]any{
				"plan_id":     f.plan.ID,
				"auto":        true,
				"risk_score":  decision.RiskScore,
				"agent_trust": decision.AgentTrust,
			},
		})
		if err != nil {
			return "", err
		}
	} else {
		req, err := o.gate.Request(ctx, f.plan, wf.SessionID, decision)
		if err != nil {
			return "", err
		}
		req, err = o.gate.Await(ctx, req.ID)
		if err != nil {
			return "", err
		}
		if models.ApprovalStatus(req.Status) == models.ApprovalModified {
			if f.replanned {
				return "", fmt.Errorf("plan modification requested after the re-plan budget was spent: %w", approval.ErrApprovalRejected)
			}
			f.replanned = true
			if req.Feedback != nil {
				f.feedback = *req.Feedback
			}
			f.planVersion++
			return models.StagePlanning, nil
		}
	}

	f.plan, err = o.client.Plan.Get(ctx, f.plan.ID)
	if err != nil {
		return "", err
	}

	if models.RequestType(wf.RequestType) == models.RequestTypePlanningOnly {
		f.response = planSummary(f.plan, f.steps)
		err := o.client.Workflow.UpdateOneID(wf.ID).SetResponse(f.response).Exec(ctx)
		if err != nil {
			return "", err
		}
		return models.StageReflection, nil
	}
	return models.StageExecution, nil
}

// execute runs the approved plan, or answers directly for the simple
// question shortcut. A recoverable plan failure spends the one re-plan.
func (o *Orchestrator) execute(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, f *flow) (models.Stage, error) {
	if f.plan == nil {
		if err := o.answerDirect(ctx, rctx, wf, f); err != nil {
			return "", err
		}
		return models.StageReflection, nil
	}

	err := o.executor.Execute(ctx, rctx, f.plan.ID, !f.replanned)
	var replan *executor.ReplanRequested
	if errors.As(err, &replan) {
		f.replanned = true
		f.failureContext = replan.FailureContext
		f.planVersion++
		return models.StagePlanning, nil
	}
	if err != nil {
		return "", err
	}

	f.response, f.reasoning = o.composeResponse(ctx, f)
	update := o.client.Workflow.UpdateOneID(wf.ID).SetResponse(f.response)
	if f.reasoning != "" {
		update.SetReasoning(f.reasoning)
	}
	if err := update.Exec(ctx); err != nil {
		return "", err
	}
	return models.StageReflection, nil
}

// reflect hands the concluded run to the learning layer. Reflection
// failures are logged, not fatal: a workflow that did its work completes
// even when the lesson is lost.
func (o *Orchestrator) reflect(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, f *flow) (models.Stage, error) {
	if o.reflector != nil {
		if err := o.reflector.ReflectWorkflow(ctx, rctx, wf, f.plan); err != nil {
			if errors.Is(err, eventlog.ErrEventLogUnavailable) {
				return "", err
			}
			slog.Warn("Reflection failed", "workflow_id", wf.ID, "error", err)
		}
	}
	return models.StageRegistryUpdate, nil
}

// finish writes the terminal workflow status and the closing event.
func (o *Orchestrator) finish(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, f *flow) (models.Stage, error) {
	update := o.client.Workflow.UpdateOneID(wf.ID).
		SetStatus(entworkflow.StatusCompleted).
		SetCompletedAt(time.Now())
	if f.modelUsed != "" {
		update.SetModelUsed(f.modelUsed)
	}
	if err := update.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to complete workflow: %w", err)
	}

	_, err := rctx.Emit(ctx, models.AppendEventRequest{
		EventType:     models.EventWorkflowComplete,
		Status:        "completed",
		OutputSummary: f.response,
	})
	if err != nil {
		return "", err
	}
	return "", nil
}

// answerDirect is the SIMPLE_QUESTION path: one gateway call under the
// execution prompt, no plan.
func (o *Orchestrator) answerDirect(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, f *flow) error {
	res, err := o.registry.ResolvePrompt(ctx, models.StageExecution, "execution", registry.ResolveHints{})
	if err != nil {
		return err
	}

	system := res.Body
	if wf.SystemPrompt != nil && *wf.SystemPrompt != "" {
		system = *wf.SystemPrompt
	}
	req := gateway.Request{
		WorkflowID:    wf.ID,
		SessionID:     wf.SessionID,
		Stage:         models.StageExecution,
		ComponentRole: "execution",
		ComponentName: "inline_llm",
		TaskClass:     models.TaskClassFor(models.RequestType(wf.RequestType)),
		System:        system,
		Messages:      []gateway.Message{{Role: "user", Content: goalOf(wf)}},
		Temperature:   wf.Temperature,
		PromptID:      &res.PromptID,
		PromptVersion: &res.PromptVersion,
	}
	if wf.ModelOverride != nil {
		req.ModelOverride = *wf.ModelOverride
	}

	result, err := o.llm.Generate(ctx, req)
	if err != nil {
		return err
	}

	f.response = result.Text
	f.reasoning = result.Reasoning
	f.modelUsed = result.ServerID
	update := o.client.Workflow.UpdateOneID(wf.ID).
		SetResponse(result.Text).
		SetModelUsed(result.ServerID)
	if result.Reasoning != "" {
		update.SetReasoning(result.Reasoning)
	}
	return update.Exec(ctx)
}

// composeResponse folds the plan's terminal outputs into the user-facing
// answer: the last succeeded step's text, or a completion notice.
func (o *Orchestrator) composeResponse(ctx context.Context, f *flow) (string, string) {
	steps, err := o.client.Step.Query().
		Where(entstep.PlanID(f.plan.ID), entstep.StateEQ(entstep.StateSucceeded)).
		Order(ent.Desc(entstep.FieldIndex)).
		All(ctx)
	if err != nil || len(steps) == 0 {
		return "Plan completed.", ""
	}

	for _, s := range steps {
		if text, ok := s.Outputs["text"].(string); ok && text != "" {
			return text, ""
		}
	}
	last := steps[0]
	if len(last.Outputs) > 0 {
		return fmt.Sprintf("Plan completed; final step %q produced structured output.", last.Name), ""
	}
	return "Plan completed.", ""
}

// settleFailure classifies a stage error and writes the terminal workflow
// state. Environment failures pause instead: the queued task retries and
// the workflow resumes from its current stage.
func (o *Orchestrator) settleFailure(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, stage models.Stage, err error) error {
	bg := context.WithoutCancel(ctx)

	if errors.Is(err, eventlog.ErrEventLogUnavailable) {
		return o.abort(bg, wf, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// The worker's fallback writes cancelled/timeout terminal state.
		return err
	}
	if errors.Is(err, gateway.ErrLLMUnavailable) || errors.Is(err, registry.ErrNoModelAvailable) {
		pauseErr := o.client.Workflow.UpdateOneID(wf.ID).
			SetStatus(entworkflow.StatusPaused).
			SetReasonCode("llm_unavailable").
			Exec(bg)
		if pauseErr != nil {
			slog.Error("Failed to pause workflow", "workflow_id", wf.ID, "error", pauseErr)
		}
		return err // retryable: the task requeues and resumes this stage
	}

	kind, reason := classifyFailure(err)
	failingEventID := ""
	if record, emitErr := rctx.WithStage(stage, stageRoles[stage], "stage_machine").
		Emit(bg, models.AppendEventRequest{
			EventType:     models.EventWorkflowFailed,
			Status:        "failed",
			OutputSummary: err.Error(),
			ReasonCode:    reason,
			Metadata:      map[string]any{"error_kind": kind},
		}); emitErr == nil {
		failingEventID = record.EventID
	}

	update := o.client.Workflow.UpdateOneID(wf.ID).
		SetStatus(entworkflow.StatusFailed).
		SetErrorKind(kind).
		SetReasonCode(reason).
		SetCompletedAt(time.Now())
	if failingEventID != "" {
		update.SetFailingEventID(failingEventID)
	}
	if updateErr := update.Exec(bg); updateErr != nil {
		slog.Error("Failed to write failed workflow status", "workflow_id", wf.ID, "error", updateErr)
	}
	return &queue.Permanent{Err: err}
}

// abort handles event log loss: the audit trail is gone, so nothing else
// is attempted beyond the status write.
func (o *Orchestrator) abort(ctx context.Context, wf *ent.Workflow, err error) error {
	updateErr := o.client.Workflow.UpdateOneID(wf.ID).
		SetStatus(entworkflow.StatusFailed).
		SetErrorKind("EventLogUnavailable").
		SetReasonCode("eventlog_unavailable").
		SetCompletedAt(time.Now()).
		Exec(context.WithoutCancel(ctx))
	if updateErr != nil {
		slog.Error("Failed to abort workflow", "workflow_id", wf.ID, "error", updateErr)
	}
	return err
}

// classifyFailure maps a pipeline error to the {kind, reason_code} pair
// escalated responses carry.
func classifyFailure(err error) (kind, reason string) {
	var interp *InterpretationError
	var transition *TransitionError
	var parse *planner.ParseError
	var stepErr *executor.StepError

	switch {
	case errors.As(err, &interp):
		return "InterpretationError", "interpretation_failed"
	case errors.As(err, &transition):
		return "TransitionError", "illegal_transition"
	case errors.As(err, &parse):
		return "PlannerParseError", "planner_parse_" + parse.Phase
	case errors.Is(err, approval.ErrApprovalRejected):
		return "ApprovalRejected", "approval_rejected"
	case errors.Is(err, approval.ErrApprovalExpired):
		return "ApprovalExpired", "approval_expired"
	case errors.Is(err, registry.ErrPromptUnresolved):
		return "PromptUnresolved", "prompt_unresolved"
	case errors.As(err, &stepErr):
		return "ExecutionError", stepErr.ReasonCode
	default:
		return "ExecutionError", "stage_error"
	}
}

// goalOf prefers the interpreted goal over the raw message.
func goalOf(wf *ent.Workflow) string {
	if goal, ok := wf.Metadata["interpreted_goal"].(string); ok && goal != "" {
		return goal
	}
	return wf.Message
}

// planSummary is the PLANNING_ONLY response body.
func planSummary(plan *ent.Plan, steps []*ent.Step) string {
	summary := fmt.Sprintf("Plan v%d (%s, risk %.2f): %d steps.", plan.Version, plan.StrategyName, plan.RiskScore, len(steps))
	for _, s := range steps {
		summary += fmt.Sprintf("\n%d. %s", s.Index+1, s.Name)
		if s.Description != "" {
			summary += ": " + s.Description
		}
	}
	return summary
}
