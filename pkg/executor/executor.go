// Package executor walks an approved plan's step DAG: checkpointed,
// sandboxed, retried under each step's policy, with decision branching,
// validation grading, and a progress supervisor watching for stalls.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/maestro/ent"
	entplan "github.com/codeready-toolchain/maestro/ent/plan"
	entstep "github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/queue"
	"github.com/codeready-toolchain/maestro/pkg/workflow"
)

const (
	// stepSlots bounds concurrently running steps per plan.
	stepSlots = 4

	schedulerPause     = 250 * time.Millisecond
	defaultStepTimeout = 300 * time.Second
)

// ReplanRequested tells the caller the plan failed recoverably and a new
// plan version should be generated. The executor itself never re-plans;
// the stage machine owns that loop and its bound.
type ReplanRequested struct {
	PlanID         string
	FailureContext string
}

func (e *ReplanRequested) Error() string {
	return fmt.Sprintf("plan %s requests re-planning: %s", e.PlanID, e.FailureContext)
}

// Executor runs approved plans.
type Executor struct {
	client *ent.Client
	queue  *queue.Queue
}

// New creates an executor.
func New(client *ent.Client, q *queue.Queue) *Executor {
	return &Executor{client: client, queue: q}
}

// runState is the shared bookkeeping of one Execute call.
type runState struct {
	planID       string
	checkpointID string

	mu       sync.Mutex
	fatal    error // event log failure; aborts the workflow
	inFlight int
}

func (s *runState) setFatal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fatal == nil {
		s.fatal = err
	}
}

func (s *runState) fatalErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fatal
}

// Execute runs one approved plan until it is terminal. allowReplan governs
// the recoverable-failure path: true returns *ReplanRequested, false fails
// the plan with the pre-plan checkpoint verified for rollback.
func (e *Executor) Execute(ctx context.Context, rctx *workflow.RuntimeContext, planID string, allowReplan bool) error {
	plan, err := e.client.Plan.Get(ctx, planID)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	switch models.PlanStatus(plan.Status) {
	case models.PlanApproved:
	case models.PlanExecuting, models.PlanPaused:
		// Resuming after a crash, an orphan recovery, or a pause.
	default:
		return fmt.Errorf("plan %s is %s, not approved", planID, plan.Status)
	}

	steps, err := e.planSteps(ctx, planID)
	if err != nil {
		return err
	}

	checkpointID, err := rctx.Checkpoints.Snapshot(ctx, "plan", planID, snapshotState(plan, steps), "pre_plan", rctx.WorkflowID)
	if err != nil {
		return fmt.Errorf("pre-plan checkpoint: %w", err)
	}
	if err := e.client.Plan.UpdateOneID(planID).SetStatus(entplan.StatusExecuting).Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark plan executing: %w", err)
	}

	state := &runState{planID: planID, checkpointID: checkpointID}

	supervisorDone := make(chan struct{})
	go e.superviseProgress(ctx, rctx, plan, supervisorDone)
	defer close(supervisorDone)

	err = e.schedule(ctx, rctx, plan, state, allowReplan)
	if fatal := state.fatalErr(); fatal != nil {
		return fatal
	}
	return err
}

// schedule is the plan loop: advance readiness, lease step tasks, run them
// in bounded goroutines, and settle the plan when the DAG drains.
func (e *Executor) schedule(ctx context.Context, rctx *workflow.RuntimeContext, plan *ent.Plan, state *runState, allowReplan bool) error {
	workerID := "exec-" + rctx.WorkflowID
	queueID := queue.StepQueueID(plan.ID)
	sem := make(chan struct{}, stepSlots)
	var wg sync.WaitGroup

	for {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			e.cancelRemaining(rctx, plan)
			return err
		}
		if fatal := state.fatalErr(); fatal != nil {
			wg.Wait()
			return fatal
		}

		if err := e.advanceReadiness(ctx, rctx, plan); err != nil {
			return err
		}

		steps, err := e.planSteps(ctx, plan.ID)
		if err != nil {
			return err
		}
		running := state.running()
		if done, failed := planDrained(steps); done && running == 0 {
			wg.Wait()
			return e.settle(ctx, rctx, plan, state, failed, allowReplan)
		}

		task, err := e.queue.Lease(ctx, workerID, queueID, stepSlots)
		if err != nil {
			if errors.Is(err, queue.ErrNoTasksAvailable) || errors.Is(err, queue.ErrAtCapacity) {
				sleepCtx(ctx, schedulerPause)
				continue
			}
			wg.Wait()
			return err
		}

		sem <- struct{}{}
		wg.Add(1)
		state.addInFlight(1)
		go func() {
			defer func() {
				<-sem
				state.addInFlight(-1)
				wg.Done()
			}()
			e.runStep(ctx, rctx, plan, task, state)
		}()
	}
}

func (s *runState) addInFlight(d int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight += d
}

func (s *runState) running() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// settle writes the plan's terminal status once the DAG has drained.
func (e *Executor) settle(ctx context.Context, rctx *workflow.RuntimeContext, plan *ent.Plan, state *runState, failed *ent.Step, allowReplan bool) error {
	if failed == nil {
		err := e.client.Plan.UpdateOneID(plan.ID).
			SetStatus(entplan.StatusCompleted).
			SetActualDurationMs(time.Since(plan.CreatedAt).Milliseconds()).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to complete plan: %w", err)
		}
		_, err = rctx.Emit(ctx, models.AppendEventRequest{
			EventType:     models.EventPlanCompleted,
			Status:        "completed",
			OutputSummary: fmt.Sprintf("plan v%d completed", plan.Version),
			Metadata:      map[string]any{"plan_id": plan.ID},
		})
		return err
	}

	reasonCode := stringOrEmpty(failed.ReasonCode)
	if reasonCode == "" {
		reasonCode = "step_error"
	}
	failureContext := fmt.Sprintf("step %q failed: %s (%s)", failed.Name, reasonCode, stringOrEmpty(failed.ErrorKind))

	// Steps that explicitly demand human sign-off never re-plan around a
	// failure; the sandbox or step reason surfaces directly.
	if failed.ApprovalRequired {
		return e.failPlan(ctx, rctx, plan, state, reasonCode, failureContext)
	}
	if allowReplan {
		return &ReplanRequested{PlanID: plan.ID, FailureContext: failureContext}
	}
	return e.failPlan(ctx, rctx, plan, state, reasonCode, failureContext)
}

// failPlan marks the plan failed and verifies the pre-plan checkpoint is
// intact for rollback. The checkpoint id travels in the event so callers
// and operators can reinstate the pre-plan state.
func (e *Executor) failPlan(ctx context.Context, rctx *workflow.RuntimeContext, plan *ent.Plan, state *runState, reasonCode, failureContext string) error {
	if err := e.client.Plan.UpdateOneID(plan.ID).
		SetStatus(entplan.StatusFailed).
		SetReasonCode(reasonCode).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to fail plan: %w", err)
	}

	rollback := "verified"
	if _, err := rctx.Checkpoints.Rollback(ctx, "plan", plan.ID, state.checkpointID); err != nil {
		rollback = err.Error()
		slog.Error("Pre-plan checkpoint failed verification", "plan_id", plan.ID, "error", err)
	}

	_, err := rctx.Emit(ctx, models.AppendEventRequest{
		EventType:     models.EventPlanFailed,
		Status:        "failed",
		OutputSummary: failureContext,
		ReasonCode:    reasonCode,
		Metadata: map[string]any{
			"plan_id":       plan.ID,
			"checkpoint_id": state.checkpointID,
			"rollback":      rollback,
		},
	})
	if err != nil {
		return err
	}
	return &StepError{Kind: ErrUnknown, ReasonCode: reasonCode, Err: errors.New(failureContext)}
}

// runStep executes one leased step task end to end.
func (e *Executor) runStep(ctx context.Context, rctx *workflow.RuntimeContext, plan *ent.Plan, task *ent.QueueTask, state *runState) {
	stepID, _ := task.Payload["step_id"].(string)
	step, err := e.client.Step.Get(ctx, stepID)
	if err != nil {
		_ = e.queue.Fail(context.WithoutCancel(ctx), task.ID, fmt.Sprintf("failed to load step: %v", err), true)
		return
	}
	if models.StepState(step.State) != models.StepReady {
		// Stale lease: a retry of a task whose step already settled.
		_ = e.queue.Succeed(context.WithoutCancel(ctx), task.ID)
		return
	}

	stepCtx := rctx.WithStage(models.StageExecution, "execution", componentNameOf(step))
	out, runErr := e.attemptStep(ctx, stepCtx, plan, step)

	bg := context.WithoutCancel(ctx)
	if runErr == nil {
		if err := e.completeStep(bg, stepCtx, step, out); err != nil {
			state.setFatal(err)
			_ = e.queue.Fail(bg, task.ID, err.Error(), false)
			return
		}
		_ = e.queue.Succeed(bg, task.ID)
		return
	}

	if errors.Is(runErr, eventlog.ErrEventLogUnavailable) {
		state.setFatal(runErr)
		_ = e.queue.Fail(bg, task.ID, runErr.Error(), false)
		return
	}

	stepErr := classify(runErr)
	attempts := task.Attempts + 1
	exhausted := !stepErr.Retryable() || attempts >= step.MaxAttempts

	if exhausted {
		e.recordStepFailure(bg, stepCtx, step, stepErr, out, attempts, false)
		// The task itself is done; the failure lives on the step row and
		// drives the plan-level settle.
		_ = e.queue.Succeed(bg, task.ID)
		return
	}

	e.recordStepFailure(bg, stepCtx, step, stepErr, out, attempts, true)
	_ = e.queue.Fail(bg, task.ID, stepErr.Error(), true)
}

// attemptStep runs one attempt: checkpoint, started event, dispatch.
func (e *Executor) attemptStep(ctx context.Context, rctx *workflow.RuntimeContext, plan *ent.Plan, step *ent.Step) (*StepOutput, error) {
	steps, err := e.planSteps(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	if _, err := rctx.Checkpoints.Snapshot(ctx, "step", step.ID, snapshotState(plan, steps), "pre_step", rctx.WorkflowID); err != nil {
		return nil, fmt.Errorf("pre-step checkpoint: %w", err)
	}

	if err := e.client.Step.UpdateOneID(step.ID).
		SetState(entstep.StateRunning).
		SetStartedAt(time.Now()).
		AddAttempts(1).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark step running: %w", err)
	}
	started, err := rctx.Emit(ctx, models.AppendEventRequest{
		EventType:     models.EventStepStarted,
		Status:        "running",
		InputSummary:  step.Description,
		Metadata:      map[string]any{"step_id": step.ID, "step": step.Name, "executor_kind": step.ExecutorKind},
	})
	if err != nil {
		return nil, err
	}
	rctx = rctx.WithParent(started.EventID)

	prior, err := e.priorOutputs(ctx, step, steps)
	if err != nil {
		return nil, err
	}
	in := StepInput{Plan: plan, Step: step, PriorOutputs: prior}

	timeout := time.Duration(step.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultStepTimeout
	}
	stepCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch models.StepType(step.Type) {
	case models.StepDecision:
		out, outcome, err := e.runDecision(stepCtx, rctx, in, branchesOf(step, steps))
		if err != nil {
			return nil, err
		}
		if err := e.applyDecision(ctx, rctx, step, outcome.SelectedBranch, steps); err != nil {
			return nil, err
		}
		return out, nil
	case models.StepValidation:
		return e.runValidation(stepCtx, rctx, in)
	default:
		runner, ok := e.runners()[models.ExecutorKind(step.ExecutorKind)]
		if !ok {
			return nil, &StepError{Kind: ErrStructure, ReasonCode: "unknown_executor_kind",
				Err: fmt.Errorf("step %s has executor kind %q", step.Name, step.ExecutorKind)}
		}
		return runner.Run(stepCtx, rctx, in)
	}
}

// completeStep records success and advances downstream readiness on the
// next scheduler pass.
func (e *Executor) completeStep(ctx context.Context, rctx *workflow.RuntimeContext, step *ent.Step, out *StepOutput) error {
	update := e.client.Step.UpdateOneID(step.ID).
		SetState(entstep.StateSucceeded).
		SetCompletedAt(time.Now()).
		SetQualityScore(out.Quality)
	if out.Outputs != nil {
		update.SetOutputs(out.Outputs)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark step succeeded: %w", err)
	}

	_, err := rctx.Emit(ctx, models.AppendEventRequest{
		EventType:     models.EventStepCompleted,
		Status:        "succeeded",
		OutputSummary: out.Summary,
		Metadata:      map[string]any{"step_id": step.ID, "step": step.Name, "quality": out.Quality},
	})
	return err
}

// recordStepFailure writes the failure to the step row and the event log.
// Retrying attempts keep the step ready so the requeued task finds it.
func (e *Executor) recordStepFailure(ctx context.Context, rctx *workflow.RuntimeContext, step *ent.Step, stepErr *StepError, out *StepOutput, attempts int, retrying bool) {
	target := entstep.StateFailed
	status := "failed"
	if retrying {
		target = entstep.StateReady
		status = "retrying"
	}

	update := e.client.Step.UpdateOneID(step.ID).
		SetState(target).
		SetErrorKind(string(stepErr.Kind)).
		SetReasonCode(stepErr.ReasonCode)
	if !retrying {
		update.SetCompletedAt(time.Now())
	}
	if out != nil && out.Outputs != nil {
		update.SetOutputs(out.Outputs) // partial validation details survive
	}
	if err := update.Exec(ctx); err != nil {
		slog.Error("Failed to record step failure", "step_id", step.ID, "error", err)
	}

	_, err := rctx.Emit(ctx, models.AppendEventRequest{
		EventType:     models.EventStepFailed,
		Status:        status,
		OutputSummary: stepErr.Error(),
		ReasonCode:    stepErr.ReasonCode,
		Metadata: map[string]any{
			"step_id":    step.ID,
			"step":       step.Name,
			"error_kind": string(stepErr.Kind),
			"attempts":   attempts,
			"retrying":   retrying,
		},
	})
	if err != nil {
		slog.Error("Failed to append step.failed event", "step_id", step.ID, "error", err)
	}
}

// applyDecision skips the not-taken branches and their exclusive
// descendants.
func (e *Executor) applyDecision(ctx context.Context, rctx *workflow.RuntimeContext, decision *ent.Step, selected string, steps []*ent.Step) error {
	for _, id := range skippedByDecision(decision, selected, steps) {
		n, err := e.client.Step.Update().
			Where(entstep.ID(id), entstep.StateEQ(entstep.StateWaiting)).
			SetState(entstep.StateSkipped).
			SetReasonCode("branch_not_taken").
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to skip step %s: %w", id, err)
		}
		if n == 0 {
			continue
		}
		skipped := stepByID(steps, id)
		_, err = rctx.Emit(ctx, models.AppendEventRequest{
			EventType:     models.EventStepSkipped,
			Status:        "skipped",
			ReasonCode:    "branch_not_taken",
			OutputSummary: fmt.Sprintf("decision %q selected %q", decision.Name, selected),
			Metadata:      map[string]any{"step_id": id, "step": skipped.Name},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// reasonDependencyFailed marks steps foreclosed by an upstream failure, as
// opposed to branch_not_taken skips, which count as settled positively.
const reasonDependencyFailed = "dependency_failed"

// advanceReadiness promotes waiting steps whose dependencies all settled
// positively (succeeded or skipped on a branch not taken) and enqueues
// their tasks. Waiting steps behind a failed or cancelled dependency are
// skipped with reason_code=dependency_failed, cascading through their own
// dependents, so the DAG always drains and the plan settles. The
// compare-and-set on waiting makes double enqueue impossible.
func (e *Executor) advanceReadiness(ctx context.Context, rctx *workflow.RuntimeContext, plan *ent.Plan) error {
	steps, err := e.planSteps(ctx, plan.ID)
	if err != nil {
		return err
	}
	byID := make(map[string]*ent.Step, len(steps))
	for _, s := range steps {
		byID[s.ID] = s
	}

	// Index order is topological, so a cascade skip is visible to the
	// dependents examined later in the same pass.
	for _, s := range steps {
		if models.StepState(s.State) != models.StepWaiting {
			continue
		}
		ready, blocked := true, false
		for _, dep := range s.Dependencies {
			d := byID[dep]
			if d == nil || foreclosed(d) {
				blocked = true
				break
			}
			if st := models.StepState(d.State); st != models.StepSucceeded && st != models.StepSkipped {
				ready = false
			}
		}
		if blocked {
			if err := e.skipForeclosed(ctx, rctx, s); err != nil {
				return err
			}
			continue
		}
		if !ready {
			continue
		}

		n, err := e.client.Step.Update().
			Where(entstep.ID(s.ID), entstep.StateEQ(entstep.StateWaiting)).
			SetState(entstep.StateReady).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to ready step %s: %w", s.ID, err)
		}
		if n == 0 {
			continue
		}

		_, err = e.queue.Enqueue(ctx, queue.Task{
			QueueID:     queue.StepQueueID(plan.ID),
			Kind:        "step.execute",
			MaxAttempts: s.MaxAttempts,
			Payload: map[string]any{
				"workflow_id": rctx.WorkflowID,
				"session_id":  rctx.SessionID,
				"plan_id":     plan.ID,
				"step_id":     s.ID,
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// skipForeclosed settles a waiting step whose dependency chain already
// failed. The in-memory state is updated alongside the row so dependents
// later in the pass observe the skip.
func (e *Executor) skipForeclosed(ctx context.Context, rctx *workflow.RuntimeContext, s *ent.Step) error {
	n, err := e.client.Step.Update().
		Where(entstep.ID(s.ID), entstep.StateEQ(entstep.StateWaiting)).
		SetState(entstep.StateSkipped).
		SetReasonCode(reasonDependencyFailed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to skip step %s: %w", s.ID, err)
	}
	if n == 0 {
		return nil
	}
	reason := reasonDependencyFailed
	s.State = entstep.StateSkipped
	s.ReasonCode = &reason

	_, err = rctx.Emit(ctx, models.AppendEventRequest{
		EventType:  models.EventStepSkipped,
		Status:     "skipped",
		ReasonCode: reasonDependencyFailed,
		Metadata:   map[string]any{"step_id": s.ID, "step": s.Name},
	})
	return err
}

// foreclosed reports whether a settled dependency forecloses its
// dependents: failed or cancelled outright, or itself skipped because a
// dependency failed.
func foreclosed(s *ent.Step) bool {
	switch models.StepState(s.State) {
	case models.StepFailed, models.StepCancelled:
		return true
	case models.StepSkipped:
		return stringOrEmpty(s.ReasonCode) == reasonDependencyFailed
	default:
		return false
	}
}

// cancelRemaining marks every unsettled step cancelled and snapshots the
// state, so a resume can pick up from the last pre-step checkpoint.
func (e *Executor) cancelRemaining(rctx *workflow.RuntimeContext, plan *ent.Plan) {
	ctx := context.Background()
	steps, err := e.planSteps(ctx, plan.ID)
	if err != nil {
		slog.Error("Failed to load steps for cancellation", "plan_id", plan.ID, "error", err)
		return
	}

	for _, s := range steps {
		if models.StepState(s.State).IsTerminal() {
			continue
		}
		err := e.client.Step.UpdateOneID(s.ID).
			SetState(entstep.StateCancelled).
			SetReasonCode("workflow_cancelled").
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to cancel step", "step_id", s.ID, "error", err)
			continue
		}
		_, err = rctx.Emit(ctx, models.AppendEventRequest{
			EventType:  models.EventStepCancelled,
			Status:     "cancelled",
			ReasonCode: "workflow_cancelled",
			Metadata:   map[string]any{"step_id": s.ID, "step": s.Name},
		})
		if err != nil {
			slog.Error("Failed to append step.cancelled event", "step_id", s.ID, "error", err)
		}
	}

	if err := e.client.Plan.UpdateOneID(plan.ID).SetStatus(entplan.StatusPaused).Exec(ctx); err != nil {
		slog.Error("Failed to pause cancelled plan", "plan_id", plan.ID, "error", err)
	}
	if _, err := rctx.Checkpoints.Snapshot(ctx, "plan", plan.ID, snapshotState(plan, steps), "cancelled", rctx.WorkflowID); err != nil {
		slog.Error("Failed to snapshot cancelled plan", "plan_id", plan.ID, "error", err)
	}
}

// priorOutputs collects dependency outputs keyed by step name.
func (e *Executor) priorOutputs(ctx context.Context, step *ent.Step, steps []*ent.Step) (map[string]map[string]any, error) {
	prior := make(map[string]map[string]any, len(step.Dependencies))
	for _, dep := range step.Dependencies {
		s := stepByID(steps, dep)
		if s == nil {
			return nil, &StepError{Kind: ErrDependency, ReasonCode: "missing_dependency",
				Err: fmt.Errorf("step %s depends on unknown step id %s", step.Name, dep)}
		}
		prior[s.Name] = s.Outputs
	}
	return prior, nil
}

func (e *Executor) planSteps(ctx context.Context, planID string) ([]*ent.Step, error) {
	steps, err := e.client.Step.Query().
		Where(entstep.PlanID(planID)).
		Order(ent.Asc(entstep.FieldIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load steps: %w", err)
	}
	return steps, nil
}

// planDrained reports whether all steps are terminal, and the first failed
// step if any.
func planDrained(steps []*ent.Step) (bool, *ent.Step) {
	var failed *ent.Step
	for _, s := range steps {
		state := models.StepState(s.State)
		if !state.IsTerminal() {
			return false, nil
		}
		if state == models.StepFailed && failed == nil {
			failed = s
		}
		if state == models.StepCancelled && failed == nil {
			failed = s
		}
	}
	return true, failed
}

// snapshotState is the checkpointed view of a plan: enough to reinstate
// step states and compare structure, without raw payloads.
func snapshotState(plan *ent.Plan, steps []*ent.Step) map[string]any {
	stepStates := make([]map[string]any, len(steps))
	for i, s := range steps {
		stepStates[i] = map[string]any{
			"step_id":  s.ID,
			"name":     s.Name,
			"state":    s.State,
			"attempts": s.Attempts,
			"outputs":  s.Outputs,
		}
	}
	return map[string]any{
		"plan_id": plan.ID,
		"version": plan.Version,
		"status":  plan.Status,
		"steps":   stepStates,
	}
}

func stepByID(steps []*ent.Step, id string) *ent.Step {
	for _, s := range steps {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func componentNameOf(step *ent.Step) string {
	switch models.ExecutorKind(step.ExecutorKind) {
	case models.ExecutorAgent:
		return "agent_" + step.ExecutorRef
	case models.ExecutorTool:
		return "tool_" + step.ExecutorRef
	case models.ExecutorTeam:
		return "team_" + step.Name
	default:
		return "inline_llm"
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func sleepCtx(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
