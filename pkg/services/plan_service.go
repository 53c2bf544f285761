package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	entapproval "github.com/codeready-toolchain/maestro/ent/approvalrequest"
	entplan "github.com/codeready-toolchain/maestro/ent/plan"
	entstep "github.com/codeready-toolchain/maestro/ent/step"
	entworkflow "github.com/codeready-toolchain/maestro/ent/workflow"
	"github.com/codeready-toolchain/maestro/pkg/approval"
	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/queue"
)

// PlanService exposes plans through synthetic workflows. A plan never runs
// outside the stage machine: direct plan creation spawns a PLANNING_ONLY
// workflow, and direct execution spawns a workflow that resumes at the
// execution stage with a copy of the approved plan.
type PlanService struct {
	client *ent.Client
	queue  *queue.Queue
	gate   *approval.Gate
	log    *eventlog.Log
}

// NewPlanService creates a new PlanService
func NewPlanService(client *ent.Client, q *queue.Queue, gate *approval.Gate, log *eventlog.Log) *PlanService {
	return &PlanService{client: client, queue: q, gate: gate, log: log}
}

// CreatePlanOnlyRequest asks for a plan without executing it.
type CreatePlanOnlyRequest struct {
	Goal            string         `json:"goal"`
	SessionID       string         `json:"session_id,omitempty"`
	NumAlternatives int            `json:"num_alternatives,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// PlanTree is a plan with its steps and the dependency adjacency, parent
// step id to dependent step ids.
type PlanTree struct {
	Plan       *ent.Plan           `json:"plan"`
	Steps      []*ent.Step         `json:"steps"`
	Dependents map[string][]string `json:"dependents"`
}

// PlanExecutionState summarizes where a plan's execution stands.
type PlanExecutionState struct {
	PlanID     string         `json:"plan_id"`
	WorkflowID string         `json:"workflow_id"`
	Status     string         `json:"status"`
	StateCount map[string]int `json:"state_count"`
	Steps      []StepDigest   `json:"steps"`
}

// StepDigest is the per-step slice of the execution state.
type StepDigest struct {
	StepID     string   `json:"step_id"`
	Name       string   `json:"name"`
	State      string   `json:"state"`
	Attempts   int      `json:"attempts"`
	ErrorKind  string   `json:"error_kind,omitempty"`
	ReasonCode string   `json:"reason_code,omitempty"`
	DependsOn  []string `json:"depends_on,omitempty"`
}

// CreatePlanningWorkflow spawns the synthetic PLANNING_ONLY workflow that
// produces a plan for the goal. The pipeline stops after planning approval
// and reflection; nothing executes.
func (s *PlanService) CreatePlanningWorkflow(httpCtx context.Context, req CreatePlanOnlyRequest) (*ent.Workflow, error) {
	if req.Goal == "" {
		return nil, NewValidationError("goal", "required")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	metadata := map[string]any{
		"task_type_provided": true,
		"synthetic":          true,
	}
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	if req.NumAlternatives > 0 {
		metadata["num_alternatives"] = req.NumAlternatives
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wf, err := s.client.Workflow.Create().
		SetID(uuid.NewString()).
		SetSessionID(sessionID).
		SetRequestType(entworkflow.RequestTypePlanningOnly).
		SetMessage(req.Goal).
		SetStatus(entworkflow.StatusPending).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create planning workflow: %w", err)
	}

	if _, err := s.queue.Enqueue(ctx, queue.Task{
		QueueID: queue.QueueWorkflows,
		Kind:    "workflow.run",
		Payload: map[string]any{
			"workflow_id": wf.ID,
			"session_id":  wf.SessionID,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to enqueue planning workflow %s: %w", wf.ID, err)
	}

	return wf, nil
}

// GetPlan retrieves a plan by ID
func (s *PlanService) GetPlan(ctx context.Context, planID string) (*ent.Plan, error) {
	plan, err := s.client.Plan.Get(ctx, planID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return plan, nil
}

// Steps returns the plan's steps in topological order.
func (s *PlanService) Steps(ctx context.Context, planID string) ([]*ent.Step, error) {
	steps, err := s.client.Step.Query().
		Where(entstep.PlanID(planID)).
		Order(ent.Asc(entstep.FieldIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	return steps, nil
}

// Tree returns the plan with its step DAG.
func (s *PlanService) Tree(ctx context.Context, planID string) (*PlanTree, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	steps, err := s.Steps(ctx, planID)
	if err != nil {
		return nil, err
	}

	dependents := make(map[string][]string)
	for _, step := range steps {
		for _, dep := range step.Dependencies {
			dependents[dep] = append(dependents[dep], step.ID)
		}
	}
	return &PlanTree{Plan: plan, Steps: steps, Dependents: dependents}, nil
}

// Alternatives returns the sibling plans generated alongside this one.
func (s *PlanService) Alternatives(ctx context.Context, planID string) ([]*ent.Plan, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if len(plan.Alternatives) == 0 {
		return nil, nil
	}
	plans, err := s.client.Plan.Query().
		Where(entplan.IDIn(plan.Alternatives...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get alternative plans: %w", err)
	}
	return plans, nil
}

// ExecutionState summarizes step progress for a plan.
func (s *PlanService) ExecutionState(ctx context.Context, planID string) (*PlanExecutionState, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	steps, err := s.Steps(ctx, planID)
	if err != nil {
		return nil, err
	}

	state := &PlanExecutionState{
		PlanID:     plan.ID,
		WorkflowID: plan.WorkflowID,
		Status:     string(plan.Status),
		StateCount: make(map[string]int),
	}
	for _, step := range steps {
		state.StateCount[string(step.State)]++
		digest := StepDigest{
			StepID:    step.ID,
			Name:      step.Name,
			State:     string(step.State),
			Attempts:  step.Attempts,
			DependsOn: step.Dependencies,
		}
		if step.ErrorKind != nil {
			digest.ErrorKind = *step.ErrorKind
		}
		if step.ReasonCode != nil {
			digest.ReasonCode = *step.ReasonCode
		}
		state.Steps = append(state.Steps, digest)
	}
	return state, nil
}

// Approve decides the pending approval request of a plan.
func (s *PlanService) Approve(ctx context.Context, planID, decidedBy, feedback string) (*ent.ApprovalRequest, error) {
	req, err := s.client.ApprovalRequest.Query().
		Where(
			entapproval.PlanID(planID),
			entapproval.StatusEQ(entapproval.StatusPending),
		).
		Order(ent.Desc(entapproval.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no pending approval for plan %s", ErrNotFound, planID)
		}
		return nil, fmt.Errorf("failed to find approval request: %w", err)
	}
	return s.gate.Approve(ctx, req.ID, decidedBy, feedback)
}

// Execute runs an approved plan by spawning a workflow that starts at the
// execution stage with its own copy of the plan. The planning workflow and
// its plan stay untouched.
func (s *PlanService) Execute(httpCtx context.Context, planID string) (*ent.Workflow, error) {
	plan, err := s.GetPlan(httpCtx, planID)
	if err != nil {
		return nil, err
	}
	if plan.Status != entplan.StatusApproved {
		return nil, fmt.Errorf("%w: plan %s is %s, only approved plans execute", ErrConflict, planID, plan.Status)
	}
	source, err := s.client.Workflow.Get(httpCtx, plan.WorkflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owning workflow: %w", err)
	}
	steps, err := s.Steps(httpCtx, planID)
	if err != nil {
		return nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	wf, err := tx.Workflow.Create().
		SetID(uuid.NewString()).
		SetSessionID(source.SessionID).
		SetRequestType(entworkflow.RequestTypeComplexTask).
		SetMessage(plan.Goal).
		SetStatus(entworkflow.StatusPending).
		SetCurrentStage(entworkflow.CurrentStageExecution).
		SetMetadata(map[string]any{
			"task_type_provided": true,
			"synthetic":          true,
			"interpreted_goal":   plan.Goal,
			"executes_plan":      plan.ID,
		}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create execution workflow: %w", err)
	}

	clone, err := tx.Plan.Create().
		SetID(uuid.NewString()).
		SetWorkflowID(wf.ID).
		SetVersion(1).
		SetGoal(plan.Goal).
		SetStrategyName(plan.StrategyName).
		SetStrategy(plan.Strategy).
		SetRiskScore(plan.RiskScore).
		SetPrimary(true).
		SetStatus(entplan.StatusApproved).
		SetExpectedDurationMs(plan.ExpectedDurationMs).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to copy plan: %w", err)
	}

	idMap := make(map[string]string, len(steps))
	for _, step := range steps {
		idMap[step.ID] = uuid.NewString()
	}
	for _, step := range steps {
		builder := tx.Step.Create().
			SetID(idMap[step.ID]).
			SetPlanID(clone.ID).
			SetWorkflowID(wf.ID).
			SetIndex(step.Index).
			SetName(step.Name).
			SetDescription(step.Description).
			SetType(step.Type).
			SetExecutorKind(step.ExecutorKind).
			SetExecutorRef(step.ExecutorRef).
			SetDependencies(remapIDs(step.Dependencies, idMap)).
			SetTimeoutMs(step.TimeoutMs).
			SetMaxAttempts(step.MaxAttempts).
			SetBackoffBaseMs(step.BackoffBaseMs).
			SetApprovalRequired(step.ApprovalRequired).
			SetRiskLevel(step.RiskLevel)
		if len(step.TeamMembers) > 0 {
			builder.SetTeamMembers(step.TeamMembers)
		}
		if step.Inputs != nil {
			builder.SetInputs(step.Inputs)
		}
		if step.FunctionCall != nil {
			builder.SetFunctionCall(step.FunctionCall)
		}
		if step.Checks != nil {
			builder.SetChecks(step.Checks)
		}
		if _, err := builder.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to copy step %s: %w", step.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit execution workflow: %w", err)
	}

	if _, err := s.queue.Enqueue(ctx, queue.Task{
		QueueID: queue.QueueWorkflows,
		Kind:    "workflow.run",
		Payload: map[string]any{
			"workflow_id": wf.ID,
			"session_id":  wf.SessionID,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to enqueue execution workflow %s: %w", wf.ID, err)
	}

	return wf, nil
}

// Replan supersedes a plan and spawns a fresh planning workflow whose goal
// carries the revision feedback.
func (s *PlanService) Replan(httpCtx context.Context, planID, feedback string) (*ent.Workflow, error) {
	plan, err := s.GetPlan(httpCtx, planID)
	if err != nil {
		return nil, err
	}
	if models.PlanStatus(plan.Status) == models.PlanExecuting {
		return nil, fmt.Errorf("%w: plan %s is executing, pause it first", ErrConflict, planID)
	}
	source, err := s.client.Workflow.Get(httpCtx, plan.WorkflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owning workflow: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if !models.PlanStatus(plan.Status).IsTerminal() {
		if err := s.client.Plan.UpdateOneID(planID).
			SetStatus(entplan.StatusSuperseded).
			SetReasonCode("replan_requested").
			Exec(writeCtx); err != nil {
			return nil, fmt.Errorf("failed to supersede plan: %w", err)
		}
		if _, err := s.log.Append(writeCtx, models.AppendEventRequest{
			WorkflowID:     plan.WorkflowID,
			SessionID:      source.SessionID,
			EventType:      models.EventPlanSuperseded,
			Stage:          models.StagePlanning,
			ComponentRole:  "planning",
			ComponentName:  "plan_service",
			DecisionSource: models.SourceHuman,
			Status:         "superseded",
			ReasonCode:     "replan_requested",
			Metadata:       map[string]any{"plan_id": planID},
		}); err != nil {
			slog.Warn("Failed to append plan.superseded event", "plan_id", planID, "error", err)
		}
	}

	goal := plan.Goal
	if feedback != "" {
		goal = fmt.Sprintf("%s\n\nRevision feedback on the previous plan: %s", plan.Goal, feedback)
	}
	return s.CreatePlanningWorkflow(httpCtx, CreatePlanOnlyRequest{
		Goal:      goal,
		SessionID: source.SessionID,
		Metadata:  map[string]any{"replans_plan": planID},
	})
}

// Pause stops a plan's workflow from advancing. In-flight steps run to
// completion; nothing new starts once the workflow task drains.
func (s *PlanService) Pause(ctx context.Context, planID string) (*ent.Plan, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Plan.Update().
		Where(
			entplan.ID(planID),
			entplan.StatusIn(entplan.StatusApproved, entplan.StatusExecuting),
		).
		SetStatus(entplan.StatusPaused).
		SetReasonCode("user_pause").
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to pause plan: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: plan %s is %s, only approved or executing plans pause", ErrConflict, planID, plan.Status)
	}

	if err := s.client.Workflow.Update().
		Where(
			entworkflow.ID(plan.WorkflowID),
			entworkflow.StatusIn(entworkflow.StatusPending, entworkflow.StatusRunning),
		).
		SetStatus(entworkflow.StatusPaused).
		SetReasonCode("user_pause").
		Exec(writeCtx); err != nil {
		return nil, fmt.Errorf("failed to pause workflow: %w", err)
	}

	source, err := s.client.Workflow.Get(writeCtx, plan.WorkflowID)
	if err == nil {
		if _, err := s.log.Append(writeCtx, models.AppendEventRequest{
			WorkflowID:     plan.WorkflowID,
			SessionID:      source.SessionID,
			EventType:      models.EventWorkflowPaused,
			Stage:          models.StageExecution,
			ComponentRole:  "orchestrator",
			ComponentName:  "plan_service",
			DecisionSource: models.SourceHuman,
			Status:         "paused",
			ReasonCode:     "user_pause",
			Metadata:       map[string]any{"plan_id": planID},
		}); err != nil {
			slog.Warn("Failed to append pause event", "plan_id", planID, "error", err)
		}
	}

	return s.GetPlan(ctx, planID)
}

// Resume re-enqueues a paused plan's workflow. The stage machine picks up
// from the workflow's current stage and the executor continues the plan from
// its surviving step states.
func (s *PlanService) Resume(ctx context.Context, planID string) (*ent.Workflow, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if models.PlanStatus(plan.Status) != models.PlanPaused {
		return nil, fmt.Errorf("%w: plan %s is %s, only paused plans resume", ErrConflict, planID, plan.Status)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Workflow.Update().
		Where(
			entworkflow.ID(plan.WorkflowID),
			entworkflow.StatusEQ(entworkflow.StatusPaused),
		).
		SetStatus(entworkflow.StatusPending).
		ClearReasonCode().
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume workflow: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: workflow %s is not paused", ErrConflict, plan.WorkflowID)
	}

	wf, err := s.client.Workflow.Get(writeCtx, plan.WorkflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow: %w", err)
	}

	if _, err := s.queue.Enqueue(writeCtx, queue.Task{
		QueueID: queue.QueueWorkflows,
		Kind:    "workflow.run",
		Payload: map[string]any{
			"workflow_id": wf.ID,
			"session_id":  wf.SessionID,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to enqueue resumed workflow %s: %w", wf.ID, err)
	}

	return wf, nil
}

// remapIDs rewrites step id references through the clone id map. References
// outside the map are dropped rather than carried across plans.
func remapIDs(ids []string, idMap map[string]string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if mapped, ok := idMap[id]; ok {
			out = append(out, mapped)
		}
	}
	return out
}
