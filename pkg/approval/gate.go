// Package approval is the human gate in front of plan execution: it decides
// whether a plan needs sign-off, blocks until a decision arrives, and
// records the feedback the reflector learns from.
package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/ent/approvalrequest"
	entplan "github.com/codeready-toolchain/maestro/ent/plan"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
)

// ErrApprovalRejected means a human rejected the plan; the workflow fails
// with a human decision source.
var ErrApprovalRejected = errors.New("approval rejected")

// ErrApprovalExpired means no decision arrived before the deadline.
var ErrApprovalExpired = errors.New("approval expired")

// ErrAlreadyDecided guards against re-deciding a settled request with a
// different outcome. Repeating the same outcome is a no-op, not an error.
var ErrAlreadyDecided = errors.New("approval request already decided")

// awaitPollInterval paces the blocking wait for a human decision.
const awaitPollInterval = 2 * time.Second

// Decision is the gate's verdict on one plan.
type Decision struct {
	Required   bool    `json:"required"`
	Rationale  string  `json:"rationale"`
	RiskScore  float64 `json:"risk_score"`
	AgentTrust float64 `json:"agent_trust"`
}

// Notifier is told about new approval requests. May be nil.
type Notifier interface {
	ApprovalRequested(ctx context.Context, req *ent.ApprovalRequest, goal string)
}

// Gate evaluates and tracks approval requests.
type Gate struct {
	client   *ent.Client
	log      *eventlog.Log
	registry *registry.Registry
	notifier Notifier
	cfg      config.ApprovalConfig
}

// New creates the gate. notifier may be nil.
func New(client *ent.Client, log *eventlog.Log, reg *registry.Registry, notifier Notifier, cfg config.ApprovalConfig) *Gate {
	return &Gate{client: client, log: log, registry: reg, notifier: notifier, cfg: cfg}
}

// Evaluate applies the policy matrix. Trust is the minimum Laplace-smoothed
// trust across agent executors the plan references; 1.0 when it has none.
func (g *Gate) Evaluate(ctx context.Context, plan *ent.Plan, steps []*ent.Step, requestType models.RequestType) (Decision, error) {
	trust, err := g.minAgentTrust(ctx, steps)
	if err != nil {
		return Decision{}, err
	}

	d := Decision{RiskScore: plan.RiskScore, AgentTrust: trust}
	switch requestType {
	case models.RequestTypeSimpleQuestion, models.RequestTypePlanningOnly:
		d.Rationale = "auto-approved: request type never requires approval"
	case models.RequestTypeInformationQuery:
		if hasHighRiskStep(steps) {
			d.Required = true
			d.Rationale = "information query contains a high-risk step"
		} else {
			d.Rationale = "auto-approved: information query with no high-risk steps"
		}
	case models.RequestTypeCodeGeneration:
		if plan.RiskScore > 0.3 || trust < 0.8 {
			d.Required = true
			d.Rationale = fmt.Sprintf("code generation with risk %.2f (limit 0.30) and trust %.2f (floor 0.80)", plan.RiskScore, trust)
		} else {
			d.Rationale = "auto-approved: low-risk code generation by trusted agents"
		}
	case models.RequestTypeComplexTask:
		if plan.RiskScore > 0.2 || anyStepRequiresApproval(steps) {
			d.Required = true
			d.Rationale = fmt.Sprintf("complex task with risk %.2f (limit 0.20) or steps flagged approval_required", plan.RiskScore)
		} else {
			d.Rationale = "auto-approved: complex task below risk limit with no flagged steps"
		}
	default:
		// Unknown types get the conservative path.
		d.Required = true
		d.Rationale = fmt.Sprintf("unknown request type %q requires human review", requestType)
	}
	return d, nil
}

// Request creates the approval request for a plan that needs sign-off,
// moves the plan to pending_approval, and emits approval.requested.
func (g *Gate) Request(ctx context.Context, plan *ent.Plan, sessionID string, d Decision) (*ent.ApprovalRequest, error) {
	deadline := time.Now().Add(g.deadline())

	req, err := g.client.ApprovalRequest.Create().
		SetID(uuid.NewString()).
		SetWorkflowID(plan.WorkflowID).
		SetPlanID(plan.ID).
		SetArtifactRef("plan:" + plan.ID).
		SetRiskAssessment(map[string]any{
			"risk_score":  d.RiskScore,
			"agent_trust": d.AgentTrust,
			"rationale":   d.Rationale,
		}).
		SetRecommendation(d.Rationale).
		SetDecisionDeadline(deadline).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create approval request: %w", err)
	}

	if err := g.client.Plan.UpdateOneID(plan.ID).
		SetStatus(entplan.StatusPendingApproval).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to move plan to pending_approval: %w", err)
	}

	_, err = g.log.Append(ctx, models.AppendEventRequest{
		WorkflowID:     plan.WorkflowID,
		SessionID:      sessionID,
		EventType:      models.EventApprovalRequested,
		Stage:          models.StageValidatorB,
		ComponentRole:  "approval_gate",
		ComponentName:  "approval_gate",
		DecisionSource: models.SourceComponent,
		Status:         "pending",
		OutputSummary:  d.Rationale,
		Metadata: map[string]any{
			"request_id":  req.ID,
			"plan_id":     plan.ID,
			"risk_score":  d.RiskScore,
			"agent_trust": d.AgentTrust,
			"deadline":    deadline.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, err
	}

	if g.notifier != nil {
		g.notifier.ApprovalRequested(ctx, req, plan.Goal)
	}
	return req, nil
}

// Propose files a registry-change proposal for human review. No plan is
// attached, so deciding it never moves plan state; the artifact ref names
// the entity the proposal wants changed (e.g. "prompt:planning@3").
func (g *Gate) Propose(ctx context.Context, workflowID, sessionID, artifactRef, recommendation string, assessment map[string]any) (*ent.ApprovalRequest, error) {
	deadline := time.Now().Add(g.deadline())

	req, err := g.client.ApprovalRequest.Create().
		SetID(uuid.NewString()).
		SetWorkflowID(workflowID).
		SetArtifactRef(artifactRef).
		SetRiskAssessment(assessment).
		SetRecommendation(recommendation).
		SetDecisionDeadline(deadline).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	_, err = g.log.Append(ctx, models.AppendEventRequest{
		WorkflowID:     workflowID,
		SessionID:      sessionID,
		EventType:      models.EventApprovalRequested,
		Stage:          models.StageReflection,
		ComponentRole:  "approval_gate",
		ComponentName:  "approval_gate",
		DecisionSource: models.SourceComponent,
		Status:         "pending",
		OutputSummary:  recommendation,
		Metadata: map[string]any{
			"request_id":   req.ID,
			"artifact_ref": artifactRef,
			"proposal":     true,
			"deadline":     deadline.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, err
	}

	if g.notifier != nil {
		g.notifier.ApprovalRequested(ctx, req, recommendation)
	}
	return req, nil
}

// Await blocks until the request is decided or the context ends. The
// returned error classifies the outcome: nil for approved/modified,
// ErrApprovalRejected, or ErrApprovalExpired.
func (g *Gate) Await(ctx context.Context, requestID string) (*ent.ApprovalRequest, error) {
	ticker := time.NewTicker(awaitPollInterval)
	defer ticker.Stop()
	for {
		req, err := g.client.ApprovalRequest.Get(ctx, requestID)
		if err != nil {
			return nil, fmt.Errorf("failed to load approval request: %w", err)
		}
		switch models.ApprovalStatus(req.Status) {
		case models.ApprovalApproved, models.ApprovalModified:
			return req, nil
		case models.ApprovalRejected:
			return req, ErrApprovalRejected
		case models.ApprovalExpired:
			return req, ErrApprovalExpired
		}

		select {
		case <-ctx.Done():
			return req, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Approve records a human approval and unblocks the plan. Approving an
// already-approved request is a no-op returning current state.
func (g *Gate) Approve(ctx context.Context, requestID, decidedBy, feedback string) (*ent.ApprovalRequest, error) {
	return g.decide(ctx, requestID, models.ApprovalApproved, decidedBy, feedback,
		func(ctx context.Context, req *ent.ApprovalRequest) error {
			return g.updatePlan(ctx, req, entplan.StatusApproved, "")
		})
}

// Reject records a human rejection: the plan fails with
// reason_code=human_reject.
func (g *Gate) Reject(ctx context.Context, requestID, decidedBy, feedback string) (*ent.ApprovalRequest, error) {
	return g.decide(ctx, requestID, models.ApprovalRejected, decidedBy, feedback,
		func(ctx context.Context, req *ent.ApprovalRequest) error {
			return g.updatePlan(ctx, req, entplan.StatusFailed, "human_reject")
		})
}

// Modify records feedback and sends the workflow back to planning. The plan
// is superseded; the orchestrator generates a successor version that folds
// the feedback in.
func (g *Gate) Modify(ctx context.Context, requestID, decidedBy, feedback string) (*ent.ApprovalRequest, error) {
	return g.decide(ctx, requestID, models.ApprovalModified, decidedBy, feedback,
		func(ctx context.Context, req *ent.ApprovalRequest) error {
			return g.updatePlan(ctx, req, entplan.StatusSuperseded, "human_modify")
		})
}

// Pending lists undecided requests, oldest deadline first.
func (g *Gate) Pending(ctx context.Context) ([]*ent.ApprovalRequest, error) {
	return g.client.ApprovalRequest.Query().
		Where(approvalrequest.StatusEQ(approvalrequest.StatusPending)).
		Order(ent.Asc(approvalrequest.FieldDecisionDeadline)).
		All(ctx)
}

// Get returns one approval request.
func (g *Gate) Get(ctx context.Context, requestID string) (*ent.ApprovalRequest, error) {
	return g.client.ApprovalRequest.Get(ctx, requestID)
}

// decide applies one decision with idempotence: the same outcome repeats as
// a no-op; a conflicting outcome is ErrAlreadyDecided.
func (g *Gate) decide(ctx context.Context, requestID string, outcome models.ApprovalStatus, decidedBy, feedback string, applyPlan func(context.Context, *ent.ApprovalRequest) error) (*ent.ApprovalRequest, error) {
	req, err := g.client.ApprovalRequest.Get(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load approval request: %w", err)
	}

	current := models.ApprovalStatus(req.Status)
	if current.IsDecided() {
		if current == outcome {
			return req, nil
		}
		return req, fmt.Errorf("%w: %s is %s", ErrAlreadyDecided, requestID, current)
	}

	// Compare-and-set on pending so two racing deciders cannot both win.
	n, err := g.client.ApprovalRequest.Update().
		Where(
			approvalrequest.ID(requestID),
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
		).
		SetStatus(approvalrequest.Status(outcome)).
		SetDecidedBy(decidedBy).
		SetDecidedAt(time.Now()).
		SetFeedback(feedback).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}
	if n == 0 {
		return g.decide(ctx, requestID, outcome, decidedBy, feedback, applyPlan)
	}

	req, err = g.client.ApprovalRequest.Get(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload approval request: %w", err)
	}
	if err := applyPlan(ctx, req); err != nil {
		return nil, err
	}
	g.emitDecided(ctx, req, string(outcome), feedback)
	slog.Info("Approval decided",
		"request_id", requestID, "outcome", outcome, "decided_by", decidedBy)
	return req, nil
}

func (g *Gate) updatePlan(ctx context.Context, req *ent.ApprovalRequest, status entplan.Status, reasonCode string) error {
	if req.PlanID == nil {
		return nil // registry proposals have no plan to move
	}
	update := g.client.Plan.UpdateOneID(*req.PlanID).SetStatus(status)
	if reasonCode != "" {
		update.SetReasonCode(reasonCode)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update plan %s: %w", *req.PlanID, err)
	}
	return nil
}

func (g *Gate) emitDecided(ctx context.Context, req *ent.ApprovalRequest, outcome, feedback string) {
	wf, err := g.client.Workflow.Get(ctx, req.WorkflowID)
	if err != nil {
		slog.Error("Failed to load workflow for approval event", "request_id", req.ID, "error", err)
		return
	}
	_, err = g.log.Append(ctx, models.AppendEventRequest{
		WorkflowID:     req.WorkflowID,
		SessionID:      wf.SessionID,
		EventType:      models.EventApprovalDecided,
		Stage:          models.StageValidatorB,
		ComponentRole:  "approval_gate",
		ComponentName:  "approval_gate",
		DecisionSource: models.SourceHuman,
		Status:         outcome,
		OutputSummary:  feedback,
		Metadata:       map[string]any{"request_id": req.ID},
	})
	if err != nil {
		slog.Error("Failed to append approval.decided event", "request_id", req.ID, "error", err)
	}
}

func (g *Gate) minAgentTrust(ctx context.Context, steps []*ent.Step) (float64, error) {
	trust := 1.0
	seen := make(map[string]bool)
	for _, step := range steps {
		if models.ExecutorKind(step.ExecutorKind) != models.ExecutorAgent || step.ExecutorRef == "" || seen[step.ExecutorRef] {
			continue
		}
		seen[step.ExecutorRef] = true
		t, err := g.registry.AgentTrust(ctx, step.ExecutorRef)
		if err != nil {
			if ent.IsNotFound(err) {
				// Unknown agents get the neutral prior; planning against
				// unregistered agents fails later, not here.
				t = 0.5
			} else {
				return 0, err
			}
		}
		if t < trust {
			trust = t
		}
	}
	return trust, nil
}

func (g *Gate) deadline() time.Duration {
	hours := g.cfg.DefaultDeadlineHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func hasHighRiskStep(steps []*ent.Step) bool {
	for _, step := range steps {
		if models.RiskLevel(step.RiskLevel) == models.RiskHigh {
			return true
		}
	}
	return false
}

func anyStepRequiresApproval(steps []*ent.Step) bool {
	for _, step := range steps {
		if step.ApprovalRequired {
			return true
		}
	}
	return false
}
