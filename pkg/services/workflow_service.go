// Package services is the API-facing application layer: request validation,
// entity lifecycle operations, and the synthetic-workflow wrappers the plan
// endpoints use. Services never run pipeline logic themselves; everything
// that executes goes through the queue.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	entevent "github.com/codeready-toolchain/maestro/ent/executionevent"
	entworkflow "github.com/codeready-toolchain/maestro/ent/workflow"
	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/queue"
)

// awaitPollInterval is how often sync waiters re-check the workflow row.
const awaitPollInterval = 500 * time.Millisecond

// Canceller is the slice of the worker pool the service needs: best-effort
// in-process cancellation. Another replica may hold the workflow.
type Canceller interface {
	CancelWorkflow(workflowID string) bool
}

// WorkflowService manages workflow lifecycle
type WorkflowService struct {
	client    *ent.Client
	queue     *queue.Queue
	log       *eventlog.Log
	canceller Canceller
}

// NewWorkflowService creates a new WorkflowService. canceller may be nil.
func NewWorkflowService(client *ent.Client, q *queue.Queue, log *eventlog.Log, canceller Canceller) *WorkflowService {
	return &WorkflowService{client: client, queue: q, log: log, canceller: canceller}
}

// WorkflowListResponse is a page of workflows.
type WorkflowListResponse struct {
	Workflows  []*ent.Workflow `json:"workflows"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// CreateWorkflow validates the request, persists the workflow, and enqueues
// its run. The caller's task_type is trusted when present; otherwise the
// interpretation stage classifies the request itself.
func (s *WorkflowService) CreateWorkflow(httpCtx context.Context, req models.CreateWorkflowRequest) (*ent.Workflow, error) {
	if req.Message == "" {
		return nil, NewValidationError("message", "required")
	}
	if req.ModelOverride != nil && req.ServerOverride == nil {
		return nil, NewValidationError("model", "server_id is required when model is pinned")
	}
	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 2) {
		return nil, NewValidationError("temperature", "must be in [0, 2]")
	}
	if req.RequestType != "" && !req.RequestType.IsValid() {
		return nil, NewValidationError("task_type", fmt.Sprintf("unknown task type %q", req.RequestType))
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	metadata := map[string]any{}
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	requestType := models.RequestTypeComplexTask
	if req.RequestType != "" {
		requestType = req.RequestType
		metadata["task_type_provided"] = true
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Workflow.Create().
		SetID(uuid.NewString()).
		SetSessionID(sessionID).
		SetRequestType(entworkflow.RequestType(requestType)).
		SetMessage(req.Message).
		SetStatus(entworkflow.StatusPending).
		SetMetadata(metadata)
	if req.SystemPrompt != nil {
		builder.SetSystemPrompt(*req.SystemPrompt)
	}
	if req.ModelOverride != nil {
		builder.SetModelOverride(*req.ModelOverride)
	}
	if req.ServerOverride != nil {
		builder.SetServerOverride(*req.ServerOverride)
	}
	if req.Temperature != nil {
		builder.SetTemperature(*req.Temperature)
	}

	wf, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}

	if _, err := s.queue.Enqueue(ctx, queue.Task{
		QueueID: queue.QueueWorkflows,
		Kind:    "workflow.run",
		Payload: map[string]any{
			"workflow_id": wf.ID,
			"session_id":  wf.SessionID,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to enqueue workflow %s: %w", wf.ID, err)
	}

	return wf, nil
}

// GetWorkflow retrieves a workflow by ID with optional edge loading
func (s *WorkflowService) GetWorkflow(ctx context.Context, workflowID string, withEdges bool) (*ent.Workflow, error) {
	query := s.client.Workflow.Query().Where(entworkflow.ID(workflowID))

	if withEdges {
		query = query.WithPlans().WithSteps()
	}

	wf, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}

	return wf, nil
}

// ListWorkflows lists workflows with filtering and pagination
func (s *WorkflowService) ListWorkflows(ctx context.Context, filters models.WorkflowFilters) (*WorkflowListResponse, error) {
	query := s.client.Workflow.Query()

	if filters.Status != "" {
		query = query.Where(entworkflow.StatusEQ(entworkflow.Status(filters.Status)))
	}
	if filters.SessionID != "" {
		query = query.Where(entworkflow.SessionID(filters.SessionID))
	}
	if filters.RequestType != "" {
		query = query.Where(entworkflow.RequestTypeEQ(entworkflow.RequestType(filters.RequestType)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(entworkflow.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(entworkflow.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(entworkflow.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count workflows: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	workflows, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(entworkflow.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}

	return &WorkflowListResponse{
		Workflows:  workflows,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// CancelWorkflow marks a non-terminal workflow cancelled and signals the
// in-process worker if this replica holds it.
func (s *WorkflowService) CancelWorkflow(ctx context.Context, workflowID string) (*ent.Workflow, error) {
	wf, err := s.GetWorkflow(ctx, workflowID, false)
	if err != nil {
		return nil, err
	}
	if models.WorkflowStatus(wf.Status).IsTerminal() {
		return nil, fmt.Errorf("%w: workflow %s is already %s", ErrConflict, workflowID, wf.Status)
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Workflow.Update().
		Where(
			entworkflow.ID(workflowID),
			entworkflow.StatusNotIn(
				entworkflow.StatusCompleted,
				entworkflow.StatusFailed,
				entworkflow.StatusCancelled,
			),
		).
		SetStatus(entworkflow.StatusCancelled).
		SetReasonCode("user_cancelled").
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel workflow: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: workflow %s reached a terminal state first", ErrConflict, workflowID)
	}

	if s.canceller != nil {
		s.canceller.CancelWorkflow(workflowID)
	}

	if _, err := s.log.Append(writeCtx, models.AppendEventRequest{
		WorkflowID:     workflowID,
		SessionID:      wf.SessionID,
		EventType:      models.EventWorkflowCancelled,
		Stage:          models.Stage(wf.CurrentStage),
		ComponentRole:  "orchestrator",
		ComponentName:  "workflow_service",
		DecisionSource: models.SourceHuman,
		Status:         "cancelled",
		ReasonCode:     "user_cancelled",
	}); err != nil {
		slog.Warn("Failed to append cancellation event", "workflow_id", workflowID, "error", err)
	}

	return s.GetWorkflow(ctx, workflowID, false)
}

// Await blocks until the workflow reaches a terminal state or ctx ends, and
// returns the result summary. Sync API callers bound ctx with the configured
// sync timeout.
func (s *WorkflowService) Await(ctx context.Context, workflowID string) (*models.WorkflowResult, error) {
	ticker := time.NewTicker(awaitPollInterval)
	defer ticker.Stop()
	for {
		wf, err := s.GetWorkflow(ctx, workflowID, false)
		if err != nil {
			return nil, err
		}
		if models.WorkflowStatus(wf.Status).IsTerminal() {
			return resultOf(wf), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Events returns the workflow's event log, narrowed by the filters.
func (s *WorkflowService) Events(ctx context.Context, workflowID string, filters models.EventFilters) ([]*models.EventRecord, error) {
	exists, err := s.client.Workflow.Query().Where(entworkflow.ID(workflowID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check workflow: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.log.ByWorkflow(ctx, workflowID, filters)
}

// SoftDeleteOldWorkflows soft deletes terminal workflows older than the
// retention period
func (s *WorkflowService) SoftDeleteOldWorkflows(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	// Use background context with timeout
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Workflow.Update().
		Where(
			entworkflow.StatusIn(
				entworkflow.StatusCompleted,
				entworkflow.StatusFailed,
				entworkflow.StatusCancelled,
			),
			entworkflow.CompletedAtLT(cutoff),
			entworkflow.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete workflows: %w", err)
	}

	return count, nil
}

// PurgeDeletedWorkflowEvents hard-deletes execution events of workflows that
// were soft-deleted longer than eventTTL ago. The workflow rows themselves
// stay; only their event volume goes.
func (s *WorkflowService) PurgeDeletedWorkflowEvents(ctx context.Context, eventTTL time.Duration) (int, error) {
	if eventTTL <= 0 {
		return 0, fmt.Errorf("event_ttl must be positive, got %s", eventTTL)
	}

	cutoff := time.Now().Add(-eventTTL)

	purgeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ids, err := s.client.Workflow.Query().
		Where(
			entworkflow.DeletedAtNotNil(),
			entworkflow.DeletedAtLT(cutoff),
		).
		IDs(purgeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to find purgeable workflows: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	count, err := s.client.ExecutionEvent.Delete().
		Where(entevent.WorkflowIDIn(ids...)).
		Exec(purgeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge events: %w", err)
	}

	return count, nil
}

// resultOf summarizes a terminal workflow row for API responses.
func resultOf(wf *ent.Workflow) *models.WorkflowResult {
	result := &models.WorkflowResult{
		WorkflowID: wf.ID,
		SessionID:  wf.SessionID,
		Status:     models.WorkflowStatus(wf.Status),
		TaskType:   models.RequestType(wf.RequestType),
	}
	if wf.Response != nil {
		result.Response = *wf.Response
	}
	if wf.Reasoning != nil {
		result.Reasoning = *wf.Reasoning
	}
	if wf.ModelUsed != nil {
		result.Model = *wf.ModelUsed
	}
	if wf.ErrorKind != nil {
		result.ErrorKind = *wf.ErrorKind
	}
	if wf.ReasonCode != nil {
		result.ReasonCode = *wf.ReasonCode
	}
	if wf.FailingEventID != nil {
		result.EventID = *wf.FailingEventID
	}
	if wf.CompletedAt != nil {
		result.DurationMS = wf.CompletedAt.Sub(wf.CreatedAt).Milliseconds()
	}
	return result
}
