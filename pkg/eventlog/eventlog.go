// Package eventlog is the append-only observability log: every material
// action in a workflow becomes one ExecutionEvent row, totally ordered per
// workflow, and is broadcast over NOTIFY in the same transaction so live
// subscribers and the database can never disagree.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/ent/executionevent"
	"github.com/codeready-toolchain/maestro/ent/workflow"
	"github.com/codeready-toolchain/maestro/pkg/events"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// notifyPayloadLimit leaves headroom under PostgreSQL's 8000-byte NOTIFY
// limit. Larger records are broadcast as a truncation envelope; clients
// fetch the full row through the event API.
const notifyPayloadLimit = 7900

// Log appends and queries execution events.
//
// Append holds the workflow row lock while incrementing the per-workflow
// sequence counter, so concurrent appenders serialize and sequences are
// gapless in commit order.
type Log struct {
	client *ent.Client
}

// New creates an event log backed by the given ent client.
func New(client *ent.Client) *Log {
	return &Log{client: client}
}

// Append validates, persists, and broadcasts one event. The returned record
// carries the assigned event_id and sequence.
//
// Storage failures come back wrapped in ErrEventLogUnavailable; callers must
// fail their operation rather than proceed unlogged.
func (l *Log) Append(ctx context.Context, req models.AppendEventRequest) (*models.EventRecord, error) {
	if err := validateAppend(req); err != nil {
		return nil, err
	}

	tx, err := l.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrEventLogUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	// Row lock serializes appenders and guards the sequence counter.
	wf, err := tx.Workflow.Query().
		Where(workflow.ID(req.WorkflowID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: append for unknown workflow %q", ErrProtocolViolation, req.WorkflowID)
		}
		return nil, fmt.Errorf("%w: lock workflow: %v", ErrEventLogUnavailable, err)
	}

	if req.ParentEventID != nil {
		ok, err := tx.ExecutionEvent.Query().
			Where(
				executionevent.ID(*req.ParentEventID),
				executionevent.WorkflowID(req.WorkflowID),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: check parent event: %v", ErrEventLogUnavailable, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: parent_event_id %q not found in workflow %q",
				ErrProtocolViolation, *req.ParentEventID, req.WorkflowID)
		}
	}

	seq := wf.EventSequence + 1
	if err := tx.Workflow.UpdateOne(wf).SetEventSequence(seq).Exec(ctx); err != nil {
		return nil, fmt.Errorf("%w: advance sequence: %v", ErrEventLogUnavailable, err)
	}

	create := tx.ExecutionEvent.Create().
		SetID(uuid.NewString()).
		SetWorkflowID(req.WorkflowID).
		SetSessionID(req.SessionID).
		SetSequence(seq).
		SetEventType(executionevent.EventType(req.EventType)).
		SetStage(executionevent.Stage(req.Stage)).
		SetComponentRole(req.ComponentRole).
		SetComponentName(req.ComponentName).
		SetDecisionSource(executionevent.DecisionSource(req.DecisionSource)).
		SetStatus(req.Status).
		SetCreatedAt(time.Now())

	if s := boundSummary(req.InputSummary); s != "" {
		create.SetInputSummary(s)
	}
	if s := boundSummary(req.OutputSummary); s != "" {
		create.SetOutputSummary(s)
	}
	if req.ReasonCode != "" {
		create.SetReasonCode(req.ReasonCode)
	}
	if req.ParentEventID != nil {
		create.SetParentEventID(*req.ParentEventID)
	}
	if req.PromptID != nil {
		create.SetPromptID(*req.PromptID)
	}
	if req.PromptVersion != nil {
		create.SetPromptVersion(*req.PromptVersion)
	}
	if req.Metadata != nil {
		create.SetEventMetadata(req.Metadata)
	}

	ev, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: insert event: %v", ErrEventLogUnavailable, err)
	}

	record := toRecord(ev)
	notifyPayload, err := buildNotifyPayload(record)
	if err != nil {
		return nil, fmt.Errorf("%w: encode notify payload: %v", ErrEventLogUnavailable, err)
	}

	// pg_notify is transactional — the broadcast fires atomically with the
	// insert at COMMIT, or not at all.
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", events.NotificationChannel, notifyPayload); err != nil {
		return nil, fmt.Errorf("%w: pg_notify: %v", ErrEventLogUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrEventLogUnavailable, err)
	}
	return record, nil
}

// ByWorkflow returns events for one workflow in sequence order, optionally
// narrowed by stage, event type, and a starting sequence.
func (l *Log) ByWorkflow(ctx context.Context, workflowID string, f models.EventFilters) ([]*models.EventRecord, error) {
	q := l.client.ExecutionEvent.Query().
		Where(executionevent.WorkflowID(workflowID)).
		Order(ent.Asc(executionevent.FieldSequence))

	if f.Stage != "" {
		q = q.Where(executionevent.StageEQ(executionevent.Stage(f.Stage)))
	}
	if f.EventType != "" {
		q = q.Where(executionevent.EventTypeEQ(executionevent.EventType(f.EventType)))
	}
	if f.AfterSequence > 0 {
		q = q.Where(executionevent.SequenceGT(f.AfterSequence))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for workflow %s: %w", workflowID, err)
	}
	return toRecords(rows), nil
}

// Children returns the direct causal children of an event, in sequence order.
func (l *Log) Children(ctx context.Context, workflowID, parentEventID string) ([]*models.EventRecord, error) {
	rows, err := l.client.ExecutionEvent.Query().
		Where(
			executionevent.WorkflowID(workflowID),
			executionevent.ParentEventID(parentEventID),
		).
		Order(ent.Asc(executionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query children of event %s: %w", parentEventID, err)
	}
	return toRecords(rows), nil
}

// Get returns a single event by id.
func (l *Log) Get(ctx context.Context, eventID string) (*models.EventRecord, error) {
	ev, err := l.client.ExecutionEvent.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return toRecord(ev), nil
}

func validateAppend(req models.AppendEventRequest) error {
	missing := func(field string) error {
		return fmt.Errorf("%w: missing %s", ErrProtocolViolation, field)
	}
	switch {
	case req.WorkflowID == "":
		return missing("workflow_id")
	case req.SessionID == "":
		return missing("session_id")
	case req.EventType == "":
		return missing("event_type")
	case req.Stage == "":
		return missing("stage")
	case req.ComponentRole == "":
		return missing("component_role")
	case req.ComponentName == "":
		return missing("component_name")
	case req.DecisionSource == "":
		return missing("decision_source")
	case req.Status == "":
		return missing("status")
	}
	if !req.Stage.IsValid() {
		return fmt.Errorf("%w: unknown stage %q", ErrProtocolViolation, req.Stage)
	}
	if !req.DecisionSource.IsValid() {
		return fmt.Errorf("%w: unknown decision_source %q", ErrProtocolViolation, req.DecisionSource)
	}
	return nil
}

// buildNotifyPayload marshals the record for NOTIFY, replacing oversized
// payloads with a minimal envelope carrying only routing fields.
func buildNotifyPayload(record *models.EventRecord) (string, error) {
	full, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	if len(full) <= notifyPayloadLimit {
		return string(full), nil
	}

	envelope, err := json.Marshal(map[string]any{
		"event_type":  record.EventType,
		"event_id":    record.EventID,
		"workflow_id": record.WorkflowID,
		"session_id":  record.SessionID,
		"sequence":    record.Sequence,
		"truncated":   true,
	})
	if err != nil {
		return "", err
	}
	return string(envelope), nil
}

func toRecord(ev *ent.ExecutionEvent) *models.EventRecord {
	return &models.EventRecord{
		EventID:        ev.ID,
		Timestamp:      ev.CreatedAt,
		WorkflowID:     ev.WorkflowID,
		SessionID:      ev.SessionID,
		Sequence:       ev.Sequence,
		EventType:      models.EventType(ev.EventType),
		Stage:          models.Stage(ev.Stage),
		ComponentRole:  ev.ComponentRole,
		ComponentName:  ev.ComponentName,
		DecisionSource: models.DecisionSource(ev.DecisionSource),
		Status:         ev.Status,
		InputSummary:   ev.InputSummary,
		OutputSummary:  ev.OutputSummary,
		ReasonCode:     ev.ReasonCode,
		ParentEventID:  ev.ParentEventID,
		PromptID:       ev.PromptID,
		PromptVersion:  ev.PromptVersion,
		EventMetadata:  ev.EventMetadata,
	}
}

func toRecords(rows []*ent.ExecutionEvent) []*models.EventRecord {
	records := make([]*models.EventRecord, 0, len(rows))
	for _, ev := range rows {
		records = append(records, toRecord(ev))
	}
	return records
}
