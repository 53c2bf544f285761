package models

import "time"

// EventType names the kind of an execution event. The stage/component_role
// pair says where an event came from; the type says what happened.
type EventType string

const (
	EventWorkflowStart     EventType = "workflow.start"
	EventWorkflowComplete  EventType = "workflow.complete"
	EventWorkflowFailed    EventType = "workflow.failed"
	EventWorkflowCancelled EventType = "workflow.cancelled"
	EventWorkflowPaused    EventType = "workflow.paused"
	EventWorkflowResumed   EventType = "workflow.resumed"

	EventStageStarted   EventType = "stage.started"
	EventStageCompleted EventType = "stage.completed"
	EventStageFailed    EventType = "stage.failed"

	EventModelRequest  EventType = "model_request"
	EventModelResponse EventType = "model_response"

	EventStepStarted   EventType = "step.started"
	EventStepCompleted EventType = "step.completed"
	EventStepFailed    EventType = "step.failed"
	EventStepSkipped   EventType = "step.skipped"
	EventStepCancelled EventType = "step.cancelled"

	EventPlanCreated    EventType = "plan.created"
	EventPlanSuperseded EventType = "plan.superseded"
	EventPlanCompleted  EventType = "plan.completed"
	EventPlanFailed     EventType = "plan.failed"

	EventApprovalRequested EventType = "approval.requested"
	EventApprovalDecided   EventType = "approval.decided"

	EventCheckpointCreated EventType = "checkpoint.created"
	EventSlowProgress      EventType = "slow_progress"
	EventQueueDeadLetter   EventType = "queue.dead_letter"
	EventSubscriberLag     EventType = "subscriber.lag"
)

// AppendEventRequest carries everything the event log needs for one append.
// WorkflowID, SessionID, Stage, ComponentRole, ComponentName, DecisionSource,
// and Status are mandatory; the log rejects appends missing any of them.
type AppendEventRequest struct {
	WorkflowID     string         `json:"workflow_id"`
	SessionID      string         `json:"session_id"`
	EventType      EventType      `json:"event_type"`
	Stage          Stage          `json:"stage"`
	ComponentRole  string         `json:"component_role"`
	ComponentName  string         `json:"component_name"`
	DecisionSource DecisionSource `json:"decision_source"`
	Status         string         `json:"status"`
	InputSummary   string         `json:"input_summary,omitempty"`
	OutputSummary  string         `json:"output_summary,omitempty"`
	ReasonCode     string         `json:"reason_code,omitempty"`
	ParentEventID  *string        `json:"parent_event_id,omitempty"`
	PromptID       *string        `json:"prompt_id,omitempty"`
	PromptVersion  *int           `json:"prompt_version,omitempty"`
	Metadata       map[string]any `json:"event_metadata,omitempty"`
}

// EventFilters narrows event log queries.
type EventFilters struct {
	Stage         Stage     `json:"stage,omitempty"`
	EventType     EventType `json:"event_type,omitempty"`
	AfterSequence int64     `json:"after_sequence,omitempty"`
	Limit         int       `json:"limit,omitempty"`
}

// EventRecord is the ExecutionEvent v0 wire shape. decision_source and
// component_role are mandatory; their absence is a protocol violation.
type EventRecord struct {
	EventID        string         `json:"event_id"`
	Timestamp      time.Time      `json:"timestamp"`
	WorkflowID     string         `json:"workflow_id"`
	SessionID      string         `json:"session_id"`
	Sequence       int64          `json:"sequence"`
	EventType      EventType      `json:"event_type"`
	Stage          Stage          `json:"stage"`
	ComponentRole  string         `json:"component_role"`
	ComponentName  string         `json:"component_name"`
	DecisionSource DecisionSource `json:"decision_source"`
	Status         string         `json:"status"`
	InputSummary   string         `json:"input_summary"`
	OutputSummary  string         `json:"output_summary"`
	ReasonCode     string         `json:"reason_code,omitempty"`
	ParentEventID  *string        `json:"parent_event_id,omitempty"`
	PromptID       *string        `json:"prompt_id,omitempty"`
	PromptVersion  *int           `json:"prompt_version,omitempty"`
	EventMetadata  map[string]any `json:"event_metadata,omitempty"`
}
