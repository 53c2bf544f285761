package models

import "time"

// CreateWorkflowRequest contains fields for creating a new workflow.
type CreateWorkflowRequest struct {
	SessionID      string         `json:"session_id"`
	RequestType    RequestType    `json:"request_type"`
	Message        string         `json:"message"`
	SystemPrompt   *string        `json:"system_prompt,omitempty"`
	ModelOverride  *string        `json:"model,omitempty"`
	ServerOverride *string        `json:"server_id,omitempty"`
	Temperature    *float64       `json:"temperature,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// WorkflowFilters contains filtering options for listing workflows.
type WorkflowFilters struct {
	Status         WorkflowStatus `json:"status,omitempty"`
	SessionID      string         `json:"session_id,omitempty"`
	RequestType    RequestType    `json:"request_type,omitempty"`
	CreatedAfter   *time.Time     `json:"created_after,omitempty"`
	CreatedBefore  *time.Time     `json:"created_before,omitempty"`
	Limit          int            `json:"limit,omitempty"`
	Offset         int            `json:"offset,omitempty"`
	IncludeDeleted bool           `json:"include_deleted,omitempty"`
}

// WorkflowResult is what the orchestrator hands back to the API layer once a
// workflow reaches a terminal state.
type WorkflowResult struct {
	WorkflowID string         `json:"workflow_id"`
	SessionID  string         `json:"session_id"`
	Status     WorkflowStatus `json:"status"`
	TaskType   RequestType    `json:"task_type"`
	Response   string         `json:"response,omitempty"`
	Reasoning  string         `json:"reasoning,omitempty"`
	Model      string         `json:"model,omitempty"`
	ErrorKind  string         `json:"error_kind,omitempty"`
	ReasonCode string         `json:"reason_code,omitempty"`
	EventID    string         `json:"event_id,omitempty"`
	DurationMS int64          `json:"duration_ms"`
}
