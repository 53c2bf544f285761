// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// Workflow is the model entity for the Workflow schema.
type Workflow struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Groups workflows of one conversation
	SessionID string `json:"session_id,omitempty"`
	// RequestType holds the value of the "request_type" field.
	RequestType workflow.RequestType `json:"request_type,omitempty"`
	// Original user request
	Message string `json:"message,omitempty"`
	// SystemPrompt holds the value of the "system_prompt" field.
	SystemPrompt *string `json:"system_prompt,omitempty"`
	// Caller-pinned model; requires server_override
	ModelOverride *string `json:"model_override,omitempty"`
	// ServerOverride holds the value of the "server_override" field.
	ServerOverride *string `json:"server_override,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature *float64 `json:"temperature,omitempty"`
	// CurrentStage holds the value of the "current_stage" field.
	CurrentStage workflow.CurrentStage `json:"current_stage,omitempty"`
	// Status holds the value of the "status" field.
	Status workflow.Status `json:"status,omitempty"`
	// Final user-facing answer
	Response *string `json:"response,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning *string `json:"reasoning,omitempty"`
	// ModelUsed holds the value of the "model_used" field.
	ModelUsed *string `json:"model_used,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *string `json:"error_kind,omitempty"`
	// ReasonCode holds the value of the "reason_code" field.
	ReasonCode *string `json:"reason_code,omitempty"`
	// Event id surfaced with escalated errors
	FailingEventID *string `json:"failing_event_id,omitempty"`
	// Append counter; incremented under the row lock by the event log
	EventSequence int64 `json:"event_sequence,omitempty"`
	// For multi-replica coordination
	WorkerID *string `json:"worker_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowQuery when eager-loading is set.
	Edges        WorkflowEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowEdges holds the relations/edges for other nodes in the graph.
type WorkflowEdges struct {
	// Plans holds the value of the plans edge.
	Plans []*Plan `json:"plans,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*Step `json:"steps,omitempty"`
	// ExecutionEvents holds the value of the execution_events edge.
	ExecutionEvents []*ExecutionEvent `json:"execution_events,omitempty"`
	// ApprovalRequests holds the value of the approval_requests edge.
	ApprovalRequests []*ApprovalRequest `json:"approval_requests,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// PlansOrErr returns the Plans value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) PlansOrErr() ([]*Plan, error) {
	if e.loadedTypes[0] {
		return e.Plans, nil
	}
	return nil, &NotLoadedError{edge: "plans"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) StepsOrErr() ([]*Step, error) {
	if e.loadedTypes[1] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// ExecutionEventsOrErr returns the ExecutionEvents value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) ExecutionEventsOrErr() ([]*ExecutionEvent, error) {
	if e.loadedTypes[2] {
		return e.ExecutionEvents, nil
	}
	return nil, &NotLoadedError{edge: "execution_events"}
}

// ApprovalRequestsOrErr returns the ApprovalRequests value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) ApprovalRequestsOrErr() ([]*ApprovalRequest, error) {
	if e.loadedTypes[3] {
		return e.ApprovalRequests, nil
	}
	return nil, &NotLoadedError{edge: "approval_requests"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Workflow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflow.FieldMetadata:
			values[i] = new([]byte)
		case workflow.FieldTemperature:
			values[i] = new(sql.NullFloat64)
		case workflow.FieldEventSequence:
			values[i] = new(sql.NullInt64)
		case workflow.FieldID, workflow.FieldSessionID, workflow.FieldRequestType, workflow.FieldMessage, workflow.FieldSystemPrompt, workflow.FieldModelOverride, workflow.FieldServerOverride, workflow.FieldCurrentStage, workflow.FieldStatus, workflow.FieldResponse, workflow.FieldReasoning, workflow.FieldModelUsed, workflow.FieldErrorKind, workflow.FieldReasonCode, workflow.FieldFailingEventID, workflow.FieldWorkerID:
			values[i] = new(sql.NullString)
		case workflow.FieldLastHeartbeatAt, workflow.FieldCreatedAt, workflow.FieldUpdatedAt, workflow.FieldCompletedAt, workflow.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Workflow fields.
func (_m *Workflow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflow.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflow.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case workflow.FieldRequestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_type", values[i])
			} else if value.Valid {
				_m.RequestType = workflow.RequestType(value.String)
			}
		case workflow.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case workflow.FieldSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt", values[i])
			} else if value.Valid {
				_m.SystemPrompt = new(string)
				*_m.SystemPrompt = value.String
			}
		case workflow.FieldModelOverride:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_override", values[i])
			} else if value.Valid {
				_m.ModelOverride = new(string)
				*_m.ModelOverride = value.String
			}
		case workflow.FieldServerOverride:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server_override", values[i])
			} else if value.Valid {
				_m.ServerOverride = new(string)
				*_m.ServerOverride = value.String
			}
		case workflow.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = new(float64)
				*_m.Temperature = value.Float64
			}
		case workflow.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = workflow.CurrentStage(value.String)
			}
		case workflow.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workflow.Status(value.String)
			}
		case workflow.FieldResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value.Valid {
				_m.Response = new(string)
				*_m.Response = value.String
			}
		case workflow.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = new(string)
				*_m.Reasoning = value.String
			}
		case workflow.FieldModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_used", values[i])
			} else if value.Valid {
				_m.ModelUsed = new(string)
				*_m.ModelUsed = value.String
			}
		case workflow.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case workflow.FieldReasonCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason_code", values[i])
			} else if value.Valid {
				_m.ReasonCode = new(string)
				*_m.ReasonCode = value.String
			}
		case workflow.FieldFailingEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failing_event_id", values[i])
			} else if value.Valid {
				_m.FailingEventID = new(string)
				*_m.FailingEventID = value.String
			}
		case workflow.FieldEventSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_sequence", values[i])
			} else if value.Valid {
				_m.EventSequence = value.Int64
			}
		case workflow.FieldWorkerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worker_id", values[i])
			} else if value.Valid {
				_m.WorkerID = new(string)
				*_m.WorkerID = value.String
			}
		case workflow.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case workflow.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case workflow.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflow.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case workflow.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case workflow.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Workflow.
// This includes values selected through modifiers, order, etc.
func (_m *Workflow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPlans queries the "plans" edge of the Workflow entity.
func (_m *Workflow) QueryPlans() *PlanQuery {
	return NewWorkflowClient(_m.config).QueryPlans(_m)
}

// QuerySteps queries the "steps" edge of the Workflow entity.
func (_m *Workflow) QuerySteps() *StepQuery {
	return NewWorkflowClient(_m.config).QuerySteps(_m)
}

// QueryExecutionEvents queries the "execution_events" edge of the Workflow entity.
func (_m *Workflow) QueryExecutionEvents() *ExecutionEventQuery {
	return NewWorkflowClient(_m.config).QueryExecutionEvents(_m)
}

// QueryApprovalRequests queries the "approval_requests" edge of the Workflow entity.
func (_m *Workflow) QueryApprovalRequests() *ApprovalRequestQuery {
	return NewWorkflowClient(_m.config).QueryApprovalRequests(_m)
}

// Update returns a builder for updating this Workflow.
// Note that you need to call Workflow.Unwrap() before calling this method if this Workflow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Workflow) Update() *WorkflowUpdateOne {
	return NewWorkflowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Workflow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Workflow) Unwrap() *Workflow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Workflow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Workflow) String() string {
	var builder strings.Builder
	builder.WriteString("Workflow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("request_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestType))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	if v := _m.SystemPrompt; v != nil {
		builder.WriteString("system_prompt=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelOverride; v != nil {
		builder.WriteString("model_override=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ServerOverride; v != nil {
		builder.WriteString("server_override=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Temperature; v != nil {
		builder.WriteString("temperature=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("current_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStage))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Response; v != nil {
		builder.WriteString("response=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Reasoning; v != nil {
		builder.WriteString("reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelUsed; v != nil {
		builder.WriteString("model_used=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReasonCode; v != nil {
		builder.WriteString("reason_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailingEventID; v != nil {
		builder.WriteString("failing_event_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("event_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventSequence))
	builder.WriteString(", ")
	if v := _m.WorkerID; v != nil {
		builder.WriteString("worker_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Workflows is a parsable slice of Workflow.
type Workflows []*Workflow
