// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/executionevent"
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// ExecutionEvent is the model entity for the ExecutionEvent schema.
type ExecutionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Per-workflow monotonic append order
	Sequence int64 `json:"sequence,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType executionevent.EventType `json:"event_type,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage executionevent.Stage `json:"stage,omitempty"`
	// Canonical role within the stage; mandatory on the wire
	ComponentRole string `json:"component_role,omitempty"`
	// Concrete component: agent_<name>, tool_<name>, planner, ...
	ComponentName string `json:"component_name,omitempty"`
	// DecisionSource holds the value of the "decision_source" field.
	DecisionSource executionevent.DecisionSource `json:"decision_source,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Bounded (<=4KB), redacted; never the raw LLM payload
	InputSummary string `json:"input_summary,omitempty"`
	// Bounded (<=4KB), redacted; never the raw LLM payload
	OutputSummary string `json:"output_summary,omitempty"`
	// ReasonCode holds the value of the "reason_code" field.
	ReasonCode string `json:"reason_code,omitempty"`
	// Causal parent; nil only for workflow entry events
	ParentEventID *string `json:"parent_event_id,omitempty"`
	// Set when an LLM was used, alongside prompt_version
	PromptID *string `json:"prompt_id,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion *int `json:"prompt_version,omitempty"`
	// Free-form; raw payloads referenced via payload_ref
	EventMetadata map[string]interface{} `json:"event_metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionEventQuery when eager-loading is set.
	Edges        ExecutionEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionEventEdges holds the relations/edges for other nodes in the graph.
type ExecutionEventEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionEventEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executionevent.FieldEventMetadata:
			values[i] = new([]byte)
		case executionevent.FieldSequence, executionevent.FieldPromptVersion:
			values[i] = new(sql.NullInt64)
		case executionevent.FieldID, executionevent.FieldWorkflowID, executionevent.FieldSessionID, executionevent.FieldEventType, executionevent.FieldStage, executionevent.FieldComponentRole, executionevent.FieldComponentName, executionevent.FieldDecisionSource, executionevent.FieldStatus, executionevent.FieldInputSummary, executionevent.FieldOutputSummary, executionevent.FieldReasonCode, executionevent.FieldParentEventID, executionevent.FieldPromptID:
			values[i] = new(sql.NullString)
		case executionevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutionEvent fields.
func (_m *ExecutionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executionevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case executionevent.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case executionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case executionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case executionevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = executionevent.EventType(value.String)
			}
		case executionevent.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = executionevent.Stage(value.String)
			}
		case executionevent.FieldComponentRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field component_role", values[i])
			} else if value.Valid {
				_m.ComponentRole = value.String
			}
		case executionevent.FieldComponentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field component_name", values[i])
			} else if value.Valid {
				_m.ComponentName = value.String
			}
		case executionevent.FieldDecisionSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_source", values[i])
			} else if value.Valid {
				_m.DecisionSource = executionevent.DecisionSource(value.String)
			}
		case executionevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case executionevent.FieldInputSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_summary", values[i])
			} else if value.Valid {
				_m.InputSummary = value.String
			}
		case executionevent.FieldOutputSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_summary", values[i])
			} else if value.Valid {
				_m.OutputSummary = value.String
			}
		case executionevent.FieldReasonCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason_code", values[i])
			} else if value.Valid {
				_m.ReasonCode = value.String
			}
		case executionevent.FieldParentEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_event_id", values[i])
			} else if value.Valid {
				_m.ParentEventID = new(string)
				*_m.ParentEventID = value.String
			}
		case executionevent.FieldPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_id", values[i])
			} else if value.Valid {
				_m.PromptID = new(string)
				*_m.PromptID = value.String
			}
		case executionevent.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = new(int)
				*_m.PromptVersion = int(value.Int64)
			}
		case executionevent.FieldEventMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field event_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EventMetadata); err != nil {
					return fmt.Errorf("unmarshal field event_metadata: %w", err)
				}
			}
		case executionevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the ExecutionEvent entity.
func (_m *ExecutionEvent) QueryWorkflow() *WorkflowQuery {
	return NewExecutionEventClient(_m.config).QueryWorkflow(_m)
}

// Update returns a builder for updating this ExecutionEvent.
// Note that you need to call ExecutionEvent.Unwrap() before calling this method if this ExecutionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutionEvent) Update() *ExecutionEventUpdateOne {
	return NewExecutionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutionEvent) Unwrap() *ExecutionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("component_role=")
	builder.WriteString(_m.ComponentRole)
	builder.WriteString(", ")
	builder.WriteString("component_name=")
	builder.WriteString(_m.ComponentName)
	builder.WriteString(", ")
	builder.WriteString("decision_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.DecisionSource))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("input_summary=")
	builder.WriteString(_m.InputSummary)
	builder.WriteString(", ")
	builder.WriteString("output_summary=")
	builder.WriteString(_m.OutputSummary)
	builder.WriteString(", ")
	builder.WriteString("reason_code=")
	builder.WriteString(_m.ReasonCode)
	builder.WriteString(", ")
	if v := _m.ParentEventID; v != nil {
		builder.WriteString("parent_event_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PromptID; v != nil {
		builder.WriteString("prompt_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PromptVersion; v != nil {
		builder.WriteString("prompt_version=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("event_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventMetadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExecutionEvents is a parsable slice of ExecutionEvent.
type ExecutionEvents []*ExecutionEvent
