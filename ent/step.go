// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/plan"
	"github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// Step is the model entity for the Step schema.
type Step struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// Denormalized for event stamping and queries
	WorkflowID string `json:"workflow_id,omitempty"`
	// Topological order within the plan
	Index int `json:"index,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Type holds the value of the "type" field.
	Type step.Type `json:"type,omitempty"`
	// ExecutorKind holds the value of the "executor_kind" field.
	ExecutorKind step.ExecutorKind `json:"executor_kind,omitempty"`
	// Agent or tool name; empty for inline_llm
	ExecutorRef string `json:"executor_ref,omitempty"`
	// Agent names for team steps
	TeamMembers []string `json:"team_members,omitempty"`
	// Inputs holds the value of the "inputs" field.
	Inputs map[string]interface{} `json:"inputs,omitempty"`
	// Outputs holds the value of the "outputs" field.
	Outputs map[string]interface{} `json:"outputs,omitempty"`
	// Step ids this step waits on
	Dependencies []string `json:"dependencies,omitempty"`
	// TimeoutMs holds the value of the "timeout_ms" field.
	TimeoutMs int64 `json:"timeout_ms,omitempty"`
	// MaxAttempts holds the value of the "max_attempts" field.
	MaxAttempts int `json:"max_attempts,omitempty"`
	// BackoffBaseMs holds the value of the "backoff_base_ms" field.
	BackoffBaseMs int64 `json:"backoff_base_ms,omitempty"`
	// Failure of such a step is never re-planned around
	ApprovalRequired bool `json:"approval_required,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel step.RiskLevel `json:"risk_level,omitempty"`
	// Structured {name, arguments} for tool steps
	FunctionCall map[string]interface{} `json:"function_call,omitempty"`
	// Validation-step check declarations
	Checks map[string]interface{} `json:"checks,omitempty"`
	// State holds the value of the "state" field.
	State step.State `json:"state,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *string `json:"error_kind,omitempty"`
	// ReasonCode holds the value of the "reason_code" field.
	ReasonCode *string `json:"reason_code,omitempty"`
	// Validation steps: quality in [0,1]
	QualityScore *float64 `json:"quality_score,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepQuery when eager-loading is set.
	Edges        StepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StepEdges holds the relations/edges for other nodes in the graph.
type StepEdges struct {
	// Plan holds the value of the plan edge.
	Plan *Plan `json:"plan,omitempty"`
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PlanOrErr returns the Plan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepEdges) PlanOrErr() (*Plan, error) {
	if e.Plan != nil {
		return e.Plan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: plan.Label}
	}
	return nil, &NotLoadedError{edge: "plan"}
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Step) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case step.FieldTeamMembers, step.FieldInputs, step.FieldOutputs, step.FieldDependencies, step.FieldFunctionCall, step.FieldChecks:
			values[i] = new([]byte)
		case step.FieldApprovalRequired:
			values[i] = new(sql.NullBool)
		case step.FieldQualityScore:
			values[i] = new(sql.NullFloat64)
		case step.FieldIndex, step.FieldTimeoutMs, step.FieldMaxAttempts, step.FieldBackoffBaseMs, step.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case step.FieldID, step.FieldPlanID, step.FieldWorkflowID, step.FieldName, step.FieldDescription, step.FieldType, step.FieldExecutorKind, step.FieldExecutorRef, step.FieldRiskLevel, step.FieldState, step.FieldErrorKind, step.FieldReasonCode:
			values[i] = new(sql.NullString)
		case step.FieldStartedAt, step.FieldCompletedAt, step.FieldCreatedAt, step.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Step fields.
func (_m *Step) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case step.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case step.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case step.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case step.FieldIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field index", values[i])
			} else if value.Valid {
				_m.Index = int(value.Int64)
			}
		case step.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case step.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case step.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = step.Type(value.String)
			}
		case step.FieldExecutorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field executor_kind", values[i])
			} else if value.Valid {
				_m.ExecutorKind = step.ExecutorKind(value.String)
			}
		case step.FieldExecutorRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field executor_ref", values[i])
			} else if value.Valid {
				_m.ExecutorRef = value.String
			}
		case step.FieldTeamMembers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field team_members", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TeamMembers); err != nil {
					return fmt.Errorf("unmarshal field team_members: %w", err)
				}
			}
		case step.FieldInputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Inputs); err != nil {
					return fmt.Errorf("unmarshal field inputs: %w", err)
				}
			}
		case step.FieldOutputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outputs); err != nil {
					return fmt.Errorf("unmarshal field outputs: %w", err)
				}
			}
		case step.FieldDependencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dependencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dependencies); err != nil {
					return fmt.Errorf("unmarshal field dependencies: %w", err)
				}
			}
		case step.FieldTimeoutMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_ms", values[i])
			} else if value.Valid {
				_m.TimeoutMs = value.Int64
			}
		case step.FieldMaxAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_attempts", values[i])
			} else if value.Valid {
				_m.MaxAttempts = int(value.Int64)
			}
		case step.FieldBackoffBaseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field backoff_base_ms", values[i])
			} else if value.Valid {
				_m.BackoffBaseMs = value.Int64
			}
		case step.FieldApprovalRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approval_required", values[i])
			} else if value.Valid {
				_m.ApprovalRequired = value.Bool
			}
		case step.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = step.RiskLevel(value.String)
			}
		case step.FieldFunctionCall:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field function_call", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FunctionCall); err != nil {
					return fmt.Errorf("unmarshal field function_call: %w", err)
				}
			}
		case step.FieldChecks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field checks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Checks); err != nil {
					return fmt.Errorf("unmarshal field checks: %w", err)
				}
			}
		case step.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = step.State(value.String)
			}
		case step.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case step.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case step.FieldReasonCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason_code", values[i])
			} else if value.Valid {
				_m.ReasonCode = new(string)
				*_m.ReasonCode = value.String
			}
		case step.FieldQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = new(float64)
				*_m.QualityScore = value.Float64
			}
		case step.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case step.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case step.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case step.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Step.
// This includes values selected through modifiers, order, etc.
func (_m *Step) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPlan queries the "plan" edge of the Step entity.
func (_m *Step) QueryPlan() *PlanQuery {
	return NewStepClient(_m.config).QueryPlan(_m)
}

// QueryWorkflow queries the "workflow" edge of the Step entity.
func (_m *Step) QueryWorkflow() *WorkflowQuery {
	return NewStepClient(_m.config).QueryWorkflow(_m)
}

// Update returns a builder for updating this Step.
// Note that you need to call Step.Unwrap() before calling this method if this Step
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Step) Update() *StepUpdateOne {
	return NewStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Step entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Step) Unwrap() *Step {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Step is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Step) String() string {
	var builder strings.Builder
	builder.WriteString("Step(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("index=")
	builder.WriteString(fmt.Sprintf("%v", _m.Index))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("executor_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutorKind))
	builder.WriteString(", ")
	builder.WriteString("executor_ref=")
	builder.WriteString(_m.ExecutorRef)
	builder.WriteString(", ")
	builder.WriteString("team_members=")
	builder.WriteString(fmt.Sprintf("%v", _m.TeamMembers))
	builder.WriteString(", ")
	builder.WriteString("inputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Inputs))
	builder.WriteString(", ")
	builder.WriteString("outputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outputs))
	builder.WriteString(", ")
	builder.WriteString("dependencies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dependencies))
	builder.WriteString(", ")
	builder.WriteString("timeout_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutMs))
	builder.WriteString(", ")
	builder.WriteString("max_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAttempts))
	builder.WriteString(", ")
	builder.WriteString("backoff_base_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.BackoffBaseMs))
	builder.WriteString(", ")
	builder.WriteString("approval_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalRequired))
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskLevel))
	builder.WriteString(", ")
	builder.WriteString("function_call=")
	builder.WriteString(fmt.Sprintf("%v", _m.FunctionCall))
	builder.WriteString(", ")
	builder.WriteString("checks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Checks))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
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
	if v := _m.QualityScore; v != nil {
		builder.WriteString("quality_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Steps is a parsable slice of Step.
type Steps []*Step
