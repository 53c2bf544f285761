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
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// Plan is the model entity for the Plan schema.
type Plan struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// Monotonic per workflow
	Version int `json:"version,omitempty"`
	// Goal holds the value of the "goal" field.
	Goal string `json:"goal,omitempty"`
	// Alternative-generation strategy: conservative, balanced, aggressive
	StrategyName string `json:"strategy_name,omitempty"`
	// approach, assumptions, constraints, success_criteria
	Strategy map[string]interface{} `json:"strategy,omitempty"`
	// clamp(0.2*frac_high_risk + 0.2*frac_requires_approval + 0.3*(1-known_tool_ratio) + 0.3*novelty, 0, 1)
	RiskScore float64 `json:"risk_score,omitempty"`
	// Sibling plan ids
	Alternatives []string `json:"alternatives,omitempty"`
	// Winner among alternatives
	Primary bool `json:"primary,omitempty"`
	// Status holds the value of the "status" field.
	Status plan.Status `json:"status,omitempty"`
	// Sum of step timeouts; progress supervisor baseline
	ExpectedDurationMs int64 `json:"expected_duration_ms,omitempty"`
	// ActualDurationMs holds the value of the "actual_duration_ms" field.
	ActualDurationMs *int64 `json:"actual_duration_ms,omitempty"`
	// ReasonCode holds the value of the "reason_code" field.
	ReasonCode *string `json:"reason_code,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlanQuery when eager-loading is set.
	Edges        PlanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlanEdges holds the relations/edges for other nodes in the graph.
type PlanEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// PlanSteps holds the value of the plan_steps edge.
	PlanSteps []*Step `json:"plan_steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PlanEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// PlanStepsOrErr returns the PlanSteps value or an error if the edge
// was not loaded in eager-loading.
func (e PlanEdges) PlanStepsOrErr() ([]*Step, error) {
	if e.loadedTypes[1] {
		return e.PlanSteps, nil
	}
	return nil, &NotLoadedError{edge: "plan_steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Plan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plan.FieldStrategy, plan.FieldAlternatives:
			values[i] = new([]byte)
		case plan.FieldPrimary:
			values[i] = new(sql.NullBool)
		case plan.FieldRiskScore:
			values[i] = new(sql.NullFloat64)
		case plan.FieldVersion, plan.FieldExpectedDurationMs, plan.FieldActualDurationMs:
			values[i] = new(sql.NullInt64)
		case plan.FieldID, plan.FieldWorkflowID, plan.FieldGoal, plan.FieldStrategyName, plan.FieldStatus, plan.FieldReasonCode:
			values[i] = new(sql.NullString)
		case plan.FieldCreatedAt, plan.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Plan fields.
func (_m *Plan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plan.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case plan.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case plan.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case plan.FieldGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value.Valid {
				_m.Goal = value.String
			}
		case plan.FieldStrategyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy_name", values[i])
			} else if value.Valid {
				_m.StrategyName = value.String
			}
		case plan.FieldStrategy:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strategy); err != nil {
					return fmt.Errorf("unmarshal field strategy: %w", err)
				}
			}
		case plan.FieldRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = value.Float64
			}
		case plan.FieldAlternatives:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alternatives", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Alternatives); err != nil {
					return fmt.Errorf("unmarshal field alternatives: %w", err)
				}
			}
		case plan.FieldPrimary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field primary", values[i])
			} else if value.Valid {
				_m.Primary = value.Bool
			}
		case plan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = plan.Status(value.String)
			}
		case plan.FieldExpectedDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field expected_duration_ms", values[i])
			} else if value.Valid {
				_m.ExpectedDurationMs = value.Int64
			}
		case plan.FieldActualDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actual_duration_ms", values[i])
			} else if value.Valid {
				_m.ActualDurationMs = new(int64)
				*_m.ActualDurationMs = value.Int64
			}
		case plan.FieldReasonCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason_code", values[i])
			} else if value.Valid {
				_m.ReasonCode = new(string)
				*_m.ReasonCode = value.String
			}
		case plan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case plan.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Plan.
// This includes values selected through modifiers, order, etc.
func (_m *Plan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the Plan entity.
func (_m *Plan) QueryWorkflow() *WorkflowQuery {
	return NewPlanClient(_m.config).QueryWorkflow(_m)
}

// QueryPlanSteps queries the "plan_steps" edge of the Plan entity.
func (_m *Plan) QueryPlanSteps() *StepQuery {
	return NewPlanClient(_m.config).QueryPlanSteps(_m)
}

// Update returns a builder for updating this Plan.
// Note that you need to call Plan.Unwrap() before calling this method if this Plan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Plan) Update() *PlanUpdateOne {
	return NewPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Plan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Plan) Unwrap() *Plan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Plan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Plan) String() string {
	var builder strings.Builder
	builder.WriteString("Plan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("goal=")
	builder.WriteString(_m.Goal)
	builder.WriteString(", ")
	builder.WriteString("strategy_name=")
	builder.WriteString(_m.StrategyName)
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strategy))
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("alternatives=")
	builder.WriteString(fmt.Sprintf("%v", _m.Alternatives))
	builder.WriteString(", ")
	builder.WriteString("primary=")
	builder.WriteString(fmt.Sprintf("%v", _m.Primary))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("expected_duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedDurationMs))
	builder.WriteString(", ")
	if v := _m.ActualDurationMs; v != nil {
		builder.WriteString("actual_duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReasonCode; v != nil {
		builder.WriteString("reason_code=")
		builder.WriteString(*v)
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

// Plans is a parsable slice of Plan.
type Plans []*Plan
