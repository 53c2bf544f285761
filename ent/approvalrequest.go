// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/approvalrequest"
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// ApprovalRequest is the model entity for the ApprovalRequest schema.
type ApprovalRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID *string `json:"plan_id,omitempty"`
	// What is being approved: plan:<id>, proposal:<id>, ...
	ArtifactRef string `json:"artifact_ref,omitempty"`
	// risk_score, step_risks, agent_trust, rationale
	RiskAssessment map[string]interface{} `json:"risk_assessment,omitempty"`
	// Recommendation holds the value of the "recommendation" field.
	Recommendation string `json:"recommendation,omitempty"`
	// Status holds the value of the "status" field.
	Status approvalrequest.Status `json:"status,omitempty"`
	// DecisionDeadline holds the value of the "decision_deadline" field.
	DecisionDeadline time.Time `json:"decision_deadline,omitempty"`
	// Human feedback, recorded for the reflector
	Feedback *string `json:"feedback,omitempty"`
	// DecidedBy holds the value of the "decided_by" field.
	DecidedBy *string `json:"decided_by,omitempty"`
	// DecidedAt holds the value of the "decided_at" field.
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApprovalRequestQuery when eager-loading is set.
	Edges        ApprovalRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApprovalRequestEdges holds the relations/edges for other nodes in the graph.
type ApprovalRequestEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApprovalRequestEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalrequest.FieldRiskAssessment:
			values[i] = new([]byte)
		case approvalrequest.FieldID, approvalrequest.FieldWorkflowID, approvalrequest.FieldPlanID, approvalrequest.FieldArtifactRef, approvalrequest.FieldRecommendation, approvalrequest.FieldStatus, approvalrequest.FieldFeedback, approvalrequest.FieldDecidedBy:
			values[i] = new(sql.NullString)
		case approvalrequest.FieldDecisionDeadline, approvalrequest.FieldDecidedAt, approvalrequest.FieldCreatedAt, approvalrequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalRequest fields.
func (_m *ApprovalRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalrequest.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case approvalrequest.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = new(string)
				*_m.PlanID = value.String
			}
		case approvalrequest.FieldArtifactRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_ref", values[i])
			} else if value.Valid {
				_m.ArtifactRef = value.String
			}
		case approvalrequest.FieldRiskAssessment:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field risk_assessment", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RiskAssessment); err != nil {
					return fmt.Errorf("unmarshal field risk_assessment: %w", err)
				}
			}
		case approvalrequest.FieldRecommendation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation", values[i])
			} else if value.Valid {
				_m.Recommendation = value.String
			}
		case approvalrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = approvalrequest.Status(value.String)
			}
		case approvalrequest.FieldDecisionDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decision_deadline", values[i])
			} else if value.Valid {
				_m.DecisionDeadline = value.Time
			}
		case approvalrequest.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = new(string)
				*_m.Feedback = value.String
			}
		case approvalrequest.FieldDecidedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decided_by", values[i])
			} else if value.Valid {
				_m.DecidedBy = new(string)
				*_m.DecidedBy = value.String
			}
		case approvalrequest.FieldDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decided_at", values[i])
			} else if value.Valid {
				_m.DecidedAt = new(time.Time)
				*_m.DecidedAt = value.Time
			}
		case approvalrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case approvalrequest.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the ApprovalRequest entity.
func (_m *ApprovalRequest) QueryWorkflow() *WorkflowQuery {
	return NewApprovalRequestClient(_m.config).QueryWorkflow(_m)
}

// Update returns a builder for updating this ApprovalRequest.
// Note that you need to call ApprovalRequest.Unwrap() before calling this method if this ApprovalRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalRequest) Update() *ApprovalRequestUpdateOne {
	return NewApprovalRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalRequest) Unwrap() *ApprovalRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	if v := _m.PlanID; v != nil {
		builder.WriteString("plan_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("artifact_ref=")
	builder.WriteString(_m.ArtifactRef)
	builder.WriteString(", ")
	builder.WriteString("risk_assessment=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskAssessment))
	builder.WriteString(", ")
	builder.WriteString("recommendation=")
	builder.WriteString(_m.Recommendation)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("decision_deadline=")
	builder.WriteString(_m.DecisionDeadline.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Feedback; v != nil {
		builder.WriteString("feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DecidedBy; v != nil {
		builder.WriteString("decided_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DecidedAt; v != nil {
		builder.WriteString("decided_at=")
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

// ApprovalRequests is a parsable slice of ApprovalRequest.
type ApprovalRequests []*ApprovalRequest
