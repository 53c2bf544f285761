// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/promptassignment"
)

// PromptAssignment is the model entity for the PromptAssignment schema.
type PromptAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage promptassignment.Stage `json:"stage,omitempty"`
	// ComponentRole holds the value of the "component_role" field.
	ComponentRole string `json:"component_role,omitempty"`
	// ScopeType holds the value of the "scope_type" field.
	ScopeType promptassignment.ScopeType `json:"scope_type,omitempty"`
	// Experiment id or agent name; empty for default scope
	ScopeValue string `json:"scope_value,omitempty"`
	// PromptID holds the value of the "prompt_id" field.
	PromptID string `json:"prompt_id,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion int `json:"prompt_version,omitempty"`
	// Marks bindings whose absence falls back to builtins instead of failing
	LegacyExempt bool `json:"legacy_exempt,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromptAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promptassignment.FieldLegacyExempt:
			values[i] = new(sql.NullBool)
		case promptassignment.FieldPromptVersion:
			values[i] = new(sql.NullInt64)
		case promptassignment.FieldID, promptassignment.FieldStage, promptassignment.FieldComponentRole, promptassignment.FieldScopeType, promptassignment.FieldScopeValue, promptassignment.FieldPromptID:
			values[i] = new(sql.NullString)
		case promptassignment.FieldCreatedAt, promptassignment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromptAssignment fields.
func (_m *PromptAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promptassignment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case promptassignment.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = promptassignment.Stage(value.String)
			}
		case promptassignment.FieldComponentRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field component_role", values[i])
			} else if value.Valid {
				_m.ComponentRole = value.String
			}
		case promptassignment.FieldScopeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_type", values[i])
			} else if value.Valid {
				_m.ScopeType = promptassignment.ScopeType(value.String)
			}
		case promptassignment.FieldScopeValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_value", values[i])
			} else if value.Valid {
				_m.ScopeValue = value.String
			}
		case promptassignment.FieldPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_id", values[i])
			} else if value.Valid {
				_m.PromptID = value.String
			}
		case promptassignment.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = int(value.Int64)
			}
		case promptassignment.FieldLegacyExempt:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_exempt", values[i])
			} else if value.Valid {
				_m.LegacyExempt = value.Bool
			}
		case promptassignment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case promptassignment.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PromptAssignment.
// This includes values selected through modifiers, order, etc.
func (_m *PromptAssignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PromptAssignment.
// Note that you need to call PromptAssignment.Unwrap() before calling this method if this PromptAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromptAssignment) Update() *PromptAssignmentUpdateOne {
	return NewPromptAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromptAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromptAssignment) Unwrap() *PromptAssignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromptAssignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromptAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("PromptAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("component_role=")
	builder.WriteString(_m.ComponentRole)
	builder.WriteString(", ")
	builder.WriteString("scope_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScopeType))
	builder.WriteString(", ")
	builder.WriteString("scope_value=")
	builder.WriteString(_m.ScopeValue)
	builder.WriteString(", ")
	builder.WriteString("prompt_id=")
	builder.WriteString(_m.PromptID)
	builder.WriteString(", ")
	builder.WriteString("prompt_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptVersion))
	builder.WriteString(", ")
	builder.WriteString("legacy_exempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.LegacyExempt))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PromptAssignments is a parsable slice of PromptAssignment.
type PromptAssignments []*PromptAssignment
