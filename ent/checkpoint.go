// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/checkpoint"
)

// Checkpoint is the model entity for the Checkpoint schema.
type Checkpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType string `json:"entity_type,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// Canonical JSON encoding of the snapshotted state
	StateBlob []byte `json:"state_blob,omitempty"`
	// sha256 hex over state_blob
	IntegrityHash string `json:"integrity_hash,omitempty"`
	// pre_step, pre_plan, cancellation, ...
	Reason string `json:"reason,omitempty"`
	// Workflow or event id for cross-referencing
	TraceID string `json:"trace_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Checkpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldStateBlob:
			values[i] = new([]byte)
		case checkpoint.FieldID, checkpoint.FieldEntityType, checkpoint.FieldEntityID, checkpoint.FieldIntegrityHash, checkpoint.FieldReason, checkpoint.FieldTraceID:
			values[i] = new(sql.NullString)
		case checkpoint.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Checkpoint fields.
func (_m *Checkpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case checkpoint.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = value.String
			}
		case checkpoint.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case checkpoint.FieldStateBlob:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state_blob", values[i])
			} else if value != nil {
				_m.StateBlob = *value
			}
		case checkpoint.FieldIntegrityHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field integrity_hash", values[i])
			} else if value.Valid {
				_m.IntegrityHash = value.String
			}
		case checkpoint.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case checkpoint.FieldTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trace_id", values[i])
			} else if value.Valid {
				_m.TraceID = value.String
			}
		case checkpoint.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Checkpoint.
// This includes values selected through modifiers, order, etc.
func (_m *Checkpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Checkpoint.
// Note that you need to call Checkpoint.Unwrap() before calling this method if this Checkpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Checkpoint) Update() *CheckpointUpdateOne {
	return NewCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Checkpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Checkpoint) Unwrap() *Checkpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Checkpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Checkpoint) String() string {
	var builder strings.Builder
	builder.WriteString("Checkpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entity_type=")
	builder.WriteString(_m.EntityType)
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("state_blob=")
	builder.WriteString(fmt.Sprintf("%v", _m.StateBlob))
	builder.WriteString(", ")
	builder.WriteString("integrity_hash=")
	builder.WriteString(_m.IntegrityHash)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("trace_id=")
	builder.WriteString(_m.TraceID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Checkpoints is a parsable slice of Checkpoint.
type Checkpoints []*Checkpoint
