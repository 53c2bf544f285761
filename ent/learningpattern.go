// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/learningpattern"
)

// LearningPattern is the model entity for the LearningPattern schema.
type LearningPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind learningpattern.Kind `json:"kind,omitempty"`
	// Reflection granularity: per step, per step-group, per plan
	Level learningpattern.Level `json:"level,omitempty"`
	// Request fingerprint, tool set, or structural hash
	Signature string `json:"signature,omitempty"`
	// Pattern content: strategy skeleton, tool list, recovery hint
	Body map[string]interface{} `json:"body,omitempty"`
	// ObservedSuccessRate holds the value of the "observed_success_rate" field.
	ObservedSuccessRate float64 `json:"observed_success_rate,omitempty"`
	// SampleCount holds the value of the "sample_count" field.
	SampleCount int64 `json:"sample_count,omitempty"`
	// LastObservedAt holds the value of the "last_observed_at" field.
	LastObservedAt time.Time `json:"last_observed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningpattern.FieldBody:
			values[i] = new([]byte)
		case learningpattern.FieldObservedSuccessRate:
			values[i] = new(sql.NullFloat64)
		case learningpattern.FieldSampleCount:
			values[i] = new(sql.NullInt64)
		case learningpattern.FieldID, learningpattern.FieldKind, learningpattern.FieldLevel, learningpattern.FieldSignature:
			values[i] = new(sql.NullString)
		case learningpattern.FieldLastObservedAt, learningpattern.FieldCreatedAt, learningpattern.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningPattern fields.
func (_m *LearningPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningpattern.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case learningpattern.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = learningpattern.Kind(value.String)
			}
		case learningpattern.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = learningpattern.Level(value.String)
			}
		case learningpattern.FieldSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signature", values[i])
			} else if value.Valid {
				_m.Signature = value.String
			}
		case learningpattern.FieldBody:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Body); err != nil {
					return fmt.Errorf("unmarshal field body: %w", err)
				}
			}
		case learningpattern.FieldObservedSuccessRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field observed_success_rate", values[i])
			} else if value.Valid {
				_m.ObservedSuccessRate = value.Float64
			}
		case learningpattern.FieldSampleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_count", values[i])
			} else if value.Valid {
				_m.SampleCount = value.Int64
			}
		case learningpattern.FieldLastObservedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_observed_at", values[i])
			} else if value.Valid {
				_m.LastObservedAt = value.Time
			}
		case learningpattern.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learningpattern.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LearningPattern.
// This includes values selected through modifiers, order, etc.
func (_m *LearningPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningPattern.
// Note that you need to call LearningPattern.Unwrap() before calling this method if this LearningPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningPattern) Update() *LearningPatternUpdateOne {
	return NewLearningPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningPattern) Unwrap() *LearningPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningPattern) String() string {
	var builder strings.Builder
	builder.WriteString("LearningPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("signature=")
	builder.WriteString(_m.Signature)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(fmt.Sprintf("%v", _m.Body))
	builder.WriteString(", ")
	builder.WriteString("observed_success_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ObservedSuccessRate))
	builder.WriteString(", ")
	builder.WriteString("sample_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleCount))
	builder.WriteString(", ")
	builder.WriteString("last_observed_at=")
	builder.WriteString(_m.LastObservedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningPatterns is a parsable slice of LearningPattern.
type LearningPatterns []*LearningPattern
