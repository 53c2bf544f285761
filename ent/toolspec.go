// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/toolspec"
)

// ToolSpec is the model entity for the ToolSpec schema.
type ToolSpec struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Status holds the value of the "status" field.
	Status toolspec.Status `json:"status,omitempty"`
	// Capabilities holds the value of the "capabilities" field.
	Capabilities []string `json:"capabilities,omitempty"`
	// JSON Schema the sandbox validates arguments against
	InputSchema map[string]interface{} `json:"input_schema,omitempty"`
	// OutputSchema holds the value of the "output_schema" field.
	OutputSchema map[string]interface{} `json:"output_schema,omitempty"`
	// argv template for subprocess tools; empty for in-process handlers
	Command []string `json:"command,omitempty"`
	// Registered in-process handler name; empty for subprocess tools
	Handler string `json:"handler,omitempty"`
	// DefaultTimeoutMs holds the value of the "default_timeout_ms" field.
	DefaultTimeoutMs int64 `json:"default_timeout_ms,omitempty"`
	// TotalRuns holds the value of the "total_runs" field.
	TotalRuns int64 `json:"total_runs,omitempty"`
	// Successes holds the value of the "successes" field.
	Successes int64 `json:"successes,omitempty"`
	// Failures holds the value of the "failures" field.
	Failures int64 `json:"failures,omitempty"`
	// AvgLatencyMs holds the value of the "avg_latency_ms" field.
	AvgLatencyMs float64 `json:"avg_latency_ms,omitempty"`
	// Optimistic concurrency token
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ToolSpec) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case toolspec.FieldCapabilities, toolspec.FieldInputSchema, toolspec.FieldOutputSchema, toolspec.FieldCommand:
			values[i] = new([]byte)
		case toolspec.FieldAvgLatencyMs:
			values[i] = new(sql.NullFloat64)
		case toolspec.FieldDefaultTimeoutMs, toolspec.FieldTotalRuns, toolspec.FieldSuccesses, toolspec.FieldFailures, toolspec.FieldVersion:
			values[i] = new(sql.NullInt64)
		case toolspec.FieldID, toolspec.FieldName, toolspec.FieldStatus, toolspec.FieldHandler:
			values[i] = new(sql.NullString)
		case toolspec.FieldCreatedAt, toolspec.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ToolSpec fields.
func (_m *ToolSpec) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case toolspec.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case toolspec.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case toolspec.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = toolspec.Status(value.String)
			}
		case toolspec.FieldCapabilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field capabilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Capabilities); err != nil {
					return fmt.Errorf("unmarshal field capabilities: %w", err)
				}
			}
		case toolspec.FieldInputSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputSchema); err != nil {
					return fmt.Errorf("unmarshal field input_schema: %w", err)
				}
			}
		case toolspec.FieldOutputSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output_schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutputSchema); err != nil {
					return fmt.Errorf("unmarshal field output_schema: %w", err)
				}
			}
		case toolspec.FieldCommand:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field command", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Command); err != nil {
					return fmt.Errorf("unmarshal field command: %w", err)
				}
			}
		case toolspec.FieldHandler:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field handler", values[i])
			} else if value.Valid {
				_m.Handler = value.String
			}
		case toolspec.FieldDefaultTimeoutMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_timeout_ms", values[i])
			} else if value.Valid {
				_m.DefaultTimeoutMs = value.Int64
			}
		case toolspec.FieldTotalRuns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_runs", values[i])
			} else if value.Valid {
				_m.TotalRuns = value.Int64
			}
		case toolspec.FieldSuccesses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successes", values[i])
			} else if value.Valid {
				_m.Successes = value.Int64
			}
		case toolspec.FieldFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failures", values[i])
			} else if value.Valid {
				_m.Failures = value.Int64
			}
		case toolspec.FieldAvgLatencyMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_latency_ms", values[i])
			} else if value.Valid {
				_m.AvgLatencyMs = value.Float64
			}
		case toolspec.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case toolspec.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case toolspec.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ToolSpec.
// This includes values selected through modifiers, order, etc.
func (_m *ToolSpec) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ToolSpec.
// Note that you need to call ToolSpec.Unwrap() before calling this method if this ToolSpec
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ToolSpec) Update() *ToolSpecUpdateOne {
	return NewToolSpecClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ToolSpec entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ToolSpec) Unwrap() *ToolSpec {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ToolSpec is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ToolSpec) String() string {
	var builder strings.Builder
	builder.WriteString("ToolSpec(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("capabilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capabilities))
	builder.WriteString(", ")
	builder.WriteString("input_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputSchema))
	builder.WriteString(", ")
	builder.WriteString("output_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputSchema))
	builder.WriteString(", ")
	builder.WriteString("command=")
	builder.WriteString(fmt.Sprintf("%v", _m.Command))
	builder.WriteString(", ")
	builder.WriteString("handler=")
	builder.WriteString(_m.Handler)
	builder.WriteString(", ")
	builder.WriteString("default_timeout_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultTimeoutMs))
	builder.WriteString(", ")
	builder.WriteString("total_runs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRuns))
	builder.WriteString(", ")
	builder.WriteString("successes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Successes))
	builder.WriteString(", ")
	builder.WriteString("failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failures))
	builder.WriteString(", ")
	builder.WriteString("avg_latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgLatencyMs))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ToolSpecs is a parsable slice of ToolSpec.
type ToolSpecs []*ToolSpec
