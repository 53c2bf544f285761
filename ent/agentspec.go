// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/agentspec"
)

// AgentSpec is the model entity for the AgentSpec schema.
type AgentSpec struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Status holds the value of the "status" field.
	Status agentspec.Status `json:"status,omitempty"`
	// Capabilities holds the value of the "capabilities" field.
	Capabilities []string `json:"capabilities,omitempty"`
	// Task class the agent's calls run under
	ModelClass string `json:"model_class,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// TotalRuns holds the value of the "total_runs" field.
	TotalRuns int64 `json:"total_runs,omitempty"`
	// Successes holds the value of the "successes" field.
	Successes int64 `json:"successes,omitempty"`
	// Failures holds the value of the "failures" field.
	Failures int64 `json:"failures,omitempty"`
	// Exponential moving average
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
func (*AgentSpec) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentspec.FieldCapabilities:
			values[i] = new([]byte)
		case agentspec.FieldAvgLatencyMs:
			values[i] = new(sql.NullFloat64)
		case agentspec.FieldTotalRuns, agentspec.FieldSuccesses, agentspec.FieldFailures, agentspec.FieldVersion:
			values[i] = new(sql.NullInt64)
		case agentspec.FieldID, agentspec.FieldName, agentspec.FieldStatus, agentspec.FieldModelClass, agentspec.FieldDescription:
			values[i] = new(sql.NullString)
		case agentspec.FieldCreatedAt, agentspec.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentSpec fields.
func (_m *AgentSpec) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentspec.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentspec.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agentspec.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentspec.Status(value.String)
			}
		case agentspec.FieldCapabilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field capabilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Capabilities); err != nil {
					return fmt.Errorf("unmarshal field capabilities: %w", err)
				}
			}
		case agentspec.FieldModelClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_class", values[i])
			} else if value.Valid {
				_m.ModelClass = value.String
			}
		case agentspec.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case agentspec.FieldTotalRuns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_runs", values[i])
			} else if value.Valid {
				_m.TotalRuns = value.Int64
			}
		case agentspec.FieldSuccesses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successes", values[i])
			} else if value.Valid {
				_m.Successes = value.Int64
			}
		case agentspec.FieldFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failures", values[i])
			} else if value.Valid {
				_m.Failures = value.Int64
			}
		case agentspec.FieldAvgLatencyMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_latency_ms", values[i])
			} else if value.Valid {
				_m.AvgLatencyMs = value.Float64
			}
		case agentspec.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case agentspec.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentspec.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentSpec.
// This includes values selected through modifiers, order, etc.
func (_m *AgentSpec) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentSpec.
// Note that you need to call AgentSpec.Unwrap() before calling this method if this AgentSpec
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentSpec) Update() *AgentSpecUpdateOne {
	return NewAgentSpecClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentSpec entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentSpec) Unwrap() *AgentSpec {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentSpec is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentSpec) String() string {
	var builder strings.Builder
	builder.WriteString("AgentSpec(")
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
	builder.WriteString("model_class=")
	builder.WriteString(_m.ModelClass)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
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

// AgentSpecs is a parsable slice of AgentSpec.
type AgentSpecs []*AgentSpec
