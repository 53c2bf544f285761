// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/modelendpoint"
)

// ModelEndpoint is the model entity for the ModelEndpoint schema.
type ModelEndpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// model_ref used by callers and server_id in responses
	Name string `json:"name,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Model identifier passed to the serving endpoint
	Model string `json:"model,omitempty"`
	// reasoning, coding, ...
	Capabilities []string `json:"capabilities,omitempty"`
	// MaxConcurrent holds the value of the "max_concurrent" field.
	MaxConcurrent int `json:"max_concurrent,omitempty"`
	// Lower wins ties during selection
	Priority int `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status modelendpoint.Status `json:"status,omitempty"`
	// Healthy holds the value of the "healthy" field.
	Healthy bool `json:"healthy,omitempty"`
	// LastHealthCheck holds the value of the "last_health_check" field.
	LastHealthCheck *time.Time `json:"last_health_check,omitempty"`
	// TotalRequests holds the value of the "total_requests" field.
	TotalRequests int64 `json:"total_requests,omitempty"`
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
func (*ModelEndpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modelendpoint.FieldCapabilities:
			values[i] = new([]byte)
		case modelendpoint.FieldHealthy:
			values[i] = new(sql.NullBool)
		case modelendpoint.FieldAvgLatencyMs:
			values[i] = new(sql.NullFloat64)
		case modelendpoint.FieldMaxConcurrent, modelendpoint.FieldPriority, modelendpoint.FieldTotalRequests, modelendpoint.FieldSuccesses, modelendpoint.FieldFailures, modelendpoint.FieldVersion:
			values[i] = new(sql.NullInt64)
		case modelendpoint.FieldID, modelendpoint.FieldName, modelendpoint.FieldURL, modelendpoint.FieldModel, modelendpoint.FieldStatus:
			values[i] = new(sql.NullString)
		case modelendpoint.FieldLastHealthCheck, modelendpoint.FieldCreatedAt, modelendpoint.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelEndpoint fields.
func (_m *ModelEndpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modelendpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case modelendpoint.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case modelendpoint.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case modelendpoint.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case modelendpoint.FieldCapabilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field capabilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Capabilities); err != nil {
					return fmt.Errorf("unmarshal field capabilities: %w", err)
				}
			}
		case modelendpoint.FieldMaxConcurrent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_concurrent", values[i])
			} else if value.Valid {
				_m.MaxConcurrent = int(value.Int64)
			}
		case modelendpoint.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case modelendpoint.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = modelendpoint.Status(value.String)
			}
		case modelendpoint.FieldHealthy:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field healthy", values[i])
			} else if value.Valid {
				_m.Healthy = value.Bool
			}
		case modelendpoint.FieldLastHealthCheck:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_health_check", values[i])
			} else if value.Valid {
				_m.LastHealthCheck = new(time.Time)
				*_m.LastHealthCheck = value.Time
			}
		case modelendpoint.FieldTotalRequests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_requests", values[i])
			} else if value.Valid {
				_m.TotalRequests = value.Int64
			}
		case modelendpoint.FieldSuccesses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successes", values[i])
			} else if value.Valid {
				_m.Successes = value.Int64
			}
		case modelendpoint.FieldFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failures", values[i])
			} else if value.Valid {
				_m.Failures = value.Int64
			}
		case modelendpoint.FieldAvgLatencyMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_latency_ms", values[i])
			} else if value.Valid {
				_m.AvgLatencyMs = value.Float64
			}
		case modelendpoint.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case modelendpoint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case modelendpoint.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ModelEndpoint.
// This includes values selected through modifiers, order, etc.
func (_m *ModelEndpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModelEndpoint.
// Note that you need to call ModelEndpoint.Unwrap() before calling this method if this ModelEndpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModelEndpoint) Update() *ModelEndpointUpdateOne {
	return NewModelEndpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModelEndpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModelEndpoint) Unwrap() *ModelEndpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelEndpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModelEndpoint) String() string {
	var builder strings.Builder
	builder.WriteString("ModelEndpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("capabilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capabilities))
	builder.WriteString(", ")
	builder.WriteString("max_concurrent=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxConcurrent))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("healthy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Healthy))
	builder.WriteString(", ")
	if v := _m.LastHealthCheck; v != nil {
		builder.WriteString("last_health_check=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_requests=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRequests))
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

// ModelEndpoints is a parsable slice of ModelEndpoint.
type ModelEndpoints []*ModelEndpoint
