// Code generated by ent, DO NOT EDIT.

package modelendpoint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the modelendpoint type in the database.
	Label = "model_endpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "model_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldMaxConcurrent holds the string denoting the max_concurrent field in the database.
	FieldMaxConcurrent = "max_concurrent"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldHealthy holds the string denoting the healthy field in the database.
	FieldHealthy = "healthy"
	// FieldLastHealthCheck holds the string denoting the last_health_check field in the database.
	FieldLastHealthCheck = "last_health_check"
	// FieldTotalRequests holds the string denoting the total_requests field in the database.
	FieldTotalRequests = "total_requests"
	// FieldSuccesses holds the string denoting the successes field in the database.
	FieldSuccesses = "successes"
	// FieldFailures holds the string denoting the failures field in the database.
	FieldFailures = "failures"
	// FieldAvgLatencyMs holds the string denoting the avg_latency_ms field in the database.
	FieldAvgLatencyMs = "avg_latency_ms"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the modelendpoint in the database.
	Table = "model_endpoints"
)

// Columns holds all SQL columns for modelendpoint fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldURL,
	FieldModel,
	FieldCapabilities,
	FieldMaxConcurrent,
	FieldPriority,
	FieldStatus,
	FieldHealthy,
	FieldLastHealthCheck,
	FieldTotalRequests,
	FieldSuccesses,
	FieldFailures,
	FieldAvgLatencyMs,
	FieldVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultMaxConcurrent holds the default value on creation for the "max_concurrent" field.
	DefaultMaxConcurrent int
	// MaxConcurrentValidator is a validator for the "max_concurrent" field. It is called by the builders before save.
	MaxConcurrentValidator func(int) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultHealthy holds the default value on creation for the "healthy" field.
	DefaultHealthy bool
	// DefaultTotalRequests holds the default value on creation for the "total_requests" field.
	DefaultTotalRequests int64
	// DefaultSuccesses holds the default value on creation for the "successes" field.
	DefaultSuccesses int64
	// DefaultFailures holds the default value on creation for the "failures" field.
	DefaultFailures int64
	// DefaultAvgLatencyMs holds the default value on creation for the "avg_latency_ms" field.
	DefaultAvgLatencyMs float64
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusDraft           Status = "draft"
	StatusWaitingApproval Status = "waiting_approval"
	StatusActive          Status = "active"
	StatusPaused          Status = "paused"
	StatusDeprecated      Status = "deprecated"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusWaitingApproval, StatusActive, StatusPaused, StatusDeprecated:
		return nil
	default:
		return fmt.Errorf("modelendpoint: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ModelEndpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByMaxConcurrent orders the results by the max_concurrent field.
func ByMaxConcurrent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxConcurrent, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByHealthy orders the results by the healthy field.
func ByHealthy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthy, opts...).ToFunc()
}

// ByLastHealthCheck orders the results by the last_health_check field.
func ByLastHealthCheck(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHealthCheck, opts...).ToFunc()
}

// ByTotalRequests orders the results by the total_requests field.
func ByTotalRequests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRequests, opts...).ToFunc()
}

// BySuccesses orders the results by the successes field.
func BySuccesses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccesses, opts...).ToFunc()
}

// ByFailures orders the results by the failures field.
func ByFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailures, opts...).ToFunc()
}

// ByAvgLatencyMs orders the results by the avg_latency_ms field.
func ByAvgLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgLatencyMs, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
