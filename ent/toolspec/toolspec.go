// Code generated by ent, DO NOT EDIT.

package toolspec

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the toolspec type in the database.
	Label = "tool_spec"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tool_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldInputSchema holds the string denoting the input_schema field in the database.
	FieldInputSchema = "input_schema"
	// FieldOutputSchema holds the string denoting the output_schema field in the database.
	FieldOutputSchema = "output_schema"
	// FieldCommand holds the string denoting the command field in the database.
	FieldCommand = "command"
	// FieldHandler holds the string denoting the handler field in the database.
	FieldHandler = "handler"
	// FieldDefaultTimeoutMs holds the string denoting the default_timeout_ms field in the database.
	FieldDefaultTimeoutMs = "default_timeout_ms"
	// FieldTotalRuns holds the string denoting the total_runs field in the database.
	FieldTotalRuns = "total_runs"
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
	// Table holds the table name of the toolspec in the database.
	Table = "tool_specs"
)

// Columns holds all SQL columns for toolspec fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldStatus,
	FieldCapabilities,
	FieldInputSchema,
	FieldOutputSchema,
	FieldCommand,
	FieldHandler,
	FieldDefaultTimeoutMs,
	FieldTotalRuns,
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
	// DefaultDefaultTimeoutMs holds the default value on creation for the "default_timeout_ms" field.
	DefaultDefaultTimeoutMs int64
	// DefaultTotalRuns holds the default value on creation for the "total_runs" field.
	DefaultTotalRuns int64
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

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

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
		return fmt.Errorf("toolspec: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ToolSpec queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByHandler orders the results by the handler field.
func ByHandler(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHandler, opts...).ToFunc()
}

// ByDefaultTimeoutMs orders the results by the default_timeout_ms field.
func ByDefaultTimeoutMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultTimeoutMs, opts...).ToFunc()
}

// ByTotalRuns orders the results by the total_runs field.
func ByTotalRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRuns, opts...).ToFunc()
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
