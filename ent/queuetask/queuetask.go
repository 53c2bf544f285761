// Code generated by ent, DO NOT EDIT.

package queuetask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the queuetask type in the database.
	Label = "queue_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldQueueID holds the string denoting the queue_id field in the database.
	FieldQueueID = "queue_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldLeaseOwner holds the string denoting the lease_owner field in the database.
	FieldLeaseOwner = "lease_owner"
	// FieldLeaseExpiresAt holds the string denoting the lease_expires_at field in the database.
	FieldLeaseExpiresAt = "lease_expires_at"
	// FieldLeasedAt holds the string denoting the leased_at field in the database.
	FieldLeasedAt = "leased_at"
	// FieldNextVisibleAt holds the string denoting the next_visible_at field in the database.
	FieldNextVisibleAt = "next_visible_at"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldEnqueuedAt holds the string denoting the enqueued_at field in the database.
	FieldEnqueuedAt = "enqueued_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the queuetask in the database.
	Table = "queue_tasks"
)

// Columns holds all SQL columns for queuetask fields.
var Columns = []string{
	FieldID,
	FieldQueueID,
	FieldKind,
	FieldPriority,
	FieldPayload,
	FieldAttempts,
	FieldMaxAttempts,
	FieldState,
	FieldLeaseOwner,
	FieldLeaseExpiresAt,
	FieldLeasedAt,
	FieldNextVisibleAt,
	FieldLastError,
	FieldEnqueuedAt,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultNextVisibleAt holds the default value on creation for the "next_visible_at" field.
	DefaultNextVisibleAt func() time.Time
	// DefaultEnqueuedAt holds the default value on creation for the "enqueued_at" field.
	DefaultEnqueuedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateQueued is the default value of the State enum.
const DefaultState = StateQueued

// State values.
const (
	StateQueued    State = "queued"
	StateLeased    State = "leased"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateDead      State = "dead"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateQueued, StateLeased, StateSucceeded, StateFailed, StateDead:
		return nil
	default:
		return fmt.Errorf("queuetask: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the QueueTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQueueID orders the results by the queue_id field.
func ByQueueID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueueID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByLeaseOwner orders the results by the lease_owner field.
func ByLeaseOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseOwner, opts...).ToFunc()
}

// ByLeaseExpiresAt orders the results by the lease_expires_at field.
func ByLeaseExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseExpiresAt, opts...).ToFunc()
}

// ByLeasedAt orders the results by the leased_at field.
func ByLeasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeasedAt, opts...).ToFunc()
}

// ByNextVisibleAt orders the results by the next_visible_at field.
func ByNextVisibleAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextVisibleAt, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByEnqueuedAt orders the results by the enqueued_at field.
func ByEnqueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnqueuedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
