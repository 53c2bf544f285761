// Code generated by ent, DO NOT EDIT.

package learningpattern

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learningpattern type in the database.
	Label = "learning_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pattern_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldSignature holds the string denoting the signature field in the database.
	FieldSignature = "signature"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldObservedSuccessRate holds the string denoting the observed_success_rate field in the database.
	FieldObservedSuccessRate = "observed_success_rate"
	// FieldSampleCount holds the string denoting the sample_count field in the database.
	FieldSampleCount = "sample_count"
	// FieldLastObservedAt holds the string denoting the last_observed_at field in the database.
	FieldLastObservedAt = "last_observed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learningpattern in the database.
	Table = "learning_patterns"
)

// Columns holds all SQL columns for learningpattern fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldLevel,
	FieldSignature,
	FieldBody,
	FieldObservedSuccessRate,
	FieldSampleCount,
	FieldLastObservedAt,
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
	// DefaultObservedSuccessRate holds the default value on creation for the "observed_success_rate" field.
	DefaultObservedSuccessRate float64
	// DefaultSampleCount holds the default value on creation for the "sample_count" field.
	DefaultSampleCount int64
	// DefaultLastObservedAt holds the default value on creation for the "last_observed_at" field.
	DefaultLastObservedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindStrategy      Kind = "strategy"
	KindPrompt        Kind = "prompt"
	KindToolSelection Kind = "tool_selection"
	KindCodePattern   Kind = "code_pattern"
	KindErrorRecovery Kind = "error_recovery"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindStrategy, KindPrompt, KindToolSelection, KindCodePattern, KindErrorRecovery:
		return nil
	default:
		return fmt.Errorf("learningpattern: invalid enum value for kind field: %q", k)
	}
}

// Level defines the type for the "level" enum field.
type Level string

// LevelMacro is the default value of the Level enum.
const DefaultLevel = LevelMacro

// Level values.
const (
	LevelMicro Level = "micro"
	LevelMeso  Level = "meso"
	LevelMacro Level = "macro"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelMicro, LevelMeso, LevelMacro:
		return nil
	default:
		return fmt.Errorf("learningpattern: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the LearningPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// BySignature orders the results by the signature field.
func BySignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignature, opts...).ToFunc()
}

// ByObservedSuccessRate orders the results by the observed_success_rate field.
func ByObservedSuccessRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservedSuccessRate, opts...).ToFunc()
}

// BySampleCount orders the results by the sample_count field.
func BySampleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleCount, opts...).ToFunc()
}

// ByLastObservedAt orders the results by the last_observed_at field.
func ByLastObservedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastObservedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
