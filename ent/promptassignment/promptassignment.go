// Code generated by ent, DO NOT EDIT.

package promptassignment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the promptassignment type in the database.
	Label = "prompt_assignment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldComponentRole holds the string denoting the component_role field in the database.
	FieldComponentRole = "component_role"
	// FieldScopeType holds the string denoting the scope_type field in the database.
	FieldScopeType = "scope_type"
	// FieldScopeValue holds the string denoting the scope_value field in the database.
	FieldScopeValue = "scope_value"
	// FieldPromptID holds the string denoting the prompt_id field in the database.
	FieldPromptID = "prompt_id"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldLegacyExempt holds the string denoting the legacy_exempt field in the database.
	FieldLegacyExempt = "legacy_exempt"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the promptassignment in the database.
	Table = "prompt_assignments"
)

// Columns holds all SQL columns for promptassignment fields.
var Columns = []string{
	FieldID,
	FieldStage,
	FieldComponentRole,
	FieldScopeType,
	FieldScopeValue,
	FieldPromptID,
	FieldPromptVersion,
	FieldLegacyExempt,
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
	// DefaultScopeValue holds the default value on creation for the "scope_value" field.
	DefaultScopeValue string
	// PromptVersionValidator is a validator for the "prompt_version" field. It is called by the builders before save.
	PromptVersionValidator func(int) error
	// DefaultLegacyExempt holds the default value on creation for the "legacy_exempt" field.
	DefaultLegacyExempt bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Stage defines the type for the "stage" enum field.
type Stage string

// Stage values.
const (
	StageInterpretation Stage = "interpretation"
	StageValidatorA     Stage = "validator_a"
	StageRouting        Stage = "routing"
	StagePlanning       Stage = "planning"
	StageValidatorB     Stage = "validator_b"
	StageExecution      Stage = "execution"
	StageReflection     Stage = "reflection"
	StageRegistryUpdate Stage = "registry_update"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageInterpretation, StageValidatorA, StageRouting, StagePlanning, StageValidatorB, StageExecution, StageReflection, StageRegistryUpdate:
		return nil
	default:
		return fmt.Errorf("promptassignment: invalid enum value for stage field: %q", s)
	}
}

// ScopeType defines the type for the "scope_type" enum field.
type ScopeType string

// ScopeTypeDefault is the default value of the ScopeType enum.
const DefaultScopeType = ScopeTypeDefault

// ScopeType values.
const (
	ScopeTypeExperiment ScopeType = "experiment"
	ScopeTypeAgent      ScopeType = "agent"
	ScopeTypeDefault    ScopeType = "default"
)

func (st ScopeType) String() string {
	return string(st)
}

// ScopeTypeValidator is a validator for the "scope_type" field enum values. It is called by the builders before save.
func ScopeTypeValidator(st ScopeType) error {
	switch st {
	case ScopeTypeExperiment, ScopeTypeAgent, ScopeTypeDefault:
		return nil
	default:
		return fmt.Errorf("promptassignment: invalid enum value for scope_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the PromptAssignment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByComponentRole orders the results by the component_role field.
func ByComponentRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComponentRole, opts...).ToFunc()
}

// ByScopeType orders the results by the scope_type field.
func ByScopeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeType, opts...).ToFunc()
}

// ByScopeValue orders the results by the scope_value field.
func ByScopeValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeValue, opts...).ToFunc()
}

// ByPromptID orders the results by the prompt_id field.
func ByPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptID, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByLegacyExempt orders the results by the legacy_exempt field.
func ByLegacyExempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyExempt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
