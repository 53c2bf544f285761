// Code generated by ent, DO NOT EDIT.

package step

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the step type in the database.
	Label = "step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldIndex holds the string denoting the index field in the database.
	FieldIndex = "index"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldExecutorKind holds the string denoting the executor_kind field in the database.
	FieldExecutorKind = "executor_kind"
	// FieldExecutorRef holds the string denoting the executor_ref field in the database.
	FieldExecutorRef = "executor_ref"
	// FieldTeamMembers holds the string denoting the team_members field in the database.
	FieldTeamMembers = "team_members"
	// FieldInputs holds the string denoting the inputs field in the database.
	FieldInputs = "inputs"
	// FieldOutputs holds the string denoting the outputs field in the database.
	FieldOutputs = "outputs"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldTimeoutMs holds the string denoting the timeout_ms field in the database.
	FieldTimeoutMs = "timeout_ms"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldBackoffBaseMs holds the string denoting the backoff_base_ms field in the database.
	FieldBackoffBaseMs = "backoff_base_ms"
	// FieldApprovalRequired holds the string denoting the approval_required field in the database.
	FieldApprovalRequired = "approval_required"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldFunctionCall holds the string denoting the function_call field in the database.
	FieldFunctionCall = "function_call"
	// FieldChecks holds the string denoting the checks field in the database.
	FieldChecks = "checks"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldReasonCode holds the string denoting the reason_code field in the database.
	FieldReasonCode = "reason_code"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePlan holds the string denoting the plan edge name in mutations.
	EdgePlan = "plan"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// PlanFieldID holds the string denoting the ID field of the Plan.
	PlanFieldID = "plan_id"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// Table holds the table name of the step in the database.
	Table = "steps"
	// PlanTable is the table that holds the plan relation/edge.
	PlanTable = "steps"
	// PlanInverseTable is the table name for the Plan entity.
	// It exists in this package in order to avoid circular dependency with the "plan" package.
	PlanInverseTable = "plans"
	// PlanColumn is the table column denoting the plan relation/edge.
	PlanColumn = "plan_id"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "steps"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
)

// Columns holds all SQL columns for step fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldWorkflowID,
	FieldIndex,
	FieldName,
	FieldDescription,
	FieldType,
	FieldExecutorKind,
	FieldExecutorRef,
	FieldTeamMembers,
	FieldInputs,
	FieldOutputs,
	FieldDependencies,
	FieldTimeoutMs,
	FieldMaxAttempts,
	FieldBackoffBaseMs,
	FieldApprovalRequired,
	FieldRiskLevel,
	FieldFunctionCall,
	FieldChecks,
	FieldState,
	FieldAttempts,
	FieldErrorKind,
	FieldReasonCode,
	FieldQualityScore,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultTimeoutMs holds the default value on creation for the "timeout_ms" field.
	DefaultTimeoutMs int64
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultBackoffBaseMs holds the default value on creation for the "backoff_base_ms" field.
	DefaultBackoffBaseMs int64
	// DefaultApprovalRequired holds the default value on creation for the "approval_required" field.
	DefaultApprovalRequired bool
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// TypeAction is the default value of the Type enum.
const DefaultType = TypeAction

// Type values.
const (
	TypeAction     Type = "action"
	TypeDecision   Type = "decision"
	TypeValidation Type = "validation"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeAction, TypeDecision, TypeValidation:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for type field: %q", _type)
	}
}

// ExecutorKind defines the type for the "executor_kind" enum field.
type ExecutorKind string

// ExecutorKindInlineLlm is the default value of the ExecutorKind enum.
const DefaultExecutorKind = ExecutorKindInlineLlm

// ExecutorKind values.
const (
	ExecutorKindAgent     ExecutorKind = "agent"
	ExecutorKindTool      ExecutorKind = "tool"
	ExecutorKindTeam      ExecutorKind = "team"
	ExecutorKindInlineLlm ExecutorKind = "inline_llm"
)

func (ek ExecutorKind) String() string {
	return string(ek)
}

// ExecutorKindValidator is a validator for the "executor_kind" field enum values. It is called by the builders before save.
func ExecutorKindValidator(ek ExecutorKind) error {
	switch ek {
	case ExecutorKindAgent, ExecutorKindTool, ExecutorKindTeam, ExecutorKindInlineLlm:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for executor_kind field: %q", ek)
	}
}

// RiskLevel defines the type for the "risk_level" enum field.
type RiskLevel string

// RiskLevelLow is the default value of the RiskLevel enum.
const DefaultRiskLevel = RiskLevelLow

// RiskLevel values.
const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

func (rl RiskLevel) String() string {
	return string(rl)
}

// RiskLevelValidator is a validator for the "risk_level" field enum values. It is called by the builders before save.
func RiskLevelValidator(rl RiskLevel) error {
	switch rl {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for risk_level field: %q", rl)
	}
}

// State defines the type for the "state" enum field.
type State string

// StateWaiting is the default value of the State enum.
const DefaultState = StateWaiting

// State values.
const (
	StateWaiting   State = "waiting"
	StateReady     State = "ready"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateSkipped   State = "skipped"
	StateCancelled State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateWaiting, StateReady, StateRunning, StateSucceeded, StateFailed, StateSkipped, StateCancelled:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Step queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByIndex orders the results by the index field.
func ByIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndex, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByExecutorKind orders the results by the executor_kind field.
func ByExecutorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutorKind, opts...).ToFunc()
}

// ByExecutorRef orders the results by the executor_ref field.
func ByExecutorRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutorRef, opts...).ToFunc()
}

// ByTimeoutMs orders the results by the timeout_ms field.
func ByTimeoutMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutMs, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByBackoffBaseMs orders the results by the backoff_base_ms field.
func ByBackoffBaseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackoffBaseMs, opts...).ToFunc()
}

// ByApprovalRequired orders the results by the approval_required field.
func ByApprovalRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalRequired, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByReasonCode orders the results by the reason_code field.
func ByReasonCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasonCode, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPlanField orders the results by plan field.
func ByPlanField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlanStep(), sql.OrderByField(field, opts...))
	}
}

// ByWorkflowField orders the results by workflow field.
func ByWorkflowField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowStep(), sql.OrderByField(field, opts...))
	}
}
func newPlanStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlanInverseTable, PlanFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PlanTable, PlanColumn),
	)
}
func newWorkflowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
	)
}
