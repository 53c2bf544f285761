// Code generated by ent, DO NOT EDIT.

package plan

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the plan type in the database.
	Label = "plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "plan_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
	// FieldStrategyName holds the string denoting the strategy_name field in the database.
	FieldStrategyName = "strategy_name"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldAlternatives holds the string denoting the alternatives field in the database.
	FieldAlternatives = "alternatives"
	// FieldPrimary holds the string denoting the primary field in the database.
	FieldPrimary = "primary"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExpectedDurationMs holds the string denoting the expected_duration_ms field in the database.
	FieldExpectedDurationMs = "expected_duration_ms"
	// FieldActualDurationMs holds the string denoting the actual_duration_ms field in the database.
	FieldActualDurationMs = "actual_duration_ms"
	// FieldReasonCode holds the string denoting the reason_code field in the database.
	FieldReasonCode = "reason_code"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// EdgePlanSteps holds the string denoting the plan_steps edge name in mutations.
	EdgePlanSteps = "plan_steps"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// StepFieldID holds the string denoting the ID field of the Step.
	StepFieldID = "step_id"
	// Table holds the table name of the plan in the database.
	Table = "plans"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "plans"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
	// PlanStepsTable is the table that holds the plan_steps relation/edge.
	PlanStepsTable = "steps"
	// PlanStepsInverseTable is the table name for the Step entity.
	// It exists in this package in order to avoid circular dependency with the "step" package.
	PlanStepsInverseTable = "steps"
	// PlanStepsColumn is the table column denoting the plan_steps relation/edge.
	PlanStepsColumn = "plan_id"
)

// Columns holds all SQL columns for plan fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldVersion,
	FieldGoal,
	FieldStrategyName,
	FieldStrategy,
	FieldRiskScore,
	FieldAlternatives,
	FieldPrimary,
	FieldStatus,
	FieldExpectedDurationMs,
	FieldActualDurationMs,
	FieldReasonCode,
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
	// DefaultRiskScore holds the default value on creation for the "risk_score" field.
	DefaultRiskScore float64
	// DefaultPrimary holds the default value on creation for the "primary" field.
	DefaultPrimary bool
	// DefaultExpectedDurationMs holds the default value on creation for the "expected_duration_ms" field.
	DefaultExpectedDurationMs int64
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
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusExecuting       Status = "executing"
	StatusPaused          Status = "paused"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
	StatusSuperseded      Status = "superseded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusExecuting, StatusPaused, StatusCompleted, StatusFailed, StatusSuperseded:
		return nil
	default:
		return fmt.Errorf("plan: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Plan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByGoal orders the results by the goal field.
func ByGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoal, opts...).ToFunc()
}

// ByStrategyName orders the results by the strategy_name field.
func ByStrategyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategyName, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByPrimary orders the results by the primary field.
func ByPrimary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimary, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExpectedDurationMs orders the results by the expected_duration_ms field.
func ByExpectedDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedDurationMs, opts...).ToFunc()
}

// ByActualDurationMs orders the results by the actual_duration_ms field.
func ByActualDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualDurationMs, opts...).ToFunc()
}

// ByReasonCode orders the results by the reason_code field.
func ByReasonCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasonCode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWorkflowField orders the results by workflow field.
func ByWorkflowField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowStep(), sql.OrderByField(field, opts...))
	}
}

// ByPlanStepsCount orders the results by plan_steps count.
func ByPlanStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPlanStepsStep(), opts...)
	}
}

// ByPlanSteps orders the results by plan_steps terms.
func ByPlanSteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlanStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorkflowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
	)
}
func newPlanStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlanStepsInverseTable, StepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PlanStepsTable, PlanStepsColumn),
	)
}
