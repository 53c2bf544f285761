// Code generated by ent, DO NOT EDIT.

package approvalrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the approvalrequest type in the database.
	Label = "approval_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "request_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldArtifactRef holds the string denoting the artifact_ref field in the database.
	FieldArtifactRef = "artifact_ref"
	// FieldRiskAssessment holds the string denoting the risk_assessment field in the database.
	FieldRiskAssessment = "risk_assessment"
	// FieldRecommendation holds the string denoting the recommendation field in the database.
	FieldRecommendation = "recommendation"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDecisionDeadline holds the string denoting the decision_deadline field in the database.
	FieldDecisionDeadline = "decision_deadline"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldDecidedBy holds the string denoting the decided_by field in the database.
	FieldDecidedBy = "decided_by"
	// FieldDecidedAt holds the string denoting the decided_at field in the database.
	FieldDecidedAt = "decided_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// Table holds the table name of the approvalrequest in the database.
	Table = "approval_requests"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "approval_requests"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
)

// Columns holds all SQL columns for approvalrequest fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldPlanID,
	FieldArtifactRef,
	FieldRiskAssessment,
	FieldRecommendation,
	FieldStatus,
	FieldDecisionDeadline,
	FieldFeedback,
	FieldDecidedBy,
	FieldDecidedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusModified Status = "modified"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusModified, StatusExpired:
		return nil
	default:
		return fmt.Errorf("approvalrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ApprovalRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByArtifactRef orders the results by the artifact_ref field.
func ByArtifactRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactRef, opts...).ToFunc()
}

// ByRecommendation orders the results by the recommendation field.
func ByRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendation, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDecisionDeadline orders the results by the decision_deadline field.
func ByDecisionDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionDeadline, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}

// ByDecidedBy orders the results by the decided_by field.
func ByDecidedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecidedBy, opts...).ToFunc()
}

// ByDecidedAt orders the results by the decided_at field.
func ByDecidedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecidedAt, opts...).ToFunc()
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
func newWorkflowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
	)
}
