// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflow type in the database.
	Label = "workflow"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workflow_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRequestType holds the string denoting the request_type field in the database.
	FieldRequestType = "request_type"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldModelOverride holds the string denoting the model_override field in the database.
	FieldModelOverride = "model_override"
	// FieldServerOverride holds the string denoting the server_override field in the database.
	FieldServerOverride = "server_override"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldModelUsed holds the string denoting the model_used field in the database.
	FieldModelUsed = "model_used"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldReasonCode holds the string denoting the reason_code field in the database.
	FieldReasonCode = "reason_code"
	// FieldFailingEventID holds the string denoting the failing_event_id field in the database.
	FieldFailingEventID = "failing_event_id"
	// FieldEventSequence holds the string denoting the event_sequence field in the database.
	FieldEventSequence = "event_sequence"
	// FieldWorkerID holds the string denoting the worker_id field in the database.
	FieldWorkerID = "worker_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgePlans holds the string denoting the plans edge name in mutations.
	EdgePlans = "plans"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeExecutionEvents holds the string denoting the execution_events edge name in mutations.
	EdgeExecutionEvents = "execution_events"
	// EdgeApprovalRequests holds the string denoting the approval_requests edge name in mutations.
	EdgeApprovalRequests = "approval_requests"
	// PlanFieldID holds the string denoting the ID field of the Plan.
	PlanFieldID = "plan_id"
	// StepFieldID holds the string denoting the ID field of the Step.
	StepFieldID = "step_id"
	// ExecutionEventFieldID holds the string denoting the ID field of the ExecutionEvent.
	ExecutionEventFieldID = "event_id"
	// ApprovalRequestFieldID holds the string denoting the ID field of the ApprovalRequest.
	ApprovalRequestFieldID = "request_id"
	// Table holds the table name of the workflow in the database.
	Table = "workflows"
	// PlansTable is the table that holds the plans relation/edge.
	PlansTable = "plans"
	// PlansInverseTable is the table name for the Plan entity.
	// It exists in this package in order to avoid circular dependency with the "plan" package.
	PlansInverseTable = "plans"
	// PlansColumn is the table column denoting the plans relation/edge.
	PlansColumn = "workflow_id"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "steps"
	// StepsInverseTable is the table name for the Step entity.
	// It exists in this package in order to avoid circular dependency with the "step" package.
	StepsInverseTable = "steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "workflow_id"
	// ExecutionEventsTable is the table that holds the execution_events relation/edge.
	ExecutionEventsTable = "execution_events"
	// ExecutionEventsInverseTable is the table name for the ExecutionEvent entity.
	// It exists in this package in order to avoid circular dependency with the "executionevent" package.
	ExecutionEventsInverseTable = "execution_events"
	// ExecutionEventsColumn is the table column denoting the execution_events relation/edge.
	ExecutionEventsColumn = "workflow_id"
	// ApprovalRequestsTable is the table that holds the approval_requests relation/edge.
	ApprovalRequestsTable = "approval_requests"
	// ApprovalRequestsInverseTable is the table name for the ApprovalRequest entity.
	// It exists in this package in order to avoid circular dependency with the "approvalrequest" package.
	ApprovalRequestsInverseTable = "approval_requests"
	// ApprovalRequestsColumn is the table column denoting the approval_requests relation/edge.
	ApprovalRequestsColumn = "workflow_id"
)

// Columns holds all SQL columns for workflow fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldRequestType,
	FieldMessage,
	FieldSystemPrompt,
	FieldModelOverride,
	FieldServerOverride,
	FieldTemperature,
	FieldCurrentStage,
	FieldStatus,
	FieldResponse,
	FieldReasoning,
	FieldModelUsed,
	FieldErrorKind,
	FieldReasonCode,
	FieldFailingEventID,
	FieldEventSequence,
	FieldWorkerID,
	FieldLastHeartbeatAt,
	FieldMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
	FieldDeletedAt,
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
	// DefaultEventSequence holds the default value on creation for the "event_sequence" field.
	DefaultEventSequence int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// RequestType defines the type for the "request_type" enum field.
type RequestType string

// RequestType values.
const (
	RequestTypeSimpleQuestion   RequestType = "SIMPLE_QUESTION"
	RequestTypeInformationQuery RequestType = "INFORMATION_QUERY"
	RequestTypeCodeGeneration   RequestType = "CODE_GENERATION"
	RequestTypeComplexTask      RequestType = "COMPLEX_TASK"
	RequestTypePlanningOnly     RequestType = "PLANNING_ONLY"
)

func (rt RequestType) String() string {
	return string(rt)
}

// RequestTypeValidator is a validator for the "request_type" field enum values. It is called by the builders before save.
func RequestTypeValidator(rt RequestType) error {
	switch rt {
	case RequestTypeSimpleQuestion, RequestTypeInformationQuery, RequestTypeCodeGeneration, RequestTypeComplexTask, RequestTypePlanningOnly:
		return nil
	default:
		return fmt.Errorf("workflow: invalid enum value for request_type field: %q", rt)
	}
}

// CurrentStage defines the type for the "current_stage" enum field.
type CurrentStage string

// CurrentStageInterpretation is the default value of the CurrentStage enum.
const DefaultCurrentStage = CurrentStageInterpretation

// CurrentStage values.
const (
	CurrentStageInterpretation CurrentStage = "interpretation"
	CurrentStageValidatorA     CurrentStage = "validator_a"
	CurrentStageRouting        CurrentStage = "routing"
	CurrentStagePlanning       CurrentStage = "planning"
	CurrentStageValidatorB     CurrentStage = "validator_b"
	CurrentStageExecution      CurrentStage = "execution"
	CurrentStageReflection     CurrentStage = "reflection"
	CurrentStageRegistryUpdate CurrentStage = "registry_update"
)

func (cs CurrentStage) String() string {
	return string(cs)
}

// CurrentStageValidator is a validator for the "current_stage" field enum values. It is called by the builders before save.
func CurrentStageValidator(cs CurrentStage) error {
	switch cs {
	case CurrentStageInterpretation, CurrentStageValidatorA, CurrentStageRouting, CurrentStagePlanning, CurrentStageValidatorB, CurrentStageExecution, CurrentStageReflection, CurrentStageRegistryUpdate:
		return nil
	default:
		return fmt.Errorf("workflow: invalid enum value for current_stage field: %q", cs)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusPaused, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("workflow: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Workflow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByRequestType orders the results by the request_type field.
func ByRequestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestType, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByModelOverride orders the results by the model_override field.
func ByModelOverride(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelOverride, opts...).ToFunc()
}

// ByServerOverride orders the results by the server_override field.
func ByServerOverride(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServerOverride, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResponse orders the results by the response field.
func ByResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponse, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByModelUsed orders the results by the model_used field.
func ByModelUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelUsed, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByReasonCode orders the results by the reason_code field.
func ByReasonCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasonCode, opts...).ToFunc()
}

// ByFailingEventID orders the results by the failing_event_id field.
func ByFailingEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailingEventID, opts...).ToFunc()
}

// ByEventSequence orders the results by the event_sequence field.
func ByEventSequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventSequence, opts...).ToFunc()
}

// ByWorkerID orders the results by the worker_id field.
func ByWorkerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByPlansCount orders the results by plans count.
func ByPlansCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPlansStep(), opts...)
	}
}

// ByPlans orders the results by plans terms.
func ByPlans(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlansStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExecutionEventsCount orders the results by execution_events count.
func ByExecutionEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionEventsStep(), opts...)
	}
}

// ByExecutionEvents orders the results by execution_events terms.
func ByExecutionEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByApprovalRequestsCount orders the results by approval_requests count.
func ByApprovalRequestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newApprovalRequestsStep(), opts...)
	}
}

// ByApprovalRequests orders the results by approval_requests terms.
func ByApprovalRequests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApprovalRequestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPlansStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlansInverseTable, PlanFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PlansTable, PlansColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, StepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newExecutionEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionEventsInverseTable, ExecutionEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionEventsTable, ExecutionEventsColumn),
	)
}
func newApprovalRequestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApprovalRequestsInverseTable, ApprovalRequestFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ApprovalRequestsTable, ApprovalRequestsColumn),
	)
}
