// Code generated by ent, DO NOT EDIT.

package executionevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the executionevent type in the database.
	Label = "execution_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldComponentRole holds the string denoting the component_role field in the database.
	FieldComponentRole = "component_role"
	// FieldComponentName holds the string denoting the component_name field in the database.
	FieldComponentName = "component_name"
	// FieldDecisionSource holds the string denoting the decision_source field in the database.
	FieldDecisionSource = "decision_source"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInputSummary holds the string denoting the input_summary field in the database.
	FieldInputSummary = "input_summary"
	// FieldOutputSummary holds the string denoting the output_summary field in the database.
	FieldOutputSummary = "output_summary"
	// FieldReasonCode holds the string denoting the reason_code field in the database.
	FieldReasonCode = "reason_code"
	// FieldParentEventID holds the string denoting the parent_event_id field in the database.
	FieldParentEventID = "parent_event_id"
	// FieldPromptID holds the string denoting the prompt_id field in the database.
	FieldPromptID = "prompt_id"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldEventMetadata holds the string denoting the event_metadata field in the database.
	FieldEventMetadata = "event_metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// Table holds the table name of the executionevent in the database.
	Table = "execution_events"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "execution_events"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
)

// Columns holds all SQL columns for executionevent fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldSessionID,
	FieldSequence,
	FieldEventType,
	FieldStage,
	FieldComponentRole,
	FieldComponentName,
	FieldDecisionSource,
	FieldStatus,
	FieldInputSummary,
	FieldOutputSummary,
	FieldReasonCode,
	FieldParentEventID,
	FieldPromptID,
	FieldPromptVersion,
	FieldEventMetadata,
	FieldCreatedAt,
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
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeWorkflowStart     EventType = "workflow.start"
	EventTypeWorkflowComplete  EventType = "workflow.complete"
	EventTypeWorkflowFailed    EventType = "workflow.failed"
	EventTypeWorkflowCancelled EventType = "workflow.cancelled"
	EventTypeWorkflowPaused    EventType = "workflow.paused"
	EventTypeWorkflowResumed   EventType = "workflow.resumed"
	EventTypeStageStarted      EventType = "stage.started"
	EventTypeStageCompleted    EventType = "stage.completed"
	EventTypeStageFailed       EventType = "stage.failed"
	EventTypeModelRequest      EventType = "model_request"
	EventTypeModelResponse     EventType = "model_response"
	EventTypeStepStarted       EventType = "step.started"
	EventTypeStepCompleted     EventType = "step.completed"
	EventTypeStepFailed        EventType = "step.failed"
	EventTypeStepSkipped       EventType = "step.skipped"
	EventTypeStepCancelled     EventType = "step.cancelled"
	EventTypePlanCreated       EventType = "plan.created"
	EventTypePlanSuperseded    EventType = "plan.superseded"
	EventTypePlanCompleted     EventType = "plan.completed"
	EventTypePlanFailed        EventType = "plan.failed"
	EventTypeApprovalRequested EventType = "approval.requested"
	EventTypeApprovalDecided   EventType = "approval.decided"
	EventTypeCheckpointCreated EventType = "checkpoint.created"
	EventTypeSlowProgress      EventType = "slow_progress"
	EventTypeQueueDeadLetter   EventType = "queue.dead_letter"
	EventTypeSubscriberLag     EventType = "subscriber.lag"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeWorkflowStart, EventTypeWorkflowComplete, EventTypeWorkflowFailed, EventTypeWorkflowCancelled, EventTypeWorkflowPaused, EventTypeWorkflowResumed, EventTypeStageStarted, EventTypeStageCompleted, EventTypeStageFailed, EventTypeModelRequest, EventTypeModelResponse, EventTypeStepStarted, EventTypeStepCompleted, EventTypeStepFailed, EventTypeStepSkipped, EventTypeStepCancelled, EventTypePlanCreated, EventTypePlanSuperseded, EventTypePlanCompleted, EventTypePlanFailed, EventTypeApprovalRequested, EventTypeApprovalDecided, EventTypeCheckpointCreated, EventTypeSlowProgress, EventTypeQueueDeadLetter, EventTypeSubscriberLag:
		return nil
	default:
		return fmt.Errorf("executionevent: invalid enum value for event_type field: %q", et)
	}
}

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
		return fmt.Errorf("executionevent: invalid enum value for stage field: %q", s)
	}
}

// DecisionSource defines the type for the "decision_source" enum field.
type DecisionSource string

// DecisionSource values.
const (
	DecisionSourceComponent DecisionSource = "component"
	DecisionSourceRegistry  DecisionSource = "registry"
	DecisionSourceHuman     DecisionSource = "human"
)

func (ds DecisionSource) String() string {
	return string(ds)
}

// DecisionSourceValidator is a validator for the "decision_source" field enum values. It is called by the builders before save.
func DecisionSourceValidator(ds DecisionSource) error {
	switch ds {
	case DecisionSourceComponent, DecisionSourceRegistry, DecisionSourceHuman:
		return nil
	default:
		return fmt.Errorf("executionevent: invalid enum value for decision_source field: %q", ds)
	}
}

// OrderOption defines the ordering options for the ExecutionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByComponentRole orders the results by the component_role field.
func ByComponentRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComponentRole, opts...).ToFunc()
}

// ByComponentName orders the results by the component_name field.
func ByComponentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComponentName, opts...).ToFunc()
}

// ByDecisionSource orders the results by the decision_source field.
func ByDecisionSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionSource, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByInputSummary orders the results by the input_summary field.
func ByInputSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputSummary, opts...).ToFunc()
}

// ByOutputSummary orders the results by the output_summary field.
func ByOutputSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputSummary, opts...).ToFunc()
}

// ByReasonCode orders the results by the reason_code field.
func ByReasonCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasonCode, opts...).ToFunc()
}

// ByParentEventID orders the results by the parent_event_id field.
func ByParentEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentEventID, opts...).ToFunc()
}

// ByPromptID orders the results by the prompt_id field.
func ByPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptID, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
