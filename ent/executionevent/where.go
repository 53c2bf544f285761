// Code generated by ent, DO NOT EDIT.

package executionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldWorkflowID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldSessionID, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldSequence, v))
}

// ComponentRole applies equality check predicate on the "component_role" field. It's identical to ComponentRoleEQ.
func ComponentRole(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldComponentRole, v))
}

// ComponentName applies equality check predicate on the "component_name" field. It's identical to ComponentNameEQ.
func ComponentName(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldComponentName, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldStatus, v))
}

// InputSummary applies equality check predicate on the "input_summary" field. It's identical to InputSummaryEQ.
func InputSummary(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldInputSummary, v))
}

// OutputSummary applies equality check predicate on the "output_summary" field. It's identical to OutputSummaryEQ.
func OutputSummary(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldOutputSummary, v))
}

// ReasonCode applies equality check predicate on the "reason_code" field. It's identical to ReasonCodeEQ.
func ReasonCode(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldReasonCode, v))
}

// ParentEventID applies equality check predicate on the "parent_event_id" field. It's identical to ParentEventIDEQ.
func ParentEventID(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldParentEventID, v))
}

// PromptID applies equality check predicate on the "prompt_id" field. It's identical to PromptIDEQ.
func PromptID(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldPromptID, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v int) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldPromptVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContainsFold(FieldWorkflowID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldSequence, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldStage, vs...))
}

// ComponentRoleEQ applies the EQ predicate on the "component_role" field.
func ComponentRoleEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldComponentRole, v))
}

// ComponentRoleNEQ applies the NEQ predicate on the "component_role" field.
func ComponentRoleNEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldComponentRole, v))
}

// ComponentRoleIn applies the In predicate on the "component_role" field.
func ComponentRoleIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldComponentRole, vs...))
}

// ComponentRoleNotIn applies the NotIn predicate on the "component_role" field.
func ComponentRoleNotIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldComponentRole, vs...))
}

// ComponentRoleGT applies the GT predicate on the "component_role" field.
func ComponentRoleGT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldComponentRole, v))
}

// ComponentRoleGTE applies the GTE predicate on the "component_role" field.
func ComponentRoleGTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldComponentRole, v))
}

// ComponentRoleLT applies the LT predicate on the "component_role" field.
func ComponentRoleLT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldComponentRole, v))
}

// ComponentRoleLTE applies the LTE predicate on the "component_role" field.
func ComponentRoleLTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldComponentRole, v))
}

// ComponentRoleContains applies the Contains predicate on the "component_role" field.
func ComponentRoleContains(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContains(FieldComponentRole, v))
}

// ComponentRoleHasPrefix applies the HasPrefix predicate on the "component_role" field.
func ComponentRoleHasPrefix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasPrefix(FieldComponentRole, v))
}

// ComponentRoleHasSuffix applies the HasSuffix predicate on the "component_role" field.
func ComponentRoleHasSuffix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasSuffix(FieldComponentRole, v))
}

// ComponentRoleEqualFold applies the EqualFold predicate on the "component_role" field.
func ComponentRoleEqualFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEqualFold(FieldComponentRole, v))
}

// ComponentRoleContainsFold applies the ContainsFold predicate on the "component_role" field.
func ComponentRoleContainsFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContainsFold(FieldComponentRole, v))
}

// ComponentNameEQ applies the EQ predicate on the "component_name" field.
func ComponentNameEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldComponentName, v))
}

// ComponentNameNEQ applies the NEQ predicate on the "component_name" field.
func ComponentNameNEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldComponentName, v))
}

// ComponentNameIn applies the In predicate on the "component_name" field.
func ComponentNameIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldComponentName, vs...))
}

// ComponentNameNotIn applies the NotIn predicate on the "component_name" field.
func ComponentNameNotIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldComponentName, vs...))
}

// ComponentNameGT applies the GT predicate on the "component_name" field.
func ComponentNameGT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldComponentName, v))
}

// ComponentNameGTE applies the GTE predicate on the "component_name" field.
func ComponentNameGTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldComponentName, v))
}

// ComponentNameLT applies the LT predicate on the "component_name" field.
func ComponentNameLT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldComponentName, v))
}

// ComponentNameLTE applies the LTE predicate on the "component_name" field.
func ComponentNameLTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldComponentName, v))
}

// ComponentNameContains applies the Contains predicate on the "component_name" field.
func ComponentNameContains(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContains(FieldComponentName, v))
}

// ComponentNameHasPrefix applies the HasPrefix predicate on the "component_name" field.
func ComponentNameHasPrefix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasPrefix(FieldComponentName, v))
}

// ComponentNameHasSuffix applies the HasSuffix predicate on the "component_name" field.
func ComponentNameHasSuffix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasSuffix(FieldComponentName, v))
}

// ComponentNameEqualFold applies the EqualFold predicate on the "component_name" field.
func ComponentNameEqualFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEqualFold(FieldComponentName, v))
}

// ComponentNameContainsFold applies the ContainsFold predicate on the "component_name" field.
func ComponentNameContainsFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContainsFold(FieldComponentName, v))
}

// DecisionSourceEQ applies the EQ predicate on the "decision_source" field.
func DecisionSourceEQ(v DecisionSource) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldDecisionSource, v))
}

// DecisionSourceNEQ applies the NEQ predicate on the "decision_source" field.
func DecisionSourceNEQ(v DecisionSource) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldDecisionSource, v))
}

// DecisionSourceIn applies the In predicate on the "decision_source" field.
func DecisionSourceIn(vs ...DecisionSource) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldDecisionSource, vs...))
}

// DecisionSourceNotIn applies the NotIn predicate on the "decision_source" field.
func DecisionSourceNotIn(vs ...DecisionSource) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldDecisionSource, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContainsFold(FieldStatus, v))
}

// InputSummaryEQ applies the EQ predicate on the "input_summary" field.
func InputSummaryEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldInputSummary, v))
}

// InputSummaryNEQ applies the NEQ predicate on the "input_summary" field.
func InputSummaryNEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldInputSummary, v))
}

// InputSummaryIn applies the In predicate on the "input_summary" field.
func InputSummaryIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldInputSummary, vs...))
}

// InputSummaryNotIn applies the NotIn predicate on the "input_summary" field.
func InputSummaryNotIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldInputSummary, vs...))
}

// InputSummaryGT applies the GT predicate on the "input_summary" field.
func InputSummaryGT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldInputSummary, v))
}

// InputSummaryGTE applies the GTE predicate on the "input_summary" field.
func InputSummaryGTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldInputSummary, v))
}

// InputSummaryLT applies the LT predicate on the "input_summary" field.
func InputSummaryLT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldInputSummary, v))
}

// InputSummaryLTE applies the LTE predicate on the "input_summary" field.
func InputSummaryLTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldInputSummary, v))
}

// InputSummaryContains applies the Contains predicate on the "input_summary" field.
func InputSummaryContains(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContains(FieldInputSummary, v))
}

// InputSummaryHasPrefix applies the HasPrefix predicate on the "input_summary" field.
func InputSummaryHasPrefix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasPrefix(FieldInputSummary, v))
}

// InputSummaryHasSuffix applies the HasSuffix predicate on the "input_summary" field.
func InputSummaryHasSuffix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasSuffix(FieldInputSummary, v))
}

// InputSummaryIsNil applies the IsNil predicate on the "input_summary" field.
func InputSummaryIsNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIsNull(FieldInputSummary))
}

// InputSummaryNotNil applies the NotNil predicate on the "input_summary" field.
func InputSummaryNotNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotNull(FieldInputSummary))
}

// InputSummaryEqualFold applies the EqualFold predicate on the "input_summary" field.
func InputSummaryEqualFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEqualFold(FieldInputSummary, v))
}

// InputSummaryContainsFold applies the ContainsFold predicate on the "input_summary" field.
func InputSummaryContainsFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContainsFold(FieldInputSummary, v))
}

// OutputSummaryEQ applies the EQ predicate on the "output_summary" field.
func OutputSummaryEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldOutputSummary, v))
}

// OutputSummaryNEQ applies the NEQ predicate on the "output_summary" field.
func OutputSummaryNEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldOutputSummary, v))
}

// OutputSummaryIn applies the In predicate on the "output_summary" field.
func OutputSummaryIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldOutputSummary, vs...))
}

// OutputSummaryNotIn applies the NotIn predicate on the "output_summary" field.
func OutputSummaryNotIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldOutputSummary, vs...))
}

// OutputSummaryGT applies the GT predicate on the "output_summary" field.
func OutputSummaryGT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldOutputSummary, v))
}

// OutputSummaryGTE applies the GTE predicate on the "output_summary" field.
func OutputSummaryGTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldOutputSummary, v))
}

// OutputSummaryLT applies the LT predicate on the "output_summary" field.
func OutputSummaryLT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldOutputSummary, v))
}

// OutputSummaryLTE applies the LTE predicate on the "output_summary" field.
func OutputSummaryLTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldOutputSummary, v))
}

// OutputSummaryContains applies the Contains predicate on the "output_summary" field.
func OutputSummaryContains(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContains(FieldOutputSummary, v))
}

// OutputSummaryHasPrefix applies the HasPrefix predicate on the "output_summary" field.
func OutputSummaryHasPrefix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasPrefix(FieldOutputSummary, v))
}

// OutputSummaryHasSuffix applies the HasSuffix predicate on the "output_summary" field.
func OutputSummaryHasSuffix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasSuffix(FieldOutputSummary, v))
}

// OutputSummaryIsNil applies the IsNil predicate on the "output_summary" field.
func OutputSummaryIsNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIsNull(FieldOutputSummary))
}

// OutputSummaryNotNil applies the NotNil predicate on the "output_summary" field.
func OutputSummaryNotNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotNull(FieldOutputSummary))
}

// OutputSummaryEqualFold applies the EqualFold predicate on the "output_summary" field.
func OutputSummaryEqualFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEqualFold(FieldOutputSummary, v))
}

// OutputSummaryContainsFold applies the ContainsFold predicate on the "output_summary" field.
func OutputSummaryContainsFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContainsFold(FieldOutputSummary, v))
}

// ReasonCodeEQ applies the EQ predicate on the "reason_code" field.
func ReasonCodeEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldReasonCode, v))
}

// ReasonCodeNEQ applies the NEQ predicate on the "reason_code" field.
func ReasonCodeNEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldReasonCode, v))
}

// ReasonCodeIn applies the In predicate on the "reason_code" field.
func ReasonCodeIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldReasonCode, vs...))
}

// ReasonCodeNotIn applies the NotIn predicate on the "reason_code" field.
func ReasonCodeNotIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldReasonCode, vs...))
}

// ReasonCodeGT applies the GT predicate on the "reason_code" field.
func ReasonCodeGT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldReasonCode, v))
}

// ReasonCodeGTE applies the GTE predicate on the "reason_code" field.
func ReasonCodeGTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldReasonCode, v))
}

// ReasonCodeLT applies the LT predicate on the "reason_code" field.
func ReasonCodeLT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldReasonCode, v))
}

// ReasonCodeLTE applies the LTE predicate on the "reason_code" field.
func ReasonCodeLTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldReasonCode, v))
}

// ReasonCodeContains applies the Contains predicate on the "reason_code" field.
func ReasonCodeContains(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContains(FieldReasonCode, v))
}

// ReasonCodeHasPrefix applies the HasPrefix predicate on the "reason_code" field.
func ReasonCodeHasPrefix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasPrefix(FieldReasonCode, v))
}

// ReasonCodeHasSuffix applies the HasSuffix predicate on the "reason_code" field.
func ReasonCodeHasSuffix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasSuffix(FieldReasonCode, v))
}

// ReasonCodeIsNil applies the IsNil predicate on the "reason_code" field.
func ReasonCodeIsNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIsNull(FieldReasonCode))
}

// ReasonCodeNotNil applies the NotNil predicate on the "reason_code" field.
func ReasonCodeNotNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotNull(FieldReasonCode))
}

// ReasonCodeEqualFold applies the EqualFold predicate on the "reason_code" field.
func ReasonCodeEqualFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEqualFold(FieldReasonCode, v))
}

// ReasonCodeContainsFold applies the ContainsFold predicate on the "reason_code" field.
func ReasonCodeContainsFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContainsFold(FieldReasonCode, v))
}

// ParentEventIDEQ applies the EQ predicate on the "parent_event_id" field.
func ParentEventIDEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldParentEventID, v))
}

// ParentEventIDNEQ applies the NEQ predicate on the "parent_event_id" field.
func ParentEventIDNEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldParentEventID, v))
}

// ParentEventIDIn applies the In predicate on the "parent_event_id" field.
func ParentEventIDIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldParentEventID, vs...))
}

// ParentEventIDNotIn applies the NotIn predicate on the "parent_event_id" field.
func ParentEventIDNotIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldParentEventID, vs...))
}

// ParentEventIDGT applies the GT predicate on the "parent_event_id" field.
func ParentEventIDGT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldParentEventID, v))
}

// ParentEventIDGTE applies the GTE predicate on the "parent_event_id" field.
func ParentEventIDGTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldParentEventID, v))
}

// ParentEventIDLT applies the LT predicate on the "parent_event_id" field.
func ParentEventIDLT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldParentEventID, v))
}

// ParentEventIDLTE applies the LTE predicate on the "parent_event_id" field.
func ParentEventIDLTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldParentEventID, v))
}

// ParentEventIDContains applies the Contains predicate on the "parent_event_id" field.
func ParentEventIDContains(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContains(FieldParentEventID, v))
}

// ParentEventIDHasPrefix applies the HasPrefix predicate on the "parent_event_id" field.
func ParentEventIDHasPrefix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasPrefix(FieldParentEventID, v))
}

// ParentEventIDHasSuffix applies the HasSuffix predicate on the "parent_event_id" field.
func ParentEventIDHasSuffix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasSuffix(FieldParentEventID, v))
}

// ParentEventIDIsNil applies the IsNil predicate on the "parent_event_id" field.
func ParentEventIDIsNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIsNull(FieldParentEventID))
}

// ParentEventIDNotNil applies the NotNil predicate on the "parent_event_id" field.
func ParentEventIDNotNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotNull(FieldParentEventID))
}

// ParentEventIDEqualFold applies the EqualFold predicate on the "parent_event_id" field.
func ParentEventIDEqualFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEqualFold(FieldParentEventID, v))
}

// ParentEventIDContainsFold applies the ContainsFold predicate on the "parent_event_id" field.
func ParentEventIDContainsFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContainsFold(FieldParentEventID, v))
}

// PromptIDEQ applies the EQ predicate on the "prompt_id" field.
func PromptIDEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldPromptID, v))
}

// PromptIDNEQ applies the NEQ predicate on the "prompt_id" field.
func PromptIDNEQ(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldPromptID, v))
}

// PromptIDIn applies the In predicate on the "prompt_id" field.
func PromptIDIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldPromptID, vs...))
}

// PromptIDNotIn applies the NotIn predicate on the "prompt_id" field.
func PromptIDNotIn(vs ...string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldPromptID, vs...))
}

// PromptIDGT applies the GT predicate on the "prompt_id" field.
func PromptIDGT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldPromptID, v))
}

// PromptIDGTE applies the GTE predicate on the "prompt_id" field.
func PromptIDGTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldPromptID, v))
}

// PromptIDLT applies the LT predicate on the "prompt_id" field.
func PromptIDLT(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldPromptID, v))
}

// PromptIDLTE applies the LTE predicate on the "prompt_id" field.
func PromptIDLTE(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldPromptID, v))
}

// PromptIDContains applies the Contains predicate on the "prompt_id" field.
func PromptIDContains(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContains(FieldPromptID, v))
}

// PromptIDHasPrefix applies the HasPrefix predicate on the "prompt_id" field.
func PromptIDHasPrefix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasPrefix(FieldPromptID, v))
}

// PromptIDHasSuffix applies the HasSuffix predicate on the "prompt_id" field.
func PromptIDHasSuffix(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldHasSuffix(FieldPromptID, v))
}

// PromptIDIsNil applies the IsNil predicate on the "prompt_id" field.
func PromptIDIsNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIsNull(FieldPromptID))
}

// PromptIDNotNil applies the NotNil predicate on the "prompt_id" field.
func PromptIDNotNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotNull(FieldPromptID))
}

// PromptIDEqualFold applies the EqualFold predicate on the "prompt_id" field.
func PromptIDEqualFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEqualFold(FieldPromptID, v))
}

// PromptIDContainsFold applies the ContainsFold predicate on the "prompt_id" field.
func PromptIDContainsFold(v string) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldContainsFold(FieldPromptID, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v int) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v int) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...int) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...int) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v int) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v int) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v int) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v int) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionIsNil applies the IsNil predicate on the "prompt_version" field.
func PromptVersionIsNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIsNull(FieldPromptVersion))
}

// PromptVersionNotNil applies the NotNil predicate on the "prompt_version" field.
func PromptVersionNotNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotNull(FieldPromptVersion))
}

// EventMetadataIsNil applies the IsNil predicate on the "event_metadata" field.
func EventMetadataIsNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIsNull(FieldEventMetadata))
}

// EventMetadataNotNil applies the NotNil predicate on the "event_metadata" field.
func EventMetadataNotNil() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotNull(FieldEventMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.ExecutionEvent {
	return predicate.ExecutionEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionEvent) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionEvent) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionEvent) predicate.ExecutionEvent {
	return predicate.ExecutionEvent(sql.NotPredicates(p))
}
