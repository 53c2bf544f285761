// Code generated by ent, DO NOT EDIT.

package step

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldPlanID, v))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldWorkflowID, v))
}

// Index applies equality check predicate on the "index" field. It's identical to IndexEQ.
func Index(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldIndex, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldDescription, v))
}

// ExecutorRef applies equality check predicate on the "executor_ref" field. It's identical to ExecutorRefEQ.
func ExecutorRef(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldExecutorRef, v))
}

// TimeoutMs applies equality check predicate on the "timeout_ms" field. It's identical to TimeoutMsEQ.
func TimeoutMs(v int64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTimeoutMs, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldMaxAttempts, v))
}

// BackoffBaseMs applies equality check predicate on the "backoff_base_ms" field. It's identical to BackoffBaseMsEQ.
func BackoffBaseMs(v int64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldBackoffBaseMs, v))
}

// ApprovalRequired applies equality check predicate on the "approval_required" field. It's identical to ApprovalRequiredEQ.
func ApprovalRequired(v bool) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldApprovalRequired, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldAttempts, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldErrorKind, v))
}

// ReasonCode applies equality check predicate on the "reason_code" field. It's identical to ReasonCodeEQ.
func ReasonCode(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldReasonCode, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldQualityScore, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldUpdatedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldPlanID, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldWorkflowID, v))
}

// IndexEQ applies the EQ predicate on the "index" field.
func IndexEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldIndex, v))
}

// IndexNEQ applies the NEQ predicate on the "index" field.
func IndexNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldIndex, v))
}

// IndexIn applies the In predicate on the "index" field.
func IndexIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldIndex, vs...))
}

// IndexNotIn applies the NotIn predicate on the "index" field.
func IndexNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldIndex, vs...))
}

// IndexGT applies the GT predicate on the "index" field.
func IndexGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldIndex, v))
}

// IndexGTE applies the GTE predicate on the "index" field.
func IndexGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldIndex, v))
}

// IndexLT applies the LT predicate on the "index" field.
func IndexLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldIndex, v))
}

// IndexLTE applies the LTE predicate on the "index" field.
func IndexLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldIndex, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldDescription, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldType, vs...))
}

// ExecutorKindEQ applies the EQ predicate on the "executor_kind" field.
func ExecutorKindEQ(v ExecutorKind) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldExecutorKind, v))
}

// ExecutorKindNEQ applies the NEQ predicate on the "executor_kind" field.
func ExecutorKindNEQ(v ExecutorKind) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldExecutorKind, v))
}

// ExecutorKindIn applies the In predicate on the "executor_kind" field.
func ExecutorKindIn(vs ...ExecutorKind) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldExecutorKind, vs...))
}

// ExecutorKindNotIn applies the NotIn predicate on the "executor_kind" field.
func ExecutorKindNotIn(vs ...ExecutorKind) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldExecutorKind, vs...))
}

// ExecutorRefEQ applies the EQ predicate on the "executor_ref" field.
func ExecutorRefEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldExecutorRef, v))
}

// ExecutorRefNEQ applies the NEQ predicate on the "executor_ref" field.
func ExecutorRefNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldExecutorRef, v))
}

// ExecutorRefIn applies the In predicate on the "executor_ref" field.
func ExecutorRefIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldExecutorRef, vs...))
}

// ExecutorRefNotIn applies the NotIn predicate on the "executor_ref" field.
func ExecutorRefNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldExecutorRef, vs...))
}

// ExecutorRefGT applies the GT predicate on the "executor_ref" field.
func ExecutorRefGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldExecutorRef, v))
}

// ExecutorRefGTE applies the GTE predicate on the "executor_ref" field.
func ExecutorRefGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldExecutorRef, v))
}

// ExecutorRefLT applies the LT predicate on the "executor_ref" field.
func ExecutorRefLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldExecutorRef, v))
}

// ExecutorRefLTE applies the LTE predicate on the "executor_ref" field.
func ExecutorRefLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldExecutorRef, v))
}

// ExecutorRefContains applies the Contains predicate on the "executor_ref" field.
func ExecutorRefContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldExecutorRef, v))
}

// ExecutorRefHasPrefix applies the HasPrefix predicate on the "executor_ref" field.
func ExecutorRefHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldExecutorRef, v))
}

// ExecutorRefHasSuffix applies the HasSuffix predicate on the "executor_ref" field.
func ExecutorRefHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldExecutorRef, v))
}

// ExecutorRefIsNil applies the IsNil predicate on the "executor_ref" field.
func ExecutorRefIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldExecutorRef))
}

// ExecutorRefNotNil applies the NotNil predicate on the "executor_ref" field.
func ExecutorRefNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldExecutorRef))
}

// ExecutorRefEqualFold applies the EqualFold predicate on the "executor_ref" field.
func ExecutorRefEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldExecutorRef, v))
}

// ExecutorRefContainsFold applies the ContainsFold predicate on the "executor_ref" field.
func ExecutorRefContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldExecutorRef, v))
}

// TeamMembersIsNil applies the IsNil predicate on the "team_members" field.
func TeamMembersIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldTeamMembers))
}

// TeamMembersNotNil applies the NotNil predicate on the "team_members" field.
func TeamMembersNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldTeamMembers))
}

// InputsIsNil applies the IsNil predicate on the "inputs" field.
func InputsIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldInputs))
}

// InputsNotNil applies the NotNil predicate on the "inputs" field.
func InputsNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldInputs))
}

// OutputsIsNil applies the IsNil predicate on the "outputs" field.
func OutputsIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldOutputs))
}

// OutputsNotNil applies the NotNil predicate on the "outputs" field.
func OutputsNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldOutputs))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldDependencies))
}

// TimeoutMsEQ applies the EQ predicate on the "timeout_ms" field.
func TimeoutMsEQ(v int64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTimeoutMs, v))
}

// TimeoutMsNEQ applies the NEQ predicate on the "timeout_ms" field.
func TimeoutMsNEQ(v int64) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldTimeoutMs, v))
}

// TimeoutMsIn applies the In predicate on the "timeout_ms" field.
func TimeoutMsIn(vs ...int64) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldTimeoutMs, vs...))
}

// TimeoutMsNotIn applies the NotIn predicate on the "timeout_ms" field.
func TimeoutMsNotIn(vs ...int64) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldTimeoutMs, vs...))
}

// TimeoutMsGT applies the GT predicate on the "timeout_ms" field.
func TimeoutMsGT(v int64) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldTimeoutMs, v))
}

// TimeoutMsGTE applies the GTE predicate on the "timeout_ms" field.
func TimeoutMsGTE(v int64) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldTimeoutMs, v))
}

// TimeoutMsLT applies the LT predicate on the "timeout_ms" field.
func TimeoutMsLT(v int64) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldTimeoutMs, v))
}

// TimeoutMsLTE applies the LTE predicate on the "timeout_ms" field.
func TimeoutMsLTE(v int64) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldTimeoutMs, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldMaxAttempts, v))
}

// BackoffBaseMsEQ applies the EQ predicate on the "backoff_base_ms" field.
func BackoffBaseMsEQ(v int64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldBackoffBaseMs, v))
}

// BackoffBaseMsNEQ applies the NEQ predicate on the "backoff_base_ms" field.
func BackoffBaseMsNEQ(v int64) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldBackoffBaseMs, v))
}

// BackoffBaseMsIn applies the In predicate on the "backoff_base_ms" field.
func BackoffBaseMsIn(vs ...int64) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldBackoffBaseMs, vs...))
}

// BackoffBaseMsNotIn applies the NotIn predicate on the "backoff_base_ms" field.
func BackoffBaseMsNotIn(vs ...int64) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldBackoffBaseMs, vs...))
}

// BackoffBaseMsGT applies the GT predicate on the "backoff_base_ms" field.
func BackoffBaseMsGT(v int64) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldBackoffBaseMs, v))
}

// BackoffBaseMsGTE applies the GTE predicate on the "backoff_base_ms" field.
func BackoffBaseMsGTE(v int64) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldBackoffBaseMs, v))
}

// BackoffBaseMsLT applies the LT predicate on the "backoff_base_ms" field.
func BackoffBaseMsLT(v int64) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldBackoffBaseMs, v))
}

// BackoffBaseMsLTE applies the LTE predicate on the "backoff_base_ms" field.
func BackoffBaseMsLTE(v int64) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldBackoffBaseMs, v))
}

// ApprovalRequiredEQ applies the EQ predicate on the "approval_required" field.
func ApprovalRequiredEQ(v bool) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldApprovalRequired, v))
}

// ApprovalRequiredNEQ applies the NEQ predicate on the "approval_required" field.
func ApprovalRequiredNEQ(v bool) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldApprovalRequired, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v RiskLevel) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v RiskLevel) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...RiskLevel) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...RiskLevel) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// FunctionCallIsNil applies the IsNil predicate on the "function_call" field.
func FunctionCallIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldFunctionCall))
}

// FunctionCallNotNil applies the NotNil predicate on the "function_call" field.
func FunctionCallNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldFunctionCall))
}

// ChecksIsNil applies the IsNil predicate on the "checks" field.
func ChecksIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldChecks))
}

// ChecksNotNil applies the NotNil predicate on the "checks" field.
func ChecksNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldChecks))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldState, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldAttempts, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldErrorKind, v))
}

// ReasonCodeEQ applies the EQ predicate on the "reason_code" field.
func ReasonCodeEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldReasonCode, v))
}

// ReasonCodeNEQ applies the NEQ predicate on the "reason_code" field.
func ReasonCodeNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldReasonCode, v))
}

// ReasonCodeIn applies the In predicate on the "reason_code" field.
func ReasonCodeIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldReasonCode, vs...))
}

// ReasonCodeNotIn applies the NotIn predicate on the "reason_code" field.
func ReasonCodeNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldReasonCode, vs...))
}

// ReasonCodeGT applies the GT predicate on the "reason_code" field.
func ReasonCodeGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldReasonCode, v))
}

// ReasonCodeGTE applies the GTE predicate on the "reason_code" field.
func ReasonCodeGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldReasonCode, v))
}

// ReasonCodeLT applies the LT predicate on the "reason_code" field.
func ReasonCodeLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldReasonCode, v))
}

// ReasonCodeLTE applies the LTE predicate on the "reason_code" field.
func ReasonCodeLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldReasonCode, v))
}

// ReasonCodeContains applies the Contains predicate on the "reason_code" field.
func ReasonCodeContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldReasonCode, v))
}

// ReasonCodeHasPrefix applies the HasPrefix predicate on the "reason_code" field.
func ReasonCodeHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldReasonCode, v))
}

// ReasonCodeHasSuffix applies the HasSuffix predicate on the "reason_code" field.
func ReasonCodeHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldReasonCode, v))
}

// ReasonCodeIsNil applies the IsNil predicate on the "reason_code" field.
func ReasonCodeIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldReasonCode))
}

// ReasonCodeNotNil applies the NotNil predicate on the "reason_code" field.
func ReasonCodeNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldReasonCode))
}

// ReasonCodeEqualFold applies the EqualFold predicate on the "reason_code" field.
func ReasonCodeEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldReasonCode, v))
}

// ReasonCodeContainsFold applies the ContainsFold predicate on the "reason_code" field.
func ReasonCodeContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldReasonCode, v))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldQualityScore, v))
}

// QualityScoreIsNil applies the IsNil predicate on the "quality_score" field.
func QualityScoreIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldQualityScore))
}

// QualityScoreNotNil applies the NotNil predicate on the "quality_score" field.
func QualityScoreNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldQualityScore))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPlan applies the HasEdge predicate on the "plan" edge.
func HasPlan() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PlanTable, PlanColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPlanWith applies the HasEdge predicate on the "plan" edge with a given conditions (other predicates).
func HasPlanWith(preds ...predicate.Plan) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newPlanStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Step) predicate.Step {
	return predicate.Step(sql.NotPredicates(p))
}
