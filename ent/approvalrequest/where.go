// Code generated by ent, DO NOT EDIT.

package approvalrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldWorkflowID, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldPlanID, v))
}

// ArtifactRef applies equality check predicate on the "artifact_ref" field. It's identical to ArtifactRefEQ.
func ArtifactRef(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldArtifactRef, v))
}

// Recommendation applies equality check predicate on the "recommendation" field. It's identical to RecommendationEQ.
func Recommendation(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRecommendation, v))
}

// DecisionDeadline applies equality check predicate on the "decision_deadline" field. It's identical to DecisionDeadlineEQ.
func DecisionDeadline(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecisionDeadline, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldFeedback, v))
}

// DecidedBy applies equality check predicate on the "decided_by" field. It's identical to DecidedByEQ.
func DecidedBy(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldWorkflowID, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDIsNil applies the IsNil predicate on the "plan_id" field.
func PlanIDIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldPlanID))
}

// PlanIDNotNil applies the NotNil predicate on the "plan_id" field.
func PlanIDNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldPlanID))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldPlanID, v))
}

// ArtifactRefEQ applies the EQ predicate on the "artifact_ref" field.
func ArtifactRefEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldArtifactRef, v))
}

// ArtifactRefNEQ applies the NEQ predicate on the "artifact_ref" field.
func ArtifactRefNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldArtifactRef, v))
}

// ArtifactRefIn applies the In predicate on the "artifact_ref" field.
func ArtifactRefIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldArtifactRef, vs...))
}

// ArtifactRefNotIn applies the NotIn predicate on the "artifact_ref" field.
func ArtifactRefNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldArtifactRef, vs...))
}

// ArtifactRefGT applies the GT predicate on the "artifact_ref" field.
func ArtifactRefGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldArtifactRef, v))
}

// ArtifactRefGTE applies the GTE predicate on the "artifact_ref" field.
func ArtifactRefGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldArtifactRef, v))
}

// ArtifactRefLT applies the LT predicate on the "artifact_ref" field.
func ArtifactRefLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldArtifactRef, v))
}

// ArtifactRefLTE applies the LTE predicate on the "artifact_ref" field.
func ArtifactRefLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldArtifactRef, v))
}

// ArtifactRefContains applies the Contains predicate on the "artifact_ref" field.
func ArtifactRefContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldArtifactRef, v))
}

// ArtifactRefHasPrefix applies the HasPrefix predicate on the "artifact_ref" field.
func ArtifactRefHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldArtifactRef, v))
}

// ArtifactRefHasSuffix applies the HasSuffix predicate on the "artifact_ref" field.
func ArtifactRefHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldArtifactRef, v))
}

// ArtifactRefEqualFold applies the EqualFold predicate on the "artifact_ref" field.
func ArtifactRefEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldArtifactRef, v))
}

// ArtifactRefContainsFold applies the ContainsFold predicate on the "artifact_ref" field.
func ArtifactRefContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldArtifactRef, v))
}

// RiskAssessmentIsNil applies the IsNil predicate on the "risk_assessment" field.
func RiskAssessmentIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldRiskAssessment))
}

// RiskAssessmentNotNil applies the NotNil predicate on the "risk_assessment" field.
func RiskAssessmentNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldRiskAssessment))
}

// RecommendationEQ applies the EQ predicate on the "recommendation" field.
func RecommendationEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRecommendation, v))
}

// RecommendationNEQ applies the NEQ predicate on the "recommendation" field.
func RecommendationNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldRecommendation, v))
}

// RecommendationIn applies the In predicate on the "recommendation" field.
func RecommendationIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldRecommendation, vs...))
}

// RecommendationNotIn applies the NotIn predicate on the "recommendation" field.
func RecommendationNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldRecommendation, vs...))
}

// RecommendationGT applies the GT predicate on the "recommendation" field.
func RecommendationGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldRecommendation, v))
}

// RecommendationGTE applies the GTE predicate on the "recommendation" field.
func RecommendationGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldRecommendation, v))
}

// RecommendationLT applies the LT predicate on the "recommendation" field.
func RecommendationLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldRecommendation, v))
}

// RecommendationLTE applies the LTE predicate on the "recommendation" field.
func RecommendationLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldRecommendation, v))
}

// RecommendationContains applies the Contains predicate on the "recommendation" field.
func RecommendationContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldRecommendation, v))
}

// RecommendationHasPrefix applies the HasPrefix predicate on the "recommendation" field.
func RecommendationHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldRecommendation, v))
}

// RecommendationHasSuffix applies the HasSuffix predicate on the "recommendation" field.
func RecommendationHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldRecommendation, v))
}

// RecommendationIsNil applies the IsNil predicate on the "recommendation" field.
func RecommendationIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldRecommendation))
}

// RecommendationNotNil applies the NotNil predicate on the "recommendation" field.
func RecommendationNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldRecommendation))
}

// RecommendationEqualFold applies the EqualFold predicate on the "recommendation" field.
func RecommendationEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldRecommendation, v))
}

// RecommendationContainsFold applies the ContainsFold predicate on the "recommendation" field.
func RecommendationContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldRecommendation, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// DecisionDeadlineEQ applies the EQ predicate on the "decision_deadline" field.
func DecisionDeadlineEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecisionDeadline, v))
}

// DecisionDeadlineNEQ applies the NEQ predicate on the "decision_deadline" field.
func DecisionDeadlineNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldDecisionDeadline, v))
}

// DecisionDeadlineIn applies the In predicate on the "decision_deadline" field.
func DecisionDeadlineIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldDecisionDeadline, vs...))
}

// DecisionDeadlineNotIn applies the NotIn predicate on the "decision_deadline" field.
func DecisionDeadlineNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldDecisionDeadline, vs...))
}

// DecisionDeadlineGT applies the GT predicate on the "decision_deadline" field.
func DecisionDeadlineGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldDecisionDeadline, v))
}

// DecisionDeadlineGTE applies the GTE predicate on the "decision_deadline" field.
func DecisionDeadlineGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldDecisionDeadline, v))
}

// DecisionDeadlineLT applies the LT predicate on the "decision_deadline" field.
func DecisionDeadlineLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldDecisionDeadline, v))
}

// DecisionDeadlineLTE applies the LTE predicate on the "decision_deadline" field.
func DecisionDeadlineLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldDecisionDeadline, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldFeedback))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldFeedback, v))
}

// DecidedByEQ applies the EQ predicate on the "decided_by" field.
func DecidedByEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedByNEQ applies the NEQ predicate on the "decided_by" field.
func DecidedByNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldDecidedBy, v))
}

// DecidedByIn applies the In predicate on the "decided_by" field.
func DecidedByIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldDecidedBy, vs...))
}

// DecidedByNotIn applies the NotIn predicate on the "decided_by" field.
func DecidedByNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldDecidedBy, vs...))
}

// DecidedByGT applies the GT predicate on the "decided_by" field.
func DecidedByGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldDecidedBy, v))
}

// DecidedByGTE applies the GTE predicate on the "decided_by" field.
func DecidedByGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldDecidedBy, v))
}

// DecidedByLT applies the LT predicate on the "decided_by" field.
func DecidedByLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldDecidedBy, v))
}

// DecidedByLTE applies the LTE predicate on the "decided_by" field.
func DecidedByLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldDecidedBy, v))
}

// DecidedByContains applies the Contains predicate on the "decided_by" field.
func DecidedByContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldDecidedBy, v))
}

// DecidedByHasPrefix applies the HasPrefix predicate on the "decided_by" field.
func DecidedByHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldDecidedBy, v))
}

// DecidedByHasSuffix applies the HasSuffix predicate on the "decided_by" field.
func DecidedByHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldDecidedBy, v))
}

// DecidedByIsNil applies the IsNil predicate on the "decided_by" field.
func DecidedByIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldDecidedBy))
}

// DecidedByNotNil applies the NotNil predicate on the "decided_by" field.
func DecidedByNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldDecidedBy))
}

// DecidedByEqualFold applies the EqualFold predicate on the "decided_by" field.
func DecidedByEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldDecidedBy, v))
}

// DecidedByContainsFold applies the ContainsFold predicate on the "decided_by" field.
func DecidedByContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldDecidedBy, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldDecidedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.NotPredicates(p))
}
