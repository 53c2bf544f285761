// Code generated by ent, DO NOT EDIT.

package plan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldWorkflowID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldVersion, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldGoal, v))
}

// StrategyName applies equality check predicate on the "strategy_name" field. It's identical to StrategyNameEQ.
func StrategyName(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldStrategyName, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldRiskScore, v))
}

// Primary applies equality check predicate on the "primary" field. It's identical to PrimaryEQ.
func Primary(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPrimary, v))
}

// ExpectedDurationMs applies equality check predicate on the "expected_duration_ms" field. It's identical to ExpectedDurationMsEQ.
func ExpectedDurationMs(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldExpectedDurationMs, v))
}

// ActualDurationMs applies equality check predicate on the "actual_duration_ms" field. It's identical to ActualDurationMsEQ.
func ActualDurationMs(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldActualDurationMs, v))
}

// ReasonCode applies equality check predicate on the "reason_code" field. It's identical to ReasonCodeEQ.
func ReasonCode(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldReasonCode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldWorkflowID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldVersion, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldGoal, v))
}

// StrategyNameEQ applies the EQ predicate on the "strategy_name" field.
func StrategyNameEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldStrategyName, v))
}

// StrategyNameNEQ applies the NEQ predicate on the "strategy_name" field.
func StrategyNameNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldStrategyName, v))
}

// StrategyNameIn applies the In predicate on the "strategy_name" field.
func StrategyNameIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldStrategyName, vs...))
}

// StrategyNameNotIn applies the NotIn predicate on the "strategy_name" field.
func StrategyNameNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldStrategyName, vs...))
}

// StrategyNameGT applies the GT predicate on the "strategy_name" field.
func StrategyNameGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldStrategyName, v))
}

// StrategyNameGTE applies the GTE predicate on the "strategy_name" field.
func StrategyNameGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldStrategyName, v))
}

// StrategyNameLT applies the LT predicate on the "strategy_name" field.
func StrategyNameLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldStrategyName, v))
}

// StrategyNameLTE applies the LTE predicate on the "strategy_name" field.
func StrategyNameLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldStrategyName, v))
}

// StrategyNameContains applies the Contains predicate on the "strategy_name" field.
func StrategyNameContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldStrategyName, v))
}

// StrategyNameHasPrefix applies the HasPrefix predicate on the "strategy_name" field.
func StrategyNameHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldStrategyName, v))
}

// StrategyNameHasSuffix applies the HasSuffix predicate on the "strategy_name" field.
func StrategyNameHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldStrategyName, v))
}

// StrategyNameIsNil applies the IsNil predicate on the "strategy_name" field.
func StrategyNameIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldStrategyName))
}

// StrategyNameNotNil applies the NotNil predicate on the "strategy_name" field.
func StrategyNameNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldStrategyName))
}

// StrategyNameEqualFold applies the EqualFold predicate on the "strategy_name" field.
func StrategyNameEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldStrategyName, v))
}

// StrategyNameContainsFold applies the ContainsFold predicate on the "strategy_name" field.
func StrategyNameContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldStrategyName, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...float64) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...float64) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldRiskScore, v))
}

// AlternativesIsNil applies the IsNil predicate on the "alternatives" field.
func AlternativesIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldAlternatives))
}

// AlternativesNotNil applies the NotNil predicate on the "alternatives" field.
func AlternativesNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldAlternatives))
}

// PrimaryEQ applies the EQ predicate on the "primary" field.
func PrimaryEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPrimary, v))
}

// PrimaryNEQ applies the NEQ predicate on the "primary" field.
func PrimaryNEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldPrimary, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldStatus, vs...))
}

// ExpectedDurationMsEQ applies the EQ predicate on the "expected_duration_ms" field.
func ExpectedDurationMsEQ(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldExpectedDurationMs, v))
}

// ExpectedDurationMsNEQ applies the NEQ predicate on the "expected_duration_ms" field.
func ExpectedDurationMsNEQ(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldExpectedDurationMs, v))
}

// ExpectedDurationMsIn applies the In predicate on the "expected_duration_ms" field.
func ExpectedDurationMsIn(vs ...int64) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldExpectedDurationMs, vs...))
}

// ExpectedDurationMsNotIn applies the NotIn predicate on the "expected_duration_ms" field.
func ExpectedDurationMsNotIn(vs ...int64) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldExpectedDurationMs, vs...))
}

// ExpectedDurationMsGT applies the GT predicate on the "expected_duration_ms" field.
func ExpectedDurationMsGT(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldExpectedDurationMs, v))
}

// ExpectedDurationMsGTE applies the GTE predicate on the "expected_duration_ms" field.
func ExpectedDurationMsGTE(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldExpectedDurationMs, v))
}

// ExpectedDurationMsLT applies the LT predicate on the "expected_duration_ms" field.
func ExpectedDurationMsLT(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldExpectedDurationMs, v))
}

// ExpectedDurationMsLTE applies the LTE predicate on the "expected_duration_ms" field.
func ExpectedDurationMsLTE(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldExpectedDurationMs, v))
}

// ActualDurationMsEQ applies the EQ predicate on the "actual_duration_ms" field.
func ActualDurationMsEQ(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldActualDurationMs, v))
}

// ActualDurationMsNEQ applies the NEQ predicate on the "actual_duration_ms" field.
func ActualDurationMsNEQ(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldActualDurationMs, v))
}

// ActualDurationMsIn applies the In predicate on the "actual_duration_ms" field.
func ActualDurationMsIn(vs ...int64) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldActualDurationMs, vs...))
}

// ActualDurationMsNotIn applies the NotIn predicate on the "actual_duration_ms" field.
func ActualDurationMsNotIn(vs ...int64) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldActualDurationMs, vs...))
}

// ActualDurationMsGT applies the GT predicate on the "actual_duration_ms" field.
func ActualDurationMsGT(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldActualDurationMs, v))
}

// ActualDurationMsGTE applies the GTE predicate on the "actual_duration_ms" field.
func ActualDurationMsGTE(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldActualDurationMs, v))
}

// ActualDurationMsLT applies the LT predicate on the "actual_duration_ms" field.
func ActualDurationMsLT(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldActualDurationMs, v))
}

// ActualDurationMsLTE applies the LTE predicate on the "actual_duration_ms" field.
func ActualDurationMsLTE(v int64) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldActualDurationMs, v))
}

// ActualDurationMsIsNil applies the IsNil predicate on the "actual_duration_ms" field.
func ActualDurationMsIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldActualDurationMs))
}

// ActualDurationMsNotNil applies the NotNil predicate on the "actual_duration_ms" field.
func ActualDurationMsNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldActualDurationMs))
}

// ReasonCodeEQ applies the EQ predicate on the "reason_code" field.
func ReasonCodeEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldReasonCode, v))
}

// ReasonCodeNEQ applies the NEQ predicate on the "reason_code" field.
func ReasonCodeNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldReasonCode, v))
}

// ReasonCodeIn applies the In predicate on the "reason_code" field.
func ReasonCodeIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldReasonCode, vs...))
}

// ReasonCodeNotIn applies the NotIn predicate on the "reason_code" field.
func ReasonCodeNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldReasonCode, vs...))
}

// ReasonCodeGT applies the GT predicate on the "reason_code" field.
func ReasonCodeGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldReasonCode, v))
}

// ReasonCodeGTE applies the GTE predicate on the "reason_code" field.
func ReasonCodeGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldReasonCode, v))
}

// ReasonCodeLT applies the LT predicate on the "reason_code" field.
func ReasonCodeLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldReasonCode, v))
}

// ReasonCodeLTE applies the LTE predicate on the "reason_code" field.
func ReasonCodeLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldReasonCode, v))
}

// ReasonCodeContains applies the Contains predicate on the "reason_code" field.
func ReasonCodeContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldReasonCode, v))
}

// ReasonCodeHasPrefix applies the HasPrefix predicate on the "reason_code" field.
func ReasonCodeHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldReasonCode, v))
}

// ReasonCodeHasSuffix applies the HasSuffix predicate on the "reason_code" field.
func ReasonCodeHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldReasonCode, v))
}

// ReasonCodeIsNil applies the IsNil predicate on the "reason_code" field.
func ReasonCodeIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldReasonCode))
}

// ReasonCodeNotNil applies the NotNil predicate on the "reason_code" field.
func ReasonCodeNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldReasonCode))
}

// ReasonCodeEqualFold applies the EqualFold predicate on the "reason_code" field.
func ReasonCodeEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldReasonCode, v))
}

// ReasonCodeContainsFold applies the ContainsFold predicate on the "reason_code" field.
func ReasonCodeContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldReasonCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPlanSteps applies the HasEdge predicate on the "plan_steps" edge.
func HasPlanSteps() predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PlanStepsTable, PlanStepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPlanStepsWith applies the HasEdge predicate on the "plan_steps" edge with a given conditions (other predicates).
func HasPlanStepsWith(preds ...predicate.Step) predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := newPlanStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.NotPredicates(p))
}
