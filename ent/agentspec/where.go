// Code generated by ent, DO NOT EDIT.

package agentspec

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldName, v))
}

// ModelClass applies equality check predicate on the "model_class" field. It's identical to ModelClassEQ.
func ModelClass(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldModelClass, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldDescription, v))
}

// TotalRuns applies equality check predicate on the "total_runs" field. It's identical to TotalRunsEQ.
func TotalRuns(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldTotalRuns, v))
}

// Successes applies equality check predicate on the "successes" field. It's identical to SuccessesEQ.
func Successes(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldSuccesses, v))
}

// Failures applies equality check predicate on the "failures" field. It's identical to FailuresEQ.
func Failures(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldFailures, v))
}

// AvgLatencyMs applies equality check predicate on the "avg_latency_ms" field. It's identical to AvgLatencyMsEQ.
func AvgLatencyMs(v float64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldAvgLatencyMs, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldStatus, vs...))
}

// CapabilitiesIsNil applies the IsNil predicate on the "capabilities" field.
func CapabilitiesIsNil() predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIsNull(FieldCapabilities))
}

// CapabilitiesNotNil applies the NotNil predicate on the "capabilities" field.
func CapabilitiesNotNil() predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotNull(FieldCapabilities))
}

// ModelClassEQ applies the EQ predicate on the "model_class" field.
func ModelClassEQ(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldModelClass, v))
}

// ModelClassNEQ applies the NEQ predicate on the "model_class" field.
func ModelClassNEQ(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldModelClass, v))
}

// ModelClassIn applies the In predicate on the "model_class" field.
func ModelClassIn(vs ...string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldModelClass, vs...))
}

// ModelClassNotIn applies the NotIn predicate on the "model_class" field.
func ModelClassNotIn(vs ...string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldModelClass, vs...))
}

// ModelClassGT applies the GT predicate on the "model_class" field.
func ModelClassGT(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGT(FieldModelClass, v))
}

// ModelClassGTE applies the GTE predicate on the "model_class" field.
func ModelClassGTE(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGTE(FieldModelClass, v))
}

// ModelClassLT applies the LT predicate on the "model_class" field.
func ModelClassLT(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLT(FieldModelClass, v))
}

// ModelClassLTE applies the LTE predicate on the "model_class" field.
func ModelClassLTE(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLTE(FieldModelClass, v))
}

// ModelClassContains applies the Contains predicate on the "model_class" field.
func ModelClassContains(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldContains(FieldModelClass, v))
}

// ModelClassHasPrefix applies the HasPrefix predicate on the "model_class" field.
func ModelClassHasPrefix(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldHasPrefix(FieldModelClass, v))
}

// ModelClassHasSuffix applies the HasSuffix predicate on the "model_class" field.
func ModelClassHasSuffix(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldHasSuffix(FieldModelClass, v))
}

// ModelClassEqualFold applies the EqualFold predicate on the "model_class" field.
func ModelClassEqualFold(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEqualFold(FieldModelClass, v))
}

// ModelClassContainsFold applies the ContainsFold predicate on the "model_class" field.
func ModelClassContainsFold(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldContainsFold(FieldModelClass, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldContainsFold(FieldDescription, v))
}

// TotalRunsEQ applies the EQ predicate on the "total_runs" field.
func TotalRunsEQ(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldTotalRuns, v))
}

// TotalRunsNEQ applies the NEQ predicate on the "total_runs" field.
func TotalRunsNEQ(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldTotalRuns, v))
}

// TotalRunsIn applies the In predicate on the "total_runs" field.
func TotalRunsIn(vs ...int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldTotalRuns, vs...))
}

// TotalRunsNotIn applies the NotIn predicate on the "total_runs" field.
func TotalRunsNotIn(vs ...int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldTotalRuns, vs...))
}

// TotalRunsGT applies the GT predicate on the "total_runs" field.
func TotalRunsGT(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGT(FieldTotalRuns, v))
}

// TotalRunsGTE applies the GTE predicate on the "total_runs" field.
func TotalRunsGTE(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGTE(FieldTotalRuns, v))
}

// TotalRunsLT applies the LT predicate on the "total_runs" field.
func TotalRunsLT(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLT(FieldTotalRuns, v))
}

// TotalRunsLTE applies the LTE predicate on the "total_runs" field.
func TotalRunsLTE(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLTE(FieldTotalRuns, v))
}

// SuccessesEQ applies the EQ predicate on the "successes" field.
func SuccessesEQ(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldSuccesses, v))
}

// SuccessesNEQ applies the NEQ predicate on the "successes" field.
func SuccessesNEQ(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldSuccesses, v))
}

// SuccessesIn applies the In predicate on the "successes" field.
func SuccessesIn(vs ...int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldSuccesses, vs...))
}

// SuccessesNotIn applies the NotIn predicate on the "successes" field.
func SuccessesNotIn(vs ...int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldSuccesses, vs...))
}

// SuccessesGT applies the GT predicate on the "successes" field.
func SuccessesGT(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGT(FieldSuccesses, v))
}

// SuccessesGTE applies the GTE predicate on the "successes" field.
func SuccessesGTE(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGTE(FieldSuccesses, v))
}

// SuccessesLT applies the LT predicate on the "successes" field.
func SuccessesLT(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLT(FieldSuccesses, v))
}

// SuccessesLTE applies the LTE predicate on the "successes" field.
func SuccessesLTE(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLTE(FieldSuccesses, v))
}

// FailuresEQ applies the EQ predicate on the "failures" field.
func FailuresEQ(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldFailures, v))
}

// FailuresNEQ applies the NEQ predicate on the "failures" field.
func FailuresNEQ(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldFailures, v))
}

// FailuresIn applies the In predicate on the "failures" field.
func FailuresIn(vs ...int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldFailures, vs...))
}

// FailuresNotIn applies the NotIn predicate on the "failures" field.
func FailuresNotIn(vs ...int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldFailures, vs...))
}

// FailuresGT applies the GT predicate on the "failures" field.
func FailuresGT(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGT(FieldFailures, v))
}

// FailuresGTE applies the GTE predicate on the "failures" field.
func FailuresGTE(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGTE(FieldFailures, v))
}

// FailuresLT applies the LT predicate on the "failures" field.
func FailuresLT(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLT(FieldFailures, v))
}

// FailuresLTE applies the LTE predicate on the "failures" field.
func FailuresLTE(v int64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLTE(FieldFailures, v))
}

// AvgLatencyMsEQ applies the EQ predicate on the "avg_latency_ms" field.
func AvgLatencyMsEQ(v float64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldAvgLatencyMs, v))
}

// AvgLatencyMsNEQ applies the NEQ predicate on the "avg_latency_ms" field.
func AvgLatencyMsNEQ(v float64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldAvgLatencyMs, v))
}

// AvgLatencyMsIn applies the In predicate on the "avg_latency_ms" field.
func AvgLatencyMsIn(vs ...float64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldAvgLatencyMs, vs...))
}

// AvgLatencyMsNotIn applies the NotIn predicate on the "avg_latency_ms" field.
func AvgLatencyMsNotIn(vs ...float64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldAvgLatencyMs, vs...))
}

// AvgLatencyMsGT applies the GT predicate on the "avg_latency_ms" field.
func AvgLatencyMsGT(v float64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGT(FieldAvgLatencyMs, v))
}

// AvgLatencyMsGTE applies the GTE predicate on the "avg_latency_ms" field.
func AvgLatencyMsGTE(v float64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGTE(FieldAvgLatencyMs, v))
}

// AvgLatencyMsLT applies the LT predicate on the "avg_latency_ms" field.
func AvgLatencyMsLT(v float64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLT(FieldAvgLatencyMs, v))
}

// AvgLatencyMsLTE applies the LTE predicate on the "avg_latency_ms" field.
func AvgLatencyMsLTE(v float64) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLTE(FieldAvgLatencyMs, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentSpec {
	return predicate.AgentSpec(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentSpec) predicate.AgentSpec {
	return predicate.AgentSpec(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentSpec) predicate.AgentSpec {
	return predicate.AgentSpec(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentSpec) predicate.AgentSpec {
	return predicate.AgentSpec(sql.NotPredicates(p))
}
