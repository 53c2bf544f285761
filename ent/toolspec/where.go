// Code generated by ent, DO NOT EDIT.

package toolspec

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldName, v))
}

// Handler applies equality check predicate on the "handler" field. It's identical to HandlerEQ.
func Handler(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldHandler, v))
}

// DefaultTimeoutMs applies equality check predicate on the "default_timeout_ms" field. It's identical to DefaultTimeoutMsEQ.
func DefaultTimeoutMs(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldDefaultTimeoutMs, v))
}

// TotalRuns applies equality check predicate on the "total_runs" field. It's identical to TotalRunsEQ.
func TotalRuns(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldTotalRuns, v))
}

// Successes applies equality check predicate on the "successes" field. It's identical to SuccessesEQ.
func Successes(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldSuccesses, v))
}

// Failures applies equality check predicate on the "failures" field. It's identical to FailuresEQ.
func Failures(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldFailures, v))
}

// AvgLatencyMs applies equality check predicate on the "avg_latency_ms" field. It's identical to AvgLatencyMsEQ.
func AvgLatencyMs(v float64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldAvgLatencyMs, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldStatus, vs...))
}

// CapabilitiesIsNil applies the IsNil predicate on the "capabilities" field.
func CapabilitiesIsNil() predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIsNull(FieldCapabilities))
}

// CapabilitiesNotNil applies the NotNil predicate on the "capabilities" field.
func CapabilitiesNotNil() predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotNull(FieldCapabilities))
}

// OutputSchemaIsNil applies the IsNil predicate on the "output_schema" field.
func OutputSchemaIsNil() predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIsNull(FieldOutputSchema))
}

// OutputSchemaNotNil applies the NotNil predicate on the "output_schema" field.
func OutputSchemaNotNil() predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotNull(FieldOutputSchema))
}

// CommandIsNil applies the IsNil predicate on the "command" field.
func CommandIsNil() predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIsNull(FieldCommand))
}

// CommandNotNil applies the NotNil predicate on the "command" field.
func CommandNotNil() predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotNull(FieldCommand))
}

// HandlerEQ applies the EQ predicate on the "handler" field.
func HandlerEQ(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldHandler, v))
}

// HandlerNEQ applies the NEQ predicate on the "handler" field.
func HandlerNEQ(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldHandler, v))
}

// HandlerIn applies the In predicate on the "handler" field.
func HandlerIn(vs ...string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldHandler, vs...))
}

// HandlerNotIn applies the NotIn predicate on the "handler" field.
func HandlerNotIn(vs ...string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldHandler, vs...))
}

// HandlerGT applies the GT predicate on the "handler" field.
func HandlerGT(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGT(FieldHandler, v))
}

// HandlerGTE applies the GTE predicate on the "handler" field.
func HandlerGTE(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGTE(FieldHandler, v))
}

// HandlerLT applies the LT predicate on the "handler" field.
func HandlerLT(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLT(FieldHandler, v))
}

// HandlerLTE applies the LTE predicate on the "handler" field.
func HandlerLTE(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLTE(FieldHandler, v))
}

// HandlerContains applies the Contains predicate on the "handler" field.
func HandlerContains(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldContains(FieldHandler, v))
}

// HandlerHasPrefix applies the HasPrefix predicate on the "handler" field.
func HandlerHasPrefix(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldHasPrefix(FieldHandler, v))
}

// HandlerHasSuffix applies the HasSuffix predicate on the "handler" field.
func HandlerHasSuffix(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldHasSuffix(FieldHandler, v))
}

// HandlerIsNil applies the IsNil predicate on the "handler" field.
func HandlerIsNil() predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIsNull(FieldHandler))
}

// HandlerNotNil applies the NotNil predicate on the "handler" field.
func HandlerNotNil() predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotNull(FieldHandler))
}

// HandlerEqualFold applies the EqualFold predicate on the "handler" field.
func HandlerEqualFold(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEqualFold(FieldHandler, v))
}

// HandlerContainsFold applies the ContainsFold predicate on the "handler" field.
func HandlerContainsFold(v string) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldContainsFold(FieldHandler, v))
}

// DefaultTimeoutMsEQ applies the EQ predicate on the "default_timeout_ms" field.
func DefaultTimeoutMsEQ(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldDefaultTimeoutMs, v))
}

// DefaultTimeoutMsNEQ applies the NEQ predicate on the "default_timeout_ms" field.
func DefaultTimeoutMsNEQ(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldDefaultTimeoutMs, v))
}

// DefaultTimeoutMsIn applies the In predicate on the "default_timeout_ms" field.
func DefaultTimeoutMsIn(vs ...int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldDefaultTimeoutMs, vs...))
}

// DefaultTimeoutMsNotIn applies the NotIn predicate on the "default_timeout_ms" field.
func DefaultTimeoutMsNotIn(vs ...int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldDefaultTimeoutMs, vs...))
}

// DefaultTimeoutMsGT applies the GT predicate on the "default_timeout_ms" field.
func DefaultTimeoutMsGT(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGT(FieldDefaultTimeoutMs, v))
}

// DefaultTimeoutMsGTE applies the GTE predicate on the "default_timeout_ms" field.
func DefaultTimeoutMsGTE(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGTE(FieldDefaultTimeoutMs, v))
}

// DefaultTimeoutMsLT applies the LT predicate on the "default_timeout_ms" field.
func DefaultTimeoutMsLT(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLT(FieldDefaultTimeoutMs, v))
}

// DefaultTimeoutMsLTE applies the LTE predicate on the "default_timeout_ms" field.
func DefaultTimeoutMsLTE(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLTE(FieldDefaultTimeoutMs, v))
}

// TotalRunsEQ applies the EQ predicate on the "total_runs" field.
func TotalRunsEQ(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldTotalRuns, v))
}

// TotalRunsNEQ applies the NEQ predicate on the "total_runs" field.
func TotalRunsNEQ(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldTotalRuns, v))
}

// TotalRunsIn applies the In predicate on the "total_runs" field.
func TotalRunsIn(vs ...int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldTotalRuns, vs...))
}

// TotalRunsNotIn applies the NotIn predicate on the "total_runs" field.
func TotalRunsNotIn(vs ...int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldTotalRuns, vs...))
}

// TotalRunsGT applies the GT predicate on the "total_runs" field.
func TotalRunsGT(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGT(FieldTotalRuns, v))
}

// TotalRunsGTE applies the GTE predicate on the "total_runs" field.
func TotalRunsGTE(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGTE(FieldTotalRuns, v))
}

// TotalRunsLT applies the LT predicate on the "total_runs" field.
func TotalRunsLT(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLT(FieldTotalRuns, v))
}

// TotalRunsLTE applies the LTE predicate on the "total_runs" field.
func TotalRunsLTE(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLTE(FieldTotalRuns, v))
}

// SuccessesEQ applies the EQ predicate on the "successes" field.
func SuccessesEQ(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldSuccesses, v))
}

// SuccessesNEQ applies the NEQ predicate on the "successes" field.
func SuccessesNEQ(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldSuccesses, v))
}

// SuccessesIn applies the In predicate on the "successes" field.
func SuccessesIn(vs ...int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldSuccesses, vs...))
}

// SuccessesNotIn applies the NotIn predicate on the "successes" field.
func SuccessesNotIn(vs ...int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldSuccesses, vs...))
}

// SuccessesGT applies the GT predicate on the "successes" field.
func SuccessesGT(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGT(FieldSuccesses, v))
}

// SuccessesGTE applies the GTE predicate on the "successes" field.
func SuccessesGTE(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGTE(FieldSuccesses, v))
}

// SuccessesLT applies the LT predicate on the "successes" field.
func SuccessesLT(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLT(FieldSuccesses, v))
}

// SuccessesLTE applies the LTE predicate on the "successes" field.
func SuccessesLTE(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLTE(FieldSuccesses, v))
}

// FailuresEQ applies the EQ predicate on the "failures" field.
func FailuresEQ(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldFailures, v))
}

// FailuresNEQ applies the NEQ predicate on the "failures" field.
func FailuresNEQ(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldFailures, v))
}

// FailuresIn applies the In predicate on the "failures" field.
func FailuresIn(vs ...int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldFailures, vs...))
}

// FailuresNotIn applies the NotIn predicate on the "failures" field.
func FailuresNotIn(vs ...int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldFailures, vs...))
}

// FailuresGT applies the GT predicate on the "failures" field.
func FailuresGT(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGT(FieldFailures, v))
}

// FailuresGTE applies the GTE predicate on the "failures" field.
func FailuresGTE(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGTE(FieldFailures, v))
}

// FailuresLT applies the LT predicate on the "failures" field.
func FailuresLT(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLT(FieldFailures, v))
}

// FailuresLTE applies the LTE predicate on the "failures" field.
func FailuresLTE(v int64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLTE(FieldFailures, v))
}

// AvgLatencyMsEQ applies the EQ predicate on the "avg_latency_ms" field.
func AvgLatencyMsEQ(v float64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldAvgLatencyMs, v))
}

// AvgLatencyMsNEQ applies the NEQ predicate on the "avg_latency_ms" field.
func AvgLatencyMsNEQ(v float64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldAvgLatencyMs, v))
}

// AvgLatencyMsIn applies the In predicate on the "avg_latency_ms" field.
func AvgLatencyMsIn(vs ...float64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldAvgLatencyMs, vs...))
}

// AvgLatencyMsNotIn applies the NotIn predicate on the "avg_latency_ms" field.
func AvgLatencyMsNotIn(vs ...float64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldAvgLatencyMs, vs...))
}

// AvgLatencyMsGT applies the GT predicate on the "avg_latency_ms" field.
func AvgLatencyMsGT(v float64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGT(FieldAvgLatencyMs, v))
}

// AvgLatencyMsGTE applies the GTE predicate on the "avg_latency_ms" field.
func AvgLatencyMsGTE(v float64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGTE(FieldAvgLatencyMs, v))
}

// AvgLatencyMsLT applies the LT predicate on the "avg_latency_ms" field.
func AvgLatencyMsLT(v float64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLT(FieldAvgLatencyMs, v))
}

// AvgLatencyMsLTE applies the LTE predicate on the "avg_latency_ms" field.
func AvgLatencyMsLTE(v float64) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLTE(FieldAvgLatencyMs, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ToolSpec {
	return predicate.ToolSpec(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolSpec) predicate.ToolSpec {
	return predicate.ToolSpec(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolSpec) predicate.ToolSpec {
	return predicate.ToolSpec(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolSpec) predicate.ToolSpec {
	return predicate.ToolSpec(sql.NotPredicates(p))
}
