// Code generated by ent, DO NOT EDIT.

package modelendpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldName, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldURL, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldModel, v))
}

// MaxConcurrent applies equality check predicate on the "max_concurrent" field. It's identical to MaxConcurrentEQ.
func MaxConcurrent(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldMaxConcurrent, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldPriority, v))
}

// Healthy applies equality check predicate on the "healthy" field. It's identical to HealthyEQ.
func Healthy(v bool) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldHealthy, v))
}

// LastHealthCheck applies equality check predicate on the "last_health_check" field. It's identical to LastHealthCheckEQ.
func LastHealthCheck(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldLastHealthCheck, v))
}

// TotalRequests applies equality check predicate on the "total_requests" field. It's identical to TotalRequestsEQ.
func TotalRequests(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldTotalRequests, v))
}

// Successes applies equality check predicate on the "successes" field. It's identical to SuccessesEQ.
func Successes(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldSuccesses, v))
}

// Failures applies equality check predicate on the "failures" field. It's identical to FailuresEQ.
func Failures(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldFailures, v))
}

// AvgLatencyMs applies equality check predicate on the "avg_latency_ms" field. It's identical to AvgLatencyMsEQ.
func AvgLatencyMs(v float64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldAvgLatencyMs, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldContainsFold(FieldName, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldContainsFold(FieldURL, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldContainsFold(FieldModel, v))
}

// MaxConcurrentEQ applies the EQ predicate on the "max_concurrent" field.
func MaxConcurrentEQ(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldMaxConcurrent, v))
}

// MaxConcurrentNEQ applies the NEQ predicate on the "max_concurrent" field.
func MaxConcurrentNEQ(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldMaxConcurrent, v))
}

// MaxConcurrentIn applies the In predicate on the "max_concurrent" field.
func MaxConcurrentIn(vs ...int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldMaxConcurrent, vs...))
}

// MaxConcurrentNotIn applies the NotIn predicate on the "max_concurrent" field.
func MaxConcurrentNotIn(vs ...int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldMaxConcurrent, vs...))
}

// MaxConcurrentGT applies the GT predicate on the "max_concurrent" field.
func MaxConcurrentGT(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldMaxConcurrent, v))
}

// MaxConcurrentGTE applies the GTE predicate on the "max_concurrent" field.
func MaxConcurrentGTE(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldMaxConcurrent, v))
}

// MaxConcurrentLT applies the LT predicate on the "max_concurrent" field.
func MaxConcurrentLT(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldMaxConcurrent, v))
}

// MaxConcurrentLTE applies the LTE predicate on the "max_concurrent" field.
func MaxConcurrentLTE(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldMaxConcurrent, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldPriority, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldStatus, vs...))
}

// HealthyEQ applies the EQ predicate on the "healthy" field.
func HealthyEQ(v bool) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldHealthy, v))
}

// HealthyNEQ applies the NEQ predicate on the "healthy" field.
func HealthyNEQ(v bool) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldHealthy, v))
}

// LastHealthCheckEQ applies the EQ predicate on the "last_health_check" field.
func LastHealthCheckEQ(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldLastHealthCheck, v))
}

// LastHealthCheckNEQ applies the NEQ predicate on the "last_health_check" field.
func LastHealthCheckNEQ(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldLastHealthCheck, v))
}

// LastHealthCheckIn applies the In predicate on the "last_health_check" field.
func LastHealthCheckIn(vs ...time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldLastHealthCheck, vs...))
}

// LastHealthCheckNotIn applies the NotIn predicate on the "last_health_check" field.
func LastHealthCheckNotIn(vs ...time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldLastHealthCheck, vs...))
}

// LastHealthCheckGT applies the GT predicate on the "last_health_check" field.
func LastHealthCheckGT(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldLastHealthCheck, v))
}

// LastHealthCheckGTE applies the GTE predicate on the "last_health_check" field.
func LastHealthCheckGTE(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldLastHealthCheck, v))
}

// LastHealthCheckLT applies the LT predicate on the "last_health_check" field.
func LastHealthCheckLT(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldLastHealthCheck, v))
}

// LastHealthCheckLTE applies the LTE predicate on the "last_health_check" field.
func LastHealthCheckLTE(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldLastHealthCheck, v))
}

// LastHealthCheckIsNil applies the IsNil predicate on the "last_health_check" field.
func LastHealthCheckIsNil() predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIsNull(FieldLastHealthCheck))
}

// LastHealthCheckNotNil applies the NotNil predicate on the "last_health_check" field.
func LastHealthCheckNotNil() predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotNull(FieldLastHealthCheck))
}

// TotalRequestsEQ applies the EQ predicate on the "total_requests" field.
func TotalRequestsEQ(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldTotalRequests, v))
}

// TotalRequestsNEQ applies the NEQ predicate on the "total_requests" field.
func TotalRequestsNEQ(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldTotalRequests, v))
}

// TotalRequestsIn applies the In predicate on the "total_requests" field.
func TotalRequestsIn(vs ...int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldTotalRequests, vs...))
}

// TotalRequestsNotIn applies the NotIn predicate on the "total_requests" field.
func TotalRequestsNotIn(vs ...int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldTotalRequests, vs...))
}

// TotalRequestsGT applies the GT predicate on the "total_requests" field.
func TotalRequestsGT(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldTotalRequests, v))
}

// TotalRequestsGTE applies the GTE predicate on the "total_requests" field.
func TotalRequestsGTE(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldTotalRequests, v))
}

// TotalRequestsLT applies the LT predicate on the "total_requests" field.
func TotalRequestsLT(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldTotalRequests, v))
}

// TotalRequestsLTE applies the LTE predicate on the "total_requests" field.
func TotalRequestsLTE(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldTotalRequests, v))
}

// SuccessesEQ applies the EQ predicate on the "successes" field.
func SuccessesEQ(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldSuccesses, v))
}

// SuccessesNEQ applies the NEQ predicate on the "successes" field.
func SuccessesNEQ(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldSuccesses, v))
}

// SuccessesIn applies the In predicate on the "successes" field.
func SuccessesIn(vs ...int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldSuccesses, vs...))
}

// SuccessesNotIn applies the NotIn predicate on the "successes" field.
func SuccessesNotIn(vs ...int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldSuccesses, vs...))
}

// SuccessesGT applies the GT predicate on the "successes" field.
func SuccessesGT(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldSuccesses, v))
}

// SuccessesGTE applies the GTE predicate on the "successes" field.
func SuccessesGTE(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldSuccesses, v))
}

// SuccessesLT applies the LT predicate on the "successes" field.
func SuccessesLT(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldSuccesses, v))
}

// SuccessesLTE applies the LTE predicate on the "successes" field.
func SuccessesLTE(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldSuccesses, v))
}

// FailuresEQ applies the EQ predicate on the "failures" field.
func FailuresEQ(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldFailures, v))
}

// FailuresNEQ applies the NEQ predicate on the "failures" field.
func FailuresNEQ(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldFailures, v))
}

// FailuresIn applies the In predicate on the "failures" field.
func FailuresIn(vs ...int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldFailures, vs...))
}

// FailuresNotIn applies the NotIn predicate on the "failures" field.
func FailuresNotIn(vs ...int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldFailures, vs...))
}

// FailuresGT applies the GT predicate on the "failures" field.
func FailuresGT(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldFailures, v))
}

// FailuresGTE applies the GTE predicate on the "failures" field.
func FailuresGTE(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldFailures, v))
}

// FailuresLT applies the LT predicate on the "failures" field.
func FailuresLT(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldFailures, v))
}

// FailuresLTE applies the LTE predicate on the "failures" field.
func FailuresLTE(v int64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldFailures, v))
}

// AvgLatencyMsEQ applies the EQ predicate on the "avg_latency_ms" field.
func AvgLatencyMsEQ(v float64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldAvgLatencyMs, v))
}

// AvgLatencyMsNEQ applies the NEQ predicate on the "avg_latency_ms" field.
func AvgLatencyMsNEQ(v float64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldAvgLatencyMs, v))
}

// AvgLatencyMsIn applies the In predicate on the "avg_latency_ms" field.
func AvgLatencyMsIn(vs ...float64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldAvgLatencyMs, vs...))
}

// AvgLatencyMsNotIn applies the NotIn predicate on the "avg_latency_ms" field.
func AvgLatencyMsNotIn(vs ...float64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldAvgLatencyMs, vs...))
}

// AvgLatencyMsGT applies the GT predicate on the "avg_latency_ms" field.
func AvgLatencyMsGT(v float64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldAvgLatencyMs, v))
}

// AvgLatencyMsGTE applies the GTE predicate on the "avg_latency_ms" field.
func AvgLatencyMsGTE(v float64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldAvgLatencyMs, v))
}

// AvgLatencyMsLT applies the LT predicate on the "avg_latency_ms" field.
func AvgLatencyMsLT(v float64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldAvgLatencyMs, v))
}

// AvgLatencyMsLTE applies the LTE predicate on the "avg_latency_ms" field.
func AvgLatencyMsLTE(v float64) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldAvgLatencyMs, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelEndpoint) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelEndpoint) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelEndpoint) predicate.ModelEndpoint {
	return predicate.ModelEndpoint(sql.NotPredicates(p))
}
