// Code generated by ent, DO NOT EDIT.

package learningpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContainsFold(FieldID, id))
}

// Signature applies equality check predicate on the "signature" field. It's identical to SignatureEQ.
func Signature(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldSignature, v))
}

// ObservedSuccessRate applies equality check predicate on the "observed_success_rate" field. It's identical to ObservedSuccessRateEQ.
func ObservedSuccessRate(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldObservedSuccessRate, v))
}

// SampleCount applies equality check predicate on the "sample_count" field. It's identical to SampleCountEQ.
func SampleCount(v int64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldSampleCount, v))
}

// LastObservedAt applies equality check predicate on the "last_observed_at" field. It's identical to LastObservedAtEQ.
func LastObservedAt(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldLastObservedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldKind, vs...))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldLevel, vs...))
}

// SignatureEQ applies the EQ predicate on the "signature" field.
func SignatureEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldSignature, v))
}

// SignatureNEQ applies the NEQ predicate on the "signature" field.
func SignatureNEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldSignature, v))
}

// SignatureIn applies the In predicate on the "signature" field.
func SignatureIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldSignature, vs...))
}

// SignatureNotIn applies the NotIn predicate on the "signature" field.
func SignatureNotIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldSignature, vs...))
}

// SignatureGT applies the GT predicate on the "signature" field.
func SignatureGT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldSignature, v))
}

// SignatureGTE applies the GTE predicate on the "signature" field.
func SignatureGTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldSignature, v))
}

// SignatureLT applies the LT predicate on the "signature" field.
func SignatureLT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldSignature, v))
}

// SignatureLTE applies the LTE predicate on the "signature" field.
func SignatureLTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldSignature, v))
}

// SignatureContains applies the Contains predicate on the "signature" field.
func SignatureContains(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContains(FieldSignature, v))
}

// SignatureHasPrefix applies the HasPrefix predicate on the "signature" field.
func SignatureHasPrefix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasPrefix(FieldSignature, v))
}

// SignatureHasSuffix applies the HasSuffix predicate on the "signature" field.
func SignatureHasSuffix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasSuffix(FieldSignature, v))
}

// SignatureEqualFold applies the EqualFold predicate on the "signature" field.
func SignatureEqualFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEqualFold(FieldSignature, v))
}

// SignatureContainsFold applies the ContainsFold predicate on the "signature" field.
func SignatureContainsFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContainsFold(FieldSignature, v))
}

// BodyIsNil applies the IsNil predicate on the "body" field.
func BodyIsNil() predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIsNull(FieldBody))
}

// BodyNotNil applies the NotNil predicate on the "body" field.
func BodyNotNil() predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotNull(FieldBody))
}

// ObservedSuccessRateEQ applies the EQ predicate on the "observed_success_rate" field.
func ObservedSuccessRateEQ(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldObservedSuccessRate, v))
}

// ObservedSuccessRateNEQ applies the NEQ predicate on the "observed_success_rate" field.
func ObservedSuccessRateNEQ(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldObservedSuccessRate, v))
}

// ObservedSuccessRateIn applies the In predicate on the "observed_success_rate" field.
func ObservedSuccessRateIn(vs ...float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldObservedSuccessRate, vs...))
}

// ObservedSuccessRateNotIn applies the NotIn predicate on the "observed_success_rate" field.
func ObservedSuccessRateNotIn(vs ...float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldObservedSuccessRate, vs...))
}

// ObservedSuccessRateGT applies the GT predicate on the "observed_success_rate" field.
func ObservedSuccessRateGT(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldObservedSuccessRate, v))
}

// ObservedSuccessRateGTE applies the GTE predicate on the "observed_success_rate" field.
func ObservedSuccessRateGTE(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldObservedSuccessRate, v))
}

// ObservedSuccessRateLT applies the LT predicate on the "observed_success_rate" field.
func ObservedSuccessRateLT(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldObservedSuccessRate, v))
}

// ObservedSuccessRateLTE applies the LTE predicate on the "observed_success_rate" field.
func ObservedSuccessRateLTE(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldObservedSuccessRate, v))
}

// SampleCountEQ applies the EQ predicate on the "sample_count" field.
func SampleCountEQ(v int64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldSampleCount, v))
}

// SampleCountNEQ applies the NEQ predicate on the "sample_count" field.
func SampleCountNEQ(v int64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldSampleCount, v))
}

// SampleCountIn applies the In predicate on the "sample_count" field.
func SampleCountIn(vs ...int64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldSampleCount, vs...))
}

// SampleCountNotIn applies the NotIn predicate on the "sample_count" field.
func SampleCountNotIn(vs ...int64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldSampleCount, vs...))
}

// SampleCountGT applies the GT predicate on the "sample_count" field.
func SampleCountGT(v int64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldSampleCount, v))
}

// SampleCountGTE applies the GTE predicate on the "sample_count" field.
func SampleCountGTE(v int64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldSampleCount, v))
}

// SampleCountLT applies the LT predicate on the "sample_count" field.
func SampleCountLT(v int64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldSampleCount, v))
}

// SampleCountLTE applies the LTE predicate on the "sample_count" field.
func SampleCountLTE(v int64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldSampleCount, v))
}

// LastObservedAtEQ applies the EQ predicate on the "last_observed_at" field.
func LastObservedAtEQ(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldLastObservedAt, v))
}

// LastObservedAtNEQ applies the NEQ predicate on the "last_observed_at" field.
func LastObservedAtNEQ(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldLastObservedAt, v))
}

// LastObservedAtIn applies the In predicate on the "last_observed_at" field.
func LastObservedAtIn(vs ...time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldLastObservedAt, vs...))
}

// LastObservedAtNotIn applies the NotIn predicate on the "last_observed_at" field.
func LastObservedAtNotIn(vs ...time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldLastObservedAt, vs...))
}

// LastObservedAtGT applies the GT predicate on the "last_observed_at" field.
func LastObservedAtGT(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldLastObservedAt, v))
}

// LastObservedAtGTE applies the GTE predicate on the "last_observed_at" field.
func LastObservedAtGTE(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldLastObservedAt, v))
}

// LastObservedAtLT applies the LT predicate on the "last_observed_at" field.
func LastObservedAtLT(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldLastObservedAt, v))
}

// LastObservedAtLTE applies the LTE predicate on the "last_observed_at" field.
func LastObservedAtLTE(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldLastObservedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningPattern) predicate.LearningPattern {
	return predicate.LearningPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningPattern) predicate.LearningPattern {
	return predicate.LearningPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningPattern) predicate.LearningPattern {
	return predicate.LearningPattern(sql.NotPredicates(p))
}
