// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldID, id))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldEntityType, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldEntityID, v))
}

// StateBlob applies equality check predicate on the "state_blob" field. It's identical to StateBlobEQ.
func StateBlob(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldStateBlob, v))
}

// IntegrityHash applies equality check predicate on the "integrity_hash" field. It's identical to IntegrityHashEQ.
func IntegrityHash(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldIntegrityHash, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldReason, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldTraceID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldEntityType, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldEntityID, v))
}

// StateBlobEQ applies the EQ predicate on the "state_blob" field.
func StateBlobEQ(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldStateBlob, v))
}

// StateBlobNEQ applies the NEQ predicate on the "state_blob" field.
func StateBlobNEQ(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldStateBlob, v))
}

// StateBlobIn applies the In predicate on the "state_blob" field.
func StateBlobIn(vs ...[]byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldStateBlob, vs...))
}

// StateBlobNotIn applies the NotIn predicate on the "state_blob" field.
func StateBlobNotIn(vs ...[]byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldStateBlob, vs...))
}

// StateBlobGT applies the GT predicate on the "state_blob" field.
func StateBlobGT(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldStateBlob, v))
}

// StateBlobGTE applies the GTE predicate on the "state_blob" field.
func StateBlobGTE(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldStateBlob, v))
}

// StateBlobLT applies the LT predicate on the "state_blob" field.
func StateBlobLT(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldStateBlob, v))
}

// StateBlobLTE applies the LTE predicate on the "state_blob" field.
func StateBlobLTE(v []byte) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldStateBlob, v))
}

// IntegrityHashEQ applies the EQ predicate on the "integrity_hash" field.
func IntegrityHashEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldIntegrityHash, v))
}

// IntegrityHashNEQ applies the NEQ predicate on the "integrity_hash" field.
func IntegrityHashNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldIntegrityHash, v))
}

// IntegrityHashIn applies the In predicate on the "integrity_hash" field.
func IntegrityHashIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldIntegrityHash, vs...))
}

// IntegrityHashNotIn applies the NotIn predicate on the "integrity_hash" field.
func IntegrityHashNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldIntegrityHash, vs...))
}

// IntegrityHashGT applies the GT predicate on the "integrity_hash" field.
func IntegrityHashGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldIntegrityHash, v))
}

// IntegrityHashGTE applies the GTE predicate on the "integrity_hash" field.
func IntegrityHashGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldIntegrityHash, v))
}

// IntegrityHashLT applies the LT predicate on the "integrity_hash" field.
func IntegrityHashLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldIntegrityHash, v))
}

// IntegrityHashLTE applies the LTE predicate on the "integrity_hash" field.
func IntegrityHashLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldIntegrityHash, v))
}

// IntegrityHashContains applies the Contains predicate on the "integrity_hash" field.
func IntegrityHashContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldIntegrityHash, v))
}

// IntegrityHashHasPrefix applies the HasPrefix predicate on the "integrity_hash" field.
func IntegrityHashHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldIntegrityHash, v))
}

// IntegrityHashHasSuffix applies the HasSuffix predicate on the "integrity_hash" field.
func IntegrityHashHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldIntegrityHash, v))
}

// IntegrityHashEqualFold applies the EqualFold predicate on the "integrity_hash" field.
func IntegrityHashEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldIntegrityHash, v))
}

// IntegrityHashContainsFold applies the ContainsFold predicate on the "integrity_hash" field.
func IntegrityHashContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldIntegrityHash, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldReason, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDIsNil applies the IsNil predicate on the "trace_id" field.
func TraceIDIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldTraceID))
}

// TraceIDNotNil applies the NotNil predicate on the "trace_id" field.
func TraceIDNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldTraceID))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldTraceID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.NotPredicates(p))
}
