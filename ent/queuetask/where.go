// Code generated by ent, DO NOT EDIT.

package queuetask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldID, id))
}

// QueueID applies equality check predicate on the "queue_id" field. It's identical to QueueIDEQ.
func QueueID(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldQueueID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldKind, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldPriority, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldAttempts, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldMaxAttempts, v))
}

// LeaseOwner applies equality check predicate on the "lease_owner" field. It's identical to LeaseOwnerEQ.
func LeaseOwner(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldLeaseOwner, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeasedAt applies equality check predicate on the "leased_at" field. It's identical to LeasedAtEQ.
func LeasedAt(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldLeasedAt, v))
}

// NextVisibleAt applies equality check predicate on the "next_visible_at" field. It's identical to NextVisibleAtEQ.
func NextVisibleAt(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldNextVisibleAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldLastError, v))
}

// EnqueuedAt applies equality check predicate on the "enqueued_at" field. It's identical to EnqueuedAtEQ.
func EnqueuedAt(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldEnqueuedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// QueueIDEQ applies the EQ predicate on the "queue_id" field.
func QueueIDEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldQueueID, v))
}

// QueueIDNEQ applies the NEQ predicate on the "queue_id" field.
func QueueIDNEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldQueueID, v))
}

// QueueIDIn applies the In predicate on the "queue_id" field.
func QueueIDIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldQueueID, vs...))
}

// QueueIDNotIn applies the NotIn predicate on the "queue_id" field.
func QueueIDNotIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldQueueID, vs...))
}

// QueueIDGT applies the GT predicate on the "queue_id" field.
func QueueIDGT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldQueueID, v))
}

// QueueIDGTE applies the GTE predicate on the "queue_id" field.
func QueueIDGTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldQueueID, v))
}

// QueueIDLT applies the LT predicate on the "queue_id" field.
func QueueIDLT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldQueueID, v))
}

// QueueIDLTE applies the LTE predicate on the "queue_id" field.
func QueueIDLTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldQueueID, v))
}

// QueueIDContains applies the Contains predicate on the "queue_id" field.
func QueueIDContains(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContains(FieldQueueID, v))
}

// QueueIDHasPrefix applies the HasPrefix predicate on the "queue_id" field.
func QueueIDHasPrefix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasPrefix(FieldQueueID, v))
}

// QueueIDHasSuffix applies the HasSuffix predicate on the "queue_id" field.
func QueueIDHasSuffix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasSuffix(FieldQueueID, v))
}

// QueueIDEqualFold applies the EqualFold predicate on the "queue_id" field.
func QueueIDEqualFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldQueueID, v))
}

// QueueIDContainsFold applies the ContainsFold predicate on the "queue_id" field.
func QueueIDContainsFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldQueueID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldKind, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldPriority, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldAttempts, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldMaxAttempts, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldState, vs...))
}

// LeaseOwnerEQ applies the EQ predicate on the "lease_owner" field.
func LeaseOwnerEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldLeaseOwner, v))
}

// LeaseOwnerNEQ applies the NEQ predicate on the "lease_owner" field.
func LeaseOwnerNEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldLeaseOwner, v))
}

// LeaseOwnerIn applies the In predicate on the "lease_owner" field.
func LeaseOwnerIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldLeaseOwner, vs...))
}

// LeaseOwnerNotIn applies the NotIn predicate on the "lease_owner" field.
func LeaseOwnerNotIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldLeaseOwner, vs...))
}

// LeaseOwnerGT applies the GT predicate on the "lease_owner" field.
func LeaseOwnerGT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldLeaseOwner, v))
}

// LeaseOwnerGTE applies the GTE predicate on the "lease_owner" field.
func LeaseOwnerGTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldLeaseOwner, v))
}

// LeaseOwnerLT applies the LT predicate on the "lease_owner" field.
func LeaseOwnerLT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldLeaseOwner, v))
}

// LeaseOwnerLTE applies the LTE predicate on the "lease_owner" field.
func LeaseOwnerLTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldLeaseOwner, v))
}

// LeaseOwnerContains applies the Contains predicate on the "lease_owner" field.
func LeaseOwnerContains(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContains(FieldLeaseOwner, v))
}

// LeaseOwnerHasPrefix applies the HasPrefix predicate on the "lease_owner" field.
func LeaseOwnerHasPrefix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasPrefix(FieldLeaseOwner, v))
}

// LeaseOwnerHasSuffix applies the HasSuffix predicate on the "lease_owner" field.
func LeaseOwnerHasSuffix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasSuffix(FieldLeaseOwner, v))
}

// LeaseOwnerIsNil applies the IsNil predicate on the "lease_owner" field.
func LeaseOwnerIsNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIsNull(FieldLeaseOwner))
}

// LeaseOwnerNotNil applies the NotNil predicate on the "lease_owner" field.
func LeaseOwnerNotNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotNull(FieldLeaseOwner))
}

// LeaseOwnerEqualFold applies the EqualFold predicate on the "lease_owner" field.
func LeaseOwnerEqualFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldLeaseOwner, v))
}

// LeaseOwnerContainsFold applies the ContainsFold predicate on the "lease_owner" field.
func LeaseOwnerContainsFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldLeaseOwner, v))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIsNil applies the IsNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtIsNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIsNull(FieldLeaseExpiresAt))
}

// LeaseExpiresAtNotNil applies the NotNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotNull(FieldLeaseExpiresAt))
}

// LeasedAtEQ applies the EQ predicate on the "leased_at" field.
func LeasedAtEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldLeasedAt, v))
}

// LeasedAtNEQ applies the NEQ predicate on the "leased_at" field.
func LeasedAtNEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldLeasedAt, v))
}

// LeasedAtIn applies the In predicate on the "leased_at" field.
func LeasedAtIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldLeasedAt, vs...))
}

// LeasedAtNotIn applies the NotIn predicate on the "leased_at" field.
func LeasedAtNotIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldLeasedAt, vs...))
}

// LeasedAtGT applies the GT predicate on the "leased_at" field.
func LeasedAtGT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldLeasedAt, v))
}

// LeasedAtGTE applies the GTE predicate on the "leased_at" field.
func LeasedAtGTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldLeasedAt, v))
}

// LeasedAtLT applies the LT predicate on the "leased_at" field.
func LeasedAtLT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldLeasedAt, v))
}

// LeasedAtLTE applies the LTE predicate on the "leased_at" field.
func LeasedAtLTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldLeasedAt, v))
}

// LeasedAtIsNil applies the IsNil predicate on the "leased_at" field.
func LeasedAtIsNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIsNull(FieldLeasedAt))
}

// LeasedAtNotNil applies the NotNil predicate on the "leased_at" field.
func LeasedAtNotNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotNull(FieldLeasedAt))
}

// NextVisibleAtEQ applies the EQ predicate on the "next_visible_at" field.
func NextVisibleAtEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldNextVisibleAt, v))
}

// NextVisibleAtNEQ applies the NEQ predicate on the "next_visible_at" field.
func NextVisibleAtNEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldNextVisibleAt, v))
}

// NextVisibleAtIn applies the In predicate on the "next_visible_at" field.
func NextVisibleAtIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldNextVisibleAt, vs...))
}

// NextVisibleAtNotIn applies the NotIn predicate on the "next_visible_at" field.
func NextVisibleAtNotIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldNextVisibleAt, vs...))
}

// NextVisibleAtGT applies the GT predicate on the "next_visible_at" field.
func NextVisibleAtGT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldNextVisibleAt, v))
}

// NextVisibleAtGTE applies the GTE predicate on the "next_visible_at" field.
func NextVisibleAtGTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldNextVisibleAt, v))
}

// NextVisibleAtLT applies the LT predicate on the "next_visible_at" field.
func NextVisibleAtLT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldNextVisibleAt, v))
}

// NextVisibleAtLTE applies the LTE predicate on the "next_visible_at" field.
func NextVisibleAtLTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldNextVisibleAt, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldContainsFold(FieldLastError, v))
}

// EnqueuedAtEQ applies the EQ predicate on the "enqueued_at" field.
func EnqueuedAtEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtNEQ applies the NEQ predicate on the "enqueued_at" field.
func EnqueuedAtNEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtIn applies the In predicate on the "enqueued_at" field.
func EnqueuedAtIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtNotIn applies the NotIn predicate on the "enqueued_at" field.
func EnqueuedAtNotIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtGT applies the GT predicate on the "enqueued_at" field.
func EnqueuedAtGT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldEnqueuedAt, v))
}

// EnqueuedAtGTE applies the GTE predicate on the "enqueued_at" field.
func EnqueuedAtGTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldEnqueuedAt, v))
}

// EnqueuedAtLT applies the LT predicate on the "enqueued_at" field.
func EnqueuedAtLT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldEnqueuedAt, v))
}

// EnqueuedAtLTE applies the LTE predicate on the "enqueued_at" field.
func EnqueuedAtLTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldEnqueuedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QueueTask {
	return predicate.QueueTask(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueueTask) predicate.QueueTask {
	return predicate.QueueTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueueTask) predicate.QueueTask {
	return predicate.QueueTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueueTask) predicate.QueueTask {
	return predicate.QueueTask(sql.NotPredicates(p))
}
