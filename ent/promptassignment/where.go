// Code generated by ent, DO NOT EDIT.

package promptassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldContainsFold(FieldID, id))
}

// ComponentRole applies equality check predicate on the "component_role" field. It's identical to ComponentRoleEQ.
func ComponentRole(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldComponentRole, v))
}

// ScopeValue applies equality check predicate on the "scope_value" field. It's identical to ScopeValueEQ.
func ScopeValue(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldScopeValue, v))
}

// PromptID applies equality check predicate on the "prompt_id" field. It's identical to PromptIDEQ.
func PromptID(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldPromptID, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v int) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldPromptVersion, v))
}

// LegacyExempt applies equality check predicate on the "legacy_exempt" field. It's identical to LegacyExemptEQ.
func LegacyExempt(v bool) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldLegacyExempt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNotIn(FieldStage, vs...))
}

// ComponentRoleEQ applies the EQ predicate on the "component_role" field.
func ComponentRoleEQ(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldComponentRole, v))
}

// ComponentRoleNEQ applies the NEQ predicate on the "component_role" field.
func ComponentRoleNEQ(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNEQ(FieldComponentRole, v))
}

// ComponentRoleIn applies the In predicate on the "component_role" field.
func ComponentRoleIn(vs ...string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldIn(FieldComponentRole, vs...))
}

// ComponentRoleNotIn applies the NotIn predicate on the "component_role" field.
func ComponentRoleNotIn(vs ...string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNotIn(FieldComponentRole, vs...))
}

// ComponentRoleGT applies the GT predicate on the "component_role" field.
func ComponentRoleGT(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGT(FieldComponentRole, v))
}

// ComponentRoleGTE applies the GTE predicate on the "component_role" field.
func ComponentRoleGTE(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGTE(FieldComponentRole, v))
}

// ComponentRoleLT applies the LT predicate on the "component_role" field.
func ComponentRoleLT(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLT(FieldComponentRole, v))
}

// ComponentRoleLTE applies the LTE predicate on the "component_role" field.
func ComponentRoleLTE(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLTE(FieldComponentRole, v))
}

// ComponentRoleContains applies the Contains predicate on the "component_role" field.
func ComponentRoleContains(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldContains(FieldComponentRole, v))
}

// ComponentRoleHasPrefix applies the HasPrefix predicate on the "component_role" field.
func ComponentRoleHasPrefix(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldHasPrefix(FieldComponentRole, v))
}

// ComponentRoleHasSuffix applies the HasSuffix predicate on the "component_role" field.
func ComponentRoleHasSuffix(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldHasSuffix(FieldComponentRole, v))
}

// ComponentRoleEqualFold applies the EqualFold predicate on the "component_role" field.
func ComponentRoleEqualFold(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEqualFold(FieldComponentRole, v))
}

// ComponentRoleContainsFold applies the ContainsFold predicate on the "component_role" field.
func ComponentRoleContainsFold(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldContainsFold(FieldComponentRole, v))
}

// ScopeTypeEQ applies the EQ predicate on the "scope_type" field.
func ScopeTypeEQ(v ScopeType) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldScopeType, v))
}

// ScopeTypeNEQ applies the NEQ predicate on the "scope_type" field.
func ScopeTypeNEQ(v ScopeType) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNEQ(FieldScopeType, v))
}

// ScopeTypeIn applies the In predicate on the "scope_type" field.
func ScopeTypeIn(vs ...ScopeType) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldIn(FieldScopeType, vs...))
}

// ScopeTypeNotIn applies the NotIn predicate on the "scope_type" field.
func ScopeTypeNotIn(vs ...ScopeType) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNotIn(FieldScopeType, vs...))
}

// ScopeValueEQ applies the EQ predicate on the "scope_value" field.
func ScopeValueEQ(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldScopeValue, v))
}

// ScopeValueNEQ applies the NEQ predicate on the "scope_value" field.
func ScopeValueNEQ(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNEQ(FieldScopeValue, v))
}

// ScopeValueIn applies the In predicate on the "scope_value" field.
func ScopeValueIn(vs ...string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldIn(FieldScopeValue, vs...))
}

// ScopeValueNotIn applies the NotIn predicate on the "scope_value" field.
func ScopeValueNotIn(vs ...string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNotIn(FieldScopeValue, vs...))
}

// ScopeValueGT applies the GT predicate on the "scope_value" field.
func ScopeValueGT(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGT(FieldScopeValue, v))
}

// ScopeValueGTE applies the GTE predicate on the "scope_value" field.
func ScopeValueGTE(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGTE(FieldScopeValue, v))
}

// ScopeValueLT applies the LT predicate on the "scope_value" field.
func ScopeValueLT(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLT(FieldScopeValue, v))
}

// ScopeValueLTE applies the LTE predicate on the "scope_value" field.
func ScopeValueLTE(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLTE(FieldScopeValue, v))
}

// ScopeValueContains applies the Contains predicate on the "scope_value" field.
func ScopeValueContains(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldContains(FieldScopeValue, v))
}

// ScopeValueHasPrefix applies the HasPrefix predicate on the "scope_value" field.
func ScopeValueHasPrefix(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldHasPrefix(FieldScopeValue, v))
}

// ScopeValueHasSuffix applies the HasSuffix predicate on the "scope_value" field.
func ScopeValueHasSuffix(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldHasSuffix(FieldScopeValue, v))
}

// ScopeValueEqualFold applies the EqualFold predicate on the "scope_value" field.
func ScopeValueEqualFold(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEqualFold(FieldScopeValue, v))
}

// ScopeValueContainsFold applies the ContainsFold predicate on the "scope_value" field.
func ScopeValueContainsFold(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldContainsFold(FieldScopeValue, v))
}

// PromptIDEQ applies the EQ predicate on the "prompt_id" field.
func PromptIDEQ(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldPromptID, v))
}

// PromptIDNEQ applies the NEQ predicate on the "prompt_id" field.
func PromptIDNEQ(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNEQ(FieldPromptID, v))
}

// PromptIDIn applies the In predicate on the "prompt_id" field.
func PromptIDIn(vs ...string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldIn(FieldPromptID, vs...))
}

// PromptIDNotIn applies the NotIn predicate on the "prompt_id" field.
func PromptIDNotIn(vs ...string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNotIn(FieldPromptID, vs...))
}

// PromptIDGT applies the GT predicate on the "prompt_id" field.
func PromptIDGT(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGT(FieldPromptID, v))
}

// PromptIDGTE applies the GTE predicate on the "prompt_id" field.
func PromptIDGTE(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGTE(FieldPromptID, v))
}

// PromptIDLT applies the LT predicate on the "prompt_id" field.
func PromptIDLT(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLT(FieldPromptID, v))
}

// PromptIDLTE applies the LTE predicate on the "prompt_id" field.
func PromptIDLTE(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLTE(FieldPromptID, v))
}

// PromptIDContains applies the Contains predicate on the "prompt_id" field.
func PromptIDContains(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldContains(FieldPromptID, v))
}

// PromptIDHasPrefix applies the HasPrefix predicate on the "prompt_id" field.
func PromptIDHasPrefix(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldHasPrefix(FieldPromptID, v))
}

// PromptIDHasSuffix applies the HasSuffix predicate on the "prompt_id" field.
func PromptIDHasSuffix(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldHasSuffix(FieldPromptID, v))
}

// PromptIDEqualFold applies the EqualFold predicate on the "prompt_id" field.
func PromptIDEqualFold(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEqualFold(FieldPromptID, v))
}

// PromptIDContainsFold applies the ContainsFold predicate on the "prompt_id" field.
func PromptIDContainsFold(v string) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldContainsFold(FieldPromptID, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v int) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v int) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...int) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...int) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v int) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v int) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v int) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v int) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLTE(FieldPromptVersion, v))
}

// LegacyExemptEQ applies the EQ predicate on the "legacy_exempt" field.
func LegacyExemptEQ(v bool) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldLegacyExempt, v))
}

// LegacyExemptNEQ applies the NEQ predicate on the "legacy_exempt" field.
func LegacyExemptNEQ(v bool) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNEQ(FieldLegacyExempt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptAssignment) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptAssignment) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptAssignment) predicate.PromptAssignment {
	return predicate.PromptAssignment(sql.NotPredicates(p))
}
