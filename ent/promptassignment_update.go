// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/predicate"
	"github.com/codeready-toolchain/maestro/ent/promptassignment"
)

// PromptAssignmentUpdate is the builder for updating PromptAssignment entities.
type PromptAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *PromptAssignmentMutation
}

// Where appends a list predicates to the PromptAssignmentUpdate builder.
func (_u *PromptAssignmentUpdate) Where(ps ...predicate.PromptAssignment) *PromptAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStage sets the "stage" field.
func (_u *PromptAssignmentUpdate) SetStage(v promptassignment.Stage) *PromptAssignmentUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *PromptAssignmentUpdate) SetNillableStage(v *promptassignment.Stage) *PromptAssignmentUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetComponentRole sets the "component_role" field.
func (_u *PromptAssignmentUpdate) SetComponentRole(v string) *PromptAssignmentUpdate {
	_u.mutation.SetComponentRole(v)
	return _u
}

// SetNillableComponentRole sets the "component_role" field if the given value is not nil.
func (_u *PromptAssignmentUpdate) SetNillableComponentRole(v *string) *PromptAssignmentUpdate {
	if v != nil {
		_u.SetComponentRole(*v)
	}
	return _u
}

// SetScopeType sets the "scope_type" field.
func (_u *PromptAssignmentUpdate) SetScopeType(v promptassignment.ScopeType) *PromptAssignmentUpdate {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *PromptAssignmentUpdate) SetNillableScopeType(v *promptassignment.ScopeType) *PromptAssignmentUpdate {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeValue sets the "scope_value" field.
func (_u *PromptAssignmentUpdate) SetScopeValue(v string) *PromptAssignmentUpdate {
	_u.mutation.SetScopeValue(v)
	return _u
}

// SetNillableScopeValue sets the "scope_value" field if the given value is not nil.
func (_u *PromptAssignmentUpdate) SetNillableScopeValue(v *string) *PromptAssignmentUpdate {
	if v != nil {
		_u.SetScopeValue(*v)
	}
	return _u
}

// SetPromptID sets the "prompt_id" field.
func (_u *PromptAssignmentUpdate) SetPromptID(v string) *PromptAssignmentUpdate {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *PromptAssignmentUpdate) SetNillablePromptID(v *string) *PromptAssignmentUpdate {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *PromptAssignmentUpdate) SetPromptVersion(v int) *PromptAssignmentUpdate {
	_u.mutation.ResetPromptVersion()
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *PromptAssignmentUpdate) SetNillablePromptVersion(v *int) *PromptAssignmentUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// AddPromptVersion adds value to the "prompt_version" field.
func (_u *PromptAssignmentUpdate) AddPromptVersion(v int) *PromptAssignmentUpdate {
	_u.mutation.AddPromptVersion(v)
	return _u
}

// SetLegacyExempt sets the "legacy_exempt" field.
func (_u *PromptAssignmentUpdate) SetLegacyExempt(v bool) *PromptAssignmentUpdate {
	_u.mutation.SetLegacyExempt(v)
	return _u
}

// SetNillableLegacyExempt sets the "legacy_exempt" field if the given value is not nil.
func (_u *PromptAssignmentUpdate) SetNillableLegacyExempt(v *bool) *PromptAssignmentUpdate {
	if v != nil {
		_u.SetLegacyExempt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptAssignmentUpdate) SetUpdatedAt(v time.Time) *PromptAssignmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptAssignmentMutation object of the builder.
func (_u *PromptAssignmentUpdate) Mutation() *PromptAssignmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptAssignmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptAssignmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := promptassignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptAssignmentUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := promptassignment.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PromptAssignment.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := promptassignment.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "PromptAssignment.scope_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptVersion(); ok {
		if err := promptassignment.PromptVersionValidator(v); err != nil {
			return &ValidationError{Name: "prompt_version", err: fmt.Errorf(`ent: validator failed for field "PromptAssignment.prompt_version": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptassignment.Table, promptassignment.Columns, sqlgraph.NewFieldSpec(promptassignment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(promptassignment.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ComponentRole(); ok {
		_spec.SetField(promptassignment.FieldComponentRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(promptassignment.FieldScopeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeValue(); ok {
		_spec.SetField(promptassignment.FieldScopeValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(promptassignment.FieldPromptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(promptassignment.FieldPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptVersion(); ok {
		_spec.AddField(promptassignment.FieldPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LegacyExempt(); ok {
		_spec.SetField(promptassignment.FieldLegacyExempt, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(promptassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptAssignmentUpdateOne is the builder for updating a single PromptAssignment entity.
type PromptAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptAssignmentMutation
}

// SetStage sets the "stage" field.
func (_u *PromptAssignmentUpdateOne) SetStage(v promptassignment.Stage) *PromptAssignmentUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *PromptAssignmentUpdateOne) SetNillableStage(v *promptassignment.Stage) *PromptAssignmentUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetComponentRole sets the "component_role" field.
func (_u *PromptAssignmentUpdateOne) SetComponentRole(v string) *PromptAssignmentUpdateOne {
	_u.mutation.SetComponentRole(v)
	return _u
}

// SetNillableComponentRole sets the "component_role" field if the given value is not nil.
func (_u *PromptAssignmentUpdateOne) SetNillableComponentRole(v *string) *PromptAssignmentUpdateOne {
	if v != nil {
		_u.SetComponentRole(*v)
	}
	return _u
}

// SetScopeType sets the "scope_type" field.
func (_u *PromptAssignmentUpdateOne) SetScopeType(v promptassignment.ScopeType) *PromptAssignmentUpdateOne {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *PromptAssignmentUpdateOne) SetNillableScopeType(v *promptassignment.ScopeType) *PromptAssignmentUpdateOne {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeValue sets the "scope_value" field.
func (_u *PromptAssignmentUpdateOne) SetScopeValue(v string) *PromptAssignmentUpdateOne {
	_u.mutation.SetScopeValue(v)
	return _u
}

// SetNillableScopeValue sets the "scope_value" field if the given value is not nil.
func (_u *PromptAssignmentUpdateOne) SetNillableScopeValue(v *string) *PromptAssignmentUpdateOne {
	if v != nil {
		_u.SetScopeValue(*v)
	}
	return _u
}

// SetPromptID sets the "prompt_id" field.
func (_u *PromptAssignmentUpdateOne) SetPromptID(v string) *PromptAssignmentUpdateOne {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *PromptAssignmentUpdateOne) SetNillablePromptID(v *string) *PromptAssignmentUpdateOne {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *PromptAssignmentUpdateOne) SetPromptVersion(v int) *PromptAssignmentUpdateOne {
	_u.mutation.ResetPromptVersion()
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *PromptAssignmentUpdateOne) SetNillablePromptVersion(v *int) *PromptAssignmentUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// AddPromptVersion adds value to the "prompt_version" field.
func (_u *PromptAssignmentUpdateOne) AddPromptVersion(v int) *PromptAssignmentUpdateOne {
	_u.mutation.AddPromptVersion(v)
	return _u
}

// SetLegacyExempt sets the "legacy_exempt" field.
func (_u *PromptAssignmentUpdateOne) SetLegacyExempt(v bool) *PromptAssignmentUpdateOne {
	_u.mutation.SetLegacyExempt(v)
	return _u
}

// SetNillableLegacyExempt sets the "legacy_exempt" field if the given value is not nil.
func (_u *PromptAssignmentUpdateOne) SetNillableLegacyExempt(v *bool) *PromptAssignmentUpdateOne {
	if v != nil {
		_u.SetLegacyExempt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptAssignmentUpdateOne) SetUpdatedAt(v time.Time) *PromptAssignmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptAssignmentMutation object of the builder.
func (_u *PromptAssignmentUpdateOne) Mutation() *PromptAssignmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptAssignmentUpdate builder.
func (_u *PromptAssignmentUpdateOne) Where(ps ...predicate.PromptAssignment) *PromptAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptAssignmentUpdateOne) Select(field string, fields ...string) *PromptAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptAssignment entity.
func (_u *PromptAssignmentUpdateOne) Save(ctx context.Context) (*PromptAssignment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptAssignmentUpdateOne) SaveX(ctx context.Context) *PromptAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptAssignmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := promptassignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptAssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := promptassignment.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PromptAssignment.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := promptassignment.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "PromptAssignment.scope_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptVersion(); ok {
		if err := promptassignment.PromptVersionValidator(v); err != nil {
			return &ValidationError{Name: "prompt_version", err: fmt.Errorf(`ent: validator failed for field "PromptAssignment.prompt_version": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *PromptAssignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptassignment.Table, promptassignment.Columns, sqlgraph.NewFieldSpec(promptassignment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptassignment.FieldID)
		for _, f := range fields {
			if !promptassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptassignment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(promptassignment.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ComponentRole(); ok {
		_spec.SetField(promptassignment.FieldComponentRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(promptassignment.FieldScopeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeValue(); ok {
		_spec.SetField(promptassignment.FieldScopeValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(promptassignment.FieldPromptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(promptassignment.FieldPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptVersion(); ok {
		_spec.AddField(promptassignment.FieldPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LegacyExempt(); ok {
		_spec.SetField(promptassignment.FieldLegacyExempt, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(promptassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PromptAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
