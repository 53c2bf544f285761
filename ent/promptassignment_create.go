// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/promptassignment"
)

// PromptAssignmentCreate is the builder for creating a PromptAssignment entity.
type PromptAssignmentCreate struct {
	config
	mutation *PromptAssignmentMutation
	hooks    []Hook
}

// SetStage sets the "stage" field.
func (_c *PromptAssignmentCreate) SetStage(v promptassignment.Stage) *PromptAssignmentCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetComponentRole sets the "component_role" field.
func (_c *PromptAssignmentCreate) SetComponentRole(v string) *PromptAssignmentCreate {
	_c.mutation.SetComponentRole(v)
	return _c
}

// SetScopeType sets the "scope_type" field.
func (_c *PromptAssignmentCreate) SetScopeType(v promptassignment.ScopeType) *PromptAssignmentCreate {
	_c.mutation.SetScopeType(v)
	return _c
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_c *PromptAssignmentCreate) SetNillableScopeType(v *promptassignment.ScopeType) *PromptAssignmentCreate {
	if v != nil {
		_c.SetScopeType(*v)
	}
	return _c
}

// SetScopeValue sets the "scope_value" field.
func (_c *PromptAssignmentCreate) SetScopeValue(v string) *PromptAssignmentCreate {
	_c.mutation.SetScopeValue(v)
	return _c
}

// SetNillableScopeValue sets the "scope_value" field if the given value is not nil.
func (_c *PromptAssignmentCreate) SetNillableScopeValue(v *string) *PromptAssignmentCreate {
	if v != nil {
		_c.SetScopeValue(*v)
	}
	return _c
}

// SetPromptID sets the "prompt_id" field.
func (_c *PromptAssignmentCreate) SetPromptID(v string) *PromptAssignmentCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *PromptAssignmentCreate) SetPromptVersion(v int) *PromptAssignmentCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetLegacyExempt sets the "legacy_exempt" field.
func (_c *PromptAssignmentCreate) SetLegacyExempt(v bool) *PromptAssignmentCreate {
	_c.mutation.SetLegacyExempt(v)
	return _c
}

// SetNillableLegacyExempt sets the "legacy_exempt" field if the given value is not nil.
func (_c *PromptAssignmentCreate) SetNillableLegacyExempt(v *bool) *PromptAssignmentCreate {
	if v != nil {
		_c.SetLegacyExempt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptAssignmentCreate) SetCreatedAt(v time.Time) *PromptAssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptAssignmentCreate) SetNillableCreatedAt(v *time.Time) *PromptAssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PromptAssignmentCreate) SetUpdatedAt(v time.Time) *PromptAssignmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PromptAssignmentCreate) SetNillableUpdatedAt(v *time.Time) *PromptAssignmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptAssignmentCreate) SetID(v string) *PromptAssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PromptAssignmentMutation object of the builder.
func (_c *PromptAssignmentCreate) Mutation() *PromptAssignmentMutation {
	return _c.mutation
}

// Save creates the PromptAssignment in the database.
func (_c *PromptAssignmentCreate) Save(ctx context.Context) (*PromptAssignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptAssignmentCreate) SaveX(ctx context.Context) *PromptAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptAssignmentCreate) defaults() {
	if _, ok := _c.mutation.ScopeType(); !ok {
		v := promptassignment.DefaultScopeType
		_c.mutation.SetScopeType(v)
	}
	if _, ok := _c.mutation.ScopeValue(); !ok {
		v := promptassignment.DefaultScopeValue
		_c.mutation.SetScopeValue(v)
	}
	if _, ok := _c.mutation.LegacyExempt(); !ok {
		v := promptassignment.DefaultLegacyExempt
		_c.mutation.SetLegacyExempt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptassignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := promptassignment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptAssignmentCreate) check() error {
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "PromptAssignment.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := promptassignment.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PromptAssignment.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ComponentRole(); !ok {
		return &ValidationError{Name: "component_role", err: errors.New(`ent: missing required field "PromptAssignment.component_role"`)}
	}
	if _, ok := _c.mutation.ScopeType(); !ok {
		return &ValidationError{Name: "scope_type", err: errors.New(`ent: missing required field "PromptAssignment.scope_type"`)}
	}
	if v, ok := _c.mutation.ScopeType(); ok {
		if err := promptassignment.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "PromptAssignment.scope_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScopeValue(); !ok {
		return &ValidationError{Name: "scope_value", err: errors.New(`ent: missing required field "PromptAssignment.scope_value"`)}
	}
	if _, ok := _c.mutation.PromptID(); !ok {
		return &ValidationError{Name: "prompt_id", err: errors.New(`ent: missing required field "PromptAssignment.prompt_id"`)}
	}
	if _, ok := _c.mutation.PromptVersion(); !ok {
		return &ValidationError{Name: "prompt_version", err: errors.New(`ent: missing required field "PromptAssignment.prompt_version"`)}
	}
	if v, ok := _c.mutation.PromptVersion(); ok {
		if err := promptassignment.PromptVersionValidator(v); err != nil {
			return &ValidationError{Name: "prompt_version", err: fmt.Errorf(`ent: validator failed for field "PromptAssignment.prompt_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LegacyExempt(); !ok {
		return &ValidationError{Name: "legacy_exempt", err: errors.New(`ent: missing required field "PromptAssignment.legacy_exempt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptAssignment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PromptAssignment.updated_at"`)}
	}
	return nil
}

func (_c *PromptAssignmentCreate) sqlSave(ctx context.Context) (*PromptAssignment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PromptAssignment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptAssignmentCreate) createSpec() (*PromptAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptassignment.Table, sqlgraph.NewFieldSpec(promptassignment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(promptassignment.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.ComponentRole(); ok {
		_spec.SetField(promptassignment.FieldComponentRole, field.TypeString, value)
		_node.ComponentRole = value
	}
	if value, ok := _c.mutation.ScopeType(); ok {
		_spec.SetField(promptassignment.FieldScopeType, field.TypeEnum, value)
		_node.ScopeType = value
	}
	if value, ok := _c.mutation.ScopeValue(); ok {
		_spec.SetField(promptassignment.FieldScopeValue, field.TypeString, value)
		_node.ScopeValue = value
	}
	if value, ok := _c.mutation.PromptID(); ok {
		_spec.SetField(promptassignment.FieldPromptID, field.TypeString, value)
		_node.PromptID = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(promptassignment.FieldPromptVersion, field.TypeInt, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.LegacyExempt(); ok {
		_spec.SetField(promptassignment.FieldLegacyExempt, field.TypeBool, value)
		_node.LegacyExempt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptassignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(promptassignment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PromptAssignmentCreateBulk is the builder for creating many PromptAssignment entities in bulk.
type PromptAssignmentCreateBulk struct {
	config
	err      error
	builders []*PromptAssignmentCreate
}

// Save creates the PromptAssignment entities in the database.
func (_c *PromptAssignmentCreateBulk) Save(ctx context.Context) ([]*PromptAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptAssignmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PromptAssignmentCreateBulk) SaveX(ctx context.Context) []*PromptAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
