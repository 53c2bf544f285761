// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/checkpoint"
)

// CheckpointCreate is the builder for creating a Checkpoint entity.
type CheckpointCreate struct {
	config
	mutation *CheckpointMutation
	hooks    []Hook
}

// SetEntityType sets the "entity_type" field.
func (_c *CheckpointCreate) SetEntityType(v string) *CheckpointCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *CheckpointCreate) SetEntityID(v string) *CheckpointCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetStateBlob sets the "state_blob" field.
func (_c *CheckpointCreate) SetStateBlob(v []byte) *CheckpointCreate {
	_c.mutation.SetStateBlob(v)
	return _c
}

// SetIntegrityHash sets the "integrity_hash" field.
func (_c *CheckpointCreate) SetIntegrityHash(v string) *CheckpointCreate {
	_c.mutation.SetIntegrityHash(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *CheckpointCreate) SetReason(v string) *CheckpointCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *CheckpointCreate) SetTraceID(v string) *CheckpointCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableTraceID(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetTraceID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckpointCreate) SetCreatedAt(v time.Time) *CheckpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableCreatedAt(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckpointCreate) SetID(v string) *CheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CheckpointMutation object of the builder.
func (_c *CheckpointCreate) Mutation() *CheckpointMutation {
	return _c.mutation
}

// Save creates the Checkpoint in the database.
func (_c *CheckpointCreate) Save(ctx context.Context) (*Checkpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointCreate) SaveX(ctx context.Context) *Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointCreate) check() error {
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "Checkpoint.entity_type"`)}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "Checkpoint.entity_id"`)}
	}
	if _, ok := _c.mutation.StateBlob(); !ok {
		return &ValidationError{Name: "state_blob", err: errors.New(`ent: missing required field "Checkpoint.state_blob"`)}
	}
	if _, ok := _c.mutation.IntegrityHash(); !ok {
		return &ValidationError{Name: "integrity_hash", err: errors.New(`ent: missing required field "Checkpoint.integrity_hash"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "Checkpoint.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Checkpoint.created_at"`)}
	}
	return nil
}

func (_c *CheckpointCreate) sqlSave(ctx context.Context) (*Checkpoint, error) {
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
			return nil, fmt.Errorf("unexpected Checkpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckpointCreate) createSpec() (*Checkpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpoint.Table, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(checkpoint.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(checkpoint.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.StateBlob(); ok {
		_spec.SetField(checkpoint.FieldStateBlob, field.TypeBytes, value)
		_node.StateBlob = value
	}
	if value, ok := _c.mutation.IntegrityHash(); ok {
		_spec.SetField(checkpoint.FieldIntegrityHash, field.TypeString, value)
		_node.IntegrityHash = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(checkpoint.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(checkpoint.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CheckpointCreateBulk is the builder for creating many Checkpoint entities in bulk.
type CheckpointCreateBulk struct {
	config
	err      error
	builders []*CheckpointCreate
}

// Save creates the Checkpoint entities in the database.
func (_c *CheckpointCreateBulk) Save(ctx context.Context) ([]*Checkpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointMutation)
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
func (_c *CheckpointCreateBulk) SaveX(ctx context.Context) []*Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
