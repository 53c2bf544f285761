// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/learningpattern"
)

// LearningPatternCreate is the builder for creating a LearningPattern entity.
type LearningPatternCreate struct {
	config
	mutation *LearningPatternMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *LearningPatternCreate) SetKind(v learningpattern.Kind) *LearningPatternCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *LearningPatternCreate) SetLevel(v learningpattern.Level) *LearningPatternCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *LearningPatternCreate) SetNillableLevel(v *learningpattern.Level) *LearningPatternCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetSignature sets the "signature" field.
func (_c *LearningPatternCreate) SetSignature(v string) *LearningPatternCreate {
	_c.mutation.SetSignature(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *LearningPatternCreate) SetBody(v map[string]interface{}) *LearningPatternCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetObservedSuccessRate sets the "observed_success_rate" field.
func (_c *LearningPatternCreate) SetObservedSuccessRate(v float64) *LearningPatternCreate {
	_c.mutation.SetObservedSuccessRate(v)
	return _c
}

// SetNillableObservedSuccessRate sets the "observed_success_rate" field if the given value is not nil.
func (_c *LearningPatternCreate) SetNillableObservedSuccessRate(v *float64) *LearningPatternCreate {
	if v != nil {
		_c.SetObservedSuccessRate(*v)
	}
	return _c
}

// SetSampleCount sets the "sample_count" field.
func (_c *LearningPatternCreate) SetSampleCount(v int64) *LearningPatternCreate {
	_c.mutation.SetSampleCount(v)
	return _c
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_c *LearningPatternCreate) SetNillableSampleCount(v *int64) *LearningPatternCreate {
	if v != nil {
		_c.SetSampleCount(*v)
	}
	return _c
}

// SetLastObservedAt sets the "last_observed_at" field.
func (_c *LearningPatternCreate) SetLastObservedAt(v time.Time) *LearningPatternCreate {
	_c.mutation.SetLastObservedAt(v)
	return _c
}

// SetNillableLastObservedAt sets the "last_observed_at" field if the given value is not nil.
func (_c *LearningPatternCreate) SetNillableLastObservedAt(v *time.Time) *LearningPatternCreate {
	if v != nil {
		_c.SetLastObservedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningPatternCreate) SetCreatedAt(v time.Time) *LearningPatternCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningPatternCreate) SetNillableCreatedAt(v *time.Time) *LearningPatternCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearningPatternCreate) SetUpdatedAt(v time.Time) *LearningPatternCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearningPatternCreate) SetNillableUpdatedAt(v *time.Time) *LearningPatternCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningPatternCreate) SetID(v string) *LearningPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearningPatternMutation object of the builder.
func (_c *LearningPatternCreate) Mutation() *LearningPatternMutation {
	return _c.mutation
}

// Save creates the LearningPattern in the database.
func (_c *LearningPatternCreate) Save(ctx context.Context) (*LearningPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPatternCreate) SaveX(ctx context.Context) *LearningPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPatternCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := learningpattern.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.ObservedSuccessRate(); !ok {
		v := learningpattern.DefaultObservedSuccessRate
		_c.mutation.SetObservedSuccessRate(v)
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		v := learningpattern.DefaultSampleCount
		_c.mutation.SetSampleCount(v)
	}
	if _, ok := _c.mutation.LastObservedAt(); !ok {
		v := learningpattern.DefaultLastObservedAt()
		_c.mutation.SetLastObservedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningpattern.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learningpattern.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPatternCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "LearningPattern.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := learningpattern.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "LearningPattern.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := learningpattern.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Signature(); !ok {
		return &ValidationError{Name: "signature", err: errors.New(`ent: missing required field "LearningPattern.signature"`)}
	}
	if _, ok := _c.mutation.ObservedSuccessRate(); !ok {
		return &ValidationError{Name: "observed_success_rate", err: errors.New(`ent: missing required field "LearningPattern.observed_success_rate"`)}
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		return &ValidationError{Name: "sample_count", err: errors.New(`ent: missing required field "LearningPattern.sample_count"`)}
	}
	if _, ok := _c.mutation.LastObservedAt(); !ok {
		return &ValidationError{Name: "last_observed_at", err: errors.New(`ent: missing required field "LearningPattern.last_observed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningPattern.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearningPattern.updated_at"`)}
	}
	return nil
}

func (_c *LearningPatternCreate) sqlSave(ctx context.Context) (*LearningPattern, error) {
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
			return nil, fmt.Errorf("unexpected LearningPattern.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningPatternCreate) createSpec() (*LearningPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningpattern.Table, sqlgraph.NewFieldSpec(learningpattern.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(learningpattern.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(learningpattern.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Signature(); ok {
		_spec.SetField(learningpattern.FieldSignature, field.TypeString, value)
		_node.Signature = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(learningpattern.FieldBody, field.TypeJSON, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.ObservedSuccessRate(); ok {
		_spec.SetField(learningpattern.FieldObservedSuccessRate, field.TypeFloat64, value)
		_node.ObservedSuccessRate = value
	}
	if value, ok := _c.mutation.SampleCount(); ok {
		_spec.SetField(learningpattern.FieldSampleCount, field.TypeInt64, value)
		_node.SampleCount = value
	}
	if value, ok := _c.mutation.LastObservedAt(); ok {
		_spec.SetField(learningpattern.FieldLastObservedAt, field.TypeTime, value)
		_node.LastObservedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningpattern.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learningpattern.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearningPatternCreateBulk is the builder for creating many LearningPattern entities in bulk.
type LearningPatternCreateBulk struct {
	config
	err      error
	builders []*LearningPatternCreate
}

// Save creates the LearningPattern entities in the database.
func (_c *LearningPatternCreateBulk) Save(ctx context.Context) ([]*LearningPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPatternMutation)
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
func (_c *LearningPatternCreateBulk) SaveX(ctx context.Context) []*LearningPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
