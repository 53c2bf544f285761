// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/agentspec"
)

// AgentSpecCreate is the builder for creating a AgentSpec entity.
type AgentSpecCreate struct {
	config
	mutation *AgentSpecMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *AgentSpecCreate) SetName(v string) *AgentSpecCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentSpecCreate) SetStatus(v agentspec.Status) *AgentSpecCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentSpecCreate) SetNillableStatus(v *agentspec.Status) *AgentSpecCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *AgentSpecCreate) SetCapabilities(v []string) *AgentSpecCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetModelClass sets the "model_class" field.
func (_c *AgentSpecCreate) SetModelClass(v string) *AgentSpecCreate {
	_c.mutation.SetModelClass(v)
	return _c
}

// SetNillableModelClass sets the "model_class" field if the given value is not nil.
func (_c *AgentSpecCreate) SetNillableModelClass(v *string) *AgentSpecCreate {
	if v != nil {
		_c.SetModelClass(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *AgentSpecCreate) SetDescription(v string) *AgentSpecCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AgentSpecCreate) SetNillableDescription(v *string) *AgentSpecCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTotalRuns sets the "total_runs" field.
func (_c *AgentSpecCreate) SetTotalRuns(v int64) *AgentSpecCreate {
	_c.mutation.SetTotalRuns(v)
	return _c
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_c *AgentSpecCreate) SetNillableTotalRuns(v *int64) *AgentSpecCreate {
	if v != nil {
		_c.SetTotalRuns(*v)
	}
	return _c
}

// SetSuccesses sets the "successes" field.
func (_c *AgentSpecCreate) SetSuccesses(v int64) *AgentSpecCreate {
	_c.mutation.SetSuccesses(v)
	return _c
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_c *AgentSpecCreate) SetNillableSuccesses(v *int64) *AgentSpecCreate {
	if v != nil {
		_c.SetSuccesses(*v)
	}
	return _c
}

// SetFailures sets the "failures" field.
func (_c *AgentSpecCreate) SetFailures(v int64) *AgentSpecCreate {
	_c.mutation.SetFailures(v)
	return _c
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_c *AgentSpecCreate) SetNillableFailures(v *int64) *AgentSpecCreate {
	if v != nil {
		_c.SetFailures(*v)
	}
	return _c
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_c *AgentSpecCreate) SetAvgLatencyMs(v float64) *AgentSpecCreate {
	_c.mutation.SetAvgLatencyMs(v)
	return _c
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_c *AgentSpecCreate) SetNillableAvgLatencyMs(v *float64) *AgentSpecCreate {
	if v != nil {
		_c.SetAvgLatencyMs(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentSpecCreate) SetVersion(v int) *AgentSpecCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AgentSpecCreate) SetNillableVersion(v *int) *AgentSpecCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentSpecCreate) SetCreatedAt(v time.Time) *AgentSpecCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentSpecCreate) SetNillableCreatedAt(v *time.Time) *AgentSpecCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentSpecCreate) SetUpdatedAt(v time.Time) *AgentSpecCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentSpecCreate) SetNillableUpdatedAt(v *time.Time) *AgentSpecCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSpecCreate) SetID(v string) *AgentSpecCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentSpecMutation object of the builder.
func (_c *AgentSpecCreate) Mutation() *AgentSpecMutation {
	return _c.mutation
}

// Save creates the AgentSpec in the database.
func (_c *AgentSpecCreate) Save(ctx context.Context) (*AgentSpec, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSpecCreate) SaveX(ctx context.Context) *AgentSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSpecCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSpecCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSpecCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentspec.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ModelClass(); !ok {
		v := agentspec.DefaultModelClass
		_c.mutation.SetModelClass(v)
	}
	if _, ok := _c.mutation.TotalRuns(); !ok {
		v := agentspec.DefaultTotalRuns
		_c.mutation.SetTotalRuns(v)
	}
	if _, ok := _c.mutation.Successes(); !ok {
		v := agentspec.DefaultSuccesses
		_c.mutation.SetSuccesses(v)
	}
	if _, ok := _c.mutation.Failures(); !ok {
		v := agentspec.DefaultFailures
		_c.mutation.SetFailures(v)
	}
	if _, ok := _c.mutation.AvgLatencyMs(); !ok {
		v := agentspec.DefaultAvgLatencyMs
		_c.mutation.SetAvgLatencyMs(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := agentspec.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentspec.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentspec.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSpecCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AgentSpec.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentSpec.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentspec.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSpec.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelClass(); !ok {
		return &ValidationError{Name: "model_class", err: errors.New(`ent: missing required field "AgentSpec.model_class"`)}
	}
	if _, ok := _c.mutation.TotalRuns(); !ok {
		return &ValidationError{Name: "total_runs", err: errors.New(`ent: missing required field "AgentSpec.total_runs"`)}
	}
	if _, ok := _c.mutation.Successes(); !ok {
		return &ValidationError{Name: "successes", err: errors.New(`ent: missing required field "AgentSpec.successes"`)}
	}
	if _, ok := _c.mutation.Failures(); !ok {
		return &ValidationError{Name: "failures", err: errors.New(`ent: missing required field "AgentSpec.failures"`)}
	}
	if _, ok := _c.mutation.AvgLatencyMs(); !ok {
		return &ValidationError{Name: "avg_latency_ms", err: errors.New(`ent: missing required field "AgentSpec.avg_latency_ms"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AgentSpec.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentSpec.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentSpec.updated_at"`)}
	}
	return nil
}

func (_c *AgentSpecCreate) sqlSave(ctx context.Context) (*AgentSpec, error) {
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
			return nil, fmt.Errorf("unexpected AgentSpec.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSpecCreate) createSpec() (*AgentSpec, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSpec{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentspec.Table, sqlgraph.NewFieldSpec(agentspec.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agentspec.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentspec.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(agentspec.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.ModelClass(); ok {
		_spec.SetField(agentspec.FieldModelClass, field.TypeString, value)
		_node.ModelClass = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(agentspec.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TotalRuns(); ok {
		_spec.SetField(agentspec.FieldTotalRuns, field.TypeInt64, value)
		_node.TotalRuns = value
	}
	if value, ok := _c.mutation.Successes(); ok {
		_spec.SetField(agentspec.FieldSuccesses, field.TypeInt64, value)
		_node.Successes = value
	}
	if value, ok := _c.mutation.Failures(); ok {
		_spec.SetField(agentspec.FieldFailures, field.TypeInt64, value)
		_node.Failures = value
	}
	if value, ok := _c.mutation.AvgLatencyMs(); ok {
		_spec.SetField(agentspec.FieldAvgLatencyMs, field.TypeFloat64, value)
		_node.AvgLatencyMs = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agentspec.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentspec.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentspec.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentSpecCreateBulk is the builder for creating many AgentSpec entities in bulk.
type AgentSpecCreateBulk struct {
	config
	err      error
	builders []*AgentSpecCreate
}

// Save creates the AgentSpec entities in the database.
func (_c *AgentSpecCreateBulk) Save(ctx context.Context) ([]*AgentSpec, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSpec, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSpecMutation)
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
func (_c *AgentSpecCreateBulk) SaveX(ctx context.Context) []*AgentSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSpecCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSpecCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
