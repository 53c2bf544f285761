// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/toolspec"
)

// ToolSpecCreate is the builder for creating a ToolSpec entity.
type ToolSpecCreate struct {
	config
	mutation *ToolSpecMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ToolSpecCreate) SetName(v string) *ToolSpecCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ToolSpecCreate) SetStatus(v toolspec.Status) *ToolSpecCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ToolSpecCreate) SetNillableStatus(v *toolspec.Status) *ToolSpecCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *ToolSpecCreate) SetCapabilities(v []string) *ToolSpecCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetInputSchema sets the "input_schema" field.
func (_c *ToolSpecCreate) SetInputSchema(v map[string]interface{}) *ToolSpecCreate {
	_c.mutation.SetInputSchema(v)
	return _c
}

// SetOutputSchema sets the "output_schema" field.
func (_c *ToolSpecCreate) SetOutputSchema(v map[string]interface{}) *ToolSpecCreate {
	_c.mutation.SetOutputSchema(v)
	return _c
}

// SetCommand sets the "command" field.
func (_c *ToolSpecCreate) SetCommand(v []string) *ToolSpecCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetHandler sets the "handler" field.
func (_c *ToolSpecCreate) SetHandler(v string) *ToolSpecCreate {
	_c.mutation.SetHandler(v)
	return _c
}

// SetNillableHandler sets the "handler" field if the given value is not nil.
func (_c *ToolSpecCreate) SetNillableHandler(v *string) *ToolSpecCreate {
	if v != nil {
		_c.SetHandler(*v)
	}
	return _c
}

// SetDefaultTimeoutMs sets the "default_timeout_ms" field.
func (_c *ToolSpecCreate) SetDefaultTimeoutMs(v int64) *ToolSpecCreate {
	_c.mutation.SetDefaultTimeoutMs(v)
	return _c
}

// SetNillableDefaultTimeoutMs sets the "default_timeout_ms" field if the given value is not nil.
func (_c *ToolSpecCreate) SetNillableDefaultTimeoutMs(v *int64) *ToolSpecCreate {
	if v != nil {
		_c.SetDefaultTimeoutMs(*v)
	}
	return _c
}

// SetTotalRuns sets the "total_runs" field.
func (_c *ToolSpecCreate) SetTotalRuns(v int64) *ToolSpecCreate {
	_c.mutation.SetTotalRuns(v)
	return _c
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_c *ToolSpecCreate) SetNillableTotalRuns(v *int64) *ToolSpecCreate {
	if v != nil {
		_c.SetTotalRuns(*v)
	}
	return _c
}

// SetSuccesses sets the "successes" field.
func (_c *ToolSpecCreate) SetSuccesses(v int64) *ToolSpecCreate {
	_c.mutation.SetSuccesses(v)
	return _c
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_c *ToolSpecCreate) SetNillableSuccesses(v *int64) *ToolSpecCreate {
	if v != nil {
		_c.SetSuccesses(*v)
	}
	return _c
}

// SetFailures sets the "failures" field.
func (_c *ToolSpecCreate) SetFailures(v int64) *ToolSpecCreate {
	_c.mutation.SetFailures(v)
	return _c
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_c *ToolSpecCreate) SetNillableFailures(v *int64) *ToolSpecCreate {
	if v != nil {
		_c.SetFailures(*v)
	}
	return _c
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_c *ToolSpecCreate) SetAvgLatencyMs(v float64) *ToolSpecCreate {
	_c.mutation.SetAvgLatencyMs(v)
	return _c
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_c *ToolSpecCreate) SetNillableAvgLatencyMs(v *float64) *ToolSpecCreate {
	if v != nil {
		_c.SetAvgLatencyMs(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ToolSpecCreate) SetVersion(v int) *ToolSpecCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ToolSpecCreate) SetNillableVersion(v *int) *ToolSpecCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolSpecCreate) SetCreatedAt(v time.Time) *ToolSpecCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolSpecCreate) SetNillableCreatedAt(v *time.Time) *ToolSpecCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ToolSpecCreate) SetUpdatedAt(v time.Time) *ToolSpecCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ToolSpecCreate) SetNillableUpdatedAt(v *time.Time) *ToolSpecCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolSpecCreate) SetID(v string) *ToolSpecCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ToolSpecMutation object of the builder.
func (_c *ToolSpecCreate) Mutation() *ToolSpecMutation {
	return _c.mutation
}

// Save creates the ToolSpec in the database.
func (_c *ToolSpecCreate) Save(ctx context.Context) (*ToolSpec, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolSpecCreate) SaveX(ctx context.Context) *ToolSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolSpecCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolSpecCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolSpecCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := toolspec.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DefaultTimeoutMs(); !ok {
		v := toolspec.DefaultDefaultTimeoutMs
		_c.mutation.SetDefaultTimeoutMs(v)
	}
	if _, ok := _c.mutation.TotalRuns(); !ok {
		v := toolspec.DefaultTotalRuns
		_c.mutation.SetTotalRuns(v)
	}
	if _, ok := _c.mutation.Successes(); !ok {
		v := toolspec.DefaultSuccesses
		_c.mutation.SetSuccesses(v)
	}
	if _, ok := _c.mutation.Failures(); !ok {
		v := toolspec.DefaultFailures
		_c.mutation.SetFailures(v)
	}
	if _, ok := _c.mutation.AvgLatencyMs(); !ok {
		v := toolspec.DefaultAvgLatencyMs
		_c.mutation.SetAvgLatencyMs(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := toolspec.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolspec.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := toolspec.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolSpecCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ToolSpec.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ToolSpec.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := toolspec.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolSpec.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputSchema(); !ok {
		return &ValidationError{Name: "input_schema", err: errors.New(`ent: missing required field "ToolSpec.input_schema"`)}
	}
	if _, ok := _c.mutation.DefaultTimeoutMs(); !ok {
		return &ValidationError{Name: "default_timeout_ms", err: errors.New(`ent: missing required field "ToolSpec.default_timeout_ms"`)}
	}
	if _, ok := _c.mutation.TotalRuns(); !ok {
		return &ValidationError{Name: "total_runs", err: errors.New(`ent: missing required field "ToolSpec.total_runs"`)}
	}
	if _, ok := _c.mutation.Successes(); !ok {
		return &ValidationError{Name: "successes", err: errors.New(`ent: missing required field "ToolSpec.successes"`)}
	}
	if _, ok := _c.mutation.Failures(); !ok {
		return &ValidationError{Name: "failures", err: errors.New(`ent: missing required field "ToolSpec.failures"`)}
	}
	if _, ok := _c.mutation.AvgLatencyMs(); !ok {
		return &ValidationError{Name: "avg_latency_ms", err: errors.New(`ent: missing required field "ToolSpec.avg_latency_ms"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ToolSpec.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolSpec.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ToolSpec.updated_at"`)}
	}
	return nil
}

func (_c *ToolSpecCreate) sqlSave(ctx context.Context) (*ToolSpec, error) {
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
			return nil, fmt.Errorf("unexpected ToolSpec.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolSpecCreate) createSpec() (*ToolSpec, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolSpec{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolspec.Table, sqlgraph.NewFieldSpec(toolspec.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(toolspec.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(toolspec.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(toolspec.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.InputSchema(); ok {
		_spec.SetField(toolspec.FieldInputSchema, field.TypeJSON, value)
		_node.InputSchema = value
	}
	if value, ok := _c.mutation.OutputSchema(); ok {
		_spec.SetField(toolspec.FieldOutputSchema, field.TypeJSON, value)
		_node.OutputSchema = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(toolspec.FieldCommand, field.TypeJSON, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Handler(); ok {
		_spec.SetField(toolspec.FieldHandler, field.TypeString, value)
		_node.Handler = value
	}
	if value, ok := _c.mutation.DefaultTimeoutMs(); ok {
		_spec.SetField(toolspec.FieldDefaultTimeoutMs, field.TypeInt64, value)
		_node.DefaultTimeoutMs = value
	}
	if value, ok := _c.mutation.TotalRuns(); ok {
		_spec.SetField(toolspec.FieldTotalRuns, field.TypeInt64, value)
		_node.TotalRuns = value
	}
	if value, ok := _c.mutation.Successes(); ok {
		_spec.SetField(toolspec.FieldSuccesses, field.TypeInt64, value)
		_node.Successes = value
	}
	if value, ok := _c.mutation.Failures(); ok {
		_spec.SetField(toolspec.FieldFailures, field.TypeInt64, value)
		_node.Failures = value
	}
	if value, ok := _c.mutation.AvgLatencyMs(); ok {
		_spec.SetField(toolspec.FieldAvgLatencyMs, field.TypeFloat64, value)
		_node.AvgLatencyMs = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(toolspec.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolspec.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(toolspec.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ToolSpecCreateBulk is the builder for creating many ToolSpec entities in bulk.
type ToolSpecCreateBulk struct {
	config
	err      error
	builders []*ToolSpecCreate
}

// Save creates the ToolSpec entities in the database.
func (_c *ToolSpecCreateBulk) Save(ctx context.Context) ([]*ToolSpec, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolSpec, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolSpecMutation)
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
func (_c *ToolSpecCreateBulk) SaveX(ctx context.Context) []*ToolSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolSpecCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolSpecCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
