// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/modelendpoint"
)

// ModelEndpointCreate is the builder for creating a ModelEndpoint entity.
type ModelEndpointCreate struct {
	config
	mutation *ModelEndpointMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ModelEndpointCreate) SetName(v string) *ModelEndpointCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *ModelEndpointCreate) SetURL(v string) *ModelEndpointCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ModelEndpointCreate) SetModel(v string) *ModelEndpointCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *ModelEndpointCreate) SetCapabilities(v []string) *ModelEndpointCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (_c *ModelEndpointCreate) SetMaxConcurrent(v int) *ModelEndpointCreate {
	_c.mutation.SetMaxConcurrent(v)
	return _c
}

// SetNillableMaxConcurrent sets the "max_concurrent" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillableMaxConcurrent(v *int) *ModelEndpointCreate {
	if v != nil {
		_c.SetMaxConcurrent(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ModelEndpointCreate) SetPriority(v int) *ModelEndpointCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillablePriority(v *int) *ModelEndpointCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ModelEndpointCreate) SetStatus(v modelendpoint.Status) *ModelEndpointCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillableStatus(v *modelendpoint.Status) *ModelEndpointCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetHealthy sets the "healthy" field.
func (_c *ModelEndpointCreate) SetHealthy(v bool) *ModelEndpointCreate {
	_c.mutation.SetHealthy(v)
	return _c
}

// SetNillableHealthy sets the "healthy" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillableHealthy(v *bool) *ModelEndpointCreate {
	if v != nil {
		_c.SetHealthy(*v)
	}
	return _c
}

// SetLastHealthCheck sets the "last_health_check" field.
func (_c *ModelEndpointCreate) SetLastHealthCheck(v time.Time) *ModelEndpointCreate {
	_c.mutation.SetLastHealthCheck(v)
	return _c
}

// SetNillableLastHealthCheck sets the "last_health_check" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillableLastHealthCheck(v *time.Time) *ModelEndpointCreate {
	if v != nil {
		_c.SetLastHealthCheck(*v)
	}
	return _c
}

// SetTotalRequests sets the "total_requests" field.
func (_c *ModelEndpointCreate) SetTotalRequests(v int64) *ModelEndpointCreate {
	_c.mutation.SetTotalRequests(v)
	return _c
}

// SetNillableTotalRequests sets the "total_requests" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillableTotalRequests(v *int64) *ModelEndpointCreate {
	if v != nil {
		_c.SetTotalRequests(*v)
	}
	return _c
}

// SetSuccesses sets the "successes" field.
func (_c *ModelEndpointCreate) SetSuccesses(v int64) *ModelEndpointCreate {
	_c.mutation.SetSuccesses(v)
	return _c
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillableSuccesses(v *int64) *ModelEndpointCreate {
	if v != nil {
		_c.SetSuccesses(*v)
	}
	return _c
}

// SetFailures sets the "failures" field.
func (_c *ModelEndpointCreate) SetFailures(v int64) *ModelEndpointCreate {
	_c.mutation.SetFailures(v)
	return _c
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillableFailures(v *int64) *ModelEndpointCreate {
	if v != nil {
		_c.SetFailures(*v)
	}
	return _c
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_c *ModelEndpointCreate) SetAvgLatencyMs(v float64) *ModelEndpointCreate {
	_c.mutation.SetAvgLatencyMs(v)
	return _c
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillableAvgLatencyMs(v *float64) *ModelEndpointCreate {
	if v != nil {
		_c.SetAvgLatencyMs(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ModelEndpointCreate) SetVersion(v int) *ModelEndpointCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillableVersion(v *int) *ModelEndpointCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelEndpointCreate) SetCreatedAt(v time.Time) *ModelEndpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillableCreatedAt(v *time.Time) *ModelEndpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ModelEndpointCreate) SetUpdatedAt(v time.Time) *ModelEndpointCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ModelEndpointCreate) SetNillableUpdatedAt(v *time.Time) *ModelEndpointCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelEndpointCreate) SetID(v string) *ModelEndpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModelEndpointMutation object of the builder.
func (_c *ModelEndpointCreate) Mutation() *ModelEndpointMutation {
	return _c.mutation
}

// Save creates the ModelEndpoint in the database.
func (_c *ModelEndpointCreate) Save(ctx context.Context) (*ModelEndpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelEndpointCreate) SaveX(ctx context.Context) *ModelEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelEndpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelEndpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelEndpointCreate) defaults() {
	if _, ok := _c.mutation.MaxConcurrent(); !ok {
		v := modelendpoint.DefaultMaxConcurrent
		_c.mutation.SetMaxConcurrent(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := modelendpoint.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := modelendpoint.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Healthy(); !ok {
		v := modelendpoint.DefaultHealthy
		_c.mutation.SetHealthy(v)
	}
	if _, ok := _c.mutation.TotalRequests(); !ok {
		v := modelendpoint.DefaultTotalRequests
		_c.mutation.SetTotalRequests(v)
	}
	if _, ok := _c.mutation.Successes(); !ok {
		v := modelendpoint.DefaultSuccesses
		_c.mutation.SetSuccesses(v)
	}
	if _, ok := _c.mutation.Failures(); !ok {
		v := modelendpoint.DefaultFailures
		_c.mutation.SetFailures(v)
	}
	if _, ok := _c.mutation.AvgLatencyMs(); !ok {
		v := modelendpoint.DefaultAvgLatencyMs
		_c.mutation.SetAvgLatencyMs(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := modelendpoint.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelendpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := modelendpoint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelEndpointCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ModelEndpoint.name"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "ModelEndpoint.url"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ModelEndpoint.model"`)}
	}
	if _, ok := _c.mutation.Capabilities(); !ok {
		return &ValidationError{Name: "capabilities", err: errors.New(`ent: missing required field "ModelEndpoint.capabilities"`)}
	}
	if _, ok := _c.mutation.MaxConcurrent(); !ok {
		return &ValidationError{Name: "max_concurrent", err: errors.New(`ent: missing required field "ModelEndpoint.max_concurrent"`)}
	}
	if v, ok := _c.mutation.MaxConcurrent(); ok {
		if err := modelendpoint.MaxConcurrentValidator(v); err != nil {
			return &ValidationError{Name: "max_concurrent", err: fmt.Errorf(`ent: validator failed for field "ModelEndpoint.max_concurrent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "ModelEndpoint.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ModelEndpoint.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := modelendpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModelEndpoint.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Healthy(); !ok {
		return &ValidationError{Name: "healthy", err: errors.New(`ent: missing required field "ModelEndpoint.healthy"`)}
	}
	if _, ok := _c.mutation.TotalRequests(); !ok {
		return &ValidationError{Name: "total_requests", err: errors.New(`ent: missing required field "ModelEndpoint.total_requests"`)}
	}
	if _, ok := _c.mutation.Successes(); !ok {
		return &ValidationError{Name: "successes", err: errors.New(`ent: missing required field "ModelEndpoint.successes"`)}
	}
	if _, ok := _c.mutation.Failures(); !ok {
		return &ValidationError{Name: "failures", err: errors.New(`ent: missing required field "ModelEndpoint.failures"`)}
	}
	if _, ok := _c.mutation.AvgLatencyMs(); !ok {
		return &ValidationError{Name: "avg_latency_ms", err: errors.New(`ent: missing required field "ModelEndpoint.avg_latency_ms"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ModelEndpoint.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelEndpoint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModelEndpoint.updated_at"`)}
	}
	return nil
}

func (_c *ModelEndpointCreate) sqlSave(ctx context.Context) (*ModelEndpoint, error) {
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
			return nil, fmt.Errorf("unexpected ModelEndpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelEndpointCreate) createSpec() (*ModelEndpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelEndpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelendpoint.Table, sqlgraph.NewFieldSpec(modelendpoint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(modelendpoint.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(modelendpoint.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(modelendpoint.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(modelendpoint.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.MaxConcurrent(); ok {
		_spec.SetField(modelendpoint.FieldMaxConcurrent, field.TypeInt, value)
		_node.MaxConcurrent = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(modelendpoint.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(modelendpoint.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Healthy(); ok {
		_spec.SetField(modelendpoint.FieldHealthy, field.TypeBool, value)
		_node.Healthy = value
	}
	if value, ok := _c.mutation.LastHealthCheck(); ok {
		_spec.SetField(modelendpoint.FieldLastHealthCheck, field.TypeTime, value)
		_node.LastHealthCheck = &value
	}
	if value, ok := _c.mutation.TotalRequests(); ok {
		_spec.SetField(modelendpoint.FieldTotalRequests, field.TypeInt64, value)
		_node.TotalRequests = value
	}
	if value, ok := _c.mutation.Successes(); ok {
		_spec.SetField(modelendpoint.FieldSuccesses, field.TypeInt64, value)
		_node.Successes = value
	}
	if value, ok := _c.mutation.Failures(); ok {
		_spec.SetField(modelendpoint.FieldFailures, field.TypeInt64, value)
		_node.Failures = value
	}
	if value, ok := _c.mutation.AvgLatencyMs(); ok {
		_spec.SetField(modelendpoint.FieldAvgLatencyMs, field.TypeFloat64, value)
		_node.AvgLatencyMs = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(modelendpoint.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelendpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(modelendpoint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ModelEndpointCreateBulk is the builder for creating many ModelEndpoint entities in bulk.
type ModelEndpointCreateBulk struct {
	config
	err      error
	builders []*ModelEndpointCreate
}

// Save creates the ModelEndpoint entities in the database.
func (_c *ModelEndpointCreateBulk) Save(ctx context.Context) ([]*ModelEndpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelEndpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelEndpointMutation)
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
func (_c *ModelEndpointCreateBulk) SaveX(ctx context.Context) []*ModelEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelEndpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelEndpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
