// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/queuetask"
)

// QueueTaskCreate is the builder for creating a QueueTask entity.
type QueueTaskCreate struct {
	config
	mutation *QueueTaskMutation
	hooks    []Hook
}

// SetQueueID sets the "queue_id" field.
func (_c *QueueTaskCreate) SetQueueID(v string) *QueueTaskCreate {
	_c.mutation.SetQueueID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *QueueTaskCreate) SetKind(v string) *QueueTaskCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *QueueTaskCreate) SetPriority(v int) *QueueTaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillablePriority(v *int) *QueueTaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QueueTaskCreate) SetPayload(v map[string]interface{}) *QueueTaskCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *QueueTaskCreate) SetAttempts(v int) *QueueTaskCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableAttempts(v *int) *QueueTaskCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *QueueTaskCreate) SetMaxAttempts(v int) *QueueTaskCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableMaxAttempts(v *int) *QueueTaskCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *QueueTaskCreate) SetState(v queuetask.State) *QueueTaskCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableState(v *queuetask.State) *QueueTaskCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetLeaseOwner sets the "lease_owner" field.
func (_c *QueueTaskCreate) SetLeaseOwner(v string) *QueueTaskCreate {
	_c.mutation.SetLeaseOwner(v)
	return _c
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableLeaseOwner(v *string) *QueueTaskCreate {
	if v != nil {
		_c.SetLeaseOwner(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *QueueTaskCreate) SetLeaseExpiresAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableLeaseExpiresAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetLeasedAt sets the "leased_at" field.
func (_c *QueueTaskCreate) SetLeasedAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetLeasedAt(v)
	return _c
}

// SetNillableLeasedAt sets the "leased_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableLeasedAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetLeasedAt(*v)
	}
	return _c
}

// SetNextVisibleAt sets the "next_visible_at" field.
func (_c *QueueTaskCreate) SetNextVisibleAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetNextVisibleAt(v)
	return _c
}

// SetNillableNextVisibleAt sets the "next_visible_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableNextVisibleAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetNextVisibleAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *QueueTaskCreate) SetLastError(v string) *QueueTaskCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableLastError(v *string) *QueueTaskCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_c *QueueTaskCreate) SetEnqueuedAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetEnqueuedAt(v)
	return _c
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableEnqueuedAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetEnqueuedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QueueTaskCreate) SetUpdatedAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableUpdatedAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueTaskCreate) SetID(v string) *QueueTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_c *QueueTaskCreate) Mutation() *QueueTaskMutation {
	return _c.mutation
}

// Save creates the QueueTask in the database.
func (_c *QueueTaskCreate) Save(ctx context.Context) (*QueueTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueTaskCreate) SaveX(ctx context.Context) *QueueTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueTaskCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := queuetask.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := queuetask.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := queuetask.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := queuetask.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.NextVisibleAt(); !ok {
		v := queuetask.DefaultNextVisibleAt()
		_c.mutation.SetNextVisibleAt(v)
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		v := queuetask.DefaultEnqueuedAt()
		_c.mutation.SetEnqueuedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := queuetask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueTaskCreate) check() error {
	if _, ok := _c.mutation.QueueID(); !ok {
		return &ValidationError{Name: "queue_id", err: errors.New(`ent: missing required field "QueueTask.queue_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "QueueTask.kind"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "QueueTask.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := queuetask.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "QueueTask.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "QueueTask.payload"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "QueueTask.attempts"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "QueueTask.max_attempts"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "QueueTask.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := queuetask.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "QueueTask.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextVisibleAt(); !ok {
		return &ValidationError{Name: "next_visible_at", err: errors.New(`ent: missing required field "QueueTask.next_visible_at"`)}
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		return &ValidationError{Name: "enqueued_at", err: errors.New(`ent: missing required field "QueueTask.enqueued_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QueueTask.updated_at"`)}
	}
	return nil
}

func (_c *QueueTaskCreate) sqlSave(ctx context.Context) (*QueueTask, error) {
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
			return nil, fmt.Errorf("unexpected QueueTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueTaskCreate) createSpec() (*QueueTask, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuetask.Table, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QueueID(); ok {
		_spec.SetField(queuetask.FieldQueueID, field.TypeString, value)
		_node.QueueID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(queuetask.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(queuetask.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(queuetask.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(queuetask.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(queuetask.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(queuetask.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.LeaseOwner(); ok {
		_spec.SetField(queuetask.FieldLeaseOwner, field.TypeString, value)
		_node.LeaseOwner = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(queuetask.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.LeasedAt(); ok {
		_spec.SetField(queuetask.FieldLeasedAt, field.TypeTime, value)
		_node.LeasedAt = &value
	}
	if value, ok := _c.mutation.NextVisibleAt(); ok {
		_spec.SetField(queuetask.FieldNextVisibleAt, field.TypeTime, value)
		_node.NextVisibleAt = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(queuetask.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.EnqueuedAt(); ok {
		_spec.SetField(queuetask.FieldEnqueuedAt, field.TypeTime, value)
		_node.EnqueuedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(queuetask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// QueueTaskCreateBulk is the builder for creating many QueueTask entities in bulk.
type QueueTaskCreateBulk struct {
	config
	err      error
	builders []*QueueTaskCreate
}

// Save creates the QueueTask entities in the database.
func (_c *QueueTaskCreateBulk) Save(ctx context.Context) ([]*QueueTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueTaskMutation)
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
func (_c *QueueTaskCreateBulk) SaveX(ctx context.Context) []*QueueTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
