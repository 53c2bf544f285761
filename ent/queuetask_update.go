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
	"github.com/codeready-toolchain/maestro/ent/queuetask"
)

// QueueTaskUpdate is the builder for updating QueueTask entities.
type QueueTaskUpdate struct {
	config
	hooks    []Hook
	mutation *QueueTaskMutation
}

// Where appends a list predicates to the QueueTaskUpdate builder.
func (_u *QueueTaskUpdate) Where(ps ...predicate.QueueTask) *QueueTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QueueTaskUpdate) SetPriority(v int) *QueueTaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillablePriority(v *int) *QueueTaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueTaskUpdate) AddPriority(v int) *QueueTaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueueTaskUpdate) SetAttempts(v int) *QueueTaskUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableAttempts(v *int) *QueueTaskUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueueTaskUpdate) AddAttempts(v int) *QueueTaskUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *QueueTaskUpdate) SetMaxAttempts(v int) *QueueTaskUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableMaxAttempts(v *int) *QueueTaskUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *QueueTaskUpdate) AddMaxAttempts(v int) *QueueTaskUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetState sets the "state" field.
func (_u *QueueTaskUpdate) SetState(v queuetask.State) *QueueTaskUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableState(v *queuetask.State) *QueueTaskUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *QueueTaskUpdate) SetLeaseOwner(v string) *QueueTaskUpdate {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableLeaseOwner(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *QueueTaskUpdate) ClearLeaseOwner() *QueueTaskUpdate {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *QueueTaskUpdate) SetLeaseExpiresAt(v time.Time) *QueueTaskUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableLeaseExpiresAt(v *time.Time) *QueueTaskUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *QueueTaskUpdate) ClearLeaseExpiresAt() *QueueTaskUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetLeasedAt sets the "leased_at" field.
func (_u *QueueTaskUpdate) SetLeasedAt(v time.Time) *QueueTaskUpdate {
	_u.mutation.SetLeasedAt(v)
	return _u
}

// SetNillableLeasedAt sets the "leased_at" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableLeasedAt(v *time.Time) *QueueTaskUpdate {
	if v != nil {
		_u.SetLeasedAt(*v)
	}
	return _u
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (_u *QueueTaskUpdate) ClearLeasedAt() *QueueTaskUpdate {
	_u.mutation.ClearLeasedAt()
	return _u
}

// SetNextVisibleAt sets the "next_visible_at" field.
func (_u *QueueTaskUpdate) SetNextVisibleAt(v time.Time) *QueueTaskUpdate {
	_u.mutation.SetNextVisibleAt(v)
	return _u
}

// SetNillableNextVisibleAt sets the "next_visible_at" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableNextVisibleAt(v *time.Time) *QueueTaskUpdate {
	if v != nil {
		_u.SetNextVisibleAt(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *QueueTaskUpdate) SetLastError(v string) *QueueTaskUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableLastError(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *QueueTaskUpdate) ClearLastError() *QueueTaskUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueTaskUpdate) SetUpdatedAt(v time.Time) *QueueTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_u *QueueTaskUpdate) Mutation() *QueueTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queuetask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueTaskUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := queuetask.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "QueueTask.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := queuetask.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "QueueTask.state": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuetask.Table, queuetask.Columns, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queuetask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queuetask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(queuetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(queuetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(queuetask.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(queuetask.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(queuetask.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(queuetask.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(queuetask.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LeasedAt(); ok {
		_spec.SetField(queuetask.FieldLeasedAt, field.TypeTime, value)
	}
	if _u.mutation.LeasedAtCleared() {
		_spec.ClearField(queuetask.FieldLeasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextVisibleAt(); ok {
		_spec.SetField(queuetask.FieldNextVisibleAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(queuetask.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(queuetask.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuetask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueTaskUpdateOne is the builder for updating a single QueueTask entity.
type QueueTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueTaskMutation
}

// SetPriority sets the "priority" field.
func (_u *QueueTaskUpdateOne) SetPriority(v int) *QueueTaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillablePriority(v *int) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueTaskUpdateOne) AddPriority(v int) *QueueTaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueueTaskUpdateOne) SetAttempts(v int) *QueueTaskUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableAttempts(v *int) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueueTaskUpdateOne) AddAttempts(v int) *QueueTaskUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *QueueTaskUpdateOne) SetMaxAttempts(v int) *QueueTaskUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableMaxAttempts(v *int) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *QueueTaskUpdateOne) AddMaxAttempts(v int) *QueueTaskUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetState sets the "state" field.
func (_u *QueueTaskUpdateOne) SetState(v queuetask.State) *QueueTaskUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableState(v *queuetask.State) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *QueueTaskUpdateOne) SetLeaseOwner(v string) *QueueTaskUpdateOne {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableLeaseOwner(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *QueueTaskUpdateOne) ClearLeaseOwner() *QueueTaskUpdateOne {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *QueueTaskUpdateOne) SetLeaseExpiresAt(v time.Time) *QueueTaskUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *QueueTaskUpdateOne) ClearLeaseExpiresAt() *QueueTaskUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetLeasedAt sets the "leased_at" field.
func (_u *QueueTaskUpdateOne) SetLeasedAt(v time.Time) *QueueTaskUpdateOne {
	_u.mutation.SetLeasedAt(v)
	return _u
}

// SetNillableLeasedAt sets the "leased_at" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableLeasedAt(v *time.Time) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetLeasedAt(*v)
	}
	return _u
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (_u *QueueTaskUpdateOne) ClearLeasedAt() *QueueTaskUpdateOne {
	_u.mutation.ClearLeasedAt()
	return _u
}

// SetNextVisibleAt sets the "next_visible_at" field.
func (_u *QueueTaskUpdateOne) SetNextVisibleAt(v time.Time) *QueueTaskUpdateOne {
	_u.mutation.SetNextVisibleAt(v)
	return _u
}

// SetNillableNextVisibleAt sets the "next_visible_at" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableNextVisibleAt(v *time.Time) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetNextVisibleAt(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *QueueTaskUpdateOne) SetLastError(v string) *QueueTaskUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableLastError(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *QueueTaskUpdateOne) ClearLastError() *QueueTaskUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueTaskUpdateOne) SetUpdatedAt(v time.Time) *QueueTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_u *QueueTaskUpdateOne) Mutation() *QueueTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueTaskUpdate builder.
func (_u *QueueTaskUpdateOne) Where(ps ...predicate.QueueTask) *QueueTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueTaskUpdateOne) Select(field string, fields ...string) *QueueTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueTask entity.
func (_u *QueueTaskUpdateOne) Save(ctx context.Context) (*QueueTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueTaskUpdateOne) SaveX(ctx context.Context) *QueueTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queuetask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := queuetask.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "QueueTask.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := queuetask.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "QueueTask.state": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueTaskUpdateOne) sqlSave(ctx context.Context) (_node *QueueTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuetask.Table, queuetask.Columns, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuetask.FieldID)
		for _, f := range fields {
			if !queuetask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuetask.FieldID {
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
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queuetask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queuetask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(queuetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(queuetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(queuetask.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(queuetask.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(queuetask.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(queuetask.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(queuetask.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LeasedAt(); ok {
		_spec.SetField(queuetask.FieldLeasedAt, field.TypeTime, value)
	}
	if _u.mutation.LeasedAtCleared() {
		_spec.ClearField(queuetask.FieldLeasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextVisibleAt(); ok {
		_spec.SetField(queuetask.FieldNextVisibleAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(queuetask.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(queuetask.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuetask.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QueueTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
