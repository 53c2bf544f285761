// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/executionevent"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ExecutionEventUpdate is the builder for updating ExecutionEvent entities.
type ExecutionEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionEventMutation
}

// Where appends a list predicates to the ExecutionEventUpdate builder.
func (_u *ExecutionEventUpdate) Where(ps ...predicate.ExecutionEvent) *ExecutionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ExecutionEventMutation object of the builder.
func (_u *ExecutionEventUpdate) Mutation() *ExecutionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionEventUpdate) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionEvent.workflow"`)
	}
	return nil
}

func (_u *ExecutionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionevent.Table, executionevent.Columns, sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InputSummaryCleared() {
		_spec.ClearField(executionevent.FieldInputSummary, field.TypeString)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(executionevent.FieldOutputSummary, field.TypeString)
	}
	if _u.mutation.ReasonCodeCleared() {
		_spec.ClearField(executionevent.FieldReasonCode, field.TypeString)
	}
	if _u.mutation.ParentEventIDCleared() {
		_spec.ClearField(executionevent.FieldParentEventID, field.TypeString)
	}
	if _u.mutation.PromptIDCleared() {
		_spec.ClearField(executionevent.FieldPromptID, field.TypeString)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(executionevent.FieldPromptVersion, field.TypeInt)
	}
	if _u.mutation.EventMetadataCleared() {
		_spec.ClearField(executionevent.FieldEventMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionEventUpdateOne is the builder for updating a single ExecutionEvent entity.
type ExecutionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionEventMutation
}

// Mutation returns the ExecutionEventMutation object of the builder.
func (_u *ExecutionEventUpdateOne) Mutation() *ExecutionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionEventUpdate builder.
func (_u *ExecutionEventUpdateOne) Where(ps ...predicate.ExecutionEvent) *ExecutionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionEventUpdateOne) Select(field string, fields ...string) *ExecutionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionEvent entity.
func (_u *ExecutionEventUpdateOne) Save(ctx context.Context) (*ExecutionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionEventUpdateOne) SaveX(ctx context.Context) *ExecutionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionEventUpdateOne) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionEvent.workflow"`)
	}
	return nil
}

func (_u *ExecutionEventUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionevent.Table, executionevent.Columns, sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionevent.FieldID)
		for _, f := range fields {
			if !executionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionevent.FieldID {
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
	if _u.mutation.InputSummaryCleared() {
		_spec.ClearField(executionevent.FieldInputSummary, field.TypeString)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(executionevent.FieldOutputSummary, field.TypeString)
	}
	if _u.mutation.ReasonCodeCleared() {
		_spec.ClearField(executionevent.FieldReasonCode, field.TypeString)
	}
	if _u.mutation.ParentEventIDCleared() {
		_spec.ClearField(executionevent.FieldParentEventID, field.TypeString)
	}
	if _u.mutation.PromptIDCleared() {
		_spec.ClearField(executionevent.FieldPromptID, field.TypeString)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(executionevent.FieldPromptVersion, field.TypeInt)
	}
	if _u.mutation.EventMetadataCleared() {
		_spec.ClearField(executionevent.FieldEventMetadata, field.TypeJSON)
	}
	_node = &ExecutionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
