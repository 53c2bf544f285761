// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/executionevent"
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// ExecutionEventCreate is the builder for creating a ExecutionEvent entity.
type ExecutionEventCreate struct {
	config
	mutation *ExecutionEventMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *ExecutionEventCreate) SetWorkflowID(v string) *ExecutionEventCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExecutionEventCreate) SetSessionID(v string) *ExecutionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *ExecutionEventCreate) SetSequence(v int64) *ExecutionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *ExecutionEventCreate) SetEventType(v executionevent.EventType) *ExecutionEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ExecutionEventCreate) SetStage(v executionevent.Stage) *ExecutionEventCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetComponentRole sets the "component_role" field.
func (_c *ExecutionEventCreate) SetComponentRole(v string) *ExecutionEventCreate {
	_c.mutation.SetComponentRole(v)
	return _c
}

// SetComponentName sets the "component_name" field.
func (_c *ExecutionEventCreate) SetComponentName(v string) *ExecutionEventCreate {
	_c.mutation.SetComponentName(v)
	return _c
}

// SetDecisionSource sets the "decision_source" field.
func (_c *ExecutionEventCreate) SetDecisionSource(v executionevent.DecisionSource) *ExecutionEventCreate {
	_c.mutation.SetDecisionSource(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionEventCreate) SetStatus(v string) *ExecutionEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetInputSummary sets the "input_summary" field.
func (_c *ExecutionEventCreate) SetInputSummary(v string) *ExecutionEventCreate {
	_c.mutation.SetInputSummary(v)
	return _c
}

// SetNillableInputSummary sets the "input_summary" field if the given value is not nil.
func (_c *ExecutionEventCreate) SetNillableInputSummary(v *string) *ExecutionEventCreate {
	if v != nil {
		_c.SetInputSummary(*v)
	}
	return _c
}

// SetOutputSummary sets the "output_summary" field.
func (_c *ExecutionEventCreate) SetOutputSummary(v string) *ExecutionEventCreate {
	_c.mutation.SetOutputSummary(v)
	return _c
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_c *ExecutionEventCreate) SetNillableOutputSummary(v *string) *ExecutionEventCreate {
	if v != nil {
		_c.SetOutputSummary(*v)
	}
	return _c
}

// SetReasonCode sets the "reason_code" field.
func (_c *ExecutionEventCreate) SetReasonCode(v string) *ExecutionEventCreate {
	_c.mutation.SetReasonCode(v)
	return _c
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_c *ExecutionEventCreate) SetNillableReasonCode(v *string) *ExecutionEventCreate {
	if v != nil {
		_c.SetReasonCode(*v)
	}
	return _c
}

// SetParentEventID sets the "parent_event_id" field.
func (_c *ExecutionEventCreate) SetParentEventID(v string) *ExecutionEventCreate {
	_c.mutation.SetParentEventID(v)
	return _c
}

// SetNillableParentEventID sets the "parent_event_id" field if the given value is not nil.
func (_c *ExecutionEventCreate) SetNillableParentEventID(v *string) *ExecutionEventCreate {
	if v != nil {
		_c.SetParentEventID(*v)
	}
	return _c
}

// SetPromptID sets the "prompt_id" field.
func (_c *ExecutionEventCreate) SetPromptID(v string) *ExecutionEventCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_c *ExecutionEventCreate) SetNillablePromptID(v *string) *ExecutionEventCreate {
	if v != nil {
		_c.SetPromptID(*v)
	}
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *ExecutionEventCreate) SetPromptVersion(v int) *ExecutionEventCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_c *ExecutionEventCreate) SetNillablePromptVersion(v *int) *ExecutionEventCreate {
	if v != nil {
		_c.SetPromptVersion(*v)
	}
	return _c
}

// SetEventMetadata sets the "event_metadata" field.
func (_c *ExecutionEventCreate) SetEventMetadata(v map[string]interface{}) *ExecutionEventCreate {
	_c.mutation.SetEventMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionEventCreate) SetCreatedAt(v time.Time) *ExecutionEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionEventCreate) SetNillableCreatedAt(v *time.Time) *ExecutionEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionEventCreate) SetID(v string) *ExecutionEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *ExecutionEventCreate) SetWorkflow(v *Workflow) *ExecutionEventCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the ExecutionEventMutation object of the builder.
func (_c *ExecutionEventCreate) Mutation() *ExecutionEventMutation {
	return _c.mutation
}

// Save creates the ExecutionEvent in the database.
func (_c *ExecutionEventCreate) Save(ctx context.Context) (*ExecutionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionEventCreate) SaveX(ctx context.Context) *ExecutionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionEventCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "ExecutionEvent.workflow_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExecutionEvent.session_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExecutionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ExecutionEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := executionevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ExecutionEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ExecutionEvent.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := executionevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ExecutionEvent.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ComponentRole(); !ok {
		return &ValidationError{Name: "component_role", err: errors.New(`ent: missing required field "ExecutionEvent.component_role"`)}
	}
	if _, ok := _c.mutation.ComponentName(); !ok {
		return &ValidationError{Name: "component_name", err: errors.New(`ent: missing required field "ExecutionEvent.component_name"`)}
	}
	if _, ok := _c.mutation.DecisionSource(); !ok {
		return &ValidationError{Name: "decision_source", err: errors.New(`ent: missing required field "ExecutionEvent.decision_source"`)}
	}
	if v, ok := _c.mutation.DecisionSource(); ok {
		if err := executionevent.DecisionSourceValidator(v); err != nil {
			return &ValidationError{Name: "decision_source", err: fmt.Errorf(`ent: validator failed for field "ExecutionEvent.decision_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionEvent.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionEvent.created_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "ExecutionEvent.workflow"`)}
	}
	return nil
}

func (_c *ExecutionEventCreate) sqlSave(ctx context.Context) (*ExecutionEvent, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionEventCreate) createSpec() (*ExecutionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionevent.Table, sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(executionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(executionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(executionevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(executionevent.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.ComponentRole(); ok {
		_spec.SetField(executionevent.FieldComponentRole, field.TypeString, value)
		_node.ComponentRole = value
	}
	if value, ok := _c.mutation.ComponentName(); ok {
		_spec.SetField(executionevent.FieldComponentName, field.TypeString, value)
		_node.ComponentName = value
	}
	if value, ok := _c.mutation.DecisionSource(); ok {
		_spec.SetField(executionevent.FieldDecisionSource, field.TypeEnum, value)
		_node.DecisionSource = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executionevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InputSummary(); ok {
		_spec.SetField(executionevent.FieldInputSummary, field.TypeString, value)
		_node.InputSummary = value
	}
	if value, ok := _c.mutation.OutputSummary(); ok {
		_spec.SetField(executionevent.FieldOutputSummary, field.TypeString, value)
		_node.OutputSummary = value
	}
	if value, ok := _c.mutation.ReasonCode(); ok {
		_spec.SetField(executionevent.FieldReasonCode, field.TypeString, value)
		_node.ReasonCode = value
	}
	if value, ok := _c.mutation.ParentEventID(); ok {
		_spec.SetField(executionevent.FieldParentEventID, field.TypeString, value)
		_node.ParentEventID = &value
	}
	if value, ok := _c.mutation.PromptID(); ok {
		_spec.SetField(executionevent.FieldPromptID, field.TypeString, value)
		_node.PromptID = &value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(executionevent.FieldPromptVersion, field.TypeInt, value)
		_node.PromptVersion = &value
	}
	if value, ok := _c.mutation.EventMetadata(); ok {
		_spec.SetField(executionevent.FieldEventMetadata, field.TypeJSON, value)
		_node.EventMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionevent.WorkflowTable,
			Columns: []string{executionevent.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionEventCreateBulk is the builder for creating many ExecutionEvent entities in bulk.
type ExecutionEventCreateBulk struct {
	config
	err      error
	builders []*ExecutionEventCreate
}

// Save creates the ExecutionEvent entities in the database.
func (_c *ExecutionEventCreateBulk) Save(ctx context.Context) ([]*ExecutionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionEventMutation)
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
func (_c *ExecutionEventCreateBulk) SaveX(ctx context.Context) []*ExecutionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
