// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/approvalrequest"
	"github.com/codeready-toolchain/maestro/ent/executionevent"
	"github.com/codeready-toolchain/maestro/ent/plan"
	"github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// WorkflowCreate is the builder for creating a Workflow entity.
type WorkflowCreate struct {
	config
	mutation *WorkflowMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *WorkflowCreate) SetSessionID(v string) *WorkflowCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRequestType sets the "request_type" field.
func (_c *WorkflowCreate) SetRequestType(v workflow.RequestType) *WorkflowCreate {
	_c.mutation.SetRequestType(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *WorkflowCreate) SetMessage(v string) *WorkflowCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *WorkflowCreate) SetSystemPrompt(v string) *WorkflowCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableSystemPrompt(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetModelOverride sets the "model_override" field.
func (_c *WorkflowCreate) SetModelOverride(v string) *WorkflowCreate {
	_c.mutation.SetModelOverride(v)
	return _c
}

// SetNillableModelOverride sets the "model_override" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableModelOverride(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetModelOverride(*v)
	}
	return _c
}

// SetServerOverride sets the "server_override" field.
func (_c *WorkflowCreate) SetServerOverride(v string) *WorkflowCreate {
	_c.mutation.SetServerOverride(v)
	return _c
}

// SetNillableServerOverride sets the "server_override" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableServerOverride(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetServerOverride(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *WorkflowCreate) SetTemperature(v float64) *WorkflowCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableTemperature(v *float64) *WorkflowCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *WorkflowCreate) SetCurrentStage(v workflow.CurrentStage) *WorkflowCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCurrentStage(v *workflow.CurrentStage) *WorkflowCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowCreate) SetStatus(v workflow.Status) *WorkflowCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableStatus(v *workflow.Status) *WorkflowCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResponse sets the "response" field.
func (_c *WorkflowCreate) SetResponse(v string) *WorkflowCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableResponse(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetResponse(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *WorkflowCreate) SetReasoning(v string) *WorkflowCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableReasoning(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *WorkflowCreate) SetModelUsed(v string) *WorkflowCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableModelUsed(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *WorkflowCreate) SetErrorKind(v string) *WorkflowCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableErrorKind(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetReasonCode sets the "reason_code" field.
func (_c *WorkflowCreate) SetReasonCode(v string) *WorkflowCreate {
	_c.mutation.SetReasonCode(v)
	return _c
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableReasonCode(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetReasonCode(*v)
	}
	return _c
}

// SetFailingEventID sets the "failing_event_id" field.
func (_c *WorkflowCreate) SetFailingEventID(v string) *WorkflowCreate {
	_c.mutation.SetFailingEventID(v)
	return _c
}

// SetNillableFailingEventID sets the "failing_event_id" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableFailingEventID(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetFailingEventID(*v)
	}
	return _c
}

// SetEventSequence sets the "event_sequence" field.
func (_c *WorkflowCreate) SetEventSequence(v int64) *WorkflowCreate {
	_c.mutation.SetEventSequence(v)
	return _c
}

// SetNillableEventSequence sets the "event_sequence" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableEventSequence(v *int64) *WorkflowCreate {
	if v != nil {
		_c.SetEventSequence(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *WorkflowCreate) SetWorkerID(v string) *WorkflowCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableWorkerID(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *WorkflowCreate) SetLastHeartbeatAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *WorkflowCreate) SetMetadata(v map[string]interface{}) *WorkflowCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowCreate) SetCreatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCreatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowCreate) SetUpdatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowCreate) SetCompletedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCompletedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *WorkflowCreate) SetDeletedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableDeletedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowCreate) SetID(v string) *WorkflowCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddPlanIDs adds the "plans" edge to the Plan entity by IDs.
func (_c *WorkflowCreate) AddPlanIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddPlanIDs(ids...)
	return _c
}

// AddPlans adds the "plans" edges to the Plan entity.
func (_c *WorkflowCreate) AddPlans(v ...*Plan) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPlanIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_c *WorkflowCreate) AddStepIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the Step entity.
func (_c *WorkflowCreate) AddSteps(v ...*Step) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddExecutionEventIDs adds the "execution_events" edge to the ExecutionEvent entity by IDs.
func (_c *WorkflowCreate) AddExecutionEventIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddExecutionEventIDs(ids...)
	return _c
}

// AddExecutionEvents adds the "execution_events" edges to the ExecutionEvent entity.
func (_c *WorkflowCreate) AddExecutionEvents(v ...*ExecutionEvent) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionEventIDs(ids...)
}

// AddApprovalRequestIDs adds the "approval_requests" edge to the ApprovalRequest entity by IDs.
func (_c *WorkflowCreate) AddApprovalRequestIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddApprovalRequestIDs(ids...)
	return _c
}

// AddApprovalRequests adds the "approval_requests" edges to the ApprovalRequest entity.
func (_c *WorkflowCreate) AddApprovalRequests(v ...*ApprovalRequest) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApprovalRequestIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_c *WorkflowCreate) Mutation() *WorkflowMutation {
	return _c.mutation
}

// Save creates the Workflow in the database.
func (_c *WorkflowCreate) Save(ctx context.Context) (*Workflow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowCreate) SaveX(ctx context.Context) *Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowCreate) defaults() {
	if _, ok := _c.mutation.CurrentStage(); !ok {
		v := workflow.DefaultCurrentStage
		_c.mutation.SetCurrentStage(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := workflow.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EventSequence(); !ok {
		v := workflow.DefaultEventSequence
		_c.mutation.SetEventSequence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Workflow.session_id"`)}
	}
	if _, ok := _c.mutation.RequestType(); !ok {
		return &ValidationError{Name: "request_type", err: errors.New(`ent: missing required field "Workflow.request_type"`)}
	}
	if v, ok := _c.mutation.RequestType(); ok {
		if err := workflow.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Workflow.request_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "Workflow.message"`)}
	}
	if _, ok := _c.mutation.CurrentStage(); !ok {
		return &ValidationError{Name: "current_stage", err: errors.New(`ent: missing required field "Workflow.current_stage"`)}
	}
	if v, ok := _c.mutation.CurrentStage(); ok {
		if err := workflow.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "Workflow.current_stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Workflow.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventSequence(); !ok {
		return &ValidationError{Name: "event_sequence", err: errors.New(`ent: missing required field "Workflow.event_sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Workflow.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Workflow.updated_at"`)}
	}
	return nil
}

func (_c *WorkflowCreate) sqlSave(ctx context.Context) (*Workflow, error) {
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
			return nil, fmt.Errorf("unexpected Workflow.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowCreate) createSpec() (*Workflow, *sqlgraph.CreateSpec) {
	var (
		_node = &Workflow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflow.Table, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(workflow.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.RequestType(); ok {
		_spec.SetField(workflow.FieldRequestType, field.TypeEnum, value)
		_node.RequestType = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(workflow.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(workflow.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = &value
	}
	if value, ok := _c.mutation.ModelOverride(); ok {
		_spec.SetField(workflow.FieldModelOverride, field.TypeString, value)
		_node.ModelOverride = &value
	}
	if value, ok := _c.mutation.ServerOverride(); ok {
		_spec.SetField(workflow.FieldServerOverride, field.TypeString, value)
		_node.ServerOverride = &value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(workflow.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(workflow.FieldCurrentStage, field.TypeEnum, value)
		_node.CurrentStage = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(workflow.FieldResponse, field.TypeString, value)
		_node.Response = &value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(workflow.FieldReasoning, field.TypeString, value)
		_node.Reasoning = &value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(workflow.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(workflow.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ReasonCode(); ok {
		_spec.SetField(workflow.FieldReasonCode, field.TypeString, value)
		_node.ReasonCode = &value
	}
	if value, ok := _c.mutation.FailingEventID(); ok {
		_spec.SetField(workflow.FieldFailingEventID, field.TypeString, value)
		_node.FailingEventID = &value
	}
	if value, ok := _c.mutation.EventSequence(); ok {
		_spec.SetField(workflow.FieldEventSequence, field.TypeInt64, value)
		_node.EventSequence = value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(workflow.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflow.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(workflow.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(workflow.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.PlansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PlansTable,
			Columns: []string{workflow.PlansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ExecutionEventsTable,
			Columns: []string{workflow.ExecutionEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApprovalRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalRequestsTable,
			Columns: []string{workflow.ApprovalRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowCreateBulk is the builder for creating many Workflow entities in bulk.
type WorkflowCreateBulk struct {
	config
	err      error
	builders []*WorkflowCreate
}

// Save creates the Workflow entities in the database.
func (_c *WorkflowCreateBulk) Save(ctx context.Context) ([]*Workflow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workflow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowMutation)
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
func (_c *WorkflowCreateBulk) SaveX(ctx context.Context) []*Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
