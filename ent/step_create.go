// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/plan"
	"github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// StepCreate is the builder for creating a Step entity.
type StepCreate struct {
	config
	mutation *StepMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *StepCreate) SetPlanID(v string) *StepCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *StepCreate) SetWorkflowID(v string) *StepCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetIndex sets the "index" field.
func (_c *StepCreate) SetIndex(v int) *StepCreate {
	_c.mutation.SetIndex(v)
	return _c
}

// SetName sets the "name" field.
func (_c *StepCreate) SetName(v string) *StepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StepCreate) SetDescription(v string) *StepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StepCreate) SetNillableDescription(v *string) *StepCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *StepCreate) SetType(v step.Type) *StepCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *StepCreate) SetNillableType(v *step.Type) *StepCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetExecutorKind sets the "executor_kind" field.
func (_c *StepCreate) SetExecutorKind(v step.ExecutorKind) *StepCreate {
	_c.mutation.SetExecutorKind(v)
	return _c
}

// SetNillableExecutorKind sets the "executor_kind" field if the given value is not nil.
func (_c *StepCreate) SetNillableExecutorKind(v *step.ExecutorKind) *StepCreate {
	if v != nil {
		_c.SetExecutorKind(*v)
	}
	return _c
}

// SetExecutorRef sets the "executor_ref" field.
func (_c *StepCreate) SetExecutorRef(v string) *StepCreate {
	_c.mutation.SetExecutorRef(v)
	return _c
}

// SetNillableExecutorRef sets the "executor_ref" field if the given value is not nil.
func (_c *StepCreate) SetNillableExecutorRef(v *string) *StepCreate {
	if v != nil {
		_c.SetExecutorRef(*v)
	}
	return _c
}

// SetTeamMembers sets the "team_members" field.
func (_c *StepCreate) SetTeamMembers(v []string) *StepCreate {
	_c.mutation.SetTeamMembers(v)
	return _c
}

// SetInputs sets the "inputs" field.
func (_c *StepCreate) SetInputs(v map[string]interface{}) *StepCreate {
	_c.mutation.SetInputs(v)
	return _c
}

// SetOutputs sets the "outputs" field.
func (_c *StepCreate) SetOutputs(v map[string]interface{}) *StepCreate {
	_c.mutation.SetOutputs(v)
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *StepCreate) SetDependencies(v []string) *StepCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_c *StepCreate) SetTimeoutMs(v int64) *StepCreate {
	_c.mutation.SetTimeoutMs(v)
	return _c
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_c *StepCreate) SetNillableTimeoutMs(v *int64) *StepCreate {
	if v != nil {
		_c.SetTimeoutMs(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *StepCreate) SetMaxAttempts(v int) *StepCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *StepCreate) SetNillableMaxAttempts(v *int) *StepCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetBackoffBaseMs sets the "backoff_base_ms" field.
func (_c *StepCreate) SetBackoffBaseMs(v int64) *StepCreate {
	_c.mutation.SetBackoffBaseMs(v)
	return _c
}

// SetNillableBackoffBaseMs sets the "backoff_base_ms" field if the given value is not nil.
func (_c *StepCreate) SetNillableBackoffBaseMs(v *int64) *StepCreate {
	if v != nil {
		_c.SetBackoffBaseMs(*v)
	}
	return _c
}

// SetApprovalRequired sets the "approval_required" field.
func (_c *StepCreate) SetApprovalRequired(v bool) *StepCreate {
	_c.mutation.SetApprovalRequired(v)
	return _c
}

// SetNillableApprovalRequired sets the "approval_required" field if the given value is not nil.
func (_c *StepCreate) SetNillableApprovalRequired(v *bool) *StepCreate {
	if v != nil {
		_c.SetApprovalRequired(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *StepCreate) SetRiskLevel(v step.RiskLevel) *StepCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *StepCreate) SetNillableRiskLevel(v *step.RiskLevel) *StepCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetFunctionCall sets the "function_call" field.
func (_c *StepCreate) SetFunctionCall(v map[string]interface{}) *StepCreate {
	_c.mutation.SetFunctionCall(v)
	return _c
}

// SetChecks sets the "checks" field.
func (_c *StepCreate) SetChecks(v map[string]interface{}) *StepCreate {
	_c.mutation.SetChecks(v)
	return _c
}

// SetState sets the "state" field.
func (_c *StepCreate) SetState(v step.State) *StepCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *StepCreate) SetNillableState(v *step.State) *StepCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *StepCreate) SetAttempts(v int) *StepCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *StepCreate) SetNillableAttempts(v *int) *StepCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *StepCreate) SetErrorKind(v string) *StepCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *StepCreate) SetNillableErrorKind(v *string) *StepCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetReasonCode sets the "reason_code" field.
func (_c *StepCreate) SetReasonCode(v string) *StepCreate {
	_c.mutation.SetReasonCode(v)
	return _c
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_c *StepCreate) SetNillableReasonCode(v *string) *StepCreate {
	if v != nil {
		_c.SetReasonCode(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *StepCreate) SetQualityScore(v float64) *StepCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *StepCreate) SetNillableQualityScore(v *float64) *StepCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepCreate) SetStartedAt(v time.Time) *StepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableStartedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StepCreate) SetCompletedAt(v time.Time) *StepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCompletedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepCreate) SetCreatedAt(v time.Time) *StepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCreatedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StepCreate) SetUpdatedAt(v time.Time) *StepCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableUpdatedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepCreate) SetID(v string) *StepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_c *StepCreate) SetPlan(v *Plan) *StepCreate {
	return _c.SetPlanID(v.ID)
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *StepCreate) SetWorkflow(v *Workflow) *StepCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_c *StepCreate) Mutation() *StepMutation {
	return _c.mutation
}

// Save creates the Step in the database.
func (_c *StepCreate) Save(ctx context.Context) (*Step, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepCreate) SaveX(ctx context.Context) *Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepCreate) defaults() {
	if _, ok := _c.mutation.GetType(); !ok {
		v := step.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.ExecutorKind(); !ok {
		v := step.DefaultExecutorKind
		_c.mutation.SetExecutorKind(v)
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		v := step.DefaultTimeoutMs
		_c.mutation.SetTimeoutMs(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := step.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.BackoffBaseMs(); !ok {
		v := step.DefaultBackoffBaseMs
		_c.mutation.SetBackoffBaseMs(v)
	}
	if _, ok := _c.mutation.ApprovalRequired(); !ok {
		v := step.DefaultApprovalRequired
		_c.mutation.SetApprovalRequired(v)
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		v := step.DefaultRiskLevel
		_c.mutation.SetRiskLevel(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := step.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := step.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := step.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := step.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "Step.plan_id"`)}
	}
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "Step.workflow_id"`)}
	}
	if _, ok := _c.mutation.Index(); !ok {
		return &ValidationError{Name: "index", err: errors.New(`ent: missing required field "Step.index"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Step.name"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Step.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := step.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Step.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutorKind(); !ok {
		return &ValidationError{Name: "executor_kind", err: errors.New(`ent: missing required field "Step.executor_kind"`)}
	}
	if v, ok := _c.mutation.ExecutorKind(); ok {
		if err := step.ExecutorKindValidator(v); err != nil {
			return &ValidationError{Name: "executor_kind", err: fmt.Errorf(`ent: validator failed for field "Step.executor_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		return &ValidationError{Name: "timeout_ms", err: errors.New(`ent: missing required field "Step.timeout_ms"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "Step.max_attempts"`)}
	}
	if _, ok := _c.mutation.BackoffBaseMs(); !ok {
		return &ValidationError{Name: "backoff_base_ms", err: errors.New(`ent: missing required field "Step.backoff_base_ms"`)}
	}
	if _, ok := _c.mutation.ApprovalRequired(); !ok {
		return &ValidationError{Name: "approval_required", err: errors.New(`ent: missing required field "Step.approval_required"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "Step.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := step.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Step.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Step.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := step.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Step.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Step.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Step.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Step.updated_at"`)}
	}
	if len(_c.mutation.PlanIDs()) == 0 {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required edge "Step.plan"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "Step.workflow"`)}
	}
	return nil
}

func (_c *StepCreate) sqlSave(ctx context.Context) (*Step, error) {
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
			return nil, fmt.Errorf("unexpected Step.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepCreate) createSpec() (*Step, *sqlgraph.CreateSpec) {
	var (
		_node = &Step{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(step.Table, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Index(); ok {
		_spec.SetField(step.FieldIndex, field.TypeInt, value)
		_node.Index = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(step.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(step.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.ExecutorKind(); ok {
		_spec.SetField(step.FieldExecutorKind, field.TypeEnum, value)
		_node.ExecutorKind = value
	}
	if value, ok := _c.mutation.ExecutorRef(); ok {
		_spec.SetField(step.FieldExecutorRef, field.TypeString, value)
		_node.ExecutorRef = value
	}
	if value, ok := _c.mutation.TeamMembers(); ok {
		_spec.SetField(step.FieldTeamMembers, field.TypeJSON, value)
		_node.TeamMembers = value
	}
	if value, ok := _c.mutation.Inputs(); ok {
		_spec.SetField(step.FieldInputs, field.TypeJSON, value)
		_node.Inputs = value
	}
	if value, ok := _c.mutation.Outputs(); ok {
		_spec.SetField(step.FieldOutputs, field.TypeJSON, value)
		_node.Outputs = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(step.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.TimeoutMs(); ok {
		_spec.SetField(step.FieldTimeoutMs, field.TypeInt64, value)
		_node.TimeoutMs = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(step.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.BackoffBaseMs(); ok {
		_spec.SetField(step.FieldBackoffBaseMs, field.TypeInt64, value)
		_node.BackoffBaseMs = value
	}
	if value, ok := _c.mutation.ApprovalRequired(); ok {
		_spec.SetField(step.FieldApprovalRequired, field.TypeBool, value)
		_node.ApprovalRequired = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(step.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.FunctionCall(); ok {
		_spec.SetField(step.FieldFunctionCall, field.TypeJSON, value)
		_node.FunctionCall = value
	}
	if value, ok := _c.mutation.Checks(); ok {
		_spec.SetField(step.FieldChecks, field.TypeJSON, value)
		_node.Checks = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(step.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(step.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(step.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ReasonCode(); ok {
		_spec.SetField(step.FieldReasonCode, field.TypeString, value)
		_node.ReasonCode = &value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(step.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(step.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(step.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.PlanTable,
			Columns: []string{step.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PlanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.WorkflowTable,
			Columns: []string{step.WorkflowColumn},
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

// StepCreateBulk is the builder for creating many Step entities in bulk.
type StepCreateBulk struct {
	config
	err      error
	builders []*StepCreate
}

// Save creates the Step entities in the database.
func (_c *StepCreateBulk) Save(ctx context.Context) ([]*Step, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Step, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepMutation)
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
func (_c *StepCreateBulk) SaveX(ctx context.Context) []*Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
