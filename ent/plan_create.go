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

// PlanCreate is the builder for creating a Plan entity.
type PlanCreate struct {
	config
	mutation *PlanMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *PlanCreate) SetWorkflowID(v string) *PlanCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PlanCreate) SetVersion(v int) *PlanCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetGoal sets the "goal" field.
func (_c *PlanCreate) SetGoal(v string) *PlanCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetStrategyName sets the "strategy_name" field.
func (_c *PlanCreate) SetStrategyName(v string) *PlanCreate {
	_c.mutation.SetStrategyName(v)
	return _c
}

// SetNillableStrategyName sets the "strategy_name" field if the given value is not nil.
func (_c *PlanCreate) SetNillableStrategyName(v *string) *PlanCreate {
	if v != nil {
		_c.SetStrategyName(*v)
	}
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *PlanCreate) SetStrategy(v map[string]interface{}) *PlanCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *PlanCreate) SetRiskScore(v float64) *PlanCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_c *PlanCreate) SetNillableRiskScore(v *float64) *PlanCreate {
	if v != nil {
		_c.SetRiskScore(*v)
	}
	return _c
}

// SetAlternatives sets the "alternatives" field.
func (_c *PlanCreate) SetAlternatives(v []string) *PlanCreate {
	_c.mutation.SetAlternatives(v)
	return _c
}

// SetPrimary sets the "primary" field.
func (_c *PlanCreate) SetPrimary(v bool) *PlanCreate {
	_c.mutation.SetPrimary(v)
	return _c
}

// SetNillablePrimary sets the "primary" field if the given value is not nil.
func (_c *PlanCreate) SetNillablePrimary(v *bool) *PlanCreate {
	if v != nil {
		_c.SetPrimary(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PlanCreate) SetStatus(v plan.Status) *PlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PlanCreate) SetNillableStatus(v *plan.Status) *PlanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExpectedDurationMs sets the "expected_duration_ms" field.
func (_c *PlanCreate) SetExpectedDurationMs(v int64) *PlanCreate {
	_c.mutation.SetExpectedDurationMs(v)
	return _c
}

// SetNillableExpectedDurationMs sets the "expected_duration_ms" field if the given value is not nil.
func (_c *PlanCreate) SetNillableExpectedDurationMs(v *int64) *PlanCreate {
	if v != nil {
		_c.SetExpectedDurationMs(*v)
	}
	return _c
}

// SetActualDurationMs sets the "actual_duration_ms" field.
func (_c *PlanCreate) SetActualDurationMs(v int64) *PlanCreate {
	_c.mutation.SetActualDurationMs(v)
	return _c
}

// SetNillableActualDurationMs sets the "actual_duration_ms" field if the given value is not nil.
func (_c *PlanCreate) SetNillableActualDurationMs(v *int64) *PlanCreate {
	if v != nil {
		_c.SetActualDurationMs(*v)
	}
	return _c
}

// SetReasonCode sets the "reason_code" field.
func (_c *PlanCreate) SetReasonCode(v string) *PlanCreate {
	_c.mutation.SetReasonCode(v)
	return _c
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_c *PlanCreate) SetNillableReasonCode(v *string) *PlanCreate {
	if v != nil {
		_c.SetReasonCode(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanCreate) SetCreatedAt(v time.Time) *PlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableCreatedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlanCreate) SetUpdatedAt(v time.Time) *PlanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableUpdatedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlanCreate) SetID(v string) *PlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *PlanCreate) SetWorkflow(v *Workflow) *PlanCreate {
	return _c.SetWorkflowID(v.ID)
}

// AddPlanStepIDs adds the "plan_steps" edge to the Step entity by IDs.
func (_c *PlanCreate) AddPlanStepIDs(ids ...string) *PlanCreate {
	_c.mutation.AddPlanStepIDs(ids...)
	return _c
}

// AddPlanSteps adds the "plan_steps" edges to the Step entity.
func (_c *PlanCreate) AddPlanSteps(v ...*Step) *PlanCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPlanStepIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_c *PlanCreate) Mutation() *PlanMutation {
	return _c.mutation
}

// Save creates the Plan in the database.
func (_c *PlanCreate) Save(ctx context.Context) (*Plan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanCreate) SaveX(ctx context.Context) *Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanCreate) defaults() {
	if _, ok := _c.mutation.RiskScore(); !ok {
		v := plan.DefaultRiskScore
		_c.mutation.SetRiskScore(v)
	}
	if _, ok := _c.mutation.Primary(); !ok {
		v := plan.DefaultPrimary
		_c.mutation.SetPrimary(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := plan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExpectedDurationMs(); !ok {
		v := plan.DefaultExpectedDurationMs
		_c.mutation.SetExpectedDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := plan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "Plan.workflow_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Plan.version"`)}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "Plan.goal"`)}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "Plan.strategy"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "Plan.risk_score"`)}
	}
	if _, ok := _c.mutation.Primary(); !ok {
		return &ValidationError{Name: "primary", err: errors.New(`ent: missing required field "Plan.primary"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Plan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := plan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Plan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpectedDurationMs(); !ok {
		return &ValidationError{Name: "expected_duration_ms", err: errors.New(`ent: missing required field "Plan.expected_duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Plan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Plan.updated_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "Plan.workflow"`)}
	}
	return nil
}

func (_c *PlanCreate) sqlSave(ctx context.Context) (*Plan, error) {
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
			return nil, fmt.Errorf("unexpected Plan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanCreate) createSpec() (*Plan, *sqlgraph.CreateSpec) {
	var (
		_node = &Plan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plan.Table, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(plan.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(plan.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.StrategyName(); ok {
		_spec.SetField(plan.FieldStrategyName, field.TypeString, value)
		_node.StrategyName = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(plan.FieldStrategy, field.TypeJSON, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(plan.FieldRiskScore, field.TypeFloat64, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.Alternatives(); ok {
		_spec.SetField(plan.FieldAlternatives, field.TypeJSON, value)
		_node.Alternatives = value
	}
	if value, ok := _c.mutation.Primary(); ok {
		_spec.SetField(plan.FieldPrimary, field.TypeBool, value)
		_node.Primary = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExpectedDurationMs(); ok {
		_spec.SetField(plan.FieldExpectedDurationMs, field.TypeInt64, value)
		_node.ExpectedDurationMs = value
	}
	if value, ok := _c.mutation.ActualDurationMs(); ok {
		_spec.SetField(plan.FieldActualDurationMs, field.TypeInt64, value)
		_node.ActualDurationMs = &value
	}
	if value, ok := _c.mutation.ReasonCode(); ok {
		_spec.SetField(plan.FieldReasonCode, field.TypeString, value)
		_node.ReasonCode = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   plan.WorkflowTable,
			Columns: []string{plan.WorkflowColumn},
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
	if nodes := _c.mutation.PlanStepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plan.PlanStepsTable,
			Columns: []string{plan.PlanStepsColumn},
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
	return _node, _spec
}

// PlanCreateBulk is the builder for creating many Plan entities in bulk.
type PlanCreateBulk struct {
	config
	err      error
	builders []*PlanCreate
}

// Save creates the Plan entities in the database.
func (_c *PlanCreateBulk) Save(ctx context.Context) ([]*Plan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Plan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanMutation)
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
func (_c *PlanCreateBulk) SaveX(ctx context.Context) []*Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
