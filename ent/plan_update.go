// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/plan"
	"github.com/codeready-toolchain/maestro/ent/predicate"
	"github.com/codeready-toolchain/maestro/ent/step"
)

// PlanUpdate is the builder for updating Plan entities.
type PlanUpdate struct {
	config
	hooks    []Hook
	mutation *PlanMutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdate) Where(ps ...predicate.Plan) *PlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *PlanUpdate) SetVersion(v int) *PlanUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableVersion(v *int) *PlanUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PlanUpdate) AddVersion(v int) *PlanUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetGoal sets the "goal" field.
func (_u *PlanUpdate) SetGoal(v string) *PlanUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableGoal(v *string) *PlanUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStrategyName sets the "strategy_name" field.
func (_u *PlanUpdate) SetStrategyName(v string) *PlanUpdate {
	_u.mutation.SetStrategyName(v)
	return _u
}

// SetNillableStrategyName sets the "strategy_name" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableStrategyName(v *string) *PlanUpdate {
	if v != nil {
		_u.SetStrategyName(*v)
	}
	return _u
}

// ClearStrategyName clears the value of the "strategy_name" field.
func (_u *PlanUpdate) ClearStrategyName() *PlanUpdate {
	_u.mutation.ClearStrategyName()
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *PlanUpdate) SetStrategy(v map[string]interface{}) *PlanUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *PlanUpdate) SetRiskScore(v float64) *PlanUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableRiskScore(v *float64) *PlanUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *PlanUpdate) AddRiskScore(v float64) *PlanUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetAlternatives sets the "alternatives" field.
func (_u *PlanUpdate) SetAlternatives(v []string) *PlanUpdate {
	_u.mutation.SetAlternatives(v)
	return _u
}

// AppendAlternatives appends value to the "alternatives" field.
func (_u *PlanUpdate) AppendAlternatives(v []string) *PlanUpdate {
	_u.mutation.AppendAlternatives(v)
	return _u
}

// ClearAlternatives clears the value of the "alternatives" field.
func (_u *PlanUpdate) ClearAlternatives() *PlanUpdate {
	_u.mutation.ClearAlternatives()
	return _u
}

// SetPrimary sets the "primary" field.
func (_u *PlanUpdate) SetPrimary(v bool) *PlanUpdate {
	_u.mutation.SetPrimary(v)
	return _u
}

// SetNillablePrimary sets the "primary" field if the given value is not nil.
func (_u *PlanUpdate) SetNillablePrimary(v *bool) *PlanUpdate {
	if v != nil {
		_u.SetPrimary(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanUpdate) SetStatus(v plan.Status) *PlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableStatus(v *plan.Status) *PlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpectedDurationMs sets the "expected_duration_ms" field.
func (_u *PlanUpdate) SetExpectedDurationMs(v int64) *PlanUpdate {
	_u.mutation.ResetExpectedDurationMs()
	_u.mutation.SetExpectedDurationMs(v)
	return _u
}

// SetNillableExpectedDurationMs sets the "expected_duration_ms" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableExpectedDurationMs(v *int64) *PlanUpdate {
	if v != nil {
		_u.SetExpectedDurationMs(*v)
	}
	return _u
}

// AddExpectedDurationMs adds value to the "expected_duration_ms" field.
func (_u *PlanUpdate) AddExpectedDurationMs(v int64) *PlanUpdate {
	_u.mutation.AddExpectedDurationMs(v)
	return _u
}

// SetActualDurationMs sets the "actual_duration_ms" field.
func (_u *PlanUpdate) SetActualDurationMs(v int64) *PlanUpdate {
	_u.mutation.ResetActualDurationMs()
	_u.mutation.SetActualDurationMs(v)
	return _u
}

// SetNillableActualDurationMs sets the "actual_duration_ms" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableActualDurationMs(v *int64) *PlanUpdate {
	if v != nil {
		_u.SetActualDurationMs(*v)
	}
	return _u
}

// AddActualDurationMs adds value to the "actual_duration_ms" field.
func (_u *PlanUpdate) AddActualDurationMs(v int64) *PlanUpdate {
	_u.mutation.AddActualDurationMs(v)
	return _u
}

// ClearActualDurationMs clears the value of the "actual_duration_ms" field.
func (_u *PlanUpdate) ClearActualDurationMs() *PlanUpdate {
	_u.mutation.ClearActualDurationMs()
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *PlanUpdate) SetReasonCode(v string) *PlanUpdate {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableReasonCode(v *string) *PlanUpdate {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// ClearReasonCode clears the value of the "reason_code" field.
func (_u *PlanUpdate) ClearReasonCode() *PlanUpdate {
	_u.mutation.ClearReasonCode()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanUpdate) SetUpdatedAt(v time.Time) *PlanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPlanStepIDs adds the "plan_steps" edge to the Step entity by IDs.
func (_u *PlanUpdate) AddPlanStepIDs(ids ...string) *PlanUpdate {
	_u.mutation.AddPlanStepIDs(ids...)
	return _u
}

// AddPlanSteps adds the "plan_steps" edges to the Step entity.
func (_u *PlanUpdate) AddPlanSteps(v ...*Step) *PlanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlanStepIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdate) Mutation() *PlanMutation {
	return _u.mutation
}

// ClearPlanSteps clears all "plan_steps" edges to the Step entity.
func (_u *PlanUpdate) ClearPlanSteps() *PlanUpdate {
	_u.mutation.ClearPlanSteps()
	return _u
}

// RemovePlanStepIDs removes the "plan_steps" edge to Step entities by IDs.
func (_u *PlanUpdate) RemovePlanStepIDs(ids ...string) *PlanUpdate {
	_u.mutation.RemovePlanStepIDs(ids...)
	return _u
}

// RemovePlanSteps removes "plan_steps" edges to Step entities.
func (_u *PlanUpdate) RemovePlanSteps(v ...*Step) *PlanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlanStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := plan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Plan.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Plan.workflow"`)
	}
	return nil
}

func (_u *PlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(plan.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(plan.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(plan.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.StrategyName(); ok {
		_spec.SetField(plan.FieldStrategyName, field.TypeString, value)
	}
	if _u.mutation.StrategyNameCleared() {
		_spec.ClearField(plan.FieldStrategyName, field.TypeString)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(plan.FieldStrategy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(plan.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(plan.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Alternatives(); ok {
		_spec.SetField(plan.FieldAlternatives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlternatives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldAlternatives, value)
		})
	}
	if _u.mutation.AlternativesCleared() {
		_spec.ClearField(plan.FieldAlternatives, field.TypeJSON)
	}
	if value, ok := _u.mutation.Primary(); ok {
		_spec.SetField(plan.FieldPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpectedDurationMs(); ok {
		_spec.SetField(plan.FieldExpectedDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExpectedDurationMs(); ok {
		_spec.AddField(plan.FieldExpectedDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ActualDurationMs(); ok {
		_spec.SetField(plan.FieldActualDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActualDurationMs(); ok {
		_spec.AddField(plan.FieldActualDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.ActualDurationMsCleared() {
		_spec.ClearField(plan.FieldActualDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(plan.FieldReasonCode, field.TypeString, value)
	}
	if _u.mutation.ReasonCodeCleared() {
		_spec.ClearField(plan.FieldReasonCode, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PlanStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlanStepsIDs(); len(nodes) > 0 && !_u.mutation.PlanStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanStepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanUpdateOne is the builder for updating a single Plan entity.
type PlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanMutation
}

// SetVersion sets the "version" field.
func (_u *PlanUpdateOne) SetVersion(v int) *PlanUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableVersion(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PlanUpdateOne) AddVersion(v int) *PlanUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetGoal sets the "goal" field.
func (_u *PlanUpdateOne) SetGoal(v string) *PlanUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableGoal(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStrategyName sets the "strategy_name" field.
func (_u *PlanUpdateOne) SetStrategyName(v string) *PlanUpdateOne {
	_u.mutation.SetStrategyName(v)
	return _u
}

// SetNillableStrategyName sets the "strategy_name" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableStrategyName(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetStrategyName(*v)
	}
	return _u
}

// ClearStrategyName clears the value of the "strategy_name" field.
func (_u *PlanUpdateOne) ClearStrategyName() *PlanUpdateOne {
	_u.mutation.ClearStrategyName()
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *PlanUpdateOne) SetStrategy(v map[string]interface{}) *PlanUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *PlanUpdateOne) SetRiskScore(v float64) *PlanUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableRiskScore(v *float64) *PlanUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *PlanUpdateOne) AddRiskScore(v float64) *PlanUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetAlternatives sets the "alternatives" field.
func (_u *PlanUpdateOne) SetAlternatives(v []string) *PlanUpdateOne {
	_u.mutation.SetAlternatives(v)
	return _u
}

// AppendAlternatives appends value to the "alternatives" field.
func (_u *PlanUpdateOne) AppendAlternatives(v []string) *PlanUpdateOne {
	_u.mutation.AppendAlternatives(v)
	return _u
}

// ClearAlternatives clears the value of the "alternatives" field.
func (_u *PlanUpdateOne) ClearAlternatives() *PlanUpdateOne {
	_u.mutation.ClearAlternatives()
	return _u
}

// SetPrimary sets the "primary" field.
func (_u *PlanUpdateOne) SetPrimary(v bool) *PlanUpdateOne {
	_u.mutation.SetPrimary(v)
	return _u
}

// SetNillablePrimary sets the "primary" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillablePrimary(v *bool) *PlanUpdateOne {
	if v != nil {
		_u.SetPrimary(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanUpdateOne) SetStatus(v plan.Status) *PlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableStatus(v *plan.Status) *PlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpectedDurationMs sets the "expected_duration_ms" field.
func (_u *PlanUpdateOne) SetExpectedDurationMs(v int64) *PlanUpdateOne {
	_u.mutation.ResetExpectedDurationMs()
	_u.mutation.SetExpectedDurationMs(v)
	return _u
}

// SetNillableExpectedDurationMs sets the "expected_duration_ms" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableExpectedDurationMs(v *int64) *PlanUpdateOne {
	if v != nil {
		_u.SetExpectedDurationMs(*v)
	}
	return _u
}

// AddExpectedDurationMs adds value to the "expected_duration_ms" field.
func (_u *PlanUpdateOne) AddExpectedDurationMs(v int64) *PlanUpdateOne {
	_u.mutation.AddExpectedDurationMs(v)
	return _u
}

// SetActualDurationMs sets the "actual_duration_ms" field.
func (_u *PlanUpdateOne) SetActualDurationMs(v int64) *PlanUpdateOne {
	_u.mutation.ResetActualDurationMs()
	_u.mutation.SetActualDurationMs(v)
	return _u
}

// SetNillableActualDurationMs sets the "actual_duration_ms" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableActualDurationMs(v *int64) *PlanUpdateOne {
	if v != nil {
		_u.SetActualDurationMs(*v)
	}
	return _u
}

// AddActualDurationMs adds value to the "actual_duration_ms" field.
func (_u *PlanUpdateOne) AddActualDurationMs(v int64) *PlanUpdateOne {
	_u.mutation.AddActualDurationMs(v)
	return _u
}

// ClearActualDurationMs clears the value of the "actual_duration_ms" field.
func (_u *PlanUpdateOne) ClearActualDurationMs() *PlanUpdateOne {
	_u.mutation.ClearActualDurationMs()
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *PlanUpdateOne) SetReasonCode(v string) *PlanUpdateOne {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableReasonCode(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// ClearReasonCode clears the value of the "reason_code" field.
func (_u *PlanUpdateOne) ClearReasonCode() *PlanUpdateOne {
	_u.mutation.ClearReasonCode()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanUpdateOne) SetUpdatedAt(v time.Time) *PlanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPlanStepIDs adds the "plan_steps" edge to the Step entity by IDs.
func (_u *PlanUpdateOne) AddPlanStepIDs(ids ...string) *PlanUpdateOne {
	_u.mutation.AddPlanStepIDs(ids...)
	return _u
}

// AddPlanSteps adds the "plan_steps" edges to the Step entity.
func (_u *PlanUpdateOne) AddPlanSteps(v ...*Step) *PlanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlanStepIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdateOne) Mutation() *PlanMutation {
	return _u.mutation
}

// ClearPlanSteps clears all "plan_steps" edges to the Step entity.
func (_u *PlanUpdateOne) ClearPlanSteps() *PlanUpdateOne {
	_u.mutation.ClearPlanSteps()
	return _u
}

// RemovePlanStepIDs removes the "plan_steps" edge to Step entities by IDs.
func (_u *PlanUpdateOne) RemovePlanStepIDs(ids ...string) *PlanUpdateOne {
	_u.mutation.RemovePlanStepIDs(ids...)
	return _u
}

// RemovePlanSteps removes "plan_steps" edges to Step entities.
func (_u *PlanUpdateOne) RemovePlanSteps(v ...*Step) *PlanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlanStepIDs(ids...)
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdateOne) Where(ps ...predicate.Plan) *PlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanUpdateOne) Select(field string, fields ...string) *PlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Plan entity.
func (_u *PlanUpdateOne) Save(ctx context.Context) (*Plan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdateOne) SaveX(ctx context.Context) *Plan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := plan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Plan.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Plan.workflow"`)
	}
	return nil
}

func (_u *PlanUpdateOne) sqlSave(ctx context.Context) (_node *Plan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Plan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plan.FieldID)
		for _, f := range fields {
			if !plan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plan.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(plan.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(plan.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(plan.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.StrategyName(); ok {
		_spec.SetField(plan.FieldStrategyName, field.TypeString, value)
	}
	if _u.mutation.StrategyNameCleared() {
		_spec.ClearField(plan.FieldStrategyName, field.TypeString)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(plan.FieldStrategy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(plan.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(plan.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Alternatives(); ok {
		_spec.SetField(plan.FieldAlternatives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlternatives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldAlternatives, value)
		})
	}
	if _u.mutation.AlternativesCleared() {
		_spec.ClearField(plan.FieldAlternatives, field.TypeJSON)
	}
	if value, ok := _u.mutation.Primary(); ok {
		_spec.SetField(plan.FieldPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpectedDurationMs(); ok {
		_spec.SetField(plan.FieldExpectedDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExpectedDurationMs(); ok {
		_spec.AddField(plan.FieldExpectedDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ActualDurationMs(); ok {
		_spec.SetField(plan.FieldActualDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActualDurationMs(); ok {
		_spec.AddField(plan.FieldActualDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.ActualDurationMsCleared() {
		_spec.ClearField(plan.FieldActualDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(plan.FieldReasonCode, field.TypeString, value)
	}
	if _u.mutation.ReasonCodeCleared() {
		_spec.ClearField(plan.FieldReasonCode, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PlanStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlanStepsIDs(); len(nodes) > 0 && !_u.mutation.PlanStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanStepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Plan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
