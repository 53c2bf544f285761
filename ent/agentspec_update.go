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
	"github.com/codeready-toolchain/maestro/ent/agentspec"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// AgentSpecUpdate is the builder for updating AgentSpec entities.
type AgentSpecUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSpecMutation
}

// Where appends a list predicates to the AgentSpecUpdate builder.
func (_u *AgentSpecUpdate) Where(ps ...predicate.AgentSpec) *AgentSpecUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentSpecUpdate) SetName(v string) *AgentSpecUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentSpecUpdate) SetNillableName(v *string) *AgentSpecUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSpecUpdate) SetStatus(v agentspec.Status) *AgentSpecUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSpecUpdate) SetNillableStatus(v *agentspec.Status) *AgentSpecUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentSpecUpdate) SetCapabilities(v []string) *AgentSpecUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentSpecUpdate) AppendCapabilities(v []string) *AgentSpecUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentSpecUpdate) ClearCapabilities() *AgentSpecUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetModelClass sets the "model_class" field.
func (_u *AgentSpecUpdate) SetModelClass(v string) *AgentSpecUpdate {
	_u.mutation.SetModelClass(v)
	return _u
}

// SetNillableModelClass sets the "model_class" field if the given value is not nil.
func (_u *AgentSpecUpdate) SetNillableModelClass(v *string) *AgentSpecUpdate {
	if v != nil {
		_u.SetModelClass(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentSpecUpdate) SetDescription(v string) *AgentSpecUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentSpecUpdate) SetNillableDescription(v *string) *AgentSpecUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentSpecUpdate) ClearDescription() *AgentSpecUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTotalRuns sets the "total_runs" field.
func (_u *AgentSpecUpdate) SetTotalRuns(v int64) *AgentSpecUpdate {
	_u.mutation.ResetTotalRuns()
	_u.mutation.SetTotalRuns(v)
	return _u
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_u *AgentSpecUpdate) SetNillableTotalRuns(v *int64) *AgentSpecUpdate {
	if v != nil {
		_u.SetTotalRuns(*v)
	}
	return _u
}

// AddTotalRuns adds value to the "total_runs" field.
func (_u *AgentSpecUpdate) AddTotalRuns(v int64) *AgentSpecUpdate {
	_u.mutation.AddTotalRuns(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *AgentSpecUpdate) SetSuccesses(v int64) *AgentSpecUpdate {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *AgentSpecUpdate) SetNillableSuccesses(v *int64) *AgentSpecUpdate {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *AgentSpecUpdate) AddSuccesses(v int64) *AgentSpecUpdate {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetFailures sets the "failures" field.
func (_u *AgentSpecUpdate) SetFailures(v int64) *AgentSpecUpdate {
	_u.mutation.ResetFailures()
	_u.mutation.SetFailures(v)
	return _u
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_u *AgentSpecUpdate) SetNillableFailures(v *int64) *AgentSpecUpdate {
	if v != nil {
		_u.SetFailures(*v)
	}
	return _u
}

// AddFailures adds value to the "failures" field.
func (_u *AgentSpecUpdate) AddFailures(v int64) *AgentSpecUpdate {
	_u.mutation.AddFailures(v)
	return _u
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_u *AgentSpecUpdate) SetAvgLatencyMs(v float64) *AgentSpecUpdate {
	_u.mutation.ResetAvgLatencyMs()
	_u.mutation.SetAvgLatencyMs(v)
	return _u
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_u *AgentSpecUpdate) SetNillableAvgLatencyMs(v *float64) *AgentSpecUpdate {
	if v != nil {
		_u.SetAvgLatencyMs(*v)
	}
	return _u
}

// AddAvgLatencyMs adds value to the "avg_latency_ms" field.
func (_u *AgentSpecUpdate) AddAvgLatencyMs(v float64) *AgentSpecUpdate {
	_u.mutation.AddAvgLatencyMs(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentSpecUpdate) SetVersion(v int) *AgentSpecUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentSpecUpdate) SetNillableVersion(v *int) *AgentSpecUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentSpecUpdate) AddVersion(v int) *AgentSpecUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentSpecUpdate) SetUpdatedAt(v time.Time) *AgentSpecUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentSpecMutation object of the builder.
func (_u *AgentSpecUpdate) Mutation() *AgentSpecMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSpecUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSpecUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSpecUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSpecUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentSpecUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentspec.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSpecUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentspec.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSpec.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSpecUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentspec.Table, agentspec.Columns, sqlgraph.NewFieldSpec(agentspec.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentspec.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentspec.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agentspec.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentspec.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agentspec.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelClass(); ok {
		_spec.SetField(agentspec.FieldModelClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agentspec.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agentspec.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TotalRuns(); ok {
		_spec.SetField(agentspec.FieldTotalRuns, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalRuns(); ok {
		_spec.AddField(agentspec.FieldTotalRuns, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(agentspec.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(agentspec.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(agentspec.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailures(); ok {
		_spec.AddField(agentspec.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgLatencyMs(); ok {
		_spec.SetField(agentspec.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatencyMs(); ok {
		_spec.AddField(agentspec.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentspec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentspec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentspec.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentspec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSpecUpdateOne is the builder for updating a single AgentSpec entity.
type AgentSpecUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSpecMutation
}

// SetName sets the "name" field.
func (_u *AgentSpecUpdateOne) SetName(v string) *AgentSpecUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentSpecUpdateOne) SetNillableName(v *string) *AgentSpecUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSpecUpdateOne) SetStatus(v agentspec.Status) *AgentSpecUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSpecUpdateOne) SetNillableStatus(v *agentspec.Status) *AgentSpecUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentSpecUpdateOne) SetCapabilities(v []string) *AgentSpecUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentSpecUpdateOne) AppendCapabilities(v []string) *AgentSpecUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentSpecUpdateOne) ClearCapabilities() *AgentSpecUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetModelClass sets the "model_class" field.
func (_u *AgentSpecUpdateOne) SetModelClass(v string) *AgentSpecUpdateOne {
	_u.mutation.SetModelClass(v)
	return _u
}

// SetNillableModelClass sets the "model_class" field if the given value is not nil.
func (_u *AgentSpecUpdateOne) SetNillableModelClass(v *string) *AgentSpecUpdateOne {
	if v != nil {
		_u.SetModelClass(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentSpecUpdateOne) SetDescription(v string) *AgentSpecUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentSpecUpdateOne) SetNillableDescription(v *string) *AgentSpecUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentSpecUpdateOne) ClearDescription() *AgentSpecUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTotalRuns sets the "total_runs" field.
func (_u *AgentSpecUpdateOne) SetTotalRuns(v int64) *AgentSpecUpdateOne {
	_u.mutation.ResetTotalRuns()
	_u.mutation.SetTotalRuns(v)
	return _u
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_u *AgentSpecUpdateOne) SetNillableTotalRuns(v *int64) *AgentSpecUpdateOne {
	if v != nil {
		_u.SetTotalRuns(*v)
	}
	return _u
}

// AddTotalRuns adds value to the "total_runs" field.
func (_u *AgentSpecUpdateOne) AddTotalRuns(v int64) *AgentSpecUpdateOne {
	_u.mutation.AddTotalRuns(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *AgentSpecUpdateOne) SetSuccesses(v int64) *AgentSpecUpdateOne {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *AgentSpecUpdateOne) SetNillableSuccesses(v *int64) *AgentSpecUpdateOne {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *AgentSpecUpdateOne) AddSuccesses(v int64) *AgentSpecUpdateOne {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetFailures sets the "failures" field.
func (_u *AgentSpecUpdateOne) SetFailures(v int64) *AgentSpecUpdateOne {
	_u.mutation.ResetFailures()
	_u.mutation.SetFailures(v)
	return _u
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_u *AgentSpecUpdateOne) SetNillableFailures(v *int64) *AgentSpecUpdateOne {
	if v != nil {
		_u.SetFailures(*v)
	}
	return _u
}

// AddFailures adds value to the "failures" field.
func (_u *AgentSpecUpdateOne) AddFailures(v int64) *AgentSpecUpdateOne {
	_u.mutation.AddFailures(v)
	return _u
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_u *AgentSpecUpdateOne) SetAvgLatencyMs(v float64) *AgentSpecUpdateOne {
	_u.mutation.ResetAvgLatencyMs()
	_u.mutation.SetAvgLatencyMs(v)
	return _u
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_u *AgentSpecUpdateOne) SetNillableAvgLatencyMs(v *float64) *AgentSpecUpdateOne {
	if v != nil {
		_u.SetAvgLatencyMs(*v)
	}
	return _u
}

// AddAvgLatencyMs adds value to the "avg_latency_ms" field.
func (_u *AgentSpecUpdateOne) AddAvgLatencyMs(v float64) *AgentSpecUpdateOne {
	_u.mutation.AddAvgLatencyMs(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentSpecUpdateOne) SetVersion(v int) *AgentSpecUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentSpecUpdateOne) SetNillableVersion(v *int) *AgentSpecUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentSpecUpdateOne) AddVersion(v int) *AgentSpecUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentSpecUpdateOne) SetUpdatedAt(v time.Time) *AgentSpecUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentSpecMutation object of the builder.
func (_u *AgentSpecUpdateOne) Mutation() *AgentSpecMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentSpecUpdate builder.
func (_u *AgentSpecUpdateOne) Where(ps ...predicate.AgentSpec) *AgentSpecUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSpecUpdateOne) Select(field string, fields ...string) *AgentSpecUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSpec entity.
func (_u *AgentSpecUpdateOne) Save(ctx context.Context) (*AgentSpec, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSpecUpdateOne) SaveX(ctx context.Context) *AgentSpec {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSpecUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSpecUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentSpecUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentspec.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSpecUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentspec.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSpec.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSpecUpdateOne) sqlSave(ctx context.Context) (_node *AgentSpec, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentspec.Table, agentspec.Columns, sqlgraph.NewFieldSpec(agentspec.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSpec.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentspec.FieldID)
		for _, f := range fields {
			if !agentspec.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentspec.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentspec.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentspec.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agentspec.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentspec.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agentspec.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelClass(); ok {
		_spec.SetField(agentspec.FieldModelClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agentspec.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agentspec.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TotalRuns(); ok {
		_spec.SetField(agentspec.FieldTotalRuns, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalRuns(); ok {
		_spec.AddField(agentspec.FieldTotalRuns, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(agentspec.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(agentspec.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(agentspec.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailures(); ok {
		_spec.AddField(agentspec.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgLatencyMs(); ok {
		_spec.SetField(agentspec.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatencyMs(); ok {
		_spec.AddField(agentspec.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentspec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentspec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentspec.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentSpec{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentspec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
