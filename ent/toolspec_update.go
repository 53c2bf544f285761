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
	"github.com/codeready-toolchain/maestro/ent/predicate"
	"github.com/codeready-toolchain/maestro/ent/toolspec"
)

// ToolSpecUpdate is the builder for updating ToolSpec entities.
type ToolSpecUpdate struct {
	config
	hooks    []Hook
	mutation *ToolSpecMutation
}

// Where appends a list predicates to the ToolSpecUpdate builder.
func (_u *ToolSpecUpdate) Where(ps ...predicate.ToolSpec) *ToolSpecUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ToolSpecUpdate) SetName(v string) *ToolSpecUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolSpecUpdate) SetNillableName(v *string) *ToolSpecUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolSpecUpdate) SetStatus(v toolspec.Status) *ToolSpecUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolSpecUpdate) SetNillableStatus(v *toolspec.Status) *ToolSpecUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *ToolSpecUpdate) SetCapabilities(v []string) *ToolSpecUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *ToolSpecUpdate) AppendCapabilities(v []string) *ToolSpecUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *ToolSpecUpdate) ClearCapabilities() *ToolSpecUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetInputSchema sets the "input_schema" field.
func (_u *ToolSpecUpdate) SetInputSchema(v map[string]interface{}) *ToolSpecUpdate {
	_u.mutation.SetInputSchema(v)
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *ToolSpecUpdate) SetOutputSchema(v map[string]interface{}) *ToolSpecUpdate {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// ClearOutputSchema clears the value of the "output_schema" field.
func (_u *ToolSpecUpdate) ClearOutputSchema() *ToolSpecUpdate {
	_u.mutation.ClearOutputSchema()
	return _u
}

// SetCommand sets the "command" field.
func (_u *ToolSpecUpdate) SetCommand(v []string) *ToolSpecUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// AppendCommand appends value to the "command" field.
func (_u *ToolSpecUpdate) AppendCommand(v []string) *ToolSpecUpdate {
	_u.mutation.AppendCommand(v)
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *ToolSpecUpdate) ClearCommand() *ToolSpecUpdate {
	_u.mutation.ClearCommand()
	return _u
}

// SetHandler sets the "handler" field.
func (_u *ToolSpecUpdate) SetHandler(v string) *ToolSpecUpdate {
	_u.mutation.SetHandler(v)
	return _u
}

// SetNillableHandler sets the "handler" field if the given value is not nil.
func (_u *ToolSpecUpdate) SetNillableHandler(v *string) *ToolSpecUpdate {
	if v != nil {
		_u.SetHandler(*v)
	}
	return _u
}

// ClearHandler clears the value of the "handler" field.
func (_u *ToolSpecUpdate) ClearHandler() *ToolSpecUpdate {
	_u.mutation.ClearHandler()
	return _u
}

// SetDefaultTimeoutMs sets the "default_timeout_ms" field.
func (_u *ToolSpecUpdate) SetDefaultTimeoutMs(v int64) *ToolSpecUpdate {
	_u.mutation.ResetDefaultTimeoutMs()
	_u.mutation.SetDefaultTimeoutMs(v)
	return _u
}

// SetNillableDefaultTimeoutMs sets the "default_timeout_ms" field if the given value is not nil.
func (_u *ToolSpecUpdate) SetNillableDefaultTimeoutMs(v *int64) *ToolSpecUpdate {
	if v != nil {
		_u.SetDefaultTimeoutMs(*v)
	}
	return _u
}

// AddDefaultTimeoutMs adds value to the "default_timeout_ms" field.
func (_u *ToolSpecUpdate) AddDefaultTimeoutMs(v int64) *ToolSpecUpdate {
	_u.mutation.AddDefaultTimeoutMs(v)
	return _u
}

// SetTotalRuns sets the "total_runs" field.
func (_u *ToolSpecUpdate) SetTotalRuns(v int64) *ToolSpecUpdate {
	_u.mutation.ResetTotalRuns()
	_u.mutation.SetTotalRuns(v)
	return _u
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_u *ToolSpecUpdate) SetNillableTotalRuns(v *int64) *ToolSpecUpdate {
	if v != nil {
		_u.SetTotalRuns(*v)
	}
	return _u
}

// AddTotalRuns adds value to the "total_runs" field.
func (_u *ToolSpecUpdate) AddTotalRuns(v int64) *ToolSpecUpdate {
	_u.mutation.AddTotalRuns(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *ToolSpecUpdate) SetSuccesses(v int64) *ToolSpecUpdate {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *ToolSpecUpdate) SetNillableSuccesses(v *int64) *ToolSpecUpdate {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *ToolSpecUpdate) AddSuccesses(v int64) *ToolSpecUpdate {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetFailures sets the "failures" field.
func (_u *ToolSpecUpdate) SetFailures(v int64) *ToolSpecUpdate {
	_u.mutation.ResetFailures()
	_u.mutation.SetFailures(v)
	return _u
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_u *ToolSpecUpdate) SetNillableFailures(v *int64) *ToolSpecUpdate {
	if v != nil {
		_u.SetFailures(*v)
	}
	return _u
}

// AddFailures adds value to the "failures" field.
func (_u *ToolSpecUpdate) AddFailures(v int64) *ToolSpecUpdate {
	_u.mutation.AddFailures(v)
	return _u
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_u *ToolSpecUpdate) SetAvgLatencyMs(v float64) *ToolSpecUpdate {
	_u.mutation.ResetAvgLatencyMs()
	_u.mutation.SetAvgLatencyMs(v)
	return _u
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_u *ToolSpecUpdate) SetNillableAvgLatencyMs(v *float64) *ToolSpecUpdate {
	if v != nil {
		_u.SetAvgLatencyMs(*v)
	}
	return _u
}

// AddAvgLatencyMs adds value to the "avg_latency_ms" field.
func (_u *ToolSpecUpdate) AddAvgLatencyMs(v float64) *ToolSpecUpdate {
	_u.mutation.AddAvgLatencyMs(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ToolSpecUpdate) SetVersion(v int) *ToolSpecUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ToolSpecUpdate) SetNillableVersion(v *int) *ToolSpecUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ToolSpecUpdate) AddVersion(v int) *ToolSpecUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ToolSpecUpdate) SetUpdatedAt(v time.Time) *ToolSpecUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ToolSpecMutation object of the builder.
func (_u *ToolSpecUpdate) Mutation() *ToolSpecMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolSpecUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolSpecUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolSpecUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolSpecUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ToolSpecUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := toolspec.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolSpecUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolspec.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolSpec.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolSpecUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolspec.Table, toolspec.Columns, sqlgraph.NewFieldSpec(toolspec.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(toolspec.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolspec.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(toolspec.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolspec.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(toolspec.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputSchema(); ok {
		_spec.SetField(toolspec.FieldInputSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(toolspec.FieldOutputSchema, field.TypeJSON, value)
	}
	if _u.mutation.OutputSchemaCleared() {
		_spec.ClearField(toolspec.FieldOutputSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(toolspec.FieldCommand, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommand(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolspec.FieldCommand, value)
		})
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(toolspec.FieldCommand, field.TypeJSON)
	}
	if value, ok := _u.mutation.Handler(); ok {
		_spec.SetField(toolspec.FieldHandler, field.TypeString, value)
	}
	if _u.mutation.HandlerCleared() {
		_spec.ClearField(toolspec.FieldHandler, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultTimeoutMs(); ok {
		_spec.SetField(toolspec.FieldDefaultTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDefaultTimeoutMs(); ok {
		_spec.AddField(toolspec.FieldDefaultTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalRuns(); ok {
		_spec.SetField(toolspec.FieldTotalRuns, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalRuns(); ok {
		_spec.AddField(toolspec.FieldTotalRuns, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(toolspec.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(toolspec.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(toolspec.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailures(); ok {
		_spec.AddField(toolspec.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgLatencyMs(); ok {
		_spec.SetField(toolspec.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatencyMs(); ok {
		_spec.AddField(toolspec.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(toolspec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(toolspec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(toolspec.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolspec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolSpecUpdateOne is the builder for updating a single ToolSpec entity.
type ToolSpecUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolSpecMutation
}

// SetName sets the "name" field.
func (_u *ToolSpecUpdateOne) SetName(v string) *ToolSpecUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolSpecUpdateOne) SetNillableName(v *string) *ToolSpecUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolSpecUpdateOne) SetStatus(v toolspec.Status) *ToolSpecUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolSpecUpdateOne) SetNillableStatus(v *toolspec.Status) *ToolSpecUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *ToolSpecUpdateOne) SetCapabilities(v []string) *ToolSpecUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *ToolSpecUpdateOne) AppendCapabilities(v []string) *ToolSpecUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *ToolSpecUpdateOne) ClearCapabilities() *ToolSpecUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetInputSchema sets the "input_schema" field.
func (_u *ToolSpecUpdateOne) SetInputSchema(v map[string]interface{}) *ToolSpecUpdateOne {
	_u.mutation.SetInputSchema(v)
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *ToolSpecUpdateOne) SetOutputSchema(v map[string]interface{}) *ToolSpecUpdateOne {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// ClearOutputSchema clears the value of the "output_schema" field.
func (_u *ToolSpecUpdateOne) ClearOutputSchema() *ToolSpecUpdateOne {
	_u.mutation.ClearOutputSchema()
	return _u
}

// SetCommand sets the "command" field.
func (_u *ToolSpecUpdateOne) SetCommand(v []string) *ToolSpecUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// AppendCommand appends value to the "command" field.
func (_u *ToolSpecUpdateOne) AppendCommand(v []string) *ToolSpecUpdateOne {
	_u.mutation.AppendCommand(v)
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *ToolSpecUpdateOne) ClearCommand() *ToolSpecUpdateOne {
	_u.mutation.ClearCommand()
	return _u
}

// SetHandler sets the "handler" field.
func (_u *ToolSpecUpdateOne) SetHandler(v string) *ToolSpecUpdateOne {
	_u.mutation.SetHandler(v)
	return _u
}

// SetNillableHandler sets the "handler" field if the given value is not nil.
func (_u *ToolSpecUpdateOne) SetNillableHandler(v *string) *ToolSpecUpdateOne {
	if v != nil {
		_u.SetHandler(*v)
	}
	return _u
}

// ClearHandler clears the value of the "handler" field.
func (_u *ToolSpecUpdateOne) ClearHandler() *ToolSpecUpdateOne {
	_u.mutation.ClearHandler()
	return _u
}

// SetDefaultTimeoutMs sets the "default_timeout_ms" field.
func (_u *ToolSpecUpdateOne) SetDefaultTimeoutMs(v int64) *ToolSpecUpdateOne {
	_u.mutation.ResetDefaultTimeoutMs()
	_u.mutation.SetDefaultTimeoutMs(v)
	return _u
}

// SetNillableDefaultTimeoutMs sets the "default_timeout_ms" field if the given value is not nil.
func (_u *ToolSpecUpdateOne) SetNillableDefaultTimeoutMs(v *int64) *ToolSpecUpdateOne {
	if v != nil {
		_u.SetDefaultTimeoutMs(*v)
	}
	return _u
}

// AddDefaultTimeoutMs adds value to the "default_timeout_ms" field.
func (_u *ToolSpecUpdateOne) AddDefaultTimeoutMs(v int64) *ToolSpecUpdateOne {
	_u.mutation.AddDefaultTimeoutMs(v)
	return _u
}

// SetTotalRuns sets the "total_runs" field.
func (_u *ToolSpecUpdateOne) SetTotalRuns(v int64) *ToolSpecUpdateOne {
	_u.mutation.ResetTotalRuns()
	_u.mutation.SetTotalRuns(v)
	return _u
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_u *ToolSpecUpdateOne) SetNillableTotalRuns(v *int64) *ToolSpecUpdateOne {
	if v != nil {
		_u.SetTotalRuns(*v)
	}
	return _u
}

// AddTotalRuns adds value to the "total_runs" field.
func (_u *ToolSpecUpdateOne) AddTotalRuns(v int64) *ToolSpecUpdateOne {
	_u.mutation.AddTotalRuns(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *ToolSpecUpdateOne) SetSuccesses(v int64) *ToolSpecUpdateOne {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *ToolSpecUpdateOne) SetNillableSuccesses(v *int64) *ToolSpecUpdateOne {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *ToolSpecUpdateOne) AddSuccesses(v int64) *ToolSpecUpdateOne {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetFailures sets the "failures" field.
func (_u *ToolSpecUpdateOne) SetFailures(v int64) *ToolSpecUpdateOne {
	_u.mutation.ResetFailures()
	_u.mutation.SetFailures(v)
	return _u
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_u *ToolSpecUpdateOne) SetNillableFailures(v *int64) *ToolSpecUpdateOne {
	if v != nil {
		_u.SetFailures(*v)
	}
	return _u
}

// AddFailures adds value to the "failures" field.
func (_u *ToolSpecUpdateOne) AddFailures(v int64) *ToolSpecUpdateOne {
	_u.mutation.AddFailures(v)
	return _u
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_u *ToolSpecUpdateOne) SetAvgLatencyMs(v float64) *ToolSpecUpdateOne {
	_u.mutation.ResetAvgLatencyMs()
	_u.mutation.SetAvgLatencyMs(v)
	return _u
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_u *ToolSpecUpdateOne) SetNillableAvgLatencyMs(v *float64) *ToolSpecUpdateOne {
	if v != nil {
		_u.SetAvgLatencyMs(*v)
	}
	return _u
}

// AddAvgLatencyMs adds value to the "avg_latency_ms" field.
func (_u *ToolSpecUpdateOne) AddAvgLatencyMs(v float64) *ToolSpecUpdateOne {
	_u.mutation.AddAvgLatencyMs(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ToolSpecUpdateOne) SetVersion(v int) *ToolSpecUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ToolSpecUpdateOne) SetNillableVersion(v *int) *ToolSpecUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ToolSpecUpdateOne) AddVersion(v int) *ToolSpecUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ToolSpecUpdateOne) SetUpdatedAt(v time.Time) *ToolSpecUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ToolSpecMutation object of the builder.
func (_u *ToolSpecUpdateOne) Mutation() *ToolSpecMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolSpecUpdate builder.
func (_u *ToolSpecUpdateOne) Where(ps ...predicate.ToolSpec) *ToolSpecUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolSpecUpdateOne) Select(field string, fields ...string) *ToolSpecUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolSpec entity.
func (_u *ToolSpecUpdateOne) Save(ctx context.Context) (*ToolSpec, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolSpecUpdateOne) SaveX(ctx context.Context) *ToolSpec {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolSpecUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolSpecUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ToolSpecUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := toolspec.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolSpecUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolspec.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolSpec.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolSpecUpdateOne) sqlSave(ctx context.Context) (_node *ToolSpec, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolspec.Table, toolspec.Columns, sqlgraph.NewFieldSpec(toolspec.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolSpec.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolspec.FieldID)
		for _, f := range fields {
			if !toolspec.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolspec.FieldID {
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
		_spec.SetField(toolspec.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolspec.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(toolspec.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolspec.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(toolspec.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputSchema(); ok {
		_spec.SetField(toolspec.FieldInputSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(toolspec.FieldOutputSchema, field.TypeJSON, value)
	}
	if _u.mutation.OutputSchemaCleared() {
		_spec.ClearField(toolspec.FieldOutputSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(toolspec.FieldCommand, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommand(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolspec.FieldCommand, value)
		})
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(toolspec.FieldCommand, field.TypeJSON)
	}
	if value, ok := _u.mutation.Handler(); ok {
		_spec.SetField(toolspec.FieldHandler, field.TypeString, value)
	}
	if _u.mutation.HandlerCleared() {
		_spec.ClearField(toolspec.FieldHandler, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultTimeoutMs(); ok {
		_spec.SetField(toolspec.FieldDefaultTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDefaultTimeoutMs(); ok {
		_spec.AddField(toolspec.FieldDefaultTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalRuns(); ok {
		_spec.SetField(toolspec.FieldTotalRuns, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalRuns(); ok {
		_spec.AddField(toolspec.FieldTotalRuns, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(toolspec.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(toolspec.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(toolspec.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailures(); ok {
		_spec.AddField(toolspec.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgLatencyMs(); ok {
		_spec.SetField(toolspec.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatencyMs(); ok {
		_spec.AddField(toolspec.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(toolspec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(toolspec.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(toolspec.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ToolSpec{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolspec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
