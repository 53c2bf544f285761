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
	"github.com/codeready-toolchain/maestro/ent/modelendpoint"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ModelEndpointUpdate is the builder for updating ModelEndpoint entities.
type ModelEndpointUpdate struct {
	config
	hooks    []Hook
	mutation *ModelEndpointMutation
}

// Where appends a list predicates to the ModelEndpointUpdate builder.
func (_u *ModelEndpointUpdate) Where(ps ...predicate.ModelEndpoint) *ModelEndpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ModelEndpointUpdate) SetName(v string) *ModelEndpointUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableName(v *string) *ModelEndpointUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ModelEndpointUpdate) SetURL(v string) *ModelEndpointUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableURL(v *string) *ModelEndpointUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ModelEndpointUpdate) SetModel(v string) *ModelEndpointUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableModel(v *string) *ModelEndpointUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *ModelEndpointUpdate) SetCapabilities(v []string) *ModelEndpointUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *ModelEndpointUpdate) AppendCapabilities(v []string) *ModelEndpointUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (_u *ModelEndpointUpdate) SetMaxConcurrent(v int) *ModelEndpointUpdate {
	_u.mutation.ResetMaxConcurrent()
	_u.mutation.SetMaxConcurrent(v)
	return _u
}

// SetNillableMaxConcurrent sets the "max_concurrent" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableMaxConcurrent(v *int) *ModelEndpointUpdate {
	if v != nil {
		_u.SetMaxConcurrent(*v)
	}
	return _u
}

// AddMaxConcurrent adds value to the "max_concurrent" field.
func (_u *ModelEndpointUpdate) AddMaxConcurrent(v int) *ModelEndpointUpdate {
	_u.mutation.AddMaxConcurrent(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ModelEndpointUpdate) SetPriority(v int) *ModelEndpointUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillablePriority(v *int) *ModelEndpointUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ModelEndpointUpdate) AddPriority(v int) *ModelEndpointUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModelEndpointUpdate) SetStatus(v modelendpoint.Status) *ModelEndpointUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableStatus(v *modelendpoint.Status) *ModelEndpointUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHealthy sets the "healthy" field.
func (_u *ModelEndpointUpdate) SetHealthy(v bool) *ModelEndpointUpdate {
	_u.mutation.SetHealthy(v)
	return _u
}

// SetNillableHealthy sets the "healthy" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableHealthy(v *bool) *ModelEndpointUpdate {
	if v != nil {
		_u.SetHealthy(*v)
	}
	return _u
}

// SetLastHealthCheck sets the "last_health_check" field.
func (_u *ModelEndpointUpdate) SetLastHealthCheck(v time.Time) *ModelEndpointUpdate {
	_u.mutation.SetLastHealthCheck(v)
	return _u
}

// SetNillableLastHealthCheck sets the "last_health_check" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableLastHealthCheck(v *time.Time) *ModelEndpointUpdate {
	if v != nil {
		_u.SetLastHealthCheck(*v)
	}
	return _u
}

// ClearLastHealthCheck clears the value of the "last_health_check" field.
func (_u *ModelEndpointUpdate) ClearLastHealthCheck() *ModelEndpointUpdate {
	_u.mutation.ClearLastHealthCheck()
	return _u
}

// SetTotalRequests sets the "total_requests" field.
func (_u *ModelEndpointUpdate) SetTotalRequests(v int64) *ModelEndpointUpdate {
	_u.mutation.ResetTotalRequests()
	_u.mutation.SetTotalRequests(v)
	return _u
}

// SetNillableTotalRequests sets the "total_requests" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableTotalRequests(v *int64) *ModelEndpointUpdate {
	if v != nil {
		_u.SetTotalRequests(*v)
	}
	return _u
}

// AddTotalRequests adds value to the "total_requests" field.
func (_u *ModelEndpointUpdate) AddTotalRequests(v int64) *ModelEndpointUpdate {
	_u.mutation.AddTotalRequests(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *ModelEndpointUpdate) SetSuccesses(v int64) *ModelEndpointUpdate {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableSuccesses(v *int64) *ModelEndpointUpdate {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *ModelEndpointUpdate) AddSuccesses(v int64) *ModelEndpointUpdate {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetFailures sets the "failures" field.
func (_u *ModelEndpointUpdate) SetFailures(v int64) *ModelEndpointUpdate {
	_u.mutation.ResetFailures()
	_u.mutation.SetFailures(v)
	return _u
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableFailures(v *int64) *ModelEndpointUpdate {
	if v != nil {
		_u.SetFailures(*v)
	}
	return _u
}

// AddFailures adds value to the "failures" field.
func (_u *ModelEndpointUpdate) AddFailures(v int64) *ModelEndpointUpdate {
	_u.mutation.AddFailures(v)
	return _u
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_u *ModelEndpointUpdate) SetAvgLatencyMs(v float64) *ModelEndpointUpdate {
	_u.mutation.ResetAvgLatencyMs()
	_u.mutation.SetAvgLatencyMs(v)
	return _u
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableAvgLatencyMs(v *float64) *ModelEndpointUpdate {
	if v != nil {
		_u.SetAvgLatencyMs(*v)
	}
	return _u
}

// AddAvgLatencyMs adds value to the "avg_latency_ms" field.
func (_u *ModelEndpointUpdate) AddAvgLatencyMs(v float64) *ModelEndpointUpdate {
	_u.mutation.AddAvgLatencyMs(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ModelEndpointUpdate) SetVersion(v int) *ModelEndpointUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ModelEndpointUpdate) SetNillableVersion(v *int) *ModelEndpointUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ModelEndpointUpdate) AddVersion(v int) *ModelEndpointUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelEndpointUpdate) SetUpdatedAt(v time.Time) *ModelEndpointUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelEndpointMutation object of the builder.
func (_u *ModelEndpointUpdate) Mutation() *ModelEndpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelEndpointUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelEndpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelEndpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelEndpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelEndpointUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelendpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelEndpointUpdate) check() error {
	if v, ok := _u.mutation.MaxConcurrent(); ok {
		if err := modelendpoint.MaxConcurrentValidator(v); err != nil {
			return &ValidationError{Name: "max_concurrent", err: fmt.Errorf(`ent: validator failed for field "ModelEndpoint.max_concurrent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := modelendpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModelEndpoint.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelEndpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelendpoint.Table, modelendpoint.Columns, sqlgraph.NewFieldSpec(modelendpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(modelendpoint.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(modelendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(modelendpoint.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(modelendpoint.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, modelendpoint.FieldCapabilities, value)
		})
	}
	if value, ok := _u.mutation.MaxConcurrent(); ok {
		_spec.SetField(modelendpoint.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrent(); ok {
		_spec.AddField(modelendpoint.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(modelendpoint.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(modelendpoint.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(modelendpoint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Healthy(); ok {
		_spec.SetField(modelendpoint.FieldHealthy, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastHealthCheck(); ok {
		_spec.SetField(modelendpoint.FieldLastHealthCheck, field.TypeTime, value)
	}
	if _u.mutation.LastHealthCheckCleared() {
		_spec.ClearField(modelendpoint.FieldLastHealthCheck, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalRequests(); ok {
		_spec.SetField(modelendpoint.FieldTotalRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalRequests(); ok {
		_spec.AddField(modelendpoint.FieldTotalRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(modelendpoint.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(modelendpoint.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(modelendpoint.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailures(); ok {
		_spec.AddField(modelendpoint.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgLatencyMs(); ok {
		_spec.SetField(modelendpoint.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatencyMs(); ok {
		_spec.AddField(modelendpoint.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(modelendpoint.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(modelendpoint.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelendpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelEndpointUpdateOne is the builder for updating a single ModelEndpoint entity.
type ModelEndpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelEndpointMutation
}

// SetName sets the "name" field.
func (_u *ModelEndpointUpdateOne) SetName(v string) *ModelEndpointUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableName(v *string) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ModelEndpointUpdateOne) SetURL(v string) *ModelEndpointUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableURL(v *string) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ModelEndpointUpdateOne) SetModel(v string) *ModelEndpointUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableModel(v *string) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *ModelEndpointUpdateOne) SetCapabilities(v []string) *ModelEndpointUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *ModelEndpointUpdateOne) AppendCapabilities(v []string) *ModelEndpointUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (_u *ModelEndpointUpdateOne) SetMaxConcurrent(v int) *ModelEndpointUpdateOne {
	_u.mutation.ResetMaxConcurrent()
	_u.mutation.SetMaxConcurrent(v)
	return _u
}

// SetNillableMaxConcurrent sets the "max_concurrent" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableMaxConcurrent(v *int) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetMaxConcurrent(*v)
	}
	return _u
}

// AddMaxConcurrent adds value to the "max_concurrent" field.
func (_u *ModelEndpointUpdateOne) AddMaxConcurrent(v int) *ModelEndpointUpdateOne {
	_u.mutation.AddMaxConcurrent(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ModelEndpointUpdateOne) SetPriority(v int) *ModelEndpointUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillablePriority(v *int) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ModelEndpointUpdateOne) AddPriority(v int) *ModelEndpointUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModelEndpointUpdateOne) SetStatus(v modelendpoint.Status) *ModelEndpointUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableStatus(v *modelendpoint.Status) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHealthy sets the "healthy" field.
func (_u *ModelEndpointUpdateOne) SetHealthy(v bool) *ModelEndpointUpdateOne {
	_u.mutation.SetHealthy(v)
	return _u
}

// SetNillableHealthy sets the "healthy" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableHealthy(v *bool) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetHealthy(*v)
	}
	return _u
}

// SetLastHealthCheck sets the "last_health_check" field.
func (_u *ModelEndpointUpdateOne) SetLastHealthCheck(v time.Time) *ModelEndpointUpdateOne {
	_u.mutation.SetLastHealthCheck(v)
	return _u
}

// SetNillableLastHealthCheck sets the "last_health_check" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableLastHealthCheck(v *time.Time) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetLastHealthCheck(*v)
	}
	return _u
}

// ClearLastHealthCheck clears the value of the "last_health_check" field.
func (_u *ModelEndpointUpdateOne) ClearLastHealthCheck() *ModelEndpointUpdateOne {
	_u.mutation.ClearLastHealthCheck()
	return _u
}

// SetTotalRequests sets the "total_requests" field.
func (_u *ModelEndpointUpdateOne) SetTotalRequests(v int64) *ModelEndpointUpdateOne {
	_u.mutation.ResetTotalRequests()
	_u.mutation.SetTotalRequests(v)
	return _u
}

// SetNillableTotalRequests sets the "total_requests" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableTotalRequests(v *int64) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetTotalRequests(*v)
	}
	return _u
}

// AddTotalRequests adds value to the "total_requests" field.
func (_u *ModelEndpointUpdateOne) AddTotalRequests(v int64) *ModelEndpointUpdateOne {
	_u.mutation.AddTotalRequests(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *ModelEndpointUpdateOne) SetSuccesses(v int64) *ModelEndpointUpdateOne {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableSuccesses(v *int64) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *ModelEndpointUpdateOne) AddSuccesses(v int64) *ModelEndpointUpdateOne {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetFailures sets the "failures" field.
func (_u *ModelEndpointUpdateOne) SetFailures(v int64) *ModelEndpointUpdateOne {
	_u.mutation.ResetFailures()
	_u.mutation.SetFailures(v)
	return _u
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableFailures(v *int64) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetFailures(*v)
	}
	return _u
}

// AddFailures adds value to the "failures" field.
func (_u *ModelEndpointUpdateOne) AddFailures(v int64) *ModelEndpointUpdateOne {
	_u.mutation.AddFailures(v)
	return _u
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_u *ModelEndpointUpdateOne) SetAvgLatencyMs(v float64) *ModelEndpointUpdateOne {
	_u.mutation.ResetAvgLatencyMs()
	_u.mutation.SetAvgLatencyMs(v)
	return _u
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableAvgLatencyMs(v *float64) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetAvgLatencyMs(*v)
	}
	return _u
}

// AddAvgLatencyMs adds value to the "avg_latency_ms" field.
func (_u *ModelEndpointUpdateOne) AddAvgLatencyMs(v float64) *ModelEndpointUpdateOne {
	_u.mutation.AddAvgLatencyMs(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ModelEndpointUpdateOne) SetVersion(v int) *ModelEndpointUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ModelEndpointUpdateOne) SetNillableVersion(v *int) *ModelEndpointUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ModelEndpointUpdateOne) AddVersion(v int) *ModelEndpointUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelEndpointUpdateOne) SetUpdatedAt(v time.Time) *ModelEndpointUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelEndpointMutation object of the builder.
func (_u *ModelEndpointUpdateOne) Mutation() *ModelEndpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelEndpointUpdate builder.
func (_u *ModelEndpointUpdateOne) Where(ps ...predicate.ModelEndpoint) *ModelEndpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelEndpointUpdateOne) Select(field string, fields ...string) *ModelEndpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelEndpoint entity.
func (_u *ModelEndpointUpdateOne) Save(ctx context.Context) (*ModelEndpoint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelEndpointUpdateOne) SaveX(ctx context.Context) *ModelEndpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelEndpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelEndpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelEndpointUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelendpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelEndpointUpdateOne) check() error {
	if v, ok := _u.mutation.MaxConcurrent(); ok {
		if err := modelendpoint.MaxConcurrentValidator(v); err != nil {
			return &ValidationError{Name: "max_concurrent", err: fmt.Errorf(`ent: validator failed for field "ModelEndpoint.max_concurrent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := modelendpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModelEndpoint.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelEndpointUpdateOne) sqlSave(ctx context.Context) (_node *ModelEndpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelendpoint.Table, modelendpoint.Columns, sqlgraph.NewFieldSpec(modelendpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelEndpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelendpoint.FieldID)
		for _, f := range fields {
			if !modelendpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelendpoint.FieldID {
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
		_spec.SetField(modelendpoint.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(modelendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(modelendpoint.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(modelendpoint.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, modelendpoint.FieldCapabilities, value)
		})
	}
	if value, ok := _u.mutation.MaxConcurrent(); ok {
		_spec.SetField(modelendpoint.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrent(); ok {
		_spec.AddField(modelendpoint.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(modelendpoint.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(modelendpoint.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(modelendpoint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Healthy(); ok {
		_spec.SetField(modelendpoint.FieldHealthy, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastHealthCheck(); ok {
		_spec.SetField(modelendpoint.FieldLastHealthCheck, field.TypeTime, value)
	}
	if _u.mutation.LastHealthCheckCleared() {
		_spec.ClearField(modelendpoint.FieldLastHealthCheck, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalRequests(); ok {
		_spec.SetField(modelendpoint.FieldTotalRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalRequests(); ok {
		_spec.AddField(modelendpoint.FieldTotalRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(modelendpoint.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(modelendpoint.FieldSuccesses, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(modelendpoint.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailures(); ok {
		_spec.AddField(modelendpoint.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgLatencyMs(); ok {
		_spec.SetField(modelendpoint.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatencyMs(); ok {
		_spec.AddField(modelendpoint.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(modelendpoint.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(modelendpoint.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelendpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ModelEndpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
