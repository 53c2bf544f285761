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
	"github.com/codeready-toolchain/maestro/ent/learningpattern"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// LearningPatternUpdate is the builder for updating LearningPattern entities.
type LearningPatternUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPatternMutation
}

// Where appends a list predicates to the LearningPatternUpdate builder.
func (_u *LearningPatternUpdate) Where(ps ...predicate.LearningPattern) *LearningPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *LearningPatternUpdate) SetKind(v learningpattern.Kind) *LearningPatternUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableKind(v *learningpattern.Kind) *LearningPatternUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LearningPatternUpdate) SetLevel(v learningpattern.Level) *LearningPatternUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableLevel(v *learningpattern.Level) *LearningPatternUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSignature sets the "signature" field.
func (_u *LearningPatternUpdate) SetSignature(v string) *LearningPatternUpdate {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableSignature(v *string) *LearningPatternUpdate {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *LearningPatternUpdate) SetBody(v map[string]interface{}) *LearningPatternUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *LearningPatternUpdate) ClearBody() *LearningPatternUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetObservedSuccessRate sets the "observed_success_rate" field.
func (_u *LearningPatternUpdate) SetObservedSuccessRate(v float64) *LearningPatternUpdate {
	_u.mutation.ResetObservedSuccessRate()
	_u.mutation.SetObservedSuccessRate(v)
	return _u
}

// SetNillableObservedSuccessRate sets the "observed_success_rate" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableObservedSuccessRate(v *float64) *LearningPatternUpdate {
	if v != nil {
		_u.SetObservedSuccessRate(*v)
	}
	return _u
}

// AddObservedSuccessRate adds value to the "observed_success_rate" field.
func (_u *LearningPatternUpdate) AddObservedSuccessRate(v float64) *LearningPatternUpdate {
	_u.mutation.AddObservedSuccessRate(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *LearningPatternUpdate) SetSampleCount(v int64) *LearningPatternUpdate {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableSampleCount(v *int64) *LearningPatternUpdate {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *LearningPatternUpdate) AddSampleCount(v int64) *LearningPatternUpdate {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetLastObservedAt sets the "last_observed_at" field.
func (_u *LearningPatternUpdate) SetLastObservedAt(v time.Time) *LearningPatternUpdate {
	_u.mutation.SetLastObservedAt(v)
	return _u
}

// SetNillableLastObservedAt sets the "last_observed_at" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableLastObservedAt(v *time.Time) *LearningPatternUpdate {
	if v != nil {
		_u.SetLastObservedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningPatternUpdate) SetUpdatedAt(v time.Time) *LearningPatternUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningPatternMutation object of the builder.
func (_u *LearningPatternUpdate) Mutation() *LearningPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPatternUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningPatternUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningpattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPatternUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := learningpattern.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := learningpattern.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.level": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpattern.Table, learningpattern.Columns, sqlgraph.NewFieldSpec(learningpattern.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(learningpattern.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(learningpattern.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(learningpattern.FieldSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(learningpattern.FieldBody, field.TypeJSON, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(learningpattern.FieldBody, field.TypeJSON)
	}
	if value, ok := _u.mutation.ObservedSuccessRate(); ok {
		_spec.SetField(learningpattern.FieldObservedSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedObservedSuccessRate(); ok {
		_spec.AddField(learningpattern.FieldObservedSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(learningpattern.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(learningpattern.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastObservedAt(); ok {
		_spec.SetField(learningpattern.FieldLastObservedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningpattern.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPatternUpdateOne is the builder for updating a single LearningPattern entity.
type LearningPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPatternMutation
}

// SetKind sets the "kind" field.
func (_u *LearningPatternUpdateOne) SetKind(v learningpattern.Kind) *LearningPatternUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableKind(v *learningpattern.Kind) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LearningPatternUpdateOne) SetLevel(v learningpattern.Level) *LearningPatternUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableLevel(v *learningpattern.Level) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSignature sets the "signature" field.
func (_u *LearningPatternUpdateOne) SetSignature(v string) *LearningPatternUpdateOne {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableSignature(v *string) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *LearningPatternUpdateOne) SetBody(v map[string]interface{}) *LearningPatternUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *LearningPatternUpdateOne) ClearBody() *LearningPatternUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetObservedSuccessRate sets the "observed_success_rate" field.
func (_u *LearningPatternUpdateOne) SetObservedSuccessRate(v float64) *LearningPatternUpdateOne {
	_u.mutation.ResetObservedSuccessRate()
	_u.mutation.SetObservedSuccessRate(v)
	return _u
}

// SetNillableObservedSuccessRate sets the "observed_success_rate" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableObservedSuccessRate(v *float64) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetObservedSuccessRate(*v)
	}
	return _u
}

// AddObservedSuccessRate adds value to the "observed_success_rate" field.
func (_u *LearningPatternUpdateOne) AddObservedSuccessRate(v float64) *LearningPatternUpdateOne {
	_u.mutation.AddObservedSuccessRate(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *LearningPatternUpdateOne) SetSampleCount(v int64) *LearningPatternUpdateOne {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableSampleCount(v *int64) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *LearningPatternUpdateOne) AddSampleCount(v int64) *LearningPatternUpdateOne {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetLastObservedAt sets the "last_observed_at" field.
func (_u *LearningPatternUpdateOne) SetLastObservedAt(v time.Time) *LearningPatternUpdateOne {
	_u.mutation.SetLastObservedAt(v)
	return _u
}

// SetNillableLastObservedAt sets the "last_observed_at" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableLastObservedAt(v *time.Time) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetLastObservedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningPatternUpdateOne) SetUpdatedAt(v time.Time) *LearningPatternUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningPatternMutation object of the builder.
func (_u *LearningPatternUpdateOne) Mutation() *LearningPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPatternUpdate builder.
func (_u *LearningPatternUpdateOne) Where(ps ...predicate.LearningPattern) *LearningPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPatternUpdateOne) Select(field string, fields ...string) *LearningPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPattern entity.
func (_u *LearningPatternUpdateOne) Save(ctx context.Context) (*LearningPattern, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPatternUpdateOne) SaveX(ctx context.Context) *LearningPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningPatternUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningpattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPatternUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := learningpattern.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := learningpattern.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.level": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPatternUpdateOne) sqlSave(ctx context.Context) (_node *LearningPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpattern.Table, learningpattern.Columns, sqlgraph.NewFieldSpec(learningpattern.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningpattern.FieldID)
		for _, f := range fields {
			if !learningpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningpattern.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(learningpattern.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(learningpattern.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(learningpattern.FieldSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(learningpattern.FieldBody, field.TypeJSON, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(learningpattern.FieldBody, field.TypeJSON)
	}
	if value, ok := _u.mutation.ObservedSuccessRate(); ok {
		_spec.SetField(learningpattern.FieldObservedSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedObservedSuccessRate(); ok {
		_spec.AddField(learningpattern.FieldObservedSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(learningpattern.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(learningpattern.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastObservedAt(); ok {
		_spec.SetField(learningpattern.FieldLastObservedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningpattern.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearningPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
