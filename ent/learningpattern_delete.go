// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/learningpattern"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// LearningPatternDelete is the builder for deleting a LearningPattern entity.
type LearningPatternDelete struct {
	config
	hooks    []Hook
	mutation *LearningPatternMutation
}

// Where appends a list predicates to the LearningPatternDelete builder.
func (_d *LearningPatternDelete) Where(ps ...predicate.LearningPattern) *LearningPatternDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LearningPatternDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearningPatternDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LearningPatternDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(learningpattern.Table, sqlgraph.NewFieldSpec(learningpattern.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LearningPatternDeleteOne is the builder for deleting a single LearningPattern entity.
type LearningPatternDeleteOne struct {
	_d *LearningPatternDelete
}

// Where appends a list predicates to the LearningPatternDelete builder.
func (_d *LearningPatternDeleteOne) Where(ps ...predicate.LearningPattern) *LearningPatternDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LearningPatternDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{learningpattern.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearningPatternDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
