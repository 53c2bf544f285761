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
	"github.com/codeready-toolchain/maestro/ent/step"
)

// StepUpdate is the builder for updating Step entities.
type StepUpdate struct {
	config
	hooks    []Hook
	mutation *StepMutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdate) Where(ps ...predicate.Step) *StepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIndex sets the "index" field.
func (_u *StepUpdate) SetIndex(v int) *StepUpdate {
	_u.mutation.ResetIndex()
	_u.mutation.SetIndex(v)
	return _u
}

// SetNillableIndex sets the "index" field if the given value is not nil.
func (_u *StepUpdate) SetNillableIndex(v *int) *StepUpdate {
	if v != nil {
		_u.SetIndex(*v)
	}
	return _u
}

// AddIndex adds value to the "index" field.
func (_u *StepUpdate) AddIndex(v int) *StepUpdate {
	_u.mutation.AddIndex(v)
	return _u
}

// SetName sets the "name" field.
func (_u *StepUpdate) SetName(v string) *StepUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StepUpdate) SetNillableName(v *string) *StepUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StepUpdate) SetDescription(v string) *StepUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StepUpdate) SetNillableDescription(v *string) *StepUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StepUpdate) ClearDescription() *StepUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetType sets the "type" field.
func (_u *StepUpdate) SetType(v step.Type) *StepUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *StepUpdate) SetNillableType(v *step.Type) *StepUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetExecutorKind sets the "executor_kind" field.
func (_u *StepUpdate) SetExecutorKind(v step.ExecutorKind) *StepUpdate {
	_u.mutation.SetExecutorKind(v)
	return _u
}

// SetNillableExecutorKind sets the "executor_kind" field if the given value is not nil.
func (_u *StepUpdate) SetNillableExecutorKind(v *step.ExecutorKind) *StepUpdate {
	if v != nil {
		_u.SetExecutorKind(*v)
	}
	return _u
}

// SetExecutorRef sets the "executor_ref" field.
func (_u *StepUpdate) SetExecutorRef(v string) *StepUpdate {
	_u.mutation.SetExecutorRef(v)
	return _u
}

// SetNillableExecutorRef sets the "executor_ref" field if the given value is not nil.
func (_u *StepUpdate) SetNillableExecutorRef(v *string) *StepUpdate {
	if v != nil {
		_u.SetExecutorRef(*v)
	}
	return _u
}

// ClearExecutorRef clears the value of the "executor_ref" field.
func (_u *StepUpdate) ClearExecutorRef() *StepUpdate {
	_u.mutation.ClearExecutorRef()
	return _u
}

// SetTeamMembers sets the "team_members" field.
func (_u *StepUpdate) SetTeamMembers(v []string) *StepUpdate {
	_u.mutation.SetTeamMembers(v)
	return _u
}

// AppendTeamMembers appends value to the "team_members" field.
func (_u *StepUpdate) AppendTeamMembers(v []string) *StepUpdate {
	_u.mutation.AppendTeamMembers(v)
	return _u
}

// ClearTeamMembers clears the value of the "team_members" field.
func (_u *StepUpdate) ClearTeamMembers() *StepUpdate {
	_u.mutation.ClearTeamMembers()
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *StepUpdate) SetInputs(v map[string]interface{}) *StepUpdate {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *StepUpdate) ClearInputs() *StepUpdate {
	_u.mutation.ClearInputs()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *StepUpdate) SetOutputs(v map[string]interface{}) *StepUpdate {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *StepUpdate) ClearOutputs() *StepUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *StepUpdate) SetDependencies(v []string) *StepUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *StepUpdate) AppendDependencies(v []string) *StepUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *StepUpdate) ClearDependencies() *StepUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *StepUpdate) SetTimeoutMs(v int64) *StepUpdate {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *StepUpdate) SetNillableTimeoutMs(v *int64) *StepUpdate {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *StepUpdate) AddTimeoutMs(v int64) *StepUpdate {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *StepUpdate) SetMaxAttempts(v int) *StepUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *StepUpdate) SetNillableMaxAttempts(v *int) *StepUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *StepUpdate) AddMaxAttempts(v int) *StepUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetBackoffBaseMs sets the "backoff_base_ms" field.
func (_u *StepUpdate) SetBackoffBaseMs(v int64) *StepUpdate {
	_u.mutation.ResetBackoffBaseMs()
	_u.mutation.SetBackoffBaseMs(v)
	return _u
}

// SetNillableBackoffBaseMs sets the "backoff_base_ms" field if the given value is not nil.
func (_u *StepUpdate) SetNillableBackoffBaseMs(v *int64) *StepUpdate {
	if v != nil {
		_u.SetBackoffBaseMs(*v)
	}
	return _u
}

// AddBackoffBaseMs adds value to the "backoff_base_ms" field.
func (_u *StepUpdate) AddBackoffBaseMs(v int64) *StepUpdate {
	_u.mutation.AddBackoffBaseMs(v)
	return _u
}

// SetApprovalRequired sets the "approval_required" field.
func (_u *StepUpdate) SetApprovalRequired(v bool) *StepUpdate {
	_u.mutation.SetApprovalRequired(v)
	return _u
}

// SetNillableApprovalRequired sets the "approval_required" field if the given value is not nil.
func (_u *StepUpdate) SetNillableApprovalRequired(v *bool) *StepUpdate {
	if v != nil {
		_u.SetApprovalRequired(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *StepUpdate) SetRiskLevel(v step.RiskLevel) *StepUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *StepUpdate) SetNillableRiskLevel(v *step.RiskLevel) *StepUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetFunctionCall sets the "function_call" field.
func (_u *StepUpdate) SetFunctionCall(v map[string]interface{}) *StepUpdate {
	_u.mutation.SetFunctionCall(v)
	return _u
}

// ClearFunctionCall clears the value of the "function_call" field.
func (_u *StepUpdate) ClearFunctionCall() *StepUpdate {
	_u.mutation.ClearFunctionCall()
	return _u
}

// SetChecks sets the "checks" field.
func (_u *StepUpdate) SetChecks(v map[string]interface{}) *StepUpdate {
	_u.mutation.SetChecks(v)
	return _u
}

// ClearChecks clears the value of the "checks" field.
func (_u *StepUpdate) ClearChecks() *StepUpdate {
	_u.mutation.ClearChecks()
	return _u
}

// SetState sets the "state" field.
func (_u *StepUpdate) SetState(v step.State) *StepUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *StepUpdate) SetNillableState(v *step.State) *StepUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StepUpdate) SetAttempts(v int) *StepUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StepUpdate) SetNillableAttempts(v *int) *StepUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StepUpdate) AddAttempts(v int) *StepUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *StepUpdate) SetErrorKind(v string) *StepUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *StepUpdate) SetNillableErrorKind(v *string) *StepUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *StepUpdate) ClearErrorKind() *StepUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *StepUpdate) SetReasonCode(v string) *StepUpdate {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *StepUpdate) SetNillableReasonCode(v *string) *StepUpdate {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// ClearReasonCode clears the value of the "reason_code" field.
func (_u *StepUpdate) ClearReasonCode() *StepUpdate {
	_u.mutation.ClearReasonCode()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *StepUpdate) SetQualityScore(v float64) *StepUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *StepUpdate) SetNillableQualityScore(v *float64) *StepUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *StepUpdate) AddQualityScore(v float64) *StepUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *StepUpdate) ClearQualityScore() *StepUpdate {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdate) SetStartedAt(v time.Time) *StepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStartedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdate) ClearStartedAt() *StepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdate) SetCompletedAt(v time.Time) *StepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableCompletedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdate) ClearCompletedAt() *StepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StepUpdate) SetUpdatedAt(v time.Time) *StepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdate) Mutation() *StepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := step.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := step.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Step.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutorKind(); ok {
		if err := step.ExecutorKindValidator(v); err != nil {
			return &ValidationError{Name: "executor_kind", err: fmt.Errorf(`ent: validator failed for field "Step.executor_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := step.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Step.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := step.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Step.state": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.plan"`)
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.workflow"`)
	}
	return nil
}

func (_u *StepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Index(); ok {
		_spec.SetField(step.FieldIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIndex(); ok {
		_spec.AddField(step.FieldIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(step.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(step.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(step.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutorKind(); ok {
		_spec.SetField(step.FieldExecutorKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutorRef(); ok {
		_spec.SetField(step.FieldExecutorRef, field.TypeString, value)
	}
	if _u.mutation.ExecutorRefCleared() {
		_spec.ClearField(step.FieldExecutorRef, field.TypeString)
	}
	if value, ok := _u.mutation.TeamMembers(); ok {
		_spec.SetField(step.FieldTeamMembers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTeamMembers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, step.FieldTeamMembers, value)
		})
	}
	if _u.mutation.TeamMembersCleared() {
		_spec.ClearField(step.FieldTeamMembers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(step.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(step.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(step.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(step.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(step.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, step.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(step.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(step.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(step.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(step.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(step.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackoffBaseMs(); ok {
		_spec.SetField(step.FieldBackoffBaseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBackoffBaseMs(); ok {
		_spec.AddField(step.FieldBackoffBaseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ApprovalRequired(); ok {
		_spec.SetField(step.FieldApprovalRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(step.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FunctionCall(); ok {
		_spec.SetField(step.FieldFunctionCall, field.TypeJSON, value)
	}
	if _u.mutation.FunctionCallCleared() {
		_spec.ClearField(step.FieldFunctionCall, field.TypeJSON)
	}
	if value, ok := _u.mutation.Checks(); ok {
		_spec.SetField(step.FieldChecks, field.TypeJSON, value)
	}
	if _u.mutation.ChecksCleared() {
		_spec.ClearField(step.FieldChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(step.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(step.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(step.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(step.FieldReasonCode, field.TypeString, value)
	}
	if _u.mutation.ReasonCodeCleared() {
		_spec.ClearField(step.FieldReasonCode, field.TypeString)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(step.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(step.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(step.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(step.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepUpdateOne is the builder for updating a single Step entity.
type StepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepMutation
}

// SetIndex sets the "index" field.
func (_u *StepUpdateOne) SetIndex(v int) *StepUpdateOne {
	_u.mutation.ResetIndex()
	_u.mutation.SetIndex(v)
	return _u
}

// SetNillableIndex sets the "index" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableIndex(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetIndex(*v)
	}
	return _u
}

// AddIndex adds value to the "index" field.
func (_u *StepUpdateOne) AddIndex(v int) *StepUpdateOne {
	_u.mutation.AddIndex(v)
	return _u
}

// SetName sets the "name" field.
func (_u *StepUpdateOne) SetName(v string) *StepUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableName(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StepUpdateOne) SetDescription(v string) *StepUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableDescription(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StepUpdateOne) ClearDescription() *StepUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetType sets the "type" field.
func (_u *StepUpdateOne) SetType(v step.Type) *StepUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableType(v *step.Type) *StepUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetExecutorKind sets the "executor_kind" field.
func (_u *StepUpdateOne) SetExecutorKind(v step.ExecutorKind) *StepUpdateOne {
	_u.mutation.SetExecutorKind(v)
	return _u
}

// SetNillableExecutorKind sets the "executor_kind" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableExecutorKind(v *step.ExecutorKind) *StepUpdateOne {
	if v != nil {
		_u.SetExecutorKind(*v)
	}
	return _u
}

// SetExecutorRef sets the "executor_ref" field.
func (_u *StepUpdateOne) SetExecutorRef(v string) *StepUpdateOne {
	_u.mutation.SetExecutorRef(v)
	return _u
}

// SetNillableExecutorRef sets the "executor_ref" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableExecutorRef(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetExecutorRef(*v)
	}
	return _u
}

// ClearExecutorRef clears the value of the "executor_ref" field.
func (_u *StepUpdateOne) ClearExecutorRef() *StepUpdateOne {
	_u.mutation.ClearExecutorRef()
	return _u
}

// SetTeamMembers sets the "team_members" field.
func (_u *StepUpdateOne) SetTeamMembers(v []string) *StepUpdateOne {
	_u.mutation.SetTeamMembers(v)
	return _u
}

// AppendTeamMembers appends value to the "team_members" field.
func (_u *StepUpdateOne) AppendTeamMembers(v []string) *StepUpdateOne {
	_u.mutation.AppendTeamMembers(v)
	return _u
}

// ClearTeamMembers clears the value of the "team_members" field.
func (_u *StepUpdateOne) ClearTeamMembers() *StepUpdateOne {
	_u.mutation.ClearTeamMembers()
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *StepUpdateOne) SetInputs(v map[string]interface{}) *StepUpdateOne {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *StepUpdateOne) ClearInputs() *StepUpdateOne {
	_u.mutation.ClearInputs()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *StepUpdateOne) SetOutputs(v map[string]interface{}) *StepUpdateOne {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *StepUpdateOne) ClearOutputs() *StepUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *StepUpdateOne) SetDependencies(v []string) *StepUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *StepUpdateOne) AppendDependencies(v []string) *StepUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *StepUpdateOne) ClearDependencies() *StepUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *StepUpdateOne) SetTimeoutMs(v int64) *StepUpdateOne {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableTimeoutMs(v *int64) *StepUpdateOne {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *StepUpdateOne) AddTimeoutMs(v int64) *StepUpdateOne {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *StepUpdateOne) SetMaxAttempts(v int) *StepUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableMaxAttempts(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *StepUpdateOne) AddMaxAttempts(v int) *StepUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetBackoffBaseMs sets the "backoff_base_ms" field.
func (_u *StepUpdateOne) SetBackoffBaseMs(v int64) *StepUpdateOne {
	_u.mutation.ResetBackoffBaseMs()
	_u.mutation.SetBackoffBaseMs(v)
	return _u
}

// SetNillableBackoffBaseMs sets the "backoff_base_ms" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableBackoffBaseMs(v *int64) *StepUpdateOne {
	if v != nil {
		_u.SetBackoffBaseMs(*v)
	}
	return _u
}

// AddBackoffBaseMs adds value to the "backoff_base_ms" field.
func (_u *StepUpdateOne) AddBackoffBaseMs(v int64) *StepUpdateOne {
	_u.mutation.AddBackoffBaseMs(v)
	return _u
}

// SetApprovalRequired sets the "approval_required" field.
func (_u *StepUpdateOne) SetApprovalRequired(v bool) *StepUpdateOne {
	_u.mutation.SetApprovalRequired(v)
	return _u
}

// SetNillableApprovalRequired sets the "approval_required" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableApprovalRequired(v *bool) *StepUpdateOne {
	if v != nil {
		_u.SetApprovalRequired(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *StepUpdateOne) SetRiskLevel(v step.RiskLevel) *StepUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableRiskLevel(v *step.RiskLevel) *StepUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetFunctionCall sets the "function_call" field.
func (_u *StepUpdateOne) SetFunctionCall(v map[string]interface{}) *StepUpdateOne {
	_u.mutation.SetFunctionCall(v)
	return _u
}

// ClearFunctionCall clears the value of the "function_call" field.
func (_u *StepUpdateOne) ClearFunctionCall() *StepUpdateOne {
	_u.mutation.ClearFunctionCall()
	return _u
}

// SetChecks sets the "checks" field.
func (_u *StepUpdateOne) SetChecks(v map[string]interface{}) *StepUpdateOne {
	_u.mutation.SetChecks(v)
	return _u
}

// ClearChecks clears the value of the "checks" field.
func (_u *StepUpdateOne) ClearChecks() *StepUpdateOne {
	_u.mutation.ClearChecks()
	return _u
}

// SetState sets the "state" field.
func (_u *StepUpdateOne) SetState(v step.State) *StepUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableState(v *step.State) *StepUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StepUpdateOne) SetAttempts(v int) *StepUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableAttempts(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StepUpdateOne) AddAttempts(v int) *StepUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *StepUpdateOne) SetErrorKind(v string) *StepUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableErrorKind(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *StepUpdateOne) ClearErrorKind() *StepUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *StepUpdateOne) SetReasonCode(v string) *StepUpdateOne {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableReasonCode(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// ClearReasonCode clears the value of the "reason_code" field.
func (_u *StepUpdateOne) ClearReasonCode() *StepUpdateOne {
	_u.mutation.ClearReasonCode()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *StepUpdateOne) SetQualityScore(v float64) *StepUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableQualityScore(v *float64) *StepUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *StepUpdateOne) AddQualityScore(v float64) *StepUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *StepUpdateOne) ClearQualityScore() *StepUpdateOne {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdateOne) SetStartedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStartedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdateOne) ClearStartedAt() *StepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdateOne) SetCompletedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableCompletedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdateOne) ClearCompletedAt() *StepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StepUpdateOne) SetUpdatedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdateOne) Mutation() *StepMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdateOne) Where(ps ...predicate.Step) *StepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepUpdateOne) Select(field string, fields ...string) *StepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Step entity.
func (_u *StepUpdateOne) Save(ctx context.Context) (*Step, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdateOne) SaveX(ctx context.Context) *Step {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := step.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := step.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Step.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutorKind(); ok {
		if err := step.ExecutorKindValidator(v); err != nil {
			return &ValidationError{Name: "executor_kind", err: fmt.Errorf(`ent: validator failed for field "Step.executor_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := step.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Step.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := step.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Step.state": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.plan"`)
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.workflow"`)
	}
	return nil
}

func (_u *StepUpdateOne) sqlSave(ctx context.Context) (_node *Step, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Step.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, step.FieldID)
		for _, f := range fields {
			if !step.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != step.FieldID {
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
	if value, ok := _u.mutation.Index(); ok {
		_spec.SetField(step.FieldIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIndex(); ok {
		_spec.AddField(step.FieldIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(step.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(step.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(step.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutorKind(); ok {
		_spec.SetField(step.FieldExecutorKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutorRef(); ok {
		_spec.SetField(step.FieldExecutorRef, field.TypeString, value)
	}
	if _u.mutation.ExecutorRefCleared() {
		_spec.ClearField(step.FieldExecutorRef, field.TypeString)
	}
	if value, ok := _u.mutation.TeamMembers(); ok {
		_spec.SetField(step.FieldTeamMembers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTeamMembers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, step.FieldTeamMembers, value)
		})
	}
	if _u.mutation.TeamMembersCleared() {
		_spec.ClearField(step.FieldTeamMembers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(step.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(step.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(step.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(step.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(step.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, step.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(step.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(step.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(step.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(step.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(step.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackoffBaseMs(); ok {
		_spec.SetField(step.FieldBackoffBaseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBackoffBaseMs(); ok {
		_spec.AddField(step.FieldBackoffBaseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ApprovalRequired(); ok {
		_spec.SetField(step.FieldApprovalRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(step.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FunctionCall(); ok {
		_spec.SetField(step.FieldFunctionCall, field.TypeJSON, value)
	}
	if _u.mutation.FunctionCallCleared() {
		_spec.ClearField(step.FieldFunctionCall, field.TypeJSON)
	}
	if value, ok := _u.mutation.Checks(); ok {
		_spec.SetField(step.FieldChecks, field.TypeJSON, value)
	}
	if _u.mutation.ChecksCleared() {
		_spec.ClearField(step.FieldChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(step.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(step.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(step.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(step.FieldReasonCode, field.TypeString, value)
	}
	if _u.mutation.ReasonCodeCleared() {
		_spec.ClearField(step.FieldReasonCode, field.TypeString)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(step.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(step.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(step.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(step.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Step{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
