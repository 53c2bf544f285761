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
	"github.com/codeready-toolchain/maestro/ent/approvalrequest"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ApprovalRequestUpdate is the builder for updating ApprovalRequest entities.
type ApprovalRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdate) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArtifactRef sets the "artifact_ref" field.
func (_u *ApprovalRequestUpdate) SetArtifactRef(v string) *ApprovalRequestUpdate {
	_u.mutation.SetArtifactRef(v)
	return _u
}

// SetNillableArtifactRef sets the "artifact_ref" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableArtifactRef(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetArtifactRef(*v)
	}
	return _u
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_u *ApprovalRequestUpdate) SetRiskAssessment(v map[string]interface{}) *ApprovalRequestUpdate {
	_u.mutation.SetRiskAssessment(v)
	return _u
}

// ClearRiskAssessment clears the value of the "risk_assessment" field.
func (_u *ApprovalRequestUpdate) ClearRiskAssessment() *ApprovalRequestUpdate {
	_u.mutation.ClearRiskAssessment()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *ApprovalRequestUpdate) SetRecommendation(v string) *ApprovalRequestUpdate {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableRecommendation(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// ClearRecommendation clears the value of the "recommendation" field.
func (_u *ApprovalRequestUpdate) ClearRecommendation() *ApprovalRequestUpdate {
	_u.mutation.ClearRecommendation()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalRequestUpdate) SetStatus(v approvalrequest.Status) *ApprovalRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecisionDeadline sets the "decision_deadline" field.
func (_u *ApprovalRequestUpdate) SetDecisionDeadline(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetDecisionDeadline(v)
	return _u
}

// SetNillableDecisionDeadline sets the "decision_deadline" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDecisionDeadline(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDecisionDeadline(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ApprovalRequestUpdate) SetFeedback(v string) *ApprovalRequestUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableFeedback(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *ApprovalRequestUpdate) ClearFeedback() *ApprovalRequestUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalRequestUpdate) SetDecidedBy(v string) *ApprovalRequestUpdate {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDecidedBy(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalRequestUpdate) ClearDecidedBy() *ApprovalRequestUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalRequestUpdate) SetDecidedAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDecidedAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalRequestUpdate) ClearDecidedAt() *ApprovalRequestUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalRequestUpdate) SetUpdatedAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdate) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approvalrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.workflow"`)
	}
	return nil
}

func (_u *ApprovalRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PlanIDCleared() {
		_spec.ClearField(approvalrequest.FieldPlanID, field.TypeString)
	}
	if value, ok := _u.mutation.ArtifactRef(); ok {
		_spec.SetField(approvalrequest.FieldArtifactRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskAssessment(); ok {
		_spec.SetField(approvalrequest.FieldRiskAssessment, field.TypeJSON, value)
	}
	if _u.mutation.RiskAssessmentCleared() {
		_spec.ClearField(approvalrequest.FieldRiskAssessment, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(approvalrequest.FieldRecommendation, field.TypeString, value)
	}
	if _u.mutation.RecommendationCleared() {
		_spec.ClearField(approvalrequest.FieldRecommendation, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecisionDeadline(); ok {
		_spec.SetField(approvalrequest.FieldDecisionDeadline, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(approvalrequest.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(approvalrequest.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approvalrequest.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approvalrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approvalrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalRequestUpdateOne is the builder for updating a single ApprovalRequest entity.
type ApprovalRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// SetArtifactRef sets the "artifact_ref" field.
func (_u *ApprovalRequestUpdateOne) SetArtifactRef(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetArtifactRef(v)
	return _u
}

// SetNillableArtifactRef sets the "artifact_ref" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableArtifactRef(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetArtifactRef(*v)
	}
	return _u
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_u *ApprovalRequestUpdateOne) SetRiskAssessment(v map[string]interface{}) *ApprovalRequestUpdateOne {
	_u.mutation.SetRiskAssessment(v)
	return _u
}

// ClearRiskAssessment clears the value of the "risk_assessment" field.
func (_u *ApprovalRequestUpdateOne) ClearRiskAssessment() *ApprovalRequestUpdateOne {
	_u.mutation.ClearRiskAssessment()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *ApprovalRequestUpdateOne) SetRecommendation(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableRecommendation(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// ClearRecommendation clears the value of the "recommendation" field.
func (_u *ApprovalRequestUpdateOne) ClearRecommendation() *ApprovalRequestUpdateOne {
	_u.mutation.ClearRecommendation()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalRequestUpdateOne) SetStatus(v approvalrequest.Status) *ApprovalRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecisionDeadline sets the "decision_deadline" field.
func (_u *ApprovalRequestUpdateOne) SetDecisionDeadline(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetDecisionDeadline(v)
	return _u
}

// SetNillableDecisionDeadline sets the "decision_deadline" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDecisionDeadline(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDecisionDeadline(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ApprovalRequestUpdateOne) SetFeedback(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableFeedback(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *ApprovalRequestUpdateOne) ClearFeedback() *ApprovalRequestUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalRequestUpdateOne) SetDecidedBy(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDecidedBy(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalRequestUpdateOne) ClearDecidedBy() *ApprovalRequestUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalRequestUpdateOne) SetDecidedAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDecidedAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalRequestUpdateOne) ClearDecidedAt() *ApprovalRequestUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalRequestUpdateOne) SetUpdatedAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdateOne) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdateOne) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalRequestUpdateOne) Select(field string, fields ...string) *ApprovalRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalRequest entity.
func (_u *ApprovalRequestUpdateOne) Save(ctx context.Context) (*ApprovalRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) SaveX(ctx context.Context) *ApprovalRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approvalrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.workflow"`)
	}
	return nil
}

func (_u *ApprovalRequestUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalrequest.FieldID)
		for _, f := range fields {
			if !approvalrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalrequest.FieldID {
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
	if _u.mutation.PlanIDCleared() {
		_spec.ClearField(approvalrequest.FieldPlanID, field.TypeString)
	}
	if value, ok := _u.mutation.ArtifactRef(); ok {
		_spec.SetField(approvalrequest.FieldArtifactRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskAssessment(); ok {
		_spec.SetField(approvalrequest.FieldRiskAssessment, field.TypeJSON, value)
	}
	if _u.mutation.RiskAssessmentCleared() {
		_spec.ClearField(approvalrequest.FieldRiskAssessment, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(approvalrequest.FieldRecommendation, field.TypeString, value)
	}
	if _u.mutation.RecommendationCleared() {
		_spec.ClearField(approvalrequest.FieldRecommendation, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecisionDeadline(); ok {
		_spec.SetField(approvalrequest.FieldDecisionDeadline, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(approvalrequest.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(approvalrequest.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approvalrequest.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approvalrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approvalrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ApprovalRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
