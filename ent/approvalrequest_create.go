// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/maestro/ent/approvalrequest"
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// ApprovalRequestCreate is the builder for creating a ApprovalRequest entity.
type ApprovalRequestCreate struct {
	config
	mutation *ApprovalRequestMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *ApprovalRequestCreate) SetWorkflowID(v string) *ApprovalRequestCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *ApprovalRequestCreate) SetPlanID(v string) *ApprovalRequestCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillablePlanID(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetPlanID(*v)
	}
	return _c
}

// SetArtifactRef sets the "artifact_ref" field.
func (_c *ApprovalRequestCreate) SetArtifactRef(v string) *ApprovalRequestCreate {
	_c.mutation.SetArtifactRef(v)
	return _c
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_c *ApprovalRequestCreate) SetRiskAssessment(v map[string]interface{}) *ApprovalRequestCreate {
	_c.mutation.SetRiskAssessment(v)
	return _c
}

// SetRecommendation sets the "recommendation" field.
func (_c *ApprovalRequestCreate) SetRecommendation(v string) *ApprovalRequestCreate {
	_c.mutation.SetRecommendation(v)
	return _c
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableRecommendation(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetRecommendation(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalRequestCreate) SetStatus(v approvalrequest.Status) *ApprovalRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDecisionDeadline sets the "decision_deadline" field.
func (_c *ApprovalRequestCreate) SetDecisionDeadline(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetDecisionDeadline(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *ApprovalRequestCreate) SetFeedback(v string) *ApprovalRequestCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableFeedback(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *ApprovalRequestCreate) SetDecidedBy(v string) *ApprovalRequestCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableDecidedBy(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *ApprovalRequestCreate) SetDecidedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableDecidedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalRequestCreate) SetCreatedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableCreatedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApprovalRequestCreate) SetUpdatedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableUpdatedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalRequestCreate) SetID(v string) *ApprovalRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *ApprovalRequestCreate) SetWorkflow(v *Workflow) *ApprovalRequestCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_c *ApprovalRequestCreate) Mutation() *ApprovalRequestMutation {
	return _c.mutation
}

// Save creates the ApprovalRequest in the database.
func (_c *ApprovalRequestCreate) Save(ctx context.Context) (*ApprovalRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalRequestCreate) SaveX(ctx context.Context) *ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalRequestCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := approvalrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := approvalrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRequestCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "ApprovalRequest.workflow_id"`)}
	}
	if _, ok := _c.mutation.ArtifactRef(); !ok {
		return &ValidationError{Name: "artifact_ref", err: errors.New(`ent: missing required field "ApprovalRequest.artifact_ref"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ApprovalRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DecisionDeadline(); !ok {
		return &ValidationError{Name: "decision_deadline", err: errors.New(`ent: missing required field "ApprovalRequest.decision_deadline"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ApprovalRequest.updated_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "ApprovalRequest.workflow"`)}
	}
	return nil
}

func (_c *ApprovalRequestCreate) sqlSave(ctx context.Context) (*ApprovalRequest, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalRequestCreate) createSpec() (*ApprovalRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalrequest.Table, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(approvalrequest.FieldPlanID, field.TypeString, value)
		_node.PlanID = &value
	}
	if value, ok := _c.mutation.ArtifactRef(); ok {
		_spec.SetField(approvalrequest.FieldArtifactRef, field.TypeString, value)
		_node.ArtifactRef = value
	}
	if value, ok := _c.mutation.RiskAssessment(); ok {
		_spec.SetField(approvalrequest.FieldRiskAssessment, field.TypeJSON, value)
		_node.RiskAssessment = value
	}
	if value, ok := _c.mutation.Recommendation(); ok {
		_spec.SetField(approvalrequest.FieldRecommendation, field.TypeString, value)
		_node.Recommendation = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DecisionDeadline(); ok {
		_spec.SetField(approvalrequest.FieldDecisionDeadline, field.TypeTime, value)
		_node.DecisionDeadline = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(approvalrequest.FieldFeedback, field.TypeString, value)
		_node.Feedback = &value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(approvalrequest.FieldDecidedBy, field.TypeString, value)
		_node.DecidedBy = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(approvalrequest.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(approvalrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalrequest.WorkflowTable,
			Columns: []string{approvalrequest.WorkflowColumn},
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

// ApprovalRequestCreateBulk is the builder for creating many ApprovalRequest entities in bulk.
type ApprovalRequestCreateBulk struct {
	config
	err      error
	builders []*ApprovalRequestCreate
}

// Save creates the ApprovalRequest entities in the database.
func (_c *ApprovalRequestCreateBulk) Save(ctx context.Context) ([]*ApprovalRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalRequestMutation)
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
func (_c *ApprovalRequestCreateBulk) SaveX(ctx context.Context) []*ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
