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
	"github.com/codeready-toolchain/maestro/ent/executionevent"
	"github.com/codeready-toolchain/maestro/ent/plan"
	"github.com/codeready-toolchain/maestro/ent/predicate"
	"github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// WorkflowUpdate is the builder for updating Workflow entities.
type WorkflowUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowMutation
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdate) Where(ps ...predicate.Workflow) *WorkflowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *WorkflowUpdate) SetRequestType(v workflow.RequestType) *WorkflowUpdate {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableRequestType(v *workflow.RequestType) *WorkflowUpdate {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *WorkflowUpdate) SetMessage(v string) *WorkflowUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableMessage(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *WorkflowUpdate) SetSystemPrompt(v string) *WorkflowUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableSystemPrompt(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *WorkflowUpdate) ClearSystemPrompt() *WorkflowUpdate {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetModelOverride sets the "model_override" field.
func (_u *WorkflowUpdate) SetModelOverride(v string) *WorkflowUpdate {
	_u.mutation.SetModelOverride(v)
	return _u
}

// SetNillableModelOverride sets the "model_override" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableModelOverride(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetModelOverride(*v)
	}
	return _u
}

// ClearModelOverride clears the value of the "model_override" field.
func (_u *WorkflowUpdate) ClearModelOverride() *WorkflowUpdate {
	_u.mutation.ClearModelOverride()
	return _u
}

// SetServerOverride sets the "server_override" field.
func (_u *WorkflowUpdate) SetServerOverride(v string) *WorkflowUpdate {
	_u.mutation.SetServerOverride(v)
	return _u
}

// SetNillableServerOverride sets the "server_override" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableServerOverride(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetServerOverride(*v)
	}
	return _u
}

// ClearServerOverride clears the value of the "server_override" field.
func (_u *WorkflowUpdate) ClearServerOverride() *WorkflowUpdate {
	_u.mutation.ClearServerOverride()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *WorkflowUpdate) SetTemperature(v float64) *WorkflowUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableTemperature(v *float64) *WorkflowUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *WorkflowUpdate) AddTemperature(v float64) *WorkflowUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *WorkflowUpdate) ClearTemperature() *WorkflowUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *WorkflowUpdate) SetCurrentStage(v workflow.CurrentStage) *WorkflowUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableCurrentStage(v *workflow.CurrentStage) *WorkflowUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdate) SetStatus(v workflow.Status) *WorkflowUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableStatus(v *workflow.Status) *WorkflowUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *WorkflowUpdate) SetResponse(v string) *WorkflowUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableResponse(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *WorkflowUpdate) ClearResponse() *WorkflowUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *WorkflowUpdate) SetReasoning(v string) *WorkflowUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableReasoning(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *WorkflowUpdate) ClearReasoning() *WorkflowUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *WorkflowUpdate) SetModelUsed(v string) *WorkflowUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableModelUsed(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *WorkflowUpdate) ClearModelUsed() *WorkflowUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *WorkflowUpdate) SetErrorKind(v string) *WorkflowUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableErrorKind(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *WorkflowUpdate) ClearErrorKind() *WorkflowUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *WorkflowUpdate) SetReasonCode(v string) *WorkflowUpdate {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableReasonCode(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// ClearReasonCode clears the value of the "reason_code" field.
func (_u *WorkflowUpdate) ClearReasonCode() *WorkflowUpdate {
	_u.mutation.ClearReasonCode()
	return _u
}

// SetFailingEventID sets the "failing_event_id" field.
func (_u *WorkflowUpdate) SetFailingEventID(v string) *WorkflowUpdate {
	_u.mutation.SetFailingEventID(v)
	return _u
}

// SetNillableFailingEventID sets the "failing_event_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableFailingEventID(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetFailingEventID(*v)
	}
	return _u
}

// ClearFailingEventID clears the value of the "failing_event_id" field.
func (_u *WorkflowUpdate) ClearFailingEventID() *WorkflowUpdate {
	_u.mutation.ClearFailingEventID()
	return _u
}

// SetEventSequence sets the "event_sequence" field.
func (_u *WorkflowUpdate) SetEventSequence(v int64) *WorkflowUpdate {
	_u.mutation.ResetEventSequence()
	_u.mutation.SetEventSequence(v)
	return _u
}

// SetNillableEventSequence sets the "event_sequence" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableEventSequence(v *int64) *WorkflowUpdate {
	if v != nil {
		_u.SetEventSequence(*v)
	}
	return _u
}

// AddEventSequence adds value to the "event_sequence" field.
func (_u *WorkflowUpdate) AddEventSequence(v int64) *WorkflowUpdate {
	_u.mutation.AddEventSequence(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *WorkflowUpdate) SetWorkerID(v string) *WorkflowUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableWorkerID(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *WorkflowUpdate) ClearWorkerID() *WorkflowUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowUpdate) SetLastHeartbeatAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowUpdate) ClearLastHeartbeatAt() *WorkflowUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *WorkflowUpdate) SetMetadata(v map[string]interface{}) *WorkflowUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *WorkflowUpdate) ClearMetadata() *WorkflowUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdate) SetUpdatedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowUpdate) SetCompletedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowUpdate) ClearCompletedAt() *WorkflowUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *WorkflowUpdate) SetDeletedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableDeletedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *WorkflowUpdate) ClearDeletedAt() *WorkflowUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddPlanIDs adds the "plans" edge to the Plan entity by IDs.
func (_u *WorkflowUpdate) AddPlanIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.AddPlanIDs(ids...)
	return _u
}

// AddPlans adds the "plans" edges to the Plan entity.
func (_u *WorkflowUpdate) AddPlans(v ...*Plan) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlanIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *WorkflowUpdate) AddStepIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *WorkflowUpdate) AddSteps(v ...*Step) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddExecutionEventIDs adds the "execution_events" edge to the ExecutionEvent entity by IDs.
func (_u *WorkflowUpdate) AddExecutionEventIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.AddExecutionEventIDs(ids...)
	return _u
}

// AddExecutionEvents adds the "execution_events" edges to the ExecutionEvent entity.
func (_u *WorkflowUpdate) AddExecutionEvents(v ...*ExecutionEvent) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionEventIDs(ids...)
}

// AddApprovalRequestIDs adds the "approval_requests" edge to the ApprovalRequest entity by IDs.
func (_u *WorkflowUpdate) AddApprovalRequestIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.AddApprovalRequestIDs(ids...)
	return _u
}

// AddApprovalRequests adds the "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowUpdate) AddApprovalRequests(v ...*ApprovalRequest) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalRequestIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdate) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearPlans clears all "plans" edges to the Plan entity.
func (_u *WorkflowUpdate) ClearPlans() *WorkflowUpdate {
	_u.mutation.ClearPlans()
	return _u
}

// RemovePlanIDs removes the "plans" edge to Plan entities by IDs.
func (_u *WorkflowUpdate) RemovePlanIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.RemovePlanIDs(ids...)
	return _u
}

// RemovePlans removes "plans" edges to Plan entities.
func (_u *WorkflowUpdate) RemovePlans(v ...*Plan) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlanIDs(ids...)
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *WorkflowUpdate) ClearSteps() *WorkflowUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *WorkflowUpdate) RemoveStepIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *WorkflowUpdate) RemoveSteps(v ...*Step) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearExecutionEvents clears all "execution_events" edges to the ExecutionEvent entity.
func (_u *WorkflowUpdate) ClearExecutionEvents() *WorkflowUpdate {
	_u.mutation.ClearExecutionEvents()
	return _u
}

// RemoveExecutionEventIDs removes the "execution_events" edge to ExecutionEvent entities by IDs.
func (_u *WorkflowUpdate) RemoveExecutionEventIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.RemoveExecutionEventIDs(ids...)
	return _u
}

// RemoveExecutionEvents removes "execution_events" edges to ExecutionEvent entities.
func (_u *WorkflowUpdate) RemoveExecutionEvents(v ...*ExecutionEvent) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionEventIDs(ids...)
}

// ClearApprovalRequests clears all "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowUpdate) ClearApprovalRequests() *WorkflowUpdate {
	_u.mutation.ClearApprovalRequests()
	return _u
}

// RemoveApprovalRequestIDs removes the "approval_requests" edge to ApprovalRequest entities by IDs.
func (_u *WorkflowUpdate) RemoveApprovalRequestIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.RemoveApprovalRequestIDs(ids...)
	return _u
}

// RemoveApprovalRequests removes "approval_requests" edges to ApprovalRequest entities.
func (_u *WorkflowUpdate) RemoveApprovalRequests(v ...*ApprovalRequest) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalRequestIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdate) check() error {
	if v, ok := _u.mutation.RequestType(); ok {
		if err := workflow.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Workflow.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStage(); ok {
		if err := workflow.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "Workflow.current_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(workflow.FieldRequestType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(workflow.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(workflow.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(workflow.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.ModelOverride(); ok {
		_spec.SetField(workflow.FieldModelOverride, field.TypeString, value)
	}
	if _u.mutation.ModelOverrideCleared() {
		_spec.ClearField(workflow.FieldModelOverride, field.TypeString)
	}
	if value, ok := _u.mutation.ServerOverride(); ok {
		_spec.SetField(workflow.FieldServerOverride, field.TypeString, value)
	}
	if _u.mutation.ServerOverrideCleared() {
		_spec.ClearField(workflow.FieldServerOverride, field.TypeString)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(workflow.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(workflow.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(workflow.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(workflow.FieldCurrentStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(workflow.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(workflow.FieldResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(workflow.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(workflow.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(workflow.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(workflow.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(workflow.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(workflow.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(workflow.FieldReasonCode, field.TypeString, value)
	}
	if _u.mutation.ReasonCodeCleared() {
		_spec.ClearField(workflow.FieldReasonCode, field.TypeString)
	}
	if value, ok := _u.mutation.FailingEventID(); ok {
		_spec.SetField(workflow.FieldFailingEventID, field.TypeString, value)
	}
	if _u.mutation.FailingEventIDCleared() {
		_spec.ClearField(workflow.FieldFailingEventID, field.TypeString)
	}
	if value, ok := _u.mutation.EventSequence(); ok {
		_spec.SetField(workflow.FieldEventSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventSequence(); ok {
		_spec.AddField(workflow.FieldEventSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(workflow.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(workflow.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflow.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflow.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(workflow.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(workflow.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflow.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(workflow.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(workflow.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.PlansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PlansTable,
			Columns: []string{workflow.PlansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlansIDs(); len(nodes) > 0 && !_u.mutation.PlansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PlansTable,
			Columns: []string{workflow.PlansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PlansTable,
			Columns: []string{workflow.PlansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
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
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
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
	if _u.mutation.ExecutionEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ExecutionEventsTable,
			Columns: []string{workflow.ExecutionEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionEventsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ExecutionEventsTable,
			Columns: []string{workflow.ExecutionEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ExecutionEventsTable,
			Columns: []string{workflow.ExecutionEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalRequestsTable,
			Columns: []string{workflow.ApprovalRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalRequestsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalRequestsTable,
			Columns: []string{workflow.ApprovalRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalRequestsTable,
			Columns: []string{workflow.ApprovalRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowUpdateOne is the builder for updating a single Workflow entity.
type WorkflowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowMutation
}

// SetRequestType sets the "request_type" field.
func (_u *WorkflowUpdateOne) SetRequestType(v workflow.RequestType) *WorkflowUpdateOne {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableRequestType(v *workflow.RequestType) *WorkflowUpdateOne {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *WorkflowUpdateOne) SetMessage(v string) *WorkflowUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableMessage(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *WorkflowUpdateOne) SetSystemPrompt(v string) *WorkflowUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableSystemPrompt(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *WorkflowUpdateOne) ClearSystemPrompt() *WorkflowUpdateOne {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetModelOverride sets the "model_override" field.
func (_u *WorkflowUpdateOne) SetModelOverride(v string) *WorkflowUpdateOne {
	_u.mutation.SetModelOverride(v)
	return _u
}

// SetNillableModelOverride sets the "model_override" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableModelOverride(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetModelOverride(*v)
	}
	return _u
}

// ClearModelOverride clears the value of the "model_override" field.
func (_u *WorkflowUpdateOne) ClearModelOverride() *WorkflowUpdateOne {
	_u.mutation.ClearModelOverride()
	return _u
}

// SetServerOverride sets the "server_override" field.
func (_u *WorkflowUpdateOne) SetServerOverride(v string) *WorkflowUpdateOne {
	_u.mutation.SetServerOverride(v)
	return _u
}

// SetNillableServerOverride sets the "server_override" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableServerOverride(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetServerOverride(*v)
	}
	return _u
}

// ClearServerOverride clears the value of the "server_override" field.
func (_u *WorkflowUpdateOne) ClearServerOverride() *WorkflowUpdateOne {
	_u.mutation.ClearServerOverride()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *WorkflowUpdateOne) SetTemperature(v float64) *WorkflowUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableTemperature(v *float64) *WorkflowUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *WorkflowUpdateOne) AddTemperature(v float64) *WorkflowUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *WorkflowUpdateOne) ClearTemperature() *WorkflowUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *WorkflowUpdateOne) SetCurrentStage(v workflow.CurrentStage) *WorkflowUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableCurrentStage(v *workflow.CurrentStage) *WorkflowUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdateOne) SetStatus(v workflow.Status) *WorkflowUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableStatus(v *workflow.Status) *WorkflowUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *WorkflowUpdateOne) SetResponse(v string) *WorkflowUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableResponse(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *WorkflowUpdateOne) ClearResponse() *WorkflowUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *WorkflowUpdateOne) SetReasoning(v string) *WorkflowUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableReasoning(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *WorkflowUpdateOne) ClearReasoning() *WorkflowUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *WorkflowUpdateOne) SetModelUsed(v string) *WorkflowUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableModelUsed(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *WorkflowUpdateOne) ClearModelUsed() *WorkflowUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *WorkflowUpdateOne) SetErrorKind(v string) *WorkflowUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableErrorKind(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *WorkflowUpdateOne) ClearErrorKind() *WorkflowUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *WorkflowUpdateOne) SetReasonCode(v string) *WorkflowUpdateOne {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableReasonCode(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// ClearReasonCode clears the value of the "reason_code" field.
func (_u *WorkflowUpdateOne) ClearReasonCode() *WorkflowUpdateOne {
	_u.mutation.ClearReasonCode()
	return _u
}

// SetFailingEventID sets the "failing_event_id" field.
func (_u *WorkflowUpdateOne) SetFailingEventID(v string) *WorkflowUpdateOne {
	_u.mutation.SetFailingEventID(v)
	return _u
}

// SetNillableFailingEventID sets the "failing_event_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableFailingEventID(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetFailingEventID(*v)
	}
	return _u
}

// ClearFailingEventID clears the value of the "failing_event_id" field.
func (_u *WorkflowUpdateOne) ClearFailingEventID() *WorkflowUpdateOne {
	_u.mutation.ClearFailingEventID()
	return _u
}

// SetEventSequence sets the "event_sequence" field.
func (_u *WorkflowUpdateOne) SetEventSequence(v int64) *WorkflowUpdateOne {
	_u.mutation.ResetEventSequence()
	_u.mutation.SetEventSequence(v)
	return _u
}

// SetNillableEventSequence sets the "event_sequence" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableEventSequence(v *int64) *WorkflowUpdateOne {
	if v != nil {
		_u.SetEventSequence(*v)
	}
	return _u
}

// AddEventSequence adds value to the "event_sequence" field.
func (_u *WorkflowUpdateOne) AddEventSequence(v int64) *WorkflowUpdateOne {
	_u.mutation.AddEventSequence(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *WorkflowUpdateOne) SetWorkerID(v string) *WorkflowUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableWorkerID(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *WorkflowUpdateOne) ClearWorkerID() *WorkflowUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowUpdateOne) SetLastHeartbeatAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowUpdateOne) ClearLastHeartbeatAt() *WorkflowUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *WorkflowUpdateOne) SetMetadata(v map[string]interface{}) *WorkflowUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *WorkflowUpdateOne) ClearMetadata() *WorkflowUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdateOne) SetUpdatedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowUpdateOne) SetCompletedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowUpdateOne) ClearCompletedAt() *WorkflowUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *WorkflowUpdateOne) SetDeletedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableDeletedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *WorkflowUpdateOne) ClearDeletedAt() *WorkflowUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddPlanIDs adds the "plans" edge to the Plan entity by IDs.
func (_u *WorkflowUpdateOne) AddPlanIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.AddPlanIDs(ids...)
	return _u
}

// AddPlans adds the "plans" edges to the Plan entity.
func (_u *WorkflowUpdateOne) AddPlans(v ...*Plan) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlanIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *WorkflowUpdateOne) AddStepIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *WorkflowUpdateOne) AddSteps(v ...*Step) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddExecutionEventIDs adds the "execution_events" edge to the ExecutionEvent entity by IDs.
func (_u *WorkflowUpdateOne) AddExecutionEventIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.AddExecutionEventIDs(ids...)
	return _u
}

// AddExecutionEvents adds the "execution_events" edges to the ExecutionEvent entity.
func (_u *WorkflowUpdateOne) AddExecutionEvents(v ...*ExecutionEvent) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionEventIDs(ids...)
}

// AddApprovalRequestIDs adds the "approval_requests" edge to the ApprovalRequest entity by IDs.
func (_u *WorkflowUpdateOne) AddApprovalRequestIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.AddApprovalRequestIDs(ids...)
	return _u
}

// AddApprovalRequests adds the "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowUpdateOne) AddApprovalRequests(v ...*ApprovalRequest) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalRequestIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdateOne) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearPlans clears all "plans" edges to the Plan entity.
func (_u *WorkflowUpdateOne) ClearPlans() *WorkflowUpdateOne {
	_u.mutation.ClearPlans()
	return _u
}

// RemovePlanIDs removes the "plans" edge to Plan entities by IDs.
func (_u *WorkflowUpdateOne) RemovePlanIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.RemovePlanIDs(ids...)
	return _u
}

// RemovePlans removes "plans" edges to Plan entities.
func (_u *WorkflowUpdateOne) RemovePlans(v ...*Plan) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlanIDs(ids...)
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *WorkflowUpdateOne) ClearSteps() *WorkflowUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *WorkflowUpdateOne) RemoveStepIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *WorkflowUpdateOne) RemoveSteps(v ...*Step) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearExecutionEvents clears all "execution_events" edges to the ExecutionEvent entity.
func (_u *WorkflowUpdateOne) ClearExecutionEvents() *WorkflowUpdateOne {
	_u.mutation.ClearExecutionEvents()
	return _u
}

// RemoveExecutionEventIDs removes the "execution_events" edge to ExecutionEvent entities by IDs.
func (_u *WorkflowUpdateOne) RemoveExecutionEventIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.RemoveExecutionEventIDs(ids...)
	return _u
}

// RemoveExecutionEvents removes "execution_events" edges to ExecutionEvent entities.
func (_u *WorkflowUpdateOne) RemoveExecutionEvents(v ...*ExecutionEvent) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionEventIDs(ids...)
}

// ClearApprovalRequests clears all "approval_requests" edges to the ApprovalRequest entity.
func (_u *WorkflowUpdateOne) ClearApprovalRequests() *WorkflowUpdateOne {
	_u.mutation.ClearApprovalRequests()
	return _u
}

// RemoveApprovalRequestIDs removes the "approval_requests" edge to ApprovalRequest entities by IDs.
func (_u *WorkflowUpdateOne) RemoveApprovalRequestIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.RemoveApprovalRequestIDs(ids...)
	return _u
}

// RemoveApprovalRequests removes "approval_requests" edges to ApprovalRequest entities.
func (_u *WorkflowUpdateOne) RemoveApprovalRequests(v ...*ApprovalRequest) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalRequestIDs(ids...)
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdateOne) Where(ps ...predicate.Workflow) *WorkflowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowUpdateOne) Select(field string, fields ...string) *WorkflowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workflow entity.
func (_u *WorkflowUpdateOne) Save(ctx context.Context) (*Workflow, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdateOne) SaveX(ctx context.Context) *Workflow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdateOne) check() error {
	if v, ok := _u.mutation.RequestType(); ok {
		if err := workflow.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Workflow.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStage(); ok {
		if err := workflow.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "Workflow.current_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdateOne) sqlSave(ctx context.Context) (_node *Workflow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workflow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflow.FieldID)
		for _, f := range fields {
			if !workflow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflow.FieldID {
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
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(workflow.FieldRequestType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(workflow.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(workflow.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(workflow.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.ModelOverride(); ok {
		_spec.SetField(workflow.FieldModelOverride, field.TypeString, value)
	}
	if _u.mutation.ModelOverrideCleared() {
		_spec.ClearField(workflow.FieldModelOverride, field.TypeString)
	}
	if value, ok := _u.mutation.ServerOverride(); ok {
		_spec.SetField(workflow.FieldServerOverride, field.TypeString, value)
	}
	if _u.mutation.ServerOverrideCleared() {
		_spec.ClearField(workflow.FieldServerOverride, field.TypeString)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(workflow.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(workflow.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(workflow.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(workflow.FieldCurrentStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(workflow.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(workflow.FieldResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(workflow.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(workflow.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(workflow.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(workflow.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(workflow.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(workflow.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(workflow.FieldReasonCode, field.TypeString, value)
	}
	if _u.mutation.ReasonCodeCleared() {
		_spec.ClearField(workflow.FieldReasonCode, field.TypeString)
	}
	if value, ok := _u.mutation.FailingEventID(); ok {
		_spec.SetField(workflow.FieldFailingEventID, field.TypeString, value)
	}
	if _u.mutation.FailingEventIDCleared() {
		_spec.ClearField(workflow.FieldFailingEventID, field.TypeString)
	}
	if value, ok := _u.mutation.EventSequence(); ok {
		_spec.SetField(workflow.FieldEventSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventSequence(); ok {
		_spec.AddField(workflow.FieldEventSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(workflow.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(workflow.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflow.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflow.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(workflow.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(workflow.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflow.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(workflow.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(workflow.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.PlansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PlansTable,
			Columns: []string{workflow.PlansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlansIDs(); len(nodes) > 0 && !_u.mutation.PlansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PlansTable,
			Columns: []string{workflow.PlansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PlansTable,
			Columns: []string{workflow.PlansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
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
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
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
	if _u.mutation.ExecutionEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ExecutionEventsTable,
			Columns: []string{workflow.ExecutionEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionEventsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ExecutionEventsTable,
			Columns: []string{workflow.ExecutionEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ExecutionEventsTable,
			Columns: []string{workflow.ExecutionEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalRequestsTable,
			Columns: []string{workflow.ApprovalRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalRequestsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalRequestsTable,
			Columns: []string{workflow.ApprovalRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalRequestsTable,
			Columns: []string{workflow.ApprovalRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Workflow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
