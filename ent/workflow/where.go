// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSessionID, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldMessage, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSystemPrompt, v))
}

// ModelOverride applies equality check predicate on the "model_override" field. It's identical to ModelOverrideEQ.
func ModelOverride(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldModelOverride, v))
}

// ServerOverride applies equality check predicate on the "server_override" field. It's identical to ServerOverrideEQ.
func ServerOverride(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldServerOverride, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldTemperature, v))
}

// Response applies equality check predicate on the "response" field. It's identical to ResponseEQ.
func Response(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldResponse, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldReasoning, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldModelUsed, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldErrorKind, v))
}

// ReasonCode applies equality check predicate on the "reason_code" field. It's identical to ReasonCodeEQ.
func ReasonCode(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldReasonCode, v))
}

// FailingEventID applies equality check predicate on the "failing_event_id" field. It's identical to FailingEventIDEQ.
func FailingEventID(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldFailingEventID, v))
}

// EventSequence applies equality check predicate on the "event_sequence" field. It's identical to EventSequenceEQ.
func EventSequence(v int64) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldEventSequence, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldWorkerID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCompletedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldDeletedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldSessionID, v))
}

// RequestTypeEQ applies the EQ predicate on the "request_type" field.
func RequestTypeEQ(v RequestType) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldRequestType, v))
}

// RequestTypeNEQ applies the NEQ predicate on the "request_type" field.
func RequestTypeNEQ(v RequestType) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldRequestType, v))
}

// RequestTypeIn applies the In predicate on the "request_type" field.
func RequestTypeIn(vs ...RequestType) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldRequestType, vs...))
}

// RequestTypeNotIn applies the NotIn predicate on the "request_type" field.
func RequestTypeNotIn(vs ...RequestType) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldRequestType, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldMessage, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptIsNil applies the IsNil predicate on the "system_prompt" field.
func SystemPromptIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldSystemPrompt))
}

// SystemPromptNotNil applies the NotNil predicate on the "system_prompt" field.
func SystemPromptNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldSystemPrompt))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// ModelOverrideEQ applies the EQ predicate on the "model_override" field.
func ModelOverrideEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldModelOverride, v))
}

// ModelOverrideNEQ applies the NEQ predicate on the "model_override" field.
func ModelOverrideNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldModelOverride, v))
}

// ModelOverrideIn applies the In predicate on the "model_override" field.
func ModelOverrideIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldModelOverride, vs...))
}

// ModelOverrideNotIn applies the NotIn predicate on the "model_override" field.
func ModelOverrideNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldModelOverride, vs...))
}

// ModelOverrideGT applies the GT predicate on the "model_override" field.
func ModelOverrideGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldModelOverride, v))
}

// ModelOverrideGTE applies the GTE predicate on the "model_override" field.
func ModelOverrideGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldModelOverride, v))
}

// ModelOverrideLT applies the LT predicate on the "model_override" field.
func ModelOverrideLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldModelOverride, v))
}

// ModelOverrideLTE applies the LTE predicate on the "model_override" field.
func ModelOverrideLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldModelOverride, v))
}

// ModelOverrideContains applies the Contains predicate on the "model_override" field.
func ModelOverrideContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldModelOverride, v))
}

// ModelOverrideHasPrefix applies the HasPrefix predicate on the "model_override" field.
func ModelOverrideHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldModelOverride, v))
}

// ModelOverrideHasSuffix applies the HasSuffix predicate on the "model_override" field.
func ModelOverrideHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldModelOverride, v))
}

// ModelOverrideIsNil applies the IsNil predicate on the "model_override" field.
func ModelOverrideIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldModelOverride))
}

// ModelOverrideNotNil applies the NotNil predicate on the "model_override" field.
func ModelOverrideNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldModelOverride))
}

// ModelOverrideEqualFold applies the EqualFold predicate on the "model_override" field.
func ModelOverrideEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldModelOverride, v))
}

// ModelOverrideContainsFold applies the ContainsFold predicate on the "model_override" field.
func ModelOverrideContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldModelOverride, v))
}

// ServerOverrideEQ applies the EQ predicate on the "server_override" field.
func ServerOverrideEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldServerOverride, v))
}

// ServerOverrideNEQ applies the NEQ predicate on the "server_override" field.
func ServerOverrideNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldServerOverride, v))
}

// ServerOverrideIn applies the In predicate on the "server_override" field.
func ServerOverrideIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldServerOverride, vs...))
}

// ServerOverrideNotIn applies the NotIn predicate on the "server_override" field.
func ServerOverrideNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldServerOverride, vs...))
}

// ServerOverrideGT applies the GT predicate on the "server_override" field.
func ServerOverrideGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldServerOverride, v))
}

// ServerOverrideGTE applies the GTE predicate on the "server_override" field.
func ServerOverrideGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldServerOverride, v))
}

// ServerOverrideLT applies the LT predicate on the "server_override" field.
func ServerOverrideLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldServerOverride, v))
}

// ServerOverrideLTE applies the LTE predicate on the "server_override" field.
func ServerOverrideLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldServerOverride, v))
}

// ServerOverrideContains applies the Contains predicate on the "server_override" field.
func ServerOverrideContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldServerOverride, v))
}

// ServerOverrideHasPrefix applies the HasPrefix predicate on the "server_override" field.
func ServerOverrideHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldServerOverride, v))
}

// ServerOverrideHasSuffix applies the HasSuffix predicate on the "server_override" field.
func ServerOverrideHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldServerOverride, v))
}

// ServerOverrideIsNil applies the IsNil predicate on the "server_override" field.
func ServerOverrideIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldServerOverride))
}

// ServerOverrideNotNil applies the NotNil predicate on the "server_override" field.
func ServerOverrideNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldServerOverride))
}

// ServerOverrideEqualFold applies the EqualFold predicate on the "server_override" field.
func ServerOverrideEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldServerOverride, v))
}

// ServerOverrideContainsFold applies the ContainsFold predicate on the "server_override" field.
func ServerOverrideContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldServerOverride, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldTemperature))
}

// CurrentStageEQ applies the EQ predicate on the "current_stage" field.
func CurrentStageEQ(v CurrentStage) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCurrentStage, v))
}

// CurrentStageNEQ applies the NEQ predicate on the "current_stage" field.
func CurrentStageNEQ(v CurrentStage) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCurrentStage, v))
}

// CurrentStageIn applies the In predicate on the "current_stage" field.
func CurrentStageIn(vs ...CurrentStage) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldCurrentStage, vs...))
}

// CurrentStageNotIn applies the NotIn predicate on the "current_stage" field.
func CurrentStageNotIn(vs ...CurrentStage) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldCurrentStage, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldStatus, vs...))
}

// ResponseEQ applies the EQ predicate on the "response" field.
func ResponseEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldResponse, v))
}

// ResponseNEQ applies the NEQ predicate on the "response" field.
func ResponseNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldResponse, v))
}

// ResponseIn applies the In predicate on the "response" field.
func ResponseIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldResponse, vs...))
}

// ResponseNotIn applies the NotIn predicate on the "response" field.
func ResponseNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldResponse, vs...))
}

// ResponseGT applies the GT predicate on the "response" field.
func ResponseGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldResponse, v))
}

// ResponseGTE applies the GTE predicate on the "response" field.
func ResponseGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldResponse, v))
}

// ResponseLT applies the LT predicate on the "response" field.
func ResponseLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldResponse, v))
}

// ResponseLTE applies the LTE predicate on the "response" field.
func ResponseLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldResponse, v))
}

// ResponseContains applies the Contains predicate on the "response" field.
func ResponseContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldResponse, v))
}

// ResponseHasPrefix applies the HasPrefix predicate on the "response" field.
func ResponseHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldResponse, v))
}

// ResponseHasSuffix applies the HasSuffix predicate on the "response" field.
func ResponseHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldResponse, v))
}

// ResponseIsNil applies the IsNil predicate on the "response" field.
func ResponseIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldResponse))
}

// ResponseNotNil applies the NotNil predicate on the "response" field.
func ResponseNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldResponse))
}

// ResponseEqualFold applies the EqualFold predicate on the "response" field.
func ResponseEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldResponse, v))
}

// ResponseContainsFold applies the ContainsFold predicate on the "response" field.
func ResponseContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldResponse, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldReasoning, v))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedIsNil applies the IsNil predicate on the "model_used" field.
func ModelUsedIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldModelUsed))
}

// ModelUsedNotNil applies the NotNil predicate on the "model_used" field.
func ModelUsedNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldModelUsed))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldModelUsed, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldErrorKind, v))
}

// ReasonCodeEQ applies the EQ predicate on the "reason_code" field.
func ReasonCodeEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldReasonCode, v))
}

// ReasonCodeNEQ applies the NEQ predicate on the "reason_code" field.
func ReasonCodeNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldReasonCode, v))
}

// ReasonCodeIn applies the In predicate on the "reason_code" field.
func ReasonCodeIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldReasonCode, vs...))
}

// ReasonCodeNotIn applies the NotIn predicate on the "reason_code" field.
func ReasonCodeNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldReasonCode, vs...))
}

// ReasonCodeGT applies the GT predicate on the "reason_code" field.
func ReasonCodeGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldReasonCode, v))
}

// ReasonCodeGTE applies the GTE predicate on the "reason_code" field.
func ReasonCodeGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldReasonCode, v))
}

// ReasonCodeLT applies the LT predicate on the "reason_code" field.
func ReasonCodeLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldReasonCode, v))
}

// ReasonCodeLTE applies the LTE predicate on the "reason_code" field.
func ReasonCodeLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldReasonCode, v))
}

// ReasonCodeContains applies the Contains predicate on the "reason_code" field.
func ReasonCodeContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldReasonCode, v))
}

// ReasonCodeHasPrefix applies the HasPrefix predicate on the "reason_code" field.
func ReasonCodeHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldReasonCode, v))
}

// ReasonCodeHasSuffix applies the HasSuffix predicate on the "reason_code" field.
func ReasonCodeHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldReasonCode, v))
}

// ReasonCodeIsNil applies the IsNil predicate on the "reason_code" field.
func ReasonCodeIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldReasonCode))
}

// ReasonCodeNotNil applies the NotNil predicate on the "reason_code" field.
func ReasonCodeNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldReasonCode))
}

// ReasonCodeEqualFold applies the EqualFold predicate on the "reason_code" field.
func ReasonCodeEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldReasonCode, v))
}

// ReasonCodeContainsFold applies the ContainsFold predicate on the "reason_code" field.
func ReasonCodeContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldReasonCode, v))
}

// FailingEventIDEQ applies the EQ predicate on the "failing_event_id" field.
func FailingEventIDEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldFailingEventID, v))
}

// FailingEventIDNEQ applies the NEQ predicate on the "failing_event_id" field.
func FailingEventIDNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldFailingEventID, v))
}

// FailingEventIDIn applies the In predicate on the "failing_event_id" field.
func FailingEventIDIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldFailingEventID, vs...))
}

// FailingEventIDNotIn applies the NotIn predicate on the "failing_event_id" field.
func FailingEventIDNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldFailingEventID, vs...))
}

// FailingEventIDGT applies the GT predicate on the "failing_event_id" field.
func FailingEventIDGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldFailingEventID, v))
}

// FailingEventIDGTE applies the GTE predicate on the "failing_event_id" field.
func FailingEventIDGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldFailingEventID, v))
}

// FailingEventIDLT applies the LT predicate on the "failing_event_id" field.
func FailingEventIDLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldFailingEventID, v))
}

// FailingEventIDLTE applies the LTE predicate on the "failing_event_id" field.
func FailingEventIDLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldFailingEventID, v))
}

// FailingEventIDContains applies the Contains predicate on the "failing_event_id" field.
func FailingEventIDContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldFailingEventID, v))
}

// FailingEventIDHasPrefix applies the HasPrefix predicate on the "failing_event_id" field.
func FailingEventIDHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldFailingEventID, v))
}

// FailingEventIDHasSuffix applies the HasSuffix predicate on the "failing_event_id" field.
func FailingEventIDHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldFailingEventID, v))
}

// FailingEventIDIsNil applies the IsNil predicate on the "failing_event_id" field.
func FailingEventIDIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldFailingEventID))
}

// FailingEventIDNotNil applies the NotNil predicate on the "failing_event_id" field.
func FailingEventIDNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldFailingEventID))
}

// FailingEventIDEqualFold applies the EqualFold predicate on the "failing_event_id" field.
func FailingEventIDEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldFailingEventID, v))
}

// FailingEventIDContainsFold applies the ContainsFold predicate on the "failing_event_id" field.
func FailingEventIDContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldFailingEventID, v))
}

// EventSequenceEQ applies the EQ predicate on the "event_sequence" field.
func EventSequenceEQ(v int64) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldEventSequence, v))
}

// EventSequenceNEQ applies the NEQ predicate on the "event_sequence" field.
func EventSequenceNEQ(v int64) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldEventSequence, v))
}

// EventSequenceIn applies the In predicate on the "event_sequence" field.
func EventSequenceIn(vs ...int64) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldEventSequence, vs...))
}

// EventSequenceNotIn applies the NotIn predicate on the "event_sequence" field.
func EventSequenceNotIn(vs ...int64) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldEventSequence, vs...))
}

// EventSequenceGT applies the GT predicate on the "event_sequence" field.
func EventSequenceGT(v int64) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldEventSequence, v))
}

// EventSequenceGTE applies the GTE predicate on the "event_sequence" field.
func EventSequenceGTE(v int64) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldEventSequence, v))
}

// EventSequenceLT applies the LT predicate on the "event_sequence" field.
func EventSequenceLT(v int64) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldEventSequence, v))
}

// EventSequenceLTE applies the LTE predicate on the "event_sequence" field.
func EventSequenceLTE(v int64) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldEventSequence, v))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldWorkerID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldCompletedAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldDeletedAt))
}

// HasPlans applies the HasEdge predicate on the "plans" edge.
func HasPlans() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PlansTable, PlansColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPlansWith applies the HasEdge predicate on the "plans" edge with a given conditions (other predicates).
func HasPlansWith(preds ...predicate.Plan) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newPlansStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.Step) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutionEvents applies the HasEdge predicate on the "execution_events" edge.
func HasExecutionEvents() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionEventsTable, ExecutionEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionEventsWith applies the HasEdge predicate on the "execution_events" edge with a given conditions (other predicates).
func HasExecutionEventsWith(preds ...predicate.ExecutionEvent) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newExecutionEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasApprovalRequests applies the HasEdge predicate on the "approval_requests" edge.
func HasApprovalRequests() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApprovalRequestsTable, ApprovalRequestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApprovalRequestsWith applies the HasEdge predicate on the "approval_requests" edge with a given conditions (other predicates).
func HasApprovalRequestsWith(preds ...predicate.ApprovalRequest) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newApprovalRequestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.NotPredicates(p))
}
