package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionEvent holds the schema definition for the ExecutionEvent entity:
// the canonical, append-only observability record (v0). Appends are totally
// ordered per workflow via the sequence column; parent_event_id links form a
// causal forest rooted at the workflow entry event.
type ExecutionEvent struct {
	ent.Schema
}

// Fields of the ExecutionEvent.
func (ExecutionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int64("sequence").
			Immutable().
			Comment("Per-workflow monotonic append order"),
		field.Enum("event_type").
			NamedValues(
				"WorkflowStart", "workflow.start",
				"WorkflowComplete", "workflow.complete",
				"WorkflowFailed", "workflow.failed",
				"WorkflowCancelled", "workflow.cancelled",
				"WorkflowPaused", "workflow.paused",
				"WorkflowResumed", "workflow.resumed",
				"StageStarted", "stage.started",
				"StageCompleted", "stage.completed",
				"StageFailed", "stage.failed",
				"ModelRequest", "model_request",
				"ModelResponse", "model_response",
				"StepStarted", "step.started",
				"StepCompleted", "step.completed",
				"StepFailed", "step.failed",
				"StepSkipped", "step.skipped",
				"StepCancelled", "step.cancelled",
				"PlanCreated", "plan.created",
				"PlanSuperseded", "plan.superseded",
				"PlanCompleted", "plan.completed",
				"PlanFailed", "plan.failed",
				"ApprovalRequested", "approval.requested",
				"ApprovalDecided", "approval.decided",
				"CheckpointCreated", "checkpoint.created",
				"SlowProgress", "slow_progress",
				"QueueDeadLetter", "queue.dead_letter",
				"SubscriberLag", "subscriber.lag",
			).
			Immutable(),
		field.Enum("stage").
			Values(
				"interpretation",
				"validator_a",
				"routing",
				"planning",
				"validator_b",
				"execution",
				"reflection",
				"registry_update",
			).
			Immutable(),
		field.String("component_role").
			Immutable().
			Comment("Canonical role within the stage; mandatory on the wire"),
		field.String("component_name").
			Immutable().
			Comment("Concrete component: agent_<name>, tool_<name>, planner, ..."),
		field.Enum("decision_source").
			Values("component", "registry", "human").
			Immutable(),
		field.String("status").
			Immutable(),
		field.Text("input_summary").
			Optional().
			Immutable().
			Comment("Bounded (<=4KB), redacted; never the raw LLM payload"),
		field.Text("output_summary").
			Optional().
			Immutable().
			Comment("Bounded (<=4KB), redacted; never the raw LLM payload"),
		field.String("reason_code").
			Optional().
			Immutable(),
		field.String("parent_event_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Causal parent; nil only for workflow entry events"),
		field.String("prompt_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Set when an LLM was used, alongside prompt_version"),
		field.Int("prompt_version").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("event_metadata", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Free-form; raw payloads referenced via payload_ref"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ExecutionEvent.
func (ExecutionEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("execution_events").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExecutionEvent.
func (ExecutionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "sequence").
			Unique(),
		index.Fields("workflow_id", "parent_event_id"),
		index.Fields("created_at"),
	}
}
