package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity: one user
// interaction moving through the canonical pipeline.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable().
			Comment("Groups workflows of one conversation"),
		field.Enum("request_type").
			NamedValues(
				"SimpleQuestion", "SIMPLE_QUESTION",
				"InformationQuery", "INFORMATION_QUERY",
				"CodeGeneration", "CODE_GENERATION",
				"ComplexTask", "COMPLEX_TASK",
				"PlanningOnly", "PLANNING_ONLY",
			),
		field.Text("message").
			Comment("Original user request"),
		field.Text("system_prompt").
			Optional().
			Nillable(),
		field.String("model_override").
			Optional().
			Nillable().
			Comment("Caller-pinned model; requires server_override"),
		field.String("server_override").
			Optional().
			Nillable(),
		field.Float("temperature").
			Optional().
			Nillable(),
		field.Enum("current_stage").
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
			Default("interpretation"),
		field.Enum("status").
			Values("pending", "running", "paused", "completed", "failed", "cancelled").
			Default("pending"),
		field.Text("response").
			Optional().
			Nillable().
			Comment("Final user-facing answer"),
		field.Text("reasoning").
			Optional().
			Nillable(),
		field.String("model_used").
			Optional().
			Nillable(),
		field.String("error_kind").
			Optional().
			Nillable(),
		field.String("reason_code").
			Optional().
			Nillable(),
		field.String("failing_event_id").
			Optional().
			Nillable().
			Comment("Event id surfaced with escalated errors"),
		field.Int64("event_sequence").
			Default(0).
			Comment("Append counter; incremented under the row lock by the event log"),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("plans", Plan.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("steps", Step.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("execution_events", ExecutionEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("approval_requests", ApprovalRequest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("session_id"),
		index.Fields("request_type"),

		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
