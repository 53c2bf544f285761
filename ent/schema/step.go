package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Step holds the schema definition for the Step entity: one unit of
// execution inside a plan. Dependencies are step ids and must form a DAG.
type Step struct {
	ent.Schema
}

// Fields of the Step.
func (Step) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("plan_id").
			Immutable(),
		field.String("workflow_id").
			Immutable().
			Comment("Denormalized for event stamping and queries"),
		field.Int("index").
			Comment("Topological order within the plan"),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Enum("type").
			Values("action", "decision", "validation").
			Default("action"),
		field.Enum("executor_kind").
			Values("agent", "tool", "team", "inline_llm").
			Default("inline_llm"),
		field.String("executor_ref").
			Optional().
			Comment("Agent or tool name; empty for inline_llm"),
		field.JSON("team_members", []string{}).
			Optional().
			Comment("Agent names for team steps"),
		field.JSON("inputs", map[string]interface{}{}).
			Optional(),
		field.JSON("outputs", map[string]interface{}{}).
			Optional(),
		field.JSON("dependencies", []string{}).
			Optional().
			Comment("Step ids this step waits on"),
		field.Int64("timeout_ms").
			Default(300_000),
		field.Int("max_attempts").
			Default(3),
		field.Int64("backoff_base_ms").
			Default(1000),
		field.Bool("approval_required").
			Default(false).
			Comment("Failure of such a step is never re-planned around"),
		field.Enum("risk_level").
			Values("low", "medium", "high").
			Default("low"),
		field.JSON("function_call", map[string]interface{}{}).
			Optional().
			Comment("Structured {name, arguments} for tool steps"),
		field.JSON("checks", map[string]interface{}{}).
			Optional().
			Comment("Validation-step check declarations"),
		field.Enum("state").
			Values("waiting", "ready", "running", "succeeded", "failed", "skipped", "cancelled").
			Default("waiting"),
		field.Int("attempts").
			Default(0),
		field.String("error_kind").
			Optional().
			Nillable(),
		field.String("reason_code").
			Optional().
			Nillable(),
		field.Float("quality_score").
			Optional().
			Nillable().
			Comment("Validation steps: quality in [0,1]"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Step.
func (Step) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", Plan.Type).
			Ref("plan_steps").
			Field("plan_id").
			Unique().
			Required().
			Immutable(),
		edge.From("workflow", Workflow.Type).
			Ref("steps").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Step.
func (Step) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "index").
			Unique(),
		index.Fields("plan_id", "state"),
		index.Fields("workflow_id"),
	}
}
