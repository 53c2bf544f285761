package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Plan holds the schema definition for the Plan entity: one planning result
// for a workflow. Versions increase monotonically; re-planning supersedes the
// predecessor, and at most one plan per workflow is executing (enforced by a
// partial unique index, see pkg/database/migrations.go).
type Plan struct {
	ent.Schema
}

// Fields of the Plan.
func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("plan_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.Int("version").
			Comment("Monotonic per workflow"),
		field.Text("goal"),
		field.String("strategy_name").
			Optional().
			Comment("Alternative-generation strategy: conservative, balanced, aggressive"),
		field.JSON("strategy", map[string]interface{}{}).
			Comment("approach, assumptions, constraints, success_criteria"),
		field.Float("risk_score").
			Default(0).
			Comment("clamp(0.2*frac_high_risk + 0.2*frac_requires_approval + 0.3*(1-known_tool_ratio) + 0.3*novelty, 0, 1)"),
		field.JSON("alternatives", []string{}).
			Optional().
			Comment("Sibling plan ids"),
		field.Bool("primary").
			Default(true).
			Comment("Winner among alternatives"),
		field.Enum("status").
			Values("draft", "pending_approval", "approved", "executing", "paused", "completed", "failed", "superseded").
			Default("draft"),
		field.Int64("expected_duration_ms").
			Default(0).
			Comment("Sum of step timeouts; progress supervisor baseline"),
		field.Int64("actual_duration_ms").
			Optional().
			Nillable(),
		field.String("reason_code").
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

// Edges of the Plan.
func (Plan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("plans").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
		edge.To("plan_steps", Step.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Plan.
func (Plan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "version").
			Unique(),
		index.Fields("status"),
		index.Fields("workflow_id", "status"),
	}
}
