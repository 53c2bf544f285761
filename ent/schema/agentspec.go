package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSpec holds the schema definition for the AgentSpec entity: a registry
// entry describing an executable agent (system prompt resolved via
// PromptAssignment at run time).
type AgentSpec struct {
	ent.Schema
}

// Fields of the AgentSpec.
func (AgentSpec) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Enum("status").
			Values("draft", "waiting_approval", "active", "paused", "deprecated").
			Default("draft"),
		field.JSON("capabilities", []string{}).
			Optional(),
		field.String("model_class").
			Default("reasoning").
			Comment("Task class the agent's calls run under"),
		field.Text("description").
			Optional(),
		field.Int64("total_runs").
			Default(0),
		field.Int64("successes").
			Default(0),
		field.Int64("failures").
			Default(0),
		field.Float("avg_latency_ms").
			Default(0).
			Comment("Exponential moving average"),
		field.Int("version").
			Default(1).
			Comment("Optimistic concurrency token"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentSpec.
func (AgentSpec) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
