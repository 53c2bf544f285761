package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModelEndpoint holds the schema definition for the ModelEndpoint entity: one
// LLM serving endpoint the gateway can route to. Config-declared endpoints
// are upserted by name at startup; the registry may hold more.
type ModelEndpoint struct {
	ent.Schema
}

// Fields of the ModelEndpoint.
func (ModelEndpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("model_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique().
			Comment("model_ref used by callers and server_id in responses"),
		field.String("url"),
		field.String("model").
			Comment("Model identifier passed to the serving endpoint"),
		field.JSON("capabilities", []string{}).
			Comment("reasoning, coding, ..."),
		field.Int("max_concurrent").
			Default(4).
			Min(1),
		field.Int("priority").
			Default(0).
			Comment("Lower wins ties during selection"),
		field.Enum("status").
			Values("draft", "waiting_approval", "active", "paused", "deprecated").
			Default("active"),
		field.Bool("healthy").
			Default(false),
		field.Time("last_health_check").
			Optional().
			Nillable(),
		field.Int64("total_requests").
			Default(0),
		field.Int64("successes").
			Default(0),
		field.Int64("failures").
			Default(0),
		field.Float("avg_latency_ms").
			Default(0),
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

// Indexes of the ModelEndpoint.
func (ModelEndpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "healthy"),
	}
}
