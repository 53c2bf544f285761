package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolSpec holds the schema definition for the ToolSpec entity: a registry
// entry describing an opaque callable with declared input/output schemas.
// Tools execute only through the sandbox against their input schema.
type ToolSpec struct {
	ent.Schema
}

// Fields of the ToolSpec.
func (ToolSpec) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tool_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Enum("status").
			Values("draft", "waiting_approval", "active", "paused", "deprecated").
			Default("draft"),
		field.JSON("capabilities", []string{}).
			Optional(),
		field.JSON("input_schema", map[string]interface{}{}).
			Comment("JSON Schema the sandbox validates arguments against"),
		field.JSON("output_schema", map[string]interface{}{}).
			Optional(),
		field.JSON("command", []string{}).
			Optional().
			Comment("argv template for subprocess tools; empty for in-process handlers"),
		field.String("handler").
			Optional().
			Comment("Registered in-process handler name; empty for subprocess tools"),
		field.Int64("default_timeout_ms").
			Default(300_000),
		field.Int64("total_runs").
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

// Indexes of the ToolSpec.
func (ToolSpec) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
