package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPattern holds the schema definition for the LearningPattern entity:
// a reflector observation aggregated by (kind, signature). The planner's
// procedural recall reads these.
type LearningPattern struct {
	ent.Schema
}

// Fields of the LearningPattern.
func (LearningPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pattern_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("strategy", "prompt", "tool_selection", "code_pattern", "error_recovery"),
		field.Enum("level").
			Values("micro", "meso", "macro").
			Default("macro").
			Comment("Reflection granularity: per step, per step-group, per plan"),
		field.String("signature").
			Comment("Request fingerprint, tool set, or structural hash"),
		field.JSON("body", map[string]interface{}{}).
			Optional().
			Comment("Pattern content: strategy skeleton, tool list, recovery hint"),
		field.Float("observed_success_rate").
			Default(0),
		field.Int64("sample_count").
			Default(0),
		field.Time("last_observed_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the LearningPattern.
func (LearningPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "signature").
			Unique(),
		index.Fields("kind", "observed_success_rate"),
	}
}
