package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptAssignment holds the schema definition for the PromptAssignment
// entity: a scoped binding from (stage, component_role) to a prompt version.
// Resolution precedence: experiment scope > agent scope > component default.
type PromptAssignment struct {
	ent.Schema
}

// Fields of the PromptAssignment.
func (PromptAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
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
			),
		field.String("component_role"),
		field.Enum("scope_type").
			Values("experiment", "agent", "default").
			Default("default"),
		field.String("scope_value").
			Default("").
			Comment("Experiment id or agent name; empty for default scope"),
		field.String("prompt_id"),
		field.Int("prompt_version").
			Min(1),
		field.Bool("legacy_exempt").
			Default(false).
			Comment("Marks bindings whose absence falls back to builtins instead of failing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PromptAssignment.
func (PromptAssignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage", "component_role", "scope_type", "scope_value").
			Unique(),
		index.Fields("prompt_id"),
	}
}
