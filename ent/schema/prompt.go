package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prompt holds the schema definition for the Prompt entity: one immutable
// version of a prompt body. Logical prompts are identified by prompt_id;
// publishing a change appends a new row with version+1.
type Prompt struct {
	ent.Schema
}

// Fields of the Prompt.
func (Prompt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("prompt_id").
			Immutable().
			Comment("Logical prompt identity, shared across versions"),
		field.Int("version").
			Immutable().
			Min(1),
		field.Text("body").
			Immutable(),
		field.String("description").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Prompt.
func (Prompt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prompt_id", "version").
			Unique(),
	}
}
