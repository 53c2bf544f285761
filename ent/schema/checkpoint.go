package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity: an
// integrity-hashed snapshot of entity state. Targets are referenced weakly by
// (entity_type, entity_id) — no foreign keys.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("entity_type").
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.Bytes("state_blob").
			Immutable().
			Comment("Canonical JSON encoding of the snapshotted state"),
		field.String("integrity_hash").
			Immutable().
			Comment("sha256 hex over state_blob"),
		field.String("reason").
			Immutable().
			Comment("pre_step, pre_plan, cancellation, ..."),
		field.String("trace_id").
			Optional().
			Immutable().
			Comment("Workflow or event id for cross-referencing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id", "created_at"),
	}
}
