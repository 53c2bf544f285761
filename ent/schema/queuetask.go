package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueTask holds the schema definition for the QueueTask entity: one unit of
// deferrable work. Leasing is transactional (SELECT ... FOR UPDATE SKIP
// LOCKED) so at most one worker holds a task at a time.
type QueueTask struct {
	ent.Schema
}

// Fields of the QueueTask.
func (QueueTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("queue_id").
			Immutable().
			Comment("Logical queue: workflows.run, steps:<plan_id>, reflection.run"),
		field.String("kind").
			Immutable().
			Comment("Payload discriminator: workflow.run, step.execute, reflection.run"),
		field.Int("priority").
			Default(4).
			Min(0).
			Max(9).
			Comment("0 lowest, 9 highest; overrides FIFO"),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Enum("state").
			Values("queued", "leased", "succeeded", "failed", "dead").
			Default("queued"),
		field.String("lease_owner").
			Optional().
			Nillable(),
		field.Time("lease_expires_at").
			Optional().
			Nillable().
			Comment("Visibility timeout; expired leases are reaped back to queued"),
		field.Time("leased_at").
			Optional().
			Nillable().
			Comment("Start of the current lease; completion timing excludes queue wait"),
		field.Time("next_visible_at").
			Default(time.Now).
			Comment("Backoff gate: task is claimable once this passes"),
		field.Text("last_error").
			Optional().
			Nillable(),
		field.Time("enqueued_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the QueueTask.
func (QueueTask) Indexes() []ent.Index {
	return []ent.Index{
		// Claim scan: queue + state + visibility, ordered by priority/enqueue
		index.Fields("queue_id", "state", "next_visible_at", "priority", "enqueued_at"),
		index.Fields("state", "lease_expires_at"),
	}
}
