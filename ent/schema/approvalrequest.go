package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalRequest holds the schema definition for the ApprovalRequest entity:
// a pending human decision blocking a plan (or another artifact).
type ApprovalRequest struct {
	ent.Schema
}

// Fields of the ApprovalRequest.
func (ApprovalRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("plan_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("artifact_ref").
			Comment("What is being approved: plan:<id>, proposal:<id>, ..."),
		field.JSON("risk_assessment", map[string]interface{}{}).
			Optional().
			Comment("risk_score, step_risks, agent_trust, rationale"),
		field.Text("recommendation").
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "modified", "expired").
			Default("pending"),
		field.Time("decision_deadline"),
		field.Text("feedback").
			Optional().
			Nillable().
			Comment("Human feedback, recorded for the reflector"),
		field.String("decided_by").
			Optional().
			Nillable(),
		field.Time("decided_at").
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

// Edges of the ApprovalRequest.
func (ApprovalRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("approval_requests").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ApprovalRequest.
func (ApprovalRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "decision_deadline"),
		index.Fields("workflow_id"),
		index.Fields("plan_id"),
	}
}
