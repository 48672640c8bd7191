package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TraceEvent is one immutable snapshot of a step in the reasoning pipeline.
// Rows are append-only: created once by the gateway, never updated or
// deleted outside explicit administrative cascade.
type TraceEvent struct {
	ent.Schema
}

func (TraceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TraceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("trace_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID identifying the trace"),
		field.String("session_id").
			NotEmpty().
			Immutable().
			Comment("Owning session"),
		field.Enum("trace_level").
			Values("surface", "technical", "interactional", "cognitive").
			Immutable().
			Comment("Detail tier of the capture"),
		field.Enum("interaction_type").
			Values("student_prompt", "agent_response", "system_event").
			Immutable(),
		field.String("cognitive_state").
			Immutable().
			Comment("Phase label assigned by the classifier"),
		field.String("cognitive_intent").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Float("ai_involvement").
			Default(0).
			Immutable().
			Comment("Share of the content originating from the model, 0..1"),
		field.JSON("metadata", map[string]string{}).
			Optional().
			Immutable().
			Comment("Free-form side data (agent name, cache hit, failure marker)"),
	}
}

func (TraceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("interaction_type"),
	}
}
