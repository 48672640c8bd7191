package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Risk is one concern detected by the scanner. The dimension is mandatory
// at creation; the only mutation allowed after creation is resolution.
type Risk struct {
	ent.Schema
}

func (Risk) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Risk) Fields() []ent.Field {
	return []ent.Field{
		field.String("risk_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("activity_id").
			Optional().
			Immutable(),
		field.String("risk_type").
			NotEmpty().
			Immutable().
			Comment("Per-dimension type tag, e.g. cognitive_delegation"),
		field.Enum("level").
			Values("low", "medium", "high", "critical").
			Immutable(),
		field.Enum("dimension").
			Values("cognitive", "ethical", "epistemic", "technical", "governance").
			Immutable().
			Comment("Always required, never inferred at the storage layer"),
		field.Text("description").
			Immutable(),
		field.JSON("evidence", []string{}).
			Optional().
			Immutable(),
		field.JSON("recommendations", []string{}).
			Optional().
			Immutable(),
		field.JSON("trace_ids", []string{}).
			Optional().
			Immutable().
			Comment("Traces this finding is grounded on"),
		field.Bool("resolved").
			Default(false),
		field.String("resolution_notes").
			Optional().
			Default(""),
	}
}

func (Risk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("dimension"),
		index.Fields("resolved"),
	}
}
