package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity is a teacher-authored unit of work carrying the pedagogical
// policy consumed by governance and risk scanning. Referenced by many
// sessions, mutated only by the owning teacher.
type Activity struct {
	ent.Schema
}

func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.String("activity_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("teacher_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Text("description").
			Optional().
			Default(""),
		field.Int("max_help_level").
			Default(3).
			Comment("1 = orientation only, up to 5 = worked examples"),
		field.Bool("block_complete_solutions").
			Default(true),
		field.Bool("require_justification").
			Default(false),
		field.Float("delegation_threshold").
			Default(0.7).
			Comment("Cumulative AI-involvement ceiling over recent history"),
		field.JSON("risk_thresholds", map[string]float64{}).
			Optional().
			Comment("Per-risk-type numeric thresholds"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("teacher_id"),
	}
}
