package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationReport summarizes a session's process. At most one row exists
// per session; regeneration replaces the row through an explicit path.
type EvaluationReport struct {
	ent.Schema
}

func (EvaluationReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("report_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("One report per session"),
		field.String("student_id").
			NotEmpty(),
		field.String("activity_id").
			Optional(),
		field.Enum("competency").
			Values("novice", "advanced_beginner", "competent", "proficient", "expert"),
		field.Float("overall_score"),
		field.JSON("dimensions", map[string]float64{}).
			Optional().
			Comment("Per-dimension score breakdown"),
		field.JSON("strengths", []string{}).
			Optional(),
		field.JSON("improvements", []string{}).
			Optional(),
		field.Float("ai_dependency").
			Default(0).
			Comment("Mean AI-involvement across the session's traces"),
		field.Time("created_at").
			Default(time.Now),
	}
}

func (EvaluationReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("activity_id"),
	}
}
