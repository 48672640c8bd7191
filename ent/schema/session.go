package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session represents one continuous learning interaction between a student
// and the gateway. Traces, risks and evaluation reports all hang off the
// session_id.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID identifying the session"),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("activity_id").
			Optional().
			Immutable().
			Comment("Empty when the session is not tied to an activity"),
		field.Enum("mode").
			Values("tutor", "evaluator", "simulator", "risk_analyst").
			Default("tutor").
			Comment("Active agent mode"),
		field.Enum("status").
			Values("active", "completed", "paused", "aborted").
			Default("active"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Set on transition to a terminal status"),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("activity_id"),
		index.Fields("status"),
	}
}
