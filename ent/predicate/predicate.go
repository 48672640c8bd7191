// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// EvaluationReport is the predicate function for evaluationreport builders.
type EvaluationReport func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Risk is the predicate function for risk builders.
type Risk func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// TraceEvent is the predicate function for traceevent builders.
type TraceEvent func(*sql.Selector)
