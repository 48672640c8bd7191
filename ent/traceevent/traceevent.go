// Code generated by ent, DO NOT EDIT.

package traceevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the traceevent type in the database.
	Label = "trace_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTraceID holds the string denoting the trace_id field in the database.
	FieldTraceID = "trace_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTraceLevel holds the string denoting the trace_level field in the database.
	FieldTraceLevel = "trace_level"
	// FieldInteractionType holds the string denoting the interaction_type field in the database.
	FieldInteractionType = "interaction_type"
	// FieldCognitiveState holds the string denoting the cognitive_state field in the database.
	FieldCognitiveState = "cognitive_state"
	// FieldCognitiveIntent holds the string denoting the cognitive_intent field in the database.
	FieldCognitiveIntent = "cognitive_intent"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldAiInvolvement holds the string denoting the ai_involvement field in the database.
	FieldAiInvolvement = "ai_involvement"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the traceevent in the database.
	Table = "trace_events"
)

// Columns holds all SQL columns for traceevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldTraceID,
	FieldSessionID,
	FieldTraceLevel,
	FieldInteractionType,
	FieldCognitiveState,
	FieldCognitiveIntent,
	FieldContent,
	FieldAiInvolvement,
	FieldMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// TraceIDValidator is a validator for the "trace_id" field. It is called by the builders before save.
	TraceIDValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultAiInvolvement holds the default value on creation for the "ai_involvement" field.
	DefaultAiInvolvement float64
)

// TraceLevel defines the type for the "trace_level" enum field.
type TraceLevel string

// TraceLevel values.
const (
	TraceLevelSurface       TraceLevel = "surface"
	TraceLevelTechnical     TraceLevel = "technical"
	TraceLevelInteractional TraceLevel = "interactional"
	TraceLevelCognitive     TraceLevel = "cognitive"
)

func (tl TraceLevel) String() string {
	return string(tl)
}

// TraceLevelValidator is a validator for the "trace_level" field enum values. It is called by the builders before save.
func TraceLevelValidator(tl TraceLevel) error {
	switch tl {
	case TraceLevelSurface, TraceLevelTechnical, TraceLevelInteractional, TraceLevelCognitive:
		return nil
	default:
		return fmt.Errorf("traceevent: invalid enum value for trace_level field: %q", tl)
	}
}

// InteractionType defines the type for the "interaction_type" enum field.
type InteractionType string

// InteractionType values.
const (
	InteractionTypeStudentPrompt InteractionType = "student_prompt"
	InteractionTypeAgentResponse InteractionType = "agent_response"
	InteractionTypeSystemEvent   InteractionType = "system_event"
)

func (it InteractionType) String() string {
	return string(it)
}

// InteractionTypeValidator is a validator for the "interaction_type" field enum values. It is called by the builders before save.
func InteractionTypeValidator(it InteractionType) error {
	switch it {
	case InteractionTypeStudentPrompt, InteractionTypeAgentResponse, InteractionTypeSystemEvent:
		return nil
	default:
		return fmt.Errorf("traceevent: invalid enum value for interaction_type field: %q", it)
	}
}

// OrderOption defines the ordering options for the TraceEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTraceID orders the results by the trace_id field.
func ByTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTraceLevel orders the results by the trace_level field.
func ByTraceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceLevel, opts...).ToFunc()
}

// ByInteractionType orders the results by the interaction_type field.
func ByInteractionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInteractionType, opts...).ToFunc()
}

// ByCognitiveState orders the results by the cognitive_state field.
func ByCognitiveState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCognitiveState, opts...).ToFunc()
}

// ByCognitiveIntent orders the results by the cognitive_intent field.
func ByCognitiveIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCognitiveIntent, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByAiInvolvement orders the results by the ai_involvement field.
func ByAiInvolvement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiInvolvement, opts...).ToFunc()
}
