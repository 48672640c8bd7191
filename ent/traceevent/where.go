// Code generated by ent, DO NOT EDIT.

package traceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldTraceID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldSessionID, v))
}

// CognitiveState applies equality check predicate on the "cognitive_state" field. It's identical to CognitiveStateEQ.
func CognitiveState(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldCognitiveState, v))
}

// CognitiveIntent applies equality check predicate on the "cognitive_intent" field. It's identical to CognitiveIntentEQ.
func CognitiveIntent(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldCognitiveIntent, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldContent, v))
}

// AiInvolvement applies equality check predicate on the "ai_involvement" field. It's identical to AiInvolvementEQ.
func AiInvolvement(v float64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldAiInvolvement, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldTraceID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TraceLevelEQ applies the EQ predicate on the "trace_level" field.
func TraceLevelEQ(v TraceLevel) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldTraceLevel, v))
}

// TraceLevelNEQ applies the NEQ predicate on the "trace_level" field.
func TraceLevelNEQ(v TraceLevel) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldTraceLevel, v))
}

// TraceLevelIn applies the In predicate on the "trace_level" field.
func TraceLevelIn(vs ...TraceLevel) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldTraceLevel, vs...))
}

// TraceLevelNotIn applies the NotIn predicate on the "trace_level" field.
func TraceLevelNotIn(vs ...TraceLevel) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldTraceLevel, vs...))
}

// InteractionTypeEQ applies the EQ predicate on the "interaction_type" field.
func InteractionTypeEQ(v InteractionType) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldInteractionType, v))
}

// InteractionTypeNEQ applies the NEQ predicate on the "interaction_type" field.
func InteractionTypeNEQ(v InteractionType) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldInteractionType, v))
}

// InteractionTypeIn applies the In predicate on the "interaction_type" field.
func InteractionTypeIn(vs ...InteractionType) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldInteractionType, vs...))
}

// InteractionTypeNotIn applies the NotIn predicate on the "interaction_type" field.
func InteractionTypeNotIn(vs ...InteractionType) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldInteractionType, vs...))
}

// CognitiveStateEQ applies the EQ predicate on the "cognitive_state" field.
func CognitiveStateEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldCognitiveState, v))
}

// CognitiveStateNEQ applies the NEQ predicate on the "cognitive_state" field.
func CognitiveStateNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldCognitiveState, v))
}

// CognitiveStateIn applies the In predicate on the "cognitive_state" field.
func CognitiveStateIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldCognitiveState, vs...))
}

// CognitiveStateNotIn applies the NotIn predicate on the "cognitive_state" field.
func CognitiveStateNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldCognitiveState, vs...))
}

// CognitiveStateGT applies the GT predicate on the "cognitive_state" field.
func CognitiveStateGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldCognitiveState, v))
}

// CognitiveStateGTE applies the GTE predicate on the "cognitive_state" field.
func CognitiveStateGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldCognitiveState, v))
}

// CognitiveStateLT applies the LT predicate on the "cognitive_state" field.
func CognitiveStateLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldCognitiveState, v))
}

// CognitiveStateLTE applies the LTE predicate on the "cognitive_state" field.
func CognitiveStateLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldCognitiveState, v))
}

// CognitiveStateContains applies the Contains predicate on the "cognitive_state" field.
func CognitiveStateContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldCognitiveState, v))
}

// CognitiveStateHasPrefix applies the HasPrefix predicate on the "cognitive_state" field.
func CognitiveStateHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldCognitiveState, v))
}

// CognitiveStateHasSuffix applies the HasSuffix predicate on the "cognitive_state" field.
func CognitiveStateHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldCognitiveState, v))
}

// CognitiveStateEqualFold applies the EqualFold predicate on the "cognitive_state" field.
func CognitiveStateEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldCognitiveState, v))
}

// CognitiveStateContainsFold applies the ContainsFold predicate on the "cognitive_state" field.
func CognitiveStateContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldCognitiveState, v))
}

// CognitiveIntentEQ applies the EQ predicate on the "cognitive_intent" field.
func CognitiveIntentEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldCognitiveIntent, v))
}

// CognitiveIntentNEQ applies the NEQ predicate on the "cognitive_intent" field.
func CognitiveIntentNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldCognitiveIntent, v))
}

// CognitiveIntentIn applies the In predicate on the "cognitive_intent" field.
func CognitiveIntentIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldCognitiveIntent, vs...))
}

// CognitiveIntentNotIn applies the NotIn predicate on the "cognitive_intent" field.
func CognitiveIntentNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldCognitiveIntent, vs...))
}

// CognitiveIntentGT applies the GT predicate on the "cognitive_intent" field.
func CognitiveIntentGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldCognitiveIntent, v))
}

// CognitiveIntentGTE applies the GTE predicate on the "cognitive_intent" field.
func CognitiveIntentGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldCognitiveIntent, v))
}

// CognitiveIntentLT applies the LT predicate on the "cognitive_intent" field.
func CognitiveIntentLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldCognitiveIntent, v))
}

// CognitiveIntentLTE applies the LTE predicate on the "cognitive_intent" field.
func CognitiveIntentLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldCognitiveIntent, v))
}

// CognitiveIntentContains applies the Contains predicate on the "cognitive_intent" field.
func CognitiveIntentContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldCognitiveIntent, v))
}

// CognitiveIntentHasPrefix applies the HasPrefix predicate on the "cognitive_intent" field.
func CognitiveIntentHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldCognitiveIntent, v))
}

// CognitiveIntentHasSuffix applies the HasSuffix predicate on the "cognitive_intent" field.
func CognitiveIntentHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldCognitiveIntent, v))
}

// CognitiveIntentEqualFold applies the EqualFold predicate on the "cognitive_intent" field.
func CognitiveIntentEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldCognitiveIntent, v))
}

// CognitiveIntentContainsFold applies the ContainsFold predicate on the "cognitive_intent" field.
func CognitiveIntentContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldCognitiveIntent, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldContent, v))
}

// AiInvolvementEQ applies the EQ predicate on the "ai_involvement" field.
func AiInvolvementEQ(v float64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldAiInvolvement, v))
}

// AiInvolvementNEQ applies the NEQ predicate on the "ai_involvement" field.
func AiInvolvementNEQ(v float64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldAiInvolvement, v))
}

// AiInvolvementIn applies the In predicate on the "ai_involvement" field.
func AiInvolvementIn(vs ...float64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldAiInvolvement, vs...))
}

// AiInvolvementNotIn applies the NotIn predicate on the "ai_involvement" field.
func AiInvolvementNotIn(vs ...float64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldAiInvolvement, vs...))
}

// AiInvolvementGT applies the GT predicate on the "ai_involvement" field.
func AiInvolvementGT(v float64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldAiInvolvement, v))
}

// AiInvolvementGTE applies the GTE predicate on the "ai_involvement" field.
func AiInvolvementGTE(v float64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldAiInvolvement, v))
}

// AiInvolvementLT applies the LT predicate on the "ai_involvement" field.
func AiInvolvementLT(v float64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldAiInvolvement, v))
}

// AiInvolvementLTE applies the LTE predicate on the "ai_involvement" field.
func AiInvolvementLTE(v float64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldAiInvolvement, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TraceEvent) predicate.TraceEvent {
	return predicate.TraceEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TraceEvent) predicate.TraceEvent {
	return predicate.TraceEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TraceEvent) predicate.TraceEvent {
	return predicate.TraceEvent(sql.NotPredicates(p))
}
