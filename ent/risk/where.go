// Code generated by ent, DO NOT EDIT.

package risk

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Risk {
	return predicate.Risk(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Risk {
	return predicate.Risk(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Risk {
	return predicate.Risk(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Risk {
	return predicate.Risk(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldTimestamp, v))
}

// RiskID applies equality check predicate on the "risk_id" field. It's identical to RiskIDEQ.
func RiskID(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldRiskID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldSessionID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldStudentID, v))
}

// ActivityID applies equality check predicate on the "activity_id" field. It's identical to ActivityIDEQ.
func ActivityID(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldActivityID, v))
}

// RiskType applies equality check predicate on the "risk_type" field. It's identical to RiskTypeEQ.
func RiskType(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldRiskType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldDescription, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldResolved, v))
}

// ResolutionNotes applies equality check predicate on the "resolution_notes" field. It's identical to ResolutionNotesEQ.
func ResolutionNotes(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldResolutionNotes, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.Risk {
	return predicate.Risk(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.Risk {
	return predicate.Risk(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.Risk {
	return predicate.Risk(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.Risk {
	return predicate.Risk(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Risk {
	return predicate.Risk(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Risk {
	return predicate.Risk(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Risk {
	return predicate.Risk(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Risk {
	return predicate.Risk(sql.FieldLTE(FieldTimestamp, v))
}

// RiskIDEQ applies the EQ predicate on the "risk_id" field.
func RiskIDEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldRiskID, v))
}

// RiskIDNEQ applies the NEQ predicate on the "risk_id" field.
func RiskIDNEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldRiskID, v))
}

// RiskIDIn applies the In predicate on the "risk_id" field.
func RiskIDIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldRiskID, vs...))
}

// RiskIDNotIn applies the NotIn predicate on the "risk_id" field.
func RiskIDNotIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldRiskID, vs...))
}

// RiskIDGT applies the GT predicate on the "risk_id" field.
func RiskIDGT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGT(FieldRiskID, v))
}

// RiskIDGTE applies the GTE predicate on the "risk_id" field.
func RiskIDGTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGTE(FieldRiskID, v))
}

// RiskIDLT applies the LT predicate on the "risk_id" field.
func RiskIDLT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLT(FieldRiskID, v))
}

// RiskIDLTE applies the LTE predicate on the "risk_id" field.
func RiskIDLTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLTE(FieldRiskID, v))
}

// RiskIDContains applies the Contains predicate on the "risk_id" field.
func RiskIDContains(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContains(FieldRiskID, v))
}

// RiskIDHasPrefix applies the HasPrefix predicate on the "risk_id" field.
func RiskIDHasPrefix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasPrefix(FieldRiskID, v))
}

// RiskIDHasSuffix applies the HasSuffix predicate on the "risk_id" field.
func RiskIDHasSuffix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasSuffix(FieldRiskID, v))
}

// RiskIDEqualFold applies the EqualFold predicate on the "risk_id" field.
func RiskIDEqualFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEqualFold(FieldRiskID, v))
}

// RiskIDContainsFold applies the ContainsFold predicate on the "risk_id" field.
func RiskIDContainsFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContainsFold(FieldRiskID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContainsFold(FieldSessionID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContainsFold(FieldStudentID, v))
}

// ActivityIDEQ applies the EQ predicate on the "activity_id" field.
func ActivityIDEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldActivityID, v))
}

// ActivityIDNEQ applies the NEQ predicate on the "activity_id" field.
func ActivityIDNEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldActivityID, v))
}

// ActivityIDIn applies the In predicate on the "activity_id" field.
func ActivityIDIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldActivityID, vs...))
}

// ActivityIDNotIn applies the NotIn predicate on the "activity_id" field.
func ActivityIDNotIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldActivityID, vs...))
}

// ActivityIDGT applies the GT predicate on the "activity_id" field.
func ActivityIDGT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGT(FieldActivityID, v))
}

// ActivityIDGTE applies the GTE predicate on the "activity_id" field.
func ActivityIDGTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGTE(FieldActivityID, v))
}

// ActivityIDLT applies the LT predicate on the "activity_id" field.
func ActivityIDLT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLT(FieldActivityID, v))
}

// ActivityIDLTE applies the LTE predicate on the "activity_id" field.
func ActivityIDLTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLTE(FieldActivityID, v))
}

// ActivityIDContains applies the Contains predicate on the "activity_id" field.
func ActivityIDContains(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContains(FieldActivityID, v))
}

// ActivityIDHasPrefix applies the HasPrefix predicate on the "activity_id" field.
func ActivityIDHasPrefix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasPrefix(FieldActivityID, v))
}

// ActivityIDHasSuffix applies the HasSuffix predicate on the "activity_id" field.
func ActivityIDHasSuffix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasSuffix(FieldActivityID, v))
}

// ActivityIDIsNil applies the IsNil predicate on the "activity_id" field.
func ActivityIDIsNil() predicate.Risk {
	return predicate.Risk(sql.FieldIsNull(FieldActivityID))
}

// ActivityIDNotNil applies the NotNil predicate on the "activity_id" field.
func ActivityIDNotNil() predicate.Risk {
	return predicate.Risk(sql.FieldNotNull(FieldActivityID))
}

// ActivityIDEqualFold applies the EqualFold predicate on the "activity_id" field.
func ActivityIDEqualFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEqualFold(FieldActivityID, v))
}

// ActivityIDContainsFold applies the ContainsFold predicate on the "activity_id" field.
func ActivityIDContainsFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContainsFold(FieldActivityID, v))
}

// RiskTypeEQ applies the EQ predicate on the "risk_type" field.
func RiskTypeEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldRiskType, v))
}

// RiskTypeNEQ applies the NEQ predicate on the "risk_type" field.
func RiskTypeNEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldRiskType, v))
}

// RiskTypeIn applies the In predicate on the "risk_type" field.
func RiskTypeIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldRiskType, vs...))
}

// RiskTypeNotIn applies the NotIn predicate on the "risk_type" field.
func RiskTypeNotIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldRiskType, vs...))
}

// RiskTypeGT applies the GT predicate on the "risk_type" field.
func RiskTypeGT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGT(FieldRiskType, v))
}

// RiskTypeGTE applies the GTE predicate on the "risk_type" field.
func RiskTypeGTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGTE(FieldRiskType, v))
}

// RiskTypeLT applies the LT predicate on the "risk_type" field.
func RiskTypeLT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLT(FieldRiskType, v))
}

// RiskTypeLTE applies the LTE predicate on the "risk_type" field.
func RiskTypeLTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLTE(FieldRiskType, v))
}

// RiskTypeContains applies the Contains predicate on the "risk_type" field.
func RiskTypeContains(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContains(FieldRiskType, v))
}

// RiskTypeHasPrefix applies the HasPrefix predicate on the "risk_type" field.
func RiskTypeHasPrefix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasPrefix(FieldRiskType, v))
}

// RiskTypeHasSuffix applies the HasSuffix predicate on the "risk_type" field.
func RiskTypeHasSuffix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasSuffix(FieldRiskType, v))
}

// RiskTypeEqualFold applies the EqualFold predicate on the "risk_type" field.
func RiskTypeEqualFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEqualFold(FieldRiskType, v))
}

// RiskTypeContainsFold applies the ContainsFold predicate on the "risk_type" field.
func RiskTypeContainsFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContainsFold(FieldRiskType, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldLevel, vs...))
}

// DimensionEQ applies the EQ predicate on the "dimension" field.
func DimensionEQ(v Dimension) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldDimension, v))
}

// DimensionNEQ applies the NEQ predicate on the "dimension" field.
func DimensionNEQ(v Dimension) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldDimension, v))
}

// DimensionIn applies the In predicate on the "dimension" field.
func DimensionIn(vs ...Dimension) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldDimension, vs...))
}

// DimensionNotIn applies the NotIn predicate on the "dimension" field.
func DimensionNotIn(vs ...Dimension) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldDimension, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContainsFold(FieldDescription, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.Risk {
	return predicate.Risk(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.Risk {
	return predicate.Risk(sql.FieldNotNull(FieldEvidence))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.Risk {
	return predicate.Risk(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.Risk {
	return predicate.Risk(sql.FieldNotNull(FieldRecommendations))
}

// TraceIdsIsNil applies the IsNil predicate on the "trace_ids" field.
func TraceIdsIsNil() predicate.Risk {
	return predicate.Risk(sql.FieldIsNull(FieldTraceIds))
}

// TraceIdsNotNil applies the NotNil predicate on the "trace_ids" field.
func TraceIdsNotNil() predicate.Risk {
	return predicate.Risk(sql.FieldNotNull(FieldTraceIds))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldResolved, v))
}

// ResolutionNotesEQ applies the EQ predicate on the "resolution_notes" field.
func ResolutionNotesEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEQ(FieldResolutionNotes, v))
}

// ResolutionNotesNEQ applies the NEQ predicate on the "resolution_notes" field.
func ResolutionNotesNEQ(v string) predicate.Risk {
	return predicate.Risk(sql.FieldNEQ(FieldResolutionNotes, v))
}

// ResolutionNotesIn applies the In predicate on the "resolution_notes" field.
func ResolutionNotesIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesNotIn applies the NotIn predicate on the "resolution_notes" field.
func ResolutionNotesNotIn(vs ...string) predicate.Risk {
	return predicate.Risk(sql.FieldNotIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesGT applies the GT predicate on the "resolution_notes" field.
func ResolutionNotesGT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGT(FieldResolutionNotes, v))
}

// ResolutionNotesGTE applies the GTE predicate on the "resolution_notes" field.
func ResolutionNotesGTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldGTE(FieldResolutionNotes, v))
}

// ResolutionNotesLT applies the LT predicate on the "resolution_notes" field.
func ResolutionNotesLT(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLT(FieldResolutionNotes, v))
}

// ResolutionNotesLTE applies the LTE predicate on the "resolution_notes" field.
func ResolutionNotesLTE(v string) predicate.Risk {
	return predicate.Risk(sql.FieldLTE(FieldResolutionNotes, v))
}

// ResolutionNotesContains applies the Contains predicate on the "resolution_notes" field.
func ResolutionNotesContains(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContains(FieldResolutionNotes, v))
}

// ResolutionNotesHasPrefix applies the HasPrefix predicate on the "resolution_notes" field.
func ResolutionNotesHasPrefix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasPrefix(FieldResolutionNotes, v))
}

// ResolutionNotesHasSuffix applies the HasSuffix predicate on the "resolution_notes" field.
func ResolutionNotesHasSuffix(v string) predicate.Risk {
	return predicate.Risk(sql.FieldHasSuffix(FieldResolutionNotes, v))
}

// ResolutionNotesIsNil applies the IsNil predicate on the "resolution_notes" field.
func ResolutionNotesIsNil() predicate.Risk {
	return predicate.Risk(sql.FieldIsNull(FieldResolutionNotes))
}

// ResolutionNotesNotNil applies the NotNil predicate on the "resolution_notes" field.
func ResolutionNotesNotNil() predicate.Risk {
	return predicate.Risk(sql.FieldNotNull(FieldResolutionNotes))
}

// ResolutionNotesEqualFold applies the EqualFold predicate on the "resolution_notes" field.
func ResolutionNotesEqualFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldEqualFold(FieldResolutionNotes, v))
}

// ResolutionNotesContainsFold applies the ContainsFold predicate on the "resolution_notes" field.
func ResolutionNotesContainsFold(v string) predicate.Risk {
	return predicate.Risk(sql.FieldContainsFold(FieldResolutionNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Risk) predicate.Risk {
	return predicate.Risk(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Risk) predicate.Risk {
	return predicate.Risk(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Risk) predicate.Risk {
	return predicate.Risk(sql.NotPredicates(p))
}
