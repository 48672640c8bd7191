// Code generated by ent, DO NOT EDIT.

package evaluationreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldReportID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldSessionID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldStudentID, v))
}

// ActivityID applies equality check predicate on the "activity_id" field. It's identical to ActivityIDEQ.
func ActivityID(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldActivityID, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldOverallScore, v))
}

// AiDependency applies equality check predicate on the "ai_dependency" field. It's identical to AiDependencyEQ.
func AiDependency(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldAiDependency, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldCreatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContainsFold(FieldReportID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContainsFold(FieldSessionID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContainsFold(FieldStudentID, v))
}

// ActivityIDEQ applies the EQ predicate on the "activity_id" field.
func ActivityIDEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldActivityID, v))
}

// ActivityIDNEQ applies the NEQ predicate on the "activity_id" field.
func ActivityIDNEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldActivityID, v))
}

// ActivityIDIn applies the In predicate on the "activity_id" field.
func ActivityIDIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldActivityID, vs...))
}

// ActivityIDNotIn applies the NotIn predicate on the "activity_id" field.
func ActivityIDNotIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldActivityID, vs...))
}

// ActivityIDGT applies the GT predicate on the "activity_id" field.
func ActivityIDGT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldActivityID, v))
}

// ActivityIDGTE applies the GTE predicate on the "activity_id" field.
func ActivityIDGTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldActivityID, v))
}

// ActivityIDLT applies the LT predicate on the "activity_id" field.
func ActivityIDLT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldActivityID, v))
}

// ActivityIDLTE applies the LTE predicate on the "activity_id" field.
func ActivityIDLTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldActivityID, v))
}

// ActivityIDContains applies the Contains predicate on the "activity_id" field.
func ActivityIDContains(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContains(FieldActivityID, v))
}

// ActivityIDHasPrefix applies the HasPrefix predicate on the "activity_id" field.
func ActivityIDHasPrefix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasPrefix(FieldActivityID, v))
}

// ActivityIDHasSuffix applies the HasSuffix predicate on the "activity_id" field.
func ActivityIDHasSuffix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasSuffix(FieldActivityID, v))
}

// ActivityIDIsNil applies the IsNil predicate on the "activity_id" field.
func ActivityIDIsNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIsNull(FieldActivityID))
}

// ActivityIDNotNil applies the NotNil predicate on the "activity_id" field.
func ActivityIDNotNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotNull(FieldActivityID))
}

// ActivityIDEqualFold applies the EqualFold predicate on the "activity_id" field.
func ActivityIDEqualFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEqualFold(FieldActivityID, v))
}

// ActivityIDContainsFold applies the ContainsFold predicate on the "activity_id" field.
func ActivityIDContainsFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContainsFold(FieldActivityID, v))
}

// CompetencyEQ applies the EQ predicate on the "competency" field.
func CompetencyEQ(v Competency) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldCompetency, v))
}

// CompetencyNEQ applies the NEQ predicate on the "competency" field.
func CompetencyNEQ(v Competency) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldCompetency, v))
}

// CompetencyIn applies the In predicate on the "competency" field.
func CompetencyIn(vs ...Competency) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldCompetency, vs...))
}

// CompetencyNotIn applies the NotIn predicate on the "competency" field.
func CompetencyNotIn(vs ...Competency) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldCompetency, vs...))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldOverallScore, v))
}

// DimensionsIsNil applies the IsNil predicate on the "dimensions" field.
func DimensionsIsNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIsNull(FieldDimensions))
}

// DimensionsNotNil applies the NotNil predicate on the "dimensions" field.
func DimensionsNotNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotNull(FieldDimensions))
}

// StrengthsIsNil applies the IsNil predicate on the "strengths" field.
func StrengthsIsNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIsNull(FieldStrengths))
}

// StrengthsNotNil applies the NotNil predicate on the "strengths" field.
func StrengthsNotNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotNull(FieldStrengths))
}

// ImprovementsIsNil applies the IsNil predicate on the "improvements" field.
func ImprovementsIsNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIsNull(FieldImprovements))
}

// ImprovementsNotNil applies the NotNil predicate on the "improvements" field.
func ImprovementsNotNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotNull(FieldImprovements))
}

// AiDependencyEQ applies the EQ predicate on the "ai_dependency" field.
func AiDependencyEQ(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldAiDependency, v))
}

// AiDependencyNEQ applies the NEQ predicate on the "ai_dependency" field.
func AiDependencyNEQ(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldAiDependency, v))
}

// AiDependencyIn applies the In predicate on the "ai_dependency" field.
func AiDependencyIn(vs ...float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldAiDependency, vs...))
}

// AiDependencyNotIn applies the NotIn predicate on the "ai_dependency" field.
func AiDependencyNotIn(vs ...float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldAiDependency, vs...))
}

// AiDependencyGT applies the GT predicate on the "ai_dependency" field.
func AiDependencyGT(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldAiDependency, v))
}

// AiDependencyGTE applies the GTE predicate on the "ai_dependency" field.
func AiDependencyGTE(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldAiDependency, v))
}

// AiDependencyLT applies the LT predicate on the "ai_dependency" field.
func AiDependencyLT(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldAiDependency, v))
}

// AiDependencyLTE applies the LTE predicate on the "ai_dependency" field.
func AiDependencyLTE(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldAiDependency, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationReport) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationReport) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationReport) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.NotPredicates(p))
}
