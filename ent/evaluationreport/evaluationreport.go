// Code generated by ent, DO NOT EDIT.

package evaluationreport

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evaluationreport type in the database.
	Label = "evaluation_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldActivityID holds the string denoting the activity_id field in the database.
	FieldActivityID = "activity_id"
	// FieldCompetency holds the string denoting the competency field in the database.
	FieldCompetency = "competency"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldDimensions holds the string denoting the dimensions field in the database.
	FieldDimensions = "dimensions"
	// FieldStrengths holds the string denoting the strengths field in the database.
	FieldStrengths = "strengths"
	// FieldImprovements holds the string denoting the improvements field in the database.
	FieldImprovements = "improvements"
	// FieldAiDependency holds the string denoting the ai_dependency field in the database.
	FieldAiDependency = "ai_dependency"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the evaluationreport in the database.
	Table = "evaluation_reports"
)

// Columns holds all SQL columns for evaluationreport fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldSessionID,
	FieldStudentID,
	FieldActivityID,
	FieldCompetency,
	FieldOverallScore,
	FieldDimensions,
	FieldStrengths,
	FieldImprovements,
	FieldAiDependency,
	FieldCreatedAt,
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
	// ReportIDValidator is a validator for the "report_id" field. It is called by the builders before save.
	ReportIDValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// DefaultAiDependency holds the default value on creation for the "ai_dependency" field.
	DefaultAiDependency float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Competency defines the type for the "competency" enum field.
type Competency string

// Competency values.
const (
	CompetencyNovice           Competency = "novice"
	CompetencyAdvancedBeginner Competency = "advanced_beginner"
	CompetencyCompetent        Competency = "competent"
	CompetencyProficient       Competency = "proficient"
	CompetencyExpert           Competency = "expert"
)

func (c Competency) String() string {
	return string(c)
}

// CompetencyValidator is a validator for the "competency" field enum values. It is called by the builders before save.
func CompetencyValidator(c Competency) error {
	switch c {
	case CompetencyNovice, CompetencyAdvancedBeginner, CompetencyCompetent, CompetencyProficient, CompetencyExpert:
		return nil
	default:
		return fmt.Errorf("evaluationreport: invalid enum value for competency field: %q", c)
	}
}

// OrderOption defines the ordering options for the EvaluationReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByActivityID orders the results by the activity_id field.
func ByActivityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityID, opts...).ToFunc()
}

// ByCompetency orders the results by the competency field.
func ByCompetency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompetency, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByAiDependency orders the results by the ai_dependency field.
func ByAiDependency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiDependency, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
