// Code generated by ent, DO NOT EDIT.

package risk

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the risk type in the database.
	Label = "risk"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRiskID holds the string denoting the risk_id field in the database.
	FieldRiskID = "risk_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldActivityID holds the string denoting the activity_id field in the database.
	FieldActivityID = "activity_id"
	// FieldRiskType holds the string denoting the risk_type field in the database.
	FieldRiskType = "risk_type"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldDimension holds the string denoting the dimension field in the database.
	FieldDimension = "dimension"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldTraceIds holds the string denoting the trace_ids field in the database.
	FieldTraceIds = "trace_ids"
	// FieldResolved holds the string denoting the resolved field in the database.
	FieldResolved = "resolved"
	// FieldResolutionNotes holds the string denoting the resolution_notes field in the database.
	FieldResolutionNotes = "resolution_notes"
	// Table holds the table name of the risk in the database.
	Table = "risks"
)

// Columns holds all SQL columns for risk fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRiskID,
	FieldSessionID,
	FieldStudentID,
	FieldActivityID,
	FieldRiskType,
	FieldLevel,
	FieldDimension,
	FieldDescription,
	FieldEvidence,
	FieldRecommendations,
	FieldTraceIds,
	FieldResolved,
	FieldResolutionNotes,
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
	// RiskIDValidator is a validator for the "risk_id" field. It is called by the builders before save.
	RiskIDValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// RiskTypeValidator is a validator for the "risk_type" field. It is called by the builders before save.
	RiskTypeValidator func(string) error
	// DefaultResolved holds the default value on creation for the "resolved" field.
	DefaultResolved bool
	// DefaultResolutionNotes holds the default value on creation for the "resolution_notes" field.
	DefaultResolutionNotes string
)

// Level defines the type for the "level" enum field.
type Level string

// Level values.
const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelLow, LevelMedium, LevelHigh, LevelCritical:
		return nil
	default:
		return fmt.Errorf("risk: invalid enum value for level field: %q", l)
	}
}

// Dimension defines the type for the "dimension" enum field.
type Dimension string

// Dimension values.
const (
	DimensionCognitive  Dimension = "cognitive"
	DimensionEthical    Dimension = "ethical"
	DimensionEpistemic  Dimension = "epistemic"
	DimensionTechnical  Dimension = "technical"
	DimensionGovernance Dimension = "governance"
)

func (d Dimension) String() string {
	return string(d)
}

// DimensionValidator is a validator for the "dimension" field enum values. It is called by the builders before save.
func DimensionValidator(d Dimension) error {
	switch d {
	case DimensionCognitive, DimensionEthical, DimensionEpistemic, DimensionTechnical, DimensionGovernance:
		return nil
	default:
		return fmt.Errorf("risk: invalid enum value for dimension field: %q", d)
	}
}

// OrderOption defines the ordering options for the Risk queries.
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

// ByRiskID orders the results by the risk_id field.
func ByRiskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskID, opts...).ToFunc()
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

// ByRiskType orders the results by the risk_type field.
func ByRiskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskType, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByDimension orders the results by the dimension field.
func ByDimension(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDimension, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByResolved orders the results by the resolved field.
func ByResolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolved, opts...).ToFunc()
}

// ByResolutionNotes orders the results by the resolution_notes field.
func ByResolutionNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionNotes, opts...).ToFunc()
}
