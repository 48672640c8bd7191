// Code generated by ent, DO NOT EDIT.

package activity

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the activity type in the database.
	Label = "activity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldActivityID holds the string denoting the activity_id field in the database.
	FieldActivityID = "activity_id"
	// FieldTeacherID holds the string denoting the teacher_id field in the database.
	FieldTeacherID = "teacher_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldMaxHelpLevel holds the string denoting the max_help_level field in the database.
	FieldMaxHelpLevel = "max_help_level"
	// FieldBlockCompleteSolutions holds the string denoting the block_complete_solutions field in the database.
	FieldBlockCompleteSolutions = "block_complete_solutions"
	// FieldRequireJustification holds the string denoting the require_justification field in the database.
	FieldRequireJustification = "require_justification"
	// FieldDelegationThreshold holds the string denoting the delegation_threshold field in the database.
	FieldDelegationThreshold = "delegation_threshold"
	// FieldRiskThresholds holds the string denoting the risk_thresholds field in the database.
	FieldRiskThresholds = "risk_thresholds"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the activity in the database.
	Table = "activities"
)

// Columns holds all SQL columns for activity fields.
var Columns = []string{
	FieldID,
	FieldActivityID,
	FieldTeacherID,
	FieldName,
	FieldDescription,
	FieldMaxHelpLevel,
	FieldBlockCompleteSolutions,
	FieldRequireJustification,
	FieldDelegationThreshold,
	FieldRiskThresholds,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	ActivityIDValidator func(string) error
	// TeacherIDValidator is a validator for the "teacher_id" field. It is called by the builders before save.
	TeacherIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultMaxHelpLevel holds the default value on creation for the "max_help_level" field.
	DefaultMaxHelpLevel int
	// DefaultBlockCompleteSolutions holds the default value on creation for the "block_complete_solutions" field.
	DefaultBlockCompleteSolutions bool
	// DefaultRequireJustification holds the default value on creation for the "require_justification" field.
	DefaultRequireJustification bool
	// DefaultDelegationThreshold holds the default value on creation for the "delegation_threshold" field.
	DefaultDelegationThreshold float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Activity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByActivityID orders the results by the activity_id field.
func ByActivityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityID, opts...).ToFunc()
}

// ByTeacherID orders the results by the teacher_id field.
func ByTeacherID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeacherID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByMaxHelpLevel orders the results by the max_help_level field.
func ByMaxHelpLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxHelpLevel, opts...).ToFunc()
}

// ByBlockCompleteSolutions orders the results by the block_complete_solutions field.
func ByBlockCompleteSolutions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockCompleteSolutions, opts...).ToFunc()
}

// ByRequireJustification orders the results by the require_justification field.
func ByRequireJustification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequireJustification, opts...).ToFunc()
}

// ByDelegationThreshold orders the results by the delegation_threshold field.
func ByDelegationThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelegationThreshold, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
