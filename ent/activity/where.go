// Code generated by ent, DO NOT EDIT.

package activity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldID, id))
}

// ActivityID applies equality check predicate on the "activity_id" field. It's identical to ActivityIDEQ.
func ActivityID(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldActivityID, v))
}

// TeacherID applies equality check predicate on the "teacher_id" field. It's identical to TeacherIDEQ.
func TeacherID(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldTeacherID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldDescription, v))
}

// MaxHelpLevel applies equality check predicate on the "max_help_level" field. It's identical to MaxHelpLevelEQ.
func MaxHelpLevel(v int) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldMaxHelpLevel, v))
}

// BlockCompleteSolutions applies equality check predicate on the "block_complete_solutions" field. It's identical to BlockCompleteSolutionsEQ.
func BlockCompleteSolutions(v bool) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldBlockCompleteSolutions, v))
}

// RequireJustification applies equality check predicate on the "require_justification" field. It's identical to RequireJustificationEQ.
func RequireJustification(v bool) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldRequireJustification, v))
}

// DelegationThreshold applies equality check predicate on the "delegation_threshold" field. It's identical to DelegationThresholdEQ.
func DelegationThreshold(v float64) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldDelegationThreshold, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldUpdatedAt, v))
}

// ActivityIDEQ applies the EQ predicate on the "activity_id" field.
func ActivityIDEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldActivityID, v))
}

// ActivityIDNEQ applies the NEQ predicate on the "activity_id" field.
func ActivityIDNEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldActivityID, v))
}

// ActivityIDIn applies the In predicate on the "activity_id" field.
func ActivityIDIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldActivityID, vs...))
}

// ActivityIDNotIn applies the NotIn predicate on the "activity_id" field.
func ActivityIDNotIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldActivityID, vs...))
}

// ActivityIDGT applies the GT predicate on the "activity_id" field.
func ActivityIDGT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldActivityID, v))
}

// ActivityIDGTE applies the GTE predicate on the "activity_id" field.
func ActivityIDGTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldActivityID, v))
}

// ActivityIDLT applies the LT predicate on the "activity_id" field.
func ActivityIDLT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldActivityID, v))
}

// ActivityIDLTE applies the LTE predicate on the "activity_id" field.
func ActivityIDLTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldActivityID, v))
}

// ActivityIDContains applies the Contains predicate on the "activity_id" field.
func ActivityIDContains(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContains(FieldActivityID, v))
}

// ActivityIDHasPrefix applies the HasPrefix predicate on the "activity_id" field.
func ActivityIDHasPrefix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasPrefix(FieldActivityID, v))
}

// ActivityIDHasSuffix applies the HasSuffix predicate on the "activity_id" field.
func ActivityIDHasSuffix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasSuffix(FieldActivityID, v))
}

// ActivityIDEqualFold applies the EqualFold predicate on the "activity_id" field.
func ActivityIDEqualFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldActivityID, v))
}

// ActivityIDContainsFold applies the ContainsFold predicate on the "activity_id" field.
func ActivityIDContainsFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldActivityID, v))
}

// TeacherIDEQ applies the EQ predicate on the "teacher_id" field.
func TeacherIDEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldTeacherID, v))
}

// TeacherIDNEQ applies the NEQ predicate on the "teacher_id" field.
func TeacherIDNEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldTeacherID, v))
}

// TeacherIDIn applies the In predicate on the "teacher_id" field.
func TeacherIDIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldTeacherID, vs...))
}

// TeacherIDNotIn applies the NotIn predicate on the "teacher_id" field.
func TeacherIDNotIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldTeacherID, vs...))
}

// TeacherIDGT applies the GT predicate on the "teacher_id" field.
func TeacherIDGT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldTeacherID, v))
}

// TeacherIDGTE applies the GTE predicate on the "teacher_id" field.
func TeacherIDGTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldTeacherID, v))
}

// TeacherIDLT applies the LT predicate on the "teacher_id" field.
func TeacherIDLT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldTeacherID, v))
}

// TeacherIDLTE applies the LTE predicate on the "teacher_id" field.
func TeacherIDLTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldTeacherID, v))
}

// TeacherIDContains applies the Contains predicate on the "teacher_id" field.
func TeacherIDContains(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContains(FieldTeacherID, v))
}

// TeacherIDHasPrefix applies the HasPrefix predicate on the "teacher_id" field.
func TeacherIDHasPrefix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasPrefix(FieldTeacherID, v))
}

// TeacherIDHasSuffix applies the HasSuffix predicate on the "teacher_id" field.
func TeacherIDHasSuffix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasSuffix(FieldTeacherID, v))
}

// TeacherIDEqualFold applies the EqualFold predicate on the "teacher_id" field.
func TeacherIDEqualFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldTeacherID, v))
}

// TeacherIDContainsFold applies the ContainsFold predicate on the "teacher_id" field.
func TeacherIDContainsFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldTeacherID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldDescription, v))
}

// MaxHelpLevelEQ applies the EQ predicate on the "max_help_level" field.
func MaxHelpLevelEQ(v int) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldMaxHelpLevel, v))
}

// MaxHelpLevelNEQ applies the NEQ predicate on the "max_help_level" field.
func MaxHelpLevelNEQ(v int) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldMaxHelpLevel, v))
}

// MaxHelpLevelIn applies the In predicate on the "max_help_level" field.
func MaxHelpLevelIn(vs ...int) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldMaxHelpLevel, vs...))
}

// MaxHelpLevelNotIn applies the NotIn predicate on the "max_help_level" field.
func MaxHelpLevelNotIn(vs ...int) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldMaxHelpLevel, vs...))
}

// MaxHelpLevelGT applies the GT predicate on the "max_help_level" field.
func MaxHelpLevelGT(v int) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldMaxHelpLevel, v))
}

// MaxHelpLevelGTE applies the GTE predicate on the "max_help_level" field.
func MaxHelpLevelGTE(v int) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldMaxHelpLevel, v))
}

// MaxHelpLevelLT applies the LT predicate on the "max_help_level" field.
func MaxHelpLevelLT(v int) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldMaxHelpLevel, v))
}

// MaxHelpLevelLTE applies the LTE predicate on the "max_help_level" field.
func MaxHelpLevelLTE(v int) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldMaxHelpLevel, v))
}

// BlockCompleteSolutionsEQ applies the EQ predicate on the "block_complete_solutions" field.
func BlockCompleteSolutionsEQ(v bool) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldBlockCompleteSolutions, v))
}

// BlockCompleteSolutionsNEQ applies the NEQ predicate on the "block_complete_solutions" field.
func BlockCompleteSolutionsNEQ(v bool) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldBlockCompleteSolutions, v))
}

// RequireJustificationEQ applies the EQ predicate on the "require_justification" field.
func RequireJustificationEQ(v bool) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldRequireJustification, v))
}

// RequireJustificationNEQ applies the NEQ predicate on the "require_justification" field.
func RequireJustificationNEQ(v bool) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldRequireJustification, v))
}

// DelegationThresholdEQ applies the EQ predicate on the "delegation_threshold" field.
func DelegationThresholdEQ(v float64) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldDelegationThreshold, v))
}

// DelegationThresholdNEQ applies the NEQ predicate on the "delegation_threshold" field.
func DelegationThresholdNEQ(v float64) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldDelegationThreshold, v))
}

// DelegationThresholdIn applies the In predicate on the "delegation_threshold" field.
func DelegationThresholdIn(vs ...float64) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldDelegationThreshold, vs...))
}

// DelegationThresholdNotIn applies the NotIn predicate on the "delegation_threshold" field.
func DelegationThresholdNotIn(vs ...float64) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldDelegationThreshold, vs...))
}

// DelegationThresholdGT applies the GT predicate on the "delegation_threshold" field.
func DelegationThresholdGT(v float64) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldDelegationThreshold, v))
}

// DelegationThresholdGTE applies the GTE predicate on the "delegation_threshold" field.
func DelegationThresholdGTE(v float64) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldDelegationThreshold, v))
}

// DelegationThresholdLT applies the LT predicate on the "delegation_threshold" field.
func DelegationThresholdLT(v float64) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldDelegationThreshold, v))
}

// DelegationThresholdLTE applies the LTE predicate on the "delegation_threshold" field.
func DelegationThresholdLTE(v float64) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldDelegationThreshold, v))
}

// RiskThresholdsIsNil applies the IsNil predicate on the "risk_thresholds" field.
func RiskThresholdsIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldRiskThresholds))
}

// RiskThresholdsNotNil applies the NotNil predicate on the "risk_thresholds" field.
func RiskThresholdsNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldRiskThresholds))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Activity) predicate.Activity {
	return predicate.Activity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Activity) predicate.Activity {
	return predicate.Activity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Activity) predicate.Activity {
	return predicate.Activity(sql.NotPredicates(p))
}
