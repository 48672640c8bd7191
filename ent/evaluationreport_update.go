// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/evaluationreport"
	"github.com/praxislabs/praxis/ent/predicate"
)

// EvaluationReportUpdate is the builder for updating EvaluationReport entities.
type EvaluationReportUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationReportMutation
}

// Where appends a list predicates to the EvaluationReportUpdate builder.
func (_u *EvaluationReportUpdate) Where(ps ...predicate.EvaluationReport) *EvaluationReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *EvaluationReportUpdate) SetSessionID(v string) *EvaluationReportUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableSessionID(v *string) *EvaluationReportUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *EvaluationReportUpdate) SetStudentID(v string) *EvaluationReportUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableStudentID(v *string) *EvaluationReportUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *EvaluationReportUpdate) SetActivityID(v string) *EvaluationReportUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableActivityID(v *string) *EvaluationReportUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// ClearActivityID clears the value of the "activity_id" field.
func (_u *EvaluationReportUpdate) ClearActivityID() *EvaluationReportUpdate {
	_u.mutation.ClearActivityID()
	return _u
}

// SetCompetency sets the "competency" field.
func (_u *EvaluationReportUpdate) SetCompetency(v evaluationreport.Competency) *EvaluationReportUpdate {
	_u.mutation.SetCompetency(v)
	return _u
}

// SetNillableCompetency sets the "competency" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableCompetency(v *evaluationreport.Competency) *EvaluationReportUpdate {
	if v != nil {
		_u.SetCompetency(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *EvaluationReportUpdate) SetOverallScore(v float64) *EvaluationReportUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableOverallScore(v *float64) *EvaluationReportUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *EvaluationReportUpdate) AddOverallScore(v float64) *EvaluationReportUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetDimensions sets the "dimensions" field.
func (_u *EvaluationReportUpdate) SetDimensions(v map[string]float64) *EvaluationReportUpdate {
	_u.mutation.SetDimensions(v)
	return _u
}

// ClearDimensions clears the value of the "dimensions" field.
func (_u *EvaluationReportUpdate) ClearDimensions() *EvaluationReportUpdate {
	_u.mutation.ClearDimensions()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *EvaluationReportUpdate) SetStrengths(v []string) *EvaluationReportUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *EvaluationReportUpdate) AppendStrengths(v []string) *EvaluationReportUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *EvaluationReportUpdate) ClearStrengths() *EvaluationReportUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// SetImprovements sets the "improvements" field.
func (_u *EvaluationReportUpdate) SetImprovements(v []string) *EvaluationReportUpdate {
	_u.mutation.SetImprovements(v)
	return _u
}

// AppendImprovements appends value to the "improvements" field.
func (_u *EvaluationReportUpdate) AppendImprovements(v []string) *EvaluationReportUpdate {
	_u.mutation.AppendImprovements(v)
	return _u
}

// ClearImprovements clears the value of the "improvements" field.
func (_u *EvaluationReportUpdate) ClearImprovements() *EvaluationReportUpdate {
	_u.mutation.ClearImprovements()
	return _u
}

// SetAiDependency sets the "ai_dependency" field.
func (_u *EvaluationReportUpdate) SetAiDependency(v float64) *EvaluationReportUpdate {
	_u.mutation.ResetAiDependency()
	_u.mutation.SetAiDependency(v)
	return _u
}

// SetNillableAiDependency sets the "ai_dependency" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableAiDependency(v *float64) *EvaluationReportUpdate {
	if v != nil {
		_u.SetAiDependency(*v)
	}
	return _u
}

// AddAiDependency adds value to the "ai_dependency" field.
func (_u *EvaluationReportUpdate) AddAiDependency(v float64) *EvaluationReportUpdate {
	_u.mutation.AddAiDependency(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EvaluationReportUpdate) SetCreatedAt(v time.Time) *EvaluationReportUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableCreatedAt(v *time.Time) *EvaluationReportUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the EvaluationReportMutation object of the builder.
func (_u *EvaluationReportUpdate) Mutation() *EvaluationReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationReportUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := evaluationreport.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := evaluationreport.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Competency(); ok {
		if err := evaluationreport.CompetencyValidator(v); err != nil {
			return &ValidationError{Name: "competency", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.competency": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationreport.Table, evaluationreport.Columns, sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(evaluationreport.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(evaluationreport.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(evaluationreport.FieldActivityID, field.TypeString, value)
	}
	if _u.mutation.ActivityIDCleared() {
		_spec.ClearField(evaluationreport.FieldActivityID, field.TypeString)
	}
	if value, ok := _u.mutation.Competency(); ok {
		_spec.SetField(evaluationreport.FieldCompetency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(evaluationreport.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(evaluationreport.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Dimensions(); ok {
		_spec.SetField(evaluationreport.FieldDimensions, field.TypeJSON, value)
	}
	if _u.mutation.DimensionsCleared() {
		_spec.ClearField(evaluationreport.FieldDimensions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(evaluationreport.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(evaluationreport.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Improvements(); ok {
		_spec.SetField(evaluationreport.FieldImprovements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldImprovements, value)
		})
	}
	if _u.mutation.ImprovementsCleared() {
		_spec.ClearField(evaluationreport.FieldImprovements, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiDependency(); ok {
		_spec.SetField(evaluationreport.FieldAiDependency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiDependency(); ok {
		_spec.AddField(evaluationreport.FieldAiDependency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationreport.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationReportUpdateOne is the builder for updating a single EvaluationReport entity.
type EvaluationReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationReportMutation
}

// SetSessionID sets the "session_id" field.
func (_u *EvaluationReportUpdateOne) SetSessionID(v string) *EvaluationReportUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableSessionID(v *string) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *EvaluationReportUpdateOne) SetStudentID(v string) *EvaluationReportUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableStudentID(v *string) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *EvaluationReportUpdateOne) SetActivityID(v string) *EvaluationReportUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableActivityID(v *string) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// ClearActivityID clears the value of the "activity_id" field.
func (_u *EvaluationReportUpdateOne) ClearActivityID() *EvaluationReportUpdateOne {
	_u.mutation.ClearActivityID()
	return _u
}

// SetCompetency sets the "competency" field.
func (_u *EvaluationReportUpdateOne) SetCompetency(v evaluationreport.Competency) *EvaluationReportUpdateOne {
	_u.mutation.SetCompetency(v)
	return _u
}

// SetNillableCompetency sets the "competency" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableCompetency(v *evaluationreport.Competency) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetCompetency(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *EvaluationReportUpdateOne) SetOverallScore(v float64) *EvaluationReportUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableOverallScore(v *float64) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *EvaluationReportUpdateOne) AddOverallScore(v float64) *EvaluationReportUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetDimensions sets the "dimensions" field.
func (_u *EvaluationReportUpdateOne) SetDimensions(v map[string]float64) *EvaluationReportUpdateOne {
	_u.mutation.SetDimensions(v)
	return _u
}

// ClearDimensions clears the value of the "dimensions" field.
func (_u *EvaluationReportUpdateOne) ClearDimensions() *EvaluationReportUpdateOne {
	_u.mutation.ClearDimensions()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *EvaluationReportUpdateOne) SetStrengths(v []string) *EvaluationReportUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *EvaluationReportUpdateOne) AppendStrengths(v []string) *EvaluationReportUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *EvaluationReportUpdateOne) ClearStrengths() *EvaluationReportUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// SetImprovements sets the "improvements" field.
func (_u *EvaluationReportUpdateOne) SetImprovements(v []string) *EvaluationReportUpdateOne {
	_u.mutation.SetImprovements(v)
	return _u
}

// AppendImprovements appends value to the "improvements" field.
func (_u *EvaluationReportUpdateOne) AppendImprovements(v []string) *EvaluationReportUpdateOne {
	_u.mutation.AppendImprovements(v)
	return _u
}

// ClearImprovements clears the value of the "improvements" field.
func (_u *EvaluationReportUpdateOne) ClearImprovements() *EvaluationReportUpdateOne {
	_u.mutation.ClearImprovements()
	return _u
}

// SetAiDependency sets the "ai_dependency" field.
func (_u *EvaluationReportUpdateOne) SetAiDependency(v float64) *EvaluationReportUpdateOne {
	_u.mutation.ResetAiDependency()
	_u.mutation.SetAiDependency(v)
	return _u
}

// SetNillableAiDependency sets the "ai_dependency" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableAiDependency(v *float64) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetAiDependency(*v)
	}
	return _u
}

// AddAiDependency adds value to the "ai_dependency" field.
func (_u *EvaluationReportUpdateOne) AddAiDependency(v float64) *EvaluationReportUpdateOne {
	_u.mutation.AddAiDependency(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EvaluationReportUpdateOne) SetCreatedAt(v time.Time) *EvaluationReportUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableCreatedAt(v *time.Time) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the EvaluationReportMutation object of the builder.
func (_u *EvaluationReportUpdateOne) Mutation() *EvaluationReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationReportUpdate builder.
func (_u *EvaluationReportUpdateOne) Where(ps ...predicate.EvaluationReport) *EvaluationReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationReportUpdateOne) Select(field string, fields ...string) *EvaluationReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationReport entity.
func (_u *EvaluationReportUpdateOne) Save(ctx context.Context) (*EvaluationReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationReportUpdateOne) SaveX(ctx context.Context) *EvaluationReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationReportUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := evaluationreport.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := evaluationreport.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Competency(); ok {
		if err := evaluationreport.CompetencyValidator(v); err != nil {
			return &ValidationError{Name: "competency", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.competency": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationReportUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationreport.Table, evaluationreport.Columns, sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationreport.FieldID)
		for _, f := range fields {
			if !evaluationreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationreport.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(evaluationreport.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(evaluationreport.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(evaluationreport.FieldActivityID, field.TypeString, value)
	}
	if _u.mutation.ActivityIDCleared() {
		_spec.ClearField(evaluationreport.FieldActivityID, field.TypeString)
	}
	if value, ok := _u.mutation.Competency(); ok {
		_spec.SetField(evaluationreport.FieldCompetency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(evaluationreport.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(evaluationreport.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Dimensions(); ok {
		_spec.SetField(evaluationreport.FieldDimensions, field.TypeJSON, value)
	}
	if _u.mutation.DimensionsCleared() {
		_spec.ClearField(evaluationreport.FieldDimensions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(evaluationreport.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(evaluationreport.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Improvements(); ok {
		_spec.SetField(evaluationreport.FieldImprovements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldImprovements, value)
		})
	}
	if _u.mutation.ImprovementsCleared() {
		_spec.ClearField(evaluationreport.FieldImprovements, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiDependency(); ok {
		_spec.SetField(evaluationreport.FieldAiDependency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiDependency(); ok {
		_spec.AddField(evaluationreport.FieldAiDependency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationreport.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &EvaluationReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
