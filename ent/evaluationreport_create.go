// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/evaluationreport"
)

// EvaluationReportCreate is the builder for creating a EvaluationReport entity.
type EvaluationReportCreate struct {
	config
	mutation *EvaluationReportMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *EvaluationReportCreate) SetReportID(v string) *EvaluationReportCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *EvaluationReportCreate) SetSessionID(v string) *EvaluationReportCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *EvaluationReportCreate) SetStudentID(v string) *EvaluationReportCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *EvaluationReportCreate) SetActivityID(v string) *EvaluationReportCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_c *EvaluationReportCreate) SetNillableActivityID(v *string) *EvaluationReportCreate {
	if v != nil {
		_c.SetActivityID(*v)
	}
	return _c
}

// SetCompetency sets the "competency" field.
func (_c *EvaluationReportCreate) SetCompetency(v evaluationreport.Competency) *EvaluationReportCreate {
	_c.mutation.SetCompetency(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *EvaluationReportCreate) SetOverallScore(v float64) *EvaluationReportCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetDimensions sets the "dimensions" field.
func (_c *EvaluationReportCreate) SetDimensions(v map[string]float64) *EvaluationReportCreate {
	_c.mutation.SetDimensions(v)
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *EvaluationReportCreate) SetStrengths(v []string) *EvaluationReportCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetImprovements sets the "improvements" field.
func (_c *EvaluationReportCreate) SetImprovements(v []string) *EvaluationReportCreate {
	_c.mutation.SetImprovements(v)
	return _c
}

// SetAiDependency sets the "ai_dependency" field.
func (_c *EvaluationReportCreate) SetAiDependency(v float64) *EvaluationReportCreate {
	_c.mutation.SetAiDependency(v)
	return _c
}

// SetNillableAiDependency sets the "ai_dependency" field if the given value is not nil.
func (_c *EvaluationReportCreate) SetNillableAiDependency(v *float64) *EvaluationReportCreate {
	if v != nil {
		_c.SetAiDependency(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationReportCreate) SetCreatedAt(v time.Time) *EvaluationReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationReportCreate) SetNillableCreatedAt(v *time.Time) *EvaluationReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the EvaluationReportMutation object of the builder.
func (_c *EvaluationReportCreate) Mutation() *EvaluationReportMutation {
	return _c.mutation
}

// Save creates the EvaluationReport in the database.
func (_c *EvaluationReportCreate) Save(ctx context.Context) (*EvaluationReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationReportCreate) SaveX(ctx context.Context) *EvaluationReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationReportCreate) defaults() {
	if _, ok := _c.mutation.AiDependency(); !ok {
		v := evaluationreport.DefaultAiDependency
		_c.mutation.SetAiDependency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluationreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationReportCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "EvaluationReport.report_id"`)}
	}
	if v, ok := _c.mutation.ReportID(); ok {
		if err := evaluationreport.ReportIDValidator(v); err != nil {
			return &ValidationError{Name: "report_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.report_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "EvaluationReport.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := evaluationreport.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "EvaluationReport.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := evaluationreport.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Competency(); !ok {
		return &ValidationError{Name: "competency", err: errors.New(`ent: missing required field "EvaluationReport.competency"`)}
	}
	if v, ok := _c.mutation.Competency(); ok {
		if err := evaluationreport.CompetencyValidator(v); err != nil {
			return &ValidationError{Name: "competency", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.competency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "EvaluationReport.overall_score"`)}
	}
	if _, ok := _c.mutation.AiDependency(); !ok {
		return &ValidationError{Name: "ai_dependency", err: errors.New(`ent: missing required field "EvaluationReport.ai_dependency"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvaluationReport.created_at"`)}
	}
	return nil
}

func (_c *EvaluationReportCreate) sqlSave(ctx context.Context) (*EvaluationReport, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationReportCreate) createSpec() (*EvaluationReport, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationreport.Table, sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(evaluationreport.FieldReportID, field.TypeString, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(evaluationreport.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(evaluationreport.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(evaluationreport.FieldActivityID, field.TypeString, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.Competency(); ok {
		_spec.SetField(evaluationreport.FieldCompetency, field.TypeEnum, value)
		_node.Competency = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(evaluationreport.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.Dimensions(); ok {
		_spec.SetField(evaluationreport.FieldDimensions, field.TypeJSON, value)
		_node.Dimensions = value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(evaluationreport.FieldStrengths, field.TypeJSON, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.Improvements(); ok {
		_spec.SetField(evaluationreport.FieldImprovements, field.TypeJSON, value)
		_node.Improvements = value
	}
	if value, ok := _c.mutation.AiDependency(); ok {
		_spec.SetField(evaluationreport.FieldAiDependency, field.TypeFloat64, value)
		_node.AiDependency = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EvaluationReportCreateBulk is the builder for creating many EvaluationReport entities in bulk.
type EvaluationReportCreateBulk struct {
	config
	err      error
	builders []*EvaluationReportCreate
}

// Save creates the EvaluationReport entities in the database.
func (_c *EvaluationReportCreateBulk) Save(ctx context.Context) ([]*EvaluationReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationReportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EvaluationReportCreateBulk) SaveX(ctx context.Context) []*EvaluationReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
