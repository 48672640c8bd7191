// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/risk"
)

// RiskCreate is the builder for creating a Risk entity.
type RiskCreate struct {
	config
	mutation *RiskMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RiskCreate) SetSequence(v int64) *RiskCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RiskCreate) SetTimestamp(v time.Time) *RiskCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RiskCreate) SetNillableTimestamp(v *time.Time) *RiskCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRiskID sets the "risk_id" field.
func (_c *RiskCreate) SetRiskID(v string) *RiskCreate {
	_c.mutation.SetRiskID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RiskCreate) SetSessionID(v string) *RiskCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *RiskCreate) SetStudentID(v string) *RiskCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *RiskCreate) SetActivityID(v string) *RiskCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_c *RiskCreate) SetNillableActivityID(v *string) *RiskCreate {
	if v != nil {
		_c.SetActivityID(*v)
	}
	return _c
}

// SetRiskType sets the "risk_type" field.
func (_c *RiskCreate) SetRiskType(v string) *RiskCreate {
	_c.mutation.SetRiskType(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *RiskCreate) SetLevel(v risk.Level) *RiskCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetDimension sets the "dimension" field.
func (_c *RiskCreate) SetDimension(v risk.Dimension) *RiskCreate {
	_c.mutation.SetDimension(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RiskCreate) SetDescription(v string) *RiskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *RiskCreate) SetEvidence(v []string) *RiskCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *RiskCreate) SetRecommendations(v []string) *RiskCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetTraceIds sets the "trace_ids" field.
func (_c *RiskCreate) SetTraceIds(v []string) *RiskCreate {
	_c.mutation.SetTraceIds(v)
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *RiskCreate) SetResolved(v bool) *RiskCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *RiskCreate) SetNillableResolved(v *bool) *RiskCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_c *RiskCreate) SetResolutionNotes(v string) *RiskCreate {
	_c.mutation.SetResolutionNotes(v)
	return _c
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_c *RiskCreate) SetNillableResolutionNotes(v *string) *RiskCreate {
	if v != nil {
		_c.SetResolutionNotes(*v)
	}
	return _c
}

// Mutation returns the RiskMutation object of the builder.
func (_c *RiskCreate) Mutation() *RiskMutation {
	return _c.mutation
}

// Save creates the Risk in the database.
func (_c *RiskCreate) Save(ctx context.Context) (*Risk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RiskCreate) SaveX(ctx context.Context) *Risk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RiskCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := risk.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		v := risk.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.ResolutionNotes(); !ok {
		v := risk.DefaultResolutionNotes
		_c.mutation.SetResolutionNotes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RiskCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Risk.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Risk.timestamp"`)}
	}
	if _, ok := _c.mutation.RiskID(); !ok {
		return &ValidationError{Name: "risk_id", err: errors.New(`ent: missing required field "Risk.risk_id"`)}
	}
	if v, ok := _c.mutation.RiskID(); ok {
		if err := risk.RiskIDValidator(v); err != nil {
			return &ValidationError{Name: "risk_id", err: fmt.Errorf(`ent: validator failed for field "Risk.risk_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Risk.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := risk.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Risk.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Risk.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := risk.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Risk.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskType(); !ok {
		return &ValidationError{Name: "risk_type", err: errors.New(`ent: missing required field "Risk.risk_type"`)}
	}
	if v, ok := _c.mutation.RiskType(); ok {
		if err := risk.RiskTypeValidator(v); err != nil {
			return &ValidationError{Name: "risk_type", err: fmt.Errorf(`ent: validator failed for field "Risk.risk_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Risk.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := risk.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Risk.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Dimension(); !ok {
		return &ValidationError{Name: "dimension", err: errors.New(`ent: missing required field "Risk.dimension"`)}
	}
	if v, ok := _c.mutation.Dimension(); ok {
		if err := risk.DimensionValidator(v); err != nil {
			return &ValidationError{Name: "dimension", err: fmt.Errorf(`ent: validator failed for field "Risk.dimension": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Risk.description"`)}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "Risk.resolved"`)}
	}
	return nil
}

func (_c *RiskCreate) sqlSave(ctx context.Context) (*Risk, error) {
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

func (_c *RiskCreate) createSpec() (*Risk, *sqlgraph.CreateSpec) {
	var (
		_node = &Risk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(risk.Table, sqlgraph.NewFieldSpec(risk.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(risk.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(risk.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RiskID(); ok {
		_spec.SetField(risk.FieldRiskID, field.TypeString, value)
		_node.RiskID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(risk.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(risk.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(risk.FieldActivityID, field.TypeString, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.RiskType(); ok {
		_spec.SetField(risk.FieldRiskType, field.TypeString, value)
		_node.RiskType = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(risk.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Dimension(); ok {
		_spec.SetField(risk.FieldDimension, field.TypeEnum, value)
		_node.Dimension = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(risk.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(risk.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(risk.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.TraceIds(); ok {
		_spec.SetField(risk.FieldTraceIds, field.TypeJSON, value)
		_node.TraceIds = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(risk.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.ResolutionNotes(); ok {
		_spec.SetField(risk.FieldResolutionNotes, field.TypeString, value)
		_node.ResolutionNotes = value
	}
	return _node, _spec
}

// RiskCreateBulk is the builder for creating many Risk entities in bulk.
type RiskCreateBulk struct {
	config
	err      error
	builders []*RiskCreate
}

// Save creates the Risk entities in the database.
func (_c *RiskCreateBulk) Save(ctx context.Context) ([]*Risk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Risk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RiskMutation)
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
func (_c *RiskCreateBulk) SaveX(ctx context.Context) []*Risk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
