// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/activity"
)

// ActivityCreate is the builder for creating a Activity entity.
type ActivityCreate struct {
	config
	mutation *ActivityMutation
	hooks    []Hook
}

// SetActivityID sets the "activity_id" field.
func (_c *ActivityCreate) SetActivityID(v string) *ActivityCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetTeacherID sets the "teacher_id" field.
func (_c *ActivityCreate) SetTeacherID(v string) *ActivityCreate {
	_c.mutation.SetTeacherID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ActivityCreate) SetName(v string) *ActivityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ActivityCreate) SetDescription(v string) *ActivityCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableDescription(v *string) *ActivityCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetMaxHelpLevel sets the "max_help_level" field.
func (_c *ActivityCreate) SetMaxHelpLevel(v int) *ActivityCreate {
	_c.mutation.SetMaxHelpLevel(v)
	return _c
}

// SetNillableMaxHelpLevel sets the "max_help_level" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableMaxHelpLevel(v *int) *ActivityCreate {
	if v != nil {
		_c.SetMaxHelpLevel(*v)
	}
	return _c
}

// SetBlockCompleteSolutions sets the "block_complete_solutions" field.
func (_c *ActivityCreate) SetBlockCompleteSolutions(v bool) *ActivityCreate {
	_c.mutation.SetBlockCompleteSolutions(v)
	return _c
}

// SetNillableBlockCompleteSolutions sets the "block_complete_solutions" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableBlockCompleteSolutions(v *bool) *ActivityCreate {
	if v != nil {
		_c.SetBlockCompleteSolutions(*v)
	}
	return _c
}

// SetRequireJustification sets the "require_justification" field.
func (_c *ActivityCreate) SetRequireJustification(v bool) *ActivityCreate {
	_c.mutation.SetRequireJustification(v)
	return _c
}

// SetNillableRequireJustification sets the "require_justification" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableRequireJustification(v *bool) *ActivityCreate {
	if v != nil {
		_c.SetRequireJustification(*v)
	}
	return _c
}

// SetDelegationThreshold sets the "delegation_threshold" field.
func (_c *ActivityCreate) SetDelegationThreshold(v float64) *ActivityCreate {
	_c.mutation.SetDelegationThreshold(v)
	return _c
}

// SetNillableDelegationThreshold sets the "delegation_threshold" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableDelegationThreshold(v *float64) *ActivityCreate {
	if v != nil {
		_c.SetDelegationThreshold(*v)
	}
	return _c
}

// SetRiskThresholds sets the "risk_thresholds" field.
func (_c *ActivityCreate) SetRiskThresholds(v map[string]float64) *ActivityCreate {
	_c.mutation.SetRiskThresholds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivityCreate) SetCreatedAt(v time.Time) *ActivityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableCreatedAt(v *time.Time) *ActivityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ActivityCreate) SetUpdatedAt(v time.Time) *ActivityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableUpdatedAt(v *time.Time) *ActivityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ActivityMutation object of the builder.
func (_c *ActivityCreate) Mutation() *ActivityMutation {
	return _c.mutation
}

// Save creates the Activity in the database.
func (_c *ActivityCreate) Save(ctx context.Context) (*Activity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityCreate) SaveX(ctx context.Context) *Activity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := activity.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.MaxHelpLevel(); !ok {
		v := activity.DefaultMaxHelpLevel
		_c.mutation.SetMaxHelpLevel(v)
	}
	if _, ok := _c.mutation.BlockCompleteSolutions(); !ok {
		v := activity.DefaultBlockCompleteSolutions
		_c.mutation.SetBlockCompleteSolutions(v)
	}
	if _, ok := _c.mutation.RequireJustification(); !ok {
		v := activity.DefaultRequireJustification
		_c.mutation.SetRequireJustification(v)
	}
	if _, ok := _c.mutation.DelegationThreshold(); !ok {
		v := activity.DefaultDelegationThreshold
		_c.mutation.SetDelegationThreshold(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := activity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityCreate) check() error {
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "Activity.activity_id"`)}
	}
	if v, ok := _c.mutation.ActivityID(); ok {
		if err := activity.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "Activity.activity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TeacherID(); !ok {
		return &ValidationError{Name: "teacher_id", err: errors.New(`ent: missing required field "Activity.teacher_id"`)}
	}
	if v, ok := _c.mutation.TeacherID(); ok {
		if err := activity.TeacherIDValidator(v); err != nil {
			return &ValidationError{Name: "teacher_id", err: fmt.Errorf(`ent: validator failed for field "Activity.teacher_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Activity.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := activity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Activity.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxHelpLevel(); !ok {
		return &ValidationError{Name: "max_help_level", err: errors.New(`ent: missing required field "Activity.max_help_level"`)}
	}
	if _, ok := _c.mutation.BlockCompleteSolutions(); !ok {
		return &ValidationError{Name: "block_complete_solutions", err: errors.New(`ent: missing required field "Activity.block_complete_solutions"`)}
	}
	if _, ok := _c.mutation.RequireJustification(); !ok {
		return &ValidationError{Name: "require_justification", err: errors.New(`ent: missing required field "Activity.require_justification"`)}
	}
	if _, ok := _c.mutation.DelegationThreshold(); !ok {
		return &ValidationError{Name: "delegation_threshold", err: errors.New(`ent: missing required field "Activity.delegation_threshold"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Activity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Activity.updated_at"`)}
	}
	return nil
}

func (_c *ActivityCreate) sqlSave(ctx context.Context) (*Activity, error) {
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

func (_c *ActivityCreate) createSpec() (*Activity, *sqlgraph.CreateSpec) {
	var (
		_node = &Activity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activity.Table, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(activity.FieldActivityID, field.TypeString, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.TeacherID(); ok {
		_spec.SetField(activity.FieldTeacherID, field.TypeString, value)
		_node.TeacherID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(activity.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(activity.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.MaxHelpLevel(); ok {
		_spec.SetField(activity.FieldMaxHelpLevel, field.TypeInt, value)
		_node.MaxHelpLevel = value
	}
	if value, ok := _c.mutation.BlockCompleteSolutions(); ok {
		_spec.SetField(activity.FieldBlockCompleteSolutions, field.TypeBool, value)
		_node.BlockCompleteSolutions = value
	}
	if value, ok := _c.mutation.RequireJustification(); ok {
		_spec.SetField(activity.FieldRequireJustification, field.TypeBool, value)
		_node.RequireJustification = value
	}
	if value, ok := _c.mutation.DelegationThreshold(); ok {
		_spec.SetField(activity.FieldDelegationThreshold, field.TypeFloat64, value)
		_node.DelegationThreshold = value
	}
	if value, ok := _c.mutation.RiskThresholds(); ok {
		_spec.SetField(activity.FieldRiskThresholds, field.TypeJSON, value)
		_node.RiskThresholds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(activity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ActivityCreateBulk is the builder for creating many Activity entities in bulk.
type ActivityCreateBulk struct {
	config
	err      error
	builders []*ActivityCreate
}

// Save creates the Activity entities in the database.
func (_c *ActivityCreateBulk) Save(ctx context.Context) ([]*Activity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Activity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityMutation)
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
func (_c *ActivityCreateBulk) SaveX(ctx context.Context) []*Activity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
