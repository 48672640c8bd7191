// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/activity"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ActivityUpdate is the builder for updating Activity entities.
type ActivityUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityMutation
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdate) Where(ps ...predicate.Activity) *ActivityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ActivityUpdate) SetName(v string) *ActivityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableName(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ActivityUpdate) SetDescription(v string) *ActivityUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDescription(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ActivityUpdate) ClearDescription() *ActivityUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMaxHelpLevel sets the "max_help_level" field.
func (_u *ActivityUpdate) SetMaxHelpLevel(v int) *ActivityUpdate {
	_u.mutation.ResetMaxHelpLevel()
	_u.mutation.SetMaxHelpLevel(v)
	return _u
}

// SetNillableMaxHelpLevel sets the "max_help_level" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableMaxHelpLevel(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetMaxHelpLevel(*v)
	}
	return _u
}

// AddMaxHelpLevel adds value to the "max_help_level" field.
func (_u *ActivityUpdate) AddMaxHelpLevel(v int) *ActivityUpdate {
	_u.mutation.AddMaxHelpLevel(v)
	return _u
}

// SetBlockCompleteSolutions sets the "block_complete_solutions" field.
func (_u *ActivityUpdate) SetBlockCompleteSolutions(v bool) *ActivityUpdate {
	_u.mutation.SetBlockCompleteSolutions(v)
	return _u
}

// SetNillableBlockCompleteSolutions sets the "block_complete_solutions" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableBlockCompleteSolutions(v *bool) *ActivityUpdate {
	if v != nil {
		_u.SetBlockCompleteSolutions(*v)
	}
	return _u
}

// SetRequireJustification sets the "require_justification" field.
func (_u *ActivityUpdate) SetRequireJustification(v bool) *ActivityUpdate {
	_u.mutation.SetRequireJustification(v)
	return _u
}

// SetNillableRequireJustification sets the "require_justification" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableRequireJustification(v *bool) *ActivityUpdate {
	if v != nil {
		_u.SetRequireJustification(*v)
	}
	return _u
}

// SetDelegationThreshold sets the "delegation_threshold" field.
func (_u *ActivityUpdate) SetDelegationThreshold(v float64) *ActivityUpdate {
	_u.mutation.ResetDelegationThreshold()
	_u.mutation.SetDelegationThreshold(v)
	return _u
}

// SetNillableDelegationThreshold sets the "delegation_threshold" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDelegationThreshold(v *float64) *ActivityUpdate {
	if v != nil {
		_u.SetDelegationThreshold(*v)
	}
	return _u
}

// AddDelegationThreshold adds value to the "delegation_threshold" field.
func (_u *ActivityUpdate) AddDelegationThreshold(v float64) *ActivityUpdate {
	_u.mutation.AddDelegationThreshold(v)
	return _u
}

// SetRiskThresholds sets the "risk_thresholds" field.
func (_u *ActivityUpdate) SetRiskThresholds(v map[string]float64) *ActivityUpdate {
	_u.mutation.SetRiskThresholds(v)
	return _u
}

// ClearRiskThresholds clears the value of the "risk_thresholds" field.
func (_u *ActivityUpdate) ClearRiskThresholds() *ActivityUpdate {
	_u.mutation.ClearRiskThresholds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivityUpdate) SetUpdatedAt(v time.Time) *ActivityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdate) Mutation() *ActivityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := activity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Activity.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(activity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(activity.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(activity.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MaxHelpLevel(); ok {
		_spec.SetField(activity.FieldMaxHelpLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxHelpLevel(); ok {
		_spec.AddField(activity.FieldMaxHelpLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockCompleteSolutions(); ok {
		_spec.SetField(activity.FieldBlockCompleteSolutions, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequireJustification(); ok {
		_spec.SetField(activity.FieldRequireJustification, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DelegationThreshold(); ok {
		_spec.SetField(activity.FieldDelegationThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDelegationThreshold(); ok {
		_spec.AddField(activity.FieldDelegationThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskThresholds(); ok {
		_spec.SetField(activity.FieldRiskThresholds, field.TypeJSON, value)
	}
	if _u.mutation.RiskThresholdsCleared() {
		_spec.ClearField(activity.FieldRiskThresholds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(activity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityUpdateOne is the builder for updating a single Activity entity.
type ActivityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityMutation
}

// SetName sets the "name" field.
func (_u *ActivityUpdateOne) SetName(v string) *ActivityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableName(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ActivityUpdateOne) SetDescription(v string) *ActivityUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDescription(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ActivityUpdateOne) ClearDescription() *ActivityUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMaxHelpLevel sets the "max_help_level" field.
func (_u *ActivityUpdateOne) SetMaxHelpLevel(v int) *ActivityUpdateOne {
	_u.mutation.ResetMaxHelpLevel()
	_u.mutation.SetMaxHelpLevel(v)
	return _u
}

// SetNillableMaxHelpLevel sets the "max_help_level" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableMaxHelpLevel(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetMaxHelpLevel(*v)
	}
	return _u
}

// AddMaxHelpLevel adds value to the "max_help_level" field.
func (_u *ActivityUpdateOne) AddMaxHelpLevel(v int) *ActivityUpdateOne {
	_u.mutation.AddMaxHelpLevel(v)
	return _u
}

// SetBlockCompleteSolutions sets the "block_complete_solutions" field.
func (_u *ActivityUpdateOne) SetBlockCompleteSolutions(v bool) *ActivityUpdateOne {
	_u.mutation.SetBlockCompleteSolutions(v)
	return _u
}

// SetNillableBlockCompleteSolutions sets the "block_complete_solutions" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableBlockCompleteSolutions(v *bool) *ActivityUpdateOne {
	if v != nil {
		_u.SetBlockCompleteSolutions(*v)
	}
	return _u
}

// SetRequireJustification sets the "require_justification" field.
func (_u *ActivityUpdateOne) SetRequireJustification(v bool) *ActivityUpdateOne {
	_u.mutation.SetRequireJustification(v)
	return _u
}

// SetNillableRequireJustification sets the "require_justification" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableRequireJustification(v *bool) *ActivityUpdateOne {
	if v != nil {
		_u.SetRequireJustification(*v)
	}
	return _u
}

// SetDelegationThreshold sets the "delegation_threshold" field.
func (_u *ActivityUpdateOne) SetDelegationThreshold(v float64) *ActivityUpdateOne {
	_u.mutation.ResetDelegationThreshold()
	_u.mutation.SetDelegationThreshold(v)
	return _u
}

// SetNillableDelegationThreshold sets the "delegation_threshold" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDelegationThreshold(v *float64) *ActivityUpdateOne {
	if v != nil {
		_u.SetDelegationThreshold(*v)
	}
	return _u
}

// AddDelegationThreshold adds value to the "delegation_threshold" field.
func (_u *ActivityUpdateOne) AddDelegationThreshold(v float64) *ActivityUpdateOne {
	_u.mutation.AddDelegationThreshold(v)
	return _u
}

// SetRiskThresholds sets the "risk_thresholds" field.
func (_u *ActivityUpdateOne) SetRiskThresholds(v map[string]float64) *ActivityUpdateOne {
	_u.mutation.SetRiskThresholds(v)
	return _u
}

// ClearRiskThresholds clears the value of the "risk_thresholds" field.
func (_u *ActivityUpdateOne) ClearRiskThresholds() *ActivityUpdateOne {
	_u.mutation.ClearRiskThresholds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivityUpdateOne) SetUpdatedAt(v time.Time) *ActivityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdateOne) Mutation() *ActivityMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdateOne) Where(ps ...predicate.Activity) *ActivityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityUpdateOne) Select(field string, fields ...string) *ActivityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Activity entity.
func (_u *ActivityUpdateOne) Save(ctx context.Context) (*Activity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdateOne) SaveX(ctx context.Context) *Activity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := activity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Activity.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityUpdateOne) sqlSave(ctx context.Context) (_node *Activity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Activity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activity.FieldID)
		for _, f := range fields {
			if !activity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activity.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(activity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(activity.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(activity.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MaxHelpLevel(); ok {
		_spec.SetField(activity.FieldMaxHelpLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxHelpLevel(); ok {
		_spec.AddField(activity.FieldMaxHelpLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockCompleteSolutions(); ok {
		_spec.SetField(activity.FieldBlockCompleteSolutions, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequireJustification(); ok {
		_spec.SetField(activity.FieldRequireJustification, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DelegationThreshold(); ok {
		_spec.SetField(activity.FieldDelegationThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDelegationThreshold(); ok {
		_spec.AddField(activity.FieldDelegationThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskThresholds(); ok {
		_spec.SetField(activity.FieldRiskThresholds, field.TypeJSON, value)
	}
	if _u.mutation.RiskThresholdsCleared() {
		_spec.ClearField(activity.FieldRiskThresholds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(activity.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Activity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
