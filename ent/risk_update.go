// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/predicate"
	"github.com/praxislabs/praxis/ent/risk"
)

// RiskUpdate is the builder for updating Risk entities.
type RiskUpdate struct {
	config
	hooks    []Hook
	mutation *RiskMutation
}

// Where appends a list predicates to the RiskUpdate builder.
func (_u *RiskUpdate) Where(ps ...predicate.Risk) *RiskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *RiskUpdate) SetResolved(v bool) *RiskUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *RiskUpdate) SetNillableResolved(v *bool) *RiskUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *RiskUpdate) SetResolutionNotes(v string) *RiskUpdate {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *RiskUpdate) SetNillableResolutionNotes(v *string) *RiskUpdate {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *RiskUpdate) ClearResolutionNotes() *RiskUpdate {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// Mutation returns the RiskMutation object of the builder.
func (_u *RiskUpdate) Mutation() *RiskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RiskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RiskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RiskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(risk.Table, risk.Columns, sqlgraph.NewFieldSpec(risk.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActivityIDCleared() {
		_spec.ClearField(risk.FieldActivityID, field.TypeString)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(risk.FieldEvidence, field.TypeJSON)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(risk.FieldRecommendations, field.TypeJSON)
	}
	if _u.mutation.TraceIdsCleared() {
		_spec.ClearField(risk.FieldTraceIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(risk.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(risk.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(risk.FieldResolutionNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{risk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RiskUpdateOne is the builder for updating a single Risk entity.
type RiskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RiskMutation
}

// SetResolved sets the "resolved" field.
func (_u *RiskUpdateOne) SetResolved(v bool) *RiskUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *RiskUpdateOne) SetNillableResolved(v *bool) *RiskUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *RiskUpdateOne) SetResolutionNotes(v string) *RiskUpdateOne {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *RiskUpdateOne) SetNillableResolutionNotes(v *string) *RiskUpdateOne {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *RiskUpdateOne) ClearResolutionNotes() *RiskUpdateOne {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// Mutation returns the RiskMutation object of the builder.
func (_u *RiskUpdateOne) Mutation() *RiskMutation {
	return _u.mutation
}

// Where appends a list predicates to the RiskUpdate builder.
func (_u *RiskUpdateOne) Where(ps ...predicate.Risk) *RiskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RiskUpdateOne) Select(field string, fields ...string) *RiskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Risk entity.
func (_u *RiskUpdateOne) Save(ctx context.Context) (*Risk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskUpdateOne) SaveX(ctx context.Context) *Risk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RiskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RiskUpdateOne) sqlSave(ctx context.Context) (_node *Risk, err error) {
	_spec := sqlgraph.NewUpdateSpec(risk.Table, risk.Columns, sqlgraph.NewFieldSpec(risk.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Risk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, risk.FieldID)
		for _, f := range fields {
			if !risk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != risk.FieldID {
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
	if _u.mutation.ActivityIDCleared() {
		_spec.ClearField(risk.FieldActivityID, field.TypeString)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(risk.FieldEvidence, field.TypeJSON)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(risk.FieldRecommendations, field.TypeJSON)
	}
	if _u.mutation.TraceIdsCleared() {
		_spec.ClearField(risk.FieldTraceIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(risk.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(risk.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(risk.FieldResolutionNotes, field.TypeString)
	}
	_node = &Risk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{risk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
