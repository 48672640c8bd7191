// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/traceevent"
)

// TraceEventCreate is the builder for creating a TraceEvent entity.
type TraceEventCreate struct {
	config
	mutation *TraceEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TraceEventCreate) SetSequence(v int64) *TraceEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TraceEventCreate) SetTimestamp(v time.Time) *TraceEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TraceEventCreate) SetNillableTimestamp(v *time.Time) *TraceEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *TraceEventCreate) SetTraceID(v string) *TraceEventCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TraceEventCreate) SetSessionID(v string) *TraceEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTraceLevel sets the "trace_level" field.
func (_c *TraceEventCreate) SetTraceLevel(v traceevent.TraceLevel) *TraceEventCreate {
	_c.mutation.SetTraceLevel(v)
	return _c
}

// SetInteractionType sets the "interaction_type" field.
func (_c *TraceEventCreate) SetInteractionType(v traceevent.InteractionType) *TraceEventCreate {
	_c.mutation.SetInteractionType(v)
	return _c
}

// SetCognitiveState sets the "cognitive_state" field.
func (_c *TraceEventCreate) SetCognitiveState(v string) *TraceEventCreate {
	_c.mutation.SetCognitiveState(v)
	return _c
}

// SetCognitiveIntent sets the "cognitive_intent" field.
func (_c *TraceEventCreate) SetCognitiveIntent(v string) *TraceEventCreate {
	_c.mutation.SetCognitiveIntent(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *TraceEventCreate) SetContent(v string) *TraceEventCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetAiInvolvement sets the "ai_involvement" field.
func (_c *TraceEventCreate) SetAiInvolvement(v float64) *TraceEventCreate {
	_c.mutation.SetAiInvolvement(v)
	return _c
}

// SetNillableAiInvolvement sets the "ai_involvement" field if the given value is not nil.
func (_c *TraceEventCreate) SetNillableAiInvolvement(v *float64) *TraceEventCreate {
	if v != nil {
		_c.SetAiInvolvement(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *TraceEventCreate) SetMetadata(v map[string]string) *TraceEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// Mutation returns the TraceEventMutation object of the builder.
func (_c *TraceEventCreate) Mutation() *TraceEventMutation {
	return _c.mutation
}

// Save creates the TraceEvent in the database.
func (_c *TraceEventCreate) Save(ctx context.Context) (*TraceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TraceEventCreate) SaveX(ctx context.Context) *TraceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TraceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TraceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TraceEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := traceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AiInvolvement(); !ok {
		v := traceevent.DefaultAiInvolvement
		_c.mutation.SetAiInvolvement(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TraceEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TraceEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TraceEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.TraceID(); !ok {
		return &ValidationError{Name: "trace_id", err: errors.New(`ent: missing required field "TraceEvent.trace_id"`)}
	}
	if v, ok := _c.mutation.TraceID(); ok {
		if err := traceevent.TraceIDValidator(v); err != nil {
			return &ValidationError{Name: "trace_id", err: fmt.Errorf(`ent: validator failed for field "TraceEvent.trace_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TraceEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := traceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TraceEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TraceLevel(); !ok {
		return &ValidationError{Name: "trace_level", err: errors.New(`ent: missing required field "TraceEvent.trace_level"`)}
	}
	if v, ok := _c.mutation.TraceLevel(); ok {
		if err := traceevent.TraceLevelValidator(v); err != nil {
			return &ValidationError{Name: "trace_level", err: fmt.Errorf(`ent: validator failed for field "TraceEvent.trace_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InteractionType(); !ok {
		return &ValidationError{Name: "interaction_type", err: errors.New(`ent: missing required field "TraceEvent.interaction_type"`)}
	}
	if v, ok := _c.mutation.InteractionType(); ok {
		if err := traceevent.InteractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "interaction_type", err: fmt.Errorf(`ent: validator failed for field "TraceEvent.interaction_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CognitiveState(); !ok {
		return &ValidationError{Name: "cognitive_state", err: errors.New(`ent: missing required field "TraceEvent.cognitive_state"`)}
	}
	if _, ok := _c.mutation.CognitiveIntent(); !ok {
		return &ValidationError{Name: "cognitive_intent", err: errors.New(`ent: missing required field "TraceEvent.cognitive_intent"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "TraceEvent.content"`)}
	}
	if _, ok := _c.mutation.AiInvolvement(); !ok {
		return &ValidationError{Name: "ai_involvement", err: errors.New(`ent: missing required field "TraceEvent.ai_involvement"`)}
	}
	return nil
}

func (_c *TraceEventCreate) sqlSave(ctx context.Context) (*TraceEvent, error) {
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

func (_c *TraceEventCreate) createSpec() (*TraceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TraceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(traceevent.Table, sqlgraph.NewFieldSpec(traceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(traceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(traceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(traceevent.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(traceevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TraceLevel(); ok {
		_spec.SetField(traceevent.FieldTraceLevel, field.TypeEnum, value)
		_node.TraceLevel = value
	}
	if value, ok := _c.mutation.InteractionType(); ok {
		_spec.SetField(traceevent.FieldInteractionType, field.TypeEnum, value)
		_node.InteractionType = value
	}
	if value, ok := _c.mutation.CognitiveState(); ok {
		_spec.SetField(traceevent.FieldCognitiveState, field.TypeString, value)
		_node.CognitiveState = value
	}
	if value, ok := _c.mutation.CognitiveIntent(); ok {
		_spec.SetField(traceevent.FieldCognitiveIntent, field.TypeString, value)
		_node.CognitiveIntent = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(traceevent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.AiInvolvement(); ok {
		_spec.SetField(traceevent.FieldAiInvolvement, field.TypeFloat64, value)
		_node.AiInvolvement = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(traceevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// TraceEventCreateBulk is the builder for creating many TraceEvent entities in bulk.
type TraceEventCreateBulk struct {
	config
	err      error
	builders []*TraceEventCreate
}

// Save creates the TraceEvent entities in the database.
func (_c *TraceEventCreateBulk) Save(ctx context.Context) ([]*TraceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TraceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TraceEventMutation)
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
func (_c *TraceEventCreateBulk) SaveX(ctx context.Context) []*TraceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TraceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TraceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
