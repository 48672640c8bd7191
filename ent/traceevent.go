// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/traceevent"
)

// TraceEvent is the model entity for the TraceEvent schema.
type TraceEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the record
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID identifying the trace
	TraceID string `json:"trace_id,omitempty"`
	// Owning session
	SessionID string `json:"session_id,omitempty"`
	// Detail tier of the capture
	TraceLevel traceevent.TraceLevel `json:"trace_level,omitempty"`
	// InteractionType holds the value of the "interaction_type" field.
	InteractionType traceevent.InteractionType `json:"interaction_type,omitempty"`
	// Phase label assigned by the classifier
	CognitiveState string `json:"cognitive_state,omitempty"`
	// CognitiveIntent holds the value of the "cognitive_intent" field.
	CognitiveIntent string `json:"cognitive_intent,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Share of the content originating from the model, 0..1
	AiInvolvement float64 `json:"ai_involvement,omitempty"`
	// Free-form side data (agent name, cache hit, failure marker)
	Metadata     map[string]string `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TraceEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case traceevent.FieldMetadata:
			values[i] = new([]byte)
		case traceevent.FieldAiInvolvement:
			values[i] = new(sql.NullFloat64)
		case traceevent.FieldID, traceevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case traceevent.FieldTraceID, traceevent.FieldSessionID, traceevent.FieldTraceLevel, traceevent.FieldInteractionType, traceevent.FieldCognitiveState, traceevent.FieldCognitiveIntent, traceevent.FieldContent:
			values[i] = new(sql.NullString)
		case traceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TraceEvent fields.
func (_m *TraceEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case traceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case traceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case traceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case traceevent.FieldTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trace_id", values[i])
			} else if value.Valid {
				_m.TraceID = value.String
			}
		case traceevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case traceevent.FieldTraceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trace_level", values[i])
			} else if value.Valid {
				_m.TraceLevel = traceevent.TraceLevel(value.String)
			}
		case traceevent.FieldInteractionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interaction_type", values[i])
			} else if value.Valid {
				_m.InteractionType = traceevent.InteractionType(value.String)
			}
		case traceevent.FieldCognitiveState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cognitive_state", values[i])
			} else if value.Valid {
				_m.CognitiveState = value.String
			}
		case traceevent.FieldCognitiveIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cognitive_intent", values[i])
			} else if value.Valid {
				_m.CognitiveIntent = value.String
			}
		case traceevent.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case traceevent.FieldAiInvolvement:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_involvement", values[i])
			} else if value.Valid {
				_m.AiInvolvement = value.Float64
			}
		case traceevent.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TraceEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TraceEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TraceEvent.
// Note that you need to call TraceEvent.Unwrap() before calling this method if this TraceEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TraceEvent) Update() *TraceEventUpdateOne {
	return NewTraceEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TraceEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TraceEvent) Unwrap() *TraceEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TraceEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TraceEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TraceEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("trace_id=")
	builder.WriteString(_m.TraceID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("trace_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.TraceLevel))
	builder.WriteString(", ")
	builder.WriteString("interaction_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.InteractionType))
	builder.WriteString(", ")
	builder.WriteString("cognitive_state=")
	builder.WriteString(_m.CognitiveState)
	builder.WriteString(", ")
	builder.WriteString("cognitive_intent=")
	builder.WriteString(_m.CognitiveIntent)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("ai_involvement=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiInvolvement))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// TraceEvents is a parsable slice of TraceEvent.
type TraceEvents []*TraceEvent
