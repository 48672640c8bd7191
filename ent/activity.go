// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/activity"
)

// Activity is the model entity for the Activity schema.
type Activity struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ActivityID holds the value of the "activity_id" field.
	ActivityID string `json:"activity_id,omitempty"`
	// TeacherID holds the value of the "teacher_id" field.
	TeacherID string `json:"teacher_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// 1 = orientation only, up to 5 = worked examples
	MaxHelpLevel int `json:"max_help_level,omitempty"`
	// BlockCompleteSolutions holds the value of the "block_complete_solutions" field.
	BlockCompleteSolutions bool `json:"block_complete_solutions,omitempty"`
	// RequireJustification holds the value of the "require_justification" field.
	RequireJustification bool `json:"require_justification,omitempty"`
	// Cumulative AI-involvement ceiling over recent history
	DelegationThreshold float64 `json:"delegation_threshold,omitempty"`
	// Per-risk-type numeric thresholds
	RiskThresholds map[string]float64 `json:"risk_thresholds,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Activity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activity.FieldRiskThresholds:
			values[i] = new([]byte)
		case activity.FieldBlockCompleteSolutions, activity.FieldRequireJustification:
			values[i] = new(sql.NullBool)
		case activity.FieldDelegationThreshold:
			values[i] = new(sql.NullFloat64)
		case activity.FieldID, activity.FieldMaxHelpLevel:
			values[i] = new(sql.NullInt64)
		case activity.FieldActivityID, activity.FieldTeacherID, activity.FieldName, activity.FieldDescription:
			values[i] = new(sql.NullString)
		case activity.FieldCreatedAt, activity.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Activity fields.
func (_m *Activity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activity.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case activity.FieldActivityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_id", values[i])
			} else if value.Valid {
				_m.ActivityID = value.String
			}
		case activity.FieldTeacherID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field teacher_id", values[i])
			} else if value.Valid {
				_m.TeacherID = value.String
			}
		case activity.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case activity.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case activity.FieldMaxHelpLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_help_level", values[i])
			} else if value.Valid {
				_m.MaxHelpLevel = int(value.Int64)
			}
		case activity.FieldBlockCompleteSolutions:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field block_complete_solutions", values[i])
			} else if value.Valid {
				_m.BlockCompleteSolutions = value.Bool
			}
		case activity.FieldRequireJustification:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field require_justification", values[i])
			} else if value.Valid {
				_m.RequireJustification = value.Bool
			}
		case activity.FieldDelegationThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field delegation_threshold", values[i])
			} else if value.Valid {
				_m.DelegationThreshold = value.Float64
			}
		case activity.FieldRiskThresholds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field risk_thresholds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RiskThresholds); err != nil {
					return fmt.Errorf("unmarshal field risk_thresholds: %w", err)
				}
			}
		case activity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case activity.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Activity.
// This includes values selected through modifiers, order, etc.
func (_m *Activity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Activity.
// Note that you need to call Activity.Unwrap() before calling this method if this Activity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Activity) Update() *ActivityUpdateOne {
	return NewActivityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Activity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Activity) Unwrap() *Activity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Activity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Activity) String() string {
	var builder strings.Builder
	builder.WriteString("Activity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("activity_id=")
	builder.WriteString(_m.ActivityID)
	builder.WriteString(", ")
	builder.WriteString("teacher_id=")
	builder.WriteString(_m.TeacherID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("max_help_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxHelpLevel))
	builder.WriteString(", ")
	builder.WriteString("block_complete_solutions=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockCompleteSolutions))
	builder.WriteString(", ")
	builder.WriteString("require_justification=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequireJustification))
	builder.WriteString(", ")
	builder.WriteString("delegation_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.DelegationThreshold))
	builder.WriteString(", ")
	builder.WriteString("risk_thresholds=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskThresholds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Activities is a parsable slice of Activity.
type Activities []*Activity
