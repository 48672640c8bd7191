// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/evaluationreport"
)

// EvaluationReport is the model entity for the EvaluationReport schema.
type EvaluationReport struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID string `json:"report_id,omitempty"`
	// One report per session
	SessionID string `json:"session_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// ActivityID holds the value of the "activity_id" field.
	ActivityID string `json:"activity_id,omitempty"`
	// Competency holds the value of the "competency" field.
	Competency evaluationreport.Competency `json:"competency,omitempty"`
	// OverallScore holds the value of the "overall_score" field.
	OverallScore float64 `json:"overall_score,omitempty"`
	// Per-dimension score breakdown
	Dimensions map[string]float64 `json:"dimensions,omitempty"`
	// Strengths holds the value of the "strengths" field.
	Strengths []string `json:"strengths,omitempty"`
	// Improvements holds the value of the "improvements" field.
	Improvements []string `json:"improvements,omitempty"`
	// Mean AI-involvement across the session's traces
	AiDependency float64 `json:"ai_dependency,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationreport.FieldDimensions, evaluationreport.FieldStrengths, evaluationreport.FieldImprovements:
			values[i] = new([]byte)
		case evaluationreport.FieldOverallScore, evaluationreport.FieldAiDependency:
			values[i] = new(sql.NullFloat64)
		case evaluationreport.FieldID:
			values[i] = new(sql.NullInt64)
		case evaluationreport.FieldReportID, evaluationreport.FieldSessionID, evaluationreport.FieldStudentID, evaluationreport.FieldActivityID, evaluationreport.FieldCompetency:
			values[i] = new(sql.NullString)
		case evaluationreport.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationReport fields.
func (_m *EvaluationReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationreport.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evaluationreport.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case evaluationreport.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case evaluationreport.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case evaluationreport.FieldActivityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_id", values[i])
			} else if value.Valid {
				_m.ActivityID = value.String
			}
		case evaluationreport.FieldCompetency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field competency", values[i])
			} else if value.Valid {
				_m.Competency = evaluationreport.Competency(value.String)
			}
		case evaluationreport.FieldOverallScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = value.Float64
			}
		case evaluationreport.FieldDimensions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dimensions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dimensions); err != nil {
					return fmt.Errorf("unmarshal field dimensions: %w", err)
				}
			}
		case evaluationreport.FieldStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strengths); err != nil {
					return fmt.Errorf("unmarshal field strengths: %w", err)
				}
			}
		case evaluationreport.FieldImprovements:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field improvements", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Improvements); err != nil {
					return fmt.Errorf("unmarshal field improvements: %w", err)
				}
			}
		case evaluationreport.FieldAiDependency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_dependency", values[i])
			} else if value.Valid {
				_m.AiDependency = value.Float64
			}
		case evaluationreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationReport.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvaluationReport.
// Note that you need to call EvaluationReport.Unwrap() before calling this method if this EvaluationReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationReport) Update() *EvaluationReportUpdateOne {
	return NewEvaluationReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationReport) Unwrap() *EvaluationReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationReport) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("activity_id=")
	builder.WriteString(_m.ActivityID)
	builder.WriteString(", ")
	builder.WriteString("competency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Competency))
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("dimensions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dimensions))
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strengths))
	builder.WriteString(", ")
	builder.WriteString("improvements=")
	builder.WriteString(fmt.Sprintf("%v", _m.Improvements))
	builder.WriteString(", ")
	builder.WriteString("ai_dependency=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiDependency))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationReports is a parsable slice of EvaluationReport.
type EvaluationReports []*EvaluationReport
