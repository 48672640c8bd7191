// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "activity_id", Type: field.TypeString, Unique: true},
		{Name: "teacher_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "max_help_level", Type: field.TypeInt, Default: 3},
		{Name: "block_complete_solutions", Type: field.TypeBool, Default: true},
		{Name: "require_justification", Type: field.TypeBool, Default: false},
		{Name: "delegation_threshold", Type: field.TypeFloat64, Default: 0.7},
		{Name: "risk_thresholds", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activity_teacher_id",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[2]},
			},
		},
	}
	// EvaluationReportsColumns holds the columns for the "evaluation_reports" table.
	EvaluationReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString, Nullable: true},
		{Name: "competency", Type: field.TypeEnum, Enums: []string{"novice", "advanced_beginner", "competent", "proficient", "expert"}},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "dimensions", Type: field.TypeJSON, Nullable: true},
		{Name: "strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "improvements", Type: field.TypeJSON, Nullable: true},
		{Name: "ai_dependency", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EvaluationReportsTable holds the schema information for the "evaluation_reports" table.
	EvaluationReportsTable = &schema.Table{
		Name:       "evaluation_reports",
		Columns:    EvaluationReportsColumns,
		PrimaryKey: []*schema.Column{EvaluationReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationreport_student_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationReportsColumns[3]},
			},
			{
				Name:    "evaluationreport_activity_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationReportsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// RisksColumns holds the columns for the "risks" table.
	RisksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "risk_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString, Nullable: true},
		{Name: "risk_type", Type: field.TypeString},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}},
		{Name: "dimension", Type: field.TypeEnum, Enums: []string{"cognitive", "ethical", "epistemic", "technical", "governance"}},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "trace_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "resolution_notes", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// RisksTable holds the schema information for the "risks" table.
	RisksTable = &schema.Table{
		Name:       "risks",
		Columns:    RisksColumns,
		PrimaryKey: []*schema.Column{RisksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "risk_sequence",
				Unique:  false,
				Columns: []*schema.Column{RisksColumns[1]},
			},
			{
				Name:    "risk_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RisksColumns[2]},
			},
			{
				Name:    "risk_session_id",
				Unique:  false,
				Columns: []*schema.Column{RisksColumns[4]},
			},
			{
				Name:    "risk_dimension",
				Unique:  false,
				Columns: []*schema.Column{RisksColumns[9]},
			},
			{
				Name:    "risk_resolved",
				Unique:  false,
				Columns: []*schema.Column{RisksColumns[14]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString, Nullable: true},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"tutor", "evaluator", "simulator", "risk_analyst"}, Default: "tutor"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "paused", "aborted"}, Default: "active"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_student_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
			{
				Name:    "session_activity_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5]},
			},
		},
	}
	// TraceEventsColumns holds the columns for the "trace_events" table.
	TraceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "trace_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "trace_level", Type: field.TypeEnum, Enums: []string{"surface", "technical", "interactional", "cognitive"}},
		{Name: "interaction_type", Type: field.TypeEnum, Enums: []string{"student_prompt", "agent_response", "system_event"}},
		{Name: "cognitive_state", Type: field.TypeString},
		{Name: "cognitive_intent", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "ai_involvement", Type: field.TypeFloat64, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// TraceEventsTable holds the schema information for the "trace_events" table.
	TraceEventsTable = &schema.Table{
		Name:       "trace_events",
		Columns:    TraceEventsColumns,
		PrimaryKey: []*schema.Column{TraceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "traceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TraceEventsColumns[1]},
			},
			{
				Name:    "traceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TraceEventsColumns[2]},
			},
			{
				Name:    "traceevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TraceEventsColumns[4]},
			},
			{
				Name:    "traceevent_interaction_type",
				Unique:  false,
				Columns: []*schema.Column{TraceEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitiesTable,
		EvaluationReportsTable,
		LlmRequestEventsTable,
		RisksTable,
		SessionsTable,
		TraceEventsTable,
	}
)

func init() {
}
