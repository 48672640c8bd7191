// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/praxislabs/praxis/ent/activity"
	"github.com/praxislabs/praxis/ent/evaluationreport"
	"github.com/praxislabs/praxis/ent/llmrequestevent"
	"github.com/praxislabs/praxis/ent/risk"
	"github.com/praxislabs/praxis/ent/schema"
	"github.com/praxislabs/praxis/ent/session"
	"github.com/praxislabs/praxis/ent/traceevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescActivityID is the schema descriptor for activity_id field.
	activityDescActivityID := activityFields[0].Descriptor()
	// activity.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	activity.ActivityIDValidator = activityDescActivityID.Validators[0].(func(string) error)
	// activityDescTeacherID is the schema descriptor for teacher_id field.
	activityDescTeacherID := activityFields[1].Descriptor()
	// activity.TeacherIDValidator is a validator for the "teacher_id" field. It is called by the builders before save.
	activity.TeacherIDValidator = activityDescTeacherID.Validators[0].(func(string) error)
	// activityDescName is the schema descriptor for name field.
	activityDescName := activityFields[2].Descriptor()
	// activity.NameValidator is a validator for the "name" field. It is called by the builders before save.
	activity.NameValidator = activityDescName.Validators[0].(func(string) error)
	// activityDescDescription is the schema descriptor for description field.
	activityDescDescription := activityFields[3].Descriptor()
	// activity.DefaultDescription holds the default value on creation for the description field.
	activity.DefaultDescription = activityDescDescription.Default.(string)
	// activityDescMaxHelpLevel is the schema descriptor for max_help_level field.
	activityDescMaxHelpLevel := activityFields[4].Descriptor()
	// activity.DefaultMaxHelpLevel holds the default value on creation for the max_help_level field.
	activity.DefaultMaxHelpLevel = activityDescMaxHelpLevel.Default.(int)
	// activityDescBlockCompleteSolutions is the schema descriptor for block_complete_solutions field.
	activityDescBlockCompleteSolutions := activityFields[5].Descriptor()
	// activity.DefaultBlockCompleteSolutions holds the default value on creation for the block_complete_solutions field.
	activity.DefaultBlockCompleteSolutions = activityDescBlockCompleteSolutions.Default.(bool)
	// activityDescRequireJustification is the schema descriptor for require_justification field.
	activityDescRequireJustification := activityFields[6].Descriptor()
	// activity.DefaultRequireJustification holds the default value on creation for the require_justification field.
	activity.DefaultRequireJustification = activityDescRequireJustification.Default.(bool)
	// activityDescDelegationThreshold is the schema descriptor for delegation_threshold field.
	activityDescDelegationThreshold := activityFields[7].Descriptor()
	// activity.DefaultDelegationThreshold holds the default value on creation for the delegation_threshold field.
	activity.DefaultDelegationThreshold = activityDescDelegationThreshold.Default.(float64)
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityFields[9].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	// activityDescUpdatedAt is the schema descriptor for updated_at field.
	activityDescUpdatedAt := activityFields[10].Descriptor()
	// activity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	activity.DefaultUpdatedAt = activityDescUpdatedAt.Default.(func() time.Time)
	// activity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	activity.UpdateDefaultUpdatedAt = activityDescUpdatedAt.UpdateDefault.(func() time.Time)
	evaluationreportFields := schema.EvaluationReport{}.Fields()
	_ = evaluationreportFields
	// evaluationreportDescReportID is the schema descriptor for report_id field.
	evaluationreportDescReportID := evaluationreportFields[0].Descriptor()
	// evaluationreport.ReportIDValidator is a validator for the "report_id" field. It is called by the builders before save.
	evaluationreport.ReportIDValidator = evaluationreportDescReportID.Validators[0].(func(string) error)
	// evaluationreportDescSessionID is the schema descriptor for session_id field.
	evaluationreportDescSessionID := evaluationreportFields[1].Descriptor()
	// evaluationreport.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	evaluationreport.SessionIDValidator = evaluationreportDescSessionID.Validators[0].(func(string) error)
	// evaluationreportDescStudentID is the schema descriptor for student_id field.
	evaluationreportDescStudentID := evaluationreportFields[2].Descriptor()
	// evaluationreport.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	evaluationreport.StudentIDValidator = evaluationreportDescStudentID.Validators[0].(func(string) error)
	// evaluationreportDescAiDependency is the schema descriptor for ai_dependency field.
	evaluationreportDescAiDependency := evaluationreportFields[9].Descriptor()
	// evaluationreport.DefaultAiDependency holds the default value on creation for the ai_dependency field.
	evaluationreport.DefaultAiDependency = evaluationreportDescAiDependency.Default.(float64)
	// evaluationreportDescCreatedAt is the schema descriptor for created_at field.
	evaluationreportDescCreatedAt := evaluationreportFields[10].Descriptor()
	// evaluationreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluationreport.DefaultCreatedAt = evaluationreportDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	riskMixin := schema.Risk{}.Mixin()
	riskMixinFields0 := riskMixin[0].Fields()
	_ = riskMixinFields0
	riskFields := schema.Risk{}.Fields()
	_ = riskFields
	// riskDescTimestamp is the schema descriptor for timestamp field.
	riskDescTimestamp := riskMixinFields0[1].Descriptor()
	// risk.DefaultTimestamp holds the default value on creation for the timestamp field.
	risk.DefaultTimestamp = riskDescTimestamp.Default.(func() time.Time)
	// riskDescRiskID is the schema descriptor for risk_id field.
	riskDescRiskID := riskFields[0].Descriptor()
	// risk.RiskIDValidator is a validator for the "risk_id" field. It is called by the builders before save.
	risk.RiskIDValidator = riskDescRiskID.Validators[0].(func(string) error)
	// riskDescSessionID is the schema descriptor for session_id field.
	riskDescSessionID := riskFields[1].Descriptor()
	// risk.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	risk.SessionIDValidator = riskDescSessionID.Validators[0].(func(string) error)
	// riskDescStudentID is the schema descriptor for student_id field.
	riskDescStudentID := riskFields[2].Descriptor()
	// risk.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	risk.StudentIDValidator = riskDescStudentID.Validators[0].(func(string) error)
	// riskDescRiskType is the schema descriptor for risk_type field.
	riskDescRiskType := riskFields[4].Descriptor()
	// risk.RiskTypeValidator is a validator for the "risk_type" field. It is called by the builders before save.
	risk.RiskTypeValidator = riskDescRiskType.Validators[0].(func(string) error)
	// riskDescResolved is the schema descriptor for resolved field.
	riskDescResolved := riskFields[11].Descriptor()
	// risk.DefaultResolved holds the default value on creation for the resolved field.
	risk.DefaultResolved = riskDescResolved.Default.(bool)
	// riskDescResolutionNotes is the schema descriptor for resolution_notes field.
	riskDescResolutionNotes := riskFields[12].Descriptor()
	// risk.DefaultResolutionNotes holds the default value on creation for the resolution_notes field.
	risk.DefaultResolutionNotes = riskDescResolutionNotes.Default.(string)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescSessionID is the schema descriptor for session_id field.
	sessionDescSessionID := sessionFields[0].Descriptor()
	// session.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	session.SessionIDValidator = sessionDescSessionID.Validators[0].(func(string) error)
	// sessionDescStudentID is the schema descriptor for student_id field.
	sessionDescStudentID := sessionFields[1].Descriptor()
	// session.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	session.StudentIDValidator = sessionDescStudentID.Validators[0].(func(string) error)
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[5].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	traceeventMixin := schema.TraceEvent{}.Mixin()
	traceeventMixinFields0 := traceeventMixin[0].Fields()
	_ = traceeventMixinFields0
	traceeventFields := schema.TraceEvent{}.Fields()
	_ = traceeventFields
	// traceeventDescTimestamp is the schema descriptor for timestamp field.
	traceeventDescTimestamp := traceeventMixinFields0[1].Descriptor()
	// traceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	traceevent.DefaultTimestamp = traceeventDescTimestamp.Default.(func() time.Time)
	// traceeventDescTraceID is the schema descriptor for trace_id field.
	traceeventDescTraceID := traceeventFields[0].Descriptor()
	// traceevent.TraceIDValidator is a validator for the "trace_id" field. It is called by the builders before save.
	traceevent.TraceIDValidator = traceeventDescTraceID.Validators[0].(func(string) error)
	// traceeventDescSessionID is the schema descriptor for session_id field.
	traceeventDescSessionID := traceeventFields[1].Descriptor()
	// traceevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	traceevent.SessionIDValidator = traceeventDescSessionID.Validators[0].(func(string) error)
	// traceeventDescAiInvolvement is the schema descriptor for ai_involvement field.
	traceeventDescAiInvolvement := traceeventFields[7].Descriptor()
	// traceevent.DefaultAiInvolvement holds the default value on creation for the ai_involvement field.
	traceevent.DefaultAiInvolvement = traceeventDescAiInvolvement.Default.(float64)
}
