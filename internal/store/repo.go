package store

import (
	"context"
	"errors"
	"time"

	"github.com/praxislabs/praxis/internal/governance"
)

// Domain errors surfaced by repositories.
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionNotActive   = errors.New("session is not active")
	ErrInvalidTransition  = errors.New("invalid session status transition")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrRiskNotFound       = errors.New("risk not found")
	ErrNotActivityOwner   = errors.New("activity is owned by another teacher")
	ErrMissingDimension   = errors.New("risk dimension is required")
	ErrReportNotFound     = errors.New("evaluation report not found")
)

// SessionMode selects which agent handles a session's interactions.
type SessionMode string

const (
	ModeTutor       SessionMode = "tutor"
	ModeEvaluator   SessionMode = "evaluator"
	ModeSimulator   SessionMode = "simulator"
	ModeRiskAnalyst SessionMode = "risk_analyst"
)

// SessionStatus is the session lifecycle state. Transitions are monotonic:
// active -> {completed, paused, aborted}; paused -> {active, aborted}.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
	StatusPaused    SessionStatus = "paused"
	StatusAborted   SessionStatus = "aborted"
)

// TraceLevel is the detail tier of a trace capture.
type TraceLevel string

const (
	LevelSurface       TraceLevel = "surface"
	LevelTechnical     TraceLevel = "technical"
	LevelInteractional TraceLevel = "interactional"
	LevelCognitive     TraceLevel = "cognitive"
)

// InteractionType tags what a trace row captures.
type InteractionType string

const (
	TypeStudentPrompt InteractionType = "student_prompt"
	TypeAgentResponse InteractionType = "agent_response"
	TypeSystemEvent   InteractionType = "system_event"
)

// SessionRecord is the repository view of a session.
type SessionRecord struct {
	SessionID  string
	StudentID  string
	ActivityID string
	Mode       SessionMode
	Status     SessionStatus
	StartedAt  time.Time
	EndedAt    *time.Time
}

// TraceRecord is one immutable pipeline step. Append-only.
type TraceRecord struct {
	TraceID       string
	SessionID     string
	Level         TraceLevel
	Type          InteractionType
	State         string
	Intent        string
	Content       string
	AIInvolvement float64
	Metadata      map[string]string
	Sequence      int64
	Timestamp     time.Time
}

// RiskRecord is one detected concern.
type RiskRecord struct {
	RiskID          string
	SessionID       string
	StudentID       string
	ActivityID      string
	Type            string
	Level           string
	Dimension       string
	Description     string
	Evidence        []string
	Recommendations []string
	TraceIDs        []string
	Resolved        bool
	ResolutionNotes string
	Sequence        int64
	Timestamp       time.Time
}

// RiskStats aggregates a session's findings.
type RiskStats struct {
	Total          int
	ByLevel        map[string]int
	ByDimension    map[string]int
	ByType         map[string]int
	ResolutionRate float64
}

// RiskFilter narrows risk queries. Nil/empty fields match everything.
type RiskFilter struct {
	Resolved  *bool
	Dimension string
}

// EvaluationRecord summarizes a completed session.
type EvaluationRecord struct {
	ReportID     string
	SessionID    string
	StudentID    string
	ActivityID   string
	Competency   string
	OverallScore float64
	Dimensions   map[string]float64
	Strengths    []string
	Improvements []string
	AIDependency float64
	CreatedAt    time.Time
}

// ActivityRecord is a teacher-authored unit of work plus its policy.
type ActivityRecord struct {
	ActivityID string
	TeacherID  string
	Name       string
	Descr      string
	Policy     governance.Policy
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionRepo manages session lifecycle rows.
type SessionRepo interface {
	// Start creates a new ACTIVE session and returns its record.
	Start(ctx context.Context, sessionID, studentID, activityID string, mode SessionMode) (*SessionRecord, error)

	// Get returns the session or ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (*SessionRecord, error)

	// SetMode updates the active agent mode.
	SetMode(ctx context.Context, sessionID string, mode SessionMode) error

	// Transition moves the session to a new status, enforcing monotonic
	// transitions. Terminal statuses set ended_at.
	Transition(ctx context.Context, sessionID string, to SessionStatus) error
}

// TraceRepo appends and reads immutable trace rows.
type TraceRepo interface {
	// Append persists one trace row, assigning its global sequence.
	Append(ctx context.Context, rec *TraceRecord) (*TraceRecord, error)

	// BySession returns a session's traces ordered by sequence.
	BySession(ctx context.Context, sessionID string, opts QueryOpts) ([]*TraceRecord, error)

	// Get returns a single trace by trace ID.
	Get(ctx context.Context, traceID string) (*TraceRecord, error)
}

// RiskRepo persists scanner findings.
type RiskRepo interface {
	// AppendBatch persists one scan's findings inside a single transaction:
	// either every finding commits or none do.
	AppendBatch(ctx context.Context, recs []*RiskRecord) ([]*RiskRecord, error)

	// BySession returns a session's risks, optionally filtered.
	BySession(ctx context.Context, sessionID string, f RiskFilter) ([]*RiskRecord, error)

	// Resolve marks the risk resolved with notes. The only mutation allowed.
	Resolve(ctx context.Context, riskID, notes string) error

	// Stats aggregates a session's findings.
	Stats(ctx context.Context, sessionID string) (*RiskStats, error)
}

// EvaluationRepo manages per-session evaluation reports.
type EvaluationRepo interface {
	// Save stores the report. With replace=false an existing report for the
	// session is returned unchanged; with replace=true it is overwritten.
	Save(ctx context.Context, rec *EvaluationRecord, replace bool) (*EvaluationRecord, error)

	// BySession returns the session's report or ErrReportNotFound.
	BySession(ctx context.Context, sessionID string) (*EvaluationRecord, error)
}

// ActivityRepo manages activities and their policies.
type ActivityRepo interface {
	Create(ctx context.Context, rec *ActivityRecord) error

	// Get returns the activity or ErrActivityNotFound.
	Get(ctx context.Context, activityID string) (*ActivityRecord, error)

	// UpdatePolicy replaces the activity's policy. Fails with
	// ErrNotActivityOwner unless teacherID owns the activity.
	UpdatePolicy(ctx context.Context, activityID, teacherID string, p governance.Policy) error

	// Policy is the read-only lookup consumed by governance and risk
	// scanning. Unknown activities fall back to the default policy.
	Policy(ctx context.Context, activityID string) (governance.Policy, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted LLM call record.
type LLMRequestEvent struct {
	ID int
	LLMRequestEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMUsage aggregates token consumption for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)

	// GetLLMEvent returns one event by row ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]*LLMUsage, error)
}
