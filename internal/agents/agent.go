package agents

import (
	"context"

	"github.com/praxislabs/praxis/internal/classify"
	"github.com/praxislabs/praxis/internal/governance"
	"github.com/praxislabs/praxis/internal/llm"
)

// Mode selects which primary agent serves a session.
type Mode string

const (
	ModeTutor       Mode = "tutor"
	ModeEvaluator   Mode = "evaluator"
	ModeSimulator   Mode = "simulator"
	ModeRiskAnalyst Mode = "risk_analyst"
)

// HistoryTurn is one prior turn visible to handlers, oldest first.
type HistoryTurn struct {
	Role          string // "student" or "agent"
	State         string
	Content       string
	AIInvolvement float64
}

// Context carries everything a handler may consult for one interaction.
// Handlers never reach outside it and never call each other; coordination
// happens only in the orchestrator.
type Context struct {
	SessionID      string
	StudentID      string
	ActivityID     string
	Prompt         string
	Classification classify.Classification
	Policy         governance.Policy
	History        []HistoryTurn

	// Provider is the generation handle, already wrapped with caching,
	// retry and logging middleware. Nil for handlers that never generate.
	Provider llm.Provider

	// Generation parameters, set by the orchestrator from its config.
	Temperature float64
	MaxTokens   int
}

// AgentResult is what every handler returns.
type AgentResult struct {
	Response string
	// AgentName identifies the handler that produced the response.
	AgentName string
	// AIInvolvement estimates how much of the response originated from
	// generative output rather than template text, in [0,1]. The handler
	// owns this bound: it feeds governance on future turns and risk
	// analysis on this one.
	AIInvolvement float64
	Blocked       bool
	BlockReason   string
}

// Handler is one agent. The set is closed: six handlers, enumerated in
// the dispatcher, no open-ended registration.
type Handler interface {
	Name() string
	Handle(ctx context.Context, ac *Context) (*AgentResult, error)
}

// clampInvolvement keeps a handler's self-reported score inside [0,1].
func clampInvolvement(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
