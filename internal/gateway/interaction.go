package gateway

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/praxislabs/praxis/internal/agents"
	"github.com/praxislabs/praxis/internal/classify"
	"github.com/praxislabs/praxis/internal/governance"
	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/metrics"
	"github.com/praxislabs/praxis/internal/store"
)

// ErrEmptyPrompt rejects blank input before any pipeline work.
var ErrEmptyPrompt = errors.New("prompt is empty")

// InteractionResult is what one processed turn returns to the caller.
type InteractionResult struct {
	SessionID     string
	Response      string
	Agent         string
	State         string
	Intent        string
	AIInvolvement float64

	Blocked     bool
	BlockReason string

	// InputTraceID is always set: blocked turns still leave one trace.
	InputTraceID  string
	OutputTraceID string
}

// ProcessInteraction runs one student turn through the full pipeline.
// Ordering guarantee: the input trace is durably committed before any
// generation call, and the output trace (success or failure) before the
// result is returned. The risk scan runs after return, asynchronously.
func (g *Gateway) ProcessInteraction(ctx context.Context, sessionID, prompt string) (*InteractionResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	sess, err := g.store.Sessions().Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != store.StatusActive {
		return nil, store.ErrSessionNotActive
	}

	policy, err := g.store.Activities().Policy(ctx, sess.ActivityID)
	if err != nil {
		return nil, &PersistenceError{Op: "load policy", Err: err}
	}

	prior, err := g.store.Traces().BySession(ctx, sessionID, store.QueryOpts{})
	if err != nil {
		return nil, &PersistenceError{Op: "load session history", Err: err}
	}

	c := classify.Classify(&classify.Input{
		Prompt:     prompt,
		PriorState: classify.State(lastPromptState(prior)),
		HasCode:    strings.Contains(prompt, "```"),
	})

	decision := governance.Check(c, policy, recentInvolvement(prior))
	if !decision.Allowed {
		return g.blockInteraction(ctx, sess, prompt, c, decision)
	}

	input, err := g.store.Traces().Append(ctx, &store.TraceRecord{
		TraceID:   uuid.NewString(),
		SessionID: sessionID,
		Level:     store.LevelCognitive,
		Type:      store.TypeStudentPrompt,
		State:     string(c.State),
		Intent:    string(c.Intent),
		Content:   prompt,
	})
	if err != nil {
		metrics.Interactions.WithLabelValues("failed").Inc()
		return nil, &PersistenceError{Op: "append input trace", Err: err}
	}

	handler := g.dispatcher.Select(agents.Mode(sess.Mode), c)

	ac := &agents.Context{
		SessionID:      sessionID,
		StudentID:      sess.StudentID,
		ActivityID:     sess.ActivityID,
		Prompt:         prompt,
		Classification: c,
		Policy:         policy,
		History:        historyTurns(prior, g.opts.HistoryLimit),
		Temperature:    g.opts.Temperature,
		MaxTokens:      g.opts.MaxTokens,
	}

	if needsProvider(handler) {
		p, perr := g.provider(ctx)
		if perr != nil {
			metrics.Interactions.WithLabelValues("failed").Inc()
			return nil, &ProviderError{Err: perr}
		}
		ac.Provider = p
	}

	hctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, "interaction"), g.opts.ProviderTimeout)
	defer cancel()

	res, err := handler.Handle(hctx, ac)
	if err != nil {
		return nil, g.failInteraction(ctx, sess, handler.Name(), c, err)
	}

	output, err := g.store.Traces().Append(ctx, &store.TraceRecord{
		TraceID:       uuid.NewString(),
		SessionID:     sessionID,
		Level:         store.LevelCognitive,
		Type:          store.TypeAgentResponse,
		State:         string(c.State),
		Intent:        string(c.Intent),
		Content:       res.Response,
		AIInvolvement: res.AIInvolvement,
		Metadata:      map[string]string{"agent": res.AgentName},
	})
	if err != nil {
		metrics.Interactions.WithLabelValues("failed").Inc()
		return nil, &PersistenceError{Op: "append output trace", Err: err}
	}

	g.enqueueScan(scanJob{
		sessionID:  sessionID,
		studentID:  sess.StudentID,
		activityID: sess.ActivityID,
		policy:     policy,
	})

	metrics.Interactions.WithLabelValues("completed").Inc()

	return &InteractionResult{
		SessionID:     sessionID,
		Response:      res.Response,
		Agent:         res.AgentName,
		State:         string(c.State),
		Intent:        string(c.Intent),
		AIInvolvement: res.AIInvolvement,
		InputTraceID:  input.TraceID,
		OutputTraceID: output.TraceID,
	}, nil
}

// blockInteraction records a governed refusal. One trace, no provider call.
func (g *Gateway) blockInteraction(ctx context.Context, sess *store.SessionRecord, prompt string, c classify.Classification, d governance.Decision) (*InteractionResult, error) {
	input, err := g.store.Traces().Append(ctx, &store.TraceRecord{
		TraceID:   uuid.NewString(),
		SessionID: sess.SessionID,
		Level:     store.LevelCognitive,
		Type:      store.TypeStudentPrompt,
		State:     string(c.State),
		Intent:    string(c.Intent),
		Content:   prompt,
		Metadata:  map[string]string{"blocked": "true", "reason": d.Reason},
	})
	if err != nil {
		metrics.Interactions.WithLabelValues("failed").Inc()
		return nil, &PersistenceError{Op: "append blocked trace", Err: err}
	}

	metrics.GovernanceBlocks.WithLabelValues(reasonClass(c)).Inc()
	metrics.Interactions.WithLabelValues("blocked").Inc()

	return &InteractionResult{
		SessionID:    sess.SessionID,
		State:        string(c.State),
		Intent:       string(c.Intent),
		Blocked:      true,
		BlockReason:  d.Reason,
		InputTraceID: input.TraceID,
	}, nil
}

// failInteraction records a generation failure as a system event so the
// trace stream shows the gap, then wraps the cause.
func (g *Gateway) failInteraction(ctx context.Context, sess *store.SessionRecord, agent string, c classify.Classification, cause error) error {
	_, terr := g.store.Traces().Append(ctx, &store.TraceRecord{
		TraceID:   uuid.NewString(),
		SessionID: sess.SessionID,
		Level:     store.LevelTechnical,
		Type:      store.TypeSystemEvent,
		State:     string(c.State),
		Intent:    string(c.Intent),
		Content:   "generation failed",
		Metadata:  map[string]string{"agent": agent, "error": cause.Error()},
	})
	if terr != nil {
		g.log.Error("failed to record generation failure",
			"session_id", sess.SessionID, "error", terr)
	}

	metrics.ProviderErrors.Inc()
	metrics.Interactions.WithLabelValues("failed").Inc()
	return &ProviderError{Err: cause}
}

// needsProvider reports whether a handler generates. The deterministic
// handlers answer from templates and never touch the provider, so a
// misconfigured provider must not fail their turns.
func needsProvider(h agents.Handler) bool {
	switch h.(type) {
	case *agents.GovernanceAgent, *agents.TraceabilityAgent:
		return false
	default:
		return true
	}
}

// reasonClass buckets block reasons for the metrics label.
func reasonClass(c classify.Classification) string {
	if c.Intent == classify.IntentSolutionRequest {
		return "solution_request"
	}
	return "delegation"
}

// lastPromptState finds the most recent student-prompt state.
func lastPromptState(traces []*store.TraceRecord) string {
	for i := len(traces) - 1; i >= 0; i-- {
		if traces[i].Type == store.TypeStudentPrompt {
			return traces[i].State
		}
	}
	return ""
}

// recentInvolvement collects AI-involvement scores of agent responses,
// oldest first, for the governance moving average.
func recentInvolvement(traces []*store.TraceRecord) []float64 {
	var out []float64
	for _, t := range traces {
		if t.Type == store.TypeAgentResponse {
			out = append(out, t.AIInvolvement)
		}
	}
	return out
}

// historyTurns converts trace rows into the handler-visible history,
// newest limit turns, system events excluded.
func historyTurns(traces []*store.TraceRecord, limit int) []agents.HistoryTurn {
	var turns []agents.HistoryTurn
	for _, t := range traces {
		switch t.Type {
		case store.TypeStudentPrompt:
			turns = append(turns, agents.HistoryTurn{Role: "student", State: t.State, Content: t.Content})
		case store.TypeAgentResponse:
			turns = append(turns, agents.HistoryTurn{Role: "agent", State: t.State, Content: t.Content, AIInvolvement: t.AIInvolvement})
		}
	}
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return turns
}
