package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/praxislabs/praxis/internal/evaluation"
	"github.com/praxislabs/praxis/internal/store"
)

// EvaluateSession builds (or returns) the session's competency report.
// Reports are one per session: a second call returns the stored report
// unless replace is set, which regenerates it.
func (g *Gateway) EvaluateSession(ctx context.Context, sessionID string, replace bool) (*store.EvaluationRecord, error) {
	sess, err := g.store.Sessions().Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !replace {
		existing, err := g.store.Evaluations().BySession(ctx, sessionID)
		switch {
		case err == nil:
			return existing, nil
		case !errors.Is(err, store.ErrReportNotFound):
			return nil, &PersistenceError{Op: "load existing report", Err: err}
		}
	}

	traces, err := g.store.Traces().BySession(ctx, sessionID, store.QueryOpts{})
	if err != nil {
		return nil, &PersistenceError{Op: "load traces", Err: err}
	}
	risks, err := g.store.Risks().BySession(ctx, sessionID, store.RiskFilter{})
	if err != nil {
		return nil, &PersistenceError{Op: "load risks", Err: err}
	}

	// Evaluation degrades to the heuristic when no provider is available.
	var gen *evaluation.Generator
	if p, perr := g.provider(ctx); perr == nil {
		gen = evaluation.NewGenerator(p)
	} else {
		g.log.Warn("evaluating without provider", "session_id", sessionID, "error", perr)
		gen = evaluation.NewGenerator(nil)
	}

	res, err := gen.Generate(ctx, &evaluation.Input{
		SessionID:  sessionID,
		StudentID:  sess.StudentID,
		ActivityID: sess.ActivityID,
		Traces:     traces,
		Risks:      risks,
	})
	if err != nil {
		return nil, err
	}

	rec := &store.EvaluationRecord{
		ReportID:     uuid.NewString(),
		SessionID:    sessionID,
		StudentID:    sess.StudentID,
		ActivityID:   sess.ActivityID,
		Competency:   res.Competency,
		OverallScore: res.OverallScore,
		Dimensions:   res.Dimensions,
		Strengths:    res.Strengths,
		Improvements: res.Improvements,
		AIDependency: res.AIDependency,
		CreatedAt:    time.Now(),
	}

	saved, err := g.store.Evaluations().Save(ctx, rec, replace)
	if err != nil {
		return nil, &PersistenceError{Op: "save evaluation", Err: err}
	}
	return saved, nil
}
