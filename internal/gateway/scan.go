package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/praxislabs/praxis/internal/governance"
	"github.com/praxislabs/praxis/internal/metrics"
	"github.com/praxislabs/praxis/internal/risk"
	"github.com/praxislabs/praxis/internal/store"
)

// scanJob asks the worker to re-scan one session.
type scanJob struct {
	sessionID  string
	studentID  string
	activityID string
	policy     governance.Policy
}

// enqueueScan hands a job to the worker without blocking the interaction
// path. A full queue drops the scan; the next interaction re-enqueues the
// same session, so coverage degrades rather than correctness.
func (g *Gateway) enqueueScan(job scanJob) {
	select {
	case g.scans <- job:
	default:
		metrics.DroppedScans.Inc()
		g.log.Warn("risk scan dropped, queue full", "session_id", job.sessionID)
	}
}

func (g *Gateway) runScanner() {
	defer g.wg.Done()
	for job := range g.scans {
		if _, err := g.scanOnce(context.Background(), job); err != nil {
			g.log.Error("risk scan failed", "session_id", job.sessionID, "error", err)
		}
	}
}

// ScanSession runs a synchronous scan, used by the CLI and by callers that
// need the findings immediately.
func (g *Gateway) ScanSession(ctx context.Context, sessionID string) ([]*store.RiskRecord, error) {
	sess, err := g.store.Sessions().Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	policy, err := g.store.Activities().Policy(ctx, sess.ActivityID)
	if err != nil {
		return nil, &PersistenceError{Op: "load policy", Err: err}
	}
	return g.scanOnce(ctx, scanJob{
		sessionID:  sessionID,
		studentID:  sess.StudentID,
		activityID: sess.ActivityID,
		policy:     policy,
	})
}

// scanOnce scans a session and persists new findings in one transaction.
// Findings already recorded for the same evidence are skipped, so repeated
// scans of a stable session are idempotent.
func (g *Gateway) scanOnce(ctx context.Context, job scanJob) ([]*store.RiskRecord, error) {
	traces, err := g.store.Traces().BySession(ctx, job.sessionID, store.QueryOpts{})
	if err != nil {
		return nil, &PersistenceError{Op: "load traces for scan", Err: err}
	}

	findings := g.scanner.Scan(&risk.Snapshot{
		SessionID:  job.sessionID,
		StudentID:  job.studentID,
		ActivityID: job.activityID,
		Policy:     job.policy,
		Traces:     traces,
	})
	if len(findings) == 0 {
		return nil, nil
	}

	existing, err := g.store.Risks().BySession(ctx, job.sessionID, store.RiskFilter{})
	if err != nil {
		return nil, &PersistenceError{Op: "load existing risks", Err: err}
	}
	seen := make(map[string]bool, len(existing))
	for _, r := range existing {
		seen[findingKey(r.Type, r.TraceIDs)] = true
	}

	now := time.Now()
	var recs []*store.RiskRecord
	for _, f := range findings {
		if seen[findingKey(f.Type, f.TraceIDs)] {
			continue
		}
		recs = append(recs, &store.RiskRecord{
			RiskID:          uuid.NewString(),
			SessionID:       job.sessionID,
			StudentID:       job.studentID,
			ActivityID:      job.activityID,
			Type:            f.Type,
			Level:           f.Level,
			Dimension:       f.Dimension,
			Description:     f.Description,
			Evidence:        f.Evidence,
			Recommendations: f.Recommendations,
			TraceIDs:        f.TraceIDs,
			Timestamp:       now,
		})
	}
	if len(recs) == 0 {
		return nil, nil
	}

	saved, err := g.store.Risks().AppendBatch(ctx, recs)
	if err != nil {
		return nil, &PersistenceError{Op: "append risk findings", Err: err}
	}
	for _, r := range saved {
		metrics.RiskFindings.WithLabelValues(r.Dimension).Inc()
	}

	g.log.Info("risk scan recorded findings",
		"session_id", job.sessionID, "count", len(saved))
	return saved, nil
}

// findingKey identifies a finding by its type and cited evidence, the
// dedupe unit across rescans.
func findingKey(typ string, traceIDs []string) string {
	return typ + "|" + strings.Join(traceIDs, ",")
}
