package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/praxislabs/praxis/internal/governance"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	repo := s.Sessions()

	sess, err := repo.Start(ctx, "sess-1", "stu-1", "act-1", ModeTutor)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sess.Status != StatusActive {
		t.Errorf("status = %s", sess.Status)
	}
	if sess.StartedAt.IsZero() {
		t.Error("started_at not set")
	}

	if err := repo.SetMode(ctx, "sess-1", ModeSimulator); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Mode != ModeSimulator {
		t.Errorf("mode = %s", got.Mode)
	}

	// active -> paused -> active -> completed.
	if err := repo.Transition(ctx, "sess-1", StatusPaused); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := repo.Transition(ctx, "sess-1", StatusActive); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if err := repo.Transition(ctx, "sess-1", StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}

	got, _ = repo.Get(ctx, "sess-1")
	if got.Status != StatusCompleted {
		t.Errorf("status = %s", got.Status)
	}
	if got.EndedAt == nil {
		t.Error("terminal transition must set ended_at")
	}

	// Completed is terminal.
	if err := repo.Transition(ctx, "sess-1", StatusActive); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("reopening completed session: %v", err)
	}

	if _, err := repo.Get(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("missing session: %v", err)
	}
	if err := repo.SetMode(ctx, "nope", ModeTutor); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("set mode on missing session: %v", err)
	}
}

func TestTraceAppendOrdering(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	repo := s.Traces()

	var lastSeq int64 = -1
	for i, id := range []string{"t-a", "t-b", "t-c"} {
		rec, err := repo.Append(ctx, &TraceRecord{
			TraceID:   id,
			SessionID: "sess-1",
			Level:     LevelCognitive,
			Type:      TypeStudentPrompt,
			State:     "EXPLORATION",
			Intent:    "UNKNOWN",
			Content:   "prompt",
		})
		if err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
		if rec.Sequence <= lastSeq {
			t.Fatalf("sequence not strictly increasing: %d after %d", rec.Sequence, lastSeq)
		}
		lastSeq = rec.Sequence
		if rec.Timestamp.IsZero() {
			t.Error("timestamp not set")
		}
	}

	traces, err := repo.BySession(ctx, "sess-1", QueryOpts{})
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	if len(traces) != 3 {
		t.Fatalf("traces = %d", len(traces))
	}
	for i := 1; i < len(traces); i++ {
		if traces[i].Sequence <= traces[i-1].Sequence {
			t.Error("BySession must order by sequence")
		}
	}

	got, err := repo.Get(ctx, "t-b")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TraceID != "t-b" {
		t.Errorf("trace id = %s", got.TraceID)
	}
}

func TestTraceQueryOpts(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	repo := s.Traces()

	var seqs []int64
	for _, id := range []string{"q-a", "q-b", "q-c", "q-d"} {
		rec, err := repo.Append(ctx, &TraceRecord{
			TraceID: id, SessionID: "sess-q", Level: LevelCognitive,
			Type: TypeStudentPrompt, State: "EXPLORATION", Intent: "UNKNOWN", Content: "x",
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
		seqs = append(seqs, rec.Sequence)
	}

	limited, err := repo.BySession(ctx, "sess-q", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit ignored: %d rows", len(limited))
	}

	after, err := repo.BySession(ctx, "sess-q", QueryOpts{After: seqs[1]})
	if err != nil {
		t.Fatalf("after: %v", err)
	}
	if len(after) != 2 || after[0].TraceID != "q-c" {
		t.Errorf("after filter: got %d rows", len(after))
	}
}

func TestRiskBatchAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	repo := s.Risks()

	recs := []*RiskRecord{
		{RiskID: "r-1", SessionID: "sess-1", StudentID: "stu-1", Type: "excessive_delegation",
			Level: "high", Dimension: "cognitive", Description: "d1", TraceIDs: []string{"t-1"}},
		{RiskID: "r-2", SessionID: "sess-1", StudentID: "stu-1", Type: "unvalidated_code",
			Level: "medium", Dimension: "technical", Description: "d2"},
	}
	saved, err := repo.AppendBatch(ctx, recs)
	if err != nil {
		t.Fatalf("AppendBatch: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("saved = %d", len(saved))
	}

	// A finding with no dimension rejects the whole batch.
	_, err = repo.AppendBatch(ctx, []*RiskRecord{
		{RiskID: "r-3", SessionID: "sess-1", Type: "x", Level: "low", Description: "d"},
	})
	if !errors.Is(err, ErrMissingDimension) {
		t.Errorf("missing dimension: %v", err)
	}

	if err := repo.Resolve(ctx, "r-1", "discussed with student"); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if err := repo.Resolve(ctx, "r-missing", "x"); !errors.Is(err, ErrRiskNotFound) {
		t.Errorf("resolve missing: %v", err)
	}

	unresolved := false
	open, err := repo.BySession(ctx, "sess-1", RiskFilter{Resolved: &unresolved})
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	if len(open) != 1 || open[0].RiskID != "r-2" {
		t.Errorf("open risks = %d", len(open))
	}

	byDim, err := repo.BySession(ctx, "sess-1", RiskFilter{Dimension: "cognitive"})
	if err != nil {
		t.Fatalf("filter by dimension: %v", err)
	}
	if len(byDim) != 1 || byDim[0].RiskID != "r-1" {
		t.Errorf("dimension filter = %d rows", len(byDim))
	}

	stats, err := repo.Stats(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 2 {
		t.Errorf("total = %d", stats.Total)
	}
	if stats.ByDimension["cognitive"] != 1 || stats.ByDimension["technical"] != 1 {
		t.Errorf("by dimension = %v", stats.ByDimension)
	}
	if stats.ResolutionRate != 0.5 {
		t.Errorf("resolution rate = %v", stats.ResolutionRate)
	}
}

func TestRiskBatchCommitsAllFindings(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	repo := s.Risks()

	when := time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
	dims := []string{"cognitive", "ethical", "epistemic", "technical", "governance"}
	recs := make([]*RiskRecord, len(dims))
	for i, d := range dims {
		recs[i] = &RiskRecord{
			RiskID: "rb-" + d, SessionID: "sess-b", StudentID: "stu-1",
			Type: d + "_finding", Level: "low", Dimension: d,
			Description: "d", Timestamp: when,
		}
	}

	saved, err := repo.AppendBatch(ctx, recs)
	if err != nil {
		t.Fatalf("AppendBatch: %v", err)
	}
	if len(saved) != len(dims) {
		t.Fatalf("saved = %d, want %d", len(saved), len(dims))
	}
	for i := 1; i < len(saved); i++ {
		if saved[i].Sequence <= saved[i-1].Sequence {
			t.Errorf("sequence not increasing: %d then %d", saved[i-1].Sequence, saved[i].Sequence)
		}
	}
	for _, r := range saved {
		if !r.Timestamp.Equal(when) {
			t.Errorf("timestamp = %v, want %v", r.Timestamp, when)
		}
	}

	rows, err := repo.BySession(ctx, "sess-b", RiskFilter{})
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	if len(rows) != len(dims) {
		t.Errorf("persisted = %d, want %d", len(rows), len(dims))
	}
}

func TestEvaluationOnePerSession(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	repo := s.Evaluations()

	first, err := repo.Save(ctx, &EvaluationRecord{
		ReportID: "rep-1", SessionID: "sess-1", StudentID: "stu-1",
		Competency: "competent", OverallScore: 0.6,
		Dimensions: map[string]float64{"autonomy": 0.7},
	}, false)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A second save without replace returns the stored report.
	second, err := repo.Save(ctx, &EvaluationRecord{
		ReportID: "rep-2", SessionID: "sess-1", StudentID: "stu-1",
		Competency: "expert", OverallScore: 0.9,
	}, false)
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if second.ReportID != first.ReportID {
		t.Errorf("report replaced without replace flag")
	}

	replaced, err := repo.Save(ctx, &EvaluationRecord{
		ReportID: "rep-3", SessionID: "sess-1", StudentID: "stu-1",
		Competency: "proficient", OverallScore: 0.75,
	}, true)
	if err != nil {
		t.Fatalf("replace Save: %v", err)
	}
	if replaced.ReportID != "rep-3" {
		t.Errorf("replace kept %s", replaced.ReportID)
	}

	got, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	if got.ReportID != "rep-3" || got.Competency != "proficient" {
		t.Errorf("stored report = %+v", got)
	}

	if _, err := repo.BySession(ctx, "sess-none"); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("missing report: %v", err)
	}
}

func TestActivityPolicy(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	repo := s.Activities()

	p := governance.DefaultPolicy()
	p.MaxHelpLevel = 2
	p.RequireJustification = true

	err := repo.Create(ctx, &ActivityRecord{
		ActivityID: "act-1", TeacherID: "tea-1", Name: "Recursion lab", Policy: p,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, "act-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Policy.MaxHelpLevel != 2 || !got.Policy.RequireJustification {
		t.Errorf("policy = %+v", got.Policy)
	}

	// Unknown activities fall back to the default policy.
	fallback, err := repo.Policy(ctx, "act-unknown")
	if err != nil {
		t.Fatalf("Policy fallback: %v", err)
	}
	if !reflect.DeepEqual(fallback, governance.DefaultPolicy()) {
		t.Errorf("fallback = %+v", fallback)
	}
	empty, err := repo.Policy(ctx, "")
	if err != nil {
		t.Fatalf("Policy empty: %v", err)
	}
	if empty.MaxHelpLevel != governance.DefaultPolicy().MaxHelpLevel {
		t.Errorf("empty activity policy = %+v", empty)
	}

	// Only the owner may update the policy.
	p.MaxHelpLevel = 4
	if err := repo.UpdatePolicy(ctx, "act-1", "tea-2", p); !errors.Is(err, ErrNotActivityOwner) {
		t.Errorf("non-owner update: %v", err)
	}
	if err := repo.UpdatePolicy(ctx, "act-1", "tea-1", p); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	got, _ = repo.Get(ctx, "act-1")
	if got.Policy.MaxHelpLevel != 4 {
		t.Errorf("updated policy = %+v", got.Policy)
	}

	if _, err := repo.Get(ctx, "act-none"); !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("missing activity: %v", err)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "interaction", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "interaction", InputTokens: 120, OutputTokens: 60, LatencyMs: 1000, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "evaluation", InputTokens: 400, OutputTokens: 200, LatencyMs: 2000, Success: false, ErrorMessage: "timeout"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	listed, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("listed = %d", len(listed))
	}
	// Newest first.
	if listed[0].Purpose != "evaluation" {
		t.Errorf("first listed = %s", listed[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, listed[0].ID)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if got == nil || got.ErrorMessage != "timeout" {
		t.Errorf("event = %+v", got)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	byPurpose := map[string]*LLMUsage{}
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}
	inter := byPurpose["interaction"]
	if inter == nil || inter.Calls != 2 || inter.InputTokens != 220 {
		t.Errorf("interaction usage = %+v", inter)
	}
}
