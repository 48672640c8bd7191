package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/store"
)

type stubSource struct {
	p   llm.Provider
	err error
}

func (s *stubSource) GetProvider(_ context.Context) (llm.Provider, error) {
	return s.p, s.err
}

func textResponse(s string) llm.MockResponse {
	raw, _ := json.Marshal(s)
	return llm.MockResponse{Content: raw, Usage: llm.Usage{InputTokens: 10, OutputTokens: 20}}
}

func newTestGateway(t *testing.T, p llm.Provider) (*Gateway, *store.Store) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	g, err := New(st, &stubSource{p: p}, Options{})
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}
	t.Cleanup(g.Close)
	return g, st
}

func startSession(t *testing.T, g *Gateway) *store.SessionRecord {
	t.Helper()
	sess, err := g.StartSession(context.Background(), "stu-1", "", store.ModeTutor)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return sess
}

func TestProcessInteractionNormalTurn(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(textResponse("What do you already know about hash functions?"))
	g, st := newTestGateway(t, mock)
	sess := startSession(t, g)

	res, err := g.ProcessInteraction(ctx, sess.SessionID, "What is a hash map?")
	if err != nil {
		t.Fatalf("ProcessInteraction: %v", err)
	}
	if res.Blocked {
		t.Fatalf("conceptual question blocked: %s", res.BlockReason)
	}
	if res.Agent != "cognitive_tutor" {
		t.Errorf("agent = %s", res.Agent)
	}
	if res.AIInvolvement >= 0.5 {
		t.Errorf("tutor involvement = %v, want < 0.5", res.AIInvolvement)
	}
	if res.InputTraceID == "" || res.OutputTraceID == "" {
		t.Error("both trace ids should be set")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}

	traces, err := st.Traces().BySession(ctx, sess.SessionID, store.QueryOpts{})
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	if len(traces) != 2 {
		t.Fatalf("traces = %d, want input and output", len(traces))
	}
	if traces[0].Type != store.TypeStudentPrompt || traces[1].Type != store.TypeAgentResponse {
		t.Errorf("trace types = %s, %s", traces[0].Type, traces[1].Type)
	}
	if traces[0].Sequence >= traces[1].Sequence {
		t.Error("input trace must precede output trace in sequence")
	}
}

func TestProcessInteractionBlocked(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(textResponse("should never be used"))
	g, st := newTestGateway(t, mock)
	sess := startSession(t, g)

	res, err := g.ProcessInteraction(ctx, sess.SessionID, "Just give me the complete code for the assignment")
	if err != nil {
		t.Fatalf("ProcessInteraction: %v", err)
	}
	if !res.Blocked {
		t.Fatal("solution request should be blocked under the default policy")
	}
	if res.BlockReason == "" {
		t.Error("block reason must be set")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0 for a blocked turn", mock.CallCount())
	}

	traces, _ := st.Traces().BySession(ctx, sess.SessionID, store.QueryOpts{})
	if len(traces) != 1 {
		t.Fatalf("traces = %d, want exactly one for a blocked turn", len(traces))
	}
	if traces[0].Metadata["blocked"] != "true" {
		t.Errorf("blocked trace metadata = %v", traces[0].Metadata)
	}
}

func TestProcessInteractionCacheIdempotence(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(textResponse("Think about collisions first."))
	g, st := newTestGateway(t, mock)
	sess := startSession(t, g)

	first, err := g.ProcessInteraction(ctx, sess.SessionID, "What is a hash map?")
	if err != nil {
		t.Fatalf("first turn: %v", err)
	}
	second, err := g.ProcessInteraction(ctx, sess.SessionID, "What is a hash map?")
	if err != nil {
		t.Fatalf("second turn: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1 (second served from cache)", mock.CallCount())
	}
	if first.Response != second.Response {
		t.Error("cached turn should return the identical response")
	}
	if first.OutputTraceID == second.OutputTraceID {
		t.Error("each turn writes its own output trace even on a cache hit")
	}

	traces, _ := st.Traces().BySession(ctx, sess.SessionID, store.QueryOpts{})
	if len(traces) != 4 {
		t.Fatalf("traces = %d, want 2 per turn", len(traces))
	}
}

func TestProcessInteractionProviderFailure(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("upstream down")})
	g, st := newTestGateway(t, mock)
	sess := startSession(t, g)

	_, err := g.ProcessInteraction(ctx, sess.SessionID, "What is a hash map?")
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ProviderError", err)
	}

	traces, _ := st.Traces().BySession(ctx, sess.SessionID, store.QueryOpts{})
	if len(traces) != 2 {
		t.Fatalf("traces = %d, want input plus failure marker", len(traces))
	}
	if traces[1].Type != store.TypeSystemEvent {
		t.Errorf("failure trace type = %s", traces[1].Type)
	}
	if traces[1].Metadata["error"] == "" {
		t.Error("failure trace should carry the error")
	}
}

func TestProcessInteractionValidation(t *testing.T) {
	ctx := context.Background()
	g, _ := newTestGateway(t, llm.NewMockProvider())

	if _, err := g.ProcessInteraction(ctx, "no-such-session", "hello"); !errors.Is(err, store.ErrSessionNotFound) {
		t.Errorf("unknown session error = %v", err)
	}

	sess := startSession(t, g)
	if _, err := g.ProcessInteraction(ctx, sess.SessionID, "   "); !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("empty prompt error = %v", err)
	}

	if err := g.Transition(ctx, sess.SessionID, store.StatusCompleted); err != nil {
		t.Fatalf("transition: %v", err)
	}
	if _, err := g.ProcessInteraction(ctx, sess.SessionID, "hello"); !errors.Is(err, store.ErrSessionNotActive) {
		t.Errorf("completed session error = %v", err)
	}
}

func TestReflectionTurnSkipsProvider(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider() // empty: any call would fail
	g, _ := newTestGateway(t, mock)
	sess := startSession(t, g)

	res, err := g.ProcessInteraction(ctx, sess.SessionID, "Looking back, what did I learn this session?")
	if err != nil {
		t.Fatalf("ProcessInteraction: %v", err)
	}
	if res.Agent != "traceability" {
		t.Errorf("agent = %s, want traceability for a reflection turn", res.Agent)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0 for a deterministic handler", mock.CallCount())
	}
}

func TestScanSessionPersistsAndDeduplicates(t *testing.T) {
	ctx := context.Background()
	g, st := newTestGateway(t, llm.NewMockProvider())
	sess := startSession(t, g)

	// Seed a session shape the cognitive check fires on.
	for i := 0; i < 5; i++ {
		if _, err := st.Traces().Append(ctx, &store.TraceRecord{
			TraceID:       uuid.NewString(),
			SessionID:     sess.SessionID,
			Level:         store.LevelCognitive,
			Type:          store.TypeAgentResponse,
			Content:       "generated content",
			AIInvolvement: 0.95,
		}); err != nil {
			t.Fatalf("seed trace: %v", err)
		}
	}

	found, err := g.ScanSession(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("ScanSession: %v", err)
	}
	if len(found) == 0 {
		t.Fatal("expected delegation finding")
	}
	for _, r := range found {
		if r.Dimension == "" {
			t.Errorf("finding %s has no dimension", r.Type)
		}
	}

	again, err := g.ScanSession(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("rescan: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("rescan of unchanged session recorded %d new findings", len(again))
	}

	risks, _ := st.Risks().BySession(ctx, sess.SessionID, store.RiskFilter{})
	if len(risks) != len(found) {
		t.Errorf("persisted risks = %d, want %d", len(risks), len(found))
	}
}

func TestEvaluateSessionIdempotent(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(textResponse("Start from what the structure must support."))
	g, _ := newTestGateway(t, mock)
	sess := startSession(t, g)

	if _, err := g.ProcessInteraction(ctx, sess.SessionID, "What is a hash map?"); err != nil {
		t.Fatalf("seed interaction: %v", err)
	}
	if err := g.Transition(ctx, sess.SessionID, store.StatusCompleted); err != nil {
		t.Fatalf("transition: %v", err)
	}

	first, err := g.EvaluateSession(ctx, sess.SessionID, false)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if first.Competency == "" || first.Dimensions == nil {
		t.Error("report incomplete")
	}

	second, err := g.EvaluateSession(ctx, sess.SessionID, false)
	if err != nil {
		t.Fatalf("re-evaluate: %v", err)
	}
	if second.ReportID != first.ReportID {
		t.Error("second evaluation should return the stored report")
	}

	replaced, err := g.EvaluateSession(ctx, sess.SessionID, true)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if replaced.ReportID == first.ReportID {
		t.Error("replace should regenerate the report")
	}
}

func TestEvaluateSessionReportLookupFailure(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider()
	g, st := newTestGateway(t, mock)
	sess := startSession(t, g)

	// Break only the report table: the lookup error must surface instead
	// of being mistaken for a missing report and triggering regeneration.
	if _, err := st.DB().Exec("DROP TABLE evaluation_reports"); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	_, err := g.EvaluateSession(ctx, sess.SessionID, false)
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want a persistence error", err)
	}
}

func TestCloseDrainsScanQueue(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(textResponse("hint"))
	g, st := newTestGateway(t, mock)
	sess := startSession(t, g)

	if _, err := g.ProcessInteraction(ctx, sess.SessionID, "What is a hash map?"); err != nil {
		t.Fatalf("interaction: %v", err)
	}

	g.Close() // must wait for the queued scan to finish

	// The scan ran to completion; querying must not race with the worker.
	if _, err := st.Risks().BySession(ctx, sess.SessionID, store.RiskFilter{}); err != nil {
		t.Fatalf("risks after close: %v", err)
	}
}
