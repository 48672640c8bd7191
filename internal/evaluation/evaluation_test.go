package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/store"
)

func sessionInput() *Input {
	return &Input{
		SessionID: "sess-1",
		StudentID: "stu-1",
		Traces: []*store.TraceRecord{
			{TraceID: "t0", Type: store.TypeStudentPrompt, State: "EXPLORATION", Content: "what is a trie?"},
			{TraceID: "t1", Type: store.TypeAgentResponse, Content: "what problems have you seen prefixes in?", AIInvolvement: 0.3},
			{TraceID: "t2", Type: store.TypeStudentPrompt, State: "IMPLEMENTATION", Content: "building insert now"},
			{TraceID: "t3", Type: store.TypeAgentResponse, Content: "sketch the node struct first", AIInvolvement: 0.5},
			{TraceID: "t4", Type: store.TypeStudentPrompt, State: "VALIDATION", Content: "my tests pass for lookups"},
			{TraceID: "t5", Type: store.TypeAgentResponse, Content: "good, try deletion edge cases", AIInvolvement: 0.4},
		},
	}
}

func modelReport() llm.MockResponse {
	raw, _ := json.Marshal(map[string]any{
		"competency":    CompetencyCompetent,
		"overall_score": 0.62,
		"dimensions": map[string]float64{
			"understanding":       0.7,
			"problem_solving":     0.6,
			"autonomy":            0.65,
			"validation_practice": 0.6,
			"reflection":          0.2,
		},
		"strengths":    []string{"wrote tests before asking for review"},
		"improvements": []string{"reflect at the end of the session"},
	})
	return llm.MockResponse{Content: raw}
}

func TestGenerateFromModel(t *testing.T) {
	mock := llm.NewMockProvider(modelReport())
	g := NewGenerator(mock)

	res, err := g.Generate(context.Background(), sessionInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Heuristic {
		t.Error("model path should not be marked heuristic")
	}
	if res.Competency != CompetencyCompetent {
		t.Errorf("competency = %s", res.Competency)
	}
	if res.OverallScore != 0.62 {
		t.Errorf("overall = %v", res.OverallScore)
	}
	// (0.3 + 0.5 + 0.4) / 3
	if res.AIDependency < 0.39 || res.AIDependency > 0.41 {
		t.Errorf("ai dependency = %v, want mean of response involvement", res.AIDependency)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "session-evaluation" {
		t.Error("request should carry the evaluation schema")
	}
	if !strings.Contains(req.Messages[0].Content, "what is a trie?") {
		t.Error("prompt should embed the session timeline")
	}
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	g := NewGenerator(mock)

	res, err := g.Generate(context.Background(), sessionInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !res.Heuristic {
		t.Error("provider failure should fall back to the heuristic")
	}
	if res.Competency == "" || res.Dimensions == nil {
		t.Error("heuristic report incomplete")
	}
}

func TestGenerateFallsBackOnBadPayload(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"competency":    CompetencyExpert,
		"overall_score": 1.7, // out of range
		"dimensions":    map[string]float64{},
		"strengths":     []string{},
		"improvements":  []string{},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	g := NewGenerator(mock)

	res, err := g.Generate(context.Background(), sessionInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !res.Heuristic {
		t.Error("out-of-range payload should fall back to the heuristic")
	}
}

func TestGenerateWithoutProvider(t *testing.T) {
	g := NewGenerator(nil)

	res, err := g.Generate(context.Background(), sessionInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !res.Heuristic {
		t.Error("nil provider should use the heuristic")
	}
	for _, k := range dimensionKeys {
		v, ok := res.Dimensions[k]
		if !ok {
			t.Errorf("missing dimension %s", k)
		}
		if v < 0 || v > 1 {
			t.Errorf("dimension %s = %v out of range", k, v)
		}
	}
}

func TestGenerateEmptySession(t *testing.T) {
	g := NewGenerator(nil)
	if _, err := g.Generate(context.Background(), &Input{SessionID: "sess-empty"}); err == nil {
		t.Fatal("expected error for a session with no traces")
	}
}

func TestHeuristicPenalizesUnresolvedRisks(t *testing.T) {
	clean := heuristic(sessionInput())

	risky := sessionInput()
	risky.Risks = []*store.RiskRecord{
		{RiskID: "r1", Level: "critical", Dimension: "cognitive", Description: "x"},
		{RiskID: "r2", Level: "medium", Dimension: "technical", Description: "y"},
	}
	flagged := heuristic(risky)

	if flagged.OverallScore >= clean.OverallScore {
		t.Errorf("risky session scored %v, clean %v", flagged.OverallScore, clean.OverallScore)
	}

	resolved := sessionInput()
	resolved.Risks = []*store.RiskRecord{
		{RiskID: "r1", Level: "critical", Dimension: "cognitive", Description: "x", Resolved: true},
	}
	if got := heuristic(resolved).OverallScore; got != clean.OverallScore {
		t.Errorf("resolved risks should not penalize: got %v, want %v", got, clean.OverallScore)
	}
}

func TestCompetencyBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.9, CompetencyExpert},
		{0.75, CompetencyProficient},
		{0.55, CompetencyCompetent},
		{0.35, CompetencyAdvancedBeginner},
		{0.1, CompetencyNovice},
	}
	for _, tt := range tests {
		if got := competencyFor(tt.score); got != tt.want {
			t.Errorf("competencyFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestAIDependencyNoResponses(t *testing.T) {
	traces := []*store.TraceRecord{
		{TraceID: "t0", Type: store.TypeStudentPrompt, State: "EXPLORATION", Content: "hello"},
	}
	if got := aiDependency(traces); got != 0 {
		t.Errorf("aiDependency = %v, want 0", got)
	}
}
