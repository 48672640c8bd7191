package risk

import (
	"fmt"
	"testing"

	"github.com/praxislabs/praxis/internal/governance"
	"github.com/praxislabs/praxis/internal/store"
)

func snapshot(traces ...*store.TraceRecord) *Snapshot {
	return &Snapshot{
		SessionID:  "sess-1",
		StudentID:  "stu-1",
		ActivityID: "act-1",
		Policy:     governance.DefaultPolicy(),
		Traces:     traces,
	}
}

func prompt(id, state, content string) *store.TraceRecord {
	return &store.TraceRecord{TraceID: id, SessionID: "sess-1", Type: store.TypeStudentPrompt, State: state, Content: content}
}

func response(id, content string, involvement float64) *store.TraceRecord {
	return &store.TraceRecord{TraceID: id, SessionID: "sess-1", Type: store.TypeAgentResponse, Content: content, AIInvolvement: involvement}
}

func findingsOfType(fs []Finding, typ string) []Finding {
	var out []Finding
	for _, f := range fs {
		if f.Type == typ {
			out = append(out, f)
		}
	}
	return out
}

func TestDelegationCheckFiresAboveThreshold(t *testing.T) {
	var traces []*store.TraceRecord
	for i := 0; i < 5; i++ {
		traces = append(traces, response(fmt.Sprintf("t%d", i), "here", 0.9))
	}
	s := snapshot(traces...)

	fs := (&delegationCheck{}).Run(s)
	if len(fs) != 1 {
		t.Fatalf("findings = %d, want 1", len(fs))
	}
	f := fs[0]
	if f.Dimension != DimCognitive {
		t.Errorf("dimension = %s", f.Dimension)
	}
	// 0.9 / 0.7 ≈ 1.29, inside the high band.
	if f.Level != LevelHigh {
		t.Errorf("level = %s, want high", f.Level)
	}
	if len(f.TraceIDs) != 5 {
		t.Errorf("trace ids = %d, want the window", len(f.TraceIDs))
	}
}

func TestDelegationCheckNeedsFullWindow(t *testing.T) {
	s := snapshot(
		response("t0", "x", 1.0),
		response("t1", "x", 1.0),
		response("t2", "x", 1.0),
		response("t3", "x", 1.0),
	)
	if fs := (&delegationCheck{}).Run(s); fs != nil {
		t.Fatalf("expected no findings with %d responses", 4)
	}
}

func TestDelegationCheckUsesRecentWindowOnly(t *testing.T) {
	// Heavy early reliance, then recovery: the recent window is clean.
	var traces []*store.TraceRecord
	for i := 0; i < 5; i++ {
		traces = append(traces, response(fmt.Sprintf("old%d", i), "x", 1.0))
	}
	for i := 0; i < 5; i++ {
		traces = append(traces, response(fmt.Sprintf("new%d", i), "x", 0.2))
	}
	if fs := (&delegationCheck{}).Run(snapshot(traces...)); fs != nil {
		t.Fatal("recovered session should not be flagged")
	}
}

func TestDelegationCheckHonorsPolicyOverride(t *testing.T) {
	s := snapshot(
		response("t0", "x", 0.5), response("t1", "x", 0.5), response("t2", "x", 0.5),
		response("t3", "x", 0.5), response("t4", "x", 0.5),
	)
	s.Policy.RiskThresholds = map[string]float64{"excessive_delegation": 0.3}

	fs := (&delegationCheck{}).Run(s)
	if len(fs) != 1 {
		t.Fatalf("override threshold should fire, got %d findings", len(fs))
	}
	// 0.5 / 0.3 ≈ 1.67.
	if fs[0].Level != LevelCritical {
		t.Errorf("level = %s, want critical", fs[0].Level)
	}
}

func TestIntegrityCheck(t *testing.T) {
	s := snapshot(
		prompt("t0", "EXPLORATION", "What is a binary heap?"),
		prompt("t1", "IMPLEMENTATION", "Write this so I can submit it tonight"),
	)

	fs := (&integrityCheck{}).Run(s)
	if len(fs) != 1 {
		t.Fatalf("findings = %d, want 1", len(fs))
	}
	if fs[0].Dimension != DimEthical || fs[0].Level != LevelHigh {
		t.Errorf("got %s/%s", fs[0].Dimension, fs[0].Level)
	}
	if len(fs[0].TraceIDs) != 1 || fs[0].TraceIDs[0] != "t1" {
		t.Errorf("trace ids = %v", fs[0].TraceIDs)
	}
}

func TestVerbatimReuseCheck(t *testing.T) {
	s := snapshot(
		prompt("t0", "EXPLORATION", "how do I reverse a linked list"),
		prompt("t1", "EXPLORATION", "How do I  reverse a linked list"),
		prompt("t2", "EXPLORATION", "HOW DO I REVERSE A LINKED LIST"),
		prompt("t3", "EXPLORATION", "what about doubly linked lists"),
	)

	fs := (&verbatimReuseCheck{}).Run(s)
	if len(fs) != 1 {
		t.Fatalf("findings = %d, want 1", len(fs))
	}
	if fs[0].Dimension != DimEpistemic {
		t.Errorf("dimension = %s", fs[0].Dimension)
	}
	if len(fs[0].TraceIDs) != 3 {
		t.Errorf("trace ids = %v, want the three repeats", fs[0].TraceIDs)
	}
}

func TestUnvalidatedCodeCheck(t *testing.T) {
	s := snapshot(
		response("t0", "try this:\n```go\nfunc f() {}\n```", 0.5),
		prompt("t1", "IMPLEMENTATION", "now the next part"),
		response("t2", "and this:\n```go\nfunc g() {}\n```", 0.5),
	)

	fs := (&unvalidatedCodeCheck{}).Run(s)
	if len(fs) != 1 {
		t.Fatalf("findings = %d, want 1", len(fs))
	}
	if fs[0].Dimension != DimTechnical {
		t.Errorf("dimension = %s", fs[0].Dimension)
	}
}

func TestUnvalidatedCodeCheckResetOnValidationTurn(t *testing.T) {
	s := snapshot(
		response("t0", "```go\nfunc f() {}\n```", 0.5),
		response("t1", "```go\nfunc g() {}\n```", 0.5),
		prompt("t2", "VALIDATION", "I ran it, all three tests pass"),
	)
	if fs := (&unvalidatedCodeCheck{}).Run(s); fs != nil {
		t.Fatal("a validation turn should clear the run")
	}
}

func TestJustificationCheckOnlyWhenRequired(t *testing.T) {
	traces := []*store.TraceRecord{
		prompt("t0", "IMPLEMENTATION", "give me a hint for the insert function"),
		prompt("t1", "IMPLEMENTATION", "I chose chaining because resizing is simpler, how do I grow buckets?"),
	}

	s := snapshot(traces...)
	if fs := (&justificationCheck{}).Run(s); fs != nil {
		t.Fatal("default policy does not require justification")
	}

	s.Policy.RequireJustification = true
	fs := (&justificationCheck{}).Run(s)
	if len(fs) != 1 {
		t.Fatalf("findings = %d, want 1", len(fs))
	}
	if fs[0].Dimension != DimGovernance {
		t.Errorf("dimension = %s", fs[0].Dimension)
	}
	if len(fs[0].TraceIDs) != 1 || fs[0].TraceIDs[0] != "t0" {
		t.Errorf("only the unjustified prompt should be cited, got %v", fs[0].TraceIDs)
	}
}

func TestScannerCombinesIndependentChecks(t *testing.T) {
	var traces []*store.TraceRecord
	for i := 0; i < 5; i++ {
		traces = append(traces, response(fmt.Sprintf("r%d", i), "x", 0.95))
	}
	traces = append(traces, prompt("p0", "IMPLEMENTATION", "write it for me so I can submit it"))

	fs := NewScanner().Scan(snapshot(traces...))
	if len(findingsOfType(fs, "excessive_delegation")) != 1 {
		t.Error("missing delegation finding")
	}
	if len(findingsOfType(fs, "integrity_concern")) != 1 {
		t.Error("missing integrity finding")
	}
	for _, f := range fs {
		if f.Dimension == "" {
			t.Errorf("finding %s has no dimension", f.Type)
		}
	}
}

func TestScannerEmptySession(t *testing.T) {
	if fs := NewScanner().Scan(snapshot()); len(fs) != 0 {
		t.Fatalf("empty session produced findings: %v", fs)
	}
}

func TestSeverityByRatio(t *testing.T) {
	tests := []struct {
		value, threshold float64
		want             string
	}{
		{0.71, 0.7, LevelLow},
		{0.78, 0.7, LevelMedium},
		{0.88, 0.7, LevelHigh},
		{1.05, 0.7, LevelCritical},
		{0.5, 0, LevelCritical},
	}
	for _, tt := range tests {
		if got := severityByRatio(tt.value, tt.threshold); got != tt.want {
			t.Errorf("severityByRatio(%v, %v) = %s, want %s", tt.value, tt.threshold, got, tt.want)
		}
	}
}
