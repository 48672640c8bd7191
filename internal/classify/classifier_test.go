package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		prompt     string
		hasCode    bool
		wantState  State
		wantIntent Intent
	}{
		{"conceptual question", "What is a binary search tree?", false, StateUnderstanding, IntentConceptual},
		{"why question", "why does quicksort degrade on sorted input?", false, StateUnderstanding, IntentConceptual},
		{"planning ask", "How should I approach building the parser?", false, StatePlanning, IntentGuidance},
		{"debugging", "my function fails with an index error", false, StateDebugging, IntentGuidance},
		{"validation ask", "is this correct? I used a two-pointer sweep", false, StateValidation, IntentValidation},
		{"solution request", "just give me the complete code", false, StateImplementation, IntentSolutionRequest},
		{"solution request spanish", "dame el código completo", false, StateImplementation, IntentSolutionRequest},
		{"code attached", "here is my attempt", true, StateImplementation, IntentGuidance},
		{"reflection", "Looking back, I learned to test earlier", false, StateReflection, IntentReflection},
		{"ambiguous", "hmm let me see", false, StateExploration, IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(&Input{Prompt: tt.prompt, HasCode: tt.hasCode})
			if got.State != tt.wantState || got.Intent != tt.wantIntent {
				t.Fatalf("Classify(%q) = %s/%s, want %s/%s",
					tt.prompt, got.State, got.Intent, tt.wantState, tt.wantIntent)
			}
		})
	}
}

func TestSolutionRequestWinsOverConceptualVocabulary(t *testing.T) {
	// A delegating prompt dressed up as a conceptual one still counts as a
	// solution request.
	got := Classify(&Input{Prompt: "Explain and just give me the working code"})
	if got.Intent != IntentSolutionRequest {
		t.Fatalf("intent = %s, want solution request to win", got.Intent)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	got := Classify(&Input{Prompt: "JUST GIVE ME the answer"})
	if got.Intent != IntentSolutionRequest {
		t.Fatalf("intent = %s", got.Intent)
	}
}

func TestDefaultIsFailSafe(t *testing.T) {
	got := Classify(&Input{Prompt: "zzz"})
	if got.State != StateExploration || got.Intent != IntentUnknown || got.Matched != "default" {
		t.Fatalf("default classification = %+v", got)
	}
}

func TestMatchedReportsRule(t *testing.T) {
	got := Classify(&Input{Prompt: "what is recursion"})
	if got.Matched != "conceptual" {
		t.Fatalf("matched = %s", got.Matched)
	}
}
