package agents

import (
	"testing"

	"github.com/praxislabs/praxis/internal/classify"
)

func TestDispatcherSelect(t *testing.T) {
	d := NewDispatcher()

	tests := []struct {
		name string
		mode Mode
		c    classify.Classification
		want string
	}{
		{"tutor default", ModeTutor, classify.Classification{State: classify.StateExploration, Intent: classify.IntentConceptual}, "cognitive_tutor"},
		{"evaluator mode", ModeEvaluator, classify.Classification{State: classify.StateImplementation, Intent: classify.IntentGuidance}, "evaluator"},
		{"simulator mode", ModeSimulator, classify.Classification{State: classify.StatePlanning, Intent: classify.IntentGuidance}, "simulator"},
		{"risk analyst mode", ModeRiskAnalyst, classify.Classification{State: classify.StateDebugging, Intent: classify.IntentGuidance}, "risk_analyst"},
		{"unknown mode falls back to tutor", Mode("bogus"), classify.Classification{State: classify.StateExploration, Intent: classify.IntentUnknown}, "cognitive_tutor"},
		{"reflection overrides mode", ModeSimulator, classify.Classification{State: classify.StateReflection, Intent: classify.IntentReflection}, "traceability"},
		{"solution request routes to governance", ModeTutor, classify.Classification{State: classify.StateImplementation, Intent: classify.IntentSolutionRequest}, "governance"},
		{"solution request in evaluator mode too", ModeEvaluator, classify.Classification{State: classify.StateImplementation, Intent: classify.IntentSolutionRequest}, "governance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Select(tt.mode, tt.c)
			if got.Name() != tt.want {
				t.Fatalf("Select(%s, %+v) = %s, want %s", tt.mode, tt.c, got.Name(), tt.want)
			}
		})
	}
}
