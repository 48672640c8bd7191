package governance

import (
	"strings"
	"testing"

	"github.com/praxislabs/praxis/internal/classify"
)

func TestCheckBlocksSolutionRequest(t *testing.T) {
	c := classify.Classification{State: classify.StateImplementation, Intent: classify.IntentSolutionRequest}

	d := Check(c, DefaultPolicy(), nil)
	if d.Allowed {
		t.Fatal("solution request should be blocked under the default policy")
	}
	if d.Reason == "" {
		t.Error("block decision must carry a reason")
	}
}

func TestCheckPermissivePolicyAllowsSolutionRequest(t *testing.T) {
	c := classify.Classification{State: classify.StateImplementation, Intent: classify.IntentSolutionRequest}

	p := DefaultPolicy()
	p.BlockCompleteSolutions = false

	if d := Check(c, p, nil); !d.Allowed {
		t.Fatalf("permissive policy should allow: %s", d.Reason)
	}
}

func TestCheckDelegationThreshold(t *testing.T) {
	c := classify.Classification{State: classify.StateUnderstanding, Intent: classify.IntentConceptual}
	p := DefaultPolicy()

	heavy := []float64{0.9, 0.8, 0.85, 0.9, 0.95}
	d := Check(c, p, heavy)
	if d.Allowed {
		t.Fatal("sustained high involvement should block")
	}
	if !strings.Contains(d.Reason, "delegation threshold") {
		t.Errorf("reason = %q", d.Reason)
	}

	light := []float64{0.2, 0.3, 0.1, 0.25, 0.3}
	if d := Check(c, p, light); !d.Allowed {
		t.Fatalf("light involvement blocked: %s", d.Reason)
	}
}

func TestCheckWindowForgivesOldHistory(t *testing.T) {
	c := classify.Classification{State: classify.StateUnderstanding, Intent: classify.IntentConceptual}
	p := DefaultPolicy()

	// Heavy early use followed by five independent turns: only the recent
	// window counts.
	involvement := []float64{1.0, 1.0, 1.0, 1.0, 1.0, 0.1, 0.1, 0.1, 0.1, 0.1}
	if d := Check(c, p, involvement); !d.Allowed {
		t.Fatalf("recovered student blocked: %s", d.Reason)
	}
}

func TestCheckNoHistoryAllows(t *testing.T) {
	c := classify.Classification{State: classify.StateExploration, Intent: classify.IntentUnknown}
	if d := Check(c, DefaultPolicy(), nil); !d.Allowed {
		t.Fatalf("first turn blocked: %s", d.Reason)
	}
}

func TestThresholdLookup(t *testing.T) {
	p := DefaultPolicy()
	p.RiskThresholds = map[string]float64{"excessive_delegation": 0.5}

	if got := p.Threshold("excessive_delegation", 0.7); got != 0.5 {
		t.Errorf("configured threshold = %v", got)
	}
	if got := p.Threshold("unvalidated_code", 0.7); got != 0.7 {
		t.Errorf("fallback threshold = %v", got)
	}
}
