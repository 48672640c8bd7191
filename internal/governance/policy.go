package governance

// Policy is an activity's configured pedagogical policy. Consumed by the
// pre-generation check and by the risk scanner's thresholds.
type Policy struct {
	// MaxHelpLevel bounds how much scaffolding agents may provide:
	// 1 = orientation only, up to 5 = worked examples.
	MaxHelpLevel int `yaml:"max_help_level"`

	// BlockCompleteSolutions refuses prompts that ask for a full solution.
	BlockCompleteSolutions bool `yaml:"block_complete_solutions"`

	// RequireJustification expects students to explain their reasoning;
	// its absence is an epistemic-risk signal, not a block.
	RequireJustification bool `yaml:"require_justification"`

	// DelegationThreshold is the ceiling for the moving average of
	// AI-involvement over recent history before interactions are blocked.
	DelegationThreshold float64 `yaml:"delegation_threshold"`

	// RiskThresholds carries per-risk-type numeric thresholds used by the
	// scanner to derive severity. Keys are risk type tags.
	RiskThresholds map[string]float64 `yaml:"risk_thresholds"`
}

// DefaultPolicy mirrors the defaults a fresh activity gets.
func DefaultPolicy() Policy {
	return Policy{
		MaxHelpLevel:           3,
		BlockCompleteSolutions: true,
		RequireJustification:   false,
		DelegationThreshold:    0.7,
	}
}

// Threshold returns the policy threshold for a risk type, or fallback when
// the policy does not configure one.
func (p Policy) Threshold(riskType string, fallback float64) float64 {
	if v, ok := p.RiskThresholds[riskType]; ok {
		return v
	}
	return fallback
}
