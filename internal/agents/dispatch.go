package agents

import (
	"github.com/praxislabs/praxis/internal/classify"
)

// Dispatcher maps a (mode, classification) pair to one of the six handlers.
type Dispatcher struct {
	tutor        Handler
	evaluator    Handler
	simulator    Handler
	riskAnalyst  Handler
	governance   Handler
	traceability Handler
}

// NewDispatcher wires the closed handler set.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		tutor:        &TutorAgent{},
		evaluator:    &EvaluatorAgent{},
		simulator:    &SimulatorAgent{},
		riskAnalyst:  &RiskAnalystAgent{},
		governance:   &GovernanceAgent{},
		traceability: &TraceabilityAgent{},
	}
}

// Select picks the handler for one interaction. Two classifications route
// across modes: a reflection turn goes to the traceability reporter, and a
// solution request that governance chose to allow (permissive policy) goes
// to the governance agent, which answers with a caution rather than a
// solution.
func (d *Dispatcher) Select(mode Mode, c classify.Classification) Handler {
	if c.State == classify.StateReflection {
		return d.traceability
	}
	if c.Intent == classify.IntentSolutionRequest {
		return d.governance
	}

	switch mode {
	case ModeEvaluator:
		return d.evaluator
	case ModeSimulator:
		return d.simulator
	case ModeRiskAnalyst:
		return d.riskAnalyst
	default:
		return d.tutor
	}
}
