package classify

import "strings"

// State is the problem-solving phase a student utterance reflects.
type State string

const (
	StateExploration    State = "EXPLORATION"
	StateUnderstanding  State = "UNDERSTANDING"
	StatePlanning       State = "PLANNING"
	StateImplementation State = "IMPLEMENTATION"
	StateDebugging      State = "DEBUGGING"
	StateValidation     State = "VALIDATION"
	StateReflection     State = "REFLECTION"
)

// Intent is what the student is asking the system to do.
type Intent string

const (
	IntentConceptual      Intent = "CONCEPTUAL"
	IntentGuidance        Intent = "GUIDANCE"
	IntentSolutionRequest Intent = "SOLUTION_REQUEST"
	IntentValidation      Intent = "VALIDATION"
	IntentReflection      Intent = "REFLECTION"
	IntentUnknown         Intent = "UNKNOWN"
)

// Classification is the combined result of one classify pass.
type Classification struct {
	State  State
	Intent Intent
	// Matched is the name of the rule that fired, or "default".
	Matched string
}

// Input carries the prompt plus lightweight signals from the session.
type Input struct {
	Prompt string
	// PriorState is the state assigned to the previous turn, if any.
	PriorState State
	// HasCode is set when the surrounding context already detected an
	// attached code snippet.
	HasCode bool
}

// Rule is one pattern-matching classifier. Rules are tried in priority
// order; the first match wins.
type Rule interface {
	Name() string
	Match(in *Input) (Classification, bool)
}

// DefaultRules returns the rule chain in priority order. Solution-request
// detection runs first: governance depends on it and a delegating prompt
// often also contains conceptual vocabulary.
func DefaultRules() []Rule {
	return []Rule{
		&solutionRequestRule{},
		&debuggingRule{},
		&validationRule{},
		&implementationRule{},
		&planningRule{},
		&reflectionRule{},
		&conceptualRule{},
	}
}

// Classify maps free text plus signals to a cognitive state and intent.
// Deterministic and pure. Ambiguous input defaults to exploration, the
// lowest-commitment state: earlier phases get more help, so defaulting
// low fails safe with respect to governance.
func Classify(in *Input) Classification {
	return classifyWith(DefaultRules(), in)
}

func classifyWith(rules []Rule, in *Input) Classification {
	norm := &Input{
		Prompt:     strings.ToLower(in.Prompt),
		PriorState: in.PriorState,
		HasCode:    in.HasCode,
	}
	for _, r := range rules {
		if c, ok := r.Match(norm); ok {
			c.Matched = r.Name()
			return c
		}
	}
	return Classification{
		State:   StateExploration,
		Intent:  IntentUnknown,
		Matched: "default",
	}
}

// containsAny reports whether s contains at least one of the phrases.
func containsAny(s string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

type solutionRequestRule struct{}

func (r *solutionRequestRule) Name() string { return "solution-request" }

func (r *solutionRequestRule) Match(in *Input) (Classification, bool) {
	if containsAny(in.Prompt,
		"complete code", "complete solution", "full solution", "entire solution",
		"whole program", "working code", "just give me", "do it for me",
		"write it for me", "write the code for me", "solve it for me",
		"código completo", "dame el código", "hazlo por mí",
	) {
		return Classification{
			State:  StateImplementation,
			Intent: IntentSolutionRequest,
		}, true
	}
	return Classification{}, false
}

type debuggingRule struct{}

func (r *debuggingRule) Name() string { return "debugging" }

func (r *debuggingRule) Match(in *Input) (Classification, bool) {
	if containsAny(in.Prompt,
		"error", "doesn't work", "does not work", "unexpected", "crash",
		"bug", "fails", "wrong output", "no funciona", "falla",
	) {
		return Classification{
			State:  StateDebugging,
			Intent: IntentGuidance,
		}, true
	}
	return Classification{}, false
}

type validationRule struct{}

func (r *validationRule) Name() string { return "validation" }

func (r *validationRule) Match(in *Input) (Classification, bool) {
	if containsAny(in.Prompt,
		"is this correct", "is it correct", "am i right", "review my",
		"check my", "did i do", "es correcto", "está bien",
	) {
		return Classification{
			State:  StateValidation,
			Intent: IntentValidation,
		}, true
	}
	return Classification{}, false
}

type implementationRule struct{}

func (r *implementationRule) Name() string { return "implementation" }

func (r *implementationRule) Match(in *Input) (Classification, bool) {
	if in.HasCode || containsAny(in.Prompt, "```", "my code", "this function", "mi código") {
		return Classification{
			State:  StateImplementation,
			Intent: IntentGuidance,
		}, true
	}
	return Classification{}, false
}

type planningRule struct{}

func (r *planningRule) Name() string { return "planning" }

func (r *planningRule) Match(in *Input) (Classification, bool) {
	if containsAny(in.Prompt,
		"plan", "approach", "how should i", "what steps", "design",
		"strategy", "cómo debería",
	) {
		return Classification{
			State:  StatePlanning,
			Intent: IntentGuidance,
		}, true
	}
	return Classification{}, false
}

type conceptualRule struct{}

func (r *conceptualRule) Name() string { return "conceptual" }

func (r *conceptualRule) Match(in *Input) (Classification, bool) {
	if containsAny(in.Prompt,
		"what is", "what are", "why ", "why?", "why would", "explain",
		"difference between", "how does", "qué es", "por qué",
	) {
		return Classification{
			State:  StateUnderstanding,
			Intent: IntentConceptual,
		}, true
	}
	return Classification{}, false
}

type reflectionRule struct{}

func (r *reflectionRule) Name() string { return "reflection" }

func (r *reflectionRule) Match(in *Input) (Classification, bool) {
	if containsAny(in.Prompt,
		"i learned", "looking back", "in retrospect", "what i did well",
		"aprendí", "en retrospectiva",
	) {
		return Classification{
			State:  StateReflection,
			Intent: IntentReflection,
		}, true
	}
	return Classification{}, false
}
