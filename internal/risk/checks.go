package risk

import (
	"fmt"
	"strings"

	"github.com/praxislabs/praxis/internal/store"
)

// delegationWindow is how many recent agent responses the cognitive check
// averages over.
const delegationWindow = 5

// delegationCheck flags sustained over-reliance on generated content: the
// moving average of AI involvement across recent agent responses crossing
// the activity's delegation threshold.
type delegationCheck struct{}

func (c *delegationCheck) Name() string { return "excessive_delegation" }

func (c *delegationCheck) Run(s *Snapshot) []Finding {
	var responses []*store.TraceRecord
	for _, t := range s.Traces {
		if t.Type == store.TypeAgentResponse {
			responses = append(responses, t)
		}
	}
	if len(responses) < delegationWindow {
		return nil
	}

	recent := responses[len(responses)-delegationWindow:]
	var sum float64
	var ids []string
	for _, t := range recent {
		sum += t.AIInvolvement
		ids = append(ids, t.TraceID)
	}
	avg := sum / float64(len(recent))

	threshold := s.Policy.Threshold(c.Name(), s.Policy.DelegationThreshold)
	if avg <= threshold {
		return nil
	}

	return []Finding{{
		Type:        c.Name(),
		Level:       severityByRatio(avg, threshold),
		Dimension:   DimCognitive,
		Description: fmt.Sprintf("average AI involvement %.2f over the last %d responses exceeds the %.2f threshold", avg, delegationWindow, threshold),
		Evidence:    []string{fmt.Sprintf("moving average %.2f, threshold %.2f", avg, threshold)},
		Recommendations: []string{
			"attempt the next step yourself before asking",
			"switch a few turns to conceptual questions instead of requests for output",
		},
		TraceIDs: ids,
	}}
}

// integrityKeywords signal a prompt aimed at passing off generated work.
var integrityKeywords = []string{
	"for my exam",
	"during the exam",
	"don't tell my teacher",
	"do not tell my teacher",
	"pretend i wrote",
	"make it look like i wrote",
	"so i can submit",
	"plagiar",
	"pass it off as mine",
}

// integrityCheck flags academic-integrity concerns in student prompts.
type integrityCheck struct{}

func (c *integrityCheck) Name() string { return "integrity_concern" }

func (c *integrityCheck) Run(s *Snapshot) []Finding {
	var out []Finding
	for _, t := range s.Traces {
		if t.Type != store.TypeStudentPrompt {
			continue
		}
		lower := strings.ToLower(t.Content)
		for _, kw := range integrityKeywords {
			if strings.Contains(lower, kw) {
				out = append(out, Finding{
					Type:        c.Name(),
					Level:       LevelHigh,
					Dimension:   DimEthical,
					Description: "prompt suggests intent to submit generated work as the student's own",
					Evidence:    []string{fmt.Sprintf("matched phrase %q", kw)},
					Recommendations: []string{
						"review the course's collaboration and AI-use policy",
						"use this tool for understanding, not for producing deliverables",
					},
					TraceIDs: []string{t.TraceID},
				})
				break
			}
		}
	}
	return out
}

// verbatimReuseThreshold is how many identical prompts trigger the
// epistemic check.
const verbatimReuseThreshold = 3

// verbatimReuseCheck flags the same prompt repeated verbatim, a pattern of
// fishing for a usable answer rather than building understanding.
type verbatimReuseCheck struct{}

func (c *verbatimReuseCheck) Name() string { return "verbatim_reuse" }

func (c *verbatimReuseCheck) Run(s *Snapshot) []Finding {
	counts := map[string][]string{}
	for _, t := range s.Traces {
		if t.Type != store.TypeStudentPrompt {
			continue
		}
		norm := strings.Join(strings.Fields(strings.ToLower(t.Content)), " ")
		if norm == "" {
			continue
		}
		counts[norm] = append(counts[norm], t.TraceID)
	}

	var out []Finding
	for norm, ids := range counts {
		if len(ids) < verbatimReuseThreshold {
			continue
		}
		out = append(out, Finding{
			Type:        c.Name(),
			Level:       LevelMedium,
			Dimension:   DimEpistemic,
			Description: fmt.Sprintf("the same prompt was submitted %d times", len(ids)),
			Evidence:    []string{fmt.Sprintf("repeated prompt: %q", truncate(norm, 80))},
			Recommendations: []string{
				"rephrase the question in your own words to test what you understood",
				"explain what was unclear about the previous answer before re-asking",
			},
			TraceIDs: ids,
		})
	}
	return out
}

// unvalidatedRunThreshold is how many consecutive code-bearing responses
// without a validation turn trigger the technical check.
const unvalidatedRunThreshold = 2

// unvalidatedCodeCheck flags code-bearing responses the student never
// followed with a validation or debugging turn.
type unvalidatedCodeCheck struct{}

func (c *unvalidatedCodeCheck) Name() string { return "unvalidated_code" }

func (c *unvalidatedCodeCheck) Run(s *Snapshot) []Finding {
	var run []string
	for _, t := range s.Traces {
		switch t.Type {
		case store.TypeAgentResponse:
			if strings.Contains(t.Content, "```") || t.Metadata["has_code"] == "true" {
				run = append(run, t.TraceID)
			}
		case store.TypeStudentPrompt:
			if t.State == "VALIDATION" || t.State == "DEBUGGING" {
				run = nil
			}
		}
	}
	if len(run) < unvalidatedRunThreshold {
		return nil
	}

	return []Finding{{
		Type:        c.Name(),
		Level:       LevelMedium,
		Dimension:   DimTechnical,
		Description: fmt.Sprintf("%d code-bearing responses in a row were accepted without a testing or debugging turn", len(run)),
		Evidence:    []string{fmt.Sprintf("%d untested code responses at session tail", len(run))},
		Recommendations: []string{
			"run the suggested code and report what happens before moving on",
			"write a small test case for each snippet you adopt",
		},
		TraceIDs: run,
	}}
}

// justificationMarkers indicate the student explained their reasoning.
var justificationMarkers = []string{"because", "since", "my reasoning", "i think this works", "my approach"}

// justificationCheck applies only when the activity requires justification:
// implementation-phase prompts must carry some reasoning.
type justificationCheck struct{}

func (c *justificationCheck) Name() string { return "missing_justification" }

func (c *justificationCheck) Run(s *Snapshot) []Finding {
	if !s.Policy.RequireJustification {
		return nil
	}

	var ids []string
	for _, t := range s.Traces {
		if t.Type != store.TypeStudentPrompt || t.State != "IMPLEMENTATION" {
			continue
		}
		lower := strings.ToLower(t.Content)
		justified := false
		for _, m := range justificationMarkers {
			if strings.Contains(lower, m) {
				justified = true
				break
			}
		}
		if !justified {
			ids = append(ids, t.TraceID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	return []Finding{{
		Type:        c.Name(),
		Level:       LevelLow,
		Dimension:   DimGovernance,
		Description: fmt.Sprintf("%d implementation prompts gave no reasoning, but this activity requires justification", len(ids)),
		Evidence:    []string{fmt.Sprintf("%d unjustified implementation prompts", len(ids))},
		Recommendations: []string{
			"state why you chose this approach when asking for implementation help",
		},
		TraceIDs: ids,
	}}
}

// severityByRatio grades how far a measured value overshoots its threshold.
func severityByRatio(value, threshold float64) string {
	if threshold <= 0 {
		return LevelCritical
	}
	switch ratio := value / threshold; {
	case ratio >= 1.5:
		return LevelCritical
	case ratio >= 1.25:
		return LevelHigh
	case ratio >= 1.1:
		return LevelMedium
	default:
		return LevelLow
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
