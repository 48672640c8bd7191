package evaluation

import (
	"github.com/praxislabs/praxis/internal/store"
)

// heuristic derives a report purely from trace and risk statistics. It is
// the fallback when no provider is configured or generation fails, so it
// must always succeed.
func heuristic(in *Input) *Result {
	stats := collect(in)

	dims := map[string]float64{
		"understanding":       stats.stateShare["UNDERSTANDING"] + stats.stateShare["EXPLORATION"],
		"problem_solving":     stats.stateShare["PLANNING"] + stats.stateShare["IMPLEMENTATION"] + stats.stateShare["DEBUGGING"],
		"autonomy":            clamp01(1 - stats.meanInvolvement),
		"validation_practice": stats.stateShare["VALIDATION"] + stats.stateShare["DEBUGGING"],
		"reflection":          stats.stateShare["REFLECTION"],
	}
	for k, v := range dims {
		dims[k] = clamp01(v)
	}

	// Each unresolved finding costs a slice of the overall score, graded
	// by severity.
	penalty := 0.0
	for _, r := range in.Risks {
		if r.Resolved {
			continue
		}
		switch r.Level {
		case "critical":
			penalty += 0.15
		case "high":
			penalty += 0.10
		case "medium":
			penalty += 0.05
		default:
			penalty += 0.02
		}
	}

	overall := clamp01(mean(dims) - penalty)

	res := &Result{
		Competency:   competencyFor(overall),
		OverallScore: overall,
		Dimensions:   dims,
		Heuristic:    true,
	}

	if dims["validation_practice"] >= 0.2 {
		res.Strengths = append(res.Strengths, "tested and debugged work during the session")
	}
	if dims["autonomy"] >= 0.6 {
		res.Strengths = append(res.Strengths, "kept most of the reasoning independent of generated content")
	}
	if dims["reflection"] > 0 {
		res.Strengths = append(res.Strengths, "took time to reflect on the process")
	}
	if len(res.Strengths) == 0 {
		res.Strengths = append(res.Strengths, "engaged consistently across the session")
	}

	if dims["validation_practice"] < 0.2 {
		res.Improvements = append(res.Improvements, "test code before moving to the next step")
	}
	if dims["autonomy"] < 0.5 {
		res.Improvements = append(res.Improvements, "attempt each step before asking for help")
	}
	if dims["reflection"] == 0 {
		res.Improvements = append(res.Improvements, "close sessions by summarizing what you learned")
	}
	if len(in.Risks) > 0 {
		res.Improvements = append(res.Improvements, "review the session's risk findings")
	}

	return res
}

type sessionStats struct {
	stateShare      map[string]float64
	meanInvolvement float64
}

func collect(in *Input) sessionStats {
	counts := map[string]int{}
	prompts := 0
	var invSum float64
	responses := 0
	for _, t := range in.Traces {
		switch t.Type {
		case store.TypeStudentPrompt:
			counts[t.State]++
			prompts++
		case store.TypeAgentResponse:
			invSum += t.AIInvolvement
			responses++
		}
	}

	share := map[string]float64{}
	for state, n := range counts {
		if prompts > 0 {
			share[state] = float64(n) / float64(prompts)
		}
	}

	var meanInv float64
	if responses > 0 {
		meanInv = invSum / float64(responses)
	}

	return sessionStats{stateShare: share, meanInvolvement: meanInv}
}

func competencyFor(overall float64) string {
	switch {
	case overall >= 0.85:
		return CompetencyExpert
	case overall >= 0.7:
		return CompetencyProficient
	case overall >= 0.5:
		return CompetencyCompetent
	case overall >= 0.3:
		return CompetencyAdvancedBeginner
	default:
		return CompetencyNovice
	}
}

func mean(m map[string]float64) float64 {
	if len(m) == 0 {
		return 0
	}
	var sum float64
	for _, v := range m {
		sum += v
	}
	return sum / float64(len(m))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
