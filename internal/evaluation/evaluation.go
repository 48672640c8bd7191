// Package evaluation builds per-session competency reports. A report is
// derived from the session's traces and risk findings, preferably by the
// configured model with schema-validated output, with a deterministic
// heuristic fallback when generation fails.
package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/logging"
	"github.com/praxislabs/praxis/internal/store"
)

// Competency levels, ordered from least to most capable.
const (
	CompetencyNovice           = "novice"
	CompetencyAdvancedBeginner = "advanced_beginner"
	CompetencyCompetent        = "competent"
	CompetencyProficient       = "proficient"
	CompetencyExpert           = "expert"
)

// Scored dimensions. Every report carries all of them.
var dimensionKeys = []string{
	"understanding",
	"problem_solving",
	"autonomy",
	"validation_practice",
	"reflection",
}

// Input is everything a report is derived from.
type Input struct {
	SessionID  string
	StudentID  string
	ActivityID string
	Traces     []*store.TraceRecord
	Risks      []*store.RiskRecord
}

// Result is a generated report, not yet persisted.
type Result struct {
	Competency   string
	OverallScore float64
	Dimensions   map[string]float64
	Strengths    []string
	Improvements []string
	AIDependency float64
	// Heuristic marks reports produced by the fallback path rather than
	// the model.
	Heuristic bool
}

// Generator produces session reports.
type Generator struct {
	provider llm.Provider
	log      *slog.Logger
}

// NewGenerator returns a Generator. provider may be nil, in which case
// every report comes from the heuristic path.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{
		provider: provider,
		log:      logging.WithComponent("evaluation"),
	}
}

// Generate builds a report for one session. The AI-dependency score is
// always computed from the traces, never asked of the model.
func (g *Generator) Generate(ctx context.Context, in *Input) (*Result, error) {
	if len(in.Traces) == 0 {
		return nil, fmt.Errorf("session %s has no traces to evaluate", in.SessionID)
	}

	dependency := aiDependency(in.Traces)

	if g.provider != nil {
		res, err := g.fromModel(ctx, in)
		if err == nil {
			res.AIDependency = dependency
			return res, nil
		}
		g.log.Warn("model evaluation failed, using heuristic",
			"session_id", in.SessionID, "error", err)
	}

	res := heuristic(in)
	res.AIDependency = dependency
	return res, nil
}

// reportPayload is the shape the model must return.
type reportPayload struct {
	Competency   string             `json:"competency"`
	OverallScore float64            `json:"overall_score"`
	Dimensions   map[string]float64 `json:"dimensions"`
	Strengths    []string           `json:"strengths"`
	Improvements []string           `json:"improvements"`
}

func (g *Generator) fromModel(ctx context.Context, in *Input) (*Result, error) {
	req := llm.Request{
		System:    evaluationSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: describeSession(in)}},
		Schema:    reportSchema(),
		MaxTokens: 1024,
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "evaluation"), req)
	if err != nil {
		return nil, err
	}

	var p reportPayload
	if err := json.Unmarshal(resp.Content, &p); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if err := checkPayload(&p); err != nil {
		return nil, err
	}

	return &Result{
		Competency:   p.Competency,
		OverallScore: p.OverallScore,
		Dimensions:   p.Dimensions,
		Strengths:    p.Strengths,
		Improvements: p.Improvements,
	}, nil
}

// checkPayload enforces the pieces a JSON schema cannot express cheaply:
// every dimension present and every score inside [0,1].
func checkPayload(p *reportPayload) error {
	if p.OverallScore < 0 || p.OverallScore > 1 {
		return fmt.Errorf("overall score %v out of range", p.OverallScore)
	}
	for _, k := range dimensionKeys {
		v, ok := p.Dimensions[k]
		if !ok {
			return fmt.Errorf("report missing dimension %q", k)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("dimension %q score %v out of range", k, v)
		}
	}
	return nil
}

const evaluationSystemPrompt = `You are evaluating a programming student's learning session.
Score each dimension between 0 and 1 based only on the evidence in the session summary.
Strengths and improvements must be concrete and tied to what the student actually did.
Do not reward volume of interaction; reward independent reasoning, testing, and reflection.`

func reportSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "session-evaluation",
		Description: "Competency evaluation of one learning session",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"competency": map[string]any{
					"type": "string",
					"enum": []any{
						CompetencyNovice, CompetencyAdvancedBeginner,
						CompetencyCompetent, CompetencyProficient, CompetencyExpert,
					},
				},
				"overall_score": map[string]any{"type": "number"},
				"dimensions": map[string]any{
					"type":                 "object",
					"additionalProperties": map[string]any{"type": "number"},
				},
				"strengths":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"improvements": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []any{"competency", "overall_score", "dimensions", "strengths", "improvements"},
		},
	}
}

// describeSession renders the session for the evaluation prompt.
func describeSession(in *Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session %s, %d interactions.\n\nTimeline:\n", in.SessionID, len(in.Traces))
	for _, t := range in.Traces {
		content := t.Content
		if len(content) > 150 {
			content = content[:150] + "…"
		}
		fmt.Fprintf(&b, "- [%s, %s] %s\n", t.Type, strings.ToLower(t.State), content)
	}
	if len(in.Risks) > 0 {
		b.WriteString("\nRisk findings:\n")
		for _, r := range in.Risks {
			fmt.Fprintf(&b, "- [%s/%s] %s\n", r.Dimension, r.Level, r.Description)
		}
	}
	return b.String()
}

// aiDependency is the mean AI involvement across agent responses, 0 when
// the session never generated anything.
func aiDependency(traces []*store.TraceRecord) float64 {
	var sum float64
	var n int
	for _, t := range traces {
		if t.Type == store.TypeAgentResponse {
			sum += t.AIInvolvement
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
