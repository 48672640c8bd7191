package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/praxislabs/praxis/internal/classify"
)

// tutorInvolvement is the tutor's self-reported AI share. Socratic replies
// are mostly questions scaffolded around the student's own words, so the
// generative share stays low.
const tutorInvolvement = 0.3

// TutorAgent guides without solving: it asks questions, names concepts and
// keeps the student doing the reasoning.
type TutorAgent struct{}

func (a *TutorAgent) Name() string { return "cognitive_tutor" }

func (a *TutorAgent) Handle(ctx context.Context, ac *Context) (*AgentResult, error) {
	system := fmt.Sprintf(`You are a cognitive tutor for a programming student.
The student is currently in the %s phase of problem solving.
Respond in a Socratic style: ask one or two guiding questions before any explanation.
Never provide complete solutions or full working code.
%s`, strings.ToLower(string(ac.Classification.State)), helpLevelClause(ac.Policy.MaxHelpLevel))

	text, err := generate(ctx, ac, system)
	if err != nil {
		return nil, err
	}

	involvement := tutorInvolvement
	if ac.Classification.State == classify.StateImplementation {
		// Implementation-phase answers carry more model-authored content
		// (pseudo-code fragments, concrete hints).
		involvement = 0.45
	}

	return &AgentResult{
		Response:      text,
		AgentName:     a.Name(),
		AIInvolvement: clampInvolvement(involvement),
	}, nil
}
