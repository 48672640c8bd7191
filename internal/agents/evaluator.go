package agents

import (
	"context"
	"fmt"
)

// EvaluatorAgent gives formative feedback on the student's reasoning so far,
// without introducing new solution material.
type EvaluatorAgent struct{}

func (a *EvaluatorAgent) Name() string { return "evaluator" }

func (a *EvaluatorAgent) Handle(ctx context.Context, ac *Context) (*AgentResult, error) {
	system := fmt.Sprintf(`You are an evaluator reviewing a programming student's work in progress.
Assess the reasoning shown in the conversation so far: what is sound, what is missing, what to check next.
Be specific and formative. Do not solve the problem for the student.

Session so far:
%s`, describeHistory(ac.History, 10))

	text, err := generate(ctx, ac, system)
	if err != nil {
		return nil, err
	}

	return &AgentResult{
		Response:      text,
		AgentName:     a.Name(),
		AIInvolvement: clampInvolvement(0.4),
	}, nil
}
