package agents

import (
	"context"
	"fmt"
)

// RiskAnalystAgent surfaces learning risks visible in the current session and
// talks the student through them. Deeper automated scanning happens out of
// band; this agent is the conversational face of that concern.
type RiskAnalystAgent struct{}

func (a *RiskAnalystAgent) Name() string { return "risk_analyst" }

func (a *RiskAnalystAgent) Handle(ctx context.Context, ac *Context) (*AgentResult, error) {
	system := fmt.Sprintf(`You are a learning-risk analyst working with a programming student.
Look at their recent interaction pattern and name any risks you see: over-reliance on AI answers,
accepting code without testing it, skipping the understanding phase, or academic-integrity concerns.
Frame risks constructively and suggest one concrete habit change per risk.

Recent interaction pattern:
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
