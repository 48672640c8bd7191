package agents

import (
	"context"
	"fmt"
)

// GovernanceAgent answers directly, without a model call, when a solution
// request slips through a permissive policy. The reply is deterministic so
// the boundary message is identical for every student.
type GovernanceAgent struct{}

func (a *GovernanceAgent) Name() string { return "governance" }

func (a *GovernanceAgent) Handle(_ context.Context, ac *Context) (*AgentResult, error) {
	resp := fmt.Sprintf(
		"This activity allows partial solutions, but I want to make sure the work stays yours. "+
			"Before I share anything concrete, tell me: what approach have you tried so far, and where exactly does it break down? "+
			"Once I understand your reasoning, I can help at level %d scaffolding.",
		ac.Policy.MaxHelpLevel)

	return &AgentResult{
		Response:      resp,
		AgentName:     a.Name(),
		AIInvolvement: clampInvolvement(0.1),
	}, nil
}
