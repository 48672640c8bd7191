package agents

import (
	"context"
	"fmt"
	"strings"
)

// SimulatorAgent plays a scenario role (interviewer, code reviewer, stakeholder)
// so the student can rehearse. It generates the most content of any agent, so
// its involvement score is correspondingly high.
type SimulatorAgent struct{}

func (a *SimulatorAgent) Name() string { return "simulator" }

func (a *SimulatorAgent) Handle(ctx context.Context, ac *Context) (*AgentResult, error) {
	system := fmt.Sprintf(`You are running a practice simulation for a programming student.
Stay in character as the counterpart of the scenario (interviewer, reviewer, or client) and
respond realistically to what the student says. Push back where a real counterpart would.
The student is in the %s phase.`, strings.ToLower(string(ac.Classification.State)))

	text, err := generate(ctx, ac, system)
	if err != nil {
		return nil, err
	}

	return &AgentResult{
		Response:      text,
		AgentName:     a.Name(),
		AIInvolvement: clampInvolvement(0.6),
	}, nil
}
