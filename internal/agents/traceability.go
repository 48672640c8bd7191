package agents

import (
	"context"
	"fmt"
	"strings"
)

// TraceabilityAgent narrates the student's own path through the session when
// they move into reflection. It works entirely from recorded history, so no
// model call is needed.
type TraceabilityAgent struct{}

func (a *TraceabilityAgent) Name() string { return "traceability" }

func (a *TraceabilityAgent) Handle(_ context.Context, ac *Context) (*AgentResult, error) {
	var b strings.Builder
	b.WriteString("Here is the path you took this session:\n\n")

	if len(ac.History) == 0 {
		b.WriteString("No prior interactions recorded yet. Once you've worked through a few steps, I can walk you back through them.")
	} else {
		step := 0
		lastState := ""
		for _, turn := range ac.History {
			if turn.Role != "student" {
				continue
			}
			step++
			marker := ""
			if turn.State != "" && turn.State != lastState {
				marker = fmt.Sprintf(" [entered %s]", strings.ToLower(turn.State))
				lastState = turn.State
			}
			fmt.Fprintf(&b, "%d. %s%s\n", step, truncate(turn.Content, 100), marker)
		}
		fmt.Fprintf(&b, "\nYou worked through %d steps. What would you do differently next time?", step)
	}

	return &AgentResult{
		Response:      b.String(),
		AgentName:     a.Name(),
		AIInvolvement: clampInvolvement(0.05),
	}, nil
}
