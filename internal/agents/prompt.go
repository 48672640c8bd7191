package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/praxislabs/praxis/internal/llm"
)

// buildMessages converts the visible history plus the current prompt into
// ordered provider messages.
func buildMessages(ac *Context) []llm.Message {
	var msgs []llm.Message
	for _, turn := range ac.History {
		role := llm.RoleUser
		if turn.Role == "agent" {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: turn.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: ac.Prompt})
	return msgs
}

// generate issues one provider call with the handler's system prompt and
// returns the plain response text.
func generate(ctx context.Context, ac *Context, system string) (string, error) {
	req := llm.Request{
		System:      system,
		Messages:    buildMessages(ac),
		Temperature: ac.Temperature,
		MaxTokens:   ac.MaxTokens,
	}

	resp, err := ac.Provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	return decodeText(resp.Content), nil
}

// decodeText unwraps the raw content: providers return free text either
// bare or as a JSON-encoded string.
func decodeText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// helpLevelClause renders the activity's scaffolding bound for a system
// prompt.
func helpLevelClause(level int) string {
	switch {
	case level <= 1:
		return "Offer orientation only: point to the relevant concept, never to steps."
	case level == 2:
		return "You may name the relevant concepts and ask guiding questions, nothing more."
	case level == 3:
		return "You may give conceptual explanations and high-level strategy hints, but no code."
	case level == 4:
		return "You may sketch partial approaches and pseudo-code fragments, never a full solution."
	default:
		return "You may walk through worked examples, but always leave the final step to the student."
	}
}

// describeHistory summarizes recent turns for prompts that need context.
func describeHistory(history []HistoryTurn, max int) string {
	if len(history) == 0 {
		return "This is the first interaction of the session."
	}
	if len(history) > max {
		history = history[len(history)-max:]
	}
	var b strings.Builder
	for _, t := range history {
		fmt.Fprintf(&b, "- [%s, %s] %s\n", t.Role, t.State, truncate(t.Content, 120))
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
