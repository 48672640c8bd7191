package store

import (
	"context"
	"fmt"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/llmrequestevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	events := make([]*LLMRequestEvent, len(rows))
	for i, row := range rows {
		events[i] = entLLMEventToRecord(row)
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	return entLLMEventToRecord(row), nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]*LLMUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}

	byPurpose := make(map[string]*LLMUsage)
	var order []string
	latency := make(map[string]int64)
	for _, row := range rows {
		u, ok := byPurpose[row.Purpose]
		if !ok {
			u = &LLMUsage{Purpose: row.Purpose}
			byPurpose[row.Purpose] = u
			order = append(order, row.Purpose)
		}
		u.Calls++
		u.InputTokens += row.InputTokens
		u.OutputTokens += row.OutputTokens
		latency[row.Purpose] += row.LatencyMs
	}

	out := make([]*LLMUsage, 0, len(order))
	for _, p := range order {
		u := byPurpose[p]
		if u.Calls > 0 {
			u.AvgLatencyMs = latency[p] / int64(u.Calls)
		}
		out = append(out, u)
	}
	return out, nil
}

func entLLMEventToRecord(row *ent.LLMRequestEvent) *LLMRequestEvent {
	return &LLMRequestEvent{
		ID: row.ID,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
	}
}
