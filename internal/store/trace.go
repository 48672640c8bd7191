package store

import (
	"context"
	"fmt"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/traceevent"
)

// traceRepo implements TraceRepo using the ent client. Rows are append-only;
// there is deliberately no update or delete path.
type traceRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *traceRepo) Append(ctx context.Context, rec *TraceRecord) (*TraceRecord, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.TraceEvent.Create().
		SetSequence(seqNum).
		SetTraceID(rec.TraceID).
		SetSessionID(rec.SessionID).
		SetTraceLevel(traceevent.TraceLevel(rec.Level)).
		SetInteractionType(traceevent.InteractionType(rec.Type)).
		SetCognitiveState(rec.State).
		SetCognitiveIntent(rec.Intent).
		SetContent(rec.Content).
		SetAiInvolvement(rec.AIInvolvement)

	if !rec.Timestamp.IsZero() {
		builder = builder.SetTimestamp(rec.Timestamp)
	}
	if len(rec.Metadata) > 0 {
		builder = builder.SetMetadata(rec.Metadata)
	}

	te, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save trace: %w", err)
	}
	return entTraceToRecord(te), nil
}

func (r *traceRepo) BySession(ctx context.Context, sessionID string, opts QueryOpts) ([]*TraceRecord, error) {
	q := r.client.TraceEvent.Query().
		Where(traceevent.SessionID(sessionID)).
		Order(ent.Asc(traceevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(traceevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		q = q.Where(traceevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(traceevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query traces: %w", err)
	}

	recs := make([]*TraceRecord, len(rows))
	for i, te := range rows {
		recs[i] = entTraceToRecord(te)
	}
	return recs, nil
}

func (r *traceRepo) Get(ctx context.Context, traceID string) (*TraceRecord, error) {
	te, err := r.client.TraceEvent.Query().
		Where(traceevent.TraceID(traceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("trace %s: not found", traceID)
		}
		return nil, fmt.Errorf("query trace: %w", err)
	}
	return entTraceToRecord(te), nil
}

func entTraceToRecord(te *ent.TraceEvent) *TraceRecord {
	return &TraceRecord{
		TraceID:       te.TraceID,
		SessionID:     te.SessionID,
		Level:         TraceLevel(te.TraceLevel),
		Type:          InteractionType(te.InteractionType),
		State:         te.CognitiveState,
		Intent:        te.CognitiveIntent,
		Content:       te.Content,
		AIInvolvement: te.AiInvolvement,
		Metadata:      te.Metadata,
		Sequence:      te.Sequence,
		Timestamp:     te.Timestamp,
	}
}
