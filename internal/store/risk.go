package store

import (
	"context"
	"fmt"

	"github.com/praxislabs/praxis/ent"
	entrisk "github.com/praxislabs/praxis/ent/risk"
)

// riskRepo implements RiskRepo using the ent client.
type riskRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *riskRepo) AppendBatch(ctx context.Context, recs []*RiskRecord) ([]*RiskRecord, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	for _, rec := range recs {
		if rec.Dimension == "" {
			return nil, fmt.Errorf("%w: risk %s", ErrMissingDimension, rec.RiskID)
		}
	}

	// Sequence numbers are allocated before the transaction opens: the
	// counter lives on its own pooled connection, and SQLite's single
	// writer would block its UPDATE once the first insert below takes the
	// write lock. A rolled-back batch leaves a gap in the sequence, which
	// the ordering guarantees tolerate.
	seqs := make([]int64, len(recs))
	for i := range recs {
		n, err := r.seq.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("next sequence: %w", err)
		}
		seqs[i] = n
	}

	var saved []*RiskRecord
	err := WithTx(ctx, r.client, func(tx *ent.Tx) error {
		saved = saved[:0]
		for i, rec := range recs {
			builder := tx.Risk.Create().
				SetSequence(seqs[i]).
				SetRiskID(rec.RiskID).
				SetSessionID(rec.SessionID).
				SetStudentID(rec.StudentID).
				SetActivityID(rec.ActivityID).
				SetRiskType(rec.Type).
				SetLevel(entrisk.Level(rec.Level)).
				SetDimension(entrisk.Dimension(rec.Dimension)).
				SetDescription(rec.Description)

			if !rec.Timestamp.IsZero() {
				builder = builder.SetTimestamp(rec.Timestamp)
			}
			if len(rec.Evidence) > 0 {
				builder = builder.SetEvidence(rec.Evidence)
			}
			if len(rec.Recommendations) > 0 {
				builder = builder.SetRecommendations(rec.Recommendations)
			}
			if len(rec.TraceIDs) > 0 {
				builder = builder.SetTraceIds(rec.TraceIDs)
			}

			row, err := builder.Save(ctx)
			if err != nil {
				return fmt.Errorf("save risk: %w", err)
			}
			saved = append(saved, entRiskToRecord(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *riskRepo) BySession(ctx context.Context, sessionID string, f RiskFilter) ([]*RiskRecord, error) {
	q := r.client.Risk.Query().
		Where(entrisk.SessionID(sessionID)).
		Order(ent.Asc(entrisk.FieldSequence))

	if f.Resolved != nil {
		q = q.Where(entrisk.Resolved(*f.Resolved))
	}
	if f.Dimension != "" {
		q = q.Where(entrisk.DimensionEQ(entrisk.Dimension(f.Dimension)))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query risks: %w", err)
	}

	recs := make([]*RiskRecord, len(rows))
	for i, row := range rows {
		recs[i] = entRiskToRecord(row)
	}
	return recs, nil
}

func (r *riskRepo) Resolve(ctx context.Context, riskID, notes string) error {
	n, err := r.client.Risk.Update().
		Where(entrisk.RiskID(riskID)).
		SetResolved(true).
		SetResolutionNotes(notes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("resolve risk: %w", err)
	}
	if n == 0 {
		return ErrRiskNotFound
	}
	return nil
}

func (r *riskRepo) Stats(ctx context.Context, sessionID string) (*RiskStats, error) {
	recs, err := r.BySession(ctx, sessionID, RiskFilter{})
	if err != nil {
		return nil, err
	}

	stats := &RiskStats{
		Total:       len(recs),
		ByLevel:     make(map[string]int),
		ByDimension: make(map[string]int),
		ByType:      make(map[string]int),
	}
	resolved := 0
	for _, rec := range recs {
		stats.ByLevel[rec.Level]++
		stats.ByDimension[rec.Dimension]++
		stats.ByType[rec.Type]++
		if rec.Resolved {
			resolved++
		}
	}
	if stats.Total > 0 {
		stats.ResolutionRate = float64(resolved) / float64(stats.Total)
	}
	return stats, nil
}

func entRiskToRecord(row *ent.Risk) *RiskRecord {
	return &RiskRecord{
		RiskID:          row.RiskID,
		SessionID:       row.SessionID,
		StudentID:       row.StudentID,
		ActivityID:      row.ActivityID,
		Type:            row.RiskType,
		Level:           string(row.Level),
		Dimension:       string(row.Dimension),
		Description:     row.Description,
		Evidence:        row.Evidence,
		Recommendations: row.Recommendations,
		TraceIDs:        row.TraceIds,
		Resolved:        row.Resolved,
		ResolutionNotes: row.ResolutionNotes,
		Sequence:        row.Sequence,
		Timestamp:       row.Timestamp,
	}
}
