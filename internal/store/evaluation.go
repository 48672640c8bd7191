package store

import (
	"context"
	"fmt"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/evaluationreport"
)

// evaluationRepo implements EvaluationRepo using the ent client.
type evaluationRepo struct {
	client *ent.Client
}

// Save enforces the at-most-one-report-per-session invariant. When a report
// already exists it is returned unchanged unless replace is set, in which
// case the old row is deleted and the new one written in one transaction.
func (r *evaluationRepo) Save(ctx context.Context, rec *EvaluationRecord, replace bool) (*EvaluationRecord, error) {
	existing, err := r.BySession(ctx, rec.SessionID)
	if err != nil && err != ErrReportNotFound {
		return nil, err
	}
	if existing != nil && !replace {
		return existing, nil
	}

	var saved *EvaluationRecord
	err = WithTx(ctx, r.client, func(tx *ent.Tx) error {
		if existing != nil {
			_, derr := tx.EvaluationReport.Delete().
				Where(evaluationreport.SessionID(rec.SessionID)).
				Exec(ctx)
			if derr != nil {
				return fmt.Errorf("delete superseded report: %w", derr)
			}
		}

		builder := tx.EvaluationReport.Create().
			SetReportID(rec.ReportID).
			SetSessionID(rec.SessionID).
			SetStudentID(rec.StudentID).
			SetActivityID(rec.ActivityID).
			SetCompetency(evaluationreport.Competency(rec.Competency)).
			SetOverallScore(rec.OverallScore).
			SetAiDependency(rec.AIDependency)

		if len(rec.Dimensions) > 0 {
			builder = builder.SetDimensions(rec.Dimensions)
		}
		if len(rec.Strengths) > 0 {
			builder = builder.SetStrengths(rec.Strengths)
		}
		if len(rec.Improvements) > 0 {
			builder = builder.SetImprovements(rec.Improvements)
		}

		row, cerr := builder.Save(ctx)
		if cerr != nil {
			return fmt.Errorf("save report: %w", cerr)
		}
		saved = entReportToRecord(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *evaluationRepo) BySession(ctx context.Context, sessionID string) (*EvaluationRecord, error) {
	row, err := r.client.EvaluationReport.Query().
		Where(evaluationreport.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("query report: %w", err)
	}
	return entReportToRecord(row), nil
}

func entReportToRecord(row *ent.EvaluationReport) *EvaluationRecord {
	return &EvaluationRecord{
		ReportID:     row.ReportID,
		SessionID:    row.SessionID,
		StudentID:    row.StudentID,
		ActivityID:   row.ActivityID,
		Competency:   string(row.Competency),
		OverallScore: row.OverallScore,
		Dimensions:   row.Dimensions,
		Strengths:    row.Strengths,
		Improvements: row.Improvements,
		AIDependency: row.AiDependency,
		CreatedAt:    row.CreatedAt,
	}
}
