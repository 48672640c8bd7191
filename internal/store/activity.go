package store

import (
	"context"
	"fmt"

	"github.com/praxislabs/praxis/ent"
	entactivity "github.com/praxislabs/praxis/ent/activity"
	"github.com/praxislabs/praxis/internal/governance"
)

// activityRepo implements ActivityRepo using the ent client.
type activityRepo struct {
	client *ent.Client
}

func (r *activityRepo) Create(ctx context.Context, rec *ActivityRecord) error {
	builder := r.client.Activity.Create().
		SetActivityID(rec.ActivityID).
		SetTeacherID(rec.TeacherID).
		SetName(rec.Name).
		SetDescription(rec.Descr).
		SetMaxHelpLevel(rec.Policy.MaxHelpLevel).
		SetBlockCompleteSolutions(rec.Policy.BlockCompleteSolutions).
		SetRequireJustification(rec.Policy.RequireJustification).
		SetDelegationThreshold(rec.Policy.DelegationThreshold)

	if len(rec.Policy.RiskThresholds) > 0 {
		builder = builder.SetRiskThresholds(rec.Policy.RiskThresholds)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

func (r *activityRepo) Get(ctx context.Context, activityID string) (*ActivityRecord, error) {
	row, err := r.client.Activity.Query().
		Where(entactivity.ActivityID(activityID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("query activity: %w", err)
	}
	return entActivityToRecord(row), nil
}

func (r *activityRepo) UpdatePolicy(ctx context.Context, activityID, teacherID string, p governance.Policy) error {
	cur, err := r.Get(ctx, activityID)
	if err != nil {
		return err
	}
	if cur.TeacherID != teacherID {
		return ErrNotActivityOwner
	}

	upd := r.client.Activity.Update().
		Where(entactivity.ActivityID(activityID)).
		SetMaxHelpLevel(p.MaxHelpLevel).
		SetBlockCompleteSolutions(p.BlockCompleteSolutions).
		SetRequireJustification(p.RequireJustification).
		SetDelegationThreshold(p.DelegationThreshold)
	if len(p.RiskThresholds) > 0 {
		upd = upd.SetRiskThresholds(p.RiskThresholds)
	}

	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update activity policy: %w", err)
	}
	return nil
}

// Policy returns the activity's policy, or the default policy for unknown
// activities so sessions against unregistered activities still get governed.
func (r *activityRepo) Policy(ctx context.Context, activityID string) (governance.Policy, error) {
	rec, err := r.Get(ctx, activityID)
	if err != nil {
		if err == ErrActivityNotFound {
			return governance.DefaultPolicy(), nil
		}
		return governance.Policy{}, err
	}
	return rec.Policy, nil
}

func entActivityToRecord(row *ent.Activity) *ActivityRecord {
	return &ActivityRecord{
		ActivityID: row.ActivityID,
		TeacherID:  row.TeacherID,
		Name:       row.Name,
		Descr:      row.Description,
		Policy: governance.Policy{
			MaxHelpLevel:           row.MaxHelpLevel,
			BlockCompleteSolutions: row.BlockCompleteSolutions,
			RequireJustification:   row.RequireJustification,
			DelegationThreshold:    row.DelegationThreshold,
			RiskThresholds:         row.RiskThresholds,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
