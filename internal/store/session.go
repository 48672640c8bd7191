package store

import (
	"context"
	"fmt"
	"time"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/session"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Start(ctx context.Context, sessionID, studentID, activityID string, mode SessionMode) (*SessionRecord, error) {
	if mode == "" {
		mode = ModeTutor
	}
	s, err := r.client.Session.Create().
		SetSessionID(sessionID).
		SetStudentID(studentID).
		SetActivityID(activityID).
		SetMode(session.Mode(mode)).
		SetStatus(session.StatusActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return entSessionToRecord(s), nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*SessionRecord, error) {
	s, err := r.client.Session.Query().
		Where(session.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return entSessionToRecord(s), nil
}

func (r *sessionRepo) SetMode(ctx context.Context, sessionID string, mode SessionMode) error {
	n, err := r.client.Session.Update().
		Where(session.SessionID(sessionID)).
		SetMode(session.Mode(mode)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// validTransitions encodes the monotonic session lifecycle.
var validTransitions = map[SessionStatus][]SessionStatus{
	StatusActive: {StatusCompleted, StatusPaused, StatusAborted},
	StatusPaused: {StatusActive, StatusAborted},
}

func (r *sessionRepo) Transition(ctx context.Context, sessionID string, to SessionStatus) error {
	cur, err := r.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	allowed := false
	for _, next := range validTransitions[cur.Status] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur.Status, to)
	}

	upd := r.client.Session.Update().
		Where(session.SessionID(sessionID)).
		SetStatus(session.Status(to))
	if to == StatusCompleted || to == StatusAborted {
		upd = upd.SetEndedAt(time.Now())
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("transition session: %w", err)
	}
	return nil
}

func entSessionToRecord(s *ent.Session) *SessionRecord {
	return &SessionRecord{
		SessionID:  s.SessionID,
		StudentID:  s.StudentID,
		ActivityID: s.ActivityID,
		Mode:       SessionMode(s.Mode),
		Status:     SessionStatus(s.Status),
		StartedAt:  s.StartedAt,
		EndedAt:    s.EndedAt,
	}
}
