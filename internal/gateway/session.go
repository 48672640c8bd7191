package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/praxislabs/praxis/internal/store"
)

// StartSession opens a new active session and returns its record.
func (g *Gateway) StartSession(ctx context.Context, studentID, activityID string, mode store.SessionMode) (*store.SessionRecord, error) {
	if mode == "" {
		mode = store.ModeTutor
	}
	sess, err := g.store.Sessions().Start(ctx, uuid.NewString(), studentID, activityID, mode)
	if err != nil {
		return nil, &PersistenceError{Op: "start session", Err: err}
	}
	g.log.Info("session started",
		"session_id", sess.SessionID, "student_id", studentID, "mode", mode)
	return sess, nil
}

// GetSession returns a session record.
func (g *Gateway) GetSession(ctx context.Context, sessionID string) (*store.SessionRecord, error) {
	return g.store.Sessions().Get(ctx, sessionID)
}

// SetMode switches the session's active agent.
func (g *Gateway) SetMode(ctx context.Context, sessionID string, mode store.SessionMode) error {
	return g.store.Sessions().SetMode(ctx, sessionID, mode)
}

// Transition moves a session through its lifecycle. Ending a session also
// queues a final risk scan so late-session patterns are not missed.
func (g *Gateway) Transition(ctx context.Context, sessionID string, to store.SessionStatus) error {
	sess, err := g.store.Sessions().Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := g.store.Sessions().Transition(ctx, sessionID, to); err != nil {
		return err
	}

	if to == store.StatusCompleted || to == store.StatusAborted {
		policy, perr := g.store.Activities().Policy(ctx, sess.ActivityID)
		if perr != nil {
			g.log.Warn("final scan skipped, policy unavailable",
				"session_id", sessionID, "error", perr)
			return nil
		}
		g.enqueueScan(scanJob{
			sessionID:  sessionID,
			studentID:  sess.StudentID,
			activityID: sess.ActivityID,
			policy:     policy,
		})
	}
	return nil
}

// History returns a session's trace stream in sequence order.
func (g *Gateway) History(ctx context.Context, sessionID string, opts store.QueryOpts) ([]*store.TraceRecord, error) {
	if _, err := g.store.Sessions().Get(ctx, sessionID); err != nil {
		return nil, err
	}
	return g.store.Traces().BySession(ctx, sessionID, opts)
}
