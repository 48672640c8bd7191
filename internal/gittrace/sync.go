package gittrace

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/praxislabs/praxis/internal/classify"
	"github.com/praxislabs/praxis/internal/logging"
	"github.com/praxislabs/praxis/internal/store"
)

// Metadata keys written on commit trace rows.
const (
	metaCommitHash   = "commit_hash"
	metaAuthor       = "author"
	metaFiles        = "files"
	metaFilesChanged = "files_changed"
	metaInsertions   = "insertions"
	metaDeletions    = "deletions"
	metaPattern      = "pattern"
)

// SyncResult summarizes one sync run.
type SyncResult struct {
	SessionID string
	Synced    int
	Skipped   int
}

// Syncer persists repository commits as interactional trace rows on a
// session. Syncing is idempotent: a commit hash already present in the
// session's trace stream is skipped.
type Syncer struct {
	sessions store.SessionRepo
	traces   store.TraceRepo
	log      *slog.Logger
}

// NewSyncer builds a Syncer over the given repositories.
func NewSyncer(sessions store.SessionRepo, traces store.TraceRepo) *Syncer {
	return &Syncer{
		sessions: sessions,
		traces:   traces,
		log:      logging.WithComponent("gittrace"),
	}
}

// Sync captures the repository's commits inside the window and appends one
// trace row per new commit. Each row carries the commit time, so commits
// interleave with interactions on the timeline, and the cognitive state of
// the latest student prompt preceding the commit.
func (s *Syncer) Sync(ctx context.Context, sessionID, repoPath string, w Window) (*SyncResult, error) {
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return nil, err
	}

	reader, err := Open(repoPath)
	if err != nil {
		return nil, err
	}
	commits, err := reader.Commits(w)
	if err != nil {
		return nil, err
	}

	existing, err := s.traces.BySession(ctx, sessionID, store.QueryOpts{})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, t := range existing {
		if h := t.Metadata[metaCommitHash]; h != "" {
			seen[h] = true
		}
	}

	res := &SyncResult{SessionID: sessionID}
	for _, c := range commits {
		if seen[c.Hash] {
			res.Skipped++
			continue
		}

		_, err := s.traces.Append(ctx, &store.TraceRecord{
			TraceID:   uuid.NewString(),
			SessionID: sessionID,
			Level:     store.LevelInteractional,
			Type:      store.TypeSystemEvent,
			State:     stateAt(existing, c),
			Intent:    string(classify.IntentUnknown),
			Content:   c.Subject,
			Timestamp: c.When,
			Metadata: map[string]string{
				metaCommitHash:   c.Hash,
				metaAuthor:       c.Author,
				metaFiles:        strings.Join(c.Files, ","),
				metaFilesChanged: strconv.Itoa(c.FilesChanged),
				metaInsertions:   strconv.Itoa(c.Insertions),
				metaDeletions:    strconv.Itoa(c.Deletions),
				metaPattern:      string(c.Pattern),
			},
		})
		if err != nil {
			return nil, err
		}
		res.Synced++
	}

	if res.Synced > 0 {
		s.log.Info("commits synced",
			"session_id", sessionID, "synced", res.Synced, "skipped", res.Skipped)
	}
	return res, nil
}

// stateAt finds the cognitive state of the latest student prompt at or
// before the commit time.
func stateAt(traces []*store.TraceRecord, c *Commit) string {
	state := string(classify.StateExploration)
	for _, t := range traces {
		if t.Type != store.TypeStudentPrompt {
			continue
		}
		if t.Timestamp.After(c.When) {
			break
		}
		state = t.State
	}
	return state
}

// IsCommit reports whether a trace row was written by the syncer.
func IsCommit(t *store.TraceRecord) bool {
	return t.Level == store.LevelInteractional && t.Metadata[metaCommitHash] != ""
}
