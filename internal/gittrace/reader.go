// Package gittrace links repository activity to the cognitive trace stream.
// Commits from a local working copy are captured as interactional trace
// rows so code evolution can be read alongside the student's interactions,
// and a commit with no nearby interaction stands out as unexplained work.
package gittrace

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNotGitRepo reports that the given path holds no git repository.
var ErrNotGitRepo = errors.New("path is not a git repository")

// Pattern is the coarse intent read off a commit.
type Pattern string

const (
	PatternFeature  Pattern = "feature"
	PatternFix      Pattern = "fix"
	PatternRefactor Pattern = "refactor"
	PatternTest     Pattern = "test"
	PatternDocs     Pattern = "docs"
	PatternChore    Pattern = "chore"
)

// Commit is one repository commit inside a sync window.
type Commit struct {
	Hash         string
	Author       string
	Subject      string
	When         time.Time
	Files        []string
	FilesChanged int
	Insertions   int
	Deletions    int
	Pattern      Pattern
}

// Window bounds the commits considered by one sync.
type Window struct {
	Since time.Time
	Until time.Time

	// Limit caps the commit count, newest first. 0 is unlimited.
	Limit int
}

// Reader reads commit history from a local repository.
type Reader struct {
	repo *gogit.Repository
}

// Open opens the repository at path.
func Open(path string) (*Reader, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotGitRepo, path)
	}
	return &Reader{repo: repo}, nil
}

// Commits returns the commits inside the window, oldest first.
func (r *Reader) Commits(w Window) ([]*Commit, error) {
	logOpts := &gogit.LogOptions{}
	if !w.Since.IsZero() {
		logOpts.Since = &w.Since
	}
	if !w.Until.IsZero() {
		logOpts.Until = &w.Until
	}

	iter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	var commits []*Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if w.Limit > 0 && len(commits) >= w.Limit {
			return io.EOF
		}
		commits = append(commits, convertCommit(c))
		return nil
	})
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("walk commits: %w", err)
	}

	// The log iterates newest first; syncing wants chronological order.
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}
	return commits, nil
}

func convertCommit(c *object.Commit) *Commit {
	out := &Commit{
		Hash:    c.Hash.String(),
		Author:  c.Author.Name,
		Subject: subject(c.Message),
		When:    c.Author.When,
	}

	// Stats diffs against the first parent (or the empty tree for the
	// initial commit). A stat failure leaves the counts at zero rather
	// than dropping the commit.
	if stats, err := c.Stats(); err == nil {
		for _, st := range stats {
			out.Files = append(out.Files, st.Name)
			out.Insertions += st.Addition
			out.Deletions += st.Deletion
		}
		out.FilesChanged = len(stats)
	}

	out.Pattern = classifyPattern(c.Message, out.Insertions, out.Deletions)
	return out
}

// subject returns the first line of the commit message.
func subject(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}

// classifyPattern reads a coarse intent off the message, falling back to
// the shape of the diff when no keyword matches.
func classifyPattern(message string, insertions, deletions int) Pattern {
	m := strings.ToLower(message)
	switch {
	case containsAny(m, "fix", "bug", "hotfix", "patch"):
		return PatternFix
	case containsAny(m, "refactor", "cleanup", "clean up", "restructure", "rename"):
		return PatternRefactor
	case containsAny(m, "test", "spec", "coverage"):
		return PatternTest
	case containsAny(m, "doc", "readme", "comment"):
		return PatternDocs
	case insertions > deletions:
		return PatternFeature
	default:
		return PatternChore
	}
}

func containsAny(s string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
