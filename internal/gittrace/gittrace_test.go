package gittrace

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/praxislabs/praxis/internal/store"
)

// testRepo builds a throwaway repository with three commits spread over
// two hours: a feature, a fix and a test commit.
func testRepo(t *testing.T) (string, []time.Time) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}

	base := time.Now().Add(-2 * time.Hour).Truncate(time.Second)
	times := []time.Time{base, base.Add(30 * time.Minute), base.Add(time.Hour)}

	steps := []struct {
		file    string
		content string
		message string
	}{
		{"parser.go", "line one\nline two\nline three\n", "add parser"},
		{"parser.go", "line one\nline two\n", "fix overflow bug in parser"},
		{"parser_test.go", "a test\n", "add parser tests"},
	}
	for i, s := range steps {
		if err := os.WriteFile(filepath.Join(dir, s.file), []byte(s.content), 0o644); err != nil {
			t.Fatalf("write %s: %v", s.file, err)
		}
		if _, err := w.Add(s.file); err != nil {
			t.Fatalf("add %s: %v", s.file, err)
		}
		_, err := w.Commit(s.message, &gogit.CommitOptions{
			Author: &object.Signature{Name: "Student", Email: "student@example.com", When: times[i]},
		})
		if err != nil {
			t.Fatalf("commit %q: %v", s.message, err)
		}
	}
	return dir, times
}

func TestReaderCommits(t *testing.T) {
	dir, times := testRepo(t)

	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	commits, err := r.Commits(Window{})
	if err != nil {
		t.Fatalf("Commits: %v", err)
	}
	if len(commits) != 3 {
		t.Fatalf("commits = %d, want 3", len(commits))
	}

	// Oldest first.
	for i := 1; i < len(commits); i++ {
		if commits[i].When.Before(commits[i-1].When) {
			t.Errorf("commits out of order: %v before %v", commits[i].When, commits[i-1].When)
		}
	}

	first := commits[0]
	if first.Subject != "add parser" {
		t.Errorf("subject = %q", first.Subject)
	}
	if first.Insertions != 3 || first.Deletions != 0 || first.FilesChanged != 1 {
		t.Errorf("stats = +%d -%d %d files", first.Insertions, first.Deletions, first.FilesChanged)
	}
	if first.Pattern != PatternFeature {
		t.Errorf("pattern = %s", first.Pattern)
	}
	if commits[1].Pattern != PatternFix {
		t.Errorf("fix commit pattern = %s", commits[1].Pattern)
	}
	if commits[2].Pattern != PatternTest {
		t.Errorf("test commit pattern = %s", commits[2].Pattern)
	}

	// A Since bound excludes older commits.
	recent, err := r.Commits(Window{Since: times[1].Add(-time.Minute)})
	if err != nil {
		t.Fatalf("Commits since: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("recent commits = %d, want 2", len(recent))
	}
}

func TestOpenRejectsNonRepo(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatal("expected an error for a plain directory")
	}
}

func TestClassifyPattern(t *testing.T) {
	cases := []struct {
		message    string
		ins, del   int
		want       Pattern
	}{
		{"hotfix login crash", 5, 2, PatternFix},
		{"refactor the loader", 10, 30, PatternRefactor},
		{"add coverage for edge cases", 40, 0, PatternTest},
		{"update readme", 3, 1, PatternDocs},
		{"implement streaming", 120, 4, PatternFeature},
		{"bump version", 1, 1, PatternChore},
	}
	for _, c := range cases {
		if got := classifyPattern(c.message, c.ins, c.del); got != c.want {
			t.Errorf("classifyPattern(%q) = %s, want %s", c.message, got, c.want)
		}
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dir, times := testRepo(t)

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if _, err := st.Sessions().Start(ctx, "sess-1", "stu-1", "", store.ModeTutor); err != nil {
		t.Fatalf("start session: %v", err)
	}

	// A prompt preceding the second commit should lend it its state.
	_, err = st.Traces().Append(ctx, &store.TraceRecord{
		TraceID: "t-1", SessionID: "sess-1",
		Level: store.LevelCognitive, Type: store.TypeStudentPrompt,
		State: "IMPLEMENTATION", Intent: "GUIDANCE",
		Content: "how do I structure the parser?", Timestamp: times[0].Add(5 * time.Minute),
	})
	if err != nil {
		t.Fatalf("seed prompt: %v", err)
	}

	syncer := NewSyncer(st.Sessions(), st.Traces())
	res, err := syncer.Sync(ctx, "sess-1", dir, Window{})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if res.Synced != 3 || res.Skipped != 0 {
		t.Fatalf("first sync = %+v", res)
	}

	traces, err := st.Traces().BySession(ctx, "sess-1", store.QueryOpts{})
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	var commits []*store.TraceRecord
	for _, tr := range traces {
		if IsCommit(tr) {
			commits = append(commits, tr)
		}
	}
	if len(commits) != 3 {
		t.Fatalf("commit traces = %d, want 3", len(commits))
	}
	for _, c := range commits {
		if c.Level != store.LevelInteractional || c.Type != store.TypeSystemEvent {
			t.Errorf("commit trace level/type = %s/%s", c.Level, c.Type)
		}
		if c.Metadata["commit_hash"] == "" || c.Metadata["pattern"] == "" {
			t.Errorf("commit metadata incomplete: %v", c.Metadata)
		}
	}
	if !commits[0].Timestamp.Equal(times[0]) {
		t.Errorf("commit timestamp = %v, want %v", commits[0].Timestamp, times[0])
	}
	// The first commit precedes the seeded prompt; the later ones carry
	// the prompt's state.
	if commits[0].State != "EXPLORATION" {
		t.Errorf("pre-prompt commit state = %s, want EXPLORATION", commits[0].State)
	}
	if commits[1].State != "IMPLEMENTATION" {
		t.Errorf("commit state = %s, want IMPLEMENTATION", commits[1].State)
	}

	again, err := syncer.Sync(ctx, "sess-1", dir, Window{})
	if err != nil {
		t.Fatalf("second Sync: %v", err)
	}
	if again.Synced != 0 || again.Skipped != 3 {
		t.Errorf("second sync = %+v", again)
	}
}

func TestSyncUnknownSession(t *testing.T) {
	dir, _ := testRepo(t)
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	syncer := NewSyncer(st.Sessions(), st.Traces())
	if _, err := syncer.Sync(context.Background(), "sess-missing", dir, Window{}); err == nil {
		t.Fatal("expected an error for an unknown session")
	}
}

func commitTrace(hash string, when time.Time, state, pattern string, ins, del int) *store.TraceRecord {
	return &store.TraceRecord{
		TraceID: "tr-" + hash, SessionID: "sess-1",
		Level: store.LevelInteractional, Type: store.TypeSystemEvent,
		State: state, Timestamp: when,
		Metadata: map[string]string{
			"commit_hash": hash,
			"pattern":     pattern,
			"insertions":  strconv.Itoa(ins),
			"deletions":   strconv.Itoa(del),
			"files":       "main.go",
		},
	}
}

func TestAnalyzeEvolution(t *testing.T) {
	base := time.Now()
	traces := []*store.TraceRecord{
		{TraceID: "p-1", Type: store.TypeStudentPrompt, State: "EXPLORATION", Timestamp: base},
		commitTrace("aaaa111", base.Add(time.Minute), "EXPLORATION", "feature", 8, 2),
		commitTrace("bbbb222", base.Add(2*time.Minute), "IMPLEMENTATION", "fix", 1, 3),
	}

	ev := AnalyzeEvolution("sess-1", traces)
	if ev.TotalCommits != 2 {
		t.Fatalf("total commits = %d", ev.TotalCommits)
	}
	if ev.LinesAdded != 9 || ev.LinesDeleted != 5 || ev.NetChange != 4 {
		t.Errorf("lines = +%d -%d net %d", ev.LinesAdded, ev.LinesDeleted, ev.NetChange)
	}
	if ev.UniqueFiles != 1 {
		t.Errorf("unique files = %d", ev.UniqueFiles)
	}
	if ev.Patterns[PatternFeature] != 1 || ev.Patterns[PatternFix] != 1 {
		t.Errorf("patterns = %v", ev.Patterns)
	}
	if ev.ByState["IMPLEMENTATION"] != 1 {
		t.Errorf("by state = %v", ev.ByState)
	}
	if len(ev.Timeline) != 2 || ev.Timeline[0].Net != 6 {
		t.Errorf("timeline = %+v", ev.Timeline)
	}
}

func TestCorrelate(t *testing.T) {
	base := time.Now()
	traces := []*store.TraceRecord{
		{TraceID: "p-1", Type: store.TypeStudentPrompt, Timestamp: base},
		{TraceID: "r-1", Type: store.TypeAgentResponse, Timestamp: base.Add(time.Minute)},
		commitTrace("aaaa111", base.Add(5*time.Minute), "EXPLORATION", "feature", 4, 0),
		commitTrace("bbbb222", base.Add(3*time.Hour), "EXPLORATION", "feature", 50, 0),
	}

	cor := Correlate("sess-1", traces)
	if len(cor.Pairs) != 2 {
		t.Fatalf("pairs = %d", len(cor.Pairs))
	}
	if cor.Pairs[0].Isolated {
		t.Error("commit within the window flagged isolated")
	}
	if cor.Pairs[0].TraceID != "r-1" {
		t.Errorf("nearest trace = %s, want r-1", cor.Pairs[0].TraceID)
	}
	if cor.Pairs[0].Gap != 4*time.Minute {
		t.Errorf("gap = %s", cor.Pairs[0].Gap)
	}
	if !cor.Pairs[1].Isolated || cor.Isolated != 1 {
		t.Error("distant commit should be isolated")
	}
	if cor.InteractionsPerCommit != 1 {
		t.Errorf("interactions per commit = %v", cor.InteractionsPerCommit)
	}
	if cor.AvgGap != 4*time.Minute {
		t.Errorf("avg gap = %s", cor.AvgGap)
	}
}

func TestCorrelateNoCommits(t *testing.T) {
	cor := Correlate("sess-1", []*store.TraceRecord{
		{TraceID: "p-1", Type: store.TypeStudentPrompt, Timestamp: time.Now()},
	})
	if len(cor.Pairs) != 0 || cor.InteractionsPerCommit != 0 {
		t.Errorf("correlation = %+v", cor)
	}
}
