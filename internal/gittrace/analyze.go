package gittrace

import (
	"strconv"
	"strings"
	"time"

	"github.com/praxislabs/praxis/internal/store"
)

// nearbyWindow is how close an interaction must be to a commit before the
// commit counts as explained by session activity.
const nearbyWindow = 15 * time.Minute

// TimelinePoint is one commit on the evolution timeline.
type TimelinePoint struct {
	Hash    string
	When    time.Time
	Net     int
	Pattern Pattern
	State   string
}

// Evolution aggregates how the code changed over a session.
type Evolution struct {
	SessionID    string
	TotalCommits int
	LinesAdded   int
	LinesDeleted int
	NetChange    int
	UniqueFiles  int
	Patterns     map[Pattern]int
	ByState      map[string]int
	Timeline     []TimelinePoint
}

// AnalyzeEvolution builds the evolution view from a session's trace rows.
// Non-commit rows are ignored.
func AnalyzeEvolution(sessionID string, traces []*store.TraceRecord) *Evolution {
	ev := &Evolution{
		SessionID: sessionID,
		Patterns:  make(map[Pattern]int),
		ByState:   make(map[string]int),
	}
	files := make(map[string]bool)

	for _, t := range traces {
		if !IsCommit(t) {
			continue
		}
		add := atoi(t.Metadata[metaInsertions])
		del := atoi(t.Metadata[metaDeletions])

		ev.TotalCommits++
		ev.LinesAdded += add
		ev.LinesDeleted += del
		ev.Patterns[Pattern(t.Metadata[metaPattern])]++
		ev.ByState[t.State]++

		for _, f := range strings.Split(t.Metadata[metaFiles], ",") {
			if f != "" {
				files[f] = true
			}
		}

		ev.Timeline = append(ev.Timeline, TimelinePoint{
			Hash:    t.Metadata[metaCommitHash],
			When:    t.Timestamp,
			Net:     add - del,
			Pattern: Pattern(t.Metadata[metaPattern]),
			State:   t.State,
		})
	}

	ev.NetChange = ev.LinesAdded - ev.LinesDeleted
	ev.UniqueFiles = len(files)
	return ev
}

// CommitInteraction pairs a commit with its nearest interaction.
type CommitInteraction struct {
	Hash    string
	When    time.Time
	TraceID string
	Gap     time.Duration

	// Isolated marks a commit with no interaction inside nearbyWindow.
	// Code appearing without session activity around it may have been
	// produced with help the gateway never saw.
	Isolated bool
}

// Correlation relates the commit stream to the interaction stream.
type Correlation struct {
	SessionID string
	Pairs     []CommitInteraction
	AvgGap    time.Duration
	Isolated  int

	// InteractionsPerCommit is 0 when the session has no commits.
	InteractionsPerCommit float64
}

// Correlate matches each commit against the nearest interaction in time.
func Correlate(sessionID string, traces []*store.TraceRecord) *Correlation {
	cor := &Correlation{SessionID: sessionID}

	var interactions []*store.TraceRecord
	for _, t := range traces {
		if t.Type == store.TypeStudentPrompt || t.Type == store.TypeAgentResponse {
			interactions = append(interactions, t)
		}
	}

	var commits int
	var gapSum time.Duration
	var paired int
	for _, t := range traces {
		if !IsCommit(t) {
			continue
		}
		commits++

		pair := CommitInteraction{
			Hash:     t.Metadata[metaCommitHash],
			When:     t.Timestamp,
			Isolated: true,
		}
		best := time.Duration(-1)
		for _, in := range interactions {
			gap := t.Timestamp.Sub(in.Timestamp)
			if gap < 0 {
				gap = -gap
			}
			if best < 0 || gap < best {
				best = gap
				pair.TraceID = in.TraceID
				pair.Gap = gap
			}
		}
		if best >= 0 && best <= nearbyWindow {
			pair.Isolated = false
			gapSum += best
			paired++
		}
		cor.Pairs = append(cor.Pairs, pair)
	}

	cor.Isolated = commits - paired
	if paired > 0 {
		cor.AvgGap = gapSum / time.Duration(paired)
	}
	if commits > 0 {
		cor.InteractionsPerCommit = float64(len(interactions)) / float64(commits)
	}
	return cor
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
