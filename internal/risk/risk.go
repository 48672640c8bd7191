// Package risk scans a session's trace history for learning risks across
// five dimensions. Scanning is pure: checks read a snapshot and emit
// findings, persistence belongs to the caller.
package risk

import (
	"github.com/praxislabs/praxis/internal/governance"
	"github.com/praxislabs/praxis/internal/store"
)

// Severity levels, ordered.
const (
	LevelLow      = "low"
	LevelMedium   = "medium"
	LevelHigh     = "high"
	LevelCritical = "critical"
)

// Risk dimensions. Every finding carries exactly one.
const (
	DimCognitive  = "cognitive"
	DimEthical    = "ethical"
	DimEpistemic  = "epistemic"
	DimTechnical  = "technical"
	DimGovernance = "governance"
)

// Finding is one detected concern, not yet persisted.
type Finding struct {
	Type            string
	Level           string
	Dimension       string
	Description     string
	Evidence        []string
	Recommendations []string
	TraceIDs        []string
}

// Snapshot is everything a check may look at: the session identity, the
// governing policy and the full trace history in sequence order.
type Snapshot struct {
	SessionID  string
	StudentID  string
	ActivityID string
	Policy     governance.Policy
	Traces     []*store.TraceRecord
}

// Check is one independent detector. Checks never see each other's output.
type Check interface {
	Name() string
	Run(s *Snapshot) []Finding
}

// Scanner runs a fixed set of checks over a snapshot.
type Scanner struct {
	checks []Check
}

// NewScanner returns a scanner with the default check set, one per
// dimension.
func NewScanner() *Scanner {
	return &Scanner{checks: []Check{
		&delegationCheck{},
		&integrityCheck{},
		&verbatimReuseCheck{},
		&unvalidatedCodeCheck{},
		&justificationCheck{},
	}}
}

// Scan runs every check and returns the combined findings. A finding from
// one check never suppresses another's.
func (sc *Scanner) Scan(s *Snapshot) []Finding {
	var out []Finding
	for _, c := range sc.checks {
		out = append(out, c.Run(s)...)
	}
	return out
}
