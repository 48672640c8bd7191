package governance

import (
	"fmt"

	"github.com/praxislabs/praxis/internal/classify"
)

// delegationWindow is how many recent turns feed the moving average.
const delegationWindow = 5

// Decision is the outcome of the pre-generation policy check.
type Decision struct {
	Allowed bool
	// Reason is human-readable and always set on a block.
	Reason string
}

var allow = Decision{Allowed: true}

// Check decides allow/block before any generation cost is incurred.
// Pure: no side effects, no I/O. recentInvolvement holds the AI-involvement
// scores of the session's most recent agent responses, oldest first.
func Check(c classify.Classification, p Policy, recentInvolvement []float64) Decision {
	if p.BlockCompleteSolutions && c.Intent == classify.IntentSolutionRequest {
		return Decision{
			Allowed: false,
			Reason:  "complete solutions are not permitted for this activity; try asking about the concept or your approach instead",
		}
	}

	if avg, ok := movingAverage(recentInvolvement, delegationWindow); ok && avg > p.DelegationThreshold {
		return Decision{
			Allowed: false,
			Reason: fmt.Sprintf(
				"recent AI involvement (%.2f) exceeds this activity's delegation threshold (%.2f); work through the next step yourself",
				avg, p.DelegationThreshold,
			),
		}
	}

	return allow
}

// movingAverage averages the last window values. ok is false when there is
// no history to average.
func movingAverage(vals []float64, window int) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	if len(vals) > window {
		vals = vals[len(vals)-window:]
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), true
}
