package scoring

import (
	"math"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/weights"
)

// Aggregate combines the five sub-scores under the given weight snapshot and
// adds the behavior boost, clamping the result to [0,1]. The snapshot is a
// value copy read once by the caller, so a concurrent weight replacement can
// never expose this computation to a half-updated weight set.
func Aggregate(breakdown types.ScoreBreakdown, snapshot weights.Snapshot) float64 {
	subs := breakdown.Subscores()
	ws := snapshot.Values()

	base := 0.0
	for i := range subs {
		base += subs[i] * ws[i]
	}

	final := base + breakdown.BehaviorBoost
	if final < 0 {
		return 0
	}
	return math.Min(1.0, final)
}
