package weights

import (
	"github.com/jonathan/job-matcher/internal/types"
)

// Tuning constants. A single Update moves any weight by at most NudgeStep in
// either direction, so repeated tuning drifts slowly and stays inside the
// [MinWeight, MaxWeight] clamp.
const (
	// NudgeStep is the per-update weight adjustment.
	NudgeStep = 0.05
	// highSubscore marks a sub-score counted as "high" when correlating
	// dimensions with placement outcomes.
	highSubscore = 0.7
	// raiseThreshold and lowerThreshold bound the correlation band in which
	// a weight is left alone.
	raiseThreshold = 0.7
	lowerThreshold = 0.3
)

// Tuner derives replacement weight snapshots from accumulated feedback
// records. It runs off the scoring path; tuning is a best-effort
// optimization, never a correctness-critical step.
type Tuner struct {
	store *Store
}

// NewTuner creates a tuner that publishes into the given store.
func NewTuner(store *Store) *Tuner {
	return &Tuner{store: store}
}

// Update computes per-dimension outcome correlations from the feedback
// records, nudges the current snapshot accordingly, clamps each weight, and
// publishes the result as one atomic replacement. It returns the snapshot in
// effect afterwards.
//
// An empty feedback set, or one with no successful placements, leaves the
// current snapshot unchanged.
func (t *Tuner) Update(records []types.FeedbackRecord) Snapshot {
	current := t.store.Current()

	placed := 0
	var highCounts [5]int
	for _, rec := range records {
		if !rec.Placed {
			continue
		}
		placed++
		for i, sub := range rec.Breakdown.Subscores() {
			if sub >= highSubscore {
				highCounts[i]++
			}
		}
	}
	if placed == 0 {
		return current
	}

	values := current.Values()
	for i := range values {
		correlation := float64(highCounts[i]) / float64(placed)
		switch {
		case correlation > raiseThreshold:
			values[i] += NudgeStep
		case correlation < lowerThreshold:
			values[i] -= NudgeStep
		}
	}

	next := Snapshot{
		SkillsMatch:        values[0],
		RequirementsFit:    values[1],
		SalaryFit:          values[2],
		CompanyCulture:     values[3],
		ResponseLikelihood: values[4],
	}.Clamped()

	t.store.Replace(next)
	return next
}
