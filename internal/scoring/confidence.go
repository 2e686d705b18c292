package scoring

import "github.com/jonathan/job-matcher/internal/types"

// minConfidence is the floor below which confidence never drops, so callers
// can divide by or compare against it without guarding for zero.
const minConfidence = 0.1

// Confidence estimates how much to trust a match from the agreement across
// its five sub-scores: 1 minus their variance, floored at 0.1. Tight
// agreement (all dimensions telling the same story) yields high confidence;
// a wide spread (say perfect skills but terrible salary) lowers it,
// independent of the aggregate score.
func Confidence(breakdown types.ScoreBreakdown) float64 {
	subs := breakdown.Subscores()

	mean := 0.0
	for _, s := range subs {
		mean += s
	}
	mean /= float64(len(subs))

	variance := 0.0
	for _, s := range subs {
		d := s - mean
		variance += d * d
	}
	variance /= float64(len(subs))

	confidence := 1.0 - variance
	if confidence < minConfidence {
		return minConfidence
	}
	return confidence
}
