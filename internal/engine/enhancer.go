package engine

import "github.com/jonathan/job-matcher/internal/types"

// Enhancer is an optional post-scoring transform applied to the aggregate
// score before the quality gate. The engine ships no learned model, so the
// default is a no-op; callers with a real scoring model can plug one in.
// Implementations must be pure and safe for concurrent use.
type Enhancer interface {
	Enhance(breakdown types.ScoreBreakdown, score float64) float64
}

// NopEnhancer returns the score unchanged.
type NopEnhancer struct{}

// Enhance implements Enhancer.
func (NopEnhancer) Enhance(_ types.ScoreBreakdown, score float64) float64 {
	return score
}
