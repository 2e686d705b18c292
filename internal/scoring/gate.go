package scoring

import "github.com/jonathan/job-matcher/internal/types"

// Thresholds is the immutable quality configuration applied after
// aggregation. It is a hard business rule, not a per-call tunable: every
// surfaced match meets both floors regardless of how the aggregate score is
// composed, so a job cannot surface on salary and culture alone while having
// near-zero skill overlap.
type Thresholds struct {
	MinimumScore    float64 `json:"minimum_score" validate:"gte=0,lte=1"`
	SkillsMinimum   float64 `json:"skills_minimum" validate:"gte=0,lte=1"`
	SalaryTolerance float64 `json:"salary_tolerance" validate:"gte=0"`
}

// DefaultThresholds returns the startup quality thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinimumScore:    0.4,
		SkillsMinimum:   0.2,
		SalaryTolerance: 0.3,
	}
}

// Admit reports whether a match with the given final score and breakdown
// passes the quality gate. A rejected match is "no match", not an error.
func (t Thresholds) Admit(score float64, breakdown types.ScoreBreakdown) bool {
	if score < t.MinimumScore {
		return false
	}
	if breakdown.SkillsMatch < t.SkillsMinimum {
		return false
	}
	return true
}
