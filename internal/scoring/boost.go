package scoring

import "github.com/jonathan/job-matcher/internal/types"

// Behavior boost composition. The completeness term rewards filled-out
// profiles; the remaining terms reward engagement signals. The bonuses can
// sum past MaxBehaviorBoost; the final value is clamped to it.
const (
	// MaxBehaviorBoost caps the additive boost applied on top of the
	// weighted aggregate.
	MaxBehaviorBoost = 0.15

	completenessMax  = 0.08
	activityBonus    = 0.04
	successBonus     = 0.03
	similarJobsBonus = 0.02

	activeApplicationCount = 5
	strongSuccessRate      = 0.5
)

// BehaviorBoost computes the bounded additive boost in [0, MaxBehaviorBoost]
// from profile completeness and optional engagement signals. A nil behavior
// argument contributes nothing; it is never an error.
func BehaviorBoost(candidate *types.CandidateProfile, behavior *types.BehaviorSignals) float64 {
	boost := profileCompleteness(candidate) * completenessMax
	if behavior != nil {
		if behavior.RecentActivity > activeApplicationCount {
			boost += activityBonus
		}
		if behavior.ApplicationSuccessRate > strongSuccessRate {
			boost += successBonus
		}
		if behavior.SimilarJobsApplied > 0 {
			boost += similarJobsBonus
		}
	}
	if boost > MaxBehaviorBoost {
		return MaxBehaviorBoost
	}
	return boost
}

// profileCompleteness returns the fraction of optional profile fields the
// candidate has filled in, in [0,1].
func profileCompleteness(candidate *types.CandidateProfile) float64 {
	filled := 0
	const total = 6
	if candidate.Skills != "" {
		filled++
	}
	if candidate.Experience != "" {
		filled++
	}
	if candidate.Description != "" {
		filled++
	}
	if candidate.SalaryExpectation > 0 || candidate.CurrentSalary > 0 {
		filled++
	}
	if len(candidate.WorkPreferences) > 0 || len(candidate.Industries) > 0 {
		filled++
	}
	if candidate.Location != "" {
		filled++
	}
	return float64(filled) / total
}
