package types

import (
	"time"

	"github.com/google/uuid"
)

// BehaviorSignals carries optional engagement hints about a candidate.
// A nil *BehaviorSignals or any zero-valued field means "no signal" and
// resolves to the neutral default of zero; it is never an error.
type BehaviorSignals struct {
	RecentActivity          int     `json:"recent_activity,omitempty"`
	ApplicationSuccessRate  float64 `json:"application_success_rate,omitempty"`
	SimilarJobsApplied      int     `json:"similar_jobs_applied,omitempty"`
	ProfileViewsThisCompany int     `json:"profile_views_this_company,omitempty"`
}

// ScoreBreakdown holds the five per-dimension sub-scores, each in [0,1],
// plus the behavior boost in [0, 0.15].
type ScoreBreakdown struct {
	SkillsMatch        float64 `json:"skills_match"`
	RequirementsFit    float64 `json:"requirements_fit"`
	SalaryFit          float64 `json:"salary_fit"`
	CompanyCulture     float64 `json:"company_culture"`
	ResponseLikelihood float64 `json:"response_likelihood"`
	BehaviorBoost      float64 `json:"behavior_boost"`
}

// Subscores returns the five dimension sub-scores in their canonical order
// (skills, requirements, salary, culture, response).
func (b ScoreBreakdown) Subscores() [5]float64 {
	return [5]float64{
		b.SkillsMatch,
		b.RequirementsFit,
		b.SalaryFit,
		b.CompanyCulture,
		b.ResponseLikelihood,
	}
}

// MatchResult is the outcome of scoring one candidate against one job.
// Instances are created per scoring call and owned by the caller.
type MatchResult struct {
	JobID       uuid.UUID      `json:"job_id"`
	JobTitle    string         `json:"job_title"`
	Score       float64        `json:"score"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	Confidence  float64        `json:"confidence"`
	Explanation string         `json:"explanation"`
}

// FeedbackRecord pairs a match outcome with the breakdown that produced it.
// Records are immutable once written and are consumed in bulk by the tuner.
type FeedbackRecord struct {
	ID         uuid.UUID      `json:"id"`
	JobID      uuid.UUID      `json:"job_id"`
	Placed     bool           `json:"placed"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	RecordedAt time.Time      `json:"recorded_at"`
}
