// Package weights manages the per-dimension importance weights used by the
// aggregator: an immutable snapshot, an atomically swappable store, and a
// feedback tuner that derives replacement snapshots from match outcomes.
package weights

// Per-weight clamp bounds. Tuning nudges never move a weight outside this
// range, so no dimension can be tuned away entirely or come to dominate.
const (
	MinWeight = 0.05
	MaxWeight = 0.40
)

// Snapshot is an immutable record of the five dimension weights. Snapshots
// are replaced wholly, never mutated field by field; the weights need not
// sum to 1 but the defaults do.
type Snapshot struct {
	SkillsMatch        float64 `json:"skills_match"`
	RequirementsFit    float64 `json:"requirements_fit"`
	SalaryFit          float64 `json:"salary_fit"`
	CompanyCulture     float64 `json:"company_culture"`
	ResponseLikelihood float64 `json:"response_likelihood"`
}

// Default returns the startup weight snapshot.
func Default() Snapshot {
	return Snapshot{
		SkillsMatch:        0.35,
		RequirementsFit:    0.20,
		SalaryFit:          0.15,
		CompanyCulture:     0.15,
		ResponseLikelihood: 0.15,
	}
}

// Values returns the weights in canonical dimension order
// (skills, requirements, salary, culture, response).
func (s Snapshot) Values() [5]float64 {
	return [5]float64{
		s.SkillsMatch,
		s.RequirementsFit,
		s.SalaryFit,
		s.CompanyCulture,
		s.ResponseLikelihood,
	}
}

// Clamped returns a copy of the snapshot with every weight forced into
// [MinWeight, MaxWeight].
func (s Snapshot) Clamped() Snapshot {
	return Snapshot{
		SkillsMatch:        clamp(s.SkillsMatch),
		RequirementsFit:    clamp(s.RequirementsFit),
		SalaryFit:          clamp(s.SalaryFit),
		CompanyCulture:     clamp(s.CompanyCulture),
		ResponseLikelihood: clamp(s.ResponseLikelihood),
	}
}

func clamp(w float64) float64 {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}
