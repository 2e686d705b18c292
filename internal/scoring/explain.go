package scoring

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// matchTier is a closed enumeration of match strength bands. Explanation
// copy is dispatched on the tier value, never on free-form string keys.
type matchTier int

const (
	tierNone matchTier = iota
	tierWeak
	tierModerate
	tierStrong
)

func tierOf(score float64) matchTier {
	switch {
	case score >= 0.7:
		return tierStrong
	case score >= 0.4:
		return tierModerate
	case score > 0:
		return tierWeak
	}
	return tierNone
}

// Copy tables keyed by tier. Indexing by the enum keeps the mapping
// exhaustive and checkable, unlike a map keyed by strings.
var skillsCopy = [...]string{
	tierNone:     "No skill overlap found",
	tierWeak:     "Weak skill match",
	tierModerate: "Moderate skill match",
	tierStrong:   "Strong skill match",
}

var salaryCopy = [...]string{
	tierNone:     "Salary far outside expectations",
	tierWeak:     "Salary outside expectations",
	tierModerate: "Salary roughly compatible",
	tierStrong:   "Salary within expectations",
}

var cultureCopy = [...]string{
	tierNone:     "Poor culture fit",
	tierWeak:     "Weak culture fit",
	tierModerate: "Reasonable culture fit",
	tierStrong:   "Good culture fit",
}

// Explain renders a short human-readable summary of a score breakdown for
// inclusion in a MatchResult.
func Explain(breakdown types.ScoreBreakdown) string {
	parts := []string{
		skillsCopy[tierOf(breakdown.SkillsMatch)],
		salaryCopy[tierOf(breakdown.SalaryFit)],
		cultureCopy[tierOf(breakdown.CompanyCulture)],
	}
	if breakdown.ResponseLikelihood >= 0.7 {
		parts = append(parts, "Employer likely to respond")
	}
	if breakdown.BehaviorBoost > 0.1 {
		parts = append(parts, "Boosted by profile activity")
	}
	return strings.Join(parts, ". ")
}
