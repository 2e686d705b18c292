package skills

// Weighting of exact vs synonym matches. Exact overlap counts for more than
// a synonym hit; the sum is capped at 1 by MatchScore.
const (
	exactMatchWeight    = 1.2
	semanticMatchWeight = 0.8
)

// MatchScore scores how well a candidate skill set covers a required skill
// set. The exact ratio is the fraction of required tokens present verbatim;
// the semantic ratio is the fraction of required tokens covered through the
// synonym table. The result is min(1, exact*1.2 + semantic*0.8).
//
// If either set is empty the score is 0: with no tokens on one side no match
// is provable, and returning 0 avoids dividing by an empty requirement set.
func MatchScore(have, required Set) float64 {
	if len(have) == 0 || len(required) == 0 {
		return 0
	}

	exact := 0
	semantic := 0
	for req := range required {
		if have.Contains(req) {
			exact++
			continue
		}
		for candidate := range have {
			if Related(candidate, req) {
				semantic++
				break
			}
		}
	}

	total := float64(len(required))
	score := float64(exact)/total*exactMatchWeight + float64(semantic)/total*semanticMatchWeight
	if score > 1 {
		score = 1
	}
	return score
}
