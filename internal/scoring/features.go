// Package scoring computes the per-dimension sub-scores for a candidate/job
// pair, aggregates them under a weight snapshot, estimates confidence, and
// applies the quality gate. Every function here is a pure computation over
// its inputs; there is no shared mutable state.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// neutralSubscore stands in for a culture sub-factor when one side of
	// the comparison is missing; absence of a signal is not a bad signal.
	neutralSubscore = 0.5

	// salaryNeutral is returned when either side of the salary comparison is
	// unavailable. salaryFloor is the score for a poor fit outside the
	// tolerance band; it is deliberately never zero so salary alone cannot
	// erase a match from explanation text.
	salaryNeutral = 0.7
	salaryFloor   = 0.1

	// epsilon guards divisions against effectively-zero denominators.
	epsilon = 1e-9
)

// candidateSkillSet extracts the candidate's merged skill token set from
// the free-text profile fields.
func candidateSkillSet(candidate *types.CandidateProfile) skills.Set {
	return skills.ExtractAll(candidate.Skills, candidate.Experience, candidate.Description)
}

// jobSkillSet extracts the job's skill token set from both the required and
// preferred lists. Preferred skills count toward the match denominator, so a
// posting with a long wish list demands correspondingly broader overlap.
func jobSkillSet(job *types.JobListing) skills.Set {
	return skills.ExtractAll(
		strings.Join(job.RequiredSkills, " "),
		strings.Join(job.PreferredSkills, " "),
	)
}

// SkillsMatch scores skill overlap between candidate and job in [0,1].
// An empty skill set on either side scores 0: no match is provable.
func SkillsMatch(candidate *types.CandidateProfile, job *types.JobListing) float64 {
	return skills.MatchScore(candidateSkillSet(candidate), jobSkillSet(job))
}

// RequirementsFit scores the job's discrete requirement list against the
// candidate in [0,1]. A requirement contributes its full weight when every
// token of its name appears in the candidate's skill set, half weight when
// at least one token does, and zero otherwise. A job with no requirements
// scores 1.0: the list is vacuously satisfied.
func RequirementsFit(candidate *types.CandidateProfile, job *types.JobListing) float64 {
	if len(job.Requirements) == 0 {
		return 1.0
	}

	have := candidateSkillSet(candidate)

	achieved := 0.0
	total := 0.0
	for _, req := range job.Requirements {
		weight := req.EffectiveWeight()
		total += weight

		tokens := skills.Extract(req.Name)
		if len(tokens) == 0 {
			continue
		}
		matched := 0
		for token := range tokens {
			if have.Contains(token) {
				matched++
			}
		}
		switch {
		case matched == len(tokens):
			achieved += weight
		case matched > 0:
			achieved += weight / 2
		}
	}

	if total < epsilon {
		return 1.0
	}
	return math.Min(1.0, achieved/total)
}

// SalaryFit scores salary compatibility in [0,1]. The candidate's expected
// salary is their stated expectation, or current salary scaled by 1.1 when
// no expectation is stated; the job side is the midpoint of its published
// range. When either side is unavailable the score is the neutral 0.7.
// Inside the tolerance band the score degrades linearly from 1.0 down to
// 0.7; outside the band it is the hard floor of 0.1.
func SalaryFit(candidate *types.CandidateProfile, job *types.JobListing, tolerance float64) float64 {
	expected := candidate.SalaryExpectation
	if expected <= 0 {
		expected = candidate.CurrentSalary * 1.1
	}
	jobSalary := job.SalaryMidpoint()
	if expected <= 0 || jobSalary <= 0 {
		return salaryNeutral
	}

	distance := math.Abs(expected-jobSalary) / jobSalary
	if tolerance < epsilon {
		if distance < epsilon {
			return 1.0
		}
		return salaryFloor
	}
	if distance <= tolerance {
		return 1.0 - (distance/tolerance)*0.3
	}
	return salaryFloor
}

// CultureFit scores workplace compatibility in [0,1] as the average of four
// sub-factors: company-size match, work-style match, industry experience,
// and values alignment. A missing sub-signal contributes the neutral 0.5
// rather than failing the whole computation.
func CultureFit(candidate *types.CandidateProfile, job *types.JobListing) float64 {
	sum := companySizeMatch(candidate.PreferredCompanySize, job.CompanySize)
	sum += workStyleMatch(candidate.WorkPreferences, job.WorkEnvironment)
	sum += industryMatch(candidate.Industries, job.Industry)
	sum += valuesAlignment(candidate.Values, job.CompanyValues)
	return sum / 4
}

func companySizeMatch(preferred, actual types.CompanySize) float64 {
	p, okP := preferred.Order()
	a, okA := actual.Order()
	if !okP || !okA {
		return neutralSubscore
	}
	distance := p - a
	if distance < 0 {
		distance = -distance
	}
	score := 1.0 - 0.25*float64(distance)
	if score < 0 {
		return 0
	}
	return score
}

func workStyleMatch(preferences []string, environment string) float64 {
	if environment == "" || len(preferences) == 0 {
		return neutralSubscore
	}
	for _, pref := range preferences {
		if strings.EqualFold(strings.TrimSpace(pref), environment) {
			return 1.0
		}
	}
	return 0.2
}

func industryMatch(industries []string, industry string) float64 {
	if industry == "" || len(industries) == 0 {
		return neutralSubscore
	}
	for _, have := range industries {
		if strings.EqualFold(strings.TrimSpace(have), industry) {
			return 1.0
		}
	}
	return 0.3
}

func valuesAlignment(candidateValues, companyValues []string) float64 {
	if len(candidateValues) == 0 || len(companyValues) == 0 {
		return neutralSubscore
	}
	have := make(map[string]struct{}, len(candidateValues))
	for _, v := range candidateValues {
		have[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	matched := 0
	for _, v := range companyValues {
		if _, ok := have[strings.ToLower(strings.TrimSpace(v))]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(companyValues))
}

// ResponseLikelihood estimates how likely the employer is to respond, in
// [0,1]. This is a heuristic proxy built from additive bumps on job and
// behavior attributes, not a prediction.
func ResponseLikelihood(job *types.JobListing, behavior *types.BehaviorSignals) float64 {
	score := 0.5
	if job.FastReplyGuarantee {
		score += 0.3
	}
	if job.CompanyRating >= 4.0 {
		score += 0.2
	}
	if job.Verified {
		score += 0.15
	}
	if job.RecentHires > 0 {
		score += 0.1
	}
	if behavior != nil {
		if behavior.ApplicationSuccessRate > 0.5 {
			score += 0.1
		}
		if behavior.ProfileViewsThisCompany > 0 {
			score += 0.05
		}
	}
	return math.Min(1.0, score)
}

// Breakdown computes all five sub-scores plus the behavior boost for one
// candidate/job pair. Pure function of its inputs; scoring the same inputs
// twice yields identical results.
func Breakdown(candidate *types.CandidateProfile, job *types.JobListing, behavior *types.BehaviorSignals, salaryTolerance float64) types.ScoreBreakdown {
	return types.ScoreBreakdown{
		SkillsMatch:        SkillsMatch(candidate, job),
		RequirementsFit:    RequirementsFit(candidate, job),
		SalaryFit:          SalaryFit(candidate, job, salaryTolerance),
		CompanyCulture:     CultureFit(candidate, job),
		ResponseLikelihood: ResponseLikelihood(job, behavior),
		BehaviorBoost:      BehaviorBoost(candidate, behavior),
	}
}
