package engine

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/weights"
)

func testCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:     uuid.New(),
		Name:   "Ada Lovelace",
		Skills: "go postgres docker kubernetes",
	}
}

func testJob(title string, required ...string) types.JobListing {
	return types.JobListing{
		ID:             uuid.New(),
		Title:          title,
		RequiredSkills: required,
	}
}

func TestScoreMatch_BoundsAndGateInvariant(t *testing.T) {
	e := New(Options{})
	candidate := testCandidate()
	job := testJob("Platform Engineer", "go", "postgres")

	result, err := e.ScoreMatch(candidate, &job, nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)
	assert.GreaterOrEqual(t, result.Confidence, 0.1)
	assert.LessOrEqual(t, result.Confidence, 1.0)

	// Anything the engine surfaces has passed both gate floors.
	assert.GreaterOrEqual(t, result.Score, e.Thresholds().MinimumScore)
	assert.GreaterOrEqual(t, result.Breakdown.SkillsMatch, e.Thresholds().SkillsMinimum)
	assert.NotEmpty(t, result.Explanation)
	assert.Equal(t, job.ID, result.JobID)
}

func TestScoreMatch_GatedPairIsNoMatchNotError(t *testing.T) {
	e := New(Options{})
	candidate := &types.CandidateProfile{ID: uuid.New(), Name: "Ada", Skills: "python"}
	job := testJob("Systems Engineer", "rust", "c++")

	result, err := e.ScoreMatch(candidate, &job, nil)
	require.NoError(t, err)
	assert.Nil(t, result, "zero skill overlap fails the skills floor")
}

func TestScoreMatch_MalformedJobIsTypedError(t *testing.T) {
	e := New(Options{})
	candidate := testCandidate()
	job := testJob("Backend Engineer", "go")
	job.SalaryMin, job.SalaryMax = 100_000, 50_000

	result, err := e.ScoreMatch(candidate, &job, nil)
	assert.Nil(t, result)

	var malformed *types.MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "job", malformed.Entity)
}

func TestScoreMatch_MalformedCandidateIsTypedError(t *testing.T) {
	e := New(Options{})
	candidate := &types.CandidateProfile{ID: uuid.New()} // missing required name
	job := testJob("Backend Engineer", "go")

	_, err := e.ScoreMatch(candidate, &job, nil)
	var malformed *types.MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "candidate", malformed.Entity)
}

func TestScoreMatch_Idempotent(t *testing.T) {
	e := New(Options{})
	candidate := testCandidate()
	job := testJob("Platform Engineer", "go", "postgres", "terraform")
	behavior := &types.BehaviorSignals{RecentActivity: 8, ApplicationSuccessRate: 0.6}

	first, err := e.ScoreMatch(candidate, &job, behavior)
	require.NoError(t, err)
	second, err := e.ScoreMatch(candidate, &job, behavior)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same inputs and snapshot yield identical results")
}

func TestScoreMatch_MissingOptionalFieldsNeverError(t *testing.T) {
	e := New(Options{})
	candidate := &types.CandidateProfile{ID: uuid.New(), Name: "Ada", Skills: "go"}
	job := testJob("Backend Engineer", "go")

	result, err := e.ScoreMatch(candidate, &job, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 0.7, result.Breakdown.SalaryFit, "absent salary data resolves to the neutral default")
}

type fixedEnhancer struct{ score float64 }

func (f fixedEnhancer) Enhance(_ types.ScoreBreakdown, _ float64) float64 { return f.score }

func TestScoreMatch_EnhancerHookTransformsScore(t *testing.T) {
	e := New(Options{Enhancer: fixedEnhancer{score: 0.93}})
	candidate := testCandidate()
	job := testJob("Platform Engineer", "go")

	result, err := e.ScoreMatch(candidate, &job, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 0.93, result.Score)
}

func TestNopEnhancer_LeavesScoreUnchanged(t *testing.T) {
	assert.Equal(t, 0.42, NopEnhancer{}.Enhance(types.ScoreBreakdown{}, 0.42))
}

func TestUpdateWeights_PublishesAndReturnsNewSnapshot(t *testing.T) {
	e := New(Options{})

	records := make([]types.FeedbackRecord, 0, 4)
	for i := 0; i < 4; i++ {
		records = append(records, types.FeedbackRecord{
			Placed: true,
			Breakdown: types.ScoreBreakdown{
				SkillsMatch: 0.9, RequirementsFit: 0.5, SalaryFit: 0.5, CompanyCulture: 0.5, ResponseLikelihood: 0.5,
			},
		})
	}

	next := e.UpdateWeights(records)
	assert.InDelta(t, weights.Default().SkillsMatch+weights.NudgeStep, next.SkillsMatch, 1e-9)
	assert.Equal(t, next, e.CurrentWeights())
}

func TestReplaceWeights_ClampsRestoredSnapshot(t *testing.T) {
	e := New(Options{})
	e.ReplaceWeights(weights.Snapshot{SkillsMatch: 0.9, RequirementsFit: 0.2, SalaryFit: 0.2, CompanyCulture: 0.2, ResponseLikelihood: 0.2})

	assert.Equal(t, weights.MaxWeight, e.CurrentWeights().SkillsMatch)
}

func TestErrorsAs_MalformedInputUnwraps(t *testing.T) {
	err := &types.MalformedInputError{Entity: "job", ID: "x", Cause: errors.New("boom")}
	assert.EqualError(t, errors.Unwrap(err), "boom")
}
