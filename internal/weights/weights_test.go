package weights

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestDefault_SumsToOne(t *testing.T) {
	sum := 0.0
	for _, w := range Default().Values() {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestClamped_BoundsEveryWeight(t *testing.T) {
	snap := Snapshot{
		SkillsMatch:        0.9,
		RequirementsFit:    -0.2,
		SalaryFit:          0.15,
		CompanyCulture:     0.0,
		ResponseLikelihood: 0.41,
	}.Clamped()

	for _, w := range snap.Values() {
		assert.GreaterOrEqual(t, w, MinWeight)
		assert.LessOrEqual(t, w, MaxWeight)
	}
	assert.Equal(t, 0.15, snap.SalaryFit, "in-range weights pass through unchanged")
}

func TestStore_ReplaceIsWholeSnapshot(t *testing.T) {
	store := NewStore(Default())

	before := store.Current()
	store.Replace(Snapshot{SkillsMatch: 0.4, RequirementsFit: 0.2, SalaryFit: 0.1, CompanyCulture: 0.1, ResponseLikelihood: 0.2})
	after := store.Current()

	assert.Equal(t, Default(), before, "copy handed out earlier is unaffected")
	assert.Equal(t, 0.4, after.SkillsMatch)
}

func TestStore_ConcurrentReadersSeeConsistentSnapshots(t *testing.T) {
	store := NewStore(Default())

	a := Snapshot{SkillsMatch: 0.1, RequirementsFit: 0.1, SalaryFit: 0.1, CompanyCulture: 0.1, ResponseLikelihood: 0.1}
	b := Snapshot{SkillsMatch: 0.3, RequirementsFit: 0.3, SalaryFit: 0.3, CompanyCulture: 0.3, ResponseLikelihood: 0.3}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				store.Replace(a)
			} else {
				store.Replace(b)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			got := store.Current()
			// Every read must be one of the fully published snapshots,
			// never a mix of fields from both.
			if got != Default() && got != a && got != b {
				t.Errorf("observed torn snapshot: %+v", got)
				return
			}
		}
	}()
	wg.Wait()
}

func placedRecord(breakdown types.ScoreBreakdown) types.FeedbackRecord {
	return types.FeedbackRecord{Placed: true, Breakdown: breakdown}
}

func TestTuner_StrongSkillsCorrelationRaisesSkillsWeight(t *testing.T) {
	store := NewStore(Default())
	tuner := NewTuner(store)

	// All placements had high skills sub-scores and mid-range everything
	// else: skills weight rises by the nudge, the rest fall (correlation 0).
	records := make([]types.FeedbackRecord, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, placedRecord(types.ScoreBreakdown{
			SkillsMatch:        0.9,
			RequirementsFit:    0.5,
			SalaryFit:          0.5,
			CompanyCulture:     0.5,
			ResponseLikelihood: 0.5,
		}))
	}

	next := tuner.Update(records)

	assert.InDelta(t, Default().SkillsMatch+NudgeStep, next.SkillsMatch, 1e-9)
	assert.InDelta(t, Default().SalaryFit-NudgeStep, next.SalaryFit, 1e-9)
	assert.Equal(t, next, store.Current(), "update publishes the new snapshot")
}

func TestTuner_SkillsWeightClampsAtCeiling(t *testing.T) {
	store := NewStore(Default())
	tuner := NewTuner(store)

	records := []types.FeedbackRecord{placedRecord(types.ScoreBreakdown{
		SkillsMatch: 0.95, RequirementsFit: 0.9, SalaryFit: 0.9, CompanyCulture: 0.9, ResponseLikelihood: 0.9,
	})}

	// Two updates would push skills from 0.35 to 0.45 without the clamp.
	tuner.Update(records)
	next := tuner.Update(records)

	assert.Equal(t, MaxWeight, next.SkillsMatch)
}

func TestTuner_RepeatedUpdatesStayWithinBounds(t *testing.T) {
	store := NewStore(Default())
	tuner := NewTuner(store)

	noisy := []types.FeedbackRecord{
		placedRecord(types.ScoreBreakdown{SkillsMatch: 0.9}),
		placedRecord(types.ScoreBreakdown{RequirementsFit: 0.9}),
	}
	for i := 0; i < 50; i++ {
		snap := tuner.Update(noisy)
		for _, w := range snap.Values() {
			require.GreaterOrEqual(t, w, MinWeight)
			require.LessOrEqual(t, w, MaxWeight)
		}
	}
}

func TestTuner_EmptyFeedbackLeavesSnapshotUnchanged(t *testing.T) {
	store := NewStore(Default())
	tuner := NewTuner(store)

	next := tuner.Update(nil)
	assert.Equal(t, Default(), next)
	assert.Equal(t, Default(), store.Current())

	// Records with no placements carry no signal either.
	next = tuner.Update([]types.FeedbackRecord{{Placed: false}})
	assert.Equal(t, Default(), next)
}
