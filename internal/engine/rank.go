package engine

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/types"
)

// RankJobs scores every job against the candidate and returns at most TopK
// results sorted by score*confidence descending, so a high score with low
// confidence can rank below a moderate score the engine trusts more. Ties
// keep the input order, making the output deterministic for identical
// inputs.
//
// Jobs are scored in fixed-size groups whose members run concurrently. One
// weight snapshot is pinned for the whole batch, so every job in the batch
// is ranked under the same weights. Failure handling is per job: a malformed
// job record is logged and skipped, never aborting the batch. Each group
// runs under a timeout; when it expires the unstarted remainder of that
// group is dropped while completed results are kept. Cancelling ctx stops
// scheduling further groups but keeps everything already scored.
func (e *Engine) RankJobs(ctx context.Context, candidate *types.CandidateProfile, jobs []types.JobListing, behavior *types.BehaviorSignals) ([]types.MatchResult, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	snap := e.weights.Current()
	scored := make([]*types.MatchResult, len(jobs))

	for start := 0; start < len(jobs); start += e.groupSize {
		if ctx.Err() != nil {
			break
		}
		end := min(start+e.groupSize, len(jobs))

		groupCtx, cancel := context.WithTimeout(ctx, e.groupTimeout)
		var g errgroup.Group
		g.SetLimit(e.groupSize)

		for i := start; i < end; i++ {
			if groupCtx.Err() != nil {
				// Group deadline hit: the rest of this group is dropped,
				// the batch moves on.
				break
			}
			job := &jobs[i]
			idx := i
			g.Go(func() error {
				if err := job.Validate(); err != nil {
					e.log.Warn("skipping unscorable job",
						append(logger.MatchFields(candidate.ID.String(), job.ID.String()),
							zap.Int(logger.FieldGroup, start/e.groupSize),
							zap.Error(err))...)
					return nil
				}
				scored[idx] = e.scoreWith(snap, candidate, job, behavior)
				return nil
			})
		}
		_ = g.Wait()
		cancel()
	}

	results := make([]types.MatchResult, 0, len(jobs))
	for _, r := range scored {
		if r != nil {
			results = append(results, *r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score*results[i].Confidence > results[j].Score*results[j].Confidence
	})

	if len(results) > e.topK {
		results = results[:e.topK]
	}
	return results, nil
}
