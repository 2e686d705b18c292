// Package engine ties the scoring pipeline together: single-pair scoring,
// concurrent batch ranking, and feedback-driven weight updates.
package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/scoring"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/weights"
)

// Batch ranking defaults. Jobs are scored in fixed-size groups; the final
// ranking keeps the top K results.
const (
	DefaultGroupSize    = 10
	DefaultTopK         = 5
	DefaultGroupTimeout = 2 * time.Second
)

// Options configures a new Engine. Zero values fall back to defaults.
type Options struct {
	Weights      weights.Snapshot
	Thresholds   scoring.Thresholds
	Enhancer     Enhancer
	Logger       *zap.Logger
	GroupSize    int
	TopK         int
	GroupTimeout time.Duration
}

// Engine scores candidate/job pairs and ranks batches of jobs. Scoring reads
// the current weight snapshot without locking; the only writer is the
// feedback tuner, which swaps in replacement snapshots atomically.
type Engine struct {
	weights    *weights.Store
	tuner      *weights.Tuner
	thresholds scoring.Thresholds
	enhancer   Enhancer
	log        *zap.Logger

	groupSize    int
	topK         int
	groupTimeout time.Duration
}

// New creates an engine from the given options.
func New(opts Options) *Engine {
	snap := opts.Weights
	if snap == (weights.Snapshot{}) {
		snap = weights.Default()
	}
	thresholds := opts.Thresholds
	if thresholds == (scoring.Thresholds{}) {
		thresholds = scoring.DefaultThresholds()
	}
	enhancer := opts.Enhancer
	if enhancer == nil {
		enhancer = NopEnhancer{}
	}
	groupSize := opts.GroupSize
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}
	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	groupTimeout := opts.GroupTimeout
	if groupTimeout <= 0 {
		groupTimeout = DefaultGroupTimeout
	}

	store := weights.NewStore(snap)
	return &Engine{
		weights:      store,
		tuner:        weights.NewTuner(store),
		thresholds:   thresholds,
		enhancer:     enhancer,
		log:          logger.Safe(opts.Logger),
		groupSize:    groupSize,
		topK:         topK,
		groupTimeout: groupTimeout,
	}
}

// CurrentWeights returns a copy of the weight snapshot in effect right now.
func (e *Engine) CurrentWeights() weights.Snapshot {
	return e.weights.Current()
}

// Thresholds returns the quality thresholds the engine was built with.
func (e *Engine) Thresholds() scoring.Thresholds {
	return e.thresholds
}

// ScoreMatch scores one candidate against one job. It returns (nil, nil)
// when the pair fails the quality gate (a gated match is "no match", not an
// error) and a *types.MalformedInputError when either record is structurally
// invalid. Missing optional fields never fail; they resolve to documented
// neutral defaults.
func (e *Engine) ScoreMatch(candidate *types.CandidateProfile, job *types.JobListing, behavior *types.BehaviorSignals) (*types.MatchResult, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	// One snapshot read per call: the whole computation sees a single,
	// fully published weight set.
	snap := e.weights.Current()
	return e.scoreWith(snap, candidate, job, behavior), nil
}

// scoreWith runs the pure scoring pipeline under a pinned weight snapshot.
// Returns nil when the match fails the quality gate.
func (e *Engine) scoreWith(snap weights.Snapshot, candidate *types.CandidateProfile, job *types.JobListing, behavior *types.BehaviorSignals) *types.MatchResult {
	breakdown := scoring.Breakdown(candidate, job, behavior, e.thresholds.SalaryTolerance)

	score := scoring.Aggregate(breakdown, snap)
	score = clamp01(e.enhancer.Enhance(breakdown, score))

	if !e.thresholds.Admit(score, breakdown) {
		return nil
	}

	return &types.MatchResult{
		JobID:       job.ID,
		JobTitle:    job.Title,
		Score:       score,
		Breakdown:   breakdown,
		Confidence:  scoring.Confidence(breakdown),
		Explanation: scoring.Explain(breakdown),
	}
}

// UpdateWeights derives a new weight snapshot from the feedback records and
// publishes it atomically; scoring calls already in flight keep the snapshot
// they read. An empty or signal-free feedback set leaves the current
// snapshot unchanged: tuning is best-effort, never correctness-critical.
func (e *Engine) UpdateWeights(records []types.FeedbackRecord) weights.Snapshot {
	next := e.tuner.Update(records)
	e.log.Info("weights updated",
		zap.Int("feedback_records", len(records)),
		zap.Float64("skills_match", next.SkillsMatch),
		zap.Float64("requirements_fit", next.RequirementsFit),
		zap.Float64("salary_fit", next.SalaryFit),
		zap.Float64("company_culture", next.CompanyCulture),
		zap.Float64("response_likelihood", next.ResponseLikelihood),
	)
	return next
}

// ReplaceWeights installs a snapshot directly, clamped to the documented
// per-weight bounds. External collaborators use this to restore a persisted
// snapshot at startup.
func (e *Engine) ReplaceWeights(snap weights.Snapshot) {
	e.weights.Replace(snap.Clamped())
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
