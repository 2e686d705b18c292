package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/observability"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a batch of job listings for one candidate",
	Long:  "Scores every job in the batch against the candidate concurrently, skips unscorable listings, and prints the top results ordered by score times confidence.",
	RunE:  runRank,
}

var (
	rankCandidate string
	rankJobs      string
	rankBehavior  string
	rankOutput    string
)

func init() {
	rankCmd.Flags().StringVar(&rankCandidate, "candidate", "", "Path to CandidateProfile JSON file (required)")
	rankCmd.Flags().StringVar(&rankJobs, "jobs", "", "Path to JSON array of JobListing records (required)")
	rankCmd.Flags().StringVar(&rankBehavior, "behavior", "", "Path to BehaviorSignals JSON file (optional)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := rankCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	eng, cfg, _, err := buildEngine()
	if err != nil {
		return err
	}

	candidate, err := loadCandidate(rankCandidate)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(rankJobs)
	if err != nil {
		return err
	}
	behavior, err := loadBehavior(rankBehavior)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results, err := eng.RankJobs(ctx, candidate, jobs, behavior)
	if err != nil {
		return fmt.Errorf("failed to rank jobs: %w", err)
	}
	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRanking(results)
	}
	return writeJSON(rankOutput, results)
}
