package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against one job listing",
	Long:  "Scores a candidate profile against a single job listing across the weighted dimensions and prints the match result, or reports that the pair failed the quality gate.",
	RunE:  runScore,
}

var (
	scoreCandidate string
	scoreJob       string
	scoreBehavior  string
	scoreOutput    string
)

func init() {
	scoreCmd.Flags().StringVar(&scoreCandidate, "candidate", "", "Path to CandidateProfile JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreJob, "job", "", "Path to JobListing JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreBehavior, "behavior", "", "Path to BehaviorSignals JSON file (optional)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output MatchResult JSON file (default: stdout)")

	if err := scoreCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	eng, cfg, _, err := buildEngine()
	if err != nil {
		return err
	}

	candidate, err := loadCandidate(scoreCandidate)
	if err != nil {
		return err
	}
	job, err := loadJob(scoreJob)
	if err != nil {
		return err
	}
	behavior, err := loadBehavior(scoreBehavior)
	if err != nil {
		return err
	}

	result, err := eng.ScoreMatch(candidate, job, behavior)
	if err != nil {
		return fmt.Errorf("failed to score match: %w", err)
	}
	if result == nil {
		fmt.Println("No match: the pair did not pass the quality gate.")
		return nil
	}
	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	}
	return writeJSON(scoreOutput, result)
}
