package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/types"
)

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Update the weight snapshot from placement feedback",
	Long:  "Reads feedback records from a JSON file or from the configured database, derives a new weight snapshot with bounded nudges, publishes it, and prints the result. With a database configured the new snapshot is also persisted.",
	RunE:  runTune,
}

var (
	tuneFeedback string
	tuneSince    time.Duration
	tuneOutput   string
)

func init() {
	tuneCmd.Flags().StringVar(&tuneFeedback, "feedback", "", "Path to JSON array of FeedbackRecord entries (omit to read from the database)")
	tuneCmd.Flags().DurationVar(&tuneSince, "since", 30*24*time.Hour, "How far back to read feedback from the database")
	tuneCmd.Flags().StringVarP(&tuneOutput, "out", "o", "", "Path to output WeightSnapshot JSON file (default: stdout)")

	rootCmd.AddCommand(tuneCmd)
}

func runTune(cmd *cobra.Command, _ []string) error {
	eng, cfg, log, err := buildEngine()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var records []types.FeedbackRecord
	var store *db.DB

	switch {
	case tuneFeedback != "":
		data, err := os.ReadFile(tuneFeedback)
		if err != nil {
			return fmt.Errorf("failed to read feedback file %s: %w", tuneFeedback, err)
		}
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("failed to unmarshal feedback JSON: %w", err)
		}
	case cfg.DatabaseURL != "":
		store, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to feedback store: %w", err)
		}
		defer store.Close()

		records, err = store.ListFeedbackSince(ctx, time.Now().Add(-tuneSince))
		if err != nil {
			return fmt.Errorf("failed to load feedback records: %w", err)
		}
	default:
		return fmt.Errorf("either --feedback or a database URL is required")
	}

	// Restore the last persisted snapshot before tuning so nudges build on
	// the weights actually in service, not the startup defaults.
	if store != nil {
		snapshot, found, err := store.LatestSnapshot(ctx)
		if err != nil {
			return fmt.Errorf("failed to restore snapshot: %w", err)
		}
		if found {
			eng.ReplaceWeights(snapshot)
		}
	}

	next := eng.UpdateWeights(records)
	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintWeights(next)
	}

	if store != nil {
		if err := store.SaveSnapshot(ctx, next); err != nil {
			// Persistence is best-effort: the snapshot is already published
			// in-process, so log and keep going.
			log.Warn("failed to persist snapshot", zap.Error(err))
		}
	}
	return writeJSON(tuneOutput, next)
}
