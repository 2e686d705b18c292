package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/weights"
)

// SaveSnapshot records a published weight snapshot so it can be restored
// after a process restart.
func (db *DB) SaveSnapshot(ctx context.Context, snapshot weights.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO weight_snapshots (snapshot) VALUES ($1)`,
		payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recently saved snapshot. The boolean is
// false when none has been saved yet; that is not an error.
func (db *DB) LatestSnapshot(ctx context.Context) (weights.Snapshot, bool, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT snapshot FROM weight_snapshots ORDER BY created_at DESC LIMIT 1`,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return weights.Snapshot{}, false, nil
	}
	if err != nil {
		return weights.Snapshot{}, false, fmt.Errorf("failed to load latest snapshot: %w", err)
	}

	var snapshot weights.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return weights.Snapshot{}, false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, true, nil
}
