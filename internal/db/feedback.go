package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-matcher/internal/types"
)

// SaveFeedback stores one immutable feedback record and returns its ID.
func (db *DB) SaveFeedback(ctx context.Context, record types.FeedbackRecord) (uuid.UUID, error) {
	breakdown, err := json.Marshal(record.Breakdown)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal breakdown: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO feedback_records (job_id, placed, breakdown)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		record.JobID, record.Placed, breakdown,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save feedback record: %w", err)
	}
	return id, nil
}

// ListFeedbackSince returns all feedback records recorded at or after the
// given time, oldest first.
func (db *DB) ListFeedbackSince(ctx context.Context, since time.Time) ([]types.FeedbackRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_id, placed, breakdown, recorded_at
		 FROM feedback_records
		 WHERE recorded_at >= $1
		 ORDER BY recorded_at ASC`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback records: %w", err)
	}
	defer rows.Close()

	var records []types.FeedbackRecord
	for rows.Next() {
		var record types.FeedbackRecord
		var breakdown []byte
		if err := rows.Scan(&record.ID, &record.JobID, &record.Placed, &breakdown, &record.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback record: %w", err)
		}
		if err := json.Unmarshal(breakdown, &record.Breakdown); err != nil {
			return nil, fmt.Errorf("failed to unmarshal breakdown for record %s: %w", record.ID, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback records: %w", err)
	}
	return records, nil
}
