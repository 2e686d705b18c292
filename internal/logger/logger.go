// Package logger constructs the zap logger shared across the matcher and
// provides structured-field helpers for scoring events.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Structured log field keys used by batch scoring.
const (
	// FieldCandidateID identifies the candidate being scored.
	FieldCandidateID = "candidate_id"
	// FieldJobID identifies the job listing being scored.
	FieldJobID = "job_id"
	// FieldGroup identifies the batch group a job was scheduled in.
	FieldGroup = "group"
)

// New builds the process logger. JSON encoding is for machine-consumed
// output; console encoding for interactive use.
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
	return cfg.Build()
}

// MatchFields returns the standard fields identifying one candidate/job
// scoring, omitting blank identifiers to keep entries compact.
func MatchFields(candidateID, jobID string) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	if strings.TrimSpace(candidateID) != "" {
		fields = append(fields, zap.String(FieldCandidateID, candidateID))
	}
	if strings.TrimSpace(jobID) != "" {
		fields = append(fields, zap.String(FieldJobID, jobID))
	}
	return fields
}

// Safe returns the logger itself, or a no-op logger when nil, so callers
// never have to guard log statements.
func Safe(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
