package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

// loadCandidate reads, schema-validates, and unmarshals a candidate file.
func loadCandidate(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}
	if err := schemas.ValidateBytes(schemas.CandidateSchema, data); err != nil {
		return nil, fmt.Errorf("candidate file %s: %w", path, err)
	}
	var candidate types.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}
	return &candidate, nil
}

// loadJob reads, schema-validates, and unmarshals a single job file.
func loadJob(path string) (*types.JobListing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	if err := schemas.ValidateBytes(schemas.JobSchema, data); err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}
	var job types.JobListing
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}
	return &job, nil
}

// loadJobs unmarshals a JSON array of job listings. Individual malformed
// entries are left to the engine's skip-and-continue policy; only an
// unreadable or unparsable file fails here.
func loadJobs(path string) ([]types.JobListing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}
	var jobs []types.JobListing
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
	}
	return jobs, nil
}

// loadBehavior unmarshals optional behavior signals; an empty path yields nil.
func loadBehavior(path string) (*types.BehaviorSignals, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read behavior file %s: %w", path, err)
	}
	var behavior types.BehaviorSignals
	if err := json.Unmarshal(data, &behavior); err != nil {
		return nil, fmt.Errorf("failed to unmarshal behavior JSON: %w", err)
	}
	return &behavior, nil
}

// writeJSON marshals the value with indentation and writes it to the output
// path, or to stdout when the path is empty.
func writeJSON(outPath string, value any) error {
	output, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if outPath == "" {
		fmt.Println(string(output))
		return nil
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(outPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}
	return nil
}
