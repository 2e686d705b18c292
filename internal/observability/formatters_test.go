package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/weights"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchResult(&types.MatchResult{
		JobTitle:    "Backend Engineer",
		Score:       0.812,
		Confidence:  0.934,
		Explanation: "Strong skill match",
	})

	out := buf.String()
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "0.812")
	assert.Contains(t, out, "Strong skill match")
}

func TestPrintMatchResult_NilIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRanking_EmptyAndNonEmpty(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRanking(nil)
	assert.Contains(t, buf.String(), "No jobs passed")

	buf.Reset()
	printer.PrintRanking([]types.MatchResult{
		{JobTitle: "First", Score: 0.9, Confidence: 0.8},
		{JobTitle: "Second", Score: 0.7, Confidence: 0.9},
	})
	assert.Contains(t, buf.String(), "1. First")
	assert.Contains(t, buf.String(), "2. Second")
}

func TestPrintWeights(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWeights(weights.Default())
	assert.Contains(t, buf.String(), "Skills:       0.35")
}
