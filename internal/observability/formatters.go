// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/weights"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of one match result.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:        %s\n", result.JobTitle))
	sb.WriteString(fmt.Sprintf("Score:      %.3f\n", result.Score))
	sb.WriteString(fmt.Sprintf("Confidence: %.3f\n", result.Confidence))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:       %.2f\n", result.Breakdown.SkillsMatch))
	sb.WriteString(fmt.Sprintf("Requirements: %.2f\n", result.Breakdown.RequirementsFit))
	sb.WriteString(fmt.Sprintf("Salary:       %.2f\n", result.Breakdown.SalaryFit))
	sb.WriteString(fmt.Sprintf("Culture:      %.2f\n", result.Breakdown.CompanyCulture))
	sb.WriteString(fmt.Sprintf("Response:     %.2f\n", result.Breakdown.ResponseLikelihood))
	sb.WriteString(fmt.Sprintf("Boost:        %.2f\n", result.Breakdown.BehaviorBoost))
	sb.WriteString("\n")
	sb.WriteString(result.Explanation)

	p.printBox("Match Result", sb.String())
}

// PrintRanking outputs a compact table of ranked match results.
func (p *Printer) PrintRanking(results []types.MatchResult) {
	var sb strings.Builder
	if len(results) == 0 {
		sb.WriteString("No jobs passed the quality gate.")
	}
	for i, result := range results {
		sb.WriteString(fmt.Sprintf("%d. %-28s %.3f × %.3f\n",
			i+1, result.JobTitle, result.Score, result.Confidence))
	}
	p.printBox("Ranking", sb.String())
}

// PrintWeights outputs the current weight snapshot.
func (p *Printer) PrintWeights(snapshot weights.Snapshot) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills:       %.2f\n", snapshot.SkillsMatch))
	sb.WriteString(fmt.Sprintf("Requirements: %.2f\n", snapshot.RequirementsFit))
	sb.WriteString(fmt.Sprintf("Salary:       %.2f\n", snapshot.SalaryFit))
	sb.WriteString(fmt.Sprintf("Culture:      %.2f\n", snapshot.CompanyCulture))
	sb.WriteString(fmt.Sprintf("Response:     %.2f", snapshot.ResponseLikelihood))
	p.printBox("Weight Snapshot", sb.String())
}
