// Package observability provides formatted output utilities for verbose CLI
// mode and the human-readable review queue summary.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jrhoades1/job-application-system/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedRequirements outputs a summary of the parsed posting.
func (p *Printer) PrintExtractedRequirements(reqs *types.ExtractedRequirements) {
	if reqs == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hard requirements: %d\n", len(reqs.HardRequirements)))
	sb.WriteString(fmt.Sprintf("Preferred:         %d\n", len(reqs.Preferred)))
	sb.WriteString(fmt.Sprintf("Responsibilities:  %d\n", len(reqs.Responsibilities)))
	sb.WriteString(fmt.Sprintf("Keywords:          %s\n", previewList(reqs.Keywords)))
	if len(reqs.RedFlags) > 0 {
		sb.WriteString(fmt.Sprintf("Red flags:         %s\n", previewList(reqs.RedFlags)))
	}
	p.printBox("Extracted Requirements", strings.TrimRight(sb.String(), "\n"))
}

// PrintScoreReport outputs the overall score and per-requirement judgments.
func (p *Printer) PrintScoreReport(score types.OverallScore, matches []types.RequirementMatch) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %s (%.1f%%)\n", score.Overall, score.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Strong: %d  Partial: %d  Gaps: %d\n", score.StrongCount, score.PartialCount, score.GapCount))
	sb.WriteString("\n")

	shown := 0
	for _, match := range matches {
		if shown == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(matches)-shown))
			break
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", match.MatchType, match.Requirement))
		shown++
	}
	p.printBox("Score Report", strings.TrimRight(sb.String(), "\n"))
}

func previewList(items []string) string {
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:maxItemsToShow], ", ") + fmt.Sprintf(" (+%d more)", len(items)-maxItemsToShow)
}
