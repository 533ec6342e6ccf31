// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
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

// PrintMatchResult outputs a human-readable summary of a matching call.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Items scored:   %d\n", result.Summary.TotalItems))
	sb.WriteString(fmt.Sprintf("Strong matches: %d\n", result.Summary.StrongMatches))
	sb.WriteString(fmt.Sprintf("Good matches:   %d\n", result.Summary.GoodMatches))
	sb.WriteString(fmt.Sprintf("Gaps:           %d\n", result.Summary.GapCount))

	if len(result.Matches) > 0 {
		sb.WriteString("\nTop matches:\n")
		for i, m := range result.Matches {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Matches)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  %3d  %s\n", m.Score, truncate(m.Text, boxWidth-12)))
		}
	}

	p.printBox("Match Result", sb.String())
}

// PrintGaps outputs the unmet must-have requirements.
func (p *Printer) PrintGaps(gaps []types.Gap) {
	if len(gaps) == 0 {
		return
	}

	var sb strings.Builder
	for _, gap := range gaps {
		if gap.BestItemText != nil {
			sb.WriteString(fmt.Sprintf("%s (best %d: %s)\n", gap.Requirement, gap.BestScore, truncate(*gap.BestItemText, 30)))
		} else {
			sb.WriteString(fmt.Sprintf("%s (no matching item)\n", gap.Requirement))
		}
	}

	p.printBox("Coverage Gaps", sb.String())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
