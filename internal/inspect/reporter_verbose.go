package inspect

import (
	"fmt"
	"io"
	"strings"
)

// SummaryReporter prints statistics about the inspected stylesheets
type SummaryReporter struct {
	w         io.Writer
	useColors bool
}

// NewSummaryReporter creates a summary reporter
func NewSummaryReporter(w io.Writer, useColors bool) *SummaryReporter {
	return &SummaryReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs counts gathered while inspecting
func (r *SummaryReporter) PrintStatistics(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Stylesheet Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------------")

	fmt.Fprintf(r.w, "Files Scanned:           %d\n", result.FilesScanned)
	if result.FilesSkipped > 0 {
		fmt.Fprintf(r.w, "Files Skipped:           %d\n", result.FilesSkipped)
	}
	fmt.Fprintf(r.w, "Custom Properties:       %d (%d declarations)\n", result.Defined, result.Declarations)
	fmt.Fprintf(r.w, "var() References:        %d\n", result.References)
	fmt.Fprintf(r.w, "Class Selectors:         %d\n", result.Classes)
	fmt.Fprintf(r.w, "Keyframes:               %d\n", result.Keyframes)
	fmt.Fprintf(r.w, "Issues:                  %d (%d errors)\n", len(result.Issues), result.ErrorCount())
}

// PrintCategories shows how standard properties split across categories
func (r *SummaryReporter) PrintCategories(result Result) {
	rows := sortedCategories(result.Categories)
	if len(rows) == 0 {
		return
	}

	total := 0
	for _, row := range rows {
		total += row.Count
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Property Categories", r.useColors))
	fmt.Fprintln(r.w, "-------------------")
	for _, row := range rows {
		pct := float64(row.Count) / float64(total) * 100
		fmt.Fprintf(r.w, "%-11s %4d ", row.Category, row.Count)
		printProgressBar(r.w, pct)
	}
}

// PrintWarnings shows problems that did not produce issues
func (r *SummaryReporter) PrintWarnings(result Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	const barWidth = 20
	filled := int(percentage / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}

	fmt.Fprintf(w, "[%s%s] %.1f%%\n",
		strings.Repeat("█", filled),
		strings.Repeat("░", barWidth-filled),
		percentage)
}
