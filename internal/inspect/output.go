package inspect

import (
	"fmt"
	"io"
)

// DetermineOutputFormat selects the output format from the flag value
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Quiet runs only care about the exit code
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary", "stats":
		return OutputSummary
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the inspection result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config) error {
	switch format {
	case OutputSummary:
		summary := NewSummaryReporter(w, ShouldUseColors(config.UseColors))
		summary.PrintStatistics(*result)
		summary.PrintCategories(*result)
		summary.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("write json: %w", err)
		}

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		NewSummaryReporter(w, ShouldUseColors(config.UseColors)).PrintWarnings(*result)
	}
	return nil
}
