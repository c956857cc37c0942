package inspect

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
	Truncated    int `json:"truncated,omitempty"`
}

// JSONStats contains declaration and usage statistics
type JSONStats struct {
	CustomProperties int            `json:"custom_properties"`
	Declarations     int            `json:"declarations"`
	References       int            `json:"references"`
	Classes          int            `json:"classes"`
	Keyframes        int            `json:"keyframes"`
	Categories       map[string]int `json:"categories"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the inspection result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	errors := result.ErrorCount()

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	categories := make(map[string]int, len(result.Categories))
	for cat, n := range result.Categories {
		categories[string(cat)] = n
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     len(result.Issues) - errors,
			FilesScanned: result.FilesScanned,
			Truncated:    result.TruncatedCount,
		},
		Stats: JSONStats{
			CustomProperties: result.Defined,
			Declarations:     result.Declarations,
			References:       result.References,
			Classes:          result.Classes,
			Keyframes:        result.Keyframes,
			Categories:       categories,
		},
		Issues:   jsonIssues,
		Warnings: result.Warnings,
	}
}
