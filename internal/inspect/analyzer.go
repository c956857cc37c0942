package inspect

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
)

// Lint inspects every file matching config.Patterns
func Lint(config Config) (*Result, error) {
	files, stats, err := DiscoverFiles(config.Patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}

	sheets, readErrs := ParseFiles(files)

	result := Analyze(sheets)
	result.FilesSkipped = stats.FilesSkipped
	for _, e := range multierr.Errors(readErrs) {
		result.Warnings = append(result.Warnings, e.Error())
	}

	switch {
	case stats.FilesDiscovered == 0:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no files matched %s", strings.Join(config.Patterns, ", ")))
	case stats.FilesScanned == 0:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("all %d discovered files were skipped (not CSS/HTML or gitignored)", stats.FilesDiscovered))
	}

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// Analyze applies the inspection rules across all sheets. Declarations in
// one file satisfy references in any other, as they would once the files
// are loaded into the same document.
func Analyze(sheets []*Sheet) *Result {
	result := &Result{
		FilesScanned: len(sheets),
		Categories:   make(map[PropertyCategory]int),
	}

	declared := make(map[string]Declaration) // first declaration per name
	var declOrder []string
	referenced := make(map[string]bool)
	classes := make(map[string]bool)

	for _, sheet := range sheets {
		result.Declarations += len(sheet.Declarations)
		result.References += len(sheet.References)
		result.Keyframes += len(sheet.Keyframes)
		result.Warnings = append(result.Warnings, sheet.ParseErrors...)

		for _, d := range sheet.Declarations {
			if _, ok := declared[d.Name]; !ok {
				declared[d.Name] = d
				declOrder = append(declOrder, d.Name)
			}
		}
		for _, r := range sheet.References {
			referenced[r.Name] = true
		}
		for _, c := range sheet.Classes {
			classes[c] = true
		}
		for prop, n := range sheet.Properties {
			result.Categories[categorizeProperty(prop)] += n
		}

		result.Issues = append(result.Issues, findDuplicates(sheet)...)
		for _, pos := range sheet.Placeholders {
			result.Issues = append(result.Issues,
				newIssue(RuleUnreplacedPlaceholder, SeverityError, IssueUnreplacedPlaceholder, pos))
		}
	}

	result.Defined = len(declared)
	result.Classes = len(classes)

	for _, sheet := range sheets {
		for _, r := range sheet.References {
			if r.Fallback {
				continue
			}
			if _, ok := declared[r.Name]; ok {
				continue
			}
			result.Issues = append(result.Issues,
				newIssue(RuleUndefinedProperty, SeverityError, fmt.Sprintf(IssueUndefinedProperty, r.Name), r.Pos))
		}
	}

	for _, name := range declOrder {
		if referenced[name] {
			continue
		}
		result.Issues = append(result.Issues,
			newIssue(RuleUnusedProperty, SeverityWarning, fmt.Sprintf(IssueUnusedProperty, name), declared[name].Pos))
	}

	sortIssues(result.Issues)
	return result
}

// findDuplicates reports custom properties declared twice in one block
func findDuplicates(sheet *Sheet) []Issue {
	type key struct {
		block int
		name  string
	}
	seen := make(map[key]bool)

	var issues []Issue
	for _, d := range sheet.Declarations {
		k := key{block: d.Block, name: d.Name}
		if seen[k] {
			issues = append(issues,
				newIssue(RuleDuplicateProperty, SeverityWarning, fmt.Sprintf(IssueDuplicateProperty, d.Name), d.Pos))
			continue
		}
		seen[k] = true
	}
	return issues
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 {
		perLinter := make(map[string]int)
		var kept []Issue
		for _, issue := range issues {
			if perLinter[issue.FromLinter] < config.MaxIssuesPerLinter {
				kept = append(kept, issue)
				perLinter[issue.FromLinter]++
			}
		}
		issues = kept
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
