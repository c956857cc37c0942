package inspect

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/multierr"
)

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// loadGitIgnore compiles the working directory's .gitignore.
// Returns nil when there is none.
func loadGitIgnore() *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		return nil
	}
	return gi
}

// isInspectable reports whether the file type is understood
func isInspectable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css", ".html", ".htm":
		return true
	}
	return false
}

// shouldSkipFile determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Extension check (fast): only .css and .html files
// 2. Gitignore check: skip files gi ignores (only for relative paths)
func shouldSkipFile(path string, gi *ignore.GitIgnore) bool {
	if !isInspectable(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are not affected by the project gitignore
	if gi != nil && !filepath.IsAbs(path) && gi.MatchesPath(path) {
		return true
	}

	return false
}

// isGlob reports whether pattern contains glob syntax. Files and
// directories named literally are always inspected, gitignored or not:
// build output such as dist/ is usually ignored.
func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandPattern turns a directory into a recursive glob
func expandPattern(pattern string) string {
	info, err := os.Stat(pattern)
	if err == nil && info.IsDir() {
		return filepath.Join(pattern, "**", "*")
	}
	return pattern
}

// DiscoverFiles expands glob patterns (or directories) into inspectable files
func DiscoverFiles(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	gi := loadGitIgnore()

	for _, pattern := range patterns {
		filter := gi
		if !isGlob(pattern) {
			filter = nil
		}

		matches, err := doublestar.FilepathGlob(expandPattern(pattern))
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match, filter) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	sort.Strings(allFiles)
	return allFiles, stats, nil
}

// ParseFiles parses every file. Unreadable or unparsable files are skipped;
// their errors are combined into the returned error while the remaining
// sheets are still returned.
func ParseFiles(files []string) ([]*Sheet, error) {
	var sheets []*Sheet
	var errs error
	for _, file := range files {
		sheet, err := scanFile(file)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		sheets = append(sheets, sheet)
	}
	return sheets, errs
}

// scanFile parses a single file
func scanFile(path string) (*Sheet, error) {
	// #nosec G304 - path comes from user-supplied patterns
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ParseHTML(path, content)
	default:
		return ParseCSS(path, content), nil
	}
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
