package inspect

// Config holds inspection configuration
type Config struct {
	Patterns []string // Files to inspect (e.g., "dist/**/*.css")
	Strict   bool     // Fail on warnings too

	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues
	PrintLinterName    bool // Show (rule) suffix
	UseColors          bool // Force color output
}

// Position locates a finding in a scanned file
type Position struct {
	File   string
	Line   int
	Column int    // 1-based
	Text   string // Full source line, for display
}

// Declaration is one custom property declaration
type Declaration struct {
	Name  string
	Value string
	Block int // Rule block the declaration belongs to, unique per file
	Pos   Position
}

// Reference is one var() usage
type Reference struct {
	Name     string
	Fallback bool // var(--x, fallback)
	Pos      Position
}

// Sheet collects everything found in one file
type Sheet struct {
	Path         string
	Declarations []Declaration
	References   []Reference
	Classes      []string       // Distinct class selectors, in order of appearance
	Keyframes    []string       // @keyframes names
	Properties   map[string]int // Standard property name -> declaration count
	Placeholders []Position     // Unreplaced stylesheet placeholders
	ParseErrors  []string
}

// Result contains inspection results
type Result struct {
	Issues         []Issue
	FilesScanned   int
	FilesSkipped   int
	Declarations   int // Custom property declarations
	References     int // var() references
	Defined        int // Distinct declared custom properties
	Classes        int // Distinct class selectors
	Keyframes      int
	Categories     map[PropertyCategory]int
	TruncatedCount int // Issues removed due to limits
	Warnings       []string
}

// ErrorCount returns the number of error-severity issues
func (r *Result) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Failed reports whether the result should fail the run
func (r *Result) Failed(strict bool) bool {
	if strict {
		return len(r.Issues) > 0
	}
	return r.ErrorCount() > 0
}

// OutputFormat represents the inspection output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics only
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
