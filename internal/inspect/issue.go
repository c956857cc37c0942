package inspect

// Issue is a single inspection finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "undefined-property"
	Text        string   `json:"Text"`        // "custom property \"--css-gap\" is referenced but never declared"
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// Severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Rule names, reported as FromLinter
const (
	RuleUndefinedProperty     = "undefined-property"
	RuleUnusedProperty        = "unused-property"
	RuleDuplicateProperty     = "duplicate-property"
	RuleUnreplacedPlaceholder = "unreplaced-placeholder"
)

// Issue texts
const (
	IssueUndefinedProperty     = "custom property %q is referenced without a fallback but never declared"
	IssueUnusedProperty        = "custom property %q is declared but never referenced"
	IssueDuplicateProperty     = "custom property %q is declared more than once in the same block"
	IssueUnreplacedPlaceholder = "stylesheet placeholder was never replaced; export the bundle instead of the bare markup"
)

func newIssue(rule, severity, text string, pos Position) Issue {
	issue := Issue{
		FromLinter: rule,
		Text:       text,
		Severity:   severity,
		Pos: IssuePos{
			Filename: pos.File,
			Line:     pos.Line,
			Column:   pos.Column,
		},
	}
	if pos.Text != "" {
		issue.SourceLines = []string{pos.Text}
	}
	return issue
}
