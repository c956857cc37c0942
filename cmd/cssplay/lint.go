package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssplay/internal/inspect"
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Inspect generated stylesheets and bundles",
	Long: `Check custom property usage in CSS and HTML files.
Detects var() references to undeclared properties, unused and duplicated
declarations, and bundles whose stylesheet placeholder was never replaced.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		s, err := buildSettings()
		if err != nil {
			return err
		}
		config := buildLintConfig(args, s)
		failed, err := runLint(os.Stdout, config, s.Quiet)
		if err != nil {
			return err
		}
		if failed {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{"dist"}, "Files, directories or globs to inspect")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "issues", "Output format: issues|summary|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per rule (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (rule) suffix on issues")
}

// buildLintConfig constructs the inspection config from koanf state.
// Positional arguments replace the configured paths.
func buildLintConfig(args []string, s settings) inspect.Config {
	patterns := args
	if len(patterns) == 0 {
		patterns = getStringsWithFallback("lint.paths", []string{"dist"})
	}

	return inspect.Config{
		Patterns:           patterns,
		Strict:             getBoolWithFallback("lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("lint.print-linter-name", true),
		UseColors:          s.Color,
	}
}

// runLint inspects the configured files, writes the report to w and
// reports whether the run should fail. Default mode only fails on errors;
// strict mode fails on any issue.
func runLint(w io.Writer, config inspect.Config, quiet bool) (bool, error) {
	result, err := inspect.Lint(config)
	if err != nil {
		return false, fmt.Errorf("lint failed: %w", err)
	}

	format := inspect.DetermineOutputFormat(getStringWithFallback("lint.output-format", "issues"), quiet)
	if !quiet {
		if err := inspect.WriteOutput(w, result, format, config); err != nil {
			return false, err
		}
	}

	return result.Failed(config.Strict), nil
}
