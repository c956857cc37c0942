package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssplay"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate styles.css from the playground variables",
	Long: `Generate the stylesheet for the configured variables and write it as
styles.css. Use --output - to print it instead.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("output", ".", "Output directory for styles.css (- for stdout)")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	output := getStringWithFallback("generate.output", ".")
	if output == "-" {
		return cssplay.ExportStylesheet(cssplay.WriterSink{W: os.Stdout}, sess.vars)
	}

	if err := cssplay.ExportStylesheet(cssplay.DirSink{Dir: output}, sess.vars); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	sess.log.Debug("stylesheet written", "dir", output, "variables", len(sess.vars))

	if !sess.settings.Quiet {
		fmt.Printf("Generated %s\n", filepath.Join(output, cssplay.StylesheetFilename))
		fmt.Printf("  Variables: %d\n", len(sess.vars))
	}
	return nil
}
