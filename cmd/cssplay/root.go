package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssplay",
	Short: "CSS playground stylesheet generator and preview server",
	Long: `Generate stylesheets from playground style variables.
Variables come from the built-in set, the config file and an optional
design file; the result can be exported, copied or previewed live.`,
	// Default behavior: run generate when no subcommand is given.
	// PreRunE of generateCmd is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", ".cssplay.yaml", "Config file path")
	pf.String("design", "", "Design file (.json or .yaml) applied on top of the variables")
	pf.String("theme", "default", "Active theme preset")
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("log-level", "warn", "Log level: debug|info|warn|error")
	pf.String("log-format", "console", "Log format: console|json")

	// generate flags live on the root command too, so the bare invocation
	// accepts them.
	rootCmd.Flags().String("output", ".", "Output directory for styles.css (- for stdout)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(variablesCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)

	registerCompletions()
}
