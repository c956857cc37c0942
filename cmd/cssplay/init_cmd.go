package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssplay.yaml config file",
	Long:  `Create a .cssplay.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = ".cssplay.yaml"
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		// #nosec G306 - config file is meant to be committed
		if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Printf("Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# cssplay configuration

# Shared settings
theme: default           # default | glassmorphism | neumorphism | brutalist | modern
design: ""               # optional .json/.yaml design applied on startup
verbose: false

log:
  level: warn            # debug | info | warn | error
  format: console        # console | json

# Extra variables appended after the built-in set
variables: []
#  - name: --css-brand-glow
#    label: Brand Glow
#    value: 0 0 12px #6366f1
#    type: text
#    removable: true

generate:
  output: .              # directory for styles.css, - for stdout

export:
  output-dir: dist

lint:
  paths:
    - dist
  strict: false
  output-format: issues  # issues | summary | json
  max-issues-per-linter: 0
  max-same-issues: 0
  print-lines: true
  print-linter-name: true

serve:
  addr: 127.0.0.1:7070
  shutdown-timeout: 5s
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
