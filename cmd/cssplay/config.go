package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/cssplay"
	"github.com/yacobolo/cssplay/internal/logger"
)

var k = koanf.New(".")

// globalKeys maps persistent flags to their config keys. Command flags are
// namespaced under the command name (lint --strict -> lint.strict).
var globalKeys = map[string]string{
	"config":     "config",
	"design":     "design",
	"theme":      "theme",
	"verbose":    "verbose",
	"quiet":      "quiet",
	"color":      "color",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssplay.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags. Unchanged flags only fill keys nothing else has set.
	if err := k.Load(posflag.ProviderWithFlag(cmd.Flags(), ".", k, flagKey(cmd)), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// flagKey returns the posflag callback that maps flag names to config keys.
func flagKey(cmd *cobra.Command) func(f *pflag.Flag) (string, interface{}) {
	// The bare root invocation runs generate.
	section := cmd.Name()
	if !cmd.HasParent() {
		section = "generate"
	}
	return func(f *pflag.Flag) (string, interface{}) {
		if key, ok := globalKeys[f.Name]; ok {
			return key, posflag.FlagVal(cmd.Flags(), f)
		}
		if f.Name == "help" {
			return "", nil
		}
		return section + "." + f.Name, posflag.FlagVal(cmd.Flags(), f)
	}
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSPLAY_* prefix)
	if err := k.Load(env.Provider("CSSPLAY_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// hyphenatedKeys are config keys whose env names cannot be derived by
// turning "_" into ".".
var hyphenatedKeys = []string{
	"export.output-dir",
	"lint.output-format",
	"lint.max-issues-per-linter",
	"lint.max-same-issues",
	"lint.print-lines",
	"lint.print-linter-name",
	"serve.shutdown-timeout",
}

var envReplacer = strings.NewReplacer(".", "_", "-", "_")

// envKey maps an environment variable to its config key:
//
//	CSSPLAY_SERVE_ADDR -> serve.addr
//	CSSPLAY_SERVE_SHUTDOWN_TIMEOUT -> serve.shutdown-timeout
//	CSSPLAY_THEME -> theme
func envKey(s string) string {
	name := strings.ToLower(strings.TrimPrefix(s, "CSSPLAY_"))
	for _, key := range hyphenatedKeys {
		if envReplacer.Replace(key) == name {
			return key
		}
	}
	return strings.ReplaceAll(name, "_", ".")
}

// settings are the options shared by every command.
type settings struct {
	Theme     string `validate:"required"`
	Design    string `validate:"omitempty,file"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=console json"`
	Verbose   bool
	Quiet     bool
	Color     bool
}

// buildSettings reads the shared options from koanf state and validates them.
func buildSettings() (settings, error) {
	s := settings{
		Theme:     getStringWithFallback("theme", cssplay.DefaultThemeID),
		Design:    getStringWithFallback("design", ""),
		LogLevel:  strings.ToLower(getStringWithFallback("log.level", "warn")),
		LogFormat: strings.ToLower(getStringWithFallback("log.format", "console")),
		Verbose:   getBoolWithFallback("verbose", false),
		Quiet:     getBoolWithFallback("quiet", false),
		Color:     getBoolWithFallback("color", false),
	}
	if s.Verbose {
		s.LogLevel = "debug"
	}
	if err := cssplay.Validator().Struct(s); err != nil {
		return settings{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if _, ok := cssplay.LookupTheme(s.Theme); !ok {
		return settings{}, fmt.Errorf("invalid configuration: unknown theme %q", s.Theme)
	}
	return s, nil
}

// buildLogger creates the diagnostic logger for s. Logs go to stderr so
// they never mix with generated output.
func buildLogger(s settings) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Writer: os.Stderr,
	})
}

// buildVariables returns the session variables: the built-in set, then the
// config file's variables, then the design file applied on top.
func buildVariables(s settings, log *logger.Logger) (cssplay.VariableList, error) {
	vars := cssplay.DefaultVariables()

	if k.Exists("variables") {
		var extra []cssplay.StyleVariable
		if err := k.UnmarshalWithConf("variables", &extra, koanf.UnmarshalConf{Tag: "json"}); err != nil {
			return nil, fmt.Errorf("reading variables from config: %w", err)
		}
		for _, v := range extra {
			kind, err := cssplay.ParseKind(string(v.Kind))
			if err != nil {
				return nil, fmt.Errorf("config variable %s: %w", v.Name, err)
			}
			v.Kind = kind
			if err := vars.Append(v); err != nil {
				return nil, fmt.Errorf("config variables: %w", err)
			}
		}
		log.Debug("config variables added", "count", len(extra))
	}

	if s.Design != "" {
		applied, err := cssplay.LoadDesign(s.Design, &vars)
		if err != nil {
			return nil, err
		}
		log.Info("design applied", "path", s.Design, "updates", applied)
	}

	return vars, nil
}

// session bundles everything a command needs after configuration.
type session struct {
	settings settings
	log      *logger.Logger
	vars     cssplay.VariableList
	theme    cssplay.ThemePreset
}

// newSession builds the command session from the loaded configuration.
func newSession() (*session, error) {
	s, err := buildSettings()
	if err != nil {
		return nil, err
	}
	log, err := buildLogger(s)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	vars, err := buildVariables(s, log)
	if err != nil {
		return nil, err
	}
	theme, _ := cssplay.LookupTheme(s.Theme)
	return &session{settings: s, log: log, vars: vars, theme: theme}, nil
}

// getStringWithFallback returns the value at key, or defaultVal when unset or empty.
func getStringWithFallback(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback returns the value at key, or defaultVal when unset.
func getBoolWithFallback(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getIntWithFallback returns the value at key, or defaultVal when unset.
func getIntWithFallback(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

// getStringsWithFallback returns the list at key, or defaultVal when empty.
func getStringsWithFallback(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}
