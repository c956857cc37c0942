package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssplay"
	"github.com/yacobolo/cssplay/internal/logger"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".cssplay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	configPath := writeConfig(t, `
theme: brutalist
verbose: true

log:
  level: info
  format: json

export:
  output-dir: out/site

lint:
  strict: true
  max-same-issues: 3
  paths:
    - "public/**/*.css"

serve:
  addr: localhost:9000
`)
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "brutalist", k.String("theme"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "info", k.String("log.level"))
	assert.Equal(t, "json", k.String("log.format"))
	assert.Equal(t, "out/site", k.String("export.output-dir"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, 3, k.Int("lint.max-same-issues"))
	assert.Equal(t, []string{"public/**/*.css"}, k.Strings("lint.paths"))
	assert.Equal(t, "localhost:9000", k.String("serve.addr"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// A missing config file is not an error
	require.NoError(t, loadConfigFromPath("/nonexistent/.cssplay.yaml"))

	s, err := buildSettings()
	require.NoError(t, err)
	assert.Equal(t, cssplay.DefaultThemeID, s.Theme)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
	assert.Empty(t, s.Design)
	assert.False(t, s.Quiet)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	configPath := writeConfig(t, `
theme: modern
serve:
  addr: localhost:9000
`)

	t.Setenv("CSSPLAY_THEME", "neumorphism")
	t.Setenv("CSSPLAY_SERVE_ADDR", "0.0.0.0:8181")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "neumorphism", k.String("theme"))
	assert.Equal(t, "0.0.0.0:8181", k.String("serve.addr"))
}

func TestBuildSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name:    "unknown theme",
			config:  "theme: vapor\n",
			wantErr: `unknown theme "vapor"`,
		},
		{
			name:    "bad log level",
			config:  "log:\n  level: loud\n",
			wantErr: "LogLevel",
		},
		{
			name:    "bad log format",
			config:  "log:\n  format: xml\n",
			wantErr: "LogFormat",
		},
		{
			name:    "missing design file",
			config:  "design: /nonexistent/design.json\n",
			wantErr: "Design",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKoanf()
			require.NoError(t, loadConfigFromPath(writeConfig(t, tt.config)))

			_, err := buildSettings()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildSettings_VerboseEnablesDebug(t *testing.T) {
	resetKoanf()
	require.NoError(t, loadConfigFromPath(writeConfig(t, "verbose: true\nlog:\n  level: error\n")))

	s, err := buildSettings()
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestBuildVariables_FromConfigAndDesign(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	designPath := filepath.Join(dir, "design.yaml")
	require.NoError(t, os.WriteFile(designPath, []byte(`
variables:
  - name: --css-primary-color
    value: "#0f172a"
  - name: --css-brand-glow
    value: 0 0 8px red
`), 0o644))

	configPath := writeConfig(t, `
design: `+designPath+`
variables:
  - name: --css-brand-glow
    label: Brand Glow
    value: none
    type: text
    removable: true
  - name: --css-gutter
    label: Gutter
    value: "2"
    type: Number
    unit: rem
    range:
      min: 0
      max: 4
      step: 0.5
`)
	require.NoError(t, loadConfigFromPath(configPath))

	s, err := buildSettings()
	require.NoError(t, err)
	vars, err := buildVariables(s, logger.Nop())
	require.NoError(t, err)

	require.Len(t, vars, 12)
	assert.Equal(t, "#0f172a", vars[0].Value)

	glow := vars[vars.Index("--css-brand-glow")]
	assert.Equal(t, "0 0 8px red", glow.Value)
	assert.True(t, glow.Removable)

	gutter := vars[vars.Index("--css-gutter")]
	assert.Equal(t, cssplay.KindNumeric, gutter.Kind)
	assert.Equal(t, "2rem", gutter.CSSValue())
	require.NotNil(t, gutter.Range)
	assert.InDelta(t, 0.5, gutter.Range.Step, 0.001)
}

func TestBuildVariables_RejectsInvalidConfigVariable(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name:    "name without prefix",
			config:  "variables:\n  - name: brand\n    label: Brand\n    value: red\n    type: color\n",
			wantErr: "config variables",
		},
		{
			name:    "unknown kind",
			config:  "variables:\n  - name: --css-gap\n    label: Gap\n    value: \"1\"\n    type: size\n",
			wantErr: `unknown variable kind "size"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKoanf()
			require.NoError(t, loadConfigFromPath(writeConfig(t, tt.config)))

			s, err := buildSettings()
			require.NoError(t, err)
			_, err = buildVariables(s, logger.Nop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildLintConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildLintConfig(nil, settings{})
	assert.Equal(t, []string{"dist"}, config.Patterns)
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.MaxIssuesPerLinter)
	assert.Equal(t, 0, config.MaxSameIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.False(t, config.UseColors)
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()
	require.NoError(t, loadConfigFromPath(writeConfig(t, `
lint:
  strict: true
  paths:
    - "site/**/*.css"
  max-issues-per-linter: 10
  print-lines: false
`)))

	config := buildLintConfig(nil, settings{Color: true})
	assert.True(t, config.Strict)
	assert.Equal(t, []string{"site/**/*.css"}, config.Patterns)
	assert.Equal(t, 10, config.MaxIssuesPerLinter)
	assert.False(t, config.PrintIssuedLines)
	assert.True(t, config.UseColors)

	// Positional paths win over the config file.
	config = buildLintConfig([]string{"build"}, settings{})
	assert.Equal(t, []string{"build"}, config.Patterns)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--config", ".cssplay.yaml"})
	require.NoError(t, cmd.Execute())

	// The generated file must load cleanly.
	data, err := os.ReadFile(".cssplay.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme: default")
	assert.Contains(t, string(data), "serve:")

	resetKoanf()
	require.NoError(t, loadConfigFromPath(".cssplay.yaml"))
	_, err = buildSettings()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7070", k.String("serve.addr"))
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".cssplay.yaml", []byte("existing"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--config", ".cssplay.yaml"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".cssplay.yaml", []byte("existing"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force", "--config", ".cssplay.yaml"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".cssplay.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme: default")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return defaults
	assert.Equal(t, "default", getStringWithFallback("missing.key", "default"))
	assert.True(t, getBoolWithFallback("missing.key", true))
	assert.Equal(t, 42, getIntWithFallback("missing.key", 42))
	assert.Equal(t, []string{"a"}, getStringsWithFallback("missing.key", []string{"a"}))
}

func TestFlagKey(t *testing.T) {
	root := &cobra.Command{Use: "cssplay"}
	root.PersistentFlags().String("log-level", "warn", "")
	root.Flags().String("output", ".", "")
	lint := &cobra.Command{Use: "lint"}
	lint.Flags().Bool("strict", false, "")
	root.AddCommand(lint)

	tests := []struct {
		name string
		cmd  *cobra.Command
		flag string
		want string
	}{
		{"global flag", root, "log-level", "log.level"},
		{"bare root runs generate", root, "output", "generate.output"},
		{"command flag is namespaced", lint, "strict", "lint.strict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.cmd.Flags().Lookup(tt.flag)
			if f == nil {
				f = tt.cmd.PersistentFlags().Lookup(tt.flag)
			}
			require.NotNil(t, f)
			key, _ := flagKey(tt.cmd)(f)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	resetKoanf()
	configPath := writeConfig(t, "lint:\n  strict: true\n  output-format: json\n")

	root := &cobra.Command{Use: "cssplay"}
	cmd := &cobra.Command{Use: "lint"}
	root.AddCommand(cmd)
	cmd.Flags().String("config", ".cssplay.yaml", "")
	cmd.Flags().Bool("strict", false, "")
	cmd.Flags().String("output-format", "issues", "")
	cmd.Flags().Int("max-same-issues", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--config", configPath, "--output-format", "summary"}))

	require.NoError(t, loadConfig(cmd))

	// Unchanged flag defaults never shadow the file.
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, "summary", k.String("lint.output-format"))
	assert.Equal(t, 0, k.Int("lint.max-same-issues"))
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"CSSPLAY_THEME", "theme"},
		{"CSSPLAY_LOG_LEVEL", "log.level"},
		{"CSSPLAY_SERVE_ADDR", "serve.addr"},
		{"CSSPLAY_SERVE_SHUTDOWN_TIMEOUT", "serve.shutdown-timeout"},
		{"CSSPLAY_EXPORT_OUTPUT_DIR", "export.output-dir"},
		{"CSSPLAY_LINT_MAX_SAME_ISSUES", "lint.max-same-issues"},
		{"CSSPLAY_LINT_PRINT_LINTER_NAME", "lint.print-linter-name"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestEnvVarSetsHyphenatedKeys(t *testing.T) {
	resetKoanf()

	t.Setenv("CSSPLAY_SERVE_SHUTDOWN_TIMEOUT", "9s")
	t.Setenv("CSSPLAY_LINT_OUTPUT_FORMAT", "json")
	t.Setenv("CSSPLAY_EXPORT_OUTPUT_DIR", "public")

	require.NoError(t, loadConfigFromPath("/nonexistent/.cssplay.yaml"))

	assert.Equal(t, "9s", getStringWithFallback("serve.shutdown-timeout", "5s"))
	assert.Equal(t, "json", getStringWithFallback("lint.output-format", "issues"))
	assert.Equal(t, "public", getStringWithFallback("export.output-dir", "dist"))
}
