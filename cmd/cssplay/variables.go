package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssplay"
	"github.com/yacobolo/cssplay/internal/inspect"
)

var variablesCmd = &cobra.Command{
	Use:     "variables",
	Aliases: []string{"vars"},
	Short:   "List the playground variables",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		if getBoolWithFallback("variables.json", false) {
			return writeVariablesJSON(os.Stdout, sess.vars)
		}
		printVariables(os.Stdout, sess.vars, inspect.ShouldUseColors(sess.settings.Color))
		return nil
	},
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the theme presets",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		printThemes(os.Stdout, sess.theme.ID, inspect.ShouldUseColors(sess.settings.Color))
		return nil
	},
}

func init() {
	variablesCmd.Flags().Bool("json", false, "Print variables as JSON")
}

func writeVariablesJSON(w io.Writer, vars cssplay.VariableList) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(vars); err != nil {
		return fmt.Errorf("encode variables: %w", err)
	}
	return nil
}

func printVariables(w io.Writer, vars cssplay.VariableList, useColors bool) {
	nameWidth := 0
	for _, v := range vars {
		nameWidth = max(nameWidth, lipgloss.Width(v.Name))
	}

	for i, v := range vars {
		name := v.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(v.Name))
		line := fmt.Sprintf("%3d  %s  %-40s %s",
			i,
			inspect.RenderStyle(inspect.StyleCyan, name, useColors),
			v.CSSValue(),
			inspect.RenderStyle(inspect.StyleGray, describeVariable(v), useColors),
		)
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func describeVariable(v cssplay.StyleVariable) string {
	desc := string(v.Kind)
	if v.Range != nil {
		desc += fmt.Sprintf(" [%g..%g step %g]", v.Range.Min, v.Range.Max, v.Range.Step)
	}
	if v.Removable {
		desc += " custom"
	}
	return desc
}

func printThemes(w io.Writer, active string, useColors bool) {
	for _, t := range cssplay.Themes() {
		marker := " "
		id := fmt.Sprintf("%-14s", t.ID)
		if t.ID == active {
			marker = "*"
			id = inspect.RenderStyle(inspect.StyleGreen, id, useColors)
		}
		fmt.Fprintf(w, "%s %s %s\n", marker, id, inspect.RenderStyle(inspect.StyleGray, t.Description, useColors))
	}
}
