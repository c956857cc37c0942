package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssplay"
	"github.com/yacobolo/cssplay/internal/clipboard"
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the generated stylesheet to the system clipboard",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		var clip cssplay.Clipboard
		if sys, err := clipboard.New(); err == nil {
			clip = sys
		} else {
			sess.log.Warn("no system clipboard", "error", err.Error())
		}

		res := copyStylesheet(cmd.Context(), clip, sess.vars)
		if !res.OK() {
			return res.Err
		}
		if !sess.settings.Quiet {
			fmt.Println("Stylesheet copied to clipboard")
		}
		return nil
	},
}

// copyStylesheet runs the asynchronous copy and waits for its outcome. The
// write cannot be cancelled once started, so the outcome is always awaited.
func copyStylesheet(ctx context.Context, clip cssplay.Clipboard, vars cssplay.VariableList) cssplay.CopyResult {
	if ctx == nil {
		ctx = context.Background()
	}
	done := make(chan cssplay.CopyResult, 1)
	cssplay.CopyStylesheetAsync(ctx, clip, vars, func(res cssplay.CopyResult) {
		done <- res
	})
	return <-done
}
