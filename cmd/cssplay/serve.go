package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssplay/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the live preview server",
	Long: `Serve the showcase page for the current variables and push every change
made through the HTTP API to open pages over a WebSocket.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		state, err := server.NewSession(sess.vars, sess.theme.ID)
		if err != nil {
			return err
		}

		addr := getStringWithFallback("serve.addr", "127.0.0.1:7070")
		timeout, err := time.ParseDuration(getStringWithFallback("serve.shutdown-timeout", "5s"))
		if err != nil {
			return fmt.Errorf("invalid serve.shutdown-timeout: %w", err)
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if !sess.settings.Quiet {
			fmt.Printf("Preview running at http://%s\n", addr)
		}
		return server.New(state, sess.log).ListenAndServe(ctx, addr, timeout)
	},
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", "127.0.0.1:7070", "Listen address")
	f.String("shutdown-timeout", "5s", "Grace period for open requests on shutdown")
}
