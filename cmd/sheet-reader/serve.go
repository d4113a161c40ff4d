package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/StefanCiuprina/sheet-music-reader/internal/api"
	"github.com/StefanCiuprina/sheet-music-reader/internal/server"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run the MCP server on stdin/stdout.

The server exposes the score_* tools to MCP clients. Logs go to stderr since
stdout carries the protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("starting MCP server", "version", Version, "commit", GitCommit)
			srv := server.New(a.cfg, a.logger)
			return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.HTTPAddr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.New(a.cfg, a.logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from SHEET_HTTP_ADDR)")
	return cmd
}
