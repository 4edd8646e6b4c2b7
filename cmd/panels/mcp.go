package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/panels/internal/cli"
	"github.com/aretw0/panels/pkg/adapters/mcp"
	"github.com/aretw0/panels/pkg/adapters/redis"
)

func newMCPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp [path]",
		Short: "Run the Model Context Protocol (MCP) server",
		Long: `Starts panels as an MCP server so AI agents can generate widgets, search
the documentation and render the dashboard.

The dashboard is optional: without one only generate_widget and search_docs
are offered.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var d mcp.Dashboard
			if path := a.path(args); redis.IsURL(path) || exists(path) {
				board, err := a.open(args)
				if err != nil {
					return err
				}
				d = board.Dashboard()
			} else {
				a.logger.Info("no dashboard loaded", "path", a.path(args))
			}

			srv := mcp.NewServer(d,
				mcp.WithScaffold(a.cfg.Scaffold()),
				mcp.WithLogger(a.logger),
			)

			switch a.cfg.MCP.Transport {
			case "stdio":
				a.logger.Info("starting MCP server (stdio)")
				return srv.ServeStdio()
			case "sse":
				ctx := cli.NewSignalContext(cmd.Context())
				defer ctx.Cancel()
				a.logger.Info("starting MCP server (SSE)", "port", a.cfg.MCP.Port)
				if err := srv.ServeSSE(ctx, a.cfg.MCP.Port); err != nil {
					return err
				}
				a.logger.Info("MCP server stopped gracefully")
				return nil
			default:
				return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", a.cfg.MCP.Transport)
			}
		},
	}

	cmd.Flags().String("transport", "stdio", "transport protocol to use: 'stdio' or 'sse'")
	cmd.Flags().Int("port", 8080, "port to listen on (only for SSE)")
	a.v.BindPFlag("mcp.transport", cmd.Flags().Lookup("transport"))
	a.v.BindPFlag("mcp.port", cmd.Flags().Lookup("port"))
	return cmd
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
