package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/cli"
	"github.com/aretw0/boardchain/internal/service"
	"github.com/aretw0/boardchain/pkg/adapters/mcp"
	"github.com/aretw0/boardchain/pkg/adapters/memory"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the board model to AI agents as MCP tools: check_regularity,
steady_state and transition_row.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(settings(cmd))
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		logger := cli.NewLogger(cfg)
		cache, err := memory.NewCache(memory.DefaultMaxEdges)
		if err != nil {
			return err
		}
		defer cache.Close()

		svc := service.New(cfg,
			boardchain.WithLogger(logger),
			boardchain.WithCache(cache),
		)
		srv := mcp.NewServer(svc, logger)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting boardchain MCP Server (Stdio)...")
			return srv.ServeStdio()
		case "sse":
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cli.Announce(cmd.ErrOrStderr(), "MCP server (SSE)", fmt.Sprintf(":%d", port))
			if err := srv.ServeSSE(ctx, port); err != nil {
				return err
			}
			logger.Info("MCP Server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
