// ABOUTME: MCP command starts the Model Context Protocol server
// ABOUTME: Lets LLM agents format records and partition datasets via stdio
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/harper/corpusprep/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs corpusprep as an MCP (Model Context Protocol) server over stdio,
exposing the format_records, partition_dataset, list_datasets and
import_examples tools to LLM agents.`,
		Args: cobra.NoArgs,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by an MCP client)
  corpusprep mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "corpusprep": {
  #       "command": "corpusprep",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer("corpusprep", versionInfo.Version)
	mcp.RegisterTools(server, store, cfg)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("MCP server starting on stdio", "store", cfg.StoreBackend)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		if err := store.Close(); err != nil {
			log.Warn("error closing storage", "err", err)
		}
		log.Info("shutdown complete")

	case err := <-serverErr:
		_ = store.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
