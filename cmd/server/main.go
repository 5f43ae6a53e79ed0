// ABOUTME: Standalone corpusprep MCP server with stdio transport
// ABOUTME: Same tools as `corpusprep mcp`, for clients that want a bare binary
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/corpusprep/internal/config"
	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/logging"
	"github.com/harper/corpusprep/internal/mcp"
	"github.com/harper/corpusprep/internal/storage"
)

var version = "dev"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(faults.KindInvalidParameter.ExitCode())
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	store, err := storage.Open(cfg)
	if err != nil {
		log.Error("failed to initialize storage", "err", err)
		os.Exit(faults.Classify(err).ExitCode())
	}
	defer func() { _ = store.Close() }()

	server := mcpserver.NewMCPServer("corpusprep", version)
	mcp.RegisterTools(server, store, cfg)

	log.Info("corpusprep MCP server starting on stdio", "store", cfg.StoreBackend)
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Error("server error", "err", err)
		_ = store.Close()
		os.Exit(1)
	}
}
