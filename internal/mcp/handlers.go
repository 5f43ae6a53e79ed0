// ABOUTME: MCP tool handler implementations for the corpusprep server
// ABOUTME: Each handler calls the same library code as the matching CLI command
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/corpusprep/internal/config"
	"github.com/harper/corpusprep/internal/formatter"
	"github.com/harper/corpusprep/internal/models"
	"github.com/harper/corpusprep/internal/partition"
	"github.com/harper/corpusprep/internal/storage"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	store storage.Store
	cfg   *config.Config
}

// NewHandlers creates handlers backed by store. A nil cfg uses defaults.
func NewHandlers(store storage.Store, cfg *config.Config) *Handlers {
	if cfg == nil {
		cfg = &config.Config{Fraction: partition.DefaultFraction}
	}
	return &Handlers{store: store, cfg: cfg}
}

// FormatRecords handles the format_records tool
func (h *Handlers) FormatRecords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	inputPath := request.GetString("input_path", "")
	outputPath := request.GetString("output_path", "")
	if text == "" && inputPath == "" {
		return mcp.NewToolResultError("either text or input_path is required"), nil
	}

	tz := request.GetString("timezone", h.cfg.Timezone)
	cfg := *h.cfg
	cfg.Timezone = tz
	loc, err := cfg.Location()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid timezone: %v", err)), nil
	}

	opts := []formatter.Option{formatter.WithLocation(loc)}
	if _, ok := request.GetArguments()["seed"]; ok {
		opts = append(opts, formatter.WithSeed(int64(request.GetFloat("seed", 0))))
	}
	if request.GetBool("no_roundtrip", false) {
		opts = append(opts, formatter.WithoutRoundTrip())
	}
	f := formatter.New(formatter.NewTimestampGenerator(opts...))

	if inputPath != "" && outputPath != "" {
		n, err := f.FormatFile(inputPath, outputPath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("format failed: %v", err)), nil
		}
		log.Debug("formatted records", "input", inputPath, "output", outputPath, "count", n)
		return jsonResult(map[string]interface{}{
			"input":   inputPath,
			"output":  outputPath,
			"records": n,
		})
	}

	var in io.Reader = strings.NewReader(text)
	if inputPath != "" {
		file, err := os.Open(inputPath) // #nosec G304
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to open input: %v", err)), nil
		}
		defer func() { _ = file.Close() }()
		in = file
	}

	if outputPath != "" {
		file, err := os.Create(outputPath) // #nosec G304
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create output: %v", err)), nil
		}
		defer func() { _ = file.Close() }()

		n, err := f.Format(in, file)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("format failed: %v", err)), nil
		}
		return jsonResult(map[string]interface{}{
			"output":  outputPath,
			"records": n,
		})
	}

	var out bytes.Buffer
	if _, err := f.Format(in, &out); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("format failed: %v", err)), nil
	}
	return mcp.NewToolResultText(out.String()), nil
}

// PartitionDataset handles the partition_dataset tool
func (h *Handlers) PartitionDataset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataset, err := request.RequireString("dataset")
	if err != nil {
		return mcp.NewToolResultError("dataset argument is required and must be a string"), nil
	}
	outputDir, err := request.RequireString("output_dir")
	if err != nil {
		return mcp.NewToolResultError("output_dir argument is required and must be a string"), nil
	}

	opts := partition.DefaultOptions(dataset, outputDir)
	opts.Fraction = request.GetFloat("fraction", h.cfg.Fraction)
	opts.Seed = int64(request.GetFloat("seed", float64(h.cfg.Seed)))
	if request.GetBool("no_clobber", false) {
		opts.Mode = partition.ModeNoClobber
	}

	result, err := partition.Run(h.store, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("partition failed: %v", err)), nil
	}
	return jsonResult(result)
}

// ListDatasets handles the list_datasets tool
func (h *Handlers) ListDatasets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos, err := h.store.ListDatasets()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list datasets: %v", err)), nil
	}
	if infos == nil {
		infos = []models.DatasetInfo{}
	}
	return jsonResult(map[string]interface{}{
		"datasets": infos,
		"count":    len(infos),
	})
}

// ImportExamples handles the import_examples tool
func (h *Handlers) ImportExamples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataset, err := request.RequireString("dataset")
	if err != nil {
		return mcp.NewToolResultError("dataset argument is required and must be a string"), nil
	}

	var n int
	if path := request.GetString("path", ""); path != "" {
		n, err = storage.Import(h.store, dataset, path)
	} else {
		content := request.GetString("content", "")
		if strings.TrimSpace(content) == "" {
			return mcp.NewToolResultError("either path or content is required"), nil
		}
		var examples []models.Example
		examples, err = storage.ReadExamples(strings.NewReader(content))
		if err == nil {
			n, err = h.store.AddExamples(dataset, examples)
		}
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("import failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"dataset":  dataset,
		"imported": n,
	})
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
