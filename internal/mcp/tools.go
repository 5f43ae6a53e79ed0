// ABOUTME: MCP tool definitions and registration for the corpusprep server
// ABOUTME: Exposes formatting, partitioning and dataset import as MCP tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/corpusprep/internal/config"
	"github.com/harper/corpusprep/internal/storage"
)

// Tool names.
const (
	ToolFormatRecords    = "format_records"
	ToolPartitionDataset = "partition_dataset"
	ToolListDatasets     = "list_datasets"
	ToolImportExamples   = "import_examples"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store storage.Store, cfg *config.Config) *Handlers {
	handlers := NewHandlers(store, cfg)

	// 1. format_records - Convert text lines into timestamped JSONL records
	server.AddTool(mcp.Tool{
		Name:        ToolFormatRecords,
		Description: "Convert text lines into JSONL records of the form {\"text\":..., \"utc\":...} with a synthetic timestamp between 2010-01-01 and 2020-12-31. Reads inline text or a file; writes a file or returns the records.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Newline-separated lines to format (ignored when input_path is set)",
				},
				"input_path": map[string]interface{}{
					"type":        "string",
					"description": "Read lines from this file instead of text",
				},
				"output_path": map[string]interface{}{
					"type":        "string",
					"description": "Write records to this file instead of returning them",
				},
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "IANA zone the timestamp bounds are interpreted in (default: server local time)",
				},
				"seed": map[string]interface{}{
					"type":        "number",
					"description": "Seed for reproducible timestamps (default: random)",
				},
				"no_roundtrip": map[string]interface{}{
					"type":        "boolean",
					"description": "Skip the wall-clock round trip and truncate the raw timestamp directly",
					"default":     false,
				},
			},
		},
	}, handlers.FormatRecords)

	// 2. partition_dataset - Split a stored dataset into train/dev/test files
	server.AddTool(mcp.Tool{
		Name:        ToolPartitionDataset,
		Description: "Shuffle a stored dataset with a seed and write train.jsonl, dev.jsonl and test.jsonl. The output directory is deleted and recreated unless no_clobber is set.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"dataset": map[string]interface{}{
					"type":        "string",
					"description": "Name of the dataset in the store",
				},
				"output_dir": map[string]interface{}{
					"type":        "string",
					"description": "Directory to write the three split files into",
				},
				"fraction": map[string]interface{}{
					"type":        "number",
					"description": "Share of examples in each of dev and test (default: 0.2)",
				},
				"seed": map[string]interface{}{
					"type":        "number",
					"description": "Shuffle seed (default: 0)",
				},
				"no_clobber": map[string]interface{}{
					"type":        "boolean",
					"description": "Fail instead of deleting a non-empty output directory",
					"default":     false,
				},
			},
			Required: []string{"dataset", "output_dir"},
		},
	}, handlers.PartitionDataset)

	// 3. list_datasets - List datasets in the store
	server.AddTool(mcp.Tool{
		Name:        ToolListDatasets,
		Description: "List datasets in the annotation store with their example counts.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListDatasets)

	// 4. import_examples - Append JSONL examples to a dataset
	server.AddTool(mcp.Tool{
		Name:        ToolImportExamples,
		Description: "Append examples to a dataset, creating it if needed. Each non-blank line must be one JSON value.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"dataset": map[string]interface{}{
					"type":        "string",
					"description": "Dataset to append to",
				},
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Inline JSONL content (ignored when path is set)",
				},
				"path": map[string]interface{}{
					"type":        "string",
					"description": "JSONL file to import",
				},
			},
			Required: []string{"dataset"},
		},
	}, handlers.ImportExamples)

	return handlers
}
