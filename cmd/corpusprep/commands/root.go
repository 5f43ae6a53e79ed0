// ABOUTME: Root command and global flags for the corpusprep CLI
// ABOUTME: Loads .env and configuration and sets up logging before every command
package commands

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/corpusprep/internal/config"
	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/logging"
)

var (
	verbose   bool
	quiet     bool
	logFormat string

	// cfg is populated by the root PersistentPreRunE.
	cfg *config.Config
)

const banner = `
 ██████  ██████  ██████  ██████  ██   ██ ███████ ██████  ██████  ███████ ██████
██      ██    ██ ██   ██ ██   ██ ██   ██ ██      ██   ██ ██   ██ ██      ██   ██
██      ██    ██ ██████  ██████  ██   ██ ███████ ██████  ██████  █████   ██████
██      ██    ██ ██   ██ ██      ██   ██      ██ ██      ██   ██ ██      ██
 ██████  ██████  ██   ██ ██       █████  ███████ ██      ██   ██ ███████ ██
`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpusprep",
		Short: "Prepare text corpora and annotated datasets for training",
		Long: banner + `
corpusprep turns raw text into timestamped JSONL records and splits
annotated datasets into reproducible train/dev/test files.

  corpusprep format      text lines -> {"text","utc"} JSONL records
  corpusprep partition   dataset -> train.jsonl, dev.jsonl, test.jsonl
  corpusprep dataset     manage the annotation store

Configuration comes from CORPUSPREP_* environment variables (a .env
file in the working directory is loaded first). Flags win over both.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors and suppress summaries")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (default $CORPUSPREP_LOG_FORMAT or text)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewFormatCmd())
	cmd.AddCommand(NewPartitionCmd())
	cmd.AddCommand(NewDatasetCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists
	_ = godotenv.Load()

	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", faults.ErrInvalidParameter, err)
	}
	cfg = loaded

	level := cfg.LogLevel
	switch {
	case verbose:
		level = "debug"
	case quiet:
		level = "error"
	}

	format := cfg.LogFormat
	if logFormat != "" {
		format = strings.ToLower(logFormat)
		if format != "text" && format != "json" {
			return fmt.Errorf("%w: --log-format must be text or json, got %q", faults.ErrInvalidParameter, logFormat)
		}
	}

	logging.Init(level, format)
	return nil
}
