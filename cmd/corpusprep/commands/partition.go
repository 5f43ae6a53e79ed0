// ABOUTME: CLI command that splits a stored dataset into train/dev/test files
// ABOUTME: Shuffles with a seed and writes train.jsonl, dev.jsonl and test.jsonl
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/harper/corpusprep/internal/partition"
)

var (
	partitionFraction  float64
	partitionSeed      int64
	partitionNoClobber bool
	partitionJSON      bool
)

// NewPartitionCmd creates the partition command
func NewPartitionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partition <dataset_name> <output_directory>",
		Short: "Split a dataset into train/dev/test JSONL files",
		Long: `Split a dataset from the annotation store into three JSONL files.

The examples are shuffled with a deterministic seed. dev and test each
receive floor(fraction * N) examples and train gets the rest. The same
dataset, fraction and seed always produce the same files.

WARNING: the output directory is deleted and recreated, destroying
anything already in it. Use --no-clobber to refuse a non-empty
directory instead.

Examples:
  corpusprep partition skills ./splits
  corpusprep partition skills ./splits --fraction 0.1 --seed 7
  corpusprep partition skills ./splits --no-clobber --json`,
		Args: cobra.ExactArgs(2),
		RunE: runPartition,
	}

	cmd.Flags().Float64Var(&partitionFraction, "fraction", partition.DefaultFraction, "Share of examples in each of dev and test (default $CORPUSPREP_FRACTION)")
	cmd.Flags().Int64Var(&partitionSeed, "seed", 0, "Shuffle seed (default $CORPUSPREP_SEED)")
	cmd.Flags().BoolVar(&partitionNoClobber, "no-clobber", false, "Fail instead of deleting a non-empty output directory")
	cmd.Flags().BoolVar(&partitionJSON, "json", false, "Print the result as JSON")

	return cmd
}

func runPartition(cmd *cobra.Command, args []string) error {
	opts := partition.DefaultOptions(args[0], args[1])
	opts.Fraction = cfg.Fraction
	opts.Seed = cfg.Seed
	if cmd.Flags().Changed("fraction") {
		opts.Fraction = partitionFraction
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = partitionSeed
	}
	if partitionNoClobber {
		opts.Mode = partition.ModeNoClobber
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	result, err := partition.Run(store, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if partitionJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(out, "%s\n", data)
		return nil
	}
	if quiet {
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"SPLIT", "EXAMPLES", "FILE"})
	sizes := []int{result.Sizes.Train, result.Sizes.Dev, result.Sizes.Test}
	for i, name := range []string{"train", "dev", "test"} {
		t.AppendRow(table.Row{name, humanize.Comma(int64(sizes[i])), result.Files[i]})
	}
	t.AppendFooter(table.Row{"total", humanize.Comma(int64(result.Total)), ""})
	t.Render()
	return nil
}
