// ABOUTME: Dataset management commands for the annotation store
// ABOUTME: Provides import, list, drop and export subcommands
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/harper/corpusprep/internal/models"
	"github.com/harper/corpusprep/internal/storage"
)

// NewDatasetCmd creates the dataset command group
func NewDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Manage datasets in the annotation store",
		Long: `Manage datasets in the annotation store.

The store backend is chosen by CORPUSPREP_STORE: "sqlite" (default,
kept under the XDG data directory) or "charm" (Charm KV with cloud sync).`,
	}

	cmd.AddCommand(newDatasetImportCmd())
	cmd.AddCommand(newDatasetListCmd())
	cmd.AddCommand(newDatasetDropCmd())
	cmd.AddCommand(newDatasetExportCmd())

	return cmd
}

func newDatasetImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <name> <file.jsonl>",
		Short: "Append examples from a JSONL file to a dataset",
		Long: `Append examples from a JSONL file to a dataset, creating it if needed.

Every non-blank line must hold one JSON value. Examples keep file order
and are appended after any examples already in the dataset.

Examples:
  corpusprep dataset import skills annotated.jsonl`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			n, err := storage.Import(store, args[0], args[1])
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[1], err)
			}
			log.Debug("examples imported", "dataset", args[0], "count", n)

			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s example(s) into %s\n", humanize.Comma(int64(n)), args[0])
			}
			return nil
		},
	}
}

func newDatasetListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List datasets and their example counts",
		Long: `List datasets in the annotation store.

Examples:
  corpusprep dataset list
  corpusprep dataset list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			infos, err := store.ListDatasets()
			if err != nil {
				return fmt.Errorf("listing datasets: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if infos == nil {
					infos = []models.DatasetInfo{}
				}
				data, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling JSON: %w", err)
				}
				fmt.Fprintf(out, "%s\n", data)
				return nil
			}

			if len(infos) == 0 {
				if !quiet {
					fmt.Fprintln(out, "No datasets found")
				}
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"NAME", "EXAMPLES", "CREATED"})
			total := 0
			for _, info := range infos {
				t.AppendRow(table.Row{truncate(info.Name, 40), humanize.Comma(int64(info.Count)), formatTime(info.CreatedAt)})
				total += info.Count
			}
			if !quiet {
				t.AppendFooter(table.Row{fmt.Sprintf("%d dataset(s)", len(infos)), humanize.Comma(int64(total)), ""})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print datasets as JSON")

	return cmd
}

func newDatasetDropCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "drop <name>",
		Short: "Delete a dataset and all of its examples",
		Long: `Delete a dataset and all of its examples.

WARNING: this cannot be undone. Run with --confirm to proceed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				fmt.Fprintf(cmd.OutOrStdout(), "This will delete dataset %q and all of its examples!\n", args[0])
				fmt.Fprintln(cmd.OutOrStdout(), "Run with --confirm to proceed")
				return nil
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DropDataset(args[0]); err != nil {
				return fmt.Errorf("dropping dataset: %w", err)
			}

			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Dataset %s dropped\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the drop operation")

	return cmd
}

func newDatasetExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a dataset to JSONL or YAML",
		Long: `Export every example of a dataset, in store order.

Examples:
  corpusprep dataset export skills
  corpusprep dataset export skills --format yaml --output skills.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if output == "" {
				output = name + "." + format
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			n, err := storage.ExportTo(store, name, format, output)
			if err != nil {
				return fmt.Errorf("exporting %s: %w", name, err)
			}

			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s example(s) to %s\n", humanize.Comma(int64(n)), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", storage.FormatJSONL, "Export format: jsonl or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default <name>.<format>)")

	return cmd
}
