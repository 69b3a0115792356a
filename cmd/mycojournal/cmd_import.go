package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mrlilholt/mycojournal/internal/core"
	"github.com/mrlilholt/mycojournal/internal/ingest"
)

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <file.csv|file.xlsx>",
	Short: "Import a spreadsheet export, replacing all grow data",
	Long: `Import parses a CSV or XLSX grow export, rebuilds the grow and log
collections from it, and replaces the stored collections wholesale.

Because imported IDs derive from row content, re-importing the same
file is idempotent: it overwrites the previous import instead of
accumulating duplicates. Current settings are kept, with the species
list extended by anything new in the file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path := args[0]

		var current *core.State
		if !importDryRun {
			store, closePool, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closePool()

			if current, err = store.LoadState(ctx); err != nil {
				return err
			}

			state, err := ingest.StateFromFile(path, current)
			if err != nil {
				return err
			}
			if len(state.Logs) > cfg.Import.MaxRows {
				return fmt.Errorf("%s has %d data rows, over the IMPORT_MAX_ROWS cap of %d",
					path, len(state.Logs), cfg.Import.MaxRows)
			}

			if err := store.ReplaceState(ctx, state); err != nil {
				return err
			}
			slog.Info("import complete", "file", path,
				"grows", len(state.Grows), "logs", len(state.Logs))
			printImportSummary(state)
			return nil
		}

		state, err := ingest.StateFromFile(path, nil)
		if err != nil {
			return err
		}
		fmt.Println("dry run; nothing written")
		printImportSummary(state)
		return nil
	},
}

func printImportSummary(state *core.State) {
	fmt.Printf("%d grows, %d logs\n", len(state.Grows), len(state.Logs))
	for _, grow := range state.Grows {
		count := len(core.LogsForGrow(state.Logs, grow.ID))
		fmt.Printf("  %-30s %s  (%d logs since %s)\n",
			grow.Name, grow.ID, count, grow.StartDate.Format("2006-01-02"))
	}
}

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false,
		"parse and summarize without touching the database")
	rootCmd.AddCommand(importCmd)
}
