package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlilholt/mycojournal/internal/core"
)

var exportCmd = &cobra.Command{
	Use:   "export <growID>",
	Short: "Print one grow's logs and harvests as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, closePool, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closePool()

		state, err := store.LoadState(ctx)
		if err != nil {
			return err
		}
		grow := findGrow(state, args[0])
		if grow == nil {
			return fmt.Errorf("grow %s not found", args[0])
		}

		fmt.Println(core.ExportGrowCSV(grow, state.Logs, state.Harvests))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
