package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlilholt/mycojournal/internal/core"
)

var backupOut string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a versioned JSON snapshot of the full journal",
	Args:  cobra.NoArgs,
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
		raw, err := core.EncodeState(state)
		if err != nil {
			return err
		}

		if backupOut == "" {
			fmt.Println(string(raw))
			return nil
		}
		if err := os.WriteFile(backupOut, raw, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", backupOut, err)
		}
		slog.Info("backup written", "file", backupOut,
			"grows", len(state.Grows), "logs", len(state.Logs))
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <backup.json>",
	Short: "Replace the journal with a snapshot from backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		state, err := core.DecodeState(raw)
		if err != nil {
			return err
		}

		store, closePool, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closePool()

		if err := store.ReplaceState(ctx, state); err != nil {
			return err
		}
		slog.Info("restore complete", "file", args[0],
			"grows", len(state.Grows), "logs", len(state.Logs))
		return nil
	},
}

func init() {
	backupCmd.Flags().StringVarP(&backupOut, "out", "o", "",
		"write the snapshot to a file instead of stdout")
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
