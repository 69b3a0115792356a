package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mrlilholt/mycojournal/internal/core"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize the database with default settings",
	Long: `Seed writes the default application state: empty collections plus
settings populated with the built-in species list, per-species target
presets, default target ranges and health weights.

Refuses to run against a database that already has grows unless
--force is given, since seeding replaces everything.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, closePool, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closePool()

		if !seedForce {
			existing, err := store.LoadState(ctx)
			if err != nil {
				return err
			}
			if len(existing.Grows) > 0 {
				return fmt.Errorf("database already has %d grows; use --force to replace everything",
					len(existing.Grows))
			}
		}

		if err := store.ReplaceState(ctx, core.SeedState()); err != nil {
			return err
		}
		slog.Info("seeded default state")
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false,
		"seed even if grows already exist (destroys them)")
	rootCmd.AddCommand(seedCmd)
}
