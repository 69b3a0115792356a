package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlilholt/mycojournal/internal/core"
)

var scoreCmd = &cobra.Command{
	Use:   "score [growID]",
	Short: "Compute health scores for all grows, or one",
	Long: `Score loads the full journal and evaluates the rule-based health
score for each grow: penalties for stale or missing logs, readings
outside the grow's target ranges, CO2 over target, and any logged
contamination. Reasons accompany every score.`,
	Args: cobra.MaximumNArgs(1),
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

		grows := state.Grows
		if len(args) == 1 {
			grow := findGrow(state, args[0])
			if grow == nil {
				return fmt.Errorf("grow %s not found", args[0])
			}
			grows = []core.Grow{*grow}
		}
		if len(grows) == 0 {
			fmt.Println("no grows recorded")
			return nil
		}

		for i := range grows {
			result := core.HealthScore(core.ScoreInput{
				Grow:     &grows[i],
				Logs:     state.Logs,
				Events:   state.Events,
				Settings: &state.Settings,
			})
			fmt.Printf("%3d  %s (%s)\n", result.Score, grows[i].Name, grows[i].ID)
			for _, reason := range result.Reasons {
				fmt.Printf("     - %s\n", reason)
			}
		}
		return nil
	},
}

func findGrow(state *core.State, id string) *core.Grow {
	for i := range state.Grows {
		if state.Grows[i].ID == id {
			return &state.Grows[i]
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
