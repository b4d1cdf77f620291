// ABOUTME: CLI command for first-time profile setup.
// ABOUTME: Collects starting weight, goal weight, and daily targets.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	setupStart    float64
	setupGoal     float64
	setupSteps    int
	setupExercise int
	setupWater    float64
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create your profile and daily targets",
	Long: `Create your profile: starting weight, goal weight, and daily targets.

Example:
  habits setup --start 200 --goal 150 --steps 10000 --exercise 30 --water 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := appState.Setup(setupStart, setupGoal, setupSteps, setupExercise, setupWater)
		if err != nil {
			return err
		}

		color.Green("✓ Profile created")
		fmt.Printf("  %.1f → %.1f (%.1f to go)\n", p.StartingWeight, p.GoalWeight, p.GoalDelta())
		fmt.Printf("  daily: %d steps, %d min exercise, %.1f L water\n",
			p.DailySteps, p.DailyExercise, p.DailyWater)
		printNotices()
		return nil
	},
}

func init() {
	setupCmd.Flags().Float64Var(&setupStart, "start", 0, "starting weight (required)")
	setupCmd.Flags().Float64Var(&setupGoal, "goal", 0, "goal weight (required)")
	setupCmd.Flags().IntVar(&setupSteps, "steps", 10000, "daily steps target")
	setupCmd.Flags().IntVar(&setupExercise, "exercise", 30, "daily exercise target (minutes)")
	setupCmd.Flags().Float64Var(&setupWater, "water", 2.0, "daily water target (liters)")
	_ = setupCmd.MarkFlagRequired("start")
	_ = setupCmd.MarkFlagRequired("goal")
}

// printNotices surfaces fresh-start notices from corrupt persisted data.
func printNotices() {
	for _, n := range appState.Notices {
		color.Yellow("⚠ %s", n)
	}
	appState.Notices = nil
}
