// ABOUTME: CLI command claiming an achieved milestone.
// ABOUTME: Claiming an unachieved or claimed milestone is a quiet no-op.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/models"
)

var claimCmd = &cobra.Command{
	Use:   "claim <kind> <threshold>",
	Short: "Claim an achieved milestone",
	Long: `Claim an achieved milestone, recording the attached reward permanently.

Examples:
  habits claim streak 7
  habits claim weight 10`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := models.MilestoneKind(args[0])
		threshold, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid threshold: %s", args[1])
		}

		achievement, ok, err := appState.Claim(cmd.Context(), kind, threshold)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Nothing to claim: milestone is not achieved yet or already claimed.")
			return nil
		}

		color.Green("✓ Claimed %q", achievement.Title)
		if achievement.Reward != "" {
			color.Cyan("★ Enjoy your reward: %s", achievement.Reward)
		}
		printNotices()
		return nil
	},
}

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"a"},
	Short:   "List claimed achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		achievements, err := appState.Achievements()
		if err != nil {
			return err
		}
		if len(achievements) == 0 {
			fmt.Println("No achievements claimed yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range achievements {
			line := fmt.Sprintf("%s  %s", a.ClaimedAt.Format("2006-01-02"), a.Title)
			if a.Reward != "" {
				line += faint.Sprintf("  (reward: %s)", a.Reward)
			}
			fmt.Println(line)
		}
		printNotices()
		return nil
	},
}
