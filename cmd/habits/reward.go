// ABOUTME: CLI commands for custom rewards: add, list, delete.
// ABOUTME: Rewards attach to streak, weight, or combo targets.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/models"
)

var (
	rewardStreakTarget int
	rewardWeightTarget float64
)

var rewardCmd = &cobra.Command{
	Use:     "reward",
	Aliases: []string{"r"},
	Short:   "Manage custom rewards",
	Long: `Attach self-chosen rewards to streak or weight-loss targets.

A reward whose target matches a default milestone attaches its text to that
milestone; otherwise it becomes its own milestone.

Examples:
  habits reward add streak 30 "new running shoes"
  habits reward add weight 15 "weekend trip"
  habits reward add combo "spa day" --streak-target 30 --weight-target 10
  habits reward list
  habits reward delete a1b2c3`,
}

var rewardAddCmd = &cobra.Command{
	Use:   "add <kind> [threshold] <description>",
	Short: "Add a custom reward",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := models.MilestoneKind(args[0])

		var (
			streakTarget int
			weightTarget float64
			description  string
		)
		switch kind {
		case models.MilestoneCombo:
			description = args[1]
			streakTarget = rewardStreakTarget
			weightTarget = rewardWeightTarget
		case models.MilestoneStreak:
			if len(args) < 3 {
				return fmt.Errorf("usage: habits reward add streak <days> <description>")
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid streak target: %s", args[1])
			}
			streakTarget = n
			description = args[2]
		case models.MilestoneWeight:
			if len(args) < 3 {
				return fmt.Errorf("usage: habits reward add weight <amount> <description>")
			}
			w, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid weight target: %s", args[1])
			}
			weightTarget = w
			description = args[2]
		default:
			return fmt.Errorf("unknown reward kind: %s (want streak, weight, or combo)", args[0])
		}

		r, err := appState.AddReward(cmd.Context(), kind, streakTarget, weightTarget, description)
		if err != nil {
			return err
		}

		color.Green("✓ Added %s reward", r.Kind)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(r.ID.String()[:8]), r.Description)
		printNotices()
		return nil
	},
}

var rewardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom rewards",
	RunE: func(cmd *cobra.Command, args []string) error {
		rewards, err := appState.Rewards()
		if err != nil {
			return err
		}
		if len(rewards) == 0 {
			fmt.Println("No custom rewards yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range rewards {
			target := ""
			switch r.Kind {
			case models.MilestoneStreak:
				target = fmt.Sprintf("%d day streak", r.StreakTarget)
			case models.MilestoneWeight:
				target = fmt.Sprintf("%g lost", r.WeightTarget)
			case models.MilestoneCombo:
				target = fmt.Sprintf("%d days + %g lost", r.StreakTarget, r.WeightTarget)
			}
			fmt.Printf("%s  %-22s %s\n", faint.Sprint(r.ID.String()[:8]), target, r.Description)
		}
		printNotices()
		return nil
	},
}

var rewardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom reward by ID or prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appState.DeleteReward(cmd.Context(), args[0]); err != nil {
			return err
		}
		color.Green("✓ Deleted reward %s", args[0])
		printNotices()
		return nil
	},
}

func init() {
	rewardAddCmd.Flags().IntVar(&rewardStreakTarget, "streak-target", 0, "streak days target (combo rewards)")
	rewardAddCmd.Flags().Float64Var(&rewardWeightTarget, "weight-target", 0, "weight loss target (combo rewards)")
	rewardCmd.AddCommand(rewardAddCmd)
	rewardCmd.AddCommand(rewardListCmd)
	rewardCmd.AddCommand(rewardDeleteCmd)
}
