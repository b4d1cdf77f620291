// ABOUTME: CLI command listing milestones with achieved/claimed state.
// ABOUTME: Milestones are regenerated on every invocation, never stored.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/milestone"
)

var milestonesAll bool

var milestonesCmd = &cobra.Command{
	Use:     "milestones",
	Aliases: []string{"m"},
	Short:   "List milestones and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		xs, err := appState.Milestones()
		if err != nil {
			return err
		}
		p, err := appState.Local.Profile()
		if err != nil {
			return err
		}
		streaks, err := appState.Streaks()
		if err != nil {
			return err
		}
		achievements, err := appState.Achievements()
		if err != nil {
			return err
		}
		ledger := &milestone.Ledger{Achievements: achievements}

		shown := 0
		for _, m := range xs {
			achieved := milestone.IsAchieved(m, streaks, p)
			claimed := ledger.IsClaimed(m)
			if !milestonesAll && claimed {
				continue
			}
			shown++

			mark := color.New(color.Faint).Sprint("·")
			if claimed {
				mark = color.GreenString("✓")
			} else if achieved {
				mark = color.CyanString("★")
			}
			line := fmt.Sprintf("%s %s", mark, m.Title)
			if m.Reward != "" {
				line += color.New(color.Faint).Sprintf("  (reward: %s)", m.Reward)
			}
			fmt.Println(line)
		}
		if shown == 0 {
			fmt.Println("Nothing here yet.")
		}
		printNotices()
		return nil
	},
}

func init() {
	milestonesCmd.Flags().BoolVar(&milestonesAll, "all", false, "include claimed milestones")
}
