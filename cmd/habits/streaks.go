// ABOUTME: CLI command showing the current streak counters.
// ABOUTME: Includes the weekly weight check that gates the overall streak.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var streaksCmd = &cobra.Command{
	Use:     "streaks",
	Aliases: []string{"st"},
	Short:   "Show current streak counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := appState.Streaks()
		if err != nil {
			return err
		}

		fmt.Printf("  steps     %4d\n", s.Steps)
		fmt.Printf("  exercise  %4d\n", s.Exercise)
		fmt.Printf("  water     %4d\n", s.Water)
		fmt.Printf("  wellness  %4d\n", s.Wellness)
		color.New(color.Bold).Printf("  overall   %4d\n", s.Overall)

		if s.LastLogDate != "" {
			fmt.Printf("\n  last log: %s", s.LastLogDate)
			if !s.WeeklyWeightOK {
				color.Yellow("  (no weigh-in this week - overall streak is gated)")
			} else {
				fmt.Println()
			}
		}
		printNotices()
		return nil
	},
}
