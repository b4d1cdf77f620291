// ABOUTME: CLI command listing recent daily log entries.
// ABOUTME: Most recent dates first, with an optional limit.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent daily log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := appState.DailyLogs()
		if err != nil {
			return err
		}
		if len(logs) == 0 {
			fmt.Println("No entries yet. Log one with 'habits log'.")
			return nil
		}

		dates := make([]string, 0, len(logs))
		for d := range logs {
			dates = append(dates, d)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(dates)))

		if listLimit > 0 && len(dates) > listLimit {
			dates = dates[:listLimit]
		}

		faint := color.New(color.Faint)
		for _, d := range dates {
			e := logs[d]
			weight := faint.Sprint("     -")
			if e.Weight != nil {
				weight = fmt.Sprintf("%6.1f", *e.Weight)
			}
			fmt.Printf("%s  %s  %6d steps  %3d min  %.1f L  wellness %d/5\n",
				d, weight, e.Steps, e.ExerciseMinutes, e.WaterLiters, e.WellnessScore())
		}
		printNotices()
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 14, "max entries to show (0 = all)")
}
