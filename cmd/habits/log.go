// ABOUTME: CLI command for logging a day's habits.
// ABOUTME: Maps confirmation-required values onto a --confirm flag.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/app"
	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/validate"
)

var (
	logDate     string
	logWeight   float64
	logSteps    int
	logExercise int
	logTypes    []string
	logWater    float64
	logWellness []string
	logConfirm  bool
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Log a day's habits",
	Long: `Log one day's habits. Logging the same date again overwrites the entry.

Examples:
  habits log --steps 12000 --exercise 35 --type run --water 2.5
  habits log --date 2026-08-20 --weight 198.5 --steps 9000 --water 2
  habits log --steps 55000 --confirm    # accept an unusual value`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := logDate
		if date == "" {
			date = time.Now().Format(models.DateLayout)
		}

		in := app.LogInput{
			Date:            date,
			Steps:           logSteps,
			ExerciseMinutes: logExercise,
			ExerciseTypes:   logTypes,
			WaterLiters:     logWater,
			WellnessItems:   logWellness,
			Confirmed:       logConfirm,
		}
		if cmd.Flags().Changed("weight") {
			in.Weight = &logWeight
		}

		summary, err := appState.LogDay(cmd.Context(), in)
		if err != nil {
			var confirm *validate.ConfirmationError
			if errors.As(err, &confirm) {
				color.Yellow("⚠ %v", confirm)
				return fmt.Errorf("re-run with --confirm to accept")
			}
			return err
		}

		color.Green("✓ Logged %s", date)
		fmt.Printf("  steps %s  exercise %s  water %s  wellness %s\n",
			goalMark(summary.Result.Steps),
			goalMark(summary.Result.Exercise),
			goalMark(summary.Result.Water),
			goalMark(summary.Result.Wellness))
		fmt.Printf("  overall streak: %d\n", summary.Streaks.Overall)

		if len(summary.Unclaimed) > 0 {
			color.Cyan("★ %d milestone(s) ready to claim - run 'habits milestones'", len(summary.Unclaimed))
		}
		printNotices()
		return nil
	},
}

func goalMark(met bool) string {
	if met {
		return color.GreenString("✓")
	}
	return color.New(color.Faint).Sprint("✗")
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "calendar date YYYY-MM-DD (default today)")
	logCmd.Flags().Float64Var(&logWeight, "weight", 0, "weight reading")
	logCmd.Flags().IntVar(&logSteps, "steps", 0, "step count")
	logCmd.Flags().IntVar(&logExercise, "exercise", 0, "exercise minutes")
	logCmd.Flags().StringSliceVar(&logTypes, "type", nil, "exercise type tags")
	logCmd.Flags().Float64Var(&logWater, "water", 0, "water intake (liters)")
	logCmd.Flags().StringSliceVar(&logWellness, "wellness", nil, "wellness checklist tags (up to 5)")
	logCmd.Flags().BoolVar(&logConfirm, "confirm", false, "accept values outside the usual range")
}
