// ABOUTME: Range and consistency checks on raw numeric inputs.
// ABOUTME: Distinguishes hard-invalid values from confirmation-required ones.
package validate

import (
	"fmt"
	"time"

	"github.com/harperreed/habits/internal/models"
)

// Hard ranges. Values outside these are rejected outright.
const (
	WeightMin = 20.0
	WeightMax = 500.0

	StepsMax       = 100000
	ExerciseMaxMin = 1440 // minutes in a day
	WaterMaxL      = 20.0

	TargetStepsMin    = 1000
	TargetStepsMax    = 50000
	TargetExerciseMin = 5
	TargetExerciseMax = 300
	TargetWaterMinL   = 0.5
	TargetWaterMaxL   = 10.0

	MinGoalDelta = 1.0
)

// Usual ranges. Values outside these but inside the hard range need
// explicit user confirmation before acceptance.
const (
	usualWeightMin   = 35.0
	usualWeightMax   = 250.0
	usualStepsMax    = 40000
	usualExerciseMax = 360
	usualWaterMaxL   = 8.0
)

// ConfirmationError marks a value that is plausible but unusual.
// Callers accept it by re-submitting with confirmation.
type ConfirmationError struct {
	Field string
	Value float64
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("%s value %g is outside the usual range; confirm to accept", e.Field, e.Value)
}

// Weight checks a weight reading.
func Weight(v float64) error {
	if v < WeightMin || v > WeightMax {
		return fmt.Errorf("weight must be between %g and %g, got %g", WeightMin, WeightMax, v)
	}
	if v < usualWeightMin || v > usualWeightMax {
		return &ConfirmationError{Field: "weight", Value: v}
	}
	return nil
}

// Steps checks a daily step count.
func Steps(v int) error {
	if v < 0 || v > StepsMax {
		return fmt.Errorf("steps must be between 0 and %d, got %d", StepsMax, v)
	}
	if v > usualStepsMax {
		return &ConfirmationError{Field: "steps", Value: float64(v)}
	}
	return nil
}

// ExerciseMinutes checks daily exercise minutes.
func ExerciseMinutes(v int) error {
	if v < 0 || v > ExerciseMaxMin {
		return fmt.Errorf("exercise minutes must be between 0 and %d, got %d", ExerciseMaxMin, v)
	}
	if v > usualExerciseMax {
		return &ConfirmationError{Field: "exercise", Value: float64(v)}
	}
	return nil
}

// Water checks daily water intake in liters.
func Water(v float64) error {
	if v < 0 || v > WaterMaxL {
		return fmt.Errorf("water must be between 0 and %g liters, got %g", WaterMaxL, v)
	}
	if v > usualWaterMaxL {
		return &ConfirmationError{Field: "water", Value: v}
	}
	return nil
}

// Targets checks the daily goal targets.
func Targets(steps, exercise int, water float64) error {
	if steps < TargetStepsMin || steps > TargetStepsMax {
		return fmt.Errorf("daily steps target must be between %d and %d, got %d", TargetStepsMin, TargetStepsMax, steps)
	}
	if exercise < TargetExerciseMin || exercise > TargetExerciseMax {
		return fmt.Errorf("daily exercise target must be between %d and %d minutes, got %d", TargetExerciseMin, TargetExerciseMax, exercise)
	}
	if water < TargetWaterMinL || water > TargetWaterMaxL {
		return fmt.Errorf("daily water target must be between %g and %g liters, got %g", TargetWaterMinL, TargetWaterMaxL, water)
	}
	return nil
}

// GoalPair checks starting and goal weights, including the minimum delta.
func GoalPair(start, goal float64) error {
	if start < WeightMin || start > WeightMax {
		return fmt.Errorf("starting weight must be between %g and %g, got %g", WeightMin, WeightMax, start)
	}
	if goal < WeightMin || goal > WeightMax {
		return fmt.Errorf("goal weight must be between %g and %g, got %g", WeightMin, WeightMax, goal)
	}
	delta := start - goal
	if delta < 0 {
		delta = -delta
	}
	if delta < MinGoalDelta {
		return fmt.Errorf("starting and goal weight must differ by at least %g", MinGoalDelta)
	}
	return nil
}

// Entry checks a daily log entry for internal consistency. Confirmation
// errors from the per-field checks propagate unless confirmed is set.
func Entry(e *models.DailyLog, confirmed bool) error {
	if _, err := time.Parse(models.DateLayout, e.Date); err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", e.Date)
	}
	if e.ExerciseMinutes > 0 && len(e.ExerciseTypes) == 0 {
		return fmt.Errorf("exercise minutes logged without an exercise type")
	}
	if len(e.WellnessItems) > 5 {
		return fmt.Errorf("wellness checklist has at most 5 items, got %d", len(e.WellnessItems))
	}

	checks := []error{
		Steps(e.Steps),
		ExerciseMinutes(e.ExerciseMinutes),
		Water(e.WaterLiters),
	}
	if e.Weight != nil {
		checks = append(checks, Weight(*e.Weight))
	}
	for _, err := range checks {
		if err == nil {
			continue
		}
		if _, needsConfirm := err.(*ConfirmationError); needsConfirm && confirmed {
			continue
		}
		return err
	}
	return nil
}
