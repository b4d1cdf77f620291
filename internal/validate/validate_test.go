// ABOUTME: Tests for range checks and confirmation-required values.
// ABOUTME: Covers hard rejection, usual-range bands, and entry consistency.
package validate

import (
	"errors"
	"testing"

	"github.com/harperreed/habits/internal/models"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		wantErr     bool
		wantConfirm bool
	}{
		{"normal", 82.5, false, false},
		{"too low", 10, true, false},
		{"too high", 600, true, false},
		{"unusual low", 30, true, true},
		{"unusual high", 300, true, true},
		{"usual boundary", 250, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Weight(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Weight(%g) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			var confirm *ConfirmationError
			gotConfirm := errors.As(err, &confirm)
			if gotConfirm != tt.wantConfirm {
				t.Errorf("Weight(%g) confirmation = %v, want %v", tt.value, gotConfirm, tt.wantConfirm)
			}
		})
	}
}

func TestSteps(t *testing.T) {
	if err := Steps(-1); err == nil {
		t.Error("expected error for negative steps")
	}
	if err := Steps(150000); err == nil {
		t.Error("expected error above hard maximum")
	}

	err := Steps(55000)
	var confirm *ConfirmationError
	if !errors.As(err, &confirm) {
		t.Errorf("Steps(55000) = %v, want ConfirmationError", err)
	}

	if err := Steps(12000); err != nil {
		t.Errorf("Steps(12000) = %v, want nil", err)
	}
}

func TestTargets(t *testing.T) {
	if err := Targets(10000, 30, 2.0); err != nil {
		t.Errorf("valid targets rejected: %v", err)
	}
	if err := Targets(500, 30, 2.0); err == nil {
		t.Error("expected error for steps target below minimum")
	}
	if err := Targets(10000, 400, 2.0); err == nil {
		t.Error("expected error for exercise target above maximum")
	}
	if err := Targets(10000, 30, 15); err == nil {
		t.Error("expected error for water target above maximum")
	}
}

func TestGoalPair(t *testing.T) {
	if err := GoalPair(200, 150); err != nil {
		t.Errorf("GoalPair(200, 150) = %v, want nil", err)
	}
	if err := GoalPair(150, 150.5); err == nil {
		t.Error("expected error when delta is under 1 unit")
	}
	if err := GoalPair(150, 151); err != nil {
		t.Errorf("gain goal with delta 1 rejected: %v", err)
	}
}

func TestEntryExerciseTypeRequired(t *testing.T) {
	e := models.NewDailyLog("2026-08-20")
	e.ExerciseMinutes = 30

	if err := Entry(e, false); err == nil {
		t.Error("expected error: exercise minutes without a type tag")
	}

	e.ExerciseTypes = []string{"run"}
	if err := Entry(e, false); err != nil {
		t.Errorf("Entry with type tag = %v, want nil", err)
	}
}

func TestEntryConfirmation(t *testing.T) {
	e := models.NewDailyLog("2026-08-20")
	e.Steps = 55000

	err := Entry(e, false)
	var confirm *ConfirmationError
	if !errors.As(err, &confirm) {
		t.Fatalf("Entry = %v, want ConfirmationError", err)
	}

	if err := Entry(e, true); err != nil {
		t.Errorf("confirmed Entry = %v, want nil", err)
	}
}

func TestEntryBadDate(t *testing.T) {
	e := models.NewDailyLog("20/08/2026")
	if err := Entry(e, false); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestEntryWellnessCardinality(t *testing.T) {
	e := models.NewDailyLog("2026-08-20")
	e.WellnessItems = []string{"a", "b", "c", "d", "e", "f"}
	if err := Entry(e, false); err == nil {
		t.Error("expected error for more than 5 wellness items")
	}
}
