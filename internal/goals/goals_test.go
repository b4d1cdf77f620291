// ABOUTME: Tests for goal evaluation thresholds.
// ABOUTME: Covers partial credit, strict wellness, and exact boundaries.
package goals

import (
	"testing"

	"github.com/harperreed/habits/internal/models"
)

func testTargets() Targets {
	return Targets{Steps: 10000, ExerciseMinutes: 30, WaterLiters: 2.0}
}

func TestEvaluateExactTargets(t *testing.T) {
	e := models.NewDailyLog("2026-08-20")
	e.Steps = 10000
	e.ExerciseMinutes = 30
	e.WaterLiters = 2.0
	e.WellnessItems = []string{"meditation", "sleep", "journaling"}

	r := Evaluate(e, testTargets(), Config{})
	if !r.All() {
		t.Errorf("exact targets should meet every goal, got %+v", r)
	}
}

func TestEvaluatePartialSteps(t *testing.T) {
	e := models.NewDailyLog("2026-08-20")
	e.Steps = 9000 // 90% of target

	tests := []struct {
		name    string
		partial bool
		want    bool
	}{
		{"partial credit on", true, true},
		{"partial credit off", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Evaluate(e, testTargets(), Config{AllowPartialSteps: tt.partial})
			if r.Steps != tt.want {
				t.Errorf("Steps = %v, want %v", r.Steps, tt.want)
			}
		})
	}

	// Just under the partial threshold still misses.
	e.Steps = 8999
	r := Evaluate(e, testTargets(), Config{AllowPartialSteps: true})
	if r.Steps {
		t.Error("8999 steps should miss a 9000-step partial threshold")
	}
}

func TestEvaluatePartialExercise(t *testing.T) {
	e := models.NewDailyLog("2026-08-20")
	e.ExerciseMinutes = 24 // 80% of target

	r := Evaluate(e, testTargets(), Config{AllowPartialExercise: true})
	if !r.Exercise {
		t.Error("24 of 30 minutes should pass with partial credit")
	}

	r = Evaluate(e, testTargets(), Config{})
	if r.Exercise {
		t.Error("24 of 30 minutes should fail without partial credit")
	}
}

func TestEvaluateWaterNoPartialCredit(t *testing.T) {
	e := models.NewDailyLog("2026-08-20")
	e.WaterLiters = 1.9

	cfg := Config{AllowPartialSteps: true, AllowPartialExercise: true}
	r := Evaluate(e, testTargets(), cfg)
	if r.Water {
		t.Error("water never gets partial credit")
	}
}

func TestEvaluateWellness(t *testing.T) {
	tests := []struct {
		name   string
		items  int
		strict bool
		want   bool
	}{
		{"three items default", 3, false, true},
		{"two items default", 2, false, false},
		{"three items strict", 3, true, false},
		{"four items strict", 4, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := models.NewDailyLog("2026-08-20")
			for i := 0; i < tt.items; i++ {
				e.WellnessItems = append(e.WellnessItems, "item")
			}
			r := Evaluate(e, testTargets(), Config{StrictWellness: tt.strict})
			if r.Wellness != tt.want {
				t.Errorf("Wellness with %d items (strict=%v) = %v, want %v", tt.items, tt.strict, r.Wellness, tt.want)
			}
		})
	}
}

func TestConfigFromSettings(t *testing.T) {
	cfg := ConfigFromSettings(nil)
	if !cfg.AllowPartialSteps || !cfg.AllowPartialExercise || cfg.StrictWellness {
		t.Errorf("nil settings should yield defaults, got %+v", cfg)
	}

	cfg = ConfigFromSettings(&models.Settings{StrictWellness: true})
	if cfg.AllowPartialSteps || !cfg.StrictWellness {
		t.Errorf("settings not carried through, got %+v", cfg)
	}
}
