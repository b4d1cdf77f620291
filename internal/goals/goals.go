// ABOUTME: Goal evaluation for a single day's entry against daily targets.
// ABOUTME: Pure function; partial-credit thresholds come from settings.
package goals

import "github.com/harperreed/habits/internal/models"

// Partial-credit multipliers. Water never gets partial credit.
const (
	partialStepsFactor    = 0.9
	partialExerciseFactor = 0.8

	strictWellnessScore = 4
	wellnessScore       = 3
)

// Config selects the evaluation thresholds.
type Config struct {
	AllowPartialSteps    bool
	AllowPartialExercise bool
	StrictWellness       bool
}

// ConfigFromSettings lifts persisted settings into an evaluation config.
func ConfigFromSettings(s *models.Settings) Config {
	if s == nil {
		s = models.DefaultSettings()
	}
	return Config{
		AllowPartialSteps:    s.AllowPartialSteps,
		AllowPartialExercise: s.AllowPartialExercise,
		StrictWellness:       s.StrictWellness,
	}
}

// Targets are the profile's daily goal targets.
type Targets struct {
	Steps           int
	ExerciseMinutes int
	WaterLiters     float64
}

// TargetsFromProfile extracts the daily targets from a profile.
func TargetsFromProfile(p *models.Profile) Targets {
	return Targets{
		Steps:           p.DailySteps,
		ExerciseMinutes: p.DailyExercise,
		WaterLiters:     p.DailyWater,
	}
}

// Result reports which goal categories were met.
type Result struct {
	Steps    bool `json:"steps"`
	Exercise bool `json:"exercise"`
	Water    bool `json:"water"`
	Wellness bool `json:"wellness"`
}

// All reports whether every category goal was met.
func (r Result) All() bool {
	return r.Steps && r.Exercise && r.Water && r.Wellness
}

// Evaluate decides which goal categories the entry satisfies.
func Evaluate(e *models.DailyLog, t Targets, cfg Config) Result {
	stepsNeeded := float64(t.Steps)
	if cfg.AllowPartialSteps {
		stepsNeeded *= partialStepsFactor
	}

	exerciseNeeded := float64(t.ExerciseMinutes)
	if cfg.AllowPartialExercise {
		exerciseNeeded *= partialExerciseFactor
	}

	wellnessNeeded := wellnessScore
	if cfg.StrictWellness {
		wellnessNeeded = strictWellnessScore
	}

	return Result{
		Steps:    float64(e.Steps) >= stepsNeeded,
		Exercise: float64(e.ExerciseMinutes) >= exerciseNeeded,
		Water:    e.WaterLiters >= t.WaterLiters,
		Wellness: e.WellnessScore() >= wellnessNeeded,
	}
}
