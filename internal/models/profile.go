// ABOUTME: Profile model holding weights and daily goal targets.
// ABOUTME: Created once at setup, mutated by goal updates or weight logs.
package models

import "time"

// DateLayout is the calendar-date key format used throughout the app.
const DateLayout = "2006-01-02"

// Profile holds the user's weights and daily targets.
type Profile struct {
	StartingWeight float64   `json:"startingWeight" yaml:"startingWeight"`
	CurrentWeight  float64   `json:"currentWeight" yaml:"currentWeight"`
	GoalWeight     float64   `json:"goalWeight" yaml:"goalWeight"`
	DailySteps     int       `json:"dailySteps" yaml:"dailySteps"`
	DailyExercise  int       `json:"dailyExercise" yaml:"dailyExercise"` // minutes
	DailyWater     float64   `json:"dailyWater" yaml:"dailyWater"`       // liters
	SetupAt        time.Time `json:"setupAt" yaml:"setupAt"`
	WeightUpdated  time.Time `json:"weightUpdated,omitempty" yaml:"weightUpdated,omitempty"`
}

// NewProfile creates a profile with the setup timestamp set to now.
func NewProfile(startWeight, goalWeight float64, steps, exercise int, water float64) *Profile {
	return &Profile{
		StartingWeight: startWeight,
		CurrentWeight:  startWeight,
		GoalWeight:     goalWeight,
		DailySteps:     steps,
		DailyExercise:  exercise,
		DailyWater:     water,
		SetupAt:        time.Now(),
	}
}

// WeightLost returns cumulative loss since setup. Negative when weight went up.
func (p *Profile) WeightLost() float64 {
	return p.StartingWeight - p.CurrentWeight
}

// GoalDelta returns the total loss the user is aiming for.
func (p *Profile) GoalDelta() float64 {
	return p.StartingWeight - p.GoalWeight
}

// UpdateWeight records a new current weight.
func (p *Profile) UpdateWeight(w float64, at time.Time) {
	p.CurrentWeight = w
	p.WeightUpdated = at
}
