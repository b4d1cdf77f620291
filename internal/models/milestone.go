// ABOUTME: Milestone model, derived data regenerated from profile and rewards.
// ABOUTME: Keyed by kind plus threshold for de-duplication and claiming.
package models

import "fmt"

// MilestoneKind discriminates milestone and reward targets.
type MilestoneKind string

const (
	MilestoneStreak MilestoneKind = "streak"
	MilestoneWeight MilestoneKind = "weight"
	MilestoneCombo  MilestoneKind = "combo"
)

// Milestone is an achievable threshold. Never persisted; always regenerated.
type Milestone struct {
	Kind        MilestoneKind `json:"kind"`
	Threshold   float64       `json:"threshold"` // streak days or weight units; streak days for combo
	WeightGoal  float64       `json:"weightGoal,omitempty"` // combo only
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Big         bool          `json:"big,omitempty"`
	Major       bool          `json:"major,omitempty"`
	Reward      string        `json:"reward,omitempty"` // attached custom reward text
}

// Key is the de-duplication identity: kind plus threshold, ignoring tiers.
func (m Milestone) Key() string {
	return fmt.Sprintf("%s:%g", m.Kind, m.Threshold)
}
