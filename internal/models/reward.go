// ABOUTME: CustomReward model, user-owned reward attached to a target.
// ABOUTME: Created and deleted explicitly, never auto-deleted.
package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomReward is a self-chosen reward bound to a streak, weight, or combo target.
type CustomReward struct {
	ID           uuid.UUID     `json:"id" yaml:"id"`
	Kind         MilestoneKind `json:"kind" yaml:"kind"`
	StreakTarget int           `json:"streakTarget,omitempty" yaml:"streakTarget,omitempty"`
	WeightTarget float64       `json:"weightTarget,omitempty" yaml:"weightTarget,omitempty"`
	Description  string        `json:"description" yaml:"description"`
	CreatedAt    time.Time     `json:"createdAt" yaml:"createdAt"`
}

// NewCustomReward creates a reward with a fresh ID and creation timestamp.
func NewCustomReward(kind MilestoneKind, streakTarget int, weightTarget float64, description string) *CustomReward {
	return &CustomReward{
		ID:           uuid.New(),
		Kind:         kind,
		StreakTarget: streakTarget,
		WeightTarget: weightTarget,
		Description:  description,
		CreatedAt:    time.Now(),
	}
}

// Threshold returns the reward's primary threshold for milestone matching.
func (r *CustomReward) Threshold() float64 {
	if r.Kind == MilestoneWeight {
		return r.WeightTarget
	}
	return float64(r.StreakTarget)
}
