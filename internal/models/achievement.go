// ABOUTME: Achievement model, an append-only record of a claimed milestone.
// ABOUTME: Reward text is copied at claim time so later edits don't rewrite history.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is a claimed milestone. Never mutated after creation;
// removed only by a full data reset.
type Achievement struct {
	ID             uuid.UUID     `json:"id" yaml:"id"`
	Kind           MilestoneKind `json:"kind" yaml:"kind"`
	Threshold      float64       `json:"threshold" yaml:"threshold"`
	Title          string        `json:"title" yaml:"title"`
	Description    string        `json:"description,omitempty" yaml:"description,omitempty"`
	Reward         string        `json:"reward,omitempty" yaml:"reward,omitempty"`
	ClaimedAt      time.Time     `json:"claimedAt" yaml:"claimedAt"`
	StreakSnapshot int           `json:"streakSnapshot" yaml:"streakSnapshot"`
	WeightSnapshot float64       `json:"weightSnapshot" yaml:"weightSnapshot"` // weight lost at claim
}
