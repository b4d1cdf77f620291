// ABOUTME: Achievement ledger with achieved/claimed predicates and guarded claim.
// ABOUTME: Claiming an unachieved or already-claimed milestone is a silent no-op.
package milestone

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/habits/internal/models"
)

// Ledger wraps the append-only achievements list.
type Ledger struct {
	Achievements []models.Achievement
}

// IsAchieved reports whether the milestone's threshold is currently met.
func IsAchieved(m models.Milestone, s *models.StreakState, p *models.Profile) bool {
	switch m.Kind {
	case models.MilestoneStreak:
		return float64(s.Overall) >= m.Threshold
	case models.MilestoneWeight:
		return p.WeightLost() >= m.Threshold
	case models.MilestoneCombo:
		return float64(s.Overall) >= m.Threshold && p.WeightLost() >= m.WeightGoal
	}
	return false
}

// IsClaimed reports whether an achievement with the milestone's
// (kind, threshold) identity already exists.
func (l *Ledger) IsClaimed(m models.Milestone) bool {
	for _, a := range l.Achievements {
		if a.Kind == m.Kind && a.Threshold == m.Threshold {
			return true
		}
	}
	return false
}

// Unclaimed returns the milestones that are achieved but not yet claimed.
func (l *Ledger) Unclaimed(xs []models.Milestone, s *models.StreakState, p *models.Profile) []models.Milestone {
	var out []models.Milestone
	for _, m := range xs {
		if IsAchieved(m, s, p) && !l.IsClaimed(m) {
			out = append(out, m)
		}
	}
	return out
}

// Claim appends an achievement for the milestone, snapshotting the attached
// reward text and current streak/weight. Returns ok=false without mutating
// anything when the milestone is unachieved or already claimed.
func (l *Ledger) Claim(m models.Milestone, s *models.StreakState, p *models.Profile) (models.Achievement, bool) {
	if !IsAchieved(m, s, p) || l.IsClaimed(m) {
		return models.Achievement{}, false
	}

	a := models.Achievement{
		ID:             uuid.New(),
		Kind:           m.Kind,
		Threshold:      m.Threshold,
		Title:          m.Title,
		Description:    m.Description,
		Reward:         m.Reward,
		ClaimedAt:      time.Now(),
		StreakSnapshot: s.Overall,
		WeightSnapshot: p.WeightLost(),
	}
	l.Achievements = append(l.Achievements, a)
	return a, true
}

// Find locates a milestone by kind and threshold in a generated list.
func Find(xs []models.Milestone, kind models.MilestoneKind, threshold float64) (models.Milestone, bool) {
	for _, m := range xs {
		if m.Kind == kind && m.Threshold == threshold {
			return m, true
		}
	}
	return models.Milestone{}, false
}
