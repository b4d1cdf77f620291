// ABOUTME: Milestone generation from profile and custom rewards.
// ABOUTME: Deterministic and side-effect-free; the UI regenerates constantly.
package milestone

import (
	"fmt"
	"sort"

	"github.com/harperreed/habits/internal/models"
)

// StreakThresholds are the fixed default streak milestones, in days.
var StreakThresholds = []int{7, 14, 30, 50, 100}

var streakTitles = map[int]string{
	7:   "One Week Strong",
	14:  "Two Week Streak",
	30:  "Thirty Day Habit",
	50:  "Fifty Day Run",
	100: "Century Club",
}

// Weight milestone tier spacing, in weight units of (starting - goal).
const (
	defaultStep = 10
	bigStep     = 25
	majorStep   = 50
)

// Generate produces the ordered milestone list for a profile and reward set.
//
// Custom rewards whose (kind, threshold) matches a generated default entry
// attach their description to that entry instead of duplicating it; the
// first-created reward wins the attachment. Everything else appends a new
// milestone in reward-creation order.
func Generate(p *models.Profile, rewards []models.CustomReward) []models.Milestone {
	var xs []models.Milestone

	for _, days := range StreakThresholds {
		xs = append(xs, models.Milestone{
			Kind:        models.MilestoneStreak,
			Threshold:   float64(days),
			Title:       streakTitles[days],
			Description: fmt.Sprintf("Keep your overall streak alive for %d days", days),
		})
	}

	delta := int(p.GoalDelta())
	for t := defaultStep; t <= delta; t += defaultStep {
		xs = append(xs, models.Milestone{
			Kind:        models.MilestoneWeight,
			Threshold:   float64(t),
			Title:       fmt.Sprintf("%d Down", t),
			Description: fmt.Sprintf("Lose %d total", t),
		})
	}
	for t := bigStep; t <= delta; t += bigStep {
		xs = append(xs, models.Milestone{
			Kind:        models.MilestoneWeight,
			Threshold:   float64(t),
			Title:       fmt.Sprintf("Big Win: %d Lost", t),
			Description: fmt.Sprintf("A big one: %d gone", t),
			Big:         true,
		})
	}
	for t := majorStep; t <= delta; t += majorStep {
		xs = append(xs, models.Milestone{
			Kind:        models.MilestoneWeight,
			Threshold:   float64(t),
			Title:       fmt.Sprintf("Major Milestone: %d Lost", t),
			Description: fmt.Sprintf("A major achievement: %d total", t),
			Major:       true,
		})
	}

	// Oldest reward first so the first-created one wins attachment ties.
	ordered := make([]models.CustomReward, len(rewards))
	copy(ordered, rewards)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	for _, r := range ordered {
		if i := matchDefault(xs, r); i >= 0 {
			if xs[i].Reward == "" {
				xs[i].Reward = r.Description
			}
			continue
		}
		xs = append(xs, customMilestone(r))
	}

	return xs
}

// matchDefault finds the first non-tier default entry with the reward's
// (kind, threshold) key, or -1.
func matchDefault(xs []models.Milestone, r models.CustomReward) int {
	if r.Kind == models.MilestoneCombo {
		return -1
	}
	for i, m := range xs {
		if m.Kind == r.Kind && m.Threshold == r.Threshold() && !m.Big && !m.Major {
			return i
		}
	}
	return -1
}

func customMilestone(r models.CustomReward) models.Milestone {
	m := models.Milestone{
		Kind:      r.Kind,
		Threshold: r.Threshold(),
		Reward:    r.Description,
	}
	switch r.Kind {
	case models.MilestoneStreak:
		m.Title = fmt.Sprintf("%d Day Streak", r.StreakTarget)
		m.Description = fmt.Sprintf("Keep your overall streak alive for %d days", r.StreakTarget)
	case models.MilestoneWeight:
		m.Title = fmt.Sprintf("%g Down", r.WeightTarget)
		m.Description = fmt.Sprintf("Lose %g total", r.WeightTarget)
	case models.MilestoneCombo:
		m.WeightGoal = r.WeightTarget
		m.Title = fmt.Sprintf("%d Days + %g Lost", r.StreakTarget, r.WeightTarget)
		m.Description = fmt.Sprintf("Hold a %d day streak and lose %g total", r.StreakTarget, r.WeightTarget)
	}
	return m
}
