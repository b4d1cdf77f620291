// ABOUTME: Custom reward management and milestone claiming operations.
// ABOUTME: Claims are guarded no-ops when unachieved or already claimed.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/habits/internal/milestone"
	"github.com/harperreed/habits/internal/models"
)

// Milestones regenerates the full milestone list with rewards attached.
func (a *App) Milestones() ([]models.Milestone, error) {
	p, err := a.Local.Profile()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	rewards, err := a.Local.CustomRewards()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	return milestone.Generate(p, rewards), nil
}

// Unclaimed returns milestones that are achieved but not yet claimed.
func (a *App) Unclaimed() ([]models.Milestone, error) {
	xs, err := a.Milestones()
	if err != nil {
		return nil, err
	}
	p, _ := a.Local.Profile()
	streaks, err := a.Streaks()
	if err != nil {
		return nil, err
	}
	achievements, err := a.Achievements()
	if err != nil {
		return nil, err
	}
	ledger := &milestone.Ledger{Achievements: achievements}
	return ledger.Unclaimed(xs, streaks, p), nil
}

// AddReward creates a custom reward bound to a streak, weight, or combo target.
func (a *App) AddReward(ctx context.Context, kind models.MilestoneKind, streakTarget int, weightTarget float64, description string) (*models.CustomReward, error) {
	if description == "" {
		return nil, fmt.Errorf("reward description is required")
	}
	switch kind {
	case models.MilestoneStreak:
		if streakTarget < 1 {
			return nil, fmt.Errorf("streak target must be at least 1 day")
		}
	case models.MilestoneWeight:
		if weightTarget < 1 {
			return nil, fmt.Errorf("weight target must be at least 1")
		}
	case models.MilestoneCombo:
		if streakTarget < 1 || weightTarget < 1 {
			return nil, fmt.Errorf("combo rewards need both a streak and a weight target")
		}
	default:
		return nil, fmt.Errorf("unknown reward kind: %q", kind)
	}

	rewards, err := a.Local.CustomRewards()
	if err = a.recover(err); err != nil {
		return nil, err
	}

	r := models.NewCustomReward(kind, streakTarget, weightTarget, description)
	rewards = append(rewards, *r)
	if err := a.Local.SaveCustomRewards(rewards); err != nil {
		return nil, err
	}

	a.enqueueAndSync(ctx, models.ActionRewardCreate, r)
	return r, nil
}

// Rewards returns the custom reward list.
func (a *App) Rewards() ([]models.CustomReward, error) {
	rewards, err := a.Local.CustomRewards()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	return rewards, nil
}

// DeleteReward removes a reward by ID or ID prefix.
func (a *App) DeleteReward(ctx context.Context, idOrPrefix string) error {
	rewards, err := a.Local.CustomRewards()
	if err = a.recover(err); err != nil {
		return err
	}

	idx := -1
	for i, r := range rewards {
		if !strings.HasPrefix(r.ID.String(), idOrPrefix) {
			continue
		}
		if idx >= 0 {
			return fmt.Errorf("ambiguous prefix %s: matches multiple rewards", idOrPrefix)
		}
		idx = i
	}
	if idx < 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	deleted := rewards[idx]
	rewards = append(rewards[:idx], rewards[idx+1:]...)
	if err := a.Local.SaveCustomRewards(rewards); err != nil {
		return err
	}

	a.enqueueAndSync(ctx, models.ActionRewardDelete, deleted.ID)
	return nil
}

// Claim claims a milestone by kind and threshold. Claiming something
// unachieved or already claimed changes nothing and reports ok=false.
func (a *App) Claim(ctx context.Context, kind models.MilestoneKind, threshold float64) (models.Achievement, bool, error) {
	xs, err := a.Milestones()
	if err != nil {
		return models.Achievement{}, false, err
	}
	m, found := milestone.Find(xs, kind, threshold)
	if !found {
		return models.Achievement{}, false, nil
	}

	p, _ := a.Local.Profile()
	streaks, err := a.Streaks()
	if err != nil {
		return models.Achievement{}, false, err
	}
	achievements, err := a.Achievements()
	if err != nil {
		return models.Achievement{}, false, err
	}

	ledger := &milestone.Ledger{Achievements: achievements}
	achievement, ok := ledger.Claim(m, streaks, p)
	if !ok {
		return models.Achievement{}, false, nil
	}

	if err := a.Local.SaveAchievements(ledger.Achievements); err != nil {
		return models.Achievement{}, false, err
	}

	a.enqueueAndSync(ctx, models.ActionClaim, achievement)
	return achievement, true, nil
}

// Achievements returns the claimed achievements list.
func (a *App) Achievements() ([]models.Achievement, error) {
	achievements, err := a.Local.Achievements()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	return achievements, nil
}
