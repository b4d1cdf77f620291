// ABOUTME: Tests for reward management and milestone claiming through the app.
// ABOUTME: Covers target validation, prefix deletion, and guarded claims.
package app

import (
	"context"
	"testing"

	"github.com/harperreed/habits/internal/models"
)

func TestAddRewardValidation(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		kind    models.MilestoneKind
		streak  int
		weight  float64
		desc    string
		wantErr bool
	}{
		{"streak ok", models.MilestoneStreak, 21, 0, "new shoes", false},
		{"streak missing target", models.MilestoneStreak, 0, 0, "x", true},
		{"weight ok", models.MilestoneWeight, 0, 15, "spa day", false},
		{"weight missing target", models.MilestoneWeight, 0, 0, "x", true},
		{"combo ok", models.MilestoneCombo, 30, 10, "trip", false},
		{"combo half specified", models.MilestoneCombo, 30, 0, "x", true},
		{"empty description", models.MilestoneStreak, 21, 0, "", true},
		{"bad kind", models.MilestoneKind("bogus"), 1, 1, "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.AddReward(ctx, tt.kind, tt.streak, tt.weight, tt.desc)
			if (err != nil) != tt.wantErr {
				t.Errorf("AddReward error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteRewardByPrefix(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	r, err := a.AddReward(ctx, models.MilestoneStreak, 21, 0, "new shoes")
	if err != nil {
		t.Fatalf("AddReward: %v", err)
	}

	if err := a.DeleteReward(ctx, r.ID.String()[:8]); err != nil {
		t.Fatalf("DeleteReward: %v", err)
	}

	rewards, _ := a.Rewards()
	if len(rewards) != 0 {
		t.Errorf("rewards after delete = %d, want 0", len(rewards))
	}

	if err := a.DeleteReward(ctx, "ffffffff"); err == nil {
		t.Error("deleting an unknown prefix should error")
	}
}

func TestMilestonesIncludeCustomRewards(t *testing.T) {
	a := setupApp(t)
	if _, err := a.AddReward(context.Background(), models.MilestoneStreak, 7, 0, "movie night"); err != nil {
		t.Fatalf("AddReward: %v", err)
	}

	xs, err := a.Milestones()
	if err != nil {
		t.Fatalf("Milestones: %v", err)
	}
	var found bool
	for _, m := range xs {
		if m.Kind == models.MilestoneStreak && m.Threshold == 7 {
			found = true
			if m.Reward != "movie night" {
				t.Errorf("Reward = %q, want attached", m.Reward)
			}
		}
	}
	if !found {
		t.Fatal("streak 7 milestone missing")
	}
}

func TestClaimLifecycle(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	// Unachieved claim is a quiet no-op.
	if _, ok, err := a.Claim(ctx, models.MilestoneStreak, 7); err != nil || ok {
		t.Fatalf("unachieved claim = ok %v, err %v; want no-op", ok, err)
	}

	// Reach the threshold directly.
	if err := a.Local.SaveStreaks(&models.StreakState{Overall: 7, LastLogDate: "2026-08-20"}); err != nil {
		t.Fatalf("SaveStreaks: %v", err)
	}

	unclaimed, err := a.Unclaimed()
	if err != nil {
		t.Fatalf("Unclaimed: %v", err)
	}
	if len(unclaimed) != 1 || unclaimed[0].Threshold != 7 {
		t.Fatalf("unclaimed = %+v, want the streak 7 milestone", unclaimed)
	}

	achievement, ok, err := a.Claim(ctx, models.MilestoneStreak, 7)
	if err != nil || !ok {
		t.Fatalf("claim = ok %v, err %v; want success", ok, err)
	}
	if achievement.StreakSnapshot != 7 {
		t.Errorf("StreakSnapshot = %d, want 7", achievement.StreakSnapshot)
	}

	// Second claim is a no-op and the ledger stays at one entry.
	if _, ok, _ := a.Claim(ctx, models.MilestoneStreak, 7); ok {
		t.Error("double claim should be refused")
	}
	achievements, _ := a.Achievements()
	if len(achievements) != 1 {
		t.Errorf("achievements = %d, want 1", len(achievements))
	}
}

func TestImportRejectionMutatesNothing(t *testing.T) {
	a := setupApp(t)

	if err := a.Import([]byte(`{"user":{"startingWeight":100}}`)); err == nil {
		t.Fatal("incomplete import should be rejected")
	}

	p, _ := a.Local.Profile()
	if p.StartingWeight != 200 {
		t.Errorf("profile changed after rejected import: %+v", p)
	}
}

func TestResetRemovesAchievements(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	a.Local.SaveStreaks(&models.StreakState{Overall: 7})
	if _, ok, _ := a.Claim(ctx, models.MilestoneStreak, 7); !ok {
		t.Fatal("claim should succeed")
	}

	if err := a.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	achievements, _ := a.Achievements()
	if len(achievements) != 0 {
		t.Errorf("achievements after reset = %d, want 0", len(achievements))
	}
	p, _ := a.Local.Profile()
	if p != nil {
		t.Error("profile should be gone after reset")
	}
}
