// ABOUTME: Tests for the achievement ledger's guarded claim semantics.
// ABOUTME: Covers achieved predicates, no-op claims, and reward snapshotting.
package milestone

import (
	"testing"

	"github.com/harperreed/habits/internal/models"
)

func TestIsAchieved(t *testing.T) {
	p := testProfile(200, 150)
	p.UpdateWeight(188, p.SetupAt) // 12 lost
	s := &models.StreakState{Overall: 10}

	tests := []struct {
		name string
		m    models.Milestone
		want bool
	}{
		{"streak met", models.Milestone{Kind: models.MilestoneStreak, Threshold: 7}, true},
		{"streak unmet", models.Milestone{Kind: models.MilestoneStreak, Threshold: 14}, false},
		{"weight met", models.Milestone{Kind: models.MilestoneWeight, Threshold: 10}, true},
		{"weight unmet", models.Milestone{Kind: models.MilestoneWeight, Threshold: 20}, false},
		{"combo both met", models.Milestone{Kind: models.MilestoneCombo, Threshold: 7, WeightGoal: 10}, true},
		{"combo weight short", models.Milestone{Kind: models.MilestoneCombo, Threshold: 7, WeightGoal: 20}, false},
		{"combo streak short", models.Milestone{Kind: models.MilestoneCombo, Threshold: 30, WeightGoal: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAchieved(tt.m, s, p); got != tt.want {
				t.Errorf("IsAchieved = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClaimSnapshotsState(t *testing.T) {
	p := testProfile(200, 150)
	p.UpdateWeight(188, p.SetupAt)
	s := &models.StreakState{Overall: 10}
	m := models.Milestone{Kind: models.MilestoneStreak, Threshold: 7, Title: "One Week Strong", Reward: "movie night"}

	var l Ledger
	a, ok := l.Claim(m, s, p)
	if !ok {
		t.Fatal("claim of an achieved milestone should succeed")
	}
	if a.Reward != "movie night" {
		t.Errorf("Reward = %q, want copied text", a.Reward)
	}
	if a.StreakSnapshot != 10 || a.WeightSnapshot != 12 {
		t.Errorf("snapshots = %d, %g; want 10, 12", a.StreakSnapshot, a.WeightSnapshot)
	}
	if len(l.Achievements) != 1 {
		t.Fatalf("ledger length = %d, want 1", len(l.Achievements))
	}

	// Reward edits after the claim must not rewrite history.
	m.Reward = "different"
	if l.Achievements[0].Reward != "movie night" {
		t.Error("claimed reward text must be a copy")
	}
}

func TestClaimUnachievedIsNoOp(t *testing.T) {
	p := testProfile(200, 150)
	s := &models.StreakState{Overall: 2}
	m := models.Milestone{Kind: models.MilestoneStreak, Threshold: 7}

	var l Ledger
	if _, ok := l.Claim(m, s, p); ok {
		t.Error("claim of an unachieved milestone should be refused")
	}
	if len(l.Achievements) != 0 {
		t.Errorf("ledger mutated on refused claim: %d entries", len(l.Achievements))
	}
}

func TestClaimTwiceIsNoOp(t *testing.T) {
	p := testProfile(200, 150)
	s := &models.StreakState{Overall: 10}
	m := models.Milestone{Kind: models.MilestoneStreak, Threshold: 7}

	var l Ledger
	if _, ok := l.Claim(m, s, p); !ok {
		t.Fatal("first claim should succeed")
	}
	if _, ok := l.Claim(m, s, p); ok {
		t.Error("second claim of the same milestone should be a no-op")
	}
	if len(l.Achievements) != 1 {
		t.Errorf("ledger length = %d, want 1", len(l.Achievements))
	}
}

func TestUnclaimed(t *testing.T) {
	p := testProfile(200, 150)
	p.UpdateWeight(189, p.SetupAt) // 11 lost
	s := &models.StreakState{Overall: 8}
	xs := Generate(p, nil)

	var l Ledger
	got := l.Unclaimed(xs, s, p)
	// Achieved: streak 7 and weight 10.
	if len(got) != 2 {
		t.Fatalf("unclaimed = %d milestones, want 2: %+v", len(got), got)
	}

	l.Claim(got[0], s, p)
	if after := l.Unclaimed(xs, s, p); len(after) != 1 {
		t.Errorf("unclaimed after one claim = %d, want 1", len(after))
	}
}
