// ABOUTME: Tests for deterministic milestone generation.
// ABOUTME: Covers tier counts, ordering, and custom reward attachment/dedup.
package milestone

import (
	"reflect"
	"testing"
	"time"

	"github.com/harperreed/habits/internal/models"
)

func testProfile(start, goal float64) *models.Profile {
	return models.NewProfile(start, goal, 10000, 30, 2.0)
}

func rewardAt(kind models.MilestoneKind, streak int, weight float64, desc string, created time.Time) models.CustomReward {
	r := models.NewCustomReward(kind, streak, weight, desc)
	r.CreatedAt = created
	return *r
}

func TestGenerateWeightTiers(t *testing.T) {
	// Delta of 50: defaults at 10..50, big at 25/50, major at 50.
	xs := Generate(testProfile(200, 150), nil)

	var defaults, big, major int
	for _, m := range xs {
		if m.Kind != models.MilestoneWeight {
			continue
		}
		switch {
		case m.Major:
			major++
		case m.Big:
			big++
		default:
			defaults++
		}
	}

	if defaults != 5 || big != 2 || major != 1 {
		t.Errorf("weight tiers = %d default, %d big, %d major; want 5, 2, 1", defaults, big, major)
	}
}

func TestGenerateStreakDefaults(t *testing.T) {
	xs := Generate(testProfile(200, 150), nil)

	var got []float64
	for _, m := range xs {
		if m.Kind == models.MilestoneStreak {
			got = append(got, m.Threshold)
		}
	}
	want := []float64{7, 14, 30, 50, 100}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("streak thresholds = %v, want %v", got, want)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := testProfile(200, 150)
	rewards := []models.CustomReward{
		rewardAt(models.MilestoneStreak, 21, 0, "new shoes", time.Unix(100, 0)),
		rewardAt(models.MilestoneWeight, 0, 15, "spa day", time.Unix(200, 0)),
	}

	a := Generate(p, rewards)
	b := Generate(p, rewards)
	if !reflect.DeepEqual(a, b) {
		t.Error("generation must be deterministic for identical inputs")
	}
}

func TestGenerateRewardAttachesToDefault(t *testing.T) {
	rewards := []models.CustomReward{
		rewardAt(models.MilestoneStreak, 7, 0, "movie night", time.Unix(100, 0)),
	}
	xs := Generate(testProfile(200, 150), rewards)

	var matches int
	for _, m := range xs {
		if m.Kind == models.MilestoneStreak && m.Threshold == 7 {
			matches++
			if m.Reward != "movie night" {
				t.Errorf("Reward = %q, want attached description", m.Reward)
			}
		}
	}
	if matches != 1 {
		t.Errorf("duplicate (streak, 7) entries: %d, want 1", matches)
	}
}

func TestGenerateFirstCreatedRewardWins(t *testing.T) {
	// Second reward was created earlier; it gets the attachment.
	rewards := []models.CustomReward{
		rewardAt(models.MilestoneStreak, 7, 0, "later", time.Unix(200, 0)),
		rewardAt(models.MilestoneStreak, 7, 0, "earlier", time.Unix(100, 0)),
	}
	xs := Generate(testProfile(200, 150), rewards)

	m, ok := Find(xs, models.MilestoneStreak, 7)
	if !ok {
		t.Fatal("streak 7 milestone missing")
	}
	if m.Reward != "earlier" {
		t.Errorf("Reward = %q, want the first-created reward's description", m.Reward)
	}
}

func TestGenerateUnmatchedRewardAppends(t *testing.T) {
	rewards := []models.CustomReward{
		rewardAt(models.MilestoneStreak, 21, 0, "new shoes", time.Unix(100, 0)),
	}
	xs := Generate(testProfile(200, 150), rewards)

	m, ok := Find(xs, models.MilestoneStreak, 21)
	if !ok {
		t.Fatal("custom streak 21 milestone missing")
	}
	if m.Reward != "new shoes" {
		t.Errorf("Reward = %q, want %q", m.Reward, "new shoes")
	}
	// Custom entries append after all defaults.
	if last := xs[len(xs)-1]; last.Threshold != 21 {
		t.Errorf("custom milestone should come last, got %+v", last)
	}
}

func TestGenerateComboNeverMatchesDefaults(t *testing.T) {
	rewards := []models.CustomReward{
		rewardAt(models.MilestoneCombo, 30, 10, "weekend trip", time.Unix(100, 0)),
	}
	xs := Generate(testProfile(200, 150), rewards)

	m, ok := Find(xs, models.MilestoneCombo, 30)
	if !ok {
		t.Fatal("combo milestone missing")
	}
	if m.WeightGoal != 10 {
		t.Errorf("WeightGoal = %g, want 10", m.WeightGoal)
	}

	// The default streak 30 must still be present and reward-free.
	def, _ := Find(xs, models.MilestoneStreak, 30)
	if def.Reward != "" {
		t.Errorf("combo reward leaked onto the streak default: %q", def.Reward)
	}
}

func TestGenerateSmallDeltaHasNoWeightMilestones(t *testing.T) {
	xs := Generate(testProfile(155, 150), nil)
	for _, m := range xs {
		if m.Kind == models.MilestoneWeight {
			t.Fatalf("delta under 10 should yield no weight milestones, got %+v", m)
		}
	}
}
