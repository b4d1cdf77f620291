// ABOUTME: Tests for the Badger-backed local store.
// ABOUTME: Covers roundtrips, missing-key defaults, and corrupt-value fallback.
package store

import (
	"errors"
	"testing"

	"github.com/harperreed/habits/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProfileRoundtrip(t *testing.T) {
	s := testStore(t)

	p, err := s.Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p != nil {
		t.Fatalf("fresh store should have no profile, got %+v", p)
	}

	want := models.NewProfile(200, 150, 10000, 30, 2.0)
	if err := s.SaveProfile(want); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	got, err := s.Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if got == nil || got.StartingWeight != 200 || got.GoalWeight != 150 {
		t.Errorf("Profile = %+v, want saved values", got)
	}
}

func TestDailyLogsRoundtrip(t *testing.T) {
	s := testStore(t)

	logs, err := s.DailyLogs()
	if err != nil {
		t.Fatalf("DailyLogs: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("fresh store should have no logs, got %d", len(logs))
	}

	e := models.NewDailyLog("2026-08-20")
	e.Steps = 12000
	logs[e.Date] = e
	if err := s.SaveDailyLogs(logs); err != nil {
		t.Fatalf("SaveDailyLogs: %v", err)
	}

	got, err := s.DailyLogs()
	if err != nil {
		t.Fatalf("DailyLogs: %v", err)
	}
	if got["2026-08-20"] == nil || got["2026-08-20"].Steps != 12000 {
		t.Errorf("DailyLogs = %+v, want saved entry", got)
	}
}

func TestDefaults(t *testing.T) {
	s := testStore(t)

	if st, _ := s.Streaks(); st.Overall != 0 || st.LastLogDate != "" {
		t.Errorf("fresh streaks = %+v, want zero state", st)
	}
	if settings, _ := s.Settings(); !settings.AllowPartialSteps || settings.StrictWellness {
		t.Errorf("fresh settings = %+v, want defaults", settings)
	}
	if v, _ := s.AutoSync(); !v {
		t.Error("auto-sync should default to true")
	}
	if st, _ := s.SyncState(); !st.Online {
		t.Error("sync state should start online")
	}
}

func TestCorruptValueFallsBack(t *testing.T) {
	s := testStore(t)

	// Write garbage under the streaks key directly.
	if err := s.Set(KeyStreaks, "not a streak state"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	st, err := s.Streaks()
	var corrupt *CorruptDataError
	if !errors.As(err, &corrupt) {
		t.Fatalf("Streaks error = %v, want CorruptDataError", err)
	}
	if corrupt.Key != KeyStreaks {
		t.Errorf("corrupt key = %q, want %q", corrupt.Key, KeyStreaks)
	}
	if st == nil || st.Overall != 0 {
		t.Errorf("corrupt streaks should fall back to zero state, got %+v", st)
	}
}

func TestDeleteAbsentKey(t *testing.T) {
	s := testStore(t)
	if err := s.Delete("nonexistent"); err != nil {
		t.Errorf("deleting an absent key = %v, want nil", err)
	}
}

func TestDropAll(t *testing.T) {
	s := testStore(t)
	if err := s.SaveProfile(models.NewProfile(200, 150, 10000, 30, 2.0)); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if err := s.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	p, err := s.Profile()
	if err != nil || p != nil {
		t.Errorf("after DropAll profile = %+v, %v; want nil, nil", p, err)
	}
}
