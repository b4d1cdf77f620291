// ABOUTME: Consecutive-day streak state machine over goal results.
// ABOUTME: Counters transition from the previous date only, never replayed.
package streak

import (
	"time"

	"github.com/harperreed/habits/internal/goals"
	"github.com/harperreed/habits/internal/models"
)

// Apply advances the streak counters for one accepted daily entry.
//
// Not idempotent: each counter transitions off "yesterday equals the stored
// last-log date", so the caller must invoke it exactly once per accepted
// entry. The logs map must already contain the entry itself; it is scanned
// for the weekly weight check.
func Apply(s *models.StreakState, e *models.DailyLog, r goals.Result, logs map[string]*models.DailyLog) {
	continued := s.LastLogDate != "" && s.LastLogDate == e.PrevDate()

	s.Steps = next(s.Steps, r.Steps, continued)
	s.Exercise = next(s.Exercise, r.Exercise, continued)
	s.Water = next(s.Water, r.Water, continued)
	s.Wellness = next(s.Wellness, r.Wellness, continued)

	weeklyOK := WeeklyWeightCheck(e.Date, logs)
	s.Overall = next(s.Overall, r.All() && weeklyOK, continued)

	s.WeeklyWeightOK = weeklyOK
	s.LastLogDate = e.Date
}

// next computes one counter transition: met and contiguous increments,
// met after a gap restarts at 1, a miss resets to 0.
func next(current int, met, continued bool) int {
	switch {
	case !met:
		return 0
	case continued:
		return current + 1
	default:
		return 1
	}
}

// WeeklyWeightCheck reports whether any day in the Monday-starting 7-day
// window containing date has a weight entry.
func WeeklyWeightCheck(date string, logs map[string]*models.DailyLog) bool {
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return false
	}

	// Back up to Monday.
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)

	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i).Format(models.DateLayout)
		if entry, ok := logs[d]; ok && entry.Weight != nil {
			return true
		}
	}
	return false
}
