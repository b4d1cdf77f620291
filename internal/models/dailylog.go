// ABOUTME: DailyLog model, one entry per calendar date.
// ABOUTME: Wellness score is derived from the checked item tags.
package models

import "time"

// DailyLog is a single day's entry. Logging the same date again overwrites.
type DailyLog struct {
	Date            string    `json:"date" yaml:"date"` // YYYY-MM-DD
	Weight          *float64  `json:"weight,omitempty" yaml:"weight,omitempty"`
	Steps           int       `json:"steps" yaml:"steps"`
	ExerciseMinutes int       `json:"exerciseMinutes" yaml:"exerciseMinutes"`
	ExerciseTypes   []string  `json:"exerciseTypes,omitempty" yaml:"exerciseTypes,omitempty"`
	WaterLiters     float64   `json:"waterLiters" yaml:"waterLiters"`
	WellnessItems   []string  `json:"wellnessItems,omitempty" yaml:"wellnessItems,omitempty"` // 0-5 tags
	RecordedAt      time.Time `json:"recordedAt" yaml:"recordedAt"`
}

// WellnessItemTags are the five recognized wellness checklist tags.
var WellnessItemTags = []string{"sleep", "nutrition", "mindfulness", "social", "screen_time"}

// NewDailyLog creates an entry for the given date with the record timestamp set.
func NewDailyLog(date string) *DailyLog {
	return &DailyLog{Date: date, RecordedAt: time.Now()}
}

// WellnessScore is the cardinality of the wellness checklist.
func (e *DailyLog) WellnessScore() int {
	return len(e.WellnessItems)
}

// WithWeight attaches a weight reading to the entry.
func (e *DailyLog) WithWeight(w float64) *DailyLog {
	e.Weight = &w
	return e
}

// PrevDate returns the calendar date immediately before the entry's date.
func (e *DailyLog) PrevDate() string {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}
