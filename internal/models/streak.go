// ABOUTME: StreakState model with four category counters plus overall.
// ABOUTME: Recomputed from the new entry and the previous date, never replayed.
package models

// StreakState holds the consecutive-day counters.
//
// LastLogDate is empty until the first entry is accepted. The overall
// counter additionally depends on the weekly weight check.
type StreakState struct {
	Steps          int    `json:"steps" yaml:"steps"`
	Exercise       int    `json:"exercise" yaml:"exercise"`
	Water          int    `json:"water" yaml:"water"`
	Wellness       int    `json:"wellness" yaml:"wellness"`
	Overall        int    `json:"overall" yaml:"overall"`
	LastLogDate    string `json:"lastLogDate,omitempty" yaml:"lastLogDate,omitempty"`
	WeeklyWeightOK bool   `json:"weeklyWeightOk" yaml:"weeklyWeightOk"`
}
