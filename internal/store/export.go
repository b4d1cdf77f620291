// ABOUTME: Export and import of the full application state.
// ABOUTME: Import is validated wholesale; a bad file mutates nothing.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/habits/internal/models"
)

// ExportVersion is written into every export document.
const ExportVersion = "1.0"

// ExportData is the full export document.
type ExportData struct {
	User          *models.Profile              `json:"user" yaml:"user"`
	DailyLogs     map[string]*models.DailyLog  `json:"dailyLogs" yaml:"dailyLogs"`
	Streaks       *models.StreakState          `json:"streaks" yaml:"streaks"`
	CustomRewards []models.CustomReward        `json:"customRewards" yaml:"customRewards"`
	Achievements  []models.Achievement         `json:"achievements" yaml:"achievements"`
	Settings      *models.Settings             `json:"settings" yaml:"settings"`
	ExportDate    time.Time                    `json:"exportDate" yaml:"exportDate"`
	ExportType    string                       `json:"exportType" yaml:"exportType"`
	Version       string                       `json:"version" yaml:"version"`
}

// ExportAll gathers every entity into an export document.
func (s *Store) ExportAll() (*ExportData, error) {
	profile, err := s.Profile()
	if err != nil {
		return nil, fmt.Errorf("export profile: %w", err)
	}
	logs, err := s.DailyLogs()
	if err != nil {
		return nil, fmt.Errorf("export daily logs: %w", err)
	}
	streaks, err := s.Streaks()
	if err != nil {
		return nil, fmt.Errorf("export streaks: %w", err)
	}
	rewards, err := s.CustomRewards()
	if err != nil {
		return nil, fmt.Errorf("export rewards: %w", err)
	}
	achievements, err := s.Achievements()
	if err != nil {
		return nil, fmt.Errorf("export achievements: %w", err)
	}
	settings, err := s.Settings()
	if err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}

	return &ExportData{
		User:          profile,
		DailyLogs:     logs,
		Streaks:       streaks,
		CustomRewards: rewards,
		Achievements:  achievements,
		Settings:      settings,
		ExportDate:    time.Now(),
		ExportType:    "full",
		Version:       ExportVersion,
	}, nil
}

// MarshalExport serializes an export document as json or yaml.
func MarshalExport(d *ExportData, format string) ([]byte, error) {
	switch format {
	case "json", "":
		return json.MarshalIndent(d, "", "  ")
	case "yaml":
		return yaml.Marshal(d)
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// ValidateImport parses and validates an import file. The user block must
// carry numeric startingWeight, goalWeight, dailySteps, dailyExercise, and
// dailyWater; any other shape is rejected wholesale.
func ValidateImport(raw []byte) (*ExportData, error) {
	var probe struct {
		User map[string]json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}
	if probe.User == nil {
		return nil, fmt.Errorf("invalid import file: missing user")
	}

	for _, field := range []string{"startingWeight", "goalWeight", "dailySteps", "dailyExercise", "dailyWater"} {
		v, ok := probe.User[field]
		if !ok {
			return nil, fmt.Errorf("invalid import file: missing user.%s", field)
		}
		var n float64
		if err := json.Unmarshal(v, &n); err != nil {
			return nil, fmt.Errorf("invalid import file: user.%s is not numeric", field)
		}
	}

	var d ExportData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}
	return &d, nil
}

// ImportAll replaces every entity with the imported document's contents.
// Callers must have validated the document first.
func (s *Store) ImportAll(d *ExportData) error {
	if d.User != nil {
		if err := s.SaveProfile(d.User); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	if d.DailyLogs != nil {
		if err := s.SaveDailyLogs(d.DailyLogs); err != nil {
			return fmt.Errorf("import daily logs: %w", err)
		}
	}
	if d.Streaks != nil {
		if err := s.SaveStreaks(d.Streaks); err != nil {
			return fmt.Errorf("import streaks: %w", err)
		}
	}
	if err := s.SaveCustomRewards(d.CustomRewards); err != nil {
		return fmt.Errorf("import rewards: %w", err)
	}
	if err := s.SaveAchievements(d.Achievements); err != nil {
		return fmt.Errorf("import achievements: %w", err)
	}
	if d.Settings != nil {
		if err := s.SaveSettings(d.Settings); err != nil {
			return fmt.Errorf("import settings: %w", err)
		}
	}
	return nil
}
