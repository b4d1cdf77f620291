// ABOUTME: Settings model for goal-evaluation and sync preferences.
// ABOUTME: Theme and the notification/auto-sync booleans live under their own keys.
package models

// Settings holds the goal-evaluation configuration.
type Settings struct {
	AllowPartialSteps    bool `json:"allowPartialSteps" yaml:"allowPartialSteps"`
	AllowPartialExercise bool `json:"allowPartialExercise" yaml:"allowPartialExercise"`
	StrictWellness       bool `json:"strictWellness" yaml:"strictWellness"`
}

// DefaultSettings returns the out-of-the-box evaluation settings:
// partial credit on, strict wellness off.
func DefaultSettings() *Settings {
	return &Settings{AllowPartialSteps: true, AllowPartialExercise: true}
}

// Credentials is the opaque remote-store credentials blob. The core never
// interprets it; each adapter reads the fields it needs.
type Credentials struct {
	Server    string `json:"server,omitempty"`
	APIKey    string `json:"apiKey,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
	UserKey   string `json:"userKey,omitempty"`
}
