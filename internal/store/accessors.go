// ABOUTME: Typed accessors for the persisted application entities.
// ABOUTME: Missing keys return zero values; corrupt keys return CorruptDataError.
package store

import "github.com/harperreed/habits/internal/models"

// Profile returns the stored profile, or nil when setup hasn't run.
func (s *Store) Profile() (*models.Profile, error) {
	var p models.Profile
	found, err := s.Get(KeyProfile, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

// SaveProfile persists the profile.
func (s *Store) SaveProfile(p *models.Profile) error {
	return s.Set(KeyProfile, p)
}

// DailyLogs returns the date-keyed log map, empty when none exist.
func (s *Store) DailyLogs() (map[string]*models.DailyLog, error) {
	logs := make(map[string]*models.DailyLog)
	_, err := s.Get(KeyDailyLogs, &logs)
	if err != nil {
		return make(map[string]*models.DailyLog), err
	}
	return logs, nil
}

// SaveDailyLogs persists the log map.
func (s *Store) SaveDailyLogs(logs map[string]*models.DailyLog) error {
	return s.Set(KeyDailyLogs, logs)
}

// Streaks returns the streak state, zeroed when none exists.
func (s *Store) Streaks() (*models.StreakState, error) {
	var st models.StreakState
	_, err := s.Get(KeyStreaks, &st)
	if err != nil {
		return &models.StreakState{}, err
	}
	return &st, nil
}

// SaveStreaks persists the streak state.
func (s *Store) SaveStreaks(st *models.StreakState) error {
	return s.Set(KeyStreaks, st)
}

// CustomRewards returns the reward list.
func (s *Store) CustomRewards() ([]models.CustomReward, error) {
	var rs []models.CustomReward
	_, err := s.Get(KeyCustomRewards, &rs)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// SaveCustomRewards persists the reward list.
func (s *Store) SaveCustomRewards(rs []models.CustomReward) error {
	return s.Set(KeyCustomRewards, rs)
}

// Achievements returns the claimed achievements list.
func (s *Store) Achievements() ([]models.Achievement, error) {
	var as []models.Achievement
	_, err := s.Get(KeyAchievements, &as)
	if err != nil {
		return nil, err
	}
	return as, nil
}

// SaveAchievements persists the achievements list.
func (s *Store) SaveAchievements(as []models.Achievement) error {
	return s.Set(KeyAchievements, as)
}

// Settings returns the stored settings, defaults when none exist.
func (s *Store) Settings() (*models.Settings, error) {
	st := models.DefaultSettings()
	_, err := s.Get(KeySettings, st)
	if err != nil {
		return models.DefaultSettings(), err
	}
	return st, nil
}

// SaveSettings persists the settings.
func (s *Store) SaveSettings(st *models.Settings) error {
	return s.Set(KeySettings, st)
}

// Credentials returns the remote-store credentials, nil when unset.
func (s *Store) Credentials() (*models.Credentials, error) {
	var c models.Credentials
	found, err := s.Get(KeyCredentials, &c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

// SaveCredentials persists the remote-store credentials.
func (s *Store) SaveCredentials(c *models.Credentials) error {
	return s.Set(KeyCredentials, c)
}

// Theme returns the theme preference, empty when unset.
func (s *Store) Theme() (string, error) {
	var t string
	_, err := s.Get(KeyTheme, &t)
	return t, err
}

// SaveTheme persists the theme preference.
func (s *Store) SaveTheme(t string) error {
	return s.Set(KeyTheme, t)
}

// AutoSync returns the auto-sync flag, defaulting to true.
func (s *Store) AutoSync() (bool, error) {
	v := true
	_, err := s.Get(KeyAutoSync, &v)
	return v, err
}

// SaveAutoSync persists the auto-sync flag.
func (s *Store) SaveAutoSync(v bool) error {
	return s.Set(KeyAutoSync, v)
}

// Notifications returns the notifications flag, defaulting to true.
func (s *Store) Notifications() (bool, error) {
	v := true
	_, err := s.Get(KeyNotifications, &v)
	return v, err
}

// SaveNotifications persists the notifications flag.
func (s *Store) SaveNotifications(v bool) error {
	return s.Set(KeyNotifications, v)
}

// SyncQueue returns the pending mutation queue.
func (s *Store) SyncQueue() ([]models.SyncQueueItem, error) {
	var items []models.SyncQueueItem
	_, err := s.Get(KeySyncQueue, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SaveSyncQueue persists the pending mutation queue.
func (s *Store) SaveSyncQueue(items []models.SyncQueueItem) error {
	return s.Set(KeySyncQueue, items)
}

// SyncState returns the sync bookkeeping state. Fresh stores start online.
func (s *Store) SyncState() (*models.SyncState, error) {
	st := models.SyncState{Online: true}
	_, err := s.Get(KeySyncState, &st)
	if err != nil {
		return &models.SyncState{Online: true}, err
	}
	return &st, nil
}

// SaveSyncState persists the sync bookkeeping state.
func (s *Store) SaveSyncState(st *models.SyncState) error {
	return s.Set(KeySyncState, st)
}
