// ABOUTME: Local durable key-value store backed by Badger.
// ABOUTME: One JSON value per string key; corrupt values fall back to empty state.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"
)

// Persisted keys. One JSON-serializable value each.
const (
	KeyProfile       = "user"
	KeyDailyLogs     = "daily_logs"
	KeyStreaks       = "streaks"
	KeyCustomRewards = "custom_rewards"
	KeyAchievements  = "achievements"
	KeySettings      = "settings"
	KeyCredentials   = "credentials"
	KeyTheme         = "theme"
	KeyAutoSync      = "auto_sync"
	KeyNotifications = "notifications"
	KeySyncQueue     = "sync_queue"
	KeySyncState     = "sync_state"
)

// CorruptDataError reports a malformed persisted value. The caller gets the
// zero value for the key and should surface a fresh-start notice.
type CorruptDataError struct {
	Key string
	Err error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data under key %q: %v", e.Key, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// Store is the local durable key-value store.
type Store struct {
	db *badger.DB
}

// Open opens or creates the store at the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the store at the default XDG data path.
func OpenDefault() (*Store, error) {
	return Open(DataDir())
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "habits")
}

// Close closes the store.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get unmarshals the value under key into v. Returns false when the key is
// absent. A value that fails to unmarshal yields a CorruptDataError; v is
// left untouched so the caller keeps its zero value.
func (s *Store) Get(key string, v any) (bool, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, &CorruptDataError{Key: key, Err: err}
	}
	return true, nil
}

// Set marshals v and stores it under key.
func (s *Store) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// DropAll wipes every key. Used only by the full data reset.
func (s *Store) DropAll() error {
	return s.db.DropAll()
}
