// ABOUTME: Habits configuration management with remote backend selection.
// ABOUTME: Handles settings file, XDG paths, and the remote-store factory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/remote"
	"github.com/harperreed/habits/internal/store"
)

// Config stores habits tool configuration.
type Config struct {
	// Backend selects the remote store: "local" (default, no remote),
	// "sqlite", "charm", or "rest".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data storage.
	// Supports ~ expansion. Defaults to ~/.local/share/habits.
	DataDir string `json:"data_dir,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "local".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "local"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return store.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenRemote creates the remote store adapter for the configured backend.
// Credentials come from the local store; the core hands them to the
// adapter and never interprets them.
func (c *Config) OpenRemote(creds *models.Credentials) (remote.Store, error) {
	if creds == nil {
		creds = &models.Credentials{}
	}

	switch c.GetBackend() {
	case "local":
		return remote.NewMemoryStore(), nil
	case "sqlite":
		dbPath := filepath.Join(c.GetDataDir(), "remote.db")
		return remote.OpenSQLite(dbPath)
	case "charm":
		return remote.OpenCharm(creds.Server)
	case "rest":
		return remote.OpenREST(creds.Server, creds.APIKey)
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "habits", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
