// ABOUTME: Settings, export/import, and full data reset operations.
// ABOUTME: Import is all-or-nothing; a bad file mutates nothing.
package app

import (
	"context"

	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/store"
)

// Settings returns the goal-evaluation settings.
func (a *App) Settings() (*models.Settings, error) {
	s, err := a.Local.Settings()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateSettings persists new goal-evaluation settings.
func (a *App) UpdateSettings(ctx context.Context, s *models.Settings) error {
	if err := a.Local.SaveSettings(s); err != nil {
		return err
	}
	a.enqueueAndSync(ctx, models.ActionSettings, s)
	return nil
}

// Export serializes the full application state as json or yaml.
func (a *App) Export(format string) ([]byte, error) {
	data, err := a.Local.ExportAll()
	if err != nil {
		return nil, err
	}
	return store.MarshalExport(data, format)
}

// Import validates and applies a full-state import file. Validation failure
// leaves every entity untouched.
func (a *App) Import(raw []byte) error {
	d, err := store.ValidateImport(raw)
	if err != nil {
		return err
	}
	return a.Local.ImportAll(d)
}

// Reset wipes all local data, achievements included. The only way
// achievements are ever removed.
func (a *App) Reset() error {
	return a.Local.DropAll()
}
