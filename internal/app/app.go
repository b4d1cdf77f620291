// ABOUTME: Application state handle and the daily-log pipeline.
// ABOUTME: Validate, evaluate goals, advance streaks, persist, enqueue.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/habits/internal/goals"
	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/store"
	"github.com/harperreed/habits/internal/streak"
	"github.com/harperreed/habits/internal/syncer"
	"github.com/harperreed/habits/internal/validate"
)

// ErrNoProfile is returned by operations that need a completed setup.
var ErrNoProfile = errors.New("no profile found - run 'habits setup' first")

// App is the explicit application state handle. Every operation goes
// through it; there is no package-level mutable state.
type App struct {
	Local *store.Store
	Sync  *syncer.Reconciler // nil when running without a remote backend

	// Notices collects fresh-start messages from corrupt persisted keys.
	Notices []string
}

// New creates an application handle over the local store. rec may be nil.
func New(local *store.Store, rec *syncer.Reconciler) *App {
	return &App{Local: local, Sync: rec}
}

// recover converts a corrupt-data error into a fresh-start notice and
// lets the caller continue with the zero value. Other errors pass through.
func (a *App) recover(err error) error {
	var corrupt *store.CorruptDataError
	if errors.As(err, &corrupt) {
		a.Notices = append(a.Notices,
			fmt.Sprintf("stored %s data was unreadable and has been reset", corrupt.Key))
		return nil
	}
	return err
}

// Setup creates the profile. Running setup twice is an error; goals change
// through UpdateGoals.
func (a *App) Setup(startWeight, goalWeight float64, steps, exercise int, water float64) (*models.Profile, error) {
	existing, err := a.Local.Profile()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("profile already exists - use 'habits settings' to change goals")
	}

	if err := validate.GoalPair(startWeight, goalWeight); err != nil {
		return nil, err
	}
	if err := validate.Targets(steps, exercise, water); err != nil {
		return nil, err
	}

	p := models.NewProfile(startWeight, goalWeight, steps, exercise, water)
	if err := a.Local.SaveProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateGoals changes the goal weight and daily targets on an existing profile.
func (a *App) UpdateGoals(ctx context.Context, goalWeight float64, steps, exercise int, water float64) (*models.Profile, error) {
	p, err := a.Local.Profile()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}

	if err := validate.GoalPair(p.StartingWeight, goalWeight); err != nil {
		return nil, err
	}
	if err := validate.Targets(steps, exercise, water); err != nil {
		return nil, err
	}

	p.GoalWeight = goalWeight
	p.DailySteps = steps
	p.DailyExercise = exercise
	p.DailyWater = water
	if err := a.Local.SaveProfile(p); err != nil {
		return nil, err
	}

	a.enqueueAndSync(ctx, models.ActionSettings, p)
	return p, nil
}

// LogInput carries one day's raw, already-parsed values.
type LogInput struct {
	Date            string
	Weight          *float64
	Steps           int
	ExerciseMinutes int
	ExerciseTypes   []string
	WaterLiters     float64
	WellnessItems   []string

	// Confirmed accepts values outside the usual range.
	Confirmed bool
}

// DaySummary reports what one accepted entry changed.
type DaySummary struct {
	Entry     *models.DailyLog
	Result    goals.Result
	Streaks   models.StreakState
	Unclaimed []models.Milestone
}

// LogDay records one day's entry. Logging an existing date overwrites the
// entry but does not re-run the streak tracker; the tracker advances at
// most once per calendar date.
func (a *App) LogDay(ctx context.Context, in LogInput) (*DaySummary, error) {
	p, err := a.Local.Profile()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}

	e := models.NewDailyLog(in.Date)
	e.Weight = in.Weight
	e.Steps = in.Steps
	e.ExerciseMinutes = in.ExerciseMinutes
	e.ExerciseTypes = in.ExerciseTypes
	e.WaterLiters = in.WaterLiters
	e.WellnessItems = in.WellnessItems

	if err := validate.Entry(e, in.Confirmed); err != nil {
		return nil, err
	}

	logs, err := a.Local.DailyLogs()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	logs[e.Date] = e

	settings, err := a.Local.Settings()
	if err = a.recover(err); err != nil {
		return nil, err
	}

	result := goals.Evaluate(e, goals.TargetsFromProfile(p), goals.ConfigFromSettings(settings))

	streaks, err := a.Local.Streaks()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	if streaks.LastLogDate != e.Date {
		streak.Apply(streaks, e, result, logs)
	}

	if e.Weight != nil {
		p.UpdateWeight(*e.Weight, e.RecordedAt)
		if err := a.Local.SaveProfile(p); err != nil {
			return nil, err
		}
	}
	if err := a.Local.SaveDailyLogs(logs); err != nil {
		return nil, err
	}
	if err := a.Local.SaveStreaks(streaks); err != nil {
		return nil, err
	}

	a.enqueueAndSync(ctx, models.ActionDailyLog, e)

	unclaimed, err := a.Unclaimed()
	if err != nil {
		return nil, err
	}

	return &DaySummary{
		Entry:     e,
		Result:    result,
		Streaks:   *streaks,
		Unclaimed: unclaimed,
	}, nil
}

// Streaks returns the current streak state.
func (a *App) Streaks() (*models.StreakState, error) {
	st, err := a.Local.Streaks()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	return st, nil
}

// DailyLogs returns the full date-keyed log map.
func (a *App) DailyLogs() (map[string]*models.DailyLog, error) {
	logs, err := a.Local.DailyLogs()
	if err = a.recover(err); err != nil {
		return nil, err
	}
	return logs, nil
}

// enqueueAndSync records a pending mutation and kicks a best-effort push.
// Sync failures never block local operation; the reconciler retries later.
func (a *App) enqueueAndSync(ctx context.Context, action models.SyncAction, payload any) {
	if a.Sync == nil {
		return
	}
	if _, err := a.Sync.Queue().Enqueue(action, payload); err != nil {
		a.Notices = append(a.Notices, fmt.Sprintf("could not queue %s for sync: %v", action, err))
		return
	}

	autoSync, err := a.Local.AutoSync()
	if err != nil || !autoSync {
		return
	}
	// Busy or offline pushes are picked up by the background loop.
	_ = a.Sync.TryPush(ctx)
}
