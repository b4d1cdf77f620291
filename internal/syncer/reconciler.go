// ABOUTME: Offline-first reconciler keeping local and remote state consistent.
// ABOUTME: Last-writer-wins at whole-record granularity; one push in flight.
package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/remote"
	"github.com/harperreed/habits/internal/store"
)

// DefaultInterval is how often the background loop re-attempts a push.
const DefaultInterval = 5 * time.Minute

// ErrSyncBusy rejects a push while another is in flight. Callers retry
// later, typically via the queue.
var ErrSyncBusy = errors.New("sync already in progress")

// ErrOffline rejects automatic pushes after the retry budget is spent.
// A manual force-sync or a connectivity-restoration event clears it.
var ErrOffline = errors.New("sync is offline")

// statePayload is the whole-record snapshot exchanged with the remote store.
type statePayload struct {
	User          *models.Profile             `json:"user"`
	DailyLogs     map[string]*models.DailyLog `json:"dailyLogs"`
	Streaks       *models.StreakState         `json:"streaks"`
	CustomRewards []models.CustomReward       `json:"customRewards"`
	Achievements  []models.Achievement        `json:"achievements"`
	Settings      *models.Settings            `json:"settings"`
}

// Reconciler owns all outbound and inbound sync for one user record.
type Reconciler struct {
	local   *store.Store
	remote  remote.Store
	queue   *Queue
	policy  RetryPolicy
	userKey string
	logger  *log.Logger

	interval time.Duration
	busy     atomic.Bool
}

// New creates a reconciler for the given local store and remote adapter.
func New(local *store.Store, rs remote.Store, userKey string) *Reconciler {
	if userKey == "" {
		userKey = "primary"
	}
	return &Reconciler{
		local:    local,
		remote:   rs,
		queue:    NewQueue(local),
		policy:   DefaultRetryPolicy(),
		userKey:  userKey,
		logger:   log.Default().With("component", "syncer"),
		interval: DefaultInterval,
	}
}

// WithPolicy overrides the retry policy.
func (r *Reconciler) WithPolicy(p RetryPolicy) *Reconciler {
	r.policy = p
	return r
}

// WithInterval overrides the background push interval.
func (r *Reconciler) WithInterval(d time.Duration) *Reconciler {
	r.interval = d
	return r
}

// Queue exposes the pending-mutation queue.
func (r *Reconciler) Queue() *Queue {
	return r.queue
}

// InProgress reports whether a push is currently in flight.
func (r *Reconciler) InProgress() bool {
	return r.busy.Load()
}

// Status returns the persisted sync state with the live in-progress flag.
func (r *Reconciler) Status() (*models.SyncState, error) {
	st, err := r.local.SyncState()
	if err != nil {
		return st, err
	}
	st.InProgress = r.busy.Load()
	return st, nil
}

// Reconcile runs the startup merge. If no remote record exists, local state
// is pushed unconditionally. If the remote record is strictly newer than the
// local last-sync timestamp, every local entity is overwritten wholesale.
// Otherwise local state is pushed.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	recs, err := r.remote.FetchByFilter(ctx, remote.KindState, func(rec remote.Record) bool {
		return rec.Key == r.userKey
	})
	if err != nil {
		return fmt.Errorf("fetch remote state: %w", err)
	}

	if len(recs) == 0 {
		return r.TryPush(ctx)
	}

	rec := recs[0]
	st, err := r.local.SyncState()
	if err != nil {
		return err
	}

	if rec.LastSync.After(st.LastSyncAt) {
		return r.overwriteLocal(rec, st)
	}
	return r.TryPush(ctx)
}

// overwriteLocal replaces every local entity with the remote copy.
// Field-by-field replacement of the whole record, not a structural merge.
func (r *Reconciler) overwriteLocal(rec remote.Record, st *models.SyncState) error {
	var payload statePayload
	if err := json.Unmarshal(rec.Fields, &payload); err != nil {
		return fmt.Errorf("decode remote state: %w", err)
	}

	if payload.User != nil {
		if err := r.local.SaveProfile(payload.User); err != nil {
			return err
		}
	}
	if err := r.local.SaveDailyLogs(payload.DailyLogs); err != nil {
		return err
	}
	if payload.Streaks != nil {
		if err := r.local.SaveStreaks(payload.Streaks); err != nil {
			return err
		}
	}
	if err := r.local.SaveCustomRewards(payload.CustomRewards); err != nil {
		return err
	}
	if err := r.local.SaveAchievements(payload.Achievements); err != nil {
		return err
	}
	if payload.Settings != nil {
		if err := r.local.SaveSettings(payload.Settings); err != nil {
			return err
		}
	}

	st.LastSyncAt = rec.LastSync
	st.Online = true
	st.RetryCount = 0
	if err := r.local.SaveSyncState(st); err != nil {
		return err
	}

	r.logger.Info("local state replaced by newer remote copy", "remote_last_sync", rec.LastSync)
	return nil
}

// TryPush pushes local state to the remote store. Returns ErrSyncBusy when
// a push is already in flight and ErrOffline after the retry budget is
// spent. A failed write increments the retry counter; exhaustion flips the
// connectivity state to offline and resets the counter.
func (r *Reconciler) TryPush(ctx context.Context) error {
	if !r.busy.CompareAndSwap(false, true) {
		return ErrSyncBusy
	}
	defer r.busy.Store(false)

	st, err := r.local.SyncState()
	if err != nil {
		return err
	}
	if !st.Online {
		return ErrOffline
	}

	pending, err := r.queue.Pending()
	if err != nil {
		return err
	}

	payload, err := r.snapshot()
	if err != nil {
		return err
	}
	fields, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	now := time.Now()
	rec := remote.Record{Key: r.userKey, Fields: fields, LastSync: now}
	if err := r.remote.Upsert(ctx, remote.KindState, r.userKey, rec); err != nil {
		st.RetryCount++
		if r.policy.Exhausted(st.RetryCount) {
			st.Online = false
			st.RetryCount = 0
			r.logger.Warn("retry budget exhausted, going offline")
		}
		if saveErr := r.local.SaveSyncState(st); saveErr != nil {
			return saveErr
		}
		return fmt.Errorf("push state: %w", err)
	}

	st.Online = true
	st.LastSyncAt = now
	st.RetryCount = 0
	if err := r.local.SaveSyncState(st); err != nil {
		return err
	}

	// Every pending item is covered by the whole-record push.
	ids := make([]uuid.UUID, len(pending))
	for i, it := range pending {
		ids[i] = it.ID
	}
	if err := r.queue.MarkSynced(ids); err != nil {
		return err
	}
	if _, err := r.queue.Sweep(now); err != nil {
		return err
	}

	r.logger.Debug("pushed local state", "items", len(ids))
	return nil
}

// ForceSync is the manual sync: it restores connectivity, zeroes the retry
// counter, and pushes.
func (r *Reconciler) ForceSync(ctx context.Context) error {
	if err := r.SetOnline(); err != nil {
		return err
	}
	return r.TryPush(ctx)
}

// SetOnline marks connectivity as restored, e.g. from a network-change
// event. The next push attempt proceeds normally.
func (r *Reconciler) SetOnline() error {
	st, err := r.local.SyncState()
	if err != nil {
		return err
	}
	st.Online = true
	st.RetryCount = 0
	return r.local.SaveSyncState(st)
}

// snapshot assembles the whole-record payload from local state.
func (r *Reconciler) snapshot() (*statePayload, error) {
	profile, err := r.local.Profile()
	if err != nil {
		return nil, err
	}
	logs, err := r.local.DailyLogs()
	if err != nil {
		return nil, err
	}
	streaks, err := r.local.Streaks()
	if err != nil {
		return nil, err
	}
	rewards, err := r.local.CustomRewards()
	if err != nil {
		return nil, err
	}
	achievements, err := r.local.Achievements()
	if err != nil {
		return nil, err
	}
	settings, err := r.local.Settings()
	if err != nil {
		return nil, err
	}

	return &statePayload{
		User:          profile,
		DailyLogs:     logs,
		Streaks:       streaks,
		CustomRewards: rewards,
		Achievements:  achievements,
		Settings:      settings,
	}, nil
}

// Run drives the background loop: a periodic push every interval plus
// backoff-scheduled retries after failures. Returns when ctx is done.
// There is no cancellation of an individual in-flight push beyond ctx.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var retryAt <-chan time.Time

	attempt := func() {
		err := r.TryPush(ctx)
		switch {
		case err == nil, errors.Is(err, ErrSyncBusy), errors.Is(err, ErrOffline):
			retryAt = nil
		default:
			st, stErr := r.local.SyncState()
			if stErr != nil || !st.Online {
				retryAt = nil
				return
			}
			delay := r.policy.Delay(st.RetryCount)
			r.logger.Debug("push failed, retrying", "delay", delay, "error", err)
			retryAt = time.After(delay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			attempt()
		case <-retryAt:
			attempt()
		}
	}
}
