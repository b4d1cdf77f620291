// ABOUTME: Durable at-least-once queue of pending local mutations.
// ABOUTME: Synced items and anything older than 24h are swept away.
package syncer

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/store"
)

// MaxItemAge bounds how long an unsynced item survives. An item that fails
// to sync for a full day is dropped; accepted data-loss tradeoff.
const MaxItemAge = 24 * time.Hour

// Queue is the durable pending-mutation queue, persisted in the local store.
type Queue struct {
	mu    sync.Mutex
	local *store.Store
}

// NewQueue wraps the local store's persisted queue.
func NewQueue(local *store.Store) *Queue {
	return &Queue{local: local}
}

// Enqueue appends a pending mutation with synced=false.
func (q *Queue) Enqueue(action models.SyncAction, payload any) (models.SyncQueueItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return models.SyncQueueItem{}, fmt.Errorf("marshal queue payload: %w", err)
		}
		raw = data
	}

	item := models.SyncQueueItem{
		ID:         uuid.New(),
		Action:     action,
		Payload:    raw,
		EnqueuedAt: time.Now(),
	}

	items, err := q.local.SyncQueue()
	if err != nil {
		return models.SyncQueueItem{}, err
	}
	items = append(items, item)
	if err := q.local.SaveSyncQueue(items); err != nil {
		return models.SyncQueueItem{}, err
	}
	return item, nil
}

// Pending returns the unsynced items.
func (q *Queue) Pending() ([]models.SyncQueueItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	items, err := q.local.SyncQueue()
	if err != nil {
		return nil, err
	}
	var out []models.SyncQueueItem
	for _, it := range items {
		if !it.Synced {
			out = append(out, it)
		}
	}
	return out, nil
}

// MarkSynced flags the given items as confirmed by a remote write.
func (q *Queue) MarkSynced(ids []uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	idSet := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	items, err := q.local.SyncQueue()
	if err != nil {
		return err
	}
	for i := range items {
		if idSet[items[i].ID] {
			items[i].Synced = true
		}
	}
	return q.local.SaveSyncQueue(items)
}

// Sweep removes synced items and any item older than MaxItemAge regardless
// of sync status. Returns the number of items removed.
func (q *Queue) Sweep(now time.Time) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	items, err := q.local.SyncQueue()
	if err != nil {
		return 0, err
	}

	kept := items[:0]
	for _, it := range items {
		if it.Synced || now.Sub(it.EnqueuedAt) > MaxItemAge {
			continue
		}
		kept = append(kept, it)
	}
	removed := len(items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, q.local.SaveSyncQueue(kept)
}
