// ABOUTME: Sync queue item and sync state models.
// ABOUTME: Queue items are at-least-once, time-bounded pending mutations.
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SyncAction tags the kind of local mutation awaiting remote confirmation.
type SyncAction string

const (
	ActionDailyLog     SyncAction = "daily_log"
	ActionRewardCreate SyncAction = "reward_create"
	ActionRewardDelete SyncAction = "reward_delete"
	ActionClaim        SyncAction = "achievement_claim"
	ActionSettings     SyncAction = "settings_change"
)

// SyncQueueItem is a pending mutation. Items older than 24 hours are
// dropped by the sweep whether or not they synced.
type SyncQueueItem struct {
	ID         uuid.UUID       `json:"id"`
	Action     SyncAction      `json:"action"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	EnqueuedAt time.Time       `json:"enqueuedAt"`
	Synced     bool            `json:"synced"`
}

// SyncState tracks connectivity and outbound-sync bookkeeping.
type SyncState struct {
	Online     bool      `json:"online"`
	LastSyncAt time.Time `json:"lastSyncAt,omitempty"`
	InProgress bool      `json:"inProgress"`
	RetryCount int       `json:"retryCount"`
}
