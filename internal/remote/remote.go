// ABOUTME: Remote store contract shared by every hosted backend adapter.
// ABOUTME: Four operations only; the core never sees backend request shapes.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Entity kinds stored remotely.
const (
	KindState = "state" // the single whole-record snapshot per user
)

// ErrNotFound is returned when a fetched key does not exist.
var ErrNotFound = errors.New("remote: not found")

// Record is an opaque remote row: a key, a JSON field blob, and the
// last-sync timestamp used for last-writer-wins comparison.
type Record struct {
	Key      string          `json:"key"`
	Fields   json.RawMessage `json:"fields"`
	LastSync time.Time       `json:"lastSync"`
}

// Store is the narrow adapter contract every backend implements.
type Store interface {
	FetchAll(ctx context.Context, kind string) ([]Record, error)
	FetchByFilter(ctx context.Context, kind string, keep func(Record) bool) ([]Record, error)
	Upsert(ctx context.Context, kind, key string, rec Record) error
	Delete(ctx context.Context, kind, key string) error
	Close() error
}

// filterRecords applies keep over records fetched by FetchAll. Adapters
// without server-side filtering share this.
func filterRecords(recs []Record, keep func(Record) bool) []Record {
	if keep == nil {
		return recs
	}
	var out []Record
	for _, r := range recs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
