// ABOUTME: Charm Cloud remote store adapter over Charm KV.
// ABOUTME: Records live under kind-prefixed keys; writes sync to the cloud.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/kv"
)

const charmDBName = "habits"

// CharmStore implements Store on Charm KV with cloud sync.
type CharmStore struct {
	mu sync.Mutex
	kv *kv.KV
}

// OpenCharm opens the Charm KV database, pulling remote data first.
// Host selects the Charm server; empty keeps the environment's default.
func OpenCharm(host string) (*CharmStore, error) {
	if host != "" {
		if err := os.Setenv("CHARM_HOST", host); err != nil {
			return nil, err
		}
	}

	db, err := kv.OpenWithDefaults(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	// Pull remote data on startup.
	_ = db.Sync()

	return &CharmStore{kv: db}, nil
}

func charmKey(kind, key string) []byte {
	return []byte(kind + ":" + key)
}

// FetchAll returns every record of a kind.
func (c *CharmStore) FetchAll(ctx context.Context, kind string) ([]Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	prefix := []byte(kind + ":")
	var out []Record
	for _, k := range keys {
		if !bytes.HasPrefix(k, prefix) {
			continue
		}
		val, err := c.kv.Get(k)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", k, err)
		}
		var rec Record
		if err := json.Unmarshal(val, &rec); err != nil {
			return nil, fmt.Errorf("decode %s: %w", k, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// FetchByFilter returns the records of a kind matching keep.
func (c *CharmStore) FetchByFilter(ctx context.Context, kind string, keep func(Record) bool) ([]Record, error) {
	recs, err := c.FetchAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	return filterRecords(recs, keep), nil
}

// Upsert inserts or replaces a record and pushes to the cloud.
func (c *CharmStore) Upsert(ctx context.Context, kind, key string, rec Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec.Key = key
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := c.kv.Set(charmKey(kind, key), data); err != nil {
		return fmt.Errorf("set %s/%s: %w", kind, key, err)
	}
	return c.kv.Sync()
}

// Delete removes a record and pushes to the cloud.
func (c *CharmStore) Delete(ctx context.Context, kind, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Delete(charmKey(kind, key)); err != nil {
		return fmt.Errorf("delete %s/%s: %w", kind, key, err)
	}
	return c.kv.Sync()
}

// Close closes the KV database.
func (c *CharmStore) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Close()
}
