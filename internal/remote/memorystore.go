// ABOUTME: In-memory remote store for the local-only build and tests.
// ABOUTME: Same contract, no network; data lives for the process lifetime.
package remote

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. It backs the "local" build, where
// the app runs fully offline, and doubles as the test fixture.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]Record // kind -> key -> record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]Record)}
}

// FetchAll returns every record of a kind.
func (m *MemoryStore) FetchAll(ctx context.Context, kind string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Record
	for _, r := range m.data[kind] {
		out = append(out, r)
	}
	return out, nil
}

// FetchByFilter returns the records of a kind matching keep.
func (m *MemoryStore) FetchByFilter(ctx context.Context, kind string, keep func(Record) bool) ([]Record, error) {
	recs, err := m.FetchAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	return filterRecords(recs, keep), nil
}

// Upsert inserts or replaces a record.
func (m *MemoryStore) Upsert(ctx context.Context, kind, key string, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[kind] == nil {
		m.data[kind] = make(map[string]Record)
	}
	rec.Key = key
	m.data[kind][key] = rec
	return nil
}

// Delete removes a record by key.
func (m *MemoryStore) Delete(ctx context.Context, kind, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[kind][key]; !ok {
		return ErrNotFound
	}
	delete(m.data[kind], key)
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }
