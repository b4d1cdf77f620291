// ABOUTME: REST remote store adapter for a hosted JSON API backend.
// ABOUTME: Maps the four operations onto GET/PUT/DELETE of /records routes.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RESTStore implements Store against a hosted HTTP JSON API.
type RESTStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// OpenREST creates a REST adapter for the given server.
func OpenREST(server, apiKey string) (*RESTStore, error) {
	u, err := url.Parse(server)
	if err != nil || u.Scheme == "" {
		return nil, fmt.Errorf("invalid server url: %q", server)
	}
	return &RESTStore{
		baseURL: strings.TrimRight(server, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (r *RESTStore) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("remote returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// FetchAll returns every record of a kind.
func (r *RESTStore) FetchAll(ctx context.Context, kind string) ([]Record, error) {
	data, err := r.do(ctx, http.MethodGet, "/records/"+url.PathEscape(kind), nil)
	if err == ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch all %s: %w", kind, err)
	}

	var out []Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return out, nil
}

// FetchByFilter returns the records of a kind matching keep. Filtering is
// client-side; the API has no predicate pushdown.
func (r *RESTStore) FetchByFilter(ctx context.Context, kind string, keep func(Record) bool) ([]Record, error) {
	recs, err := r.FetchAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	return filterRecords(recs, keep), nil
}

// Upsert inserts or replaces a record.
func (r *RESTStore) Upsert(ctx context.Context, kind, key string, rec Record) error {
	rec.Key = key
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	path := "/records/" + url.PathEscape(kind) + "/" + url.PathEscape(key)
	if _, err := r.do(ctx, http.MethodPut, path, body); err != nil {
		return fmt.Errorf("upsert %s/%s: %w", kind, key, err)
	}
	return nil
}

// Delete removes a record by key.
func (r *RESTStore) Delete(ctx context.Context, kind, key string) error {
	path := "/records/" + url.PathEscape(kind) + "/" + url.PathEscape(key)
	if _, err := r.do(ctx, http.MethodDelete, path, nil); err != nil {
		return fmt.Errorf("delete %s/%s: %w", kind, key, err)
	}
	return nil
}

// Close is a no-op; the HTTP client holds no persistent connection state
// worth tearing down.
func (r *RESTStore) Close() error { return nil }
