// ABOUTME: SQLite-backed remote store adapter.
// ABOUTME: One records table keyed by (kind, key); pure Go driver, no CGO.
package remote

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS records (
	kind      TEXT NOT NULL,
	key       TEXT NOT NULL,
	fields    TEXT NOT NULL,
	last_sync TEXT NOT NULL,
	PRIMARY KEY (kind, key)
);
`

// SQLiteStore implements Store on a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the adapter database at the given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// FetchAll returns every record of a kind.
func (s *SQLiteStore) FetchAll(ctx context.Context, kind string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, fields, last_sync FROM records WHERE kind = ?`, kind)
	if err != nil {
		return nil, fmt.Errorf("fetch all %s: %w", kind, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var fields, lastSync string
		if err := rows.Scan(&rec.Key, &fields, &lastSync); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Fields = []byte(fields)
		if rec.LastSync, err = time.Parse(time.RFC3339Nano, lastSync); err != nil {
			return nil, fmt.Errorf("parse last_sync: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// FetchByFilter returns the records of a kind matching keep.
func (s *SQLiteStore) FetchByFilter(ctx context.Context, kind string, keep func(Record) bool) ([]Record, error) {
	recs, err := s.FetchAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	return filterRecords(recs, keep), nil
}

// Upsert inserts or replaces a record.
func (s *SQLiteStore) Upsert(ctx context.Context, kind, key string, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (kind, key, fields, last_sync)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(kind, key) DO UPDATE SET
			fields = excluded.fields,
			last_sync = excluded.last_sync`,
		kind, key, string(rec.Fields), rec.LastSync.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert %s/%s: %w", kind, key, err)
	}
	return nil
}

// Delete removes a record by key.
func (s *SQLiteStore) Delete(ctx context.Context, kind, key string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE kind = ? AND key = ?`, kind, key)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", kind, key, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", kind, key, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
