// Package sqlite provides a SQLite-backed key-value store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/slapper/storage"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// opTimeout bounds a single statement, the busy timeout covers lock waits
const opTimeout = 5 * time.Second

var _ storage.KV = (*Store)(nil)

// Store provides SQLite-backed persistence for small string values.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens and migrates a SQLite store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(FULL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Single writer per session
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}

// Get loads the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	if s == nil || s.sqlDB == nil {
		return "", false, storage.ErrClosed
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, storage.ErrEmptyKey
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var value string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value stored under key.
func (s *Store) Set(key, value string) error {
	if s == nil || s.sqlDB == nil {
		return storage.ErrClosed
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return storage.ErrEmptyKey
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
		s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last written.
func (s *Store) UpdatedAt(key string) (time.Time, bool, error) {
	if s == nil || s.sqlDB == nil {
		return time.Time{}, false, storage.ErrClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var millis int64
	err := s.sqlDB.QueryRowContext(ctx, `SELECT updated_at FROM kv WHERE key = ?`, strings.TrimSpace(key)).Scan(&millis)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("get updated_at %s: %w", key, err)
	}
	return time.UnixMilli(millis).UTC(), true, nil
}
