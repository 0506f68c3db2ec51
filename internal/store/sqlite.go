// Package store provides SQLite-based persistence for qsolog.
// It manages operator profiles and the QSO log.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrStoreClosed is returned by every operation once the store has been closed
var ErrStoreClosed = errors.New("store is closed")

// Store represents the SQLite database store.
// A single mutex serializes every operation, so no two calls ever race on
// the shared connection.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	now    func() time.Time
	closed bool
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the clock used to timestamp new log entries
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a new store connection
func New(dbPath string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// lock acquires the store mutex. On success the caller must unlock it.
func (s *Store) lock() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}
	return nil
}

const schemaTables = `
	-- Operator profiles (station identity)
	CREATE TABLE IF NOT EXISTS operator_profile (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL DEFAULT '',
		call TEXT NOT NULL DEFAULT '',
		grid TEXT NOT NULL DEFAULT '',
		cqz TEXT NOT NULL DEFAULT '',
		ituz TEXT NOT NULL DEFAULT '',
		dxcc TEXT NOT NULL DEFAULT '',
		cont TEXT NOT NULL DEFAULT ''
	);

	-- QSO log (append-only)
	CREATE TABLE IF NOT EXISTS log_entry (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		call TEXT NOT NULL DEFAULT '',
		rsttx TEXT NOT NULL DEFAULT '',
		rstrx TEXT NOT NULL DEFAULT '',
		band TEXT NOT NULL DEFAULT '',
		frequency TEXT NOT NULL DEFAULT '',
		mode TEXT NOT NULL DEFAULT '',
		power TEXT NOT NULL DEFAULT '',
		comments TEXT NOT NULL DEFAULT '',
		profile_id INTEGER NOT NULL REFERENCES operator_profile(id)
	);

	-- Schema version tracking
	CREATE TABLE IF NOT EXISTS qsolog_schema_version (
		version INTEGER PRIMARY KEY
	);

	-- Indexes
	CREATE INDEX IF NOT EXISTS idx_log_entry_timestamp ON log_entry(timestamp, id);
	CREATE INDEX IF NOT EXISTS idx_log_entry_profile ON log_entry(profile_id);
`

// The foreign_keys pragma stays off so deleting a referenced profile is never
// blocked; inserts are checked by this trigger instead.
const profileTrigger = `
	CREATE TRIGGER IF NOT EXISTS log_entry_profile_exists
	BEFORE INSERT ON log_entry
	WHEN NOT EXISTS (SELECT 1 FROM operator_profile WHERE id = NEW.profile_id)
	BEGIN
		SELECT RAISE(ABORT, 'operator profile not found');
	END;
`

// Initialize creates the database schema and upgrades any older layout.
// It is safe to call on every startup.
func (s *Store) Initialize() error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if _, err := s.db.Exec(schemaTables); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := s.runMigrations(); err != nil {
		return err
	}

	if _, err := s.db.Exec(profileTrigger); err != nil {
		return fmt.Errorf("failed to create profile trigger: %w", err)
	}

	return nil
}

// parseTimestamp parses a timestamp string from SQLite in various formats
func parseTimestamp(s string) time.Time {
	formats := []string{
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05-07:00",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.UTC); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
