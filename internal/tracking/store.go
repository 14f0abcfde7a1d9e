// Package tracking records post-run hook events in a local SQLite
// database. There is no remote transport; the store exists so teams can
// inspect hook pass rates and runtimes without shipping data anywhere.
package tracking

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Event is one recorded hook execution.
type Event struct {
	ID          string
	HookName    string
	ProjectName string
	Status      int
	Elapsed     time.Duration
	CreatedAt   time.Time
}

// Store persists events in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the event database at path.
// Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tracking database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping tracking database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize tracking schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordEvent inserts one event. ID and CreatedAt are filled in when
// empty so callers only supply the hook outcome.
func (s *Store) RecordEvent(ev Event) error {
	if s.db == nil {
		return fmt.Errorf("tracking database not opened")
	}
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO events (id, hook_name, project_name, status, elapsed_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.HookName, ev.ProjectName, ev.Status, ev.Elapsed.Milliseconds(), ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// Events returns all events for a hook, most recent first.
func (s *Store) Events(hookName string) ([]Event, error) {
	if s.db == nil {
		return nil, fmt.Errorf("tracking database not opened")
	}

	rows, err := s.db.Query(
		`SELECT id, hook_name, project_name, status, elapsed_ms, created_at
		 FROM events WHERE hook_name = ? ORDER BY created_at DESC`,
		hookName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var elapsedMS int64
		if err := rows.Scan(&ev.ID, &ev.HookName, &ev.ProjectName, &ev.Status, &elapsedMS, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		events = append(events, ev)
	}
	return events, rows.Err()
}
