// Package sqlite provides a SQLite-backed tracker storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/greywick/roundtracker/internal/encounter/event"
	"github.com/greywick/roundtracker/internal/platform/storage/sqlitemigrate"
	"github.com/greywick/roundtracker/internal/storage"
	"github.com/greywick/roundtracker/internal/storage/sqlite/migrations"
)

// Store persists tracker state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis reverses toMillis for persisted millisecond timestamps.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite tracker store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
//
// Close is intentionally nil-safe so callers can defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveSnapshot inserts one snapshot record.
func (s *Store) SaveSnapshot(ctx context.Context, record storage.SnapshotRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(record.ID)
	if id == "" {
		return fmt.Errorf("snapshot id is required")
	}
	if len(record.DocumentJSON) == 0 {
		return fmt.Errorf("snapshot document is required")
	}
	createdAt := record.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO snapshots (id, round, initiative, document, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id,
		record.Round,
		record.Initiative,
		string(record.DocumentJSON),
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// GetSnapshot returns one snapshot by ID.
func (s *Store) GetSnapshot(ctx context.Context, id string) (storage.SnapshotRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.SnapshotRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.SnapshotRecord{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.SnapshotRecord{}, fmt.Errorf("snapshot id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, round, initiative, document, created_at
		   FROM snapshots
		  WHERE id = ?`,
		id,
	)
	return scanSnapshot(row)
}

// LatestSnapshot returns the most recently saved snapshot.
func (s *Store) LatestSnapshot(ctx context.Context) (storage.SnapshotRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.SnapshotRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.SnapshotRecord{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, round, initiative, document, created_at
		   FROM snapshots
		  ORDER BY created_at DESC, id DESC
		  LIMIT 1`,
	)
	return scanSnapshot(row)
}

// ListSnapshots returns saved snapshots, newest first.
func (s *Store) ListSnapshots(ctx context.Context, limit int) ([]storage.SnapshotRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, round, initiative, document, created_at
		   FROM snapshots
		  ORDER BY created_at DESC, id DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var records []storage.SnapshotRecord
	for rows.Next() {
		var record storage.SnapshotRecord
		var document string
		var createdAt int64
		if err := rows.Scan(&record.ID, &record.Round, &record.Initiative, &document, &createdAt); err != nil {
			return nil, fmt.Errorf("list snapshots: %w", err)
		}
		record.DocumentJSON = []byte(document)
		record.CreatedAt = fromMillis(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return records, nil
}

// AppendEvent appends one event to the journal, assigning its sequence.
func (s *Store) AppendEvent(ctx context.Context, evt event.Event) (event.Event, error) {
	if err := ctx.Err(); err != nil {
		return event.Event{}, err
	}
	if s == nil || s.sqlDB == nil {
		return event.Event{}, fmt.Errorf("storage is not configured")
	}
	if evt.Type == "" {
		return event.Event{}, fmt.Errorf("event type is required")
	}
	timestamp := evt.Timestamp.UTC()
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO events (timestamp, type, actor, invocation_id, payload)
		 VALUES (?, ?, ?, ?, ?)`,
		toMillis(timestamp),
		string(evt.Type),
		evt.Actor,
		evt.InvocationID,
		string(evt.PayloadJSON),
	)
	if err != nil {
		return event.Event{}, fmt.Errorf("append event: %w", err)
	}
	seq, err := result.LastInsertId()
	if err != nil {
		return event.Event{}, fmt.Errorf("append event: %w", err)
	}

	evt.Seq = uint64(seq)
	evt.Timestamp = timestamp
	return evt, nil
}

// ListEvents returns journal events in append order, oldest first.
func (s *Store) ListEvents(ctx context.Context, limit int) ([]event.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT seq, timestamp, type, actor, invocation_id, payload
		   FROM events
		  ORDER BY seq ASC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var evt event.Event
		var timestamp int64
		var eventType string
		var payload string
		if err := rows.Scan(&evt.Seq, &timestamp, &eventType, &evt.Actor, &evt.InvocationID, &payload); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		evt.Timestamp = fromMillis(timestamp)
		evt.Type = event.Type(eventType)
		if payload != "" {
			evt.PayloadJSON = []byte(payload)
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func scanSnapshot(row *sql.Row) (storage.SnapshotRecord, error) {
	var record storage.SnapshotRecord
	var document string
	var createdAt int64
	err := row.Scan(&record.ID, &record.Round, &record.Initiative, &document, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.SnapshotRecord{}, storage.ErrNotFound
		}
		return storage.SnapshotRecord{}, fmt.Errorf("get snapshot: %w", err)
	}
	record.DocumentJSON = []byte(document)
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

var (
	_ storage.SnapshotStore = (*Store)(nil)
	_ storage.EventStore    = (*Store)(nil)
)
