// Package storage defines persistence contracts for tracker state.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/greywick/roundtracker/internal/encounter/event"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// SnapshotRecord stores one saved encounter document.
type SnapshotRecord struct {
	ID           string
	Round        int
	Initiative   int
	DocumentJSON []byte
	CreatedAt    time.Time
}

// SnapshotStore persists encounter snapshots.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, record SnapshotRecord) error
	GetSnapshot(ctx context.Context, id string) (SnapshotRecord, error)
	LatestSnapshot(ctx context.Context) (SnapshotRecord, error)
	ListSnapshots(ctx context.Context, limit int) ([]SnapshotRecord, error)
}

// EventStore persists the encounter event journal.
type EventStore interface {
	AppendEvent(ctx context.Context, evt event.Event) (event.Event, error)
	ListEvents(ctx context.Context, limit int) ([]event.Event, error)
}
