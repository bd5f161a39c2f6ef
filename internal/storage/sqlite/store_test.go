package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/greywick/roundtracker/internal/encounter/event"
	"github.com/greywick/roundtracker/internal/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestSaveGetSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 14, 20, 0, 0, 0, time.UTC)
	record := storage.SnapshotRecord{
		ID:           "snap-1",
		Round:        3,
		Initiative:   16,
		DocumentJSON: []byte(`{"round":3,"initiative":16}`),
		CreatedAt:    now,
	}
	if err := store.SaveSnapshot(context.Background(), record); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	got, err := store.GetSnapshot(context.Background(), "snap-1")
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if got.Round != 3 || got.Initiative != 16 {
		t.Fatalf("position = %d/%d, want 3/16", got.Round, got.Initiative)
	}
	if string(got.DocumentJSON) != string(record.DocumentJSON) {
		t.Fatalf("document = %s, want %s", got.DocumentJSON, record.DocumentJSON)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, now)
	}
}

func TestGetSnapshotNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetSnapshot(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLatestSnapshot(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	base := time.Date(2026, time.March, 14, 20, 0, 0, 0, time.UTC)
	for i, id := range []string{"snap-1", "snap-2", "snap-3"} {
		record := storage.SnapshotRecord{
			ID:           id,
			Round:        i + 1,
			Initiative:   18,
			DocumentJSON: []byte(`{}`),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.SaveSnapshot(context.Background(), record); err != nil {
			t.Fatalf("save snapshot %s: %v", id, err)
		}
	}

	got, err := store.LatestSnapshot(context.Background())
	if err != nil {
		t.Fatalf("latest snapshot: %v", err)
	}
	if got.ID != "snap-3" {
		t.Fatalf("latest = %q, want snap-3", got.ID)
	}
}

func TestLatestSnapshotEmpty(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.LatestSnapshot(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListSnapshotsNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	base := time.Date(2026, time.March, 14, 20, 0, 0, 0, time.UTC)
	for i, id := range []string{"snap-1", "snap-2", "snap-3"} {
		record := storage.SnapshotRecord{
			ID:           id,
			Round:        1,
			Initiative:   18,
			DocumentJSON: []byte(`{}`),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.SaveSnapshot(context.Background(), record); err != nil {
			t.Fatalf("save snapshot %s: %v", id, err)
		}
	}

	records, err := store.ListSnapshots(context.Background(), 2)
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "snap-3" || records[1].ID != "snap-2" {
		t.Fatalf("unexpected order: %q, %q", records[0].ID, records[1].ID)
	}
}

func TestAppendEventAssignsSequence(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	first, err := store.AppendEvent(context.Background(), event.Event{
		Type:  event.TypeRoundSubmitted,
		Actor: "Thorin Ironbeard",
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}
	second, err := store.AppendEvent(context.Background(), event.Event{
		Type: event.TypeTurnAdvanced,
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}

	if first.Seq != 1 || second.Seq != 2 {
		t.Fatalf("sequences = %d, %d, want 1, 2", first.Seq, second.Seq)
	}
	if first.Timestamp.IsZero() {
		t.Fatal("expected timestamp assigned on append")
	}
}

func TestListEventsAppendOrder(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ts := time.Date(2026, time.March, 14, 20, 0, 0, 0, time.UTC)
	types := []event.Type{event.TypeRoundSubmitted, event.TypeParticipantDied, event.TypeTurnAdvanced}
	for _, typ := range types {
		evt := event.Event{
			Timestamp:   ts,
			Type:        typ,
			PayloadJSON: []byte(`{"round_id":1}`),
		}
		if _, err := store.AppendEvent(context.Background(), evt); err != nil {
			t.Fatalf("append %s: %v", typ, err)
		}
	}

	events, err := store.ListEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, typ := range types {
		if events[i].Type != typ {
			t.Fatalf("event %d = %s, want %s", i, events[i].Type, typ)
		}
	}
	if !events[0].Timestamp.Equal(ts) {
		t.Fatalf("timestamp = %v, want %v", events[0].Timestamp, ts)
	}
}

func TestAppendEventRequiresType(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.AppendEvent(context.Background(), event.Event{}); err == nil {
		t.Fatal("expected missing type error")
	}
}
