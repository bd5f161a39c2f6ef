package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/greywick/roundtracker/internal/encounter/domain"
	"github.com/greywick/roundtracker/internal/encounter/event"
	apperrors "github.com/greywick/roundtracker/internal/platform/errors"
	"github.com/greywick/roundtracker/internal/storage"
)

// SnapshotInfo describes one saved snapshot.
type SnapshotInfo struct {
	ID         string `json:"id"`
	Round      int    `json:"round"`
	Initiative int    `json:"initiative"`
	CreatedAt  string `json:"created_at"`
}

// SaveSnapshot captures the full encounter document and persists it.
func (s *Service) SaveSnapshot(ctx context.Context) (SnapshotInfo, error) {
	ctx, span := s.tracer.Start(ctx, "encounter.save_snapshot")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshots == nil {
		return SnapshotInfo{}, fmt.Errorf("snapshot storage is not configured")
	}

	snap := domain.TakeSnapshot(s.roster, s.sequencer, s.clock().UTC())
	document, err := json.Marshal(snap)
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("marshal snapshot: %w", err)
	}
	snapshotID, err := s.idGenerator()
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("generate snapshot id: %w", err)
	}

	record := storage.SnapshotRecord{
		ID:           snapshotID,
		Round:        snap.Round,
		Initiative:   snap.Initiative,
		DocumentJSON: document,
		CreatedAt:    snap.Timestamp,
	}
	if err := s.snapshots.SaveSnapshot(ctx, record); err != nil {
		return SnapshotInfo{}, err
	}

	if _, err := s.emitter.Emit(ctx, event.EmitInput{
		Type: event.TypeSnapshotSaved,
		Payload: event.SnapshotPayload{
			SnapshotID: snapshotID,
			Round:      snap.Round,
			Initiative: snap.Initiative,
		},
	}); err != nil {
		return SnapshotInfo{}, err
	}
	return snapshotInfoFromRecord(record), nil
}

// RestoreSnapshot replaces the live encounter with the saved document. An
// empty id restores the most recent snapshot.
func (s *Service) RestoreSnapshot(ctx context.Context, snapshotID string) (SnapshotInfo, error) {
	ctx, span := s.tracer.Start(ctx, "encounter.restore_snapshot")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshots == nil {
		return SnapshotInfo{}, fmt.Errorf("snapshot storage is not configured")
	}

	var (
		record storage.SnapshotRecord
		err    error
	)
	if snapshotID == "" {
		record, err = s.snapshots.LatestSnapshot(ctx)
	} else {
		record, err = s.snapshots.GetSnapshot(ctx, snapshotID)
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return SnapshotInfo{}, apperrors.WithMetadata(
				apperrors.CodeNotFound,
				"snapshot not found",
				map[string]string{"ID": snapshotID},
			)
		}
		return SnapshotInfo{}, err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(record.DocumentJSON, &snap); err != nil {
		return SnapshotInfo{}, apperrors.Wrap(
			apperrors.CodeSnapshotDecode,
			"snapshot document is corrupt",
			err,
		)
	}

	s.roster, s.sequencer = snap.Restore()

	if _, err := s.emitter.Emit(ctx, event.EmitInput{
		Type: event.TypeSnapshotRestored,
		Payload: event.SnapshotPayload{
			SnapshotID: record.ID,
			Round:      s.sequencer.Round(),
			Initiative: s.sequencer.Initiative(),
		},
	}); err != nil {
		return SnapshotInfo{}, err
	}
	return snapshotInfoFromRecord(record), nil
}

// ListSnapshots returns saved snapshots, newest first.
func (s *Service) ListSnapshots(ctx context.Context, limit int) ([]SnapshotInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshots == nil {
		return nil, fmt.Errorf("snapshot storage is not configured")
	}
	if limit <= 0 {
		limit = 20
	}
	records, err := s.snapshots.ListSnapshots(ctx, limit)
	if err != nil {
		return nil, err
	}
	infos := make([]SnapshotInfo, 0, len(records))
	for _, record := range records {
		infos = append(infos, snapshotInfoFromRecord(record))
	}
	return infos, nil
}

func snapshotInfoFromRecord(record storage.SnapshotRecord) SnapshotInfo {
	return SnapshotInfo{
		ID:         record.ID,
		Round:      record.Round,
		Initiative: record.Initiative,
		CreatedAt:  record.CreatedAt.UTC().Format(time.RFC3339),
	}
}
