package event

// TurnMovedPayload records a sequencer position change.
type TurnMovedPayload struct {
	RoundBefore      int `json:"round_before"`
	InitiativeBefore int `json:"initiative_before"`
	RoundAfter       int `json:"round_after"`
	InitiativeAfter  int `json:"initiative_after"`
}

// RoundSubmittedPayload records the outcome of a round submission.
type RoundSubmittedPayload struct {
	RoundID        int      `json:"round_id"`
	AttacksMade    int      `json:"attacks_made"`
	KillingBlows   []string `json:"killing_blows,omitempty"`
	SkippedTargets []string `json:"skipped_targets,omitempty"`
}

// ParticipantPayload records a roster membership change.
type ParticipantPayload struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// HPChangedPayload records a participant HP transition.
type HPChangedPayload struct {
	Name     string `json:"name"`
	HPBefore int    `json:"hp_before"`
	HPAfter  int    `json:"hp_after"`
}

// SnapshotPayload records a snapshot save or restore.
type SnapshotPayload struct {
	SnapshotID string `json:"snapshot_id"`
	Round      int    `json:"round"`
	Initiative int    `json:"initiative"`
}
