package event

import "time"

// Type identifies the type of an encounter event.
type Type string

// Turn and round events.
const (
	// TypeTurnAdvanced records the sequencer stepping forward.
	TypeTurnAdvanced Type = "turn.advanced"
	// TypeTurnRetreated records the sequencer stepping backward.
	TypeTurnRetreated Type = "turn.retreated"
	// TypeTurnReset records a reset to the top of the round.
	TypeTurnReset Type = "turn.reset"
	// TypeRoundChanged records a manual round change.
	TypeRoundChanged Type = "round.changed"
	// TypeRoundSubmitted records a resolved round submission.
	TypeRoundSubmitted Type = "round.submitted"
)

// Participant events.
const (
	// TypeParticipantAdded records a participant joining the roster.
	TypeParticipantAdded Type = "participant.added"
	// TypeParticipantRemoved records a participant leaving the roster.
	TypeParticipantRemoved Type = "participant.removed"
	// TypeParticipantDied records an HP transition to zero.
	TypeParticipantDied Type = "participant.died"
	// TypeParticipantRevived records a dead participant healed back up.
	TypeParticipantRevived Type = "participant.revived"
	// TypeParticipantHealed records a targeted healing application.
	TypeParticipantHealed Type = "participant.healed"
)

// Snapshot events.
const (
	// TypeSnapshotSaved records a snapshot written to storage.
	TypeSnapshotSaved Type = "snapshot.saved"
	// TypeSnapshotRestored records state loaded from a snapshot.
	TypeSnapshotRestored Type = "snapshot.restored"
)

// Event represents an immutable entry in the encounter event journal.
type Event struct {
	// Seq is the event sequence number (starts at 1). Assigned by storage
	// on append.
	Seq uint64
	// Timestamp is when the event occurred.
	Timestamp time.Time
	// Type is the event type.
	Type Type
	// Actor is the participant that triggered the event, empty for
	// system-triggered events like snapshot saves.
	Actor string
	// InvocationID correlates events produced by one tool invocation.
	InvocationID string
	// PayloadJSON is the serialized event payload.
	PayloadJSON []byte
}
