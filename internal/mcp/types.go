package mcp

import (
	"github.com/greywick/roundtracker/internal/encounter/domain"
	"github.com/greywick/roundtracker/internal/encounter/service"
)

// ParticipantNameInput addresses one participant by display name.
type ParticipantNameInput struct {
	Name string `json:"name" jsonschema:"participant display name"`
}

// EmptyInput is used by tools that take no arguments.
type EmptyInput struct{}

// ParticipantAddInput represents the tool input for adding a participant.
type ParticipantAddInput struct {
	Name       string `json:"name" jsonschema:"participant display name, unique across the roster"`
	Kind       string `json:"kind" jsonschema:"participant kind (player, npc, monster)"`
	PlayerName string `json:"player_name,omitempty" jsonschema:"controlling player's name (players only)"`
	Race       string `json:"race,omitempty" jsonschema:"race label (npcs only)"`
	MaxHP      int    `json:"max_hp" jsonschema:"maximum hit points, at least 1"`
	CurrentHP  int    `json:"current_hp" jsonschema:"current hit points, 0 to max_hp"`
	Initiative int    `json:"initiative" jsonschema:"turn-order priority, higher acts first"`
}

// RosterResult lists the whole roster.
type RosterResult struct {
	Participants []service.ParticipantView `json:"participants"`
}

// ParticipantResult returns one participant with its round log.
type ParticipantResult struct {
	Participant service.ParticipantView `json:"participant"`
	Rounds      []domain.RoundEntry     `json:"rounds,omitempty"`
}

// RemoveResult confirms a roster removal.
type RemoveResult struct {
	Name    string `json:"name"`
	Removed bool   `json:"removed"`
}

// TurnResult reports the sequencer position after a command or query.
type TurnResult struct {
	Round      int   `json:"round" jsonschema:"current round number"`
	Initiative int   `json:"initiative" jsonschema:"current initiative value"`
	Order      []int `json:"order" jsonschema:"distinct living initiative values, highest first"`
}

// InitiativeOrderResult lists the turn order for the current round.
type InitiativeOrderResult struct {
	Order []int `json:"order" jsonschema:"distinct living initiative values, highest first"`
}

// AttackLineInput is one attack in a round submission.
type AttackLineInput struct {
	TargetName string `json:"target_name,omitempty" jsonschema:"target display name; omit for an untargeted attack"`
	Damage     int    `json:"damage" jsonschema:"damage dealt, must be positive when a target is named"`
}

// DamageTakenInput records damage the acting participant suffered.
type DamageTakenInput struct {
	Amount int    `json:"amount" jsonschema:"damage amount"`
	Source string `json:"source,omitempty" jsonschema:"damage source label"`
}

// HealingInput records healing performed on the turn.
type HealingInput struct {
	Type   string `json:"type,omitempty" jsonschema:"healing type (self, others)"`
	Amount int    `json:"amount" jsonschema:"healing amount"`
	Healer string `json:"healer,omitempty" jsonschema:"recipient name when healing others"`
}

// SpellLineInput is one cast spell in a round submission.
type SpellLineInput struct {
	SpellName       string `json:"spell_name,omitempty" jsonschema:"spell name"`
	NumberOfAttacks int    `json:"number_of_attacks,omitempty" jsonschema:"number of spell attacks"`
	TotalDamage     int    `json:"total_damage,omitempty" jsonschema:"aggregate spell damage"`
	Notes           string `json:"notes,omitempty" jsonschema:"freeform notes"`
}

// RoundSubmitInput represents the tool input for a round submission.
type RoundSubmitInput struct {
	Actor       string            `json:"actor" jsonschema:"acting participant display name"`
	Attacks     []AttackLineInput `json:"attacks,omitempty" jsonschema:"attack lines"`
	DamageTaken *DamageTakenInput `json:"damage_taken,omitempty" jsonschema:"damage suffered this turn"`
	Healing     *HealingInput     `json:"healing,omitempty" jsonschema:"healing performed this turn"`
	Spells      []SpellLineInput  `json:"spells,omitempty" jsonschema:"spells cast this turn"`
	Actions     []string          `json:"actions,omitempty" jsonschema:"freeform action descriptions"`
}

// RoundSubmitResult reports what a submission changed.
type RoundSubmitResult struct {
	Actor          string                 `json:"actor"`
	RoundID        int                    `json:"round_id"`
	Changes        []domain.AppliedChange `json:"changes,omitempty"`
	KillingBlows   []string               `json:"killing_blows,omitempty"`
	SkippedTargets []string               `json:"skipped_targets,omitempty"`
}

// HealTargetInput represents the tool input for targeted healing.
type HealTargetInput struct {
	Name   string `json:"name" jsonschema:"target participant display name"`
	Amount int    `json:"amount" jsonschema:"healing amount, must be positive"`
}

// HealTargetResult reports a targeted healing application.
type HealTargetResult struct {
	Name     string `json:"name"`
	HPBefore int    `json:"hp_before"`
	HPAfter  int    `json:"hp_after"`
	Revived  bool   `json:"revived,omitempty"`
}

// SnapshotRestoreInput selects a snapshot to restore.
type SnapshotRestoreInput struct {
	SnapshotID string `json:"snapshot_id,omitempty" jsonschema:"snapshot identifier; omit for the most recent save"`
}

// SnapshotListInput bounds a snapshot listing.
type SnapshotListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum snapshots to return, newest first"`
}

// SnapshotListResult lists saved snapshots.
type SnapshotListResult struct {
	Snapshots []service.SnapshotInfo `json:"snapshots"`
}

// EventListInput bounds a journal listing.
type EventListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum events to return, oldest first"`
}

// EventEntry is one readable journal event.
type EventEntry struct {
	Seq       uint64 `json:"seq"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Actor     string `json:"actor,omitempty"`
	Payload   string `json:"payload,omitempty"`
}

// EventListResult lists journal events.
type EventListResult struct {
	Events []EventEntry `json:"events"`
}

// EventExportResult carries the journal rendered as readable text.
type EventExportResult struct {
	Journal string `json:"journal"`
}
