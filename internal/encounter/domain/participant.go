package domain

import (
	"strconv"
	"strings"

	apperrors "github.com/greywick/roundtracker/internal/platform/errors"
)

// Kind identifies the participant variant.
type Kind int

const (
	// KindUnspecified represents an invalid participant kind value.
	KindUnspecified Kind = iota
	// KindPlayer is a player-controlled character.
	KindPlayer
	// KindNPC is a non-player character run by the game master.
	KindNPC
	// KindMonster is an adversary; its display name doubles as its kind label.
	KindMonster
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindMonster:
		return "monster"
	default:
		return "unspecified"
	}
}

// IsValid reports whether the kind is a concrete variant.
func (k Kind) IsValid() bool {
	switch k {
	case KindPlayer, KindNPC, KindMonster:
		return true
	default:
		return false
	}
}

// ParseKind converts a kind label back to its Kind value.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "player":
		return KindPlayer, nil
	case "npc":
		return KindNPC, nil
	case "monster":
		return KindMonster, nil
	default:
		return KindUnspecified, apperrors.New(apperrors.CodeParticipantInvalidKind, "invalid participant kind")
	}
}

// Participant is a combatant in the encounter. The three variants share the
// same capability set; variant-specific payload fields are populated per
// Kind (PlayerName for players, Race for NPCs).
type Participant struct {
	Name       string `json:"name"`
	Kind       Kind   `json:"kind"`
	PlayerName string `json:"player_name,omitempty"`
	Race       string `json:"race,omitempty"`

	MaxHP      int  `json:"max_hp"`
	CurrentHP  int  `json:"current_hp"`
	Initiative int  `json:"initiative"`
	Dead       bool `json:"dead"`

	// Rounds is this participant's slice of the combat ledger, ordered by
	// insertion and unique by round ID.
	Rounds []RoundEntry `json:"rounds"`
}

// CreateParticipantInput describes the input for creating a participant.
type CreateParticipantInput struct {
	Name       string
	Kind       Kind
	PlayerName string
	Race       string
	MaxHP      int
	CurrentHP  int
	Initiative int
}

// CreateParticipant creates a new participant with validation.
// A participant created at 0 HP starts dead with initiative 0.
func CreateParticipant(input CreateParticipantInput) (Participant, error) {
	normalized, err := NormalizeCreateParticipantInput(input)
	if err != nil {
		return Participant{}, err
	}

	p := Participant{
		Name:       normalized.Name,
		Kind:       normalized.Kind,
		PlayerName: normalized.PlayerName,
		Race:       normalized.Race,
		MaxHP:      normalized.MaxHP,
		CurrentHP:  normalized.CurrentHP,
		Initiative: normalized.Initiative,
	}
	if p.CurrentHP == 0 {
		p.Dead = true
		p.Initiative = 0
	}
	return p, nil
}

// NormalizeCreateParticipantInput trims and validates participant input.
func NormalizeCreateParticipantInput(input CreateParticipantInput) (CreateParticipantInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return CreateParticipantInput{}, apperrors.New(apperrors.CodeParticipantEmptyName, "participant name is required")
	}
	if !input.Kind.IsValid() {
		return CreateParticipantInput{}, apperrors.New(apperrors.CodeParticipantInvalidKind, "participant kind is required")
	}
	if input.MaxHP < 1 {
		return CreateParticipantInput{}, apperrors.New(apperrors.CodeParticipantInvalidMaxHP, "max hp must be at least 1")
	}
	if input.CurrentHP < 0 || input.CurrentHP > input.MaxHP {
		return CreateParticipantInput{}, apperrors.WithMetadata(
			apperrors.CodeParticipantInvalidHP,
			"current hp out of range",
			map[string]string{
				"HP":    strconv.Itoa(input.CurrentHP),
				"MaxHP": strconv.Itoa(input.MaxHP),
			},
		)
	}
	if input.Initiative < 0 {
		return CreateParticipantInput{}, apperrors.New(apperrors.CodeParticipantInvalidInitiative, "initiative must be non-negative")
	}
	input.PlayerName = strings.TrimSpace(input.PlayerName)
	input.Race = strings.TrimSpace(input.Race)
	return input, nil
}

// HPStatus bands the current HP for display purposes.
type HPStatus string

const (
	// HPStatusHealthy indicates more than 60% HP remaining.
	HPStatusHealthy HPStatus = "healthy"
	// HPStatusWounded indicates more than 25% HP remaining.
	HPStatusWounded HPStatus = "wounded"
	// HPStatusCritical indicates 25% HP or less remaining.
	HPStatusCritical HPStatus = "critical"
)

// HPStatus returns the display band for the participant's current HP.
func (p *Participant) HPStatus() HPStatus {
	percentage := float64(p.CurrentHP) / float64(p.MaxHP) * 100
	if percentage > 60 {
		return HPStatusHealthy
	}
	if percentage > 25 {
		return HPStatusWounded
	}
	return HPStatusCritical
}

// DamageApplication captures HP deltas from a single damage application.
type DamageApplication struct {
	HPBefore int
	HPAfter  int
	// Died reports an HP transition to exactly 0 from a positive value.
	Died bool
}

// ApplyDamage reduces current HP, clamped at 0. When the damage brings HP to
// exactly 0 from a positive value the participant is flagged dead and its
// initiative zeroed in the same call, so no intermediate state is observable.
func (p *Participant) ApplyDamage(amount int) DamageApplication {
	before := p.CurrentHP
	if amount <= 0 {
		return DamageApplication{HPBefore: before, HPAfter: before}
	}

	after := before - amount
	if after < 0 {
		after = 0
	}
	p.CurrentHP = after

	died := before > 0 && after == 0
	if died {
		p.Dead = true
		p.Initiative = 0
	}
	return DamageApplication{HPBefore: before, HPAfter: after, Died: died}
}

// HealingApplication captures HP deltas from a single healing application.
type HealingApplication struct {
	HPBefore int
	HPAfter  int
	// Revived reports that the healing brought a dead participant back up.
	Revived bool
}

// ApplyHealing raises current HP, clamped at MaxHP. A dead participant
// healed above 0 HP is revived; its initiative is restored to the
// RevivalInitiative placeholder when it was zeroed by death.
func (p *Participant) ApplyHealing(amount int) HealingApplication {
	before := p.CurrentHP
	if amount <= 0 {
		return HealingApplication{HPBefore: before, HPAfter: before}
	}

	after := before + amount
	if after > p.MaxHP {
		after = p.MaxHP
	}
	p.CurrentHP = after

	revived := p.Dead && after > 0
	if revived {
		p.Dead = false
		if p.Initiative == 0 {
			p.Initiative = RevivalInitiative
		}
	}
	return HealingApplication{HPBefore: before, HPAfter: after, Revived: revived}
}
