package domain

import (
	"strconv"
	"strings"

	apperrors "github.com/greywick/roundtracker/internal/platform/errors"
)

// HealingType distinguishes the two healing lines a submission may carry.
type HealingType string

const (
	// HealingSelf applies the amount to the acting participant.
	HealingSelf HealingType = "self"
	// HealingOthers records healing given without applying it to any HP.
	HealingOthers HealingType = "others"
)

// AttackLine is one targeted or untargeted attack in a submission.
type AttackLine struct {
	TargetName string `json:"target_name,omitempty"`
	Damage     int    `json:"damage"`
}

// DamageTakenLine records damage the acting participant suffered.
type DamageTakenLine struct {
	Amount int    `json:"amount"`
	Source string `json:"source,omitempty"`
}

// HealingLine records healing performed by the acting participant.
type HealingLine struct {
	Type   HealingType `json:"type"`
	Amount int         `json:"amount"`
	Healer string      `json:"healer,omitempty"`
}

// SpellLine records a cast spell and its aggregate damage.
type SpellLine struct {
	SpellName       string `json:"spell_name,omitempty"`
	NumberOfAttacks int    `json:"number_of_attacks"`
	TotalDamage     int    `json:"total_damage"`
	Notes           string `json:"notes,omitempty"`
}

// RoundSubmission is everything one participant did on their turn.
type RoundSubmission struct {
	Attacks     []AttackLine    `json:"attacks,omitempty"`
	DamageTaken DamageTakenLine `json:"damage_taken,omitempty"`
	Healing     HealingLine     `json:"healing,omitempty"`
	Spells      []SpellLine     `json:"spells,omitempty"`
	Actions     []string        `json:"actions,omitempty"`
}

// hasContent reports whether the submission records any activity worth a
// ledger entry.
func (sub RoundSubmission) hasContent() bool {
	for _, attack := range sub.Attacks {
		if attack.Damage > 0 {
			return true
		}
	}
	if sub.DamageTaken.Amount > 0 {
		return true
	}
	if sub.Healing.Amount > 0 {
		return true
	}
	for _, spell := range sub.Spells {
		if spell.TotalDamage > 0 || strings.TrimSpace(spell.SpellName) != "" {
			return true
		}
	}
	for _, action := range sub.Actions {
		if strings.TrimSpace(action) != "" {
			return true
		}
	}
	return false
}

// Validate rejects submissions before any state is touched. An empty
// submission is rejected, as is an attack line that names a target but
// carries no positive damage.
func (sub RoundSubmission) Validate() error {
	if !sub.hasContent() {
		return apperrors.New(apperrors.CodeSubmissionEmpty, "submission records no activity")
	}
	for _, attack := range sub.Attacks {
		if attack.TargetName != "" && attack.Damage <= 0 {
			return apperrors.WithMetadata(
				apperrors.CodeSubmissionTargetWithoutDamage,
				"targeted attack without damage",
				map[string]string{"Target": attack.TargetName},
			)
		}
	}
	return nil
}

// AppliedChange is one participant's HP transition caused by a resolution.
type AppliedChange struct {
	Name     string `json:"name"`
	HPBefore int    `json:"hp_before"`
	HPAfter  int    `json:"hp_after"`
	Died     bool   `json:"died,omitempty"`
	Revived  bool   `json:"revived,omitempty"`
}

// Resolution reports everything a submission changed.
type Resolution struct {
	Actor          string          `json:"actor"`
	RoundID        int             `json:"round_id"`
	AttackSet      AttackSet       `json:"attack_set"`
	Changes        []AppliedChange `json:"changes,omitempty"`
	KillingBlows   []string        `json:"killing_blows,omitempty"`
	SkippedTargets []string        `json:"skipped_targets,omitempty"`
}

// Resolve validates and applies a submission for the acting participant.
// Once validation passes nothing in the pipeline can fail: arithmetic is
// clamped and unresolvable targets are skipped and reported, not errored.
func Resolve(roster *Roster, actor *Participant, roundID int, sub RoundSubmission) (Resolution, error) {
	if roundID < 1 {
		return Resolution{}, apperrors.WithMetadata(
			apperrors.CodeSubmissionInvalidRound,
			"round id below 1",
			map[string]string{"Round": strconv.Itoa(roundID)},
		)
	}
	if err := sub.Validate(); err != nil {
		return Resolution{}, err
	}

	res := Resolution{Actor: actor.Name, RoundID: roundID}
	set := AttackSet{AttacksMade: len(sub.Attacks)}
	for _, action := range sub.Actions {
		action = strings.TrimSpace(action)
		if action != "" {
			set.Actions = append(set.Actions, action)
		}
	}

	for _, attack := range sub.Attacks {
		if attack.Damage <= 0 {
			continue
		}
		label := attack.TargetName
		if label == "" {
			label = LabelUnknownTarget
		}
		set.DamageDealt = append(set.DamageDealt, Tally{Label: label, Amount: attack.Damage})

		if attack.TargetName == "" {
			continue
		}
		target := roster.FindByName(attack.TargetName)
		if target == nil {
			res.SkippedTargets = append(res.SkippedTargets, attack.TargetName)
			continue
		}
		applied := target.ApplyDamage(attack.Damage)
		res.Changes = append(res.Changes, AppliedChange{
			Name:     target.Name,
			HPBefore: applied.HPBefore,
			HPAfter:  applied.HPAfter,
			Died:     applied.Died,
		})
		if applied.Died {
			actor.AppendKillingBlow(roundID, target.Name)
			res.KillingBlows = append(res.KillingBlows, target.Name)
		}
	}

	for _, spell := range sub.Spells {
		if spell.TotalDamage > 0 {
			label := spell.SpellName
			if label == "" {
				label = LabelMagicSpell
			}
			set.DamageDealt = append(set.DamageDealt, Tally{Label: label, Amount: spell.TotalDamage})
		}
		if spell.SpellName != "" {
			set.Actions = append(set.Actions, SpellNotesLabel(spell.SpellName, spell.Notes))
		}
	}

	if sub.DamageTaken.Amount > 0 {
		source := sub.DamageTaken.Source
		if source == "" {
			source = LabelUnknownSource
		}
		set.DamageTaken = append(set.DamageTaken, Tally{Label: source, Amount: sub.DamageTaken.Amount})

		applied := actor.ApplyDamage(sub.DamageTaken.Amount)
		res.Changes = append(res.Changes, AppliedChange{
			Name:     actor.Name,
			HPBefore: applied.HPBefore,
			HPAfter:  applied.HPAfter,
			Died:     applied.Died,
		})
	}

	if sub.Healing.Amount > 0 {
		switch sub.Healing.Type {
		case HealingOthers:
			set.HealingDealt = append(set.HealingDealt, Tally{Label: HealerLabel(sub.Healing.Healer), Amount: sub.Healing.Amount})
		default:
			set.HealingTaken = append(set.HealingTaken, Tally{Label: LabelSelfHealing, Amount: sub.Healing.Amount})
			applied := actor.ApplyHealing(sub.Healing.Amount)
			res.Changes = append(res.Changes, AppliedChange{
				Name:     actor.Name,
				HPBefore: applied.HPBefore,
				HPAfter:  applied.HPAfter,
				Revived:  applied.Revived,
			})
		}
	}

	actor.RecordRound(roundID, set)
	res.AttackSet = set
	return res, nil
}

// HealTarget raises the named participant's HP by the given amount,
// reviving a dead target healed above zero. It is a standalone entry point
// and never touches the ledger.
func HealTarget(roster *Roster, name string, amount int) (AppliedChange, error) {
	if amount <= 0 {
		return AppliedChange{}, apperrors.WithMetadata(
			apperrors.CodeHealingInvalidAmount,
			"healing amount must be positive",
			map[string]string{"Amount": strconv.Itoa(amount)},
		)
	}
	target := roster.FindByName(name)
	if target == nil {
		return AppliedChange{}, apperrors.WithMetadata(
			apperrors.CodeParticipantNotFound,
			"participant not found",
			map[string]string{"Name": name},
		)
	}
	applied := target.ApplyHealing(amount)
	return AppliedChange{
		Name:     target.Name,
		HPBefore: applied.HPBefore,
		HPAfter:  applied.HPAfter,
		Revived:  applied.Revived,
	}, nil
}
