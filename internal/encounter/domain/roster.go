package domain

import (
	"strings"

	apperrors "github.com/greywick/roundtracker/internal/platform/errors"
)

// Roster holds the encounter's participants grouped by kind. Lookup order
// across groups is players, then NPCs, then monsters.
type Roster struct {
	Players  []*Participant `json:"players"`
	NPCs     []*Participant `json:"npcs"`
	Monsters []*Participant `json:"monsters"`
}

// All returns every participant in lookup order.
func (r *Roster) All() []*Participant {
	out := make([]*Participant, 0, len(r.Players)+len(r.NPCs)+len(r.Monsters))
	out = append(out, r.Players...)
	out = append(out, r.NPCs...)
	out = append(out, r.Monsters...)
	return out
}

// Living returns every participant that is alive, in lookup order.
func (r *Roster) Living() []*Participant {
	var out []*Participant
	for _, p := range r.All() {
		if !p.Dead {
			out = append(out, p)
		}
	}
	return out
}

// FindByName resolves a participant by exact display name. Groups are
// searched in lookup order and the first match wins.
func (r *Roster) FindByName(name string) *Participant {
	for _, p := range r.All() {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Add inserts a participant into the group matching its kind. Display names
// are unique across the whole roster, not just within a group.
func (r *Roster) Add(p *Participant) error {
	if existing := r.FindByName(p.Name); existing != nil {
		return apperrors.WithMetadata(
			apperrors.CodeParticipantDuplicateName,
			"participant name already in use",
			map[string]string{"Name": p.Name},
		)
	}
	switch p.Kind {
	case KindPlayer:
		r.Players = append(r.Players, p)
	case KindNPC:
		r.NPCs = append(r.NPCs, p)
	case KindMonster:
		r.Monsters = append(r.Monsters, p)
	default:
		return apperrors.New(apperrors.CodeParticipantInvalidKind, "invalid participant kind")
	}
	return nil
}

// Remove deletes the participant with the given name from whichever group
// holds it.
func (r *Roster) Remove(name string) error {
	name = strings.TrimSpace(name)
	for _, group := range []*[]*Participant{&r.Players, &r.NPCs, &r.Monsters} {
		for i, p := range *group {
			if p.Name == name {
				*group = append((*group)[:i], (*group)[i+1:]...)
				return nil
			}
		}
	}
	return apperrors.WithMetadata(
		apperrors.CodeParticipantNotFound,
		"participant not found",
		map[string]string{"Name": name},
	)
}

// Count returns the total number of participants.
func (r *Roster) Count() int {
	return len(r.Players) + len(r.NPCs) + len(r.Monsters)
}

// NormalizeDeadInitiatives zeroes the initiative of every dead participant.
// Loaded snapshots from older sessions may carry stale initiative values on
// dead participants; the sweep restores the invariant before sequencing.
func (r *Roster) NormalizeDeadInitiatives() int {
	swept := 0
	for _, p := range r.All() {
		if p.Dead && p.Initiative != 0 {
			p.Initiative = 0
			swept++
		}
	}
	return swept
}
