package domain

import "sort"

const (
	// FallbackInitiative is used when no living participant has a positive
	// initiative value, for example at encounter start before rolls.
	FallbackInitiative = 20
	// RevivalInitiative is the placeholder given to a revived participant
	// whose initiative was zeroed by death. The table corrects it manually.
	RevivalInitiative = 1
)

// actedKey identifies a (participant, round, initiative) submission marker.
type actedKey struct {
	name       string
	round      int
	initiative int
}

// Sequencer walks the turn order over the roster's living initiative
// values. The value set is recomputed from roster state on every call, so
// deaths and revivals between calls change membership without any explicit
// invalidation.
type Sequencer struct {
	roster     *Roster
	round      int
	initiative int
	acted      map[actedKey]bool
}

// NewSequencer starts a sequencer at round 1, top of the living order.
func NewSequencer(roster *Roster) *Sequencer {
	s := &Sequencer{
		roster: roster,
		round:  1,
		acted:  make(map[actedKey]bool),
	}
	s.initiative = s.topInitiative()
	return s
}

// RestoreSequencer rebuilds a sequencer at a saved (round, initiative)
// position, for example when loading a snapshot. Acted markers are not
// part of the save contract and start empty.
func RestoreSequencer(roster *Roster, round, initiative int) *Sequencer {
	if round < 1 {
		round = 1
	}
	s := &Sequencer{
		roster:     roster,
		round:      round,
		initiative: initiative,
		acted:      make(map[actedKey]bool),
	}
	if s.initiative <= 0 {
		s.initiative = s.topInitiative()
	}
	return s
}

// Round returns the current round number.
func (s *Sequencer) Round() int { return s.round }

// Initiative returns the current initiative value.
func (s *Sequencer) Initiative() int { return s.initiative }

// LivingInitiatives returns the distinct positive initiative values among
// living participants, sorted descending.
func (s *Sequencer) LivingInitiatives() []int {
	seen := make(map[int]bool)
	var values []int
	for _, p := range s.roster.Living() {
		if p.Initiative > 0 && !seen[p.Initiative] {
			seen[p.Initiative] = true
			values = append(values, p.Initiative)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	return values
}

func (s *Sequencer) topInitiative() int {
	values := s.LivingInitiatives()
	if len(values) == 0 {
		return FallbackInitiative
	}
	return values[0]
}

// Advance steps to the next lower initiative value. When the current value
// has left the living set, for example after its only holder died, advance
// lands on the closest strictly lower value without touching the round.
// The round rolls over only from the lowest value, or when nothing lower
// remains; markers for the completed round are then discarded.
func (s *Sequencer) Advance() {
	values := s.LivingInitiatives()
	found := false
	for i, v := range values {
		if v == s.initiative {
			if i < len(values)-1 {
				s.initiative = values[i+1]
				return
			}
			found = true
			break
		}
	}
	if !found {
		for _, v := range values {
			if v < s.initiative {
				s.initiative = v
				return
			}
		}
	}
	completed := s.round
	s.round++
	s.initiative = FallbackInitiative
	if len(values) > 0 {
		s.initiative = values[0]
	}
	s.clearActedForRound(completed)
}

// Retreat steps to the previous higher initiative value. At the top of the
// order it is a no-op; round decrements only happen through PreviousRound.
// When the current value is no longer in the living set, for example after
// its only holder died, retreat lands on the closest strictly lower value.
func (s *Sequencer) Retreat() {
	values := s.LivingInitiatives()
	if len(values) == 0 {
		return
	}
	for i, v := range values {
		if v == s.initiative {
			if i > 0 {
				s.initiative = values[i-1]
			}
			return
		}
	}
	for _, v := range values {
		if v < s.initiative {
			s.initiative = v
			return
		}
	}
	s.initiative = values[0]
}

// ResetToTop moves to the top of the living order without touching the
// round counter.
func (s *Sequencer) ResetToTop() {
	s.initiative = s.topInitiative()
}

// NextRound increments the round directly and resets to the top of the
// living order. Markers for the round being left are discarded.
func (s *Sequencer) NextRound() {
	completed := s.round
	s.round++
	s.initiative = s.topInitiative()
	s.clearActedForRound(completed)
}

// PreviousRound decrements the round, flooring at round 1, and resets to
// the top of the living order. Markers for the round being left are
// discarded only when the round actually changes.
func (s *Sequencer) PreviousRound() {
	left := s.round
	if s.round > 1 {
		s.round--
		s.clearActedForRound(left)
	}
	s.initiative = s.topInitiative()
}

// MarkActed records that the named participant submitted while the
// sequencer sat at the current (round, initiative) position.
func (s *Sequencer) MarkActed(name string) {
	s.acted[actedKey{name: name, round: s.round, initiative: s.initiative}] = true
}

// Acted reports whether the named participant already submitted at the
// current (round, initiative) position.
func (s *Sequencer) Acted(name string) bool {
	return s.acted[actedKey{name: name, round: s.round, initiative: s.initiative}]
}

func (s *Sequencer) clearActedForRound(round int) {
	for key := range s.acted {
		if key.round == round {
			delete(s.acted, key)
		}
	}
}
