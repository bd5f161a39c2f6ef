package domain

import "time"

// Snapshot is the full save document for an encounter: the roster with
// every participant's complete round log, plus the turn position and the
// capture time.
type Snapshot struct {
	Round      int           `json:"round"`
	Initiative int           `json:"initiative"`
	Players    []Participant `json:"players"`
	NPCs       []Participant `json:"npcs"`
	Monsters   []Participant `json:"monsters"`
	Timestamp  time.Time     `json:"timestamp"`
}

// TakeSnapshot captures the roster and turn position. Participants are
// copied by value so later mutations do not leak into the document.
func TakeSnapshot(roster *Roster, seq *Sequencer, at time.Time) Snapshot {
	return Snapshot{
		Round:      seq.Round(),
		Initiative: seq.Initiative(),
		Players:    copyParticipants(roster.Players),
		NPCs:       copyParticipants(roster.NPCs),
		Monsters:   copyParticipants(roster.Monsters),
		Timestamp:  at,
	}
}

// Restore rebuilds roster and sequencer state from a snapshot. Dead
// participants with stale initiative values are swept to restore the
// dead-implies-zero invariant before the sequencer recomputes its order.
func (s Snapshot) Restore() (*Roster, *Sequencer) {
	roster := &Roster{
		Players:  referenceParticipants(s.Players),
		NPCs:     referenceParticipants(s.NPCs),
		Monsters: referenceParticipants(s.Monsters),
	}
	roster.NormalizeDeadInitiatives()
	return roster, RestoreSequencer(roster, s.Round, s.Initiative)
}

func copyParticipants(in []*Participant) []Participant {
	out := make([]Participant, 0, len(in))
	for _, p := range in {
		clone := *p
		clone.Rounds = append([]RoundEntry(nil), p.Rounds...)
		for i := range clone.Rounds {
			clone.Rounds[i].AttackSets = append([]AttackSet(nil), p.Rounds[i].AttackSets...)
			clone.Rounds[i].KillingBlows = append([]string(nil), p.Rounds[i].KillingBlows...)
		}
		out = append(out, clone)
	}
	return out
}

func referenceParticipants(in []Participant) []*Participant {
	out := make([]*Participant, 0, len(in))
	for i := range in {
		clone := in[i]
		out = append(out, &clone)
	}
	return out
}
