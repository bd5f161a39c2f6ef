package domain

import "fmt"

// Ledger labels used when a source or target cannot be named precisely.
const (
	LabelUnknownTarget = "Unknown Target"
	LabelUnknownSource = "Unknown"
	LabelSelfHealing   = "Self Healing"
	LabelHealingOthers = "Healing Others"
	LabelMagicSpell    = "Magic Spell"
)

// Tally is a labeled amount in a participant's per-round record.
type Tally struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// AttackSet records everything a participant did in one submitted action:
// attacks made, damage dealt and taken, healing given and received, and
// free-form action notes.
type AttackSet struct {
	AttacksMade  int      `json:"attacks_made"`
	DamageDealt  []Tally  `json:"damage_dealt,omitempty"`
	DamageTaken  []Tally  `json:"damage_taken,omitempty"`
	HealingDealt []Tally  `json:"healing_dealt,omitempty"`
	HealingTaken []Tally  `json:"healing_taken,omitempty"`
	Actions      []string `json:"actions,omitempty"`
}

// IsEmpty reports whether the set records no activity at all.
func (s AttackSet) IsEmpty() bool {
	return s.AttacksMade == 0 &&
		len(s.DamageDealt) == 0 &&
		len(s.DamageTaken) == 0 &&
		len(s.HealingDealt) == 0 &&
		len(s.HealingTaken) == 0 &&
		len(s.Actions) == 0
}

// RoundEntry is one round's worth of a participant's ledger. KillingBlows
// holds the names of targets the owner finished off, in kill order.
type RoundEntry struct {
	RoundID      int         `json:"round_id"`
	AttackSets   []AttackSet `json:"attack_sets"`
	KillingBlows []string    `json:"killing_blows,omitempty"`
}

// RecordRound appends the set to the participant's entry for the given
// round, creating the entry if this is the participant's first submission
// in that round.
func (p *Participant) RecordRound(roundID int, set AttackSet) {
	for i := range p.Rounds {
		if p.Rounds[i].RoundID == roundID {
			p.Rounds[i].AttackSets = append(p.Rounds[i].AttackSets, set)
			return
		}
	}
	p.Rounds = append(p.Rounds, RoundEntry{
		RoundID:    roundID,
		AttackSets: []AttackSet{set},
	})
}

// AppendKillingBlow credits a kill to the participant's entry for the given
// round, creating the entry if needed.
func (p *Participant) AppendKillingBlow(roundID int, target string) {
	for i := range p.Rounds {
		if p.Rounds[i].RoundID == roundID {
			p.Rounds[i].KillingBlows = append(p.Rounds[i].KillingBlows, target)
			return
		}
	}
	p.Rounds = append(p.Rounds, RoundEntry{
		RoundID:      roundID,
		KillingBlows: []string{target},
	})
}

// EntryForRound returns the participant's ledger entry for the given round,
// or nil when the participant has not acted in it.
func (p *Participant) EntryForRound(roundID int) *RoundEntry {
	for i := range p.Rounds {
		if p.Rounds[i].RoundID == roundID {
			return &p.Rounds[i]
		}
	}
	return nil
}

// LastEntry returns the most recent ledger entry, or nil for a participant
// that has not acted yet.
func (p *Participant) LastEntry() *RoundEntry {
	if len(p.Rounds) == 0 {
		return nil
	}
	return &p.Rounds[len(p.Rounds)-1]
}

// RoundTotals sums a round entry's tallies for stat display.
type RoundTotals struct {
	AttacksMade  int `json:"attacks_made"`
	DamageDealt  int `json:"damage_dealt"`
	DamageTaken  int `json:"damage_taken"`
	HealingDealt int `json:"healing_dealt"`
	HealingTaken int `json:"healing_taken"`
}

// Totals sums the entry's attack sets into one record.
func (e *RoundEntry) Totals() RoundTotals {
	var totals RoundTotals
	for _, set := range e.AttackSets {
		totals.AttacksMade += set.AttacksMade
		totals.DamageDealt += sumTallies(set.DamageDealt)
		totals.DamageTaken += sumTallies(set.DamageTaken)
		totals.HealingDealt += sumTallies(set.HealingDealt)
		totals.HealingTaken += sumTallies(set.HealingTaken)
	}
	return totals
}

func sumTallies(tallies []Tally) int {
	total := 0
	for _, tally := range tallies {
		total += tally.Amount
	}
	return total
}

// TotalAttacksInLastRound sums attacks made across all sets of the most
// recent ledger entry.
func (p *Participant) TotalAttacksInLastRound() int {
	entry := p.LastEntry()
	if entry == nil {
		return 0
	}
	total := 0
	for _, set := range entry.AttackSets {
		total += set.AttacksMade
	}
	return total
}

// SpellNotesLabel renders the action line for a cast spell.
func SpellNotesLabel(spellName, notes string) string {
	if notes == "" {
		return fmt.Sprintf("Cast %s", spellName)
	}
	return fmt.Sprintf("Cast %s (%s)", spellName, notes)
}

// HealerLabel renders the healing-dealt label naming the recipient, or the
// generic label when none was given.
func HealerLabel(healer string) string {
	if healer == "" {
		return LabelHealingOthers
	}
	return fmt.Sprintf("Healing to %s", healer)
}
