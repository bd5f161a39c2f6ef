package domain

import "testing"

func sequencerRoster() *Roster {
	return &Roster{
		Players: []*Participant{
			{Name: "Shadow", Kind: KindPlayer, MaxHP: 28, CurrentHP: 21, Initiative: 18},
			{Name: "Thorin Ironbeard", Kind: KindPlayer, MaxHP: 45, CurrentHP: 38, Initiative: 16},
			{Name: "Luna Starweaver", Kind: KindPlayer, MaxHP: 32, CurrentHP: 32, Initiative: 16},
		},
		Monsters: []*Participant{
			{Name: "Ancient Red Dragon", Kind: KindMonster, MaxHP: 546, CurrentHP: 546, Initiative: 10},
			{Name: "Goblin Archer", Kind: KindMonster, MaxHP: 7, CurrentHP: 0, Dead: true},
		},
	}
}

func TestLivingInitiativesDistinctSortedDescending(t *testing.T) {
	seq := NewSequencer(sequencerRoster())
	values := seq.LivingInitiatives()
	want := []int{18, 16, 10}
	if len(values) != len(want) {
		t.Fatalf("expected %v, got %v", want, values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, values)
		}
	}
}

func TestNewSequencerStartsAtTop(t *testing.T) {
	seq := NewSequencer(sequencerRoster())
	if seq.Round() != 1 || seq.Initiative() != 18 {
		t.Fatalf("expected round 1 at initiative 18, got %d/%d", seq.Round(), seq.Initiative())
	}
}

func TestNewSequencerFallbackWithoutInitiatives(t *testing.T) {
	seq := NewSequencer(&Roster{})
	if seq.Initiative() != FallbackInitiative {
		t.Fatalf("expected fallback initiative %d, got %d", FallbackInitiative, seq.Initiative())
	}
}

func TestAdvanceStepsDown(t *testing.T) {
	seq := NewSequencer(sequencerRoster())
	seq.Advance()
	if seq.Round() != 1 || seq.Initiative() != 16 {
		t.Fatalf("expected round 1 at 16, got %d/%d", seq.Round(), seq.Initiative())
	}
}

func TestAdvanceRollsOverAtBottom(t *testing.T) {
	seq := NewSequencer(sequencerRoster())
	seq.Advance()
	seq.Advance()
	if seq.Initiative() != 10 {
		t.Fatalf("expected bottom initiative 10, got %d", seq.Initiative())
	}

	seq.Advance()
	if seq.Round() != 2 || seq.Initiative() != 18 {
		t.Fatalf("expected rollover to round 2 at 18, got %d/%d", seq.Round(), seq.Initiative())
	}
}

func TestAdvanceSeesMidRoundDeath(t *testing.T) {
	roster := sequencerRoster()
	seq := NewSequencer(roster)
	seq.Advance()

	// The dragon dies while the sequencer sits at 16; advancing past 16
	// should roll the round because 10 is no longer in the living set.
	roster.Monsters[0].ApplyDamage(546)
	seq.Advance()
	if seq.Round() != 2 || seq.Initiative() != 18 {
		t.Fatalf("expected rollover to round 2 at 18, got %d/%d", seq.Round(), seq.Initiative())
	}
}

func TestAdvanceFromVanishedValueLandsLower(t *testing.T) {
	roster := sequencerRoster()
	seq := NewSequencer(roster)
	seq.Advance()

	// Both holders of 16 die on their own turn; 10 is still to come, so the
	// round must not roll over.
	roster.Players[1].ApplyDamage(38)
	roster.Players[2].ApplyDamage(32)
	seq.Advance()
	if seq.Round() != 1 || seq.Initiative() != 10 {
		t.Fatalf("expected round 1 at 10, got %d/%d", seq.Round(), seq.Initiative())
	}
}

func TestAdvanceFromVanishedValueRollsOverWhenNothingLower(t *testing.T) {
	roster := sequencerRoster()
	seq := NewSequencer(roster)
	seq.Advance()
	seq.Advance()

	// The dragon dies on its own turn at 10; nothing lower remains.
	roster.Monsters[0].ApplyDamage(546)
	seq.Advance()
	if seq.Round() != 2 || seq.Initiative() != 18 {
		t.Fatalf("expected rollover to round 2 at 18, got %d/%d", seq.Round(), seq.Initiative())
	}
}

func TestRetreatNoOpAtTop(t *testing.T) {
	seq := NewSequencer(sequencerRoster())
	seq.Retreat()
	if seq.Round() != 1 || seq.Initiative() != 18 {
		t.Fatalf("expected retreat no-op at top, got %d/%d", seq.Round(), seq.Initiative())
	}
}

func TestRetreatStepsUp(t *testing.T) {
	seq := NewSequencer(sequencerRoster())
	seq.Advance()
	seq.Retreat()
	if seq.Initiative() != 18 {
		t.Fatalf("expected retreat back to 18, got %d", seq.Initiative())
	}
}

func TestRetreatFromVanishedValueLandsLower(t *testing.T) {
	roster := sequencerRoster()
	seq := NewSequencer(roster)
	seq.Advance()

	// Both holders of 16 die, so the current value leaves the living set.
	roster.Players[1].ApplyDamage(38)
	roster.Players[2].ApplyDamage(32)
	seq.Retreat()
	if seq.Initiative() != 10 {
		t.Fatalf("expected closest lower value 10, got %d", seq.Initiative())
	}
}

func TestResetToTop(t *testing.T) {
	seq := NewSequencer(sequencerRoster())
	seq.Advance()
	seq.Advance()
	seq.ResetToTop()
	if seq.Round() != 1 || seq.Initiative() != 18 {
		t.Fatalf("expected reset to round 1 at 18, got %d/%d", seq.Round(), seq.Initiative())
	}
}

func TestNextRoundResetsToTop(t *testing.T) {
	seq := NewSequencer(sequencerRoster())
	seq.Advance()
	seq.NextRound()
	if seq.Round() != 2 || seq.Initiative() != 18 {
		t.Fatalf("expected round 2 at 18, got %d/%d", seq.Round(), seq.Initiative())
	}
}

func TestPreviousRoundFloorsAtOne(t *testing.T) {
	seq := NewSequencer(sequencerRoster())
	seq.PreviousRound()
	if seq.Round() != 1 {
		t.Fatalf("expected round floor at 1, got %d", seq.Round())
	}

	seq.NextRound()
	seq.NextRound()
	seq.PreviousRound()
	if seq.Round() != 2 {
		t.Fatalf("expected round 2 after decrement, got %d", seq.Round())
	}
}

func TestPreviousRoundAtFloorKeepsActedMarkers(t *testing.T) {
	seq := NewSequencer(sequencerRoster())
	seq.MarkActed("Shadow")

	// Flooring at round 1 is a no-op and must not discard round 1 markers.
	seq.PreviousRound()
	if seq.Round() != 1 || !seq.Acted("Shadow") {
		t.Fatalf("expected round 1 marker kept, got round %d acted %v", seq.Round(), seq.Acted("Shadow"))
	}
}

func TestActedMarkersClearOnRollover(t *testing.T) {
	seq := NewSequencer(sequencerRoster())
	seq.MarkActed("Shadow")
	if !seq.Acted("Shadow") {
		t.Fatalf("expected acted marker set")
	}

	seq.Advance()
	if seq.Acted("Shadow") {
		t.Fatalf("expected no marker at a different initiative")
	}

	seq.Advance()
	seq.Advance()
	// Back to round 2 at the top; round 1 markers must be gone.
	seq.PreviousRound()
	if seq.Acted("Shadow") {
		t.Fatalf("expected round 1 markers cleared after rollover")
	}
}

func TestRestoreSequencer(t *testing.T) {
	roster := sequencerRoster()
	seq := RestoreSequencer(roster, 3, 16)
	if seq.Round() != 3 || seq.Initiative() != 16 {
		t.Fatalf("expected round 3 at 16, got %d/%d", seq.Round(), seq.Initiative())
	}

	seq = RestoreSequencer(roster, 0, 0)
	if seq.Round() != 1 || seq.Initiative() != 18 {
		t.Fatalf("expected defaults for invalid position, got %d/%d", seq.Round(), seq.Initiative())
	}
}
