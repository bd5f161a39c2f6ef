package domain

import (
	"testing"

	apperrors "github.com/greywick/roundtracker/internal/platform/errors"
)

func testRoster() *Roster {
	return &Roster{
		Players: []*Participant{
			{Name: "Thorin Ironbeard", Kind: KindPlayer, MaxHP: 45, CurrentHP: 38, Initiative: 16},
			{Name: "Luna Starweaver", Kind: KindPlayer, MaxHP: 32, CurrentHP: 32, Initiative: 14},
		},
		NPCs: []*Participant{
			{Name: "Captain Aldric", Kind: KindNPC, MaxHP: 58, CurrentHP: 58, Initiative: 12},
		},
		Monsters: []*Participant{
			{Name: "Orc Berserker", Kind: KindMonster, MaxHP: 67, CurrentHP: 23, Initiative: 13},
			{Name: "Goblin Archer", Kind: KindMonster, MaxHP: 7, CurrentHP: 0, Dead: true},
		},
	}
}

func TestRosterAllPreservesCategoryOrder(t *testing.T) {
	roster := testRoster()
	all := roster.All()
	want := []string{"Thorin Ironbeard", "Luna Starweaver", "Captain Aldric", "Orc Berserker", "Goblin Archer"}
	if len(all) != len(want) {
		t.Fatalf("expected %d participants, got %d", len(want), len(all))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, all[i].Name)
		}
	}
}

func TestRosterLivingExcludesDead(t *testing.T) {
	roster := testRoster()
	for _, p := range roster.Living() {
		if p.Dead {
			t.Fatalf("living returned dead participant %q", p.Name)
		}
	}
	if got := len(roster.Living()); got != 4 {
		t.Fatalf("expected 4 living, got %d", got)
	}
}

func TestRosterFindByName(t *testing.T) {
	roster := testRoster()
	if p := roster.FindByName("Orc Berserker"); p == nil || p.Kind != KindMonster {
		t.Fatalf("expected to find monster, got %+v", p)
	}
	if p := roster.FindByName("Nobody"); p != nil {
		t.Fatalf("expected nil for unknown name, got %q", p.Name)
	}
}

func TestRosterAddRejectsDuplicateName(t *testing.T) {
	roster := testRoster()
	err := roster.Add(&Participant{Name: "Thorin Ironbeard", Kind: KindMonster, MaxHP: 10, CurrentHP: 10})
	if !apperrors.IsCode(err, apperrors.CodeParticipantDuplicateName) {
		t.Fatalf("expected duplicate name error, got %v", err)
	}
}

func TestRosterAddPlacesByKind(t *testing.T) {
	roster := testRoster()
	if err := roster.Add(&Participant{Name: "Elara", Kind: KindNPC, MaxHP: 27, CurrentHP: 27}); err != nil {
		t.Fatalf("add npc: %v", err)
	}
	if len(roster.NPCs) != 2 {
		t.Fatalf("expected npc group to grow, got %d", len(roster.NPCs))
	}
}

func TestRosterRemove(t *testing.T) {
	roster := testRoster()
	if err := roster.Remove("Goblin Archer"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if roster.FindByName("Goblin Archer") != nil {
		t.Fatalf("expected participant gone after remove")
	}
	if err := roster.Remove("Goblin Archer"); !apperrors.IsCode(err, apperrors.CodeParticipantNotFound) {
		t.Fatalf("expected not found on second remove, got %v", err)
	}
}

func TestNormalizeDeadInitiatives(t *testing.T) {
	roster := testRoster()
	roster.Monsters[1].Initiative = 9

	swept := roster.NormalizeDeadInitiatives()
	if swept != 1 {
		t.Fatalf("expected 1 swept, got %d", swept)
	}
	if roster.Monsters[1].Initiative != 0 {
		t.Fatalf("expected dead initiative zeroed, got %d", roster.Monsters[1].Initiative)
	}
}
