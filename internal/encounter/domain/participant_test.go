package domain

import (
	"testing"

	apperrors "github.com/greywick/roundtracker/internal/platform/errors"
)

func TestCreateParticipantSuccess(t *testing.T) {
	p, err := CreateParticipant(CreateParticipantInput{
		Name:       "Thorin Ironbeard",
		Kind:       KindPlayer,
		PlayerName: "Alex",
		MaxHP:      45,
		CurrentHP:  38,
		Initiative: 16,
	})
	if err != nil {
		t.Fatalf("create participant: %v", err)
	}
	if p.Name != "Thorin Ironbeard" || p.PlayerName != "Alex" {
		t.Fatalf("expected names preserved, got %q/%q", p.Name, p.PlayerName)
	}
	if p.Dead {
		t.Fatalf("expected living participant")
	}
}

func TestCreateParticipantStartsDeadAtZeroHP(t *testing.T) {
	p, err := CreateParticipant(CreateParticipantInput{
		Name:       "Goblin Archer",
		Kind:       KindMonster,
		MaxHP:      7,
		CurrentHP:  0,
		Initiative: 9,
	})
	if err != nil {
		t.Fatalf("create participant: %v", err)
	}
	if !p.Dead {
		t.Fatalf("expected participant dead at 0 hp")
	}
	if p.Initiative != 0 {
		t.Fatalf("expected initiative zeroed, got %d", p.Initiative)
	}
}

func TestCreateParticipantValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input CreateParticipantInput
		code  apperrors.Code
	}{
		{
			name:  "empty name",
			input: CreateParticipantInput{Kind: KindPlayer, MaxHP: 10, CurrentHP: 10},
			code:  apperrors.CodeParticipantEmptyName,
		},
		{
			name:  "whitespace name",
			input: CreateParticipantInput{Name: "   ", Kind: KindNPC, MaxHP: 10, CurrentHP: 10},
			code:  apperrors.CodeParticipantEmptyName,
		},
		{
			name:  "invalid kind",
			input: CreateParticipantInput{Name: "Orc", MaxHP: 10, CurrentHP: 10},
			code:  apperrors.CodeParticipantInvalidKind,
		},
		{
			name:  "zero max hp",
			input: CreateParticipantInput{Name: "Orc", Kind: KindMonster, MaxHP: 0},
			code:  apperrors.CodeParticipantInvalidMaxHP,
		},
		{
			name:  "current above max",
			input: CreateParticipantInput{Name: "Orc", Kind: KindMonster, MaxHP: 10, CurrentHP: 11},
			code:  apperrors.CodeParticipantInvalidHP,
		},
		{
			name:  "negative current",
			input: CreateParticipantInput{Name: "Orc", Kind: KindMonster, MaxHP: 10, CurrentHP: -1},
			code:  apperrors.CodeParticipantInvalidHP,
		},
		{
			name:  "negative initiative",
			input: CreateParticipantInput{Name: "Orc", Kind: KindMonster, MaxHP: 10, CurrentHP: 10, Initiative: -3},
			code:  apperrors.CodeParticipantInvalidInitiative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateParticipant(tt.input)
			if !apperrors.IsCode(err, tt.code) {
				t.Fatalf("expected code %s, got %v", tt.code, err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		value string
		want  Kind
	}{
		{"player", KindPlayer},
		{"NPC", KindNPC},
		{" monster ", KindMonster},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.value)
		if err != nil {
			t.Fatalf("parse kind %q: %v", tt.value, err)
		}
		if got != tt.want {
			t.Fatalf("parse kind %q: expected %v, got %v", tt.value, tt.want, got)
		}
	}

	if _, err := ParseKind("dragon"); !apperrors.IsCode(err, apperrors.CodeParticipantInvalidKind) {
		t.Fatalf("expected invalid kind error, got %v", err)
	}
}

func TestApplyDamageClampsAtZero(t *testing.T) {
	p := Participant{Name: "Orc", Kind: KindMonster, MaxHP: 10, CurrentHP: 4, Initiative: 13}

	applied := p.ApplyDamage(9)
	if applied.HPBefore != 4 || applied.HPAfter != 0 {
		t.Fatalf("expected 4 -> 0, got %d -> %d", applied.HPBefore, applied.HPAfter)
	}
	if !applied.Died {
		t.Fatalf("expected death on transition to zero")
	}
	if !p.Dead || p.Initiative != 0 {
		t.Fatalf("expected dead with initiative 0, got dead=%v initiative=%d", p.Dead, p.Initiative)
	}
}

func TestApplyDamageAboveZeroNoDeath(t *testing.T) {
	p := Participant{Name: "Orc", Kind: KindMonster, MaxHP: 10, CurrentHP: 8, Initiative: 13}

	applied := p.ApplyDamage(3)
	if applied.Died {
		t.Fatalf("expected no death at %d hp", applied.HPAfter)
	}
	if p.CurrentHP != 5 || p.Initiative != 13 {
		t.Fatalf("expected 5 hp and initiative intact, got %d/%d", p.CurrentHP, p.Initiative)
	}
}

func TestApplyDamageToCorpseDoesNotReportDeath(t *testing.T) {
	p := Participant{Name: "Goblin", Kind: KindMonster, MaxHP: 7, CurrentHP: 0, Dead: true}

	applied := p.ApplyDamage(5)
	if applied.Died {
		t.Fatalf("expected no death report for an already dead target")
	}
	if applied.HPBefore != 0 || applied.HPAfter != 0 {
		t.Fatalf("expected hp pinned at zero, got %d -> %d", applied.HPBefore, applied.HPAfter)
	}
}

func TestApplyHealingClampsAtMax(t *testing.T) {
	p := Participant{Name: "Luna", Kind: KindPlayer, MaxHP: 32, CurrentHP: 30}

	applied := p.ApplyHealing(9)
	if applied.HPAfter != 32 {
		t.Fatalf("expected clamp at max hp, got %d", applied.HPAfter)
	}
	if applied.Revived {
		t.Fatalf("expected no revival for a living participant")
	}
}

func TestApplyHealingRevivesDeadParticipant(t *testing.T) {
	p := Participant{Name: "Goblin", Kind: KindMonster, MaxHP: 7, CurrentHP: 0, Dead: true, Initiative: 0}

	applied := p.ApplyHealing(3)
	if !applied.Revived {
		t.Fatalf("expected revival")
	}
	if p.Dead {
		t.Fatalf("expected dead flag cleared")
	}
	if p.Initiative != RevivalInitiative {
		t.Fatalf("expected placeholder initiative %d, got %d", RevivalInitiative, p.Initiative)
	}
}

func TestApplyHealingIgnoresNonPositiveAmount(t *testing.T) {
	p := Participant{Name: "Luna", Kind: KindPlayer, MaxHP: 32, CurrentHP: 10}

	applied := p.ApplyHealing(0)
	if applied.HPBefore != 10 || applied.HPAfter != 10 {
		t.Fatalf("expected no change, got %d -> %d", applied.HPBefore, applied.HPAfter)
	}
}

func TestHPStatusBands(t *testing.T) {
	tests := []struct {
		current int
		max     int
		want    HPStatus
	}{
		{45, 45, HPStatusHealthy},
		{28, 45, HPStatusHealthy},
		{27, 45, HPStatusWounded},
		{12, 45, HPStatusWounded},
		{11, 45, HPStatusCritical},
		{0, 45, HPStatusCritical},
	}
	for _, tt := range tests {
		p := Participant{MaxHP: tt.max, CurrentHP: tt.current}
		if got := p.HPStatus(); got != tt.want {
			t.Fatalf("hp %d/%d: expected %s, got %s", tt.current, tt.max, tt.want, got)
		}
	}
}
