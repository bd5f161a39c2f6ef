package service

import (
	"context"

	"github.com/greywick/roundtracker/internal/encounter/domain"
	"github.com/greywick/roundtracker/internal/encounter/event"
	apperrors "github.com/greywick/roundtracker/internal/platform/errors"
)

// ParticipantView is a read-only projection of one participant.
type ParticipantView struct {
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	PlayerName  string          `json:"player_name,omitempty"`
	Race        string          `json:"race,omitempty"`
	MaxHP       int             `json:"max_hp"`
	CurrentHP   int             `json:"current_hp"`
	HPStatus    domain.HPStatus `json:"hp_status"`
	Initiative  int             `json:"initiative"`
	Dead        bool            `json:"dead"`
	Acted       bool            `json:"acted"`
	LastAttacks int             `json:"last_attacks"`
}

func (s *Service) viewOf(p *domain.Participant) ParticipantView {
	return ParticipantView{
		Name:        p.Name,
		Kind:        p.Kind.String(),
		PlayerName:  p.PlayerName,
		Race:        p.Race,
		MaxHP:       p.MaxHP,
		CurrentHP:   p.CurrentHP,
		HPStatus:    p.HPStatus(),
		Initiative:  p.Initiative,
		Dead:        p.Dead,
		Acted:       s.sequencer.Acted(p.Name),
		LastAttacks: p.TotalAttacksInLastRound(),
	}
}

// ListParticipants returns read-only views of the whole roster, players
// first, then NPCs, then monsters.
func (s *Service) ListParticipants() []ParticipantView {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.roster.All()
	views := make([]ParticipantView, 0, len(all))
	for _, p := range all {
		views = append(views, s.viewOf(p))
	}
	return views
}

// GetParticipant returns the named participant's view and full round log.
func (s *Service) GetParticipant(name string) (ParticipantView, []domain.RoundEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.roster.FindByName(name)
	if p == nil {
		return ParticipantView{}, nil, apperrors.WithMetadata(
			apperrors.CodeParticipantNotFound,
			"participant not found",
			map[string]string{"Name": name},
		)
	}
	rounds := make([]domain.RoundEntry, len(p.Rounds))
	copy(rounds, p.Rounds)
	return s.viewOf(p), rounds, nil
}

// LastEntry returns the named participant's most recent ledger entry, or
// nil when the participant has not acted yet.
func (s *Service) LastEntry(name string) (*domain.RoundEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.roster.FindByName(name)
	if p == nil {
		return nil, apperrors.WithMetadata(
			apperrors.CodeParticipantNotFound,
			"participant not found",
			map[string]string{"Name": name},
		)
	}
	entry := p.LastEntry()
	if entry == nil {
		return nil, nil
	}
	clone := *entry
	return &clone, nil
}

// AddParticipant validates and adds a new participant to the roster.
func (s *Service) AddParticipant(ctx context.Context, input domain.CreateParticipantInput) (ParticipantView, error) {
	ctx, span := s.tracer.Start(ctx, "encounter.add_participant")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := domain.CreateParticipant(input)
	if err != nil {
		return ParticipantView{}, err
	}
	if err := s.roster.Add(&p); err != nil {
		return ParticipantView{}, err
	}

	if _, err := s.emitter.Emit(ctx, event.EmitInput{
		Type:    event.TypeParticipantAdded,
		Payload: event.ParticipantPayload{Name: p.Name, Kind: p.Kind.String()},
	}); err != nil {
		return ParticipantView{}, err
	}
	return s.viewOf(&p), nil
}

// RemoveParticipant deletes the named participant from the roster.
func (s *Service) RemoveParticipant(ctx context.Context, name string) error {
	ctx, span := s.tracer.Start(ctx, "encounter.remove_participant")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.roster.FindByName(name)
	if p == nil {
		return apperrors.WithMetadata(
			apperrors.CodeParticipantNotFound,
			"participant not found",
			map[string]string{"Name": name},
		)
	}
	kind := p.Kind.String()
	if err := s.roster.Remove(p.Name); err != nil {
		return err
	}

	_, err := s.emitter.Emit(ctx, event.EmitInput{
		Type:    event.TypeParticipantRemoved,
		Payload: event.ParticipantPayload{Name: p.Name, Kind: kind},
	})
	return err
}
