package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/greywick/roundtracker/internal/encounter/event"
)

// Advance steps the sequencer to the next initiative value, rolling into a
// new round past the lowest one.
func (s *Service) Advance(ctx context.Context) (TurnState, error) {
	return s.moveTurn(ctx, "encounter.advance", event.TypeTurnAdvanced, func() {
		s.sequencer.Advance()
	})
}

// Retreat steps the sequencer back to the previous initiative value. At the
// top of the order it is a no-op.
func (s *Service) Retreat(ctx context.Context) (TurnState, error) {
	return s.moveTurn(ctx, "encounter.retreat", event.TypeTurnRetreated, func() {
		s.sequencer.Retreat()
	})
}

// ResetToTop moves the sequencer to the top of the living order without
// changing the round.
func (s *Service) ResetToTop(ctx context.Context) (TurnState, error) {
	return s.moveTurn(ctx, "encounter.reset_to_top", event.TypeTurnReset, func() {
		s.sequencer.ResetToTop()
	})
}

// NextRound increments the round and resets to the top of the living order.
func (s *Service) NextRound(ctx context.Context) (TurnState, error) {
	return s.moveTurn(ctx, "encounter.next_round", event.TypeRoundChanged, func() {
		s.sequencer.NextRound()
	})
}

// PreviousRound decrements the round, flooring at 1, and resets to the top
// of the living order.
func (s *Service) PreviousRound(ctx context.Context) (TurnState, error) {
	return s.moveTurn(ctx, "encounter.previous_round", event.TypeRoundChanged, func() {
		s.sequencer.PreviousRound()
	})
}

func (s *Service) moveTurn(ctx context.Context, spanName string, eventType event.Type, move func()) (TurnState, error) {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	payload := event.TurnMovedPayload{
		RoundBefore:      s.sequencer.Round(),
		InitiativeBefore: s.sequencer.Initiative(),
	}
	move()
	payload.RoundAfter = s.sequencer.Round()
	payload.InitiativeAfter = s.sequencer.Initiative()
	span.SetAttributes(
		attribute.Int("encounter.round", payload.RoundAfter),
		attribute.Int("encounter.initiative", payload.InitiativeAfter),
	)

	state := TurnState{
		Round:      s.sequencer.Round(),
		Initiative: s.sequencer.Initiative(),
		Order:      s.sequencer.LivingInitiatives(),
	}
	if _, err := s.emitter.Emit(ctx, event.EmitInput{Type: eventType, Payload: payload}); err != nil {
		return TurnState{}, err
	}
	return state, nil
}
