package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/greywick/roundtracker/internal/encounter/domain"
	"github.com/greywick/roundtracker/internal/encounter/event"
	apperrors "github.com/greywick/roundtracker/internal/platform/errors"
)

// SubmitRound validates and applies a round submission for the named
// participant and records it in the ledger under the current round.
// Validation failures reject the whole submission without mutating state.
func (s *Service) SubmitRound(ctx context.Context, actorName string, sub domain.RoundSubmission) (domain.Resolution, error) {
	ctx, span := s.tracer.Start(ctx, "encounter.submit_round")
	defer span.End()
	span.SetAttributes(attribute.String("encounter.actor", actorName))

	s.mu.Lock()
	defer s.mu.Unlock()

	actor := s.roster.FindByName(actorName)
	if actor == nil {
		return domain.Resolution{}, apperrors.WithMetadata(
			apperrors.CodeParticipantNotFound,
			"participant not found",
			map[string]string{"Name": actorName},
		)
	}

	roundID := s.sequencer.Round()
	res, err := domain.Resolve(s.roster, actor, roundID, sub)
	if err != nil {
		return domain.Resolution{}, err
	}
	s.sequencer.MarkActed(actor.Name)

	if _, err := s.emitter.Emit(ctx, event.EmitInput{
		Type:  event.TypeRoundSubmitted,
		Actor: actor.Name,
		Payload: event.RoundSubmittedPayload{
			RoundID:        roundID,
			AttacksMade:    res.AttackSet.AttacksMade,
			KillingBlows:   res.KillingBlows,
			SkippedTargets: res.SkippedTargets,
		},
	}); err != nil {
		return domain.Resolution{}, err
	}
	if err := s.emitHPTransitions(ctx, actor.Name, res.Changes); err != nil {
		return domain.Resolution{}, err
	}
	return res, nil
}

// HealTarget applies healing directly to the named participant, outside the
// round-submission path. A dead target healed above zero is revived.
func (s *Service) HealTarget(ctx context.Context, name string, amount int) (domain.AppliedChange, error) {
	ctx, span := s.tracer.Start(ctx, "encounter.heal_target")
	defer span.End()
	span.SetAttributes(attribute.String("encounter.target", name))

	s.mu.Lock()
	defer s.mu.Unlock()

	change, err := domain.HealTarget(s.roster, name, amount)
	if err != nil {
		return domain.AppliedChange{}, err
	}

	if _, err := s.emitter.Emit(ctx, event.EmitInput{
		Type: event.TypeParticipantHealed,
		Payload: event.HPChangedPayload{
			Name:     change.Name,
			HPBefore: change.HPBefore,
			HPAfter:  change.HPAfter,
		},
	}); err != nil {
		return domain.AppliedChange{}, err
	}
	if change.Revived {
		if _, err := s.emitter.Emit(ctx, event.EmitInput{
			Type: event.TypeParticipantRevived,
			Payload: event.HPChangedPayload{
				Name:     change.Name,
				HPBefore: change.HPBefore,
				HPAfter:  change.HPAfter,
			},
		}); err != nil {
			return domain.AppliedChange{}, err
		}
	}
	return change, nil
}

// emitHPTransitions journals death and revival transitions from a
// resolution. Caller holds the lock.
func (s *Service) emitHPTransitions(ctx context.Context, actorName string, changes []domain.AppliedChange) error {
	for _, change := range changes {
		var eventType event.Type
		switch {
		case change.Died:
			eventType = event.TypeParticipantDied
		case change.Revived:
			eventType = event.TypeParticipantRevived
		default:
			continue
		}
		if _, err := s.emitter.Emit(ctx, event.EmitInput{
			Type:  eventType,
			Actor: actorName,
			Payload: event.HPChangedPayload{
				Name:     change.Name,
				HPBefore: change.HPBefore,
				HPAfter:  change.HPAfter,
			},
		}); err != nil {
			return err
		}
	}
	return nil
}
