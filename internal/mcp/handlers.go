package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/greywick/roundtracker/internal/encounter/domain"
	"github.com/greywick/roundtracker/internal/encounter/event"
	"github.com/greywick/roundtracker/internal/encounter/service"
	"github.com/greywick/roundtracker/internal/id"
	apperrors "github.com/greywick/roundtracker/internal/platform/errors"
)

// invocationContext tags the context with a fresh invocation identifier so
// every journal event produced by one tool call shares it.
func invocationContext(ctx context.Context) context.Context {
	invocationID, err := id.NewID()
	if err != nil {
		return ctx
	}
	return event.WithInvocationID(ctx, invocationID)
}

// toolError converts a domain error to the localized message the caller
// sees. Unexpected errors pass through untouched so their detail is not
// lost behind a generic message.
func toolError(err error, locale string) error {
	return apperrors.UserFacing(err, locale)
}

// RosterListHandler creates the handler for the roster_list tool.
func RosterListHandler(svc *service.Service) mcp.ToolHandlerFor[EmptyInput, RosterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, RosterResult, error) {
		return nil, RosterResult{Participants: svc.ListParticipants()}, nil
	}
}

// ParticipantGetHandler creates the handler for the participant_get tool.
func ParticipantGetHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[ParticipantNameInput, ParticipantResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ParticipantNameInput) (*mcp.CallToolResult, ParticipantResult, error) {
		view, rounds, err := svc.GetParticipant(input.Name)
		if err != nil {
			return nil, ParticipantResult{}, toolError(err, locale)
		}
		return nil, ParticipantResult{Participant: view, Rounds: rounds}, nil
	}
}

// ParticipantAddHandler creates the handler for the participant_add tool.
func ParticipantAddHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[ParticipantAddInput, ParticipantResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ParticipantAddInput) (*mcp.CallToolResult, ParticipantResult, error) {
		kind, err := domain.ParseKind(input.Kind)
		if err != nil {
			return nil, ParticipantResult{}, toolError(err, locale)
		}
		view, err := svc.AddParticipant(invocationContext(ctx), domain.CreateParticipantInput{
			Name:       input.Name,
			Kind:       kind,
			PlayerName: input.PlayerName,
			Race:       input.Race,
			MaxHP:      input.MaxHP,
			CurrentHP:  input.CurrentHP,
			Initiative: input.Initiative,
		})
		if err != nil {
			return nil, ParticipantResult{}, toolError(err, locale)
		}
		return nil, ParticipantResult{Participant: view}, nil
	}
}

// ParticipantRemoveHandler creates the handler for the participant_remove tool.
func ParticipantRemoveHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[ParticipantNameInput, RemoveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ParticipantNameInput) (*mcp.CallToolResult, RemoveResult, error) {
		if err := svc.RemoveParticipant(invocationContext(ctx), input.Name); err != nil {
			return nil, RemoveResult{}, toolError(err, locale)
		}
		return nil, RemoveResult{Name: input.Name, Removed: true}, nil
	}
}

// TurnStateHandler creates the handler for the turn_state_get tool.
func TurnStateHandler(svc *service.Service) mcp.ToolHandlerFor[EmptyInput, TurnResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, TurnResult, error) {
		return nil, turnResultFrom(svc.Turn()), nil
	}
}

// InitiativeOrderHandler creates the handler for the initiative_order tool.
func InitiativeOrderHandler(svc *service.Service) mcp.ToolHandlerFor[EmptyInput, InitiativeOrderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, InitiativeOrderResult, error) {
		return nil, InitiativeOrderResult{Order: svc.LivingInitiatives()}, nil
	}
}

// turnCommand adapts a turn-moving service method into a tool handler.
// All five turn tools share the same shape.
func turnCommand(move func(context.Context) (service.TurnState, error), locale string) mcp.ToolHandlerFor[EmptyInput, TurnResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, TurnResult, error) {
		state, err := move(invocationContext(ctx))
		if err != nil {
			return nil, TurnResult{}, toolError(err, locale)
		}
		return nil, turnResultFrom(state), nil
	}
}

// TurnAdvanceHandler creates the handler for the turn_advance tool.
func TurnAdvanceHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[EmptyInput, TurnResult] {
	return turnCommand(svc.Advance, locale)
}

// TurnRetreatHandler creates the handler for the turn_retreat tool.
func TurnRetreatHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[EmptyInput, TurnResult] {
	return turnCommand(svc.Retreat, locale)
}

// TurnResetHandler creates the handler for the turn_reset tool.
func TurnResetHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[EmptyInput, TurnResult] {
	return turnCommand(svc.ResetToTop, locale)
}

// RoundNextHandler creates the handler for the round_next tool.
func RoundNextHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[EmptyInput, TurnResult] {
	return turnCommand(svc.NextRound, locale)
}

// RoundPreviousHandler creates the handler for the round_previous tool.
func RoundPreviousHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[EmptyInput, TurnResult] {
	return turnCommand(svc.PreviousRound, locale)
}

// RoundSubmitHandler creates the handler for the round_submit tool.
func RoundSubmitHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[RoundSubmitInput, RoundSubmitResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RoundSubmitInput) (*mcp.CallToolResult, RoundSubmitResult, error) {
		res, err := svc.SubmitRound(invocationContext(ctx), input.Actor, submissionFrom(input))
		if err != nil {
			return nil, RoundSubmitResult{}, toolError(err, locale)
		}
		return nil, RoundSubmitResult{
			Actor:          res.Actor,
			RoundID:        res.RoundID,
			Changes:        res.Changes,
			KillingBlows:   res.KillingBlows,
			SkippedTargets: res.SkippedTargets,
		}, nil
	}
}

// HealTargetHandler creates the handler for the heal_target tool.
func HealTargetHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[HealTargetInput, HealTargetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input HealTargetInput) (*mcp.CallToolResult, HealTargetResult, error) {
		change, err := svc.HealTarget(invocationContext(ctx), input.Name, input.Amount)
		if err != nil {
			return nil, HealTargetResult{}, toolError(err, locale)
		}
		return nil, HealTargetResult{
			Name:     change.Name,
			HPBefore: change.HPBefore,
			HPAfter:  change.HPAfter,
			Revived:  change.Revived,
		}, nil
	}
}

// SnapshotSaveHandler creates the handler for the snapshot_save tool.
func SnapshotSaveHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[EmptyInput, service.SnapshotInfo] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, service.SnapshotInfo, error) {
		info, err := svc.SaveSnapshot(invocationContext(ctx))
		if err != nil {
			return nil, service.SnapshotInfo{}, toolError(err, locale)
		}
		return nil, info, nil
	}
}

// SnapshotRestoreHandler creates the handler for the snapshot_restore tool.
func SnapshotRestoreHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[SnapshotRestoreInput, service.SnapshotInfo] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SnapshotRestoreInput) (*mcp.CallToolResult, service.SnapshotInfo, error) {
		info, err := svc.RestoreSnapshot(invocationContext(ctx), input.SnapshotID)
		if err != nil {
			return nil, service.SnapshotInfo{}, toolError(err, locale)
		}
		return nil, info, nil
	}
}

// SnapshotListHandler creates the handler for the snapshot_list tool.
func SnapshotListHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[SnapshotListInput, SnapshotListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SnapshotListInput) (*mcp.CallToolResult, SnapshotListResult, error) {
		infos, err := svc.ListSnapshots(ctx, input.Limit)
		if err != nil {
			return nil, SnapshotListResult{}, toolError(err, locale)
		}
		return nil, SnapshotListResult{Snapshots: infos}, nil
	}
}

// EventListHandler creates the handler for the event_list tool.
func EventListHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[EventListInput, EventListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventListInput) (*mcp.CallToolResult, EventListResult, error) {
		events, err := svc.ListEvents(ctx, input.Limit)
		if err != nil {
			return nil, EventListResult{}, toolError(err, locale)
		}
		entries := make([]EventEntry, 0, len(events))
		for _, evt := range events {
			entry := EventEntry{
				Seq:       evt.Seq,
				Timestamp: evt.Timestamp.UTC().Format(time.RFC3339),
				Type:      string(evt.Type),
				Actor:     evt.Actor,
			}
			if len(evt.PayloadJSON) > 0 {
				entry.Payload = compactJSON(evt.PayloadJSON)
			}
			entries = append(entries, entry)
		}
		return nil, EventListResult{Events: entries}, nil
	}
}

// EventExportHandler creates the handler for the event_export tool.
func EventExportHandler(svc *service.Service, locale string) mcp.ToolHandlerFor[EventListInput, EventExportResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventListInput) (*mcp.CallToolResult, EventExportResult, error) {
		events, err := svc.ListEvents(ctx, input.Limit)
		if err != nil {
			return nil, EventExportResult{}, toolError(err, locale)
		}
		var journal strings.Builder
		if err := event.ExportHumanReadable(events, &journal); err != nil {
			return nil, EventExportResult{}, err
		}
		return nil, EventExportResult{Journal: journal.String()}, nil
	}
}

func turnResultFrom(state service.TurnState) TurnResult {
	return TurnResult{Round: state.Round, Initiative: state.Initiative, Order: state.Order}
}

func submissionFrom(input RoundSubmitInput) domain.RoundSubmission {
	sub := domain.RoundSubmission{Actions: input.Actions}
	for _, attack := range input.Attacks {
		sub.Attacks = append(sub.Attacks, domain.AttackLine{
			TargetName: attack.TargetName,
			Damage:     attack.Damage,
		})
	}
	if input.DamageTaken != nil {
		sub.DamageTaken = domain.DamageTakenLine{
			Amount: input.DamageTaken.Amount,
			Source: input.DamageTaken.Source,
		}
	}
	if input.Healing != nil {
		sub.Healing = domain.HealingLine{
			Type:   domain.HealingType(input.Healing.Type),
			Amount: input.Healing.Amount,
			Healer: input.Healing.Healer,
		}
	}
	for _, spell := range input.Spells {
		sub.Spells = append(sub.Spells, domain.SpellLine{
			SpellName:       spell.SpellName,
			NumberOfAttacks: spell.NumberOfAttacks,
			TotalDamage:     spell.TotalDamage,
			Notes:           spell.Notes,
		})
	}
	return sub
}

func compactJSON(raw []byte) string {
	var out json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return string(raw)
	}
	compact, err := json.Marshal(out)
	if err != nil {
		return string(raw)
	}
	return string(compact)
}
