// Package mcp exposes the encounter tracker as MCP tools over stdio.
package mcp

import "github.com/modelcontextprotocol/go-sdk/mcp"

// RosterListTool creates the roster_list tool definition.
func RosterListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roster_list",
		Description: "Lists every participant with HP, status, initiative, and acted marker",
	}
}

// ParticipantGetTool creates the participant_get tool definition.
func ParticipantGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "participant_get",
		Description: "Returns one participant with its full per-round activity log",
	}
}

// ParticipantAddTool creates the participant_add tool definition.
func ParticipantAddTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "participant_add",
		Description: "Adds a player, NPC, or monster to the roster",
	}
}

// ParticipantRemoveTool creates the participant_remove tool definition.
func ParticipantRemoveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "participant_remove",
		Description: "Removes a participant from the roster by name",
	}
}

// TurnStateTool creates the turn_state_get tool definition.
func TurnStateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "turn_state_get",
		Description: "Returns the current round, initiative, and living turn order",
	}
}

// InitiativeOrderTool creates the initiative_order tool definition.
func InitiativeOrderTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "initiative_order",
		Description: "Returns the distinct living initiative values, highest first",
	}
}

// TurnAdvanceTool creates the turn_advance tool definition.
func TurnAdvanceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "turn_advance",
		Description: "Moves to the next initiative, rolling over to a new round at the bottom",
	}
}

// TurnRetreatTool creates the turn_retreat tool definition.
func TurnRetreatTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "turn_retreat",
		Description: "Moves back to the previous initiative within the current round",
	}
}

// TurnResetTool creates the turn_reset tool definition.
func TurnResetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "turn_reset",
		Description: "Resets the current round to the top of the initiative order",
	}
}

// RoundNextTool creates the round_next tool definition.
func RoundNextTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "round_next",
		Description: "Advances to the next round at the top of the initiative order",
	}
}

// RoundPreviousTool creates the round_previous tool definition.
func RoundPreviousTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "round_previous",
		Description: "Steps back one round, never below round one",
	}
}

// RoundSubmitTool creates the round_submit tool definition.
func RoundSubmitTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "round_submit",
		Description: "Records a participant's turn: attacks, spells, damage taken, and healing",
	}
}

// HealTargetTool creates the heal_target tool definition.
func HealTargetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "heal_target",
		Description: "Heals a named participant directly, reviving the dead when healed above zero",
	}
}

// SnapshotSaveTool creates the snapshot_save tool definition.
func SnapshotSaveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "snapshot_save",
		Description: "Persists the full encounter state as a restorable snapshot",
	}
}

// SnapshotRestoreTool creates the snapshot_restore tool definition.
func SnapshotRestoreTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "snapshot_restore",
		Description: "Replaces the live encounter with a saved snapshot, latest when unspecified",
	}
}

// SnapshotListTool creates the snapshot_list tool definition.
func SnapshotListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "snapshot_list",
		Description: "Lists saved snapshots, newest first",
	}
}

// EventListTool creates the event_list tool definition.
func EventListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_list",
		Description: "Lists journal events in append order",
	}
}

// EventExportTool creates the event_export tool definition.
func EventExportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_export",
		Description: "Renders the event journal as human-readable text",
	}
}
