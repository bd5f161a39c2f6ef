package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/greywick/roundtracker/internal/encounter/service"
)

const (
	serverName = "roundtracker"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server binds the encounter service to the MCP protocol.
type Server struct {
	mcpServer *mcp.Server
}

// NewServer creates the MCP tool bindings once, against a single in-process
// encounter service. Error messages returned to clients are localized with
// the given locale.
func NewServer(svc *service.Service, locale string) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{})

	mcp.AddTool(mcpServer, RosterListTool(), RosterListHandler(svc))
	mcp.AddTool(mcpServer, ParticipantGetTool(), ParticipantGetHandler(svc, locale))
	mcp.AddTool(mcpServer, ParticipantAddTool(), ParticipantAddHandler(svc, locale))
	mcp.AddTool(mcpServer, ParticipantRemoveTool(), ParticipantRemoveHandler(svc, locale))
	mcp.AddTool(mcpServer, TurnStateTool(), TurnStateHandler(svc))
	mcp.AddTool(mcpServer, InitiativeOrderTool(), InitiativeOrderHandler(svc))
	mcp.AddTool(mcpServer, TurnAdvanceTool(), TurnAdvanceHandler(svc, locale))
	mcp.AddTool(mcpServer, TurnRetreatTool(), TurnRetreatHandler(svc, locale))
	mcp.AddTool(mcpServer, TurnResetTool(), TurnResetHandler(svc, locale))
	mcp.AddTool(mcpServer, RoundNextTool(), RoundNextHandler(svc, locale))
	mcp.AddTool(mcpServer, RoundPreviousTool(), RoundPreviousHandler(svc, locale))
	mcp.AddTool(mcpServer, RoundSubmitTool(), RoundSubmitHandler(svc, locale))
	mcp.AddTool(mcpServer, HealTargetTool(), HealTargetHandler(svc, locale))
	mcp.AddTool(mcpServer, SnapshotSaveTool(), SnapshotSaveHandler(svc, locale))
	mcp.AddTool(mcpServer, SnapshotRestoreTool(), SnapshotRestoreHandler(svc, locale))
	mcp.AddTool(mcpServer, SnapshotListTool(), SnapshotListHandler(svc, locale))
	mcp.AddTool(mcpServer, EventListTool(), EventListHandler(svc, locale))
	mcp.AddTool(mcpServer, EventExportTool(), EventExportHandler(svc, locale))

	return &Server{mcpServer: mcpServer}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
