// Package mcpserver wires the tool catalogue into a mark3labs/mcp-go server.
// It owns the boundary error policy: typed domain errors surface to the
// protocol layer as structured failures, while anything unexpected is
// downgraded to a soft isError content block so the session survives.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpGoServer "github.com/mark3labs/mcp-go/server"

	"ankibridge/internal/domain"
	"ankibridge/internal/usecase"
)

// Server registers descriptors with an MCP server and routes tool calls
// through the CallToolUseCase.
type Server struct {
	mcp    *mcpGoServer.MCPServer
	list   *usecase.ServeToolsUseCase
	call   *usecase.CallToolUseCase
	logger *slog.Logger
}

// New creates a Server around an existing MCPServer instance.
func New(mcpSrv *mcpGoServer.MCPServer, list *usecase.ServeToolsUseCase, call *usecase.CallToolUseCase, logger *slog.Logger) *Server {
	return &Server{
		mcp:    mcpSrv,
		list:   list,
		call:   call,
		logger: logger.With("component", "mcp_server"),
	}
}

// RegisterTools exposes every registered descriptor as an MCP tool. The
// catalogue is static, so this runs exactly once during startup.
func (s *Server) RegisterTools(ctx context.Context) error {
	descs, err := s.list.Execute(ctx)
	if err != nil {
		return fmt.Errorf("failed to list descriptors for registration: %w", err)
	}
	for _, desc := range descs {
		schemaJSON, err := json.Marshal(desc.InputSchema)
		if err != nil {
			return fmt.Errorf("failed to marshal input schema for %s: %w", desc.Name, err)
		}
		tool := mcp.NewToolWithRawSchema(desc.Name, desc.Description, schemaJSON)
		s.mcp.AddTool(tool, s.handler(desc.Name))
	}
	s.logger.Info("Registered MCP tools", slog.Int("count", len(descs)))
	return nil
}

// handler builds the per-tool handler closure. The tool name is captured at
// registration; arguments come from the request.
func (s *Server) handler(name string) mcpGoServer.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := s.call.Execute(ctx, name, req.GetArguments())
		if err != nil {
			if isTypedError(err) {
				return nil, err
			}
			s.logger.Error("Unexpected tool call failure",
				slog.String("tool", name), slog.Any("error", err))
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

// isTypedError reports whether err belongs to the declared error taxonomy.
func isTypedError(err error) bool {
	var (
		invalidParams *domain.InvalidParametersError
		notFound      *domain.ToolNotFoundError
		transport     *domain.TransportError
		protocol      *domain.ProtocolViolationError
		remote        *domain.RemoteActionError
	)
	return errors.As(err, &invalidParams) ||
		errors.As(err, &notFound) ||
		errors.As(err, &transport) ||
		errors.As(err, &protocol) ||
		errors.As(err, &remote)
}
