// Package mcp exposes invocation logging and agent lookups as Model Context
// Protocol tools, so agents can record their own invocations.
package mcp

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/codeready-toolchain/agent-tracker/pkg/services"
	"github.com/codeready-toolchain/agent-tracker/pkg/version"
)

// Server wraps the MCP server with the tracker's service layer.
type Server struct {
	mcpServer   *mcpserver.MCPServer
	agents      *services.AgentService
	invocations *services.InvocationService
}

// New creates and configures a new MCP server with all tools registered.
func New(agents *services.AgentService, invocations *services.InvocationService) *Server {
	s := &Server{
		agents:      agents,
		invocations: invocations,
	}

	s.mcpServer = mcpserver.NewMCPServer(
		version.AppName,
		version.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	s.registerTools()

	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

// HTTPHandler returns the streamable HTTP transport for mounting on the API router.
func (s *Server) HTTPHandler() http.Handler {
	return mcpserver.NewStreamableHTTPServer(s.mcpServer)
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: string(data)},
		},
	}, nil
}

// serviceErrorResult turns expected service failures into tool errors the
// calling agent can act on. Anything else is returned as a Go error.
func serviceErrorResult(err error, notFound string) (*mcplib.CallToolResult, error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return errorResult("validation failed: " + strings.Join(verr.FullMessages(), "; ")), nil
	case errors.Is(err, services.ErrNotFound):
		return errorResult(notFound), nil
	default:
		return nil, err
	}
}
