// Package mcpserver wires the tool registry to an MCP server running over
// the stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/querydev/devsearch/pkg/tools"
)

// Server exposes registered tools over MCP.
type Server struct {
	mcp *mcp.Server
	log zerolog.Logger
}

// New builds an MCP server and registers every tool from the registry.
// Unknown tool names are rejected by the protocol layer with a
// method-not-found error; argument shape validation also lives there.
func New(name, version string, registry *tools.Registry, log zerolog.Logger) *Server {
	log = log.With().Str("component", "mcpserver").Logger()

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)
	srv.AddReceivingMiddleware(loggingMiddleware(log))

	for _, tool := range registry.All() {
		srv.AddTool(&tool.Tool, toolHandler(tool))
	}

	return &Server{mcp: srv, log: log}
}

// Run serves MCP over stdin/stdout until the context is canceled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info().Msg("serving over stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

func toolHandler(tool *tools.Tool) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{}
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return errorResult(fmt.Sprintf("invalid arguments: %v", err)), nil
			}
		}

		res, err := tool.Execute(ctx, args)
		if err != nil {
			// Hard failures are contract violations (defects), not tool errors.
			return nil, err
		}
		if res.IsError {
			return errorResult(res.Text), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: res.Text}},
		}, nil
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
	}
}

func loggingMiddleware(log zerolog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			requestID := xid.New().String()
			start := time.Now()
			result, err := next(ctx, method, req)
			log.Debug().
				Str("request_id", requestID).
				Str("method", method).
				Dur("duration", time.Since(start)).
				Err(err).
				Msg("handled request")
			return result, err
		}
	}
}
