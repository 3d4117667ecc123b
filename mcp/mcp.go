// Package mcp exposes the catalog as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shadng/sngmcp"
)

// Implementation identifies the server to clients.
const Implementation = "sng-mcp"

// RebuildHint is attached to failures caused by missing or unusable data.
const RebuildHint = "Run `sngmcp build` to regenerate data/snapshot.json, then restart the server."

// Tool is one named operation served to clients.
type Tool struct {
	Name        string
	Title       string
	Description string
	InputSchema map[string]any

	// Action names the operation in failure messages ("list components").
	Action string

	Handle func(ctx context.Context, args json.RawMessage) (any, error)
}

// Server serves catalog tools over an MCP transport.
type Server struct {
	server *mcp.Server
	tools  []string
	names  map[string]bool
}

// NewServer creates a server with every catalog tool registered.
func NewServer(catalog sngmcp.CatalogService, version string) (*Server, error) {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{Name: Implementation, Version: version}, nil),
		names:  make(map[string]bool),
	}
	for _, tool := range CatalogTools(catalog) {
		if err := s.Register(tool); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register adds a tool. Registering a name twice returns ECONFLICT.
func (s *Server) Register(tool Tool) error {
	if tool.Name == "" {
		return sngmcp.Errorf(sngmcp.EINVALID, "tool name required")
	}
	if s.names[tool.Name] {
		return sngmcp.Errorf(sngmcp.ECONFLICT, "duplicate tool id %q", tool.Name)
	}
	s.names[tool.Name] = true
	s.tools = append(s.tools, tool.Name)

	schema := tool.InputSchema
	if schema == nil {
		schema = inputSchema(map[string]any{}, nil)
	}

	s.server.AddTool(&mcp.Tool{
		Name:        tool.Name,
		Title:       tool.Title,
		Description: tool.Description,
		InputSchema: schema,
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments
		if len(args) == 0 || string(args) == "null" {
			args = json.RawMessage("{}")
		}
		payload, err := tool.Handle(ctx, args)
		if err != nil {
			return errorResult(tool.Action, err), nil
		}
		return result(payload, false), nil
	})
	return nil
}

// Tools returns the registered tool names in registration order.
func (s *Server) Tools() []string {
	return append([]string{}, s.tools...)
}

// Run serves requests on transport until the client disconnects or ctx
// is cancelled.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

// Serve runs the server over stdin/stdout.
func (s *Server) Serve(ctx context.Context) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}

// result renders payload as indented JSON text plus structured content.
func result(payload any, isError bool) *mcp.CallToolResult {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		var res mcp.CallToolResult
		res.SetError(fmt.Errorf("marshal: %w", err))
		return &res
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(data)}},
		StructuredContent: payload,
		IsError:           isError,
	}
}

// errorResult converts a catalog error into a structured error payload.
func errorResult(action string, err error) *mcp.CallToolResult {
	var miss *sngmcp.Miss
	if errors.As(err, &miss) {
		return result(miss.Payload(), true)
	}

	var toolErr sngmcp.ToolError
	switch sngmcp.ErrorCode(err) {
	case sngmcp.EINVALID:
		toolErr = sngmcp.ToolError{
			Code:    sngmcp.CodeInvalidInput,
			Message: sngmcp.ErrorMessage(err),
			Hint:    "Check the arguments against the tool input schema.",
		}
	case sngmcp.EUNAVAILABLE, sngmcp.ENOTFOUND:
		toolErr = sngmcp.ToolError{
			Code:    sngmcp.CodeDataSourceUnavailable,
			Message: fmt.Sprintf("Failed to %s: %s", action, sngmcp.ErrorMessage(err)),
			Hint:    RebuildHint,
		}
	default:
		toolErr = sngmcp.ToolError{
			Code:    sngmcp.CodeInternalError,
			Message: fmt.Sprintf("Failed to %s: %s", action, sngmcp.ErrorMessage(err)),
			Hint:    RebuildHint,
		}
	}
	return result(sngmcp.MissPayload{Error: toolErr}, true)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// decode unmarshals tool arguments, reporting malformed input as EINVALID.
func decode[T any](args json.RawMessage) (T, error) {
	var req T
	if err := json.Unmarshal(args, &req); err != nil {
		return req, sngmcp.Errorf(sngmcp.EINVALID, "invalid arguments: %s", err)
	}
	return req, nil
}
