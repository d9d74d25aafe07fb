// Package tools defines the callable tool surface exposed over MCP and the
// registry that the server boundary dispatches against.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool wraps an MCP tool declaration with its execution logic.
type Tool struct {
	mcp.Tool // Name, Description, InputSchema
	Execute  func(ctx context.Context, args map[string]any) (*Result, error)
}

// Result is the outcome of a tool execution. Text holds the rendered
// response; IsError marks a failed call whose Text carries the message.
type Result struct {
	Text    string
	IsError bool
}

// TextResult wraps rendered text in a successful result.
func TextResult(text string) *Result {
	return &Result{Text: text}
}

// ErrorResult wraps a failure message in an error result.
func ErrorResult(message string) *Result {
	return &Result{Text: message, IsError: true}
}
