package server

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cr7ritesh/adventure-engine/logging"
)

// ValidateInput is the (empty) input of the validate tool.
type ValidateInput struct{}

// StartAdventureInput identifies the player starting an adventure.
type StartAdventureInput struct {
	UserID string `json:"user_id" jsonschema:"unique identifier of the player"`
}

// MakeChoiceInput carries the player's next action.
type MakeChoiceInput struct {
	UserID string `json:"user_id" jsonschema:"unique identifier of the player"`
	Choice string `json:"choice" jsonschema:"the choice or free-form action the player takes next"`
}

// ShowStatusInput identifies the player whose inventory is requested.
type ShowStatusInput struct {
	UserID string `json:"user_id" jsonschema:"unique identifier of the player"`
}

// ResetAdventureInput identifies the player whose adventure is reset.
type ResetAdventureInput struct {
	UserID string `json:"user_id" jsonschema:"unique identifier of the player"`
}

// registerTools binds every tool of the surface to the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "validate",
		Description: "Returns the server's deployment identity. Used by the hosting client to confirm server identity.",
	}, s.validateHandler())

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_adventure",
		Description: "Starts a new adventure for the user or resumes an existing one.",
	}, s.startAdventureHandler())

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "make_choice",
		Description: "Makes a choice in the adventure and progresses the story.",
	}, s.makeChoiceHandler())

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "show_status",
		Description: "Shows the user's current inventory and status.",
	}, s.showStatusHandler())

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_adventure",
		Description: "Resets the user's current adventure, deleting all progress.",
	}, s.resetAdventureHandler())
}

func (s *Server) validateHandler() mcp.ToolHandlerFor[ValidateInput, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ValidateInput) (*mcp.CallToolResult, any, error) {
		return textResult(s.callerID), nil, nil
	}
}

func (s *Server) startAdventureHandler() mcp.ToolHandlerFor[StartAdventureInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StartAdventureInput) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		msg, err := s.controller.Start(ctx, input.UserID)
		s.logCall("start_adventure", start, err)
		if err != nil {
			return nil, nil, err
		}
		return textResult(msg), nil, nil
	}
}

func (s *Server) makeChoiceHandler() mcp.ToolHandlerFor[MakeChoiceInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MakeChoiceInput) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		msg, err := s.controller.Choose(ctx, input.UserID, input.Choice)
		s.logCall("make_choice", start, err)
		if err != nil {
			return nil, nil, err
		}
		return textResult(msg), nil, nil
	}
}

func (s *Server) showStatusHandler() mcp.ToolHandlerFor[ShowStatusInput, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowStatusInput) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		msg, err := s.controller.Status(input.UserID)
		s.logCall("show_status", start, err)
		if err != nil {
			return nil, nil, err
		}
		return textResult(msg), nil, nil
	}
}

func (s *Server) resetAdventureHandler() mcp.ToolHandlerFor[ResetAdventureInput, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ResetAdventureInput) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		msg, err := s.controller.Reset(input.UserID)
		s.logCall("reset_adventure", start, err)
		if err != nil {
			return nil, nil, err
		}
		return textResult(msg), nil, nil
	}
}

// logCall records one tool invocation, upgrading to structured metrics when
// the logger supports them.
func (s *Server) logCall(tool string, start time.Time, err error) {
	dur := time.Since(start)
	if tl, ok := s.logger.(logging.ToolCallLogger); ok {
		tl.LogToolCall(tool, dur, err == nil, err)
		return
	}
	if err != nil {
		s.logger.Error("tool call failed tool=%s duration=%s err=%v", tool, dur, err)
		return
	}
	s.logger.Info("tool call completed tool=%s duration=%s", tool, dur)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
