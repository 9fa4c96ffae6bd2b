package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cr7ritesh/adventure-engine/logging"
)

const (
	serverName = "AdventureEngine"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TurnController is the subset of engine operations the tool surface exposes.
type TurnController interface {
	Start(ctx context.Context, userID string) (string, error)
	Choose(ctx context.Context, userID, choice string) (string, error)
	Status(userID string) (string, error)
	Reset(userID string) (string, error)
}

// Options holds dependency overrides passed to New().
type Options struct {
	// Logger receives structured server logs.
	Logger logging.Logger
}

// Server wires the turn controller into an MCP server instance.
type Server struct {
	mcpServer  *mcp.Server
	controller TurnController
	callerID   string
	authToken  string
	logger     logging.Logger
}

// New creates a configured MCP server exposing the adventure tools.
// callerID is the fixed identity string returned by the validate tool;
// authToken guards the HTTP transport.
func New(controller TurnController, callerID, authToken string, optFns ...func(o *Options)) *Server {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Server{
		controller: controller,
		callerID:   callerID,
		authToken:  authToken,
		logger:     opts.Logger,
	}
	s.mcpServer = mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	s.registerTools()
	return s
}

// RunStdio serves the tool surface over stdio until ctx is canceled.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
