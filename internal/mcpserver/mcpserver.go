package mcpserver

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers the mood tools and prompts.
type Server struct {
	server *mcp.Server
	logger *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used by tool handlers. stdout carries the
// protocol, so the logger must write elsewhere.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new MCP server with all mood tools registered.
func NewServer(version string, opts ...Option) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "mood",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerPrompts()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds the analyzer tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_mood",
		Description: describeMood(),
	}, s.handleAnalyzeMood)
}
