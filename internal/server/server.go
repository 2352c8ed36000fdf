package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"notebridge/internal/config"
	"notebridge/internal/dispatch"
	"notebridge/pkg/logging"
)

// shutdownTimeout bounds graceful shutdown of the HTTP transports.
const shutdownTimeout = 5 * time.Second

// Calls for tools the router does not know are redirected to unknownToolName
// before mcp-go looks the tool up, so they still get an error envelope. The
// requested name travels in the request _meta under requestedToolKey.
// unknownToolName is never listed.
const (
	unknownToolName  = "notebridge.unknown-tool"
	requestedToolKey = "notebridge/requestedTool"
)

// Server exposes a dispatch router over MCP.
type Server struct {
	cfg       config.ServerConfig
	router    *dispatch.Router
	mcpServer *mcpserver.MCPServer

	stdin  io.Reader
	stdout io.Writer
}

// Option configures a Server.
type Option func(*Server)

// WithStdio overrides the streams used by the stdio transport.
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(s *Server) {
		s.stdin = in
		s.stdout = out
	}
}

// New creates the MCP server and registers every tool and prompt the router
// knows about.
func New(cfg config.ServerConfig, version string, router *dispatch.Router, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		router: router,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	hooks := &mcpserver.Hooks{}
	hooks.AddBeforeCallTool(s.redirectUnknownTool)

	s.mcpServer = mcpserver.NewMCPServer(
		cfg.Name,
		version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithPromptCapabilities(false),
		mcpserver.WithRecovery(),
		mcpserver.WithHooks(hooks),
		mcpserver.WithToolFilter(hideUnknownTool),
	)

	for _, tool := range router.Tools() {
		s.mcpServer.AddTool(tool, s.handleCallTool)
	}
	s.mcpServer.AddTool(mcp.Tool{
		Name:        unknownToolName,
		InputSchema: mcp.ToolInputSchema{Type: "object"},
	}, s.handleUnknownTool)

	prompts := router.ListPrompts(context.Background()).Prompts
	for _, prompt := range prompts {
		s.mcpServer.AddPrompt(prompt, s.handleGetPrompt)
	}

	logging.Debug("Server", "Registered %d tools and %d prompts", len(router.Tools()), len(prompts))
	return s
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

func (s *Server) handleCallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.router.CallTool(ctx, req.Params.Name, req.GetArguments()), nil
}

// redirectUnknownTool points calls for unregistered names at unknownToolName.
func (s *Server) redirectUnknownTool(ctx context.Context, id any, req *mcp.CallToolRequest) {
	if _, ok := s.router.Registry().Get(req.Params.Name); ok {
		return
	}
	if req.Params.Meta == nil {
		req.Params.Meta = &mcp.Meta{}
	}
	if req.Params.Meta.AdditionalFields == nil {
		req.Params.Meta.AdditionalFields = map[string]any{}
	}
	req.Params.Meta.AdditionalFields[requestedToolKey] = req.Params.Name
	req.Params.Name = unknownToolName
}

func (s *Server) handleUnknownTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.Params.Name
	if req.Params.Meta != nil {
		if requested, ok := req.Params.Meta.AdditionalFields[requestedToolKey].(string); ok {
			name = requested
		}
	}
	return s.router.CallTool(ctx, name, req.GetArguments()), nil
}

func hideUnknownTool(ctx context.Context, tools []mcp.Tool) []mcp.Tool {
	visible := make([]mcp.Tool, 0, len(tools))
	for _, tool := range tools {
		if tool.Name != unknownToolName {
			visible = append(visible, tool)
		}
	}
	return visible
}

func (s *Server) handleGetPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return s.router.GetPrompt(ctx, req.Params.Name, req.Params.Arguments)
}

// Serve runs the configured transport until ctx is cancelled. A cancelled
// context is a clean shutdown and returns nil.
func (s *Server) Serve(ctx context.Context) error {
	switch s.cfg.Transport {
	case config.TransportStdio, "":
		return s.serveStdio(ctx)

	case config.TransportStreamableHTTP:
		addr := s.cfg.Address()
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcpServer)
		return serveHTTP(ctx, "streamable-http", func() error { return httpServer.Start(addr) }, httpServer.Shutdown)

	case config.TransportSSE:
		addr := s.cfg.Address()
		logging.Info("Server", "Starting MCP server with SSE transport on %s", addr)
		sseServer := mcpserver.NewSSEServer(
			s.mcpServer,
			mcpserver.WithBaseURL("http://"+addr),
			mcpserver.WithSSEEndpoint("/sse"),
			mcpserver.WithMessageEndpoint("/message"),
			mcpserver.WithKeepAlive(true),
			mcpserver.WithKeepAliveInterval(30*time.Second),
		)
		return serveHTTP(ctx, "sse", func() error { return sseServer.Start(addr) }, sseServer.Shutdown)

	default:
		return fmt.Errorf("unsupported transport %q", s.cfg.Transport)
	}
}

func (s *Server) serveStdio(ctx context.Context) error {
	logging.Info("Server", "Starting MCP server with stdio transport")

	stdioServer := mcpserver.NewStdioServer(s.mcpServer)
	stdioServer.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))

	err := stdioServer.Listen(ctx, s.stdin, s.stdout)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("stdio transport failed: %w", err)
	}
	return nil
}

// serveHTTP runs start in the background and shuts it down when ctx ends.
func serveHTTP(ctx context.Context, name string, start func() error, shutdown func(context.Context) error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s transport failed: %w", name, err)
		}
		return nil

	case <-ctx.Done():
		logging.Info("Server", "Stopping %s transport", name)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down %s transport", name)
			return fmt.Errorf("failed to shut down %s transport: %w", name, err)
		}
		return nil
	}
}
