package config

import "time"

// Transport names accepted in server.transport.
const (
	// TransportStdio serves MCP over stdin/stdout.
	TransportStdio = "stdio"
	// TransportStreamableHTTP is the streamable HTTP transport.
	TransportStreamableHTTP = "streamable-http"
	// TransportSSE is the Server-Sent Events transport.
	TransportSSE = "sse"
)

// Config is the top-level configuration structure for notebridge.
// It is loaded once at startup and treated as immutable afterwards.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WorkspaceConfig describes how to reach the note-taking workspace API.
type WorkspaceConfig struct {
	URL     string        `yaml:"url"`             // Base URL of the workspace (default: http://127.0.0.1:6806)
	Token   string        `yaml:"token,omitempty"` // API token sent as "Authorization: Token <token>"
	Timeout time.Duration `yaml:"timeout"`         // Per-request timeout (default: 30s)
}

// ServerConfig defines how the MCP server is exposed.
type ServerConfig struct {
	Name      string `yaml:"name"`           // Server name advertised during MCP initialization
	Transport string `yaml:"transport"`      // stdio, streamable-http or sse (default: stdio)
	Host      string `yaml:"host,omitempty"` // Host to bind HTTP transports to (default: localhost)
	Port      int    `yaml:"port,omitempty"` // Port for HTTP transports (default: 8091)
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Address returns host:port for HTTP transports.
func (s ServerConfig) Address() string {
	return joinHostPort(s.Host, s.Port)
}
