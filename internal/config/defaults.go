package config

import (
	"net"
	"strconv"
	"time"
)

const (
	// DefaultWorkspaceURL is where a locally running workspace listens by default.
	DefaultWorkspaceURL = "http://127.0.0.1:6806"

	// DefaultRequestTimeout bounds every workspace API call.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultServerName is advertised to MCP clients.
	DefaultServerName = "notebridge"

	// DefaultPort is used by the HTTP transports.
	DefaultPort = 8091
)

// GetDefaultConfig returns the configuration used when no file is present.
func GetDefaultConfig() Config {
	return Config{
		Workspace: WorkspaceConfig{
			URL:     DefaultWorkspaceURL,
			Timeout: DefaultRequestTimeout,
		},
		Server: ServerConfig{
			Name:      DefaultServerName,
			Transport: TransportStdio,
			Host:      "localhost",
			Port:      DefaultPort,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
