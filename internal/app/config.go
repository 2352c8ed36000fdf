package app

import (
	"io"

	"notebridge/internal/config"
)

// Config holds the application runtime settings collected from the command line.
type Config struct {
	// Debug forces debug logging regardless of the configured level.
	Debug bool

	// Silent discards all log output.
	Silent bool

	// ConfigPath is the directory holding config.yaml. Empty means the
	// user configuration directory.
	ConfigPath string

	// Transport overrides server.transport when set.
	Transport string

	// Version is advertised to MCP clients.
	Version string

	// Stdin and Stdout are used by the stdio transport. Nil means the
	// process streams.
	Stdin  io.Reader
	Stdout io.Writer

	// Settings is the loaded configuration. When pre-populated, loading
	// from disk is skipped.
	Settings *config.Config
}

// NewConfig creates a new application configuration.
func NewConfig(debug bool, configPath, transport, version string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
		Transport:  transport,
		Version:    version,
	}
}
