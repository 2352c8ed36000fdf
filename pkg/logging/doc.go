// Package logging provides the subsystem-tagged structured logger used across
// notebridge.
//
// The package wraps Go's log/slog. Every entry carries a subsystem attribute
// so output can be filtered per component:
//
//	logging.Init(logging.LevelInfo, logging.FormatText, os.Stderr)
//
//	logging.Info("Bootstrap", "Loaded configuration from %s", path)
//	logging.Debug("Dispatch", "Calling tool %s", name)
//	logging.Error("Workspace", err, "Request to %s failed", endpoint)
//
// # Subsystems
//
//   - Bootstrap: configuration loading and startup
//   - Server: MCP transport lifecycle
//   - Dispatch: tool routing and result normalization
//   - Workspace: HTTP calls to the note-taking workspace
//   - Handlers: individual tool implementations
//
// # Logger interface
//
// Components that receive their dependencies explicitly (the tool execution
// context in particular) take a Logger instead of calling package functions:
//
//	ec := tools.NewExecutionContext(client, cfg, logging.ForSubsystem("Handlers"))
//
// # Output
//
// When the MCP server runs on the stdio transport, stdout carries protocol
// frames, so logs must be written to stderr or a file. Init never writes to
// stdout on its own.
//
// Logging is safe for concurrent use. Calls made before Init only surface
// warnings and errors, on stderr.
package logging
