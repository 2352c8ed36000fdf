// Package server mounts the dispatch router on an MCP server and runs it over
// the configured transport.
//
// Every registered tool becomes an MCP tool whose handler forwards to
// Router.CallTool, and every catalog prompt becomes an MCP prompt whose
// handler forwards to Router.GetPrompt. The server itself holds no tool
// logic.
//
// Three transports are supported:
//
//   - stdio: JSON-RPC over the process's stdin and stdout (default)
//   - streamable-http: the MCP streamable HTTP transport on host:port, path /mcp
//   - sse: the legacy SSE transport on host:port, paths /sse and /message
//
// Serve blocks until the context is cancelled or the transport fails.
package server
