// Package app provides application bootstrap and lifecycle management for
// notebridge.
//
// # Bootstrap
//
// NewApplication performs the startup sequence in dependency order:
//
//  1. Initialize logging to stderr (stdout belongs to the stdio transport)
//  2. Load configuration from --config-path or ~/.config/notebridge
//  3. Apply command-line overrides and validate
//  4. Re-initialize logging with the configured level and format
//  5. Build the workspace client, execution context, registry, prompt
//     catalog, router and MCP server (see InitializeServices)
//
// Any failure here is fatal. Nothing after bootstrap is.
//
// # Running
//
// Run serves the configured transport until the context is cancelled or
// SIGINT/SIGTERM arrives. When started by systemd with Type=notify, readiness
// and stopping are reported through sd_notify.
//
// Commands that only need the router (tools, prompts, console) call
// NewApplication with Silent set and use Router without calling Run.
package app
