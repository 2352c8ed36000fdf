// Package handlers implements the workspace tools exposed over MCP.
//
// Each tool is a small type embedding tools.Definition. Handlers only
// validate arguments and delegate to the workspace client carried by the
// execution context; they hold no state of their own.
package handlers
