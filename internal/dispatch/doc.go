// Package dispatch routes MCP list and call requests to the tool registry.
//
// The Router is the only place where handler outcomes are turned into
// protocol responses. Whatever a handler does (returns a value, returns an
// error, panics) the caller receives a CallToolResult with a single text
// item, and the serving process keeps running:
//
//   - nil result: "Success"
//   - string result: the string, verbatim
//   - any other result: indented JSON
//   - error or panic: "Error: <message>" with IsError set
//
// Calls to unknown tools produce the same error envelope. Unknown prompts,
// by contrast, are returned as Go errors so the MCP layer can answer with a
// JSON-RPC error.
//
// The Router also owns the prompt catalog: a fixed set of guidance documents
// rendered from templates at request time.
package dispatch
