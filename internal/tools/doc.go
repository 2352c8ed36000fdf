// Package tools defines the tool handler contract, the registry that holds
// handlers, and the execution context every handler receives.
//
// # Handlers
//
// A Handler is one named, independently invocable operation. It describes
// itself with a Descriptor (name, description, input schema) and does its work
// in Execute:
//
//	type getBlock struct{ tools.Definition }
//
//	func (getBlock) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
//	    id, err := tools.Args(args).String("id")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return ec.Workspace().GetBlock(ctx, id)
//	}
//
// Handlers are created once and shared by every request, so Execute must not
// keep state between calls. Domain failures are returned as errors; the
// dispatch layer turns them into error envelopes.
//
// The input schema is advertised to callers but not enforced here. Handlers
// validate what they read with the Args accessors (String,
// ExactlyOne, ...).
//
// # Registry
//
// Registry maps names to handlers and remembers registration order so tool
// listings are deterministic. Registering a duplicate name fails; MustRegister
// panics instead, which is what startup code uses. Freeze ends the
// registration phase.
//
// # Execution context
//
// ExecutionContext bundles the workspace client, the configuration and a
// logger. It is built once at startup and has no setters.
package tools
