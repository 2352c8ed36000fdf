package dispatch

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"notebridge/internal/tools"
	"notebridge/pkg/logging"
)

// Router translates protocol requests into handler invocations.
// It is safe for concurrent use once the registry is frozen.
type Router struct {
	registry *tools.Registry
	execCtx  *tools.ExecutionContext
	prompts  *PromptCatalog
	logger   logging.Logger
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLogger replaces the router's log sink.
func WithLogger(logger logging.Logger) RouterOption {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithPrompts attaches a prompt catalog. Without one the router serves no
// prompts.
func WithPrompts(catalog *PromptCatalog) RouterOption {
	return func(r *Router) {
		r.prompts = catalog
	}
}

// NewRouter wires a router to the registry and the shared execution context.
func NewRouter(registry *tools.Registry, execCtx *tools.ExecutionContext, opts ...RouterOption) *Router {
	r := &Router{
		registry: registry,
		execCtx:  execCtx,
		logger:   logging.ForSubsystem("Dispatch"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the router dispatches to.
func (r *Router) Registry() *tools.Registry {
	return r.registry
}

// Tools returns the MCP form of every registered descriptor in registration
// order. The result is never nil.
func (r *Router) Tools() []mcp.Tool {
	descs := r.registry.Descriptors()
	result := make([]mcp.Tool, 0, len(descs))
	for _, d := range descs {
		result = append(result, d.Tool())
	}
	return result
}

// ListTools answers tools/list.
func (r *Router) ListTools(ctx context.Context) *mcp.ListToolsResult {
	return &mcp.ListToolsResult{
		Tools: r.Tools(),
	}
}

// CallTool answers tools/call. It always returns an envelope; failures are
// reported through IsError rather than a Go error.
func (r *Router) CallTool(ctx context.Context, name string, args map[string]interface{}) *mcp.CallToolResult {
	callID := uuid.New().String()
	r.logger.Info(fmt.Sprintf("Calling tool %s (call %s)", name, callID))

	handler, ok := r.registry.Get(name)
	if !ok {
		r.logger.Error(fmt.Sprintf("Tool %s failed (call %s): unknown tool", name, callID))
		return errorEnvelope("unknown tool: " + name)
	}

	if args == nil {
		args = map[string]interface{}{}
	}

	start := time.Now()
	result, err := r.invoke(ctx, name, handler, args)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Tool %s failed (call %s): %v", name, callID, err))
		return errorEnvelope(err.Error())
	}

	text, err := NormalizeResult(result)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Tool %s failed (call %s): %v", name, callID, err))
		return errorEnvelope(err.Error())
	}

	r.logger.Debug(fmt.Sprintf("Tool %s completed (call %s) in %s", name, callID, time.Since(start)))
	return successEnvelope(text)
}

// invoke runs the handler and converts a panic into an error.
func (r *Router) invoke(ctx context.Context, name string, h tools.Handler, args map[string]interface{}) (result interface{}, err error) {
	defer func() {
		if v := recover(); v != nil {
			r.logger.Debug(fmt.Sprintf("Tool %s panic stack:\n%s", name, debug.Stack()))
			result = nil
			err = fmt.Errorf("tool %s panicked: %v", name, v)
		}
	}()
	return h.Execute(ctx, args, r.execCtx)
}

// ListPrompts answers prompts/list.
func (r *Router) ListPrompts(ctx context.Context) *mcp.ListPromptsResult {
	if r.prompts == nil {
		return &mcp.ListPromptsResult{Prompts: []mcp.Prompt{}}
	}
	return &mcp.ListPromptsResult{
		Prompts: r.prompts.List(),
	}
}

// GetPrompt answers prompts/get. Unknown names and missing required
// arguments are returned as errors.
func (r *Router) GetPrompt(ctx context.Context, name string, args map[string]string) (*mcp.GetPromptResult, error) {
	if r.prompts == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrompt, name)
	}
	result, err := r.prompts.Render(name, args)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Prompt %s failed: %v", name, err))
		return nil, err
	}
	return result, nil
}
