package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handler is the contract every tool implements.
type Handler interface {
	// Descriptor returns the tool's advertised identity and input shape.
	Descriptor() Descriptor

	// Execute runs the tool. args is never nil. A nil result means success
	// without output; strings are returned to the caller verbatim; anything
	// else is serialized as JSON.
	Execute(ctx context.Context, args map[string]interface{}, ec *ExecutionContext) (interface{}, error)
}

// Descriptor is the data-only part of a tool.
type Descriptor struct {
	Name        string
	Description string
	InputSchema mcp.ToolInputSchema
	// ReadOnly is advertised as a hint; dispatch treats all tools alike.
	ReadOnly bool
}

// Tool converts the descriptor into its MCP representation.
func (d Descriptor) Tool() mcp.Tool {
	tool := mcp.Tool{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: d.InputSchema,
	}
	tool.Annotations.ReadOnlyHint = mcp.ToBoolPtr(d.ReadOnly)
	tool.Annotations.DestructiveHint = mcp.ToBoolPtr(!d.ReadOnly)
	return tool
}

// Param describes one tool argument.
type Param struct {
	Name        string
	Type        string // "string", "number", "integer", "boolean", "object", "array"
	Required    bool
	Description string
	Default     interface{}
	// Items is the element schema for arrays, e.g. {"type": "string"}.
	Items map[string]interface{}
	Enum  []string
}

// Definition is the reusable descriptor part of a handler. Handlers embed it
// and only add Execute.
type Definition struct {
	Name        string
	Description string
	Params      []Param
	ReadOnly    bool
}

// Descriptor implements Handler.
func (d Definition) Descriptor() Descriptor {
	return Descriptor{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: BuildInputSchema(d.Params),
		ReadOnly:    d.ReadOnly,
	}
}

// BuildInputSchema converts argument metadata into an MCP input schema.
// Properties keep their declared types; required names keep declaration order.
func BuildInputSchema(params []Param) mcp.ToolInputSchema {
	properties := make(map[string]interface{}, len(params))
	required := []string{}

	for _, param := range params {
		prop := map[string]interface{}{
			"type": param.Type,
		}
		if param.Description != "" {
			prop["description"] = param.Description
		}
		if param.Default != nil {
			prop["default"] = param.Default
		}
		if param.Type == "array" {
			items := param.Items
			if items == nil {
				items = map[string]interface{}{"type": "string"}
			}
			prop["items"] = items
		}
		if len(param.Enum) > 0 {
			prop["enum"] = param.Enum
		}

		properties[param.Name] = prop

		if param.Required {
			required = append(required, param.Name)
		}
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// ExecuteFunc is the signature of a handler's Execute method.
type ExecuteFunc func(ctx context.Context, args map[string]interface{}, ec *ExecutionContext) (interface{}, error)

// funcHandler adapts a Definition and a function into a Handler.
type funcHandler struct {
	Definition
	fn ExecuteFunc
}

// NewFunc builds a Handler from a definition and an execute function.
func NewFunc(def Definition, fn ExecuteFunc) Handler {
	return funcHandler{Definition: def, fn: fn}
}

func (h funcHandler) Execute(ctx context.Context, args map[string]interface{}, ec *ExecutionContext) (interface{}, error) {
	return h.fn(ctx, args, ec)
}
