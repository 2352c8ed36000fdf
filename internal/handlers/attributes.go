package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"notebridge/internal/tools"
)

const customAttributePrefix = "custom-"

// Built-in attributes that may be set without the custom prefix.
var builtinAttributes = map[string]bool{
	"name":     true,
	"alias":    true,
	"memo":     true,
	"bookmark": true,
}

type getBlockAttributesHandler struct{ tools.Definition }

func newGetBlockAttributesHandler() tools.Handler {
	return getBlockAttributesHandler{tools.Definition{
		Name:        "get_block_attributes",
		Description: "Get all attributes of a block, including custom- attributes.",
		ReadOnly:    true,
		Params:      []tools.Param{idParam("Block ID")},
	}}
}

func (getBlockAttributesHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	id, err := tools.Args(args).String("id")
	if err != nil {
		return nil, err
	}
	return ec.Workspace().GetBlockAttributes(ctx, id)
}

type setBlockAttributesHandler struct{ tools.Definition }

func newSetBlockAttributesHandler() tools.Handler {
	return setBlockAttributesHandler{tools.Definition{
		Name:        "set_block_attributes",
		Description: "Set attributes on a block. Keys must start with custom- unless they are name, alias, memo or bookmark. An empty value removes the attribute.",
		Params: []tools.Param{
			idParam("Block ID"),
			{Name: "attrs", Type: "object", Required: true, Description: "Attribute names mapped to string values"},
		},
	}}
}

func (setBlockAttributesHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	a := tools.Args(args)
	id, err := a.String("id")
	if err != nil {
		return nil, err
	}
	attrs, err := a.StringMap("attrs")
	if err != nil {
		return nil, err
	}
	if len(attrs) == 0 {
		return nil, fmt.Errorf("missing required argument: attrs")
	}
	if err := validateAttributeNames(attrs); err != nil {
		return nil, err
	}
	return nil, ec.Workspace().SetBlockAttributes(ctx, id, attrs)
}

func validateAttributeNames(attrs map[string]string) error {
	var invalid []string
	for name := range attrs {
		if builtinAttributes[name] {
			continue
		}
		if !strings.HasPrefix(name, customAttributePrefix) || len(name) == len(customAttributePrefix) {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return fmt.Errorf("attribute names must start with %q: %s", customAttributePrefix, strings.Join(invalid, ", "))
	}
	return nil
}
