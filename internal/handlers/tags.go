package handlers

import (
	"context"
	"fmt"
	"strings"

	"notebridge/internal/tools"
)

type listTagsHandler struct{ tools.Definition }

func newListTagsHandler() tools.Handler {
	return listTagsHandler{tools.Definition{
		Name:        "list_tags",
		Description: "List all tags as a tree with usage counts.",
		ReadOnly:    true,
	}}
}

func (listTagsHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	return ec.Workspace().ListTags(ctx)
}

type replaceTagHandler struct{ tools.Definition }

func newReplaceTagHandler() tools.Handler {
	return replaceTagHandler{tools.Definition{
		Name:        "replace_tag",
		Description: "Rename a tag everywhere it is used.",
		Params: []tools.Param{
			{Name: "old", Type: "string", Required: true, Description: "Current tag label, without # marks"},
			{Name: "new", Type: "string", Required: true, Description: "New tag label, without # marks"},
		},
	}}
}

func (replaceTagHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	a := tools.Args(args)
	oldLabel, err := a.String("old")
	if err != nil {
		return nil, err
	}
	newLabel, err := a.String("new")
	if err != nil {
		return nil, err
	}
	oldLabel, newLabel = trimTag(oldLabel), trimTag(newLabel)
	if oldLabel == newLabel {
		return nil, fmt.Errorf("old and new tag are the same: %s", oldLabel)
	}
	return nil, ec.Workspace().ReplaceTag(ctx, oldLabel, newLabel)
}

func trimTag(label string) string {
	return strings.Trim(strings.TrimSpace(label), "#")
}
