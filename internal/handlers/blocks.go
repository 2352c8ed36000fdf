package handlers

import (
	"context"
	"fmt"

	"notebridge/internal/tools"
	"notebridge/internal/workspace"
)

type getBlockHandler struct{ tools.Definition }

func newGetBlockHandler() tools.Handler {
	return getBlockHandler{tools.Definition{
		Name:        "get_block",
		Description: "Get the kramdown source of a block.",
		ReadOnly:    true,
		Params:      []tools.Param{idParam("Block ID")},
	}}
}

func (getBlockHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	id, err := tools.Args(args).String("id")
	if err != nil {
		return nil, err
	}
	return ec.Workspace().GetBlock(ctx, id)
}

type getChildBlocksHandler struct{ tools.Definition }

func newGetChildBlocksHandler() tools.Handler {
	return getChildBlocksHandler{tools.Definition{
		Name:        "get_child_blocks",
		Description: "List the direct children of a document or container block.",
		ReadOnly:    true,
		Params:      []tools.Param{idParam("Parent block or document ID")},
	}}
}

func (getChildBlocksHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	id, err := tools.Args(args).String("id")
	if err != nil {
		return nil, err
	}
	return ec.Workspace().GetChildBlocks(ctx, id)
}

type updateBlockHandler struct{ tools.Definition }

func newUpdateBlockHandler() tools.Handler {
	return updateBlockHandler{tools.Definition{
		Name:        "update_block",
		Description: "Replace the content of a block with markdown.",
		Params:      []tools.Param{idParam("Block ID"), markdownParam(true)},
	}}
}

func (updateBlockHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	id, markdown, err := idAndMarkdown(args)
	if err != nil {
		return nil, err
	}
	return ec.Workspace().UpdateBlock(ctx, id, markdown)
}

type appendBlockHandler struct{ tools.Definition }

func newAppendBlockHandler() tools.Handler {
	return appendBlockHandler{tools.Definition{
		Name:        "append_block",
		Description: "Insert markdown as the last child of a block or document.",
		Params: []tools.Param{
			{Name: "parent_id", Type: "string", Required: true, Description: "Parent block or document ID"},
			markdownParam(true),
		},
	}}
}

func (appendBlockHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	parentID, markdown, err := parentAndMarkdown(args)
	if err != nil {
		return nil, err
	}
	return ec.Workspace().AppendBlock(ctx, parentID, markdown)
}

type prependBlockHandler struct{ tools.Definition }

func newPrependBlockHandler() tools.Handler {
	return prependBlockHandler{tools.Definition{
		Name:        "prepend_block",
		Description: "Insert markdown as the first child of a block or document.",
		Params: []tools.Param{
			{Name: "parent_id", Type: "string", Required: true, Description: "Parent block or document ID"},
			markdownParam(true),
		},
	}}
}

func (prependBlockHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	parentID, markdown, err := parentAndMarkdown(args)
	if err != nil {
		return nil, err
	}
	return ec.Workspace().PrependBlock(ctx, parentID, markdown)
}

type insertBlockHandler struct{ tools.Definition }

func newInsertBlockHandler() tools.Handler {
	return insertBlockHandler{tools.Definition{
		Name:        "insert_block",
		Description: "Insert markdown relative to an anchor. Give exactly one of previous_id, next_id or parent_id.",
		Params: []tools.Param{
			markdownParam(true),
			{Name: "previous_id", Type: "string", Description: "Insert after this block"},
			{Name: "next_id", Type: "string", Description: "Insert before this block"},
			{Name: "parent_id", Type: "string", Description: "Insert as first child of this block"},
		},
	}}
}

func (insertBlockHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	a := tools.Args(args)
	markdown, err := a.String("markdown")
	if err != nil {
		return nil, err
	}
	anchor, err := blockAnchor(a, "previous_id", "next_id", "parent_id")
	if err != nil {
		return nil, err
	}
	return ec.Workspace().InsertBlock(ctx, anchor, markdown)
}

type moveBlockHandler struct{ tools.Definition }

func newMoveBlockHandler() tools.Handler {
	return moveBlockHandler{tools.Definition{
		Name:        "move_block",
		Description: "Move a block after another block or under a new parent. Give exactly one of previous_id or parent_id.",
		Params: []tools.Param{
			idParam("Block ID"),
			{Name: "previous_id", Type: "string", Description: "Move after this block"},
			{Name: "parent_id", Type: "string", Description: "Move to be the first child of this block"},
		},
	}}
}

func (moveBlockHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	a := tools.Args(args)
	id, err := a.String("id")
	if err != nil {
		return nil, err
	}
	anchor, err := blockAnchor(a, "previous_id", "parent_id")
	if err != nil {
		return nil, err
	}
	if anchor.PreviousID == id || anchor.ParentID == id {
		return nil, fmt.Errorf("cannot move block %s relative to itself", id)
	}
	return nil, ec.Workspace().MoveBlock(ctx, id, anchor)
}

type deleteBlockHandler struct{ tools.Definition }

func newDeleteBlockHandler() tools.Handler {
	return deleteBlockHandler{tools.Definition{
		Name:        "delete_block",
		Description: "Delete a block and its children.",
		Params:      []tools.Param{idParam("Block ID")},
	}}
}

func (deleteBlockHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	id, err := tools.Args(args).String("id")
	if err != nil {
		return nil, err
	}
	return nil, ec.Workspace().DeleteBlock(ctx, id)
}

func parentAndMarkdown(args map[string]interface{}) (string, string, error) {
	a := tools.Args(args)
	parentID, err := a.String("parent_id")
	if err != nil {
		return "", "", err
	}
	markdown, err := a.String("markdown")
	if err != nil {
		return "", "", err
	}
	return parentID, markdown, nil
}

// blockAnchor requires exactly one of keys and maps it onto an anchor.
func blockAnchor(a tools.Args, keys ...string) (workspace.BlockAnchor, error) {
	key, err := a.ExactlyOne(keys...)
	if err != nil {
		return workspace.BlockAnchor{}, err
	}
	value, err := a.String(key)
	if err != nil {
		return workspace.BlockAnchor{}, err
	}

	var anchor workspace.BlockAnchor
	switch key {
	case "previous_id":
		anchor.PreviousID = value
	case "next_id":
		anchor.NextID = value
	case "parent_id":
		anchor.ParentID = value
	}
	return anchor, nil
}
