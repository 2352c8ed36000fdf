package handlers

import (
	"context"
	"fmt"

	"notebridge/internal/tools"
)

type getDocumentHandler struct{ tools.Definition }

func newGetDocumentHandler() tools.Handler {
	return getDocumentHandler{tools.Definition{
		Name:        "get_document",
		Description: "Get a document as markdown, either by ID or by human-readable path within a notebook.",
		ReadOnly:    true,
		Params: []tools.Param{
			{Name: "id", Type: "string", Description: "Document ID. Mutually exclusive with path"},
			{Name: "path", Type: "string", Description: "Human-readable path such as /Projects/Plan. Requires notebook"},
			{Name: "notebook", Type: "string", Description: "Notebook ID, used with path"},
		},
	}}
}

func (getDocumentHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	a := tools.Args(args)

	which, err := a.ExactlyOne("id", "path")
	if err != nil {
		return nil, err
	}

	var id string
	if which == "id" {
		if id, err = a.String("id"); err != nil {
			return nil, err
		}
	} else {
		path, err := a.String("path")
		if err != nil {
			return nil, err
		}
		notebook, err := a.String("notebook")
		if err != nil {
			return nil, fmt.Errorf("path requires notebook: %w", err)
		}
		if id, err = ec.Workspace().GetDocumentIDByPath(ctx, notebook, path); err != nil {
			return nil, err
		}
	}

	return ec.Workspace().GetDocument(ctx, id)
}

type createDocumentHandler struct{ tools.Definition }

func newCreateDocumentHandler() tools.Handler {
	return createDocumentHandler{tools.Definition{
		Name:        "create_document",
		Description: "Create a document at a human-readable path in a notebook. Missing parent documents are created.",
		Params: []tools.Param{
			{Name: "notebook", Type: "string", Required: true, Description: "Notebook ID"},
			{Name: "path", Type: "string", Required: true, Description: "Human-readable path such as /Projects/Plan"},
			markdownParam(false),
		},
	}}
}

func (createDocumentHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	a := tools.Args(args)
	notebook, err := a.String("notebook")
	if err != nil {
		return nil, err
	}
	path, err := a.String("path")
	if err != nil {
		return nil, err
	}
	markdown, err := a.OptionalString("markdown")
	if err != nil {
		return nil, err
	}

	id, err := ec.Workspace().CreateDocument(ctx, notebook, path, markdown)
	if err != nil {
		return nil, err
	}
	return map[string]string{"id": id}, nil
}

type updateDocumentHandler struct{ tools.Definition }

func newUpdateDocumentHandler() tools.Handler {
	return updateDocumentHandler{tools.Definition{
		Name:        "update_document",
		Description: "Replace the content of a document block with markdown.",
		Params:      []tools.Param{idParam("Document ID"), markdownParam(true)},
	}}
}

func (updateDocumentHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	id, markdown, err := idAndMarkdown(args)
	if err != nil {
		return nil, err
	}
	return ec.Workspace().UpdateDocument(ctx, id, markdown)
}

type appendToDocumentHandler struct{ tools.Definition }

func newAppendToDocumentHandler() tools.Handler {
	return appendToDocumentHandler{tools.Definition{
		Name:        "append_to_document",
		Description: "Append markdown to the end of a document.",
		Params:      []tools.Param{idParam("Document ID"), markdownParam(true)},
	}}
}

func (appendToDocumentHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	id, markdown, err := idAndMarkdown(args)
	if err != nil {
		return nil, err
	}
	return ec.Workspace().AppendToDocument(ctx, id, markdown)
}

type overwriteDocumentHandler struct{ tools.Definition }

func newOverwriteDocumentHandler() tools.Handler {
	return overwriteDocumentHandler{tools.Definition{
		Name:        "overwrite_document",
		Description: "Delete every block of a document and replace them with markdown. Create a snapshot first.",
		Params:      []tools.Param{idParam("Document ID"), markdownParam(true)},
	}}
}

func (overwriteDocumentHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	id, markdown, err := idAndMarkdown(args)
	if err != nil {
		return nil, err
	}
	ec.Logger().Info(fmt.Sprintf("Overwriting document %s", id))
	return ec.Workspace().OverwriteDocument(ctx, id, markdown)
}

type moveDocumentsHandler struct{ tools.Definition }

func newMoveDocumentsHandler() tools.Handler {
	return moveDocumentsHandler{tools.Definition{
		Name:        "move_documents",
		Description: "Move documents under another document or to the root of a notebook.",
		Params: []tools.Param{
			{Name: "from_ids", Type: "array", Required: true, Description: "IDs of the documents to move"},
			{Name: "to_id", Type: "string", Required: true, Description: "Target document or notebook ID"},
		},
	}}
}

func (moveDocumentsHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	a := tools.Args(args)
	fromIDs, err := a.StringSlice("from_ids")
	if err != nil {
		return nil, err
	}
	if len(fromIDs) == 0 {
		return nil, fmt.Errorf("missing required argument: from_ids")
	}
	toID, err := a.String("to_id")
	if err != nil {
		return nil, err
	}
	return nil, ec.Workspace().MoveDocuments(ctx, fromIDs, toID)
}

type renameDocumentHandler struct{ tools.Definition }

func newRenameDocumentHandler() tools.Handler {
	return renameDocumentHandler{tools.Definition{
		Name:        "rename_document",
		Description: "Change the title of a document.",
		Params: []tools.Param{
			idParam("Document ID"),
			{Name: "title", Type: "string", Required: true, Description: "New title"},
		},
	}}
}

func (renameDocumentHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	a := tools.Args(args)
	id, err := a.String("id")
	if err != nil {
		return nil, err
	}
	title, err := a.String("title")
	if err != nil {
		return nil, err
	}
	return nil, ec.Workspace().RenameDocument(ctx, id, title)
}

type removeDocumentHandler struct{ tools.Definition }

func newRemoveDocumentHandler() tools.Handler {
	return removeDocumentHandler{tools.Definition{
		Name:        "remove_document",
		Description: "Delete a document and its child documents.",
		Params:      []tools.Param{idParam("Document ID")},
	}}
}

func (removeDocumentHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	id, err := tools.Args(args).String("id")
	if err != nil {
		return nil, err
	}
	ec.Logger().Info(fmt.Sprintf("Removing document %s", id))
	return nil, ec.Workspace().RemoveDocument(ctx, id)
}

func idAndMarkdown(args map[string]interface{}) (string, string, error) {
	a := tools.Args(args)
	id, err := a.String("id")
	if err != nil {
		return "", "", err
	}
	markdown, err := a.String("markdown")
	if err != nil {
		return "", "", err
	}
	return id, markdown, nil
}
