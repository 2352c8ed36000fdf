package workspace

import (
	"context"
	"fmt"
)

// GetDocument exports a document as markdown.
func (c *Client) GetDocument(ctx context.Context, id string) (*Document, error) {
	var data struct {
		HPath   string `json:"hPath"`
		Content string `json:"content"`
	}
	if err := c.post(ctx, "/api/export/exportMdContent", map[string]string{"id": id}, &data); err != nil {
		return nil, err
	}
	return &Document{ID: id, HPath: data.HPath, Content: data.Content}, nil
}

// GetDocumentIDByPath resolves a human-readable path inside a notebook to a
// document ID. It returns ErrNotFound when no document lives at path.
func (c *Client) GetDocumentIDByPath(ctx context.Context, notebook, path string) (string, error) {
	var ids []string
	payload := map[string]string{"notebook": notebook, "path": path}
	if err := c.post(ctx, "/api/filetree/getIDsByHPath", payload, &ids); err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("document %s in notebook %s: %w", path, notebook, ErrNotFound)
	}
	return ids[0], nil
}

// CreateDocument creates a document from markdown and returns its ID.
func (c *Client) CreateDocument(ctx context.Context, notebook, path, markdown string) (string, error) {
	var id string
	payload := map[string]string{"notebook": notebook, "path": path, "markdown": markdown}
	if err := c.post(ctx, "/api/filetree/createDocWithMd", payload, &id); err != nil {
		return "", err
	}
	return id, nil
}

// UpdateDocument replaces the content of the document block with markdown.
func (c *Client) UpdateDocument(ctx context.Context, id, markdown string) ([]Operation, error) {
	return c.UpdateBlock(ctx, id, markdown)
}

// AppendToDocument appends markdown as new blocks at the end of a document.
func (c *Client) AppendToDocument(ctx context.Context, id, markdown string) ([]Operation, error) {
	return c.AppendBlock(ctx, id, markdown)
}

// OverwriteDocument deletes every top-level block of a document and appends
// markdown in their place. The document keeps its ID and attributes.
func (c *Client) OverwriteDocument(ctx context.Context, id, markdown string) ([]Operation, error) {
	children, err := c.GetChildBlocks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks of document %s: %w", id, err)
	}
	for i, child := range children {
		if err := c.DeleteBlock(ctx, child.ID); err != nil {
			return nil, fmt.Errorf("failed to clear block %s of document %s after removing %d of %d blocks, the document is partly cleared: %w",
				child.ID, id, i, len(children), err)
		}
	}
	return c.AppendBlock(ctx, id, markdown)
}

// MoveDocuments moves documents under a notebook or another document.
func (c *Client) MoveDocuments(ctx context.Context, fromIDs []string, toID string) error {
	payload := map[string]interface{}{"fromIDs": fromIDs, "toID": toID}
	return c.post(ctx, "/api/filetree/moveDocsByID", payload, nil)
}

// RenameDocument changes a document's title.
func (c *Client) RenameDocument(ctx context.Context, id, title string) error {
	return c.post(ctx, "/api/filetree/renameDocByID", map[string]string{"id": id, "title": title}, nil)
}

// RemoveDocument deletes a document and its children.
func (c *Client) RemoveDocument(ctx context.Context, id string) error {
	return c.post(ctx, "/api/filetree/removeDocByID", map[string]string{"id": id}, nil)
}
