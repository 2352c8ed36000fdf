package workspace

import "context"

const dataTypeMarkdown = "markdown"

// flatten collects the operations of every transaction in order.
func flatten(txs []transaction) []Operation {
	ops := []Operation{}
	for _, tx := range txs {
		ops = append(ops, tx.DoOperations...)
	}
	return ops
}

func (c *Client) mutate(ctx context.Context, endpoint string, payload map[string]string) ([]Operation, error) {
	var txs []transaction
	if err := c.post(ctx, endpoint, payload, &txs); err != nil {
		return nil, err
	}
	return flatten(txs), nil
}

// GetBlock returns the kramdown source of a block.
func (c *Client) GetBlock(ctx context.Context, id string) (*Block, error) {
	var block Block
	if err := c.post(ctx, "/api/block/getBlockKramdown", map[string]string{"id": id}, &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// GetChildBlocks lists the direct children of a block or document.
func (c *Client) GetChildBlocks(ctx context.Context, id string) ([]ChildBlock, error) {
	children := []ChildBlock{}
	if err := c.post(ctx, "/api/block/getChildBlocks", map[string]string{"id": id}, &children); err != nil {
		return nil, err
	}
	return children, nil
}

// UpdateBlock replaces a block's content with markdown.
func (c *Client) UpdateBlock(ctx context.Context, id, markdown string) ([]Operation, error) {
	return c.mutate(ctx, "/api/block/updateBlock", map[string]string{
		"id":       id,
		"dataType": dataTypeMarkdown,
		"data":     markdown,
	})
}

// AppendBlock inserts markdown as the last children of parentID.
func (c *Client) AppendBlock(ctx context.Context, parentID, markdown string) ([]Operation, error) {
	return c.mutate(ctx, "/api/block/appendBlock", map[string]string{
		"parentID": parentID,
		"dataType": dataTypeMarkdown,
		"data":     markdown,
	})
}

// PrependBlock inserts markdown as the first children of parentID.
func (c *Client) PrependBlock(ctx context.Context, parentID, markdown string) ([]Operation, error) {
	return c.mutate(ctx, "/api/block/prependBlock", map[string]string{
		"parentID": parentID,
		"dataType": dataTypeMarkdown,
		"data":     markdown,
	})
}

// InsertBlock inserts markdown relative to the anchor.
func (c *Client) InsertBlock(ctx context.Context, anchor BlockAnchor, markdown string) ([]Operation, error) {
	return c.mutate(ctx, "/api/block/insertBlock", map[string]string{
		"previousID": anchor.PreviousID,
		"nextID":     anchor.NextID,
		"parentID":   anchor.ParentID,
		"dataType":   dataTypeMarkdown,
		"data":       markdown,
	})
}

// MoveBlock moves a block after PreviousID or, when only ParentID is set, to
// the top of ParentID.
func (c *Client) MoveBlock(ctx context.Context, id string, anchor BlockAnchor) error {
	_, err := c.mutate(ctx, "/api/block/moveBlock", map[string]string{
		"id":         id,
		"previousID": anchor.PreviousID,
		"parentID":   anchor.ParentID,
	})
	return err
}

// DeleteBlock removes a block.
func (c *Client) DeleteBlock(ctx context.Context, id string) error {
	_, err := c.mutate(ctx, "/api/block/deleteBlock", map[string]string{"id": id})
	return err
}

// GetBlockAttributes returns every attribute set on a block.
func (c *Client) GetBlockAttributes(ctx context.Context, id string) (map[string]string, error) {
	attrs := map[string]string{}
	if err := c.post(ctx, "/api/attr/getBlockAttrs", map[string]string{"id": id}, &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

// SetBlockAttributes sets attributes on a block. An empty value removes the
// attribute.
func (c *Client) SetBlockAttributes(ctx context.Context, id string, attrs map[string]string) error {
	payload := map[string]interface{}{"id": id, "attrs": attrs}
	return c.post(ctx, "/api/attr/setBlockAttrs", payload, nil)
}
