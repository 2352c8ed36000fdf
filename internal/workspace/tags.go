package workspace

import "context"

// ListTags returns the tag tree.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	tags := []Tag{}
	if err := c.post(ctx, "/api/tag/getTag", map[string]interface{}{"sort": 0}, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// ReplaceTag renames a tag everywhere it is used.
func (c *Client) ReplaceTag(ctx context.Context, oldLabel, newLabel string) error {
	payload := map[string]string{"oldLabel": oldLabel, "newLabel": newLabel}
	return c.post(ctx, "/api/tag/renameTag", payload, nil)
}
