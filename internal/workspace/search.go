package workspace

import (
	"context"
	"strings"
)

// FullTextSearch runs a full-text search over block content.
func (c *Client) FullTextSearch(ctx context.Context, opts SearchOptions) (*SearchResult, error) {
	payload := map[string]interface{}{
		"query":   opts.Query,
		"method":  opts.Method,
		"groupBy": opts.GroupBy,
		"orderBy": opts.OrderBy,
		"page":    max(opts.Page, 1),
	}
	if opts.PageSize > 0 {
		payload["pageSize"] = opts.PageSize
	}
	if len(opts.Paths) > 0 {
		payload["paths"] = opts.Paths
	}
	if len(opts.Types) > 0 {
		types := make(map[string]bool, len(opts.Types))
		for _, t := range opts.Types {
			types[t] = true
		}
		payload["types"] = types
	}

	var result SearchResult
	if err := c.post(ctx, "/api/search/fullTextSearchBlock", payload, &result); err != nil {
		return nil, err
	}
	if result.Blocks == nil {
		result.Blocks = []SearchHit{}
	}
	return &result, nil
}

// Query runs a read-only SQL statement against the workspace block database.
func (c *Client) Query(ctx context.Context, stmt string) ([]Row, error) {
	var rows []Row
	if err := c.post(ctx, "/api/query/sql", map[string]string{"stmt": strings.TrimSpace(stmt)}, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}
