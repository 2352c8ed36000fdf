package workspace

import "context"

// CreateSnapshot records a snapshot of the data repository.
func (c *Client) CreateSnapshot(ctx context.Context, memo string) error {
	return c.post(ctx, "/api/repo/createSnapshot", map[string]string{"memo": memo}, nil)
}

// ListSnapshots returns one page of snapshots. Pages start at 1.
func (c *Client) ListSnapshots(ctx context.Context, page int) (*SnapshotPage, error) {
	var result SnapshotPage
	if err := c.post(ctx, "/api/repo/getRepoSnapshots", map[string]int{"page": max(page, 1)}, &result); err != nil {
		return nil, err
	}
	if result.Snapshots == nil {
		result.Snapshots = []Snapshot{}
	}
	return &result, nil
}

// RollbackSnapshot restores the data repository to a snapshot.
func (c *Client) RollbackSnapshot(ctx context.Context, id string) error {
	return c.post(ctx, "/api/repo/checkoutRepo", map[string]string{"id": id}, nil)
}
