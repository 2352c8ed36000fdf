package workspace

import "context"

// API is the set of workspace operations exposed to tool handlers.
// Implementations must be safe for concurrent use.
type API interface {
	// Search
	FullTextSearch(ctx context.Context, opts SearchOptions) (*SearchResult, error)
	Query(ctx context.Context, stmt string) ([]Row, error)

	// Documents
	GetDocument(ctx context.Context, id string) (*Document, error)
	GetDocumentIDByPath(ctx context.Context, notebook, path string) (string, error)
	CreateDocument(ctx context.Context, notebook, path, markdown string) (string, error)
	UpdateDocument(ctx context.Context, id, markdown string) ([]Operation, error)
	AppendToDocument(ctx context.Context, id, markdown string) ([]Operation, error)
	OverwriteDocument(ctx context.Context, id, markdown string) ([]Operation, error)
	MoveDocuments(ctx context.Context, fromIDs []string, toID string) error
	RenameDocument(ctx context.Context, id, title string) error
	RemoveDocument(ctx context.Context, id string) error

	// Blocks
	GetBlock(ctx context.Context, id string) (*Block, error)
	GetChildBlocks(ctx context.Context, id string) ([]ChildBlock, error)
	UpdateBlock(ctx context.Context, id, markdown string) ([]Operation, error)
	AppendBlock(ctx context.Context, parentID, markdown string) ([]Operation, error)
	PrependBlock(ctx context.Context, parentID, markdown string) ([]Operation, error)
	InsertBlock(ctx context.Context, anchor BlockAnchor, markdown string) ([]Operation, error)
	MoveBlock(ctx context.Context, id string, anchor BlockAnchor) error
	DeleteBlock(ctx context.Context, id string) error

	// Attributes
	GetBlockAttributes(ctx context.Context, id string) (map[string]string, error)
	SetBlockAttributes(ctx context.Context, id string, attrs map[string]string) error

	// Notebooks
	ListNotebooks(ctx context.Context) ([]Notebook, error)
	CreateNotebook(ctx context.Context, name string) (*Notebook, error)
	GetNotebookConf(ctx context.Context, notebook string) (*NotebookConf, error)
	SetNotebookConf(ctx context.Context, notebook string, conf map[string]interface{}) (map[string]interface{}, error)

	// Snapshots
	CreateSnapshot(ctx context.Context, memo string) error
	ListSnapshots(ctx context.Context, page int) (*SnapshotPage, error)
	RollbackSnapshot(ctx context.Context, id string) error

	// Tags
	ListTags(ctx context.Context) ([]Tag, error)
	ReplaceTag(ctx context.Context, oldLabel, newLabel string) error

	// System
	Version(ctx context.Context) (string, error)
}
