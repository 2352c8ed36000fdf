package workspace

// Data types returned by the workspace API. JSON tags follow the wire format.

// SearchOptions controls a full-text search.
type SearchOptions struct {
	Query string `json:"query"`
	// Method: 0 keyword, 1 query syntax, 2 SQL, 3 regular expression.
	Method   int      `json:"method"`
	Types    []string `json:"-"`
	Paths    []string `json:"paths,omitempty"`
	GroupBy  int      `json:"groupBy"`
	OrderBy  int      `json:"orderBy"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize,omitempty"`
}

// SearchHit is a single block matched by a full-text search.
type SearchHit struct {
	ID      string `json:"id"`
	RootID  string `json:"rootID"`
	Box     string `json:"box"`
	HPath   string `json:"hPath"`
	Content string `json:"content"`
	Type    string `json:"type"`
	SubType string `json:"subType,omitempty"`
}

// SearchResult is one page of full-text search results.
type SearchResult struct {
	Blocks            []SearchHit `json:"blocks"`
	MatchedBlockCount int         `json:"matchedBlockCount"`
	MatchedRootCount  int         `json:"matchedRootCount"`
	PageCount         int         `json:"pageCount"`
}

// Row is a single SQL result row keyed by column name.
type Row map[string]interface{}

// Document is the markdown export of a document.
type Document struct {
	ID      string `json:"id"`
	HPath   string `json:"hPath"`
	Content string `json:"content"`
}

// Operation is one change applied by a block mutation.
type Operation struct {
	Action     string `json:"action"`
	ID         string `json:"id"`
	ParentID   string `json:"parentID,omitempty"`
	PreviousID string `json:"previousID,omitempty"`
	NextID     string `json:"nextID,omitempty"`
}

type transaction struct {
	DoOperations []Operation `json:"doOperations"`
}

// Block is the kramdown source of a single block.
type Block struct {
	ID       string `json:"id"`
	Kramdown string `json:"kramdown"`
}

// ChildBlock is a direct child of a block or document.
type ChildBlock struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	SubType string `json:"subType,omitempty"`
}

// BlockAnchor positions a block relative to another one. Exactly one field
// should be set.
type BlockAnchor struct {
	PreviousID string
	NextID     string
	ParentID   string
}

// Notebook is a top-level container of documents.
type Notebook struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon,omitempty"`
	Sort   int    `json:"sort"`
	Closed bool   `json:"closed"`
}

// NotebookConf is a notebook's configuration. Conf is passed through verbatim
// because its keys vary between workspace versions.
type NotebookConf struct {
	Box  string                 `json:"box"`
	Name string                 `json:"name"`
	Conf map[string]interface{} `json:"conf"`
}

// Snapshot is a point-in-time copy of the workspace data repository.
type Snapshot struct {
	ID       string `json:"id"`
	Memo     string `json:"memo"`
	Created  int64  `json:"created"`
	HCreated string `json:"hCreated"`
	Count    int    `json:"count"`
	Size     int64  `json:"size"`
	HSize    string `json:"hSize"`
}

// SnapshotPage is one page of snapshots, newest first.
type SnapshotPage struct {
	Snapshots  []Snapshot `json:"snapshots"`
	PageCount  int        `json:"pageCount"`
	TotalCount int        `json:"totalCount"`
}

// Tag is a tag node. Nested tags ("a/b") appear as children.
type Tag struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
	Children []Tag  `json:"children,omitempty"`
}
