package handlers

import (
	"context"
	"sync"

	"notebridge/internal/workspace"
)

type call struct {
	method string
	args   []interface{}
}

// fakeWorkspace records every call and returns canned data or err.
type fakeWorkspace struct {
	mu    sync.Mutex
	calls []call
	err   error

	pathIDs map[string]string
}

var _ workspace.API = (*fakeWorkspace)(nil)

func (f *fakeWorkspace) record(method string, args ...interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method: method, args: args})
	return f.err
}

func (f *fakeWorkspace) lastCall() call {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeWorkspace) methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.method
	}
	return out
}

func ops(action, id string) []workspace.Operation {
	return []workspace.Operation{{Action: action, ID: id}}
}

func (f *fakeWorkspace) FullTextSearch(ctx context.Context, opts workspace.SearchOptions) (*workspace.SearchResult, error) {
	if err := f.record("FullTextSearch", opts); err != nil {
		return nil, err
	}
	return &workspace.SearchResult{
		Blocks:            []workspace.SearchHit{{ID: "b1", Content: opts.Query}},
		MatchedBlockCount: 1,
		MatchedRootCount:  1,
		PageCount:         1,
	}, nil
}

func (f *fakeWorkspace) Query(ctx context.Context, stmt string) ([]workspace.Row, error) {
	if err := f.record("Query", stmt); err != nil {
		return nil, err
	}
	return []workspace.Row{{"id": "b1"}}, nil
}

func (f *fakeWorkspace) GetDocument(ctx context.Context, id string) (*workspace.Document, error) {
	if err := f.record("GetDocument", id); err != nil {
		return nil, err
	}
	return &workspace.Document{ID: id, HPath: "/Plan", Content: "# Plan"}, nil
}

func (f *fakeWorkspace) GetDocumentIDByPath(ctx context.Context, notebook, path string) (string, error) {
	if err := f.record("GetDocumentIDByPath", notebook, path); err != nil {
		return "", err
	}
	id, ok := f.pathIDs[path]
	if !ok {
		return "", workspace.ErrNotFound
	}
	return id, nil
}

func (f *fakeWorkspace) CreateDocument(ctx context.Context, notebook, path, markdown string) (string, error) {
	if err := f.record("CreateDocument", notebook, path, markdown); err != nil {
		return "", err
	}
	return "doc-new", nil
}

func (f *fakeWorkspace) UpdateDocument(ctx context.Context, id, markdown string) ([]workspace.Operation, error) {
	if err := f.record("UpdateDocument", id, markdown); err != nil {
		return nil, err
	}
	return ops("update", id), nil
}

func (f *fakeWorkspace) AppendToDocument(ctx context.Context, id, markdown string) ([]workspace.Operation, error) {
	if err := f.record("AppendToDocument", id, markdown); err != nil {
		return nil, err
	}
	return ops("insert", "new"), nil
}

func (f *fakeWorkspace) OverwriteDocument(ctx context.Context, id, markdown string) ([]workspace.Operation, error) {
	if err := f.record("OverwriteDocument", id, markdown); err != nil {
		return nil, err
	}
	return ops("insert", "new"), nil
}

func (f *fakeWorkspace) MoveDocuments(ctx context.Context, fromIDs []string, toID string) error {
	return f.record("MoveDocuments", fromIDs, toID)
}

func (f *fakeWorkspace) RenameDocument(ctx context.Context, id, title string) error {
	return f.record("RenameDocument", id, title)
}

func (f *fakeWorkspace) RemoveDocument(ctx context.Context, id string) error {
	return f.record("RemoveDocument", id)
}

func (f *fakeWorkspace) GetBlock(ctx context.Context, id string) (*workspace.Block, error) {
	if err := f.record("GetBlock", id); err != nil {
		return nil, err
	}
	return &workspace.Block{ID: id, Kramdown: "text\n{: id=\"" + id + "\"}"}, nil
}

func (f *fakeWorkspace) GetChildBlocks(ctx context.Context, id string) ([]workspace.ChildBlock, error) {
	if err := f.record("GetChildBlocks", id); err != nil {
		return nil, err
	}
	return []workspace.ChildBlock{{ID: "c1", Type: "p"}}, nil
}

func (f *fakeWorkspace) UpdateBlock(ctx context.Context, id, markdown string) ([]workspace.Operation, error) {
	if err := f.record("UpdateBlock", id, markdown); err != nil {
		return nil, err
	}
	return ops("update", id), nil
}

func (f *fakeWorkspace) AppendBlock(ctx context.Context, parentID, markdown string) ([]workspace.Operation, error) {
	if err := f.record("AppendBlock", parentID, markdown); err != nil {
		return nil, err
	}
	return ops("insert", "new"), nil
}

func (f *fakeWorkspace) PrependBlock(ctx context.Context, parentID, markdown string) ([]workspace.Operation, error) {
	if err := f.record("PrependBlock", parentID, markdown); err != nil {
		return nil, err
	}
	return ops("insert", "new"), nil
}

func (f *fakeWorkspace) InsertBlock(ctx context.Context, anchor workspace.BlockAnchor, markdown string) ([]workspace.Operation, error) {
	if err := f.record("InsertBlock", anchor, markdown); err != nil {
		return nil, err
	}
	return ops("insert", "new"), nil
}

func (f *fakeWorkspace) MoveBlock(ctx context.Context, id string, anchor workspace.BlockAnchor) error {
	return f.record("MoveBlock", id, anchor)
}

func (f *fakeWorkspace) DeleteBlock(ctx context.Context, id string) error {
	return f.record("DeleteBlock", id)
}

func (f *fakeWorkspace) GetBlockAttributes(ctx context.Context, id string) (map[string]string, error) {
	if err := f.record("GetBlockAttributes", id); err != nil {
		return nil, err
	}
	return map[string]string{"id": id, "custom-status": "todo"}, nil
}

func (f *fakeWorkspace) SetBlockAttributes(ctx context.Context, id string, attrs map[string]string) error {
	return f.record("SetBlockAttributes", id, attrs)
}

func (f *fakeWorkspace) ListNotebooks(ctx context.Context) ([]workspace.Notebook, error) {
	if err := f.record("ListNotebooks"); err != nil {
		return nil, err
	}
	return []workspace.Notebook{{ID: "nb1", Name: "Work"}}, nil
}

func (f *fakeWorkspace) CreateNotebook(ctx context.Context, name string) (*workspace.Notebook, error) {
	if err := f.record("CreateNotebook", name); err != nil {
		return nil, err
	}
	return &workspace.Notebook{ID: "nb-new", Name: name}, nil
}

func (f *fakeWorkspace) GetNotebookConf(ctx context.Context, notebook string) (*workspace.NotebookConf, error) {
	if err := f.record("GetNotebookConf", notebook); err != nil {
		return nil, err
	}
	return &workspace.NotebookConf{Box: notebook, Name: "Work", Conf: map[string]interface{}{"closed": false}}, nil
}

func (f *fakeWorkspace) SetNotebookConf(ctx context.Context, notebook string, conf map[string]interface{}) (map[string]interface{}, error) {
	if err := f.record("SetNotebookConf", notebook, conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func (f *fakeWorkspace) CreateSnapshot(ctx context.Context, memo string) error {
	return f.record("CreateSnapshot", memo)
}

func (f *fakeWorkspace) ListSnapshots(ctx context.Context, page int) (*workspace.SnapshotPage, error) {
	if err := f.record("ListSnapshots", page); err != nil {
		return nil, err
	}
	return &workspace.SnapshotPage{Snapshots: []workspace.Snapshot{{ID: "s1", Memo: "before"}}, PageCount: 1, TotalCount: 1}, nil
}

func (f *fakeWorkspace) RollbackSnapshot(ctx context.Context, id string) error {
	return f.record("RollbackSnapshot", id)
}

func (f *fakeWorkspace) ListTags(ctx context.Context) ([]workspace.Tag, error) {
	if err := f.record("ListTags"); err != nil {
		return nil, err
	}
	return []workspace.Tag{{Name: "project", Label: "project", Count: 2}}, nil
}

func (f *fakeWorkspace) ReplaceTag(ctx context.Context, oldLabel, newLabel string) error {
	return f.record("ReplaceTag", oldLabel, newLabel)
}

func (f *fakeWorkspace) Version(ctx context.Context) (string, error) {
	if err := f.record("Version"); err != nil {
		return "", err
	}
	return "3.1.0", nil
}
