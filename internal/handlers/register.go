package handlers

import (
	"fmt"

	"notebridge/internal/tools"
)

// All returns a fresh instance of every workspace tool, grouped by area.
func All() []tools.Handler {
	return []tools.Handler{
		// search
		newSearchFulltextHandler(),
		newQuerySQLHandler(),

		// documents
		newGetDocumentHandler(),
		newCreateDocumentHandler(),
		newUpdateDocumentHandler(),
		newAppendToDocumentHandler(),
		newOverwriteDocumentHandler(),
		newMoveDocumentsHandler(),
		newRenameDocumentHandler(),
		newRemoveDocumentHandler(),

		// blocks
		newGetBlockHandler(),
		newGetChildBlocksHandler(),
		newUpdateBlockHandler(),
		newAppendBlockHandler(),
		newPrependBlockHandler(),
		newInsertBlockHandler(),
		newMoveBlockHandler(),
		newDeleteBlockHandler(),

		// attributes
		newGetBlockAttributesHandler(),
		newSetBlockAttributesHandler(),

		// notebooks
		newListNotebooksHandler(),
		newCreateNotebookHandler(),
		newGetNotebookConfHandler(),
		newSetNotebookConfHandler(),

		// snapshots
		newCreateSnapshotHandler(),
		newListSnapshotsHandler(),
		newRollbackSnapshotHandler(),

		// tags
		newListTagsHandler(),
		newReplaceTagHandler(),
	}
}

// Register adds every workspace tool to reg.
func Register(reg *tools.Registry) error {
	for _, h := range All() {
		if err := reg.Register(h); err != nil {
			return fmt.Errorf("failed to register %s: %w", h.Descriptor().Name, err)
		}
	}
	return nil
}
