package handlers

import (
	"context"
	"fmt"
	"time"

	"notebridge/internal/tools"
)

type createSnapshotHandler struct{ tools.Definition }

func newCreateSnapshotHandler() tools.Handler {
	return createSnapshotHandler{tools.Definition{
		Name:        "create_snapshot",
		Description: "Create a snapshot of the workspace data. Do this before destructive edits.",
		Params: []tools.Param{
			{Name: "memo", Type: "string", Description: "Short description of why the snapshot was taken"},
		},
	}}
}

func (createSnapshotHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	memo, err := tools.Args(args).OptionalString("memo")
	if err != nil {
		return nil, err
	}
	if memo == "" {
		memo = fmt.Sprintf("%s %s", ec.Config().Server.Name, time.Now().Format(time.RFC3339))
	}
	return nil, ec.Workspace().CreateSnapshot(ctx, memo)
}

type listSnapshotsHandler struct{ tools.Definition }

func newListSnapshotsHandler() tools.Handler {
	return listSnapshotsHandler{tools.Definition{
		Name:        "list_snapshots",
		Description: "List workspace snapshots, newest first.",
		ReadOnly:    true,
		Params: []tools.Param{
			{Name: "page", Type: "integer", Description: "Result page, starting at 1", Default: 1},
		},
	}}
}

func (listSnapshotsHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	page, err := tools.Args(args).Int("page", 1)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, fmt.Errorf("page must be at least 1")
	}
	return ec.Workspace().ListSnapshots(ctx, page)
}

type rollbackSnapshotHandler struct{ tools.Definition }

func newRollbackSnapshotHandler() tools.Handler {
	return rollbackSnapshotHandler{tools.Definition{
		Name:        "rollback_snapshot",
		Description: "Restore the workspace to a snapshot. Changes made after it are lost unless snapshotted.",
		Params:      []tools.Param{idParam("Snapshot ID")},
	}}
}

func (rollbackSnapshotHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	id, err := tools.Args(args).String("id")
	if err != nil {
		return nil, err
	}
	ec.Logger().Info(fmt.Sprintf("Rolling back workspace to snapshot %s", id))
	return nil, ec.Workspace().RollbackSnapshot(ctx, id)
}
