package handlers

import (
	"context"
	"fmt"

	"notebridge/internal/tools"
)

func notebookParam() tools.Param {
	return tools.Param{Name: "notebook", Type: "string", Required: true, Description: "Notebook ID"}
}

type listNotebooksHandler struct{ tools.Definition }

func newListNotebooksHandler() tools.Handler {
	return listNotebooksHandler{tools.Definition{
		Name:        "list_notebooks",
		Description: "List all notebooks with their IDs and open state.",
		ReadOnly:    true,
	}}
}

func (listNotebooksHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	return ec.Workspace().ListNotebooks(ctx)
}

type createNotebookHandler struct{ tools.Definition }

func newCreateNotebookHandler() tools.Handler {
	return createNotebookHandler{tools.Definition{
		Name:        "create_notebook",
		Description: "Create a notebook.",
		Params: []tools.Param{
			{Name: "name", Type: "string", Required: true, Description: "Notebook name"},
		},
	}}
}

func (createNotebookHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	name, err := tools.Args(args).String("name")
	if err != nil {
		return nil, err
	}
	return ec.Workspace().CreateNotebook(ctx, name)
}

type getNotebookConfHandler struct{ tools.Definition }

func newGetNotebookConfHandler() tools.Handler {
	return getNotebookConfHandler{tools.Definition{
		Name:        "get_notebook_conf",
		Description: "Get the configuration of a notebook.",
		ReadOnly:    true,
		Params:      []tools.Param{notebookParam()},
	}}
}

func (getNotebookConfHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	notebook, err := tools.Args(args).String("notebook")
	if err != nil {
		return nil, err
	}
	return ec.Workspace().GetNotebookConf(ctx, notebook)
}

type setNotebookConfHandler struct{ tools.Definition }

func newSetNotebookConfHandler() tools.Handler {
	return setNotebookConfHandler{tools.Definition{
		Name:        "set_notebook_conf",
		Description: "Replace the configuration of a notebook. Read it with get_notebook_conf first and send back the full object.",
		Params: []tools.Param{
			notebookParam(),
			{Name: "conf", Type: "object", Required: true, Description: "Complete notebook configuration"},
		},
	}}
}

func (setNotebookConfHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	a := tools.Args(args)
	notebook, err := a.String("notebook")
	if err != nil {
		return nil, err
	}
	conf, err := a.Object("conf")
	if err != nil {
		return nil, err
	}
	if conf == nil {
		return nil, fmt.Errorf("missing required argument: conf")
	}
	return ec.Workspace().SetNotebookConf(ctx, notebook, conf)
}
