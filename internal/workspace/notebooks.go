package workspace

import "context"

// ListNotebooks returns all notebooks, open and closed.
func (c *Client) ListNotebooks(ctx context.Context) ([]Notebook, error) {
	var data struct {
		Notebooks []Notebook `json:"notebooks"`
	}
	if err := c.post(ctx, "/api/notebook/lsNotebooks", nil, &data); err != nil {
		return nil, err
	}
	if data.Notebooks == nil {
		data.Notebooks = []Notebook{}
	}
	return data.Notebooks, nil
}

// CreateNotebook creates a notebook.
func (c *Client) CreateNotebook(ctx context.Context, name string) (*Notebook, error) {
	var data struct {
		Notebook Notebook `json:"notebook"`
	}
	if err := c.post(ctx, "/api/notebook/createNotebook", map[string]string{"name": name}, &data); err != nil {
		return nil, err
	}
	return &data.Notebook, nil
}

// GetNotebookConf returns a notebook's configuration.
func (c *Client) GetNotebookConf(ctx context.Context, notebook string) (*NotebookConf, error) {
	var conf NotebookConf
	if err := c.post(ctx, "/api/notebook/getNotebookConf", map[string]string{"notebook": notebook}, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// SetNotebookConf stores a notebook's configuration and returns what the
// workspace saved.
func (c *Client) SetNotebookConf(ctx context.Context, notebook string, conf map[string]interface{}) (map[string]interface{}, error) {
	saved := map[string]interface{}{}
	payload := map[string]interface{}{"notebook": notebook, "conf": conf}
	if err := c.post(ctx, "/api/notebook/setNotebookConf", payload, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}
