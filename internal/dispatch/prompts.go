package dispatch

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/mark3labs/mcp-go/mcp"
)

// ErrUnknownPrompt is returned by GetPrompt for names not in the catalog.
var ErrUnknownPrompt = errors.New("unknown prompt")

//go:embed prompts/*.tmpl
var promptFS embed.FS

// PromptArgument describes one argument a prompt accepts.
type PromptArgument struct {
	Name        string
	Description string
	Required    bool
}

// Prompt is one catalog entry. Template is text/template source with sprig
// functions available.
type Prompt struct {
	Name        string
	Description string
	Arguments   []PromptArgument
	Template    string
}

// PromptData is the server-wide data every prompt template can reference.
type PromptData struct {
	ServerName   string
	WorkspaceURL string
	Tools        []string
}

type promptTemplateData struct {
	PromptData
	Args map[string]string
}

type compiledPrompt struct {
	prompt Prompt
	tmpl   *template.Template
}

// PromptCatalog is an immutable, ordered set of parsed prompts.
type PromptCatalog struct {
	prompts []compiledPrompt
	index   map[string]int
	data    PromptData
}

// NewPromptCatalog parses every prompt template. Parsing happens once, so a
// broken template fails startup rather than a request.
func NewPromptCatalog(data PromptData, prompts ...Prompt) (*PromptCatalog, error) {
	names := append([]string(nil), data.Tools...)
	sort.Strings(names)
	data.Tools = names

	c := &PromptCatalog{
		prompts: make([]compiledPrompt, 0, len(prompts)),
		index:   make(map[string]int, len(prompts)),
		data:    data,
	}

	for _, p := range prompts {
		if _, exists := c.index[p.Name]; exists {
			return nil, fmt.Errorf("duplicate prompt name %q", p.Name)
		}
		tmpl, err := template.New(p.Name).
			Option("missingkey=zero").
			Funcs(sprig.TxtFuncMap()).
			Parse(p.Template)
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt %s: %w", p.Name, err)
		}
		c.index[p.Name] = len(c.prompts)
		c.prompts = append(c.prompts, compiledPrompt{prompt: p, tmpl: tmpl})
	}

	return c, nil
}

// DefaultPrompts returns the built-in guidance documents.
func DefaultPrompts() ([]Prompt, error) {
	defs := []struct {
		prompt Prompt
		file   string
	}{
		{
			prompt: Prompt{
				Name:        "workspace_guide",
				Description: "How to work with the note workspace through this server's tools",
				Arguments: []PromptArgument{
					{Name: "topic", Description: "Optional area to focus on: documents, blocks, search, snapshots"},
				},
			},
			file: "prompts/workspace_guide.tmpl",
		},
		{
			prompt: Prompt{
				Name:        "sql_reference",
				Description: "Schema of the blocks table and example queries for query_sql",
			},
			file: "prompts/sql_reference.tmpl",
		},
		{
			prompt: Prompt{
				Name:        "markdown_conventions",
				Description: "Markdown and block attribute conventions used by the workspace",
			},
			file: "prompts/markdown_conventions.tmpl",
		},
	}

	prompts := make([]Prompt, 0, len(defs))
	for _, d := range defs {
		src, err := promptFS.ReadFile(d.file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", d.file, err)
		}
		p := d.prompt
		p.Template = string(src)
		prompts = append(prompts, p)
	}
	return prompts, nil
}

// NewDefaultPromptCatalog builds the catalog of built-in prompts.
func NewDefaultPromptCatalog(data PromptData) (*PromptCatalog, error) {
	prompts, err := DefaultPrompts()
	if err != nil {
		return nil, err
	}
	return NewPromptCatalog(data, prompts...)
}

// List returns the MCP form of every prompt in catalog order.
func (c *PromptCatalog) List() []mcp.Prompt {
	result := make([]mcp.Prompt, 0, len(c.prompts))
	for _, cp := range c.prompts {
		p := mcp.Prompt{
			Name:        cp.prompt.Name,
			Description: cp.prompt.Description,
		}
		for _, arg := range cp.prompt.Arguments {
			p.Arguments = append(p.Arguments, mcp.PromptArgument{
				Name:        arg.Name,
				Description: arg.Description,
				Required:    arg.Required,
			})
		}
		result = append(result, p)
	}
	return result
}

// Render executes the named prompt with the caller's arguments.
func (c *PromptCatalog) Render(name string, args map[string]string) (*mcp.GetPromptResult, error) {
	i, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrompt, name)
	}
	cp := c.prompts[i]

	if args == nil {
		args = map[string]string{}
	}
	for _, arg := range cp.prompt.Arguments {
		if arg.Required && strings.TrimSpace(args[arg.Name]) == "" {
			return nil, fmt.Errorf("prompt %s: missing required argument: %s", name, arg.Name)
		}
	}

	var buf bytes.Buffer
	if err := cp.tmpl.Execute(&buf, promptTemplateData{PromptData: c.data, Args: args}); err != nil {
		return nil, fmt.Errorf("failed to render prompt %s: %w", name, err)
	}

	return mcp.NewGetPromptResult(
		cp.prompt.Description,
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(strings.TrimSpace(buf.String()))),
		},
	), nil
}

// Names returns prompt names in catalog order.
func (c *PromptCatalog) Names() []string {
	names := make([]string, len(c.prompts))
	for i, cp := range c.prompts {
		names[i] = cp.prompt.Name
	}
	return names
}
