package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notebridge/internal/config"
	"notebridge/internal/dispatch"
	"notebridge/internal/tools"
	"notebridge/pkg/logging"
)

func newTestConsole(t *testing.T) (*console, *bytes.Buffer) {
	t.Helper()

	reg := tools.NewRegistry()
	reg.MustRegister(
		tools.NewFunc(tools.Definition{Name: "echo", Description: "Echo text back"},
			func(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
				return tools.Args(args).String("text")
			}),
		tools.NewFunc(tools.Definition{Name: "list_things", Description: "List things"},
			func(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
				return []string{"a", "b"}, nil
			}),
	)
	reg.Freeze()

	catalog, err := dispatch.NewDefaultPromptCatalog(dispatch.PromptData{ServerName: "notebridge", Tools: reg.Names()})
	require.NoError(t, err)

	ec := tools.NewExecutionContext(nil, config.GetDefaultConfig(), logging.Discard)
	router := dispatch.NewRouter(reg, ec, dispatch.WithPrompts(catalog), dispatch.WithLogger(logging.Discard))

	var buf bytes.Buffer
	return &console{router: router, out: &buf}, &buf
}

func TestConsole_Tools(t *testing.T) {
	c, out := newTestConsole(t)

	require.NoError(t, c.execute(context.Background(), "tools"))
	assert.Contains(t, out.String(), "echo")
	assert.Contains(t, out.String(), "list_things")

	out.Reset()
	require.NoError(t, c.execute(context.Background(), "tools list_*"))
	assert.NotContains(t, out.String(), "echo")
	assert.Contains(t, out.String(), "list_things")
}

func TestConsole_Call(t *testing.T) {
	c, out := newTestConsole(t)

	require.NoError(t, c.execute(context.Background(), `call echo {"text": "hello there"}`))
	assert.Equal(t, "hello there\n", out.String())

	out.Reset()
	require.NoError(t, c.execute(context.Background(), "call list_things"))
	assert.Contains(t, out.String(), "\"a\"")

	out.Reset()
	require.NoError(t, c.execute(context.Background(), "call echo"))
	assert.Contains(t, out.String(), "Error: missing required argument: text")

	out.Reset()
	require.NoError(t, c.execute(context.Background(), "call nope"))
	assert.Contains(t, out.String(), "Error: unknown tool: nope")

	assert.Error(t, c.execute(context.Background(), "call"))
	assert.Error(t, c.execute(context.Background(), "call echo {bad json"))
}

func TestConsole_Prompts(t *testing.T) {
	c, out := newTestConsole(t)

	require.NoError(t, c.execute(context.Background(), "prompts"))
	assert.Contains(t, out.String(), "workspace_guide")

	out.Reset()
	require.NoError(t, c.execute(context.Background(), "prompt workspace_guide topic=search"))
	assert.Contains(t, out.String(), "## Search")
	assert.NotContains(t, out.String(), "## Blocks")

	assert.ErrorIs(t, c.execute(context.Background(), "prompt missing"), dispatch.ErrUnknownPrompt)
	assert.Error(t, c.execute(context.Background(), "prompt"))
}

func TestConsole_Misc(t *testing.T) {
	c, out := newTestConsole(t)

	assert.NoError(t, c.execute(context.Background(), "   "))
	assert.Empty(t, out.String())

	require.NoError(t, c.execute(context.Background(), "help"))
	assert.Contains(t, out.String(), "call <tool>")

	assert.ErrorIs(t, c.execute(context.Background(), "exit"), errExit)
	assert.ErrorIs(t, c.execute(context.Background(), "quit"), errExit)
	assert.Error(t, c.execute(context.Background(), "frobnicate"))
}

func TestConsole_Completer(t *testing.T) {
	c, _ := newTestConsole(t)
	completer := c.completer(context.Background())

	var names []string
	for _, child := range completer.GetChildren() {
		names = append(names, string(child.GetName()))
	}
	assert.Contains(t, names, "call ")
	assert.Contains(t, names, "prompt ")
}
