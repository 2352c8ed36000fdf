package dispatch

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notebridge/internal/config"
	"notebridge/internal/tools"
)

func testPromptData() PromptData {
	return PromptData{
		ServerName:   "notebridge",
		WorkspaceURL: "http://127.0.0.1:6806",
		Tools:        []string{"search_fulltext", "get_block", "overwrite_document"},
	}
}

func promptText(t *testing.T, result *mcp.GetPromptResult) string {
	t.Helper()
	require.Len(t, result.Messages, 1)
	assert.Equal(t, mcp.RoleUser, result.Messages[0].Role)
	tc, ok := mcp.AsTextContent(result.Messages[0].Content)
	require.True(t, ok)
	return tc.Text
}

func TestDefaultPromptCatalog_List(t *testing.T) {
	catalog, err := NewDefaultPromptCatalog(testPromptData())
	require.NoError(t, err)

	assert.Equal(t, []string{"workspace_guide", "sql_reference", "markdown_conventions"}, catalog.Names())

	list := catalog.List()
	require.Len(t, list, 3)
	require.Len(t, list[0].Arguments, 1)
	assert.Equal(t, "topic", list[0].Arguments[0].Name)
	assert.False(t, list[0].Arguments[0].Required)
}

func TestDefaultPromptCatalog_RenderAll(t *testing.T) {
	catalog, err := NewDefaultPromptCatalog(testPromptData())
	require.NoError(t, err)

	for _, name := range catalog.Names() {
		t.Run(name, func(t *testing.T) {
			result, err := catalog.Render(name, nil)
			require.NoError(t, err)
			text := promptText(t, result)
			assert.NotEmpty(t, text)
			assert.NotContains(t, text, "<no value>")
		})
	}
}

func TestWorkspaceGuide(t *testing.T) {
	catalog, err := NewDefaultPromptCatalog(testPromptData())
	require.NoError(t, err)

	result, err := catalog.Render("workspace_guide", nil)
	require.NoError(t, err)
	text := promptText(t, result)

	assert.Contains(t, text, "via notebridge")
	assert.Contains(t, text, `"http://127.0.0.1:6806"`)
	// Tool names are sorted.
	assert.Contains(t, text, "get_block, overwrite_document, search_fulltext")
	assert.Contains(t, text, "## Documents")
	assert.Contains(t, text, "## Snapshots")

	result, err = catalog.Render("workspace_guide", map[string]string{"topic": " Snapshots "})
	require.NoError(t, err)
	text = promptText(t, result)
	assert.Contains(t, text, "Focus: Snapshots.")
	assert.Contains(t, text, "## Snapshots")
	assert.NotContains(t, text, "## Documents")
}

func TestMarkdownConventions_MentionsOverwriteOnlyWhenRegistered(t *testing.T) {
	catalog, err := NewDefaultPromptCatalog(testPromptData())
	require.NoError(t, err)
	result, err := catalog.Render("markdown_conventions", nil)
	require.NoError(t, err)
	text := promptText(t, result)
	assert.Contains(t, text, "overwrite_document deletes every child block")
	assert.Contains(t, text, "{{SELECT * FROM blocks")

	data := testPromptData()
	data.Tools = []string{"get_block"}
	catalog, err = NewDefaultPromptCatalog(data)
	require.NoError(t, err)
	result, err = catalog.Render("markdown_conventions", nil)
	require.NoError(t, err)
	assert.NotContains(t, promptText(t, result), "overwrite_document deletes")
}

func TestPromptCatalog_UnknownPrompt(t *testing.T) {
	catalog, err := NewDefaultPromptCatalog(testPromptData())
	require.NoError(t, err)

	_, err = catalog.Render("missing", nil)
	assert.ErrorIs(t, err, ErrUnknownPrompt)
	assert.Contains(t, err.Error(), "missing")
}

func TestPromptCatalog_RequiredArgument(t *testing.T) {
	catalog, err := NewPromptCatalog(testPromptData(), Prompt{
		Name:      "focus",
		Arguments: []PromptArgument{{Name: "subject", Required: true}},
		Template:  "Focus on {{ .Args.subject | upper }} in {{ .ServerName }}",
	})
	require.NoError(t, err)

	_, err = catalog.Render("focus", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required argument: subject")

	result, err := catalog.Render("focus", map[string]string{"subject": "tags"})
	require.NoError(t, err)
	assert.Equal(t, "Focus on TAGS in notebridge", promptText(t, result))
}

func TestNewPromptCatalog_Errors(t *testing.T) {
	_, err := NewPromptCatalog(testPromptData(), Prompt{Name: "broken", Template: "{{ .Unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	_, err = NewPromptCatalog(testPromptData(),
		Prompt{Name: "dup", Template: "a"},
		Prompt{Name: "dup", Template: "b"},
	)
	assert.Error(t, err)
}

func TestNewPromptCatalog_DoesNotMutateToolSlice(t *testing.T) {
	data := testPromptData()
	original := append([]string(nil), data.Tools...)
	_, err := NewDefaultPromptCatalog(data)
	require.NoError(t, err)
	assert.Equal(t, original, data.Tools)
}

func TestRouter_Prompts(t *testing.T) {
	catalog, err := NewDefaultPromptCatalog(testPromptData())
	require.NoError(t, err)

	reg := tools.NewRegistry()
	ec := tools.NewExecutionContext(nil, config.GetDefaultConfig(), nil)
	router := NewRouter(reg, ec, WithPrompts(catalog), WithLogger(&recordingLogger{}))

	list := router.ListPrompts(context.Background())
	assert.Len(t, list.Prompts, 3)

	result, err := router.GetPrompt(context.Background(), "sql_reference", nil)
	require.NoError(t, err)
	assert.True(t, strings.Contains(promptText(t, result), "blocks"))

	_, err = router.GetPrompt(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, ErrUnknownPrompt)
}
