package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notebridge/internal/config"
)

// setupWorkspace starts a fake workspace and writes a config directory
// pointing at it.
func setupWorkspace(t *testing.T) string {
	t.Helper()

	for _, env := range []string{config.EnvWorkspaceURL, config.EnvWorkspaceToken, config.EnvTransport, config.EnvLogLevel} {
		t.Setenv(env, "")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/system/version":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "data": "3.1.0"})
		case "/api/block/getBlockKramdown":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "data": map[string]string{"id": "b1", "kramdown": "hello"}})
		default:
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": -1, "msg": "not implemented"})
		}
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	content := fmt.Sprintf("workspace:\n  url: %s\n", srv.URL)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	return dir
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestToolsCommand_JSON(t *testing.T) {
	dir := setupWorkspace(t)

	out, _, err := executeCommand(t, "tools", "--config-path", dir, "-o", "json", "--filter", "", "--description", "", "--read-only=false")
	require.NoError(t, err)

	var listed []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 29)
	assert.Equal(t, "search_fulltext", listed[0].Name)
}

func TestToolsCommand_Filters(t *testing.T) {
	dir := setupWorkspace(t)

	out, _, err := executeCommand(t, "tools", "--config-path", dir, "-o", "json", "--filter", "*_snapshot*", "--description", "", "--read-only=false")
	require.NoError(t, err)
	assert.Contains(t, out, "create_snapshot")
	assert.Contains(t, out, "list_snapshots")
	assert.NotContains(t, out, "get_block")

	out, _, err = executeCommand(t, "tools", "--config-path", dir, "-o", "json", "--filter", "", "--description", "", "--read-only")
	require.NoError(t, err)
	assert.Contains(t, out, "get_block")
	assert.NotContains(t, out, "delete_block")

	out, _, err = executeCommand(t, "tools", "--config-path", dir, "-o", "table", "--filter", "nothing-matches", "--description", "", "--read-only=false")
	require.NoError(t, err)
	assert.Contains(t, out, "No tools match")
}

func TestToolsCommand_Table(t *testing.T) {
	dir := setupWorkspace(t)

	out, _, err := executeCommand(t, "tools", "--config-path", dir, "-o", "table", "--filter", "get_block*", "--description", "", "--read-only=false")
	require.NoError(t, err)
	assert.Contains(t, out, "get_block")
	assert.Contains(t, out, "get_block_attributes")
	assert.Contains(t, strings.ToLower(out), "2 tools")
}

func TestToolsCommand_YAML(t *testing.T) {
	dir := setupWorkspace(t)

	out, _, err := executeCommand(t, "tools", "--config-path", dir, "-o", "yaml", "--filter", "rename_document", "--description", "", "--read-only=false")
	require.NoError(t, err)
	assert.Contains(t, out, "name: rename_document")
	assert.Contains(t, out, "inputSchema:")
}

func TestToolsCommand_InvalidOutput(t *testing.T) {
	_, _, err := executeCommand(t, "tools", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestPromptsCommand(t *testing.T) {
	dir := setupWorkspace(t)

	out, _, err := executeCommand(t, "prompts", "--config-path", dir, "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "workspace_guide")
	assert.Contains(t, out, "sql_reference")

	out, _, err = executeCommand(t, "prompts", "workspace_guide", "--config-path", dir, "-o", "table", "--arg", "topic=blocks")
	require.NoError(t, err)
	assert.Contains(t, out, "## Blocks")

	_, _, err = executeCommand(t, "prompts", "missing", "--config-path", dir, "-o", "table")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	dir := setupWorkspace(t)

	out, _, err := executeCommand(t, "check", "--config-path", dir, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "running version 3.1.0")
}

func TestCheckCommand_Unreachable(t *testing.T) {
	for _, env := range []string{config.EnvWorkspaceToken, config.EnvTransport, config.EnvLogLevel} {
		t.Setenv(env, "")
	}
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	t.Setenv(config.EnvWorkspaceURL, url)

	_, _, err := executeCommand(t, "check", "--config-path", t.TempDir(), "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not usable")
	assert.Equal(t, ExitCodeError, getExitCode(err))
}

func TestCallCommand(t *testing.T) {
	dir := setupWorkspace(t)

	out, _, err := executeCommand(t, "call", "get_block", "--config-path", dir, "--quiet", "--args", `{"id": "b1"}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"kramdown": "hello"`)

	_, stderr, err := executeCommand(t, "call", "get_block", "--config-path", dir, "--quiet", "--args", "")
	assert.ErrorIs(t, err, errToolFailed)
	assert.Contains(t, stderr, "Error: missing required argument: id")

	_, stderr, err = executeCommand(t, "call", "list_tags", "--config-path", dir, "--quiet", "--args", "")
	assert.ErrorIs(t, err, errToolFailed)
	assert.Contains(t, stderr, "not implemented")
}
