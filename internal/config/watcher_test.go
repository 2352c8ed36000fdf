package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type change struct {
	cfg Config
	err error
}

func startWatcher(t *testing.T, dir string) <-chan change {
	t.Helper()

	changes := make(chan change, 8)
	w := NewWatcher(dir, 20*time.Millisecond, func(cfg Config, err error) {
		changes <- change{cfg: cfg, err: err}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("watcher did not stop")
		}
	})

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)
	return changes
}

func waitForChange(t *testing.T, changes <-chan change) change {
	t.Helper()
	select {
	case c := <-changes:
		return c
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
		return change{}
	}
}

func TestWatcher_ReportsValidChange(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	changes := startWatcher(t, dir)

	content := "workspace:\n  url: http://notes.internal:6806\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o600))

	c := waitForChange(t, changes)
	require.NoError(t, c.err)
	assert.Equal(t, "http://notes.internal:6806", c.cfg.Workspace.URL)
}

func TestWatcher_ReportsInvalidChange(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	changes := startWatcher(t, dir)

	content := "server:\n  transport: carrier-pigeon\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o600))

	c := waitForChange(t, changes)
	assert.Error(t, c.err)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	changes := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	select {
	case c := <-changes:
		t.Fatalf("unexpected change: %+v", c)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing"), 0, nil)
	err := w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func TestIsConfigEvent(t *testing.T) {
	assert.True(t, isConfigEvent(fsnotify.Event{Name: "/etc/nb/config.yaml", Op: fsnotify.Write}))
	assert.True(t, isConfigEvent(fsnotify.Event{Name: "config.yaml", Op: fsnotify.Create | fsnotify.Chmod}))
	assert.False(t, isConfigEvent(fsnotify.Event{Name: "config.yaml", Op: fsnotify.Chmod}))
	assert.False(t, isConfigEvent(fsnotify.Event{Name: "config.yml", Op: fsnotify.Write}))
}
