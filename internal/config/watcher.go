package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"notebridge/pkg/logging"
)

// DefaultWatchDebounce is how long the watcher waits for further writes
// before reloading config.yaml.
const DefaultWatchDebounce = 500 * time.Millisecond

// ChangeFunc receives the reloaded configuration, or the error that
// prevented loading it.
type ChangeFunc func(Config, error)

// Watcher reports edits to config.yaml in a configuration directory.
//
// Settings are fixed once the server has started, so the watcher only
// reloads and validates the file and hands the outcome to its ChangeFunc.
type Watcher struct {
	dir      string
	debounce time.Duration
	onChange ChangeFunc
}

// NewWatcher creates a watcher for config.yaml in dir. A zero debounce
// uses DefaultWatchDebounce.
func NewWatcher(dir string, debounce time.Duration, onChange ChangeFunc) *Watcher {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	return &Watcher{
		dir:      dir,
		debounce: debounce,
		onChange: onChange,
	}
}

// Run watches until ctx is cancelled. It returns an error only when the
// directory cannot be watched.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	logging.Debug("ConfigWatcher", "Watching %s for changes to %s", w.dir, configFileName)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isConfigEvent(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := LoadConfigFromPath(w.dir)
			if w.onChange != nil {
				w.onChange(cfg, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Error("ConfigWatcher", err, "Filesystem watcher error")
		}
	}
}

// isConfigEvent reports whether event touches the content of config.yaml.
func isConfigEvent(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != configFileName {
		return false
	}
	return event.Op&^fsnotify.Chmod != 0
}
