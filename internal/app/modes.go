package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/sync/errgroup"

	"notebridge/internal/config"
	"notebridge/pkg/logging"
)

// probeTimeout bounds the startup reachability check of the workspace.
const probeTimeout = 5 * time.Second

// runServer serves the configured transport.
//
// Behavior:
//   - Probes the workspace once and warns if it is unreachable; tools still
//     get registered and report errors per call
//   - Reports readiness to systemd once the transport is starting
//   - Watches configDir, when set, and logs edits that need a restart
//   - Stops on SIGINT, SIGTERM, parent cancellation or transport exit
func runServer(ctx context.Context, cfg *Config, services *Services, configDir string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return services.Server.Serve(gctx)
	})

	g.Go(func() error {
		probeCtx, probeCancel := context.WithTimeout(gctx, probeTimeout)
		defer probeCancel()

		version, err := services.Workspace.Version(probeCtx)
		if err != nil {
			if gctx.Err() == nil {
				logging.Warn("App", "Workspace at %s is not reachable: %v", services.Workspace.BaseURL(), err)
			}
			return nil
		}
		logging.Info("App", "Connected to workspace %s (version %s)", services.Workspace.BaseURL(), version)
		return nil
	})

	g.Go(func() error {
		notifySystemd(daemon.SdNotifyReady)
		<-gctx.Done()
		notifySystemd(daemon.SdNotifyStopping)
		return nil
	})

	if configDir != "" {
		g.Go(func() error {
			watchConfig(gctx, configDir)
			return nil
		})
	}

	logging.Info("App", "Serving %d tools over %s", services.Registry.Len(), cfg.Settings.Server.Transport)

	err := g.Wait()
	logging.Info("App", "Shut down")
	return err
}

// watchConfig logs edits to config.yaml until ctx is done. A directory that
// cannot be watched only disables the watcher.
func watchConfig(ctx context.Context, dir string) {
	if _, err := os.Stat(dir); err != nil {
		logging.Debug("App", "Not watching configuration: %v", err)
		return
	}

	w := config.NewWatcher(dir, 0, func(_ config.Config, err error) {
		if err != nil {
			logging.Error("App", err, "Configuration in %s changed and is now invalid", dir)
			return
		}
		logging.Warn("App", "Configuration in %s changed, restart notebridge to apply it", dir)
	})
	if err := w.Run(ctx); err != nil {
		logging.Warn("App", "Configuration watcher stopped: %v", err)
	}
}

func notifySystemd(state string) {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		logging.Warn("App", "Failed to notify systemd: %v", err)
		return
	}
	if sent {
		logging.Debug("App", "Notified systemd: %s", state)
	}
}
