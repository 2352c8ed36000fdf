package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"notebridge/internal/config"
	"notebridge/internal/dispatch"
	"notebridge/internal/workspace"
	"notebridge/pkg/logging"
)

// Application bootstraps and runs notebridge.
//
// Example usage:
//
//	cfg := app.NewConfig(false, "", "", version)
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return fmt.Errorf("failed to create application: %w", err)
//	}
//	return application.Run(ctx)
type Application struct {
	config   *Config
	services *Services

	// configDir is where the settings were loaded from. Empty when they
	// were supplied pre-populated.
	configDir string
}

// NewApplication loads configuration, initializes logging and builds all
// services. It does not start serving.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	var logOutput io.Writer = os.Stderr
	if cfg.Silent {
		logOutput = io.Discard
	}
	logging.InitForCLI(appLogLevel, logOutput)

	var configDir string
	if cfg.Settings == nil {
		settings, dir, err := loadSettings(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, err
		}
		cfg.Settings = &settings
		configDir = dir
	}

	if cfg.Transport != "" {
		cfg.Settings.Server.Transport = cfg.Transport
		if err := config.Validate(*cfg.Settings); err != nil {
			return nil, fmt.Errorf("invalid transport override: %w", err)
		}
	}

	level, err := logging.ParseLevel(cfg.Settings.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Debug {
		level = logging.LevelDebug
	}
	logging.Init(level, cfg.Settings.Logging.Format, logOutput)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:    cfg,
		services:  services,
		configDir: configDir,
	}, nil
}

// loadSettings loads the configuration and returns the directory it came from.
func loadSettings(configPath string) (config.Config, string, error) {
	if configPath != "" {
		settings, err := config.LoadConfigFromPath(configPath)
		if err != nil {
			return config.Config{}, "", fmt.Errorf("failed to load configuration from path %s: %w", configPath, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", configPath)
		return settings, configPath, nil
	}

	dir, err := config.DefaultConfigPath()
	if err != nil {
		return config.Config{}, "", err
	}
	settings, err := config.LoadConfigFromPath(dir)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("failed to load configuration: %w", err)
	}
	return settings, dir, nil
}

// Settings returns the effective configuration.
func (a *Application) Settings() config.Config {
	return *a.config.Settings
}

// Router returns the dispatch router.
func (a *Application) Router() *dispatch.Router {
	return a.services.Router
}

// Workspace returns the workspace client.
func (a *Application) Workspace() workspace.API {
	return a.services.Workspace
}

// Services returns every component built at startup.
func (a *Application) Services() *Services {
	return a.services
}

// Run serves MCP until ctx is cancelled or a termination signal arrives.
func (a *Application) Run(ctx context.Context) error {
	return runServer(ctx, a.config, a.services, a.configDir)
}
