package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"notebridge/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/notebridge"
	configFileName = "config.yaml"
)

// Environment variables that override file values.
const (
	EnvWorkspaceURL   = "NOTEBRIDGE_WORKSPACE_URL"
	EnvWorkspaceToken = "NOTEBRIDGE_WORKSPACE_TOKEN"
	EnvTransport      = "NOTEBRIDGE_TRANSPORT"
	EnvLogLevel       = "NOTEBRIDGE_LOG_LEVEL"
)

// osUserHomeDir is a package variable so tests can redirect the home directory.
var osUserHomeDir = os.UserHomeDir

// DefaultConfigPath returns the user configuration directory.
func DefaultConfigPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// LoadConfig loads the configuration from the user configuration directory.
// A missing file is not an error: defaults and environment overrides apply.
func LoadConfig() (Config, error) {
	dir, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFromPath(dir)
}

// LoadConfigFromPath loads config.yaml from the given directory, applies
// environment overrides and validates the result.
func LoadConfigFromPath(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
	case err != nil:
		return Config{}, fmt.Errorf("error reading config from %s: %w", configFilePath, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
		}
		logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	}

	applyEnvOverrides(&config, os.LookupEnv)

	if err := Validate(config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func applyEnvOverrides(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvWorkspaceURL); ok && v != "" {
		cfg.Workspace.URL = v
	}
	if v, ok := lookup(EnvWorkspaceToken); ok && v != "" {
		cfg.Workspace.Token = v
	}
	if v, ok := lookup(EnvTransport); ok && v != "" {
		cfg.Server.Transport = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	cfg.Workspace.URL = strings.TrimSuffix(cfg.Workspace.URL, "/")
}
