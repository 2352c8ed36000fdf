// Package config loads and validates notebridge configuration.
//
// Configuration is read from a single YAML file, config.yaml, located in the
// user configuration directory (~/.config/notebridge) or in a directory given
// with --config-path. Values are resolved in this order:
//
//  1. Built-in defaults (GetDefaultConfig)
//  2. config.yaml, if present
//  3. Environment overrides (NOTEBRIDGE_WORKSPACE_URL, NOTEBRIDGE_WORKSPACE_TOKEN,
//     NOTEBRIDGE_TRANSPORT, NOTEBRIDGE_LOG_LEVEL)
//
// The merged result is validated before it is returned. Any problem is
// reported as ValidationErrors and is fatal at startup.
//
// Example config.yaml:
//
//	workspace:
//	  url: http://127.0.0.1:6806
//	  token: abcdef
//	  timeout: 30s
//	server:
//	  transport: streamable-http
//	  port: 8091
//	logging:
//	  level: debug
//	  format: json
package config
