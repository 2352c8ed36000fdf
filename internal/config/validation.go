package config

import (
	"fmt"
	"net/url"
	"strings"

	"notebridge/pkg/logging"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// Validate checks a fully merged configuration. It returns ValidationErrors
// listing every problem found, or nil.
func Validate(cfg Config) error {
	var errs ValidationErrors

	if strings.TrimSpace(cfg.Workspace.URL) == "" {
		errs.Add("workspace.url", "is required")
	} else if u, err := url.Parse(cfg.Workspace.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs.Add("workspace.url", "must be an absolute http(s) URL", cfg.Workspace.URL)
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs.Add("workspace.url", "scheme must be http or https", cfg.Workspace.URL)
	}

	if cfg.Workspace.Timeout <= 0 {
		errs.Add("workspace.timeout", "must be positive", cfg.Workspace.Timeout)
	}

	if strings.TrimSpace(cfg.Server.Name) == "" {
		errs.Add("server.name", "is required")
	}

	switch cfg.Server.Transport {
	case TransportStdio:
	case TransportStreamableHTTP, TransportSSE:
		if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
			errs.Add("server.port", "must be between 1 and 65535", cfg.Server.Port)
		}
	default:
		errs.Add("server.transport", fmt.Sprintf("must be one of %s, %s, %s",
			TransportStdio, TransportStreamableHTTP, TransportSSE), cfg.Server.Transport)
	}

	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		errs.Add("logging.level", err.Error(), cfg.Logging.Level)
	}
	if cfg.Logging.Format != logging.FormatText && cfg.Logging.Format != logging.FormatJSON {
		errs.Add("logging.format", "must be text or json", cfg.Logging.Format)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
