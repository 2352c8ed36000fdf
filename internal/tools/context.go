package tools

import (
	"notebridge/internal/config"
	"notebridge/internal/workspace"
	"notebridge/pkg/logging"
)

// ExecutionContext is the shared, read-only bundle of dependencies passed to
// every handler invocation. It lives as long as the server process.
type ExecutionContext struct {
	workspace workspace.API
	config    config.Config
	logger    logging.Logger
}

// NewExecutionContext builds the context. cfg is copied, so later changes by
// the caller are not observed by handlers. A nil logger discards output.
func NewExecutionContext(ws workspace.API, cfg config.Config, logger logging.Logger) *ExecutionContext {
	if logger == nil {
		logger = logging.Discard
	}
	return &ExecutionContext{
		workspace: ws,
		config:    cfg,
		logger:    logger,
	}
}

// Workspace returns the workspace client facade.
func (c *ExecutionContext) Workspace() workspace.API {
	return c.workspace
}

// Config returns a copy of the server configuration.
func (c *ExecutionContext) Config() config.Config {
	return c.config
}

// Logger returns the structured log sink for handlers.
func (c *ExecutionContext) Logger() logging.Logger {
	return c.logger
}
