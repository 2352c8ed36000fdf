package app

import (
	"fmt"

	"notebridge/internal/dispatch"
	"notebridge/internal/handlers"
	"notebridge/internal/server"
	"notebridge/internal/tools"
	"notebridge/internal/workspace"
	"notebridge/pkg/logging"
)

// Services holds the components built at startup.
type Services struct {
	Workspace        *workspace.Client
	ExecutionContext *tools.ExecutionContext
	Registry         *tools.Registry
	Prompts          *dispatch.PromptCatalog
	Router           *dispatch.Router
	Server           *server.Server
}

// InitializeServices builds every component from the loaded configuration.
// The registry is frozen before the router sees it.
func InitializeServices(cfg *Config) (*Services, error) {
	settings := *cfg.Settings

	client := workspace.NewClient(
		settings.Workspace.URL,
		workspace.WithToken(settings.Workspace.Token),
		workspace.WithTimeout(settings.Workspace.Timeout),
	)
	logging.Debug("Services", "Workspace client targets %s", client.BaseURL())

	execCtx := tools.NewExecutionContext(client, settings, logging.ForSubsystem("Handlers"))

	registry := tools.NewRegistry()
	if err := handlers.Register(registry); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	registry.Freeze()
	logging.Info("Services", "Registered %d tools", registry.Len())

	prompts, err := dispatch.NewDefaultPromptCatalog(dispatch.PromptData{
		ServerName:   settings.Server.Name,
		WorkspaceURL: client.BaseURL(),
		Tools:        registry.Names(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt catalog: %w", err)
	}

	router := dispatch.NewRouter(registry, execCtx, dispatch.WithPrompts(prompts))

	var serverOpts []server.Option
	if cfg.Stdin != nil && cfg.Stdout != nil {
		serverOpts = append(serverOpts, server.WithStdio(cfg.Stdin, cfg.Stdout))
	}
	mcpServer := server.New(settings.Server, cfg.Version, router, serverOpts...)

	return &Services{
		Workspace:        client,
		ExecutionContext: execCtx,
		Registry:         registry,
		Prompts:          prompts,
		Router:           router,
		Server:           mcpServer,
	}, nil
}
