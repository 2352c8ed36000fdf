package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notebridge/internal/app"
)

// newApplication bootstraps the application from the persistent flags.
// Commands that write their own output run silent so log lines do not mix
// with tables.
func newApplication(silent bool, transport string) (*app.Application, error) {
	cfg := app.NewConfig(debug, configPath, transport, GetVersion())
	cfg.Silent = silent && !debug

	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
