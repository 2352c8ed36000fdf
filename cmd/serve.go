package cmd

import (
	"github.com/spf13/cobra"
)

// serveTransport overrides server.transport from the configuration file.
var serveTransport string

// serveCmd starts the MCP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Starts the MCP server and serves workspace tools until interrupted.

Transports:
  stdio            JSON-RPC over stdin/stdout (default). Use this when an
                   MCP client launches notebridge as a subprocess.
  streamable-http  MCP streamable HTTP on server.host:server.port at /mcp.
  sse              Legacy SSE transport at /sse and /message.

Logs are written to stderr so they never interfere with the stdio transport.

Configuration:
  notebridge reads config.yaml from $HOME/.config/notebridge, or from the
  directory given with --config-path. Environment variables override the file:
  NOTEBRIDGE_WORKSPACE_URL, NOTEBRIDGE_WORKSPACE_TOKEN, NOTEBRIDGE_TRANSPORT,
  NOTEBRIDGE_LOG_LEVEL.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	application, err := newApplication(false, serveTransport)
	if err != nil {
		return err
	}
	return application.Run(commandContext(cmd))
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "Transport to serve: stdio, streamable-http or sse (overrides configuration)")
}
