package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"notebridge/internal/config"
	"notebridge/internal/workspace"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfig indicates the configuration could not be loaded or is invalid.
	ExitCodeConfig = 2
	// ExitCodeWorkspace indicates the workspace rejected a request.
	ExitCodeWorkspace = 3
)

var (
	// configPath is the directory holding config.yaml.
	configPath string

	// debug enables verbose logging across the application.
	debug bool
)

// rootCmd represents the base command for the notebridge application.
var rootCmd = &cobra.Command{
	Use:   "notebridge",
	Short: "Expose a note-taking workspace to AI assistants over MCP",
	Long: `notebridge is a Model Context Protocol server for a note-taking workspace.

It exposes notebooks, documents, blocks, attributes, snapshots, tags,
full-text search and SQL queries as MCP tools, so assistants can read and
edit notes through a uniform tool interface.

Start the server with 'notebridge serve'. Use 'notebridge tools' to see
what is exposed and 'notebridge console' to try tools interactively.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "notebridge version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	var validationErrs config.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ExitCodeConfig
	}

	var validationErr config.ValidationError
	if errors.As(err, &validationErr) {
		return ExitCodeConfig
	}

	var apiErr *workspace.APIError
	if errors.As(err, &apiErr) {
		return ExitCodeWorkspace
	}

	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Configuration directory containing config.yaml (default is $HOME/.config/notebridge)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
}
