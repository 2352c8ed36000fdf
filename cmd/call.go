package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"notebridge/internal/dispatch"
)

var (
	callArgs  string
	callQuiet bool
)

// errToolFailed is returned when a tool call produced an error envelope.
// The envelope text has already been printed.
var errToolFailed = errors.New("tool call failed")

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Call a single tool and print its result",
	Long: `Calls one tool through the same dispatch path MCP clients use and prints
the response text. Arguments are passed as a JSON object.

Examples:
  notebridge call list_notebooks
  notebridge call get_document --args '{"id": "20240101120000-abcdefg"}'
  notebridge call search_fulltext --args '{"query": "roadmap", "page": 2}'`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	toolArgs, err := parseToolArgs(callArgs)
	if err != nil {
		return err
	}

	application, err := newApplication(true, "")
	if err != nil {
		return err
	}

	var s *spinner.Spinner
	if !callQuiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
		s.Suffix = fmt.Sprintf(" Calling %s...", args[0])
		s.Start()
	}

	result := application.Router().CallTool(commandContext(cmd), args[0], toolArgs)

	if s != nil {
		s.Stop()
	}

	if result.IsError {
		fmt.Fprintln(cmd.ErrOrStderr(), dispatch.ResultText(result))
		return errToolFailed
	}
	fmt.Fprintln(cmd.OutOrStdout(), dispatch.ResultText(result))
	return nil
}

// parseToolArgs decodes a JSON object of tool arguments. Empty input is an
// empty object.
func parseToolArgs(raw string) (map[string]interface{}, error) {
	args := map[string]interface{}{}
	if raw == "" {
		return args, nil
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return args, nil
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().StringVar(&callArgs, "args", "", "Tool arguments as a JSON object")
	callCmd.Flags().BoolVarP(&callQuiet, "quiet", "q", false, "Suppress the progress spinner")
}
