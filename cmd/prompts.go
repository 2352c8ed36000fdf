package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"notebridge/internal/dispatch"
)

var (
	promptsOutputFormat string
	promptsArgs         []string
)

var promptsCmd = &cobra.Command{
	Use:   "prompts [name]",
	Short: "List prompts, or render one",
	Long: `Without arguments, lists the guidance prompts MCP clients can request.
With a prompt name, renders that prompt exactly as a client would receive it.

Examples:
  notebridge prompts
  notebridge prompts workspace_guide --arg topic=snapshots`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrompts,
}

func runPrompts(cmd *cobra.Command, args []string) error {
	if err := validateOutputFormat(promptsOutputFormat); err != nil {
		return err
	}
	promptArgs, err := parseKeyValues(promptsArgs)
	if err != nil {
		return err
	}

	application, err := newApplication(true, "")
	if err != nil {
		return err
	}
	router := application.Router()
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		result, err := router.GetPrompt(ctx, args[0], promptArgs)
		if err != nil {
			return err
		}
		if promptsOutputFormat != outputTable {
			return writeStructured(out, promptsOutputFormat, result)
		}
		fmt.Fprintln(out, dispatch.PromptText(result))
		return nil
	}

	prompts := router.ListPrompts(ctx).Prompts
	if promptsOutputFormat != outputTable {
		return writeStructured(out, promptsOutputFormat, prompts)
	}

	t := newTable(out, "NAME", "ARGUMENTS", "DESCRIPTION")
	for _, p := range prompts {
		var argNames []string
		for _, a := range p.Arguments {
			name := a.Name
			if a.Required {
				name = text.Bold.Sprint(name)
			}
			argNames = append(argNames, name)
		}
		t.AppendRow([]interface{}{p.Name, strings.Join(argNames, ", "), truncate(p.Description, maxDescriptionWidth)})
	}
	t.Render()
	return nil
}

// parseKeyValues turns ["k=v", ...] into a map.
func parseKeyValues(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid argument %q, expected key=value", pair)
		}
		result[strings.TrimSpace(key)] = value
	}
	return result, nil
}

func init() {
	rootCmd.AddCommand(promptsCmd)

	promptsCmd.Flags().StringVarP(&promptsOutputFormat, "output", "o", outputTable, "Output format (table, json, yaml)")
	promptsCmd.Flags().StringArrayVar(&promptsArgs, "arg", nil, "Prompt argument as key=value (repeatable)")
}
