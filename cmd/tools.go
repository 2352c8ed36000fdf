package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

var (
	toolsOutputFormat string
	toolsFilter       string
	toolsDescription  string
	toolsReadOnly     bool
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools exposed to MCP clients",
	Long: `Lists every tool notebridge registers, in the order MCP clients see them.

Filters:
  --filter       wildcard pattern on the tool name (* and ? supported)
  --description  case-insensitive substring of the description
  --read-only    only tools that do not modify the workspace

Examples:
  notebridge tools
  notebridge tools --filter "get_*"
  notebridge tools --description snapshot -o json`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	if err := validateOutputFormat(toolsOutputFormat); err != nil {
		return err
	}

	application, err := newApplication(true, "")
	if err != nil {
		return err
	}

	var selected []mcp.Tool
	for _, tool := range application.Router().ListTools(commandContext(cmd)).Tools {
		if !matchesWildcard(tool.Name, toolsFilter) || !matchesDescription(tool.Description, toolsDescription) {
			continue
		}
		if toolsReadOnly && !isReadOnly(tool) {
			continue
		}
		selected = append(selected, tool)
	}

	out := cmd.OutOrStdout()
	if toolsOutputFormat != outputTable {
		if selected == nil {
			selected = []mcp.Tool{}
		}
		return writeStructured(out, toolsOutputFormat, selected)
	}

	if len(selected) == 0 {
		fmt.Fprintln(out, text.FgYellow.Sprint("No tools match the given filters"))
		return nil
	}

	t := newTable(out, "NAME", "MODE", "REQUIRED", "DESCRIPTION")
	for _, tool := range selected {
		mode := text.FgYellow.Sprint("write")
		if isReadOnly(tool) {
			mode = text.FgGreen.Sprint("read")
		}
		t.AppendRow([]interface{}{
			tool.Name,
			mode,
			strings.Join(tool.InputSchema.Required, ", "),
			truncate(tool.Description, maxDescriptionWidth),
		})
	}
	t.AppendFooter([]interface{}{fmt.Sprintf("%d tools", len(selected))})
	t.Render()
	return nil
}

func isReadOnly(tool mcp.Tool) bool {
	return tool.Annotations.ReadOnlyHint != nil && *tool.Annotations.ReadOnlyHint
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.Flags().StringVarP(&toolsOutputFormat, "output", "o", outputTable, "Output format (table, json, yaml)")
	toolsCmd.Flags().StringVar(&toolsFilter, "filter", "", "Wildcard pattern on tool names")
	toolsCmd.Flags().StringVar(&toolsDescription, "description", "", "Substring to match in descriptions")
	toolsCmd.Flags().BoolVar(&toolsReadOnly, "read-only", false, "Only list read-only tools")
}
