package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"notebridge/internal/dispatch"
)

// errExit is returned by the console when the user asks to leave.
var errExit = errors.New("exit")

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive console for calling tools",
	Long: `Starts an interactive console that dispatches through the same router the
MCP server uses. No MCP client is needed.

Commands:
  tools [pattern]            List tools, optionally filtered by wildcard
  call <tool> [json-args]    Call a tool, e.g. call get_block {"id": "..."}
  prompts                    List prompts
  prompt <name> [key=value]  Render a prompt
  help                       Show this help
  exit                       Leave the console

Use TAB for completion. History is kept between sessions.`,
	Args: cobra.NoArgs,
}

// console executes console commands against a router.
type console struct {
	router *dispatch.Router
	out    io.Writer
}

func runConsole(cmd *cobra.Command, args []string) error {
	application, err := newApplication(true, "")
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	c := &console{router: application.Router(), out: cmd.OutOrStdout()}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            text.FgHiCyan.Sprint("notebridge") + "> ",
		HistoryFile:       filepath.Join(os.TempDir(), ".notebridge_console_history"),
		AutoComplete:      c.completer(ctx),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(c.out, "Connected to %s. Type 'help' for commands.\n\n", application.Settings().Workspace.URL)

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		if err := c.execute(ctx, line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			fmt.Fprintln(c.out, text.FgRed.Sprintf("Error: %v", err))
		}
		fmt.Fprintln(c.out)
	}
}

func (c *console) completer(ctx context.Context) *readline.PrefixCompleter {
	var toolItems []readline.PrefixCompleterInterface
	for _, tool := range c.router.ListTools(ctx).Tools {
		toolItems = append(toolItems, readline.PcItem(tool.Name))
	}
	var promptItems []readline.PrefixCompleterInterface
	for _, p := range c.router.ListPrompts(ctx).Prompts {
		promptItems = append(promptItems, readline.PcItem(p.Name))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("tools"),
		readline.PcItem("call", toolItems...),
		readline.PcItem("prompts"),
		readline.PcItem("prompt", promptItems...),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// execute runs a single console line.
func (c *console) execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch command {
	case "help", "?":
		fmt.Fprintln(c.out, consoleCmd.Long)
		return nil

	case "exit", "quit":
		return errExit

	case "tools":
		for _, tool := range c.router.ListTools(ctx).Tools {
			if matchesWildcard(tool.Name, rest) {
				fmt.Fprintf(c.out, "  %-24s %s\n", tool.Name, truncate(tool.Description, maxDescriptionWidth))
			}
		}
		return nil

	case "call":
		name, rawArgs, _ := strings.Cut(rest, " ")
		if name == "" {
			return fmt.Errorf("usage: call <tool> [json-args]")
		}
		args, err := parseToolArgs(strings.TrimSpace(rawArgs))
		if err != nil {
			return err
		}
		result := c.router.CallTool(ctx, name, args)
		if result.IsError {
			fmt.Fprintln(c.out, text.FgRed.Sprint(dispatch.ResultText(result)))
			return nil
		}
		fmt.Fprintln(c.out, dispatch.ResultText(result))
		return nil

	case "prompts":
		for _, p := range c.router.ListPrompts(ctx).Prompts {
			fmt.Fprintf(c.out, "  %-24s %s\n", p.Name, p.Description)
		}
		return nil

	case "prompt":
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return fmt.Errorf("usage: prompt <name> [key=value ...]")
		}
		promptArgs, err := parseKeyValues(fields[1:])
		if err != nil {
			return err
		}
		result, err := c.router.GetPrompt(ctx, fields[0], promptArgs)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, dispatch.PromptText(result))
		return nil

	default:
		return fmt.Errorf("unknown command %q, type 'help' for commands", command)
	}
}

func init() {
	// Assigned here to break the consoleCmd -> runConsole -> execute -> consoleCmd initialization cycle.
	consoleCmd.RunE = runConsole
	rootCmd.AddCommand(consoleCmd)
}
