package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var (
	checkTimeout time.Duration
	checkQuiet   bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the workspace is reachable",
	Long: `Loads the configuration and asks the workspace for its version.

Use this to verify the workspace URL and token before pointing an MCP
client at notebridge. Exits with code 3 if the workspace rejects the
request and 1 if it cannot be reached.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	application, err := newApplication(true, "")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(commandContext(cmd), checkTimeout)
	defer cancel()

	url := application.Settings().Workspace.URL

	var s *spinner.Spinner
	if !checkQuiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
		s.Suffix = fmt.Sprintf(" Contacting workspace at %s...", url)
		s.Start()
	}

	version, err := application.Workspace().Version(ctx)

	if s != nil {
		if err != nil {
			s.FinalMSG = text.FgRed.Sprint("✗ Workspace check failed") + "\n"
		} else {
			s.FinalMSG = text.FgGreen.Sprint("✓ Workspace reachable") + "\n"
		}
		s.Stop()
	}

	if err != nil {
		return fmt.Errorf("workspace at %s is not usable: %w", url, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Workspace %s is running version %s\n", url, version)
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 10*time.Second, "How long to wait for the workspace")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Suppress the progress spinner")
}
