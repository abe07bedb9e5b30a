package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive case review screen",
	Long: `Launch the interactive terminal user interface for reviewing cases.

Controls:
  ↑/k, ↓/j - Navigate cases
  Enter    - Case details
  o        - Toggle override
  m        - Switch mode
  g        - Generate paperwork
  r        - Reload cases
  Esc      - Back
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{
		Records:  recordService,
		Generate: generateService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui needs an interactive terminal; use \"kokua cases list\" instead")
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
