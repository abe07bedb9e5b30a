package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driving/inbox"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Manage imported case records",
	RunE:  runCasesList,
}

var casesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored cases",
	Args:  cobra.NoArgs,
	RunE:  runCasesList,
}

var casesShowCmd = &cobra.Command{
	Use:   "show [case-number]",
	Short: "Show one case with its charges",
	Args:  cobra.ExactArgs(1),
	RunE:  runCasesShow,
}

var casesImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a scraper export (JSON or YAML)",
	Long: `Merge a scraper export into the stored cases. Cases are matched by case
number; an operator override survives re-import. Use "-" to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runCasesImport,
}

var casesOverrideCmd = &cobra.Command{
	Use:   "override [case-number]",
	Short: "Force expungement paperwork for a case",
	Args:  cobra.ExactArgs(1),
	RunE:  runCasesOverride,
}

var casesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every stored case",
	Args:  cobra.NoArgs,
	RunE:  runCasesClear,
}

var casesWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Import exports dropped into an inbox directory",
	Long: `Import every export already in the inbox, then watch it for new files.
Imported files are moved to the processed/ subdirectory. Stops on Ctrl+C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCasesWatch,
}

func init() {
	casesOverrideCmd.Flags().Bool("clear", false, "clear the override instead of setting it")
	casesCmd.AddCommand(casesListCmd)
	casesCmd.AddCommand(casesShowCmd)
	casesCmd.AddCommand(casesImportCmd)
	casesCmd.AddCommand(casesOverrideCmd)
	casesCmd.AddCommand(casesClearCmd)
	casesCmd.AddCommand(casesWatchCmd)
	rootCmd.AddCommand(casesCmd)
}

func runCasesList(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	cases, err := recordService.Cases(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list cases: %w", err)
	}
	if len(cases) == 0 {
		cmd.Println("No cases stored. Import an export with 'kokua cases import'.")
		return nil
	}

	mode, err := recordService.Mode(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read mode: %w", err)
	}

	cmd.Printf("Cases (%d, mode: %s):\n", len(cases), mode)
	for i := range cases {
		c := &cases[i]
		mark := " "
		if eligible(c, mode) {
			mark = "*"
		}
		verdict := c.Expungeable.String()
		if mode == domain.ModeWarrant {
			verdict = c.WarrantStatus.Label()
		}
		line := fmt.Sprintf("  %s %-18s %-28s %s", mark, c.CaseNumber, c.DefendantName, verdict)
		if c.Override {
			line += " [override]"
		}
		cmd.Println(line)
	}
	return nil
}

func runCasesShow(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	c, err := recordService.Case(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Case:        %s\n", c.CaseNumber)
	cmd.Printf("Defendant:   %s\n", c.DefendantName)
	cmd.Printf("Type:        %s\n", c.CaseType)
	cmd.Printf("Court:       %s\n", c.CourtLocation)
	cmd.Printf("Filed:       %s\n", c.FilingDate)
	cmd.Printf("Expungeable: %s\n", c.Expungeable)
	if c.Override {
		cmd.Println("Override:    yes")
	}
	cmd.Printf("Warrant:     %s\n", c.WarrantStatus.Label())
	if w := c.WarrantStatus; w != nil && w.LatestWarrantDate != "" {
		cmd.Printf("             %s issued %s %s\n", w.LatestWarrantType, w.LatestWarrantDate, w.LatestWarrantAmount)
	}

	cmd.Printf("Charges (%d):\n", len(c.Charges))
	for _, ch := range c.Charges {
		cmd.Printf("  %s\n", strings.TrimSpace(strings.Join([]string{ch.Count, ch.Statute, ch.Description}, " ")))
		if ch.Expungeability.Status != "" {
			cmd.Printf("    %s\n", ch.Expungeability.Status)
		}
	}
	return nil
}

func runCasesImport(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}

	result, err := recordService.ImportCases(cmd.Context(), data)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d cases (%d new, %d updated).\n", result.Added+result.Updated, result.Added, result.Updated)
	cmd.Printf("%d cases stored.\n", result.Total)
	return nil
}

func runCasesOverride(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	unset, err := cmd.Flags().GetBool("clear")
	if err != nil {
		return fmt.Errorf("getting clear flag: %w", err)
	}

	if err := recordService.SetOverride(cmd.Context(), args[0], !unset); err != nil {
		return err
	}
	if unset {
		cmd.Printf("Override cleared on %s.\n", args[0])
	} else {
		cmd.Printf("Override set on %s.\n", args[0])
	}
	return nil
}

func runCasesClear(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	if err := recordService.ClearCases(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear cases: %w", err)
	}
	cmd.Println("All cases removed.")
	return nil
}

func runCasesWatch(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	dir := inboxDir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		return errors.New("no inbox directory given")
	}

	ctx := cmd.Context()
	w := inbox.New(dir, recordService)

	existing, err := w.ImportExisting(ctx)
	if err != nil {
		return fmt.Errorf("failed to import inbox: %w", err)
	}
	for _, ev := range existing {
		printInboxEvent(cmd, ev)
	}

	events, err := w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch inbox: %w", err)
	}
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", w.Dir())

	for ev := range events {
		printInboxEvent(cmd, ev)
	}
	return nil
}

func printInboxEvent(cmd *cobra.Command, ev inbox.Event) {
	if ev.Err != nil {
		cmd.Printf("%s: %v\n", ev.Path, ev.Err)
		return
	}
	cmd.Printf("%s: %d new, %d updated (%d stored)\n", ev.Path, ev.Result.Added, ev.Result.Updated, ev.Result.Total)
}

func eligible(c *domain.CaseRecord, mode domain.Mode) bool {
	if mode == domain.ModeWarrant {
		return c.HasOutstandingWarrant()
	}
	return c.ExpungementEligible()
}
