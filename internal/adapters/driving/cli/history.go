package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past generation runs",
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show the per-document report of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.PersistentFlags().IntP("limit", "n", 10, "maximum number of runs to list")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if generateService == nil {
		return errors.New("generate service not configured")
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("getting limit flag: %w", err)
	}

	reports, err := generateService.History(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(reports) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for i := range reports {
		r := &reports[i]
		cmd.Printf("  %s  %s  %-11s %d emitted, %d failed\n",
			r.RunID, r.StartedAt.Format("2006-01-02 15:04"), r.Mode, r.Succeeded(), r.Failed())
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if generateService == nil {
		return errors.New("generate service not configured")
	}

	report, err := generateService.Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	newPrinter(cmd).report(report)
	return nil
}
