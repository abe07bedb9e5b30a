package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// ErrDocumentsFailed is returned when a run emitted at least one failed document.
var ErrDocumentsFailed = errors.New("one or more documents failed")

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate paperwork for the stored cases",
	Long: `Assemble every eligible document for the stored cases and write them to
the output directory.

In expungement mode each client gets a summary form and each eligible case
gets a request letter. In warrant mode each case with an outstanding warrant
gets a motion to recall. A failed document never stops the run; the command
exits non-zero when any document failed.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("mode", "m", "", "expungement or warrant (default: stored mode)")
	generateCmd.Flags().StringSliceP("case", "c", nil, "only generate for these case numbers")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if generateService == nil {
		return errors.New("generate service not configured")
	}

	mode, err := cmd.Flags().GetString("mode")
	if err != nil {
		return fmt.Errorf("getting mode flag: %w", err)
	}
	cases, err := cmd.Flags().GetStringSlice("case")
	if err != nil {
		return fmt.Errorf("getting case flag: %w", err)
	}

	opts := domain.GenerateOptions{Mode: domain.Mode(mode), CaseNumbers: cases}
	if opts.Mode != "" && !opts.Mode.IsValid() {
		return fmt.Errorf("%w: mode %q", domain.ErrInvalidInput, mode)
	}

	report, err := generateService.Generate(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	newPrinter(cmd).report(report)
	if report.Failed() > 0 {
		return fmt.Errorf("%w: %d of %d", ErrDocumentsFailed, report.Failed(), len(report.Results))
	}
	return nil
}
