package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the registered paperwork templates",
	RunE:  runTemplatesList,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesList,
}

var templatesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify every template loads and carries its placeholders",
	Long: `Load each registered template from the templates directory and verify
that its markup part, optional regions and form fields are present.`,
	Args: cobra.NoArgs,
	RunE: runTemplatesCheck,
}

func init() {
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesCheckCmd)
	rootCmd.AddCommand(templatesCmd)
}

func runTemplatesList(cmd *cobra.Command, _ []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}

	for _, d := range templateService.List() {
		cmd.Printf("  %-22s %-8s %-7s %s\n", d.Kind, d.Variant, d.Format, d.Resource)
	}
	return nil
}

func runTemplatesCheck(cmd *cobra.Command, _ []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}

	checks, err := templateService.Check(cmd.Context())
	if err != nil {
		return fmt.Errorf("template check failed: %w", err)
	}

	p := newPrinter(cmd)
	failed := 0
	for _, c := range checks {
		if c.OK() {
			fmt.Fprintf(p.w, "  %s %s (%s %s)\n", p.success("ok"), c.Resource, c.Kind, c.Variant)
			continue
		}
		failed++
		fmt.Fprintf(p.w, "  %s %s (%s %s): %v\n", p.failure("FAIL"), c.Resource, c.Kind, c.Variant, c.Err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d templates failed", failed, len(checks))
	}
	cmd.Println("All templates OK.")
	return nil
}
