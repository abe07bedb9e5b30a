package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kokua-cli/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure template and output locations, the timezone printed
on paperwork, and the default tool mode.

Settings live in $KOKUA_HOME/config.toml. Each key can also be overridden
with a KOKUA_ environment variable (e.g. KOKUA_PATHS_OUTPUT), including from
a .env file in the working directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting by key.

Available keys:
  ` + strings.Join(services.SettingsKeys, "\n  "),
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Paths]")
	cmd.Printf("  %-18s %s\n", services.KeyTemplatesDir, orDefault(settings.TemplatesDir, "(kokua home)/templates"))
	cmd.Printf("  %-18s %s\n", services.KeyOutputDir, settings.OutputDir)
	cmd.Println()

	cmd.Println("[Render]")
	cmd.Printf("  %-18s %s\n", services.KeyTimezone, settings.Timezone)
	cmd.Printf("  %-18s %s\n", services.KeyDefaultMode, settings.DefaultMode)
	cmd.Println()

	if _, err := settingsService.Location(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s set to %s\n", args[0], args[1])
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
