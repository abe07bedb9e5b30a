// Package cli provides the cobra command tree for kokua.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kokua-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kokua-cli/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// Services injected by main.
var (
	recordService   driving.RecordService
	settingsService driving.SettingsService
	generateService driving.GenerateService
	templateService driving.TemplateService

	// inboxDir is the default directory watched by "cases watch".
	inboxDir string
)

var rootCmd = &cobra.Command{
	Use:   "kokua",
	Short: "Assemble court paperwork from scraped case records",
	Long: `kokua fills expungement and bench warrant paperwork from case records
exported by the court portal scraper.

Import an export with "kokua cases import", review the cases, set the
attorney profile, then run "kokua generate".`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose { //nolint:errcheck // flag is always registered
			logger.SetVerbose(true)
		}
	},
}

// Services holds the driving ports used by the commands.
type Services struct {
	Records   driving.RecordService
	Settings  driving.SettingsService
	Generate  driving.GenerateService
	Templates driving.TemplateService

	// InboxDir is the default watch directory for scraper exports.
	InboxDir string
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	recordService = s.Records
	settingsService = s.Settings
	generateService = s.Generate
	templateService = s.Templates
	inboxDir = s.InboxDir
}

// SetVersion sets the version reported by "kokua version".
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}
