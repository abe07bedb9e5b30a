package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if short, _ := cmd.Flags().GetBool("short"); short { //nolint:errcheck // flag is registered
			cmd.Println(version)
			return
		}
		cmd.Printf("kokua version %s\n", version)
		cmd.Printf("  built with %s for %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "print only the version")
	rootCmd.AddCommand(versionCmd)
}
