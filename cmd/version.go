package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stellarsec/netscope/internal/message"
	"github.com/stellarsec/netscope/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Netscope",
	Long:  `All software has versions. This is Netscope's`,
	Run: func(cmd *cobra.Command, args []string) {
		message.Info(version.FullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
