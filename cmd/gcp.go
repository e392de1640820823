package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var gcpCmd = &cobra.Command{
	Use:   "gcp",
	Short: "Google Cloud Platform modules",
	Long:  `Run Netscope modules against Google Cloud Platform projects.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(1)
	},
}

var gcpReconCmd = &cobra.Command{
	Use:   "recon",
	Short: "Read-only enumeration of GCP resources",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(1)
	},
}

func init() {
	gcpCmd.AddCommand(gcpReconCmd)
	rootCmd.AddCommand(gcpCmd)
}
