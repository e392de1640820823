package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/stellarsec/netscope/internal/message"
	"github.com/stellarsec/netscope/modules"
	recongcp "github.com/stellarsec/netscope/modules/recon/gcp"
)

var gcpNetworkInfoCmd = &cobra.Command{
	Use:   recongcp.NetworkInfoMetadata.Id,
	Short: "Enumerate VPC networking resources for a set of projects and regions",
	Long:  recongcp.NetworkInfoMetadata.Description,
	Run: func(cmd *cobra.Command, args []string) {
		message.Banner()

		opts := getOpts(cmd, recongcp.NetworkInfoOptions)
		run := modules.NewRun()

		module, err := recongcp.NewNetworkInfo(opts, run)
		if err != nil {
			message.Error("%s", err)
			os.Exit(1)
		}

		if err := runModule(module, recongcp.NetworkInfoMetadata, run); err != nil {
			// An invalid region was already reported by the module.
			if !errors.Is(err, recongcp.ErrInvalidRegion) {
				message.Error("%s", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	options2Flag(recongcp.NetworkInfoOptions, gcpNetworkInfoCmd)
	gcpReconCmd.AddCommand(gcpNetworkInfoCmd)
}
