package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "skycast",
	Short:   "A terminal client for the 7timer.info weather forecast API",
	Version: version,
	Long: `Skycast fetches weather forecasts from the free, keyless 7timer.info
API: astronomical seeing forecasts for observers, civil forecasts for
everyone else, and the raw meteorological product for those who want
all of it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(productsCmd)
	RootCmd.AddCommand(pingCmd)
}
