package cmd

import (
	"github.com/spf13/cobra"

	"github.com/elliopitas/MNER/logging"
)

var rootCmd = &cobra.Command{
	Use:   "mner",
	Short: "Run a parameter sweep across a fleet of SSH hosts",
	Long: "Expands a sweep file into every combination of its arguments, runs each combination on whichever " +
		"host has free capacity and collects the results locally. Interrupted sweeps resume where they stopped.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logConfig())
	},
}
