package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd executes a full sweep: every permutation without a completion
// marker under the output directory is run on the configured hosts. With
// --noop it only prints what would be executed.
var runCmd = &cobra.Command{
	Use:   "run [config] [output]",
	Short: "Run every pending permutation of a sweep",
	Long: "Runs every permutation of the sweep described by config (default experiment.toml) that has no " +
		"completion marker under output/<name> (default results), spreading them across the sweep's hosts.",
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, outputRoot := sweepArgs(args)
		return runSweep(cmd.Context(), cmd.OutOrStdout(), configPath, outputRoot)
	},
}
