package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/elliopitas/MNER/sweep"
)

// statusCmd reports, from the result directories alone, how much of a
// sweep is complete, failed or still pending.
var statusCmd = &cobra.Command{
	Use:   "status [config] [output]",
	Short: "Summarize the progress of a sweep as YAML",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, outputRoot := sweepArgs(args)
		cfg, err := sweep.LoadConfig(configPath)
		if err != nil {
			return err
		}
		outDir := filepath.Join(outputRoot, cfg.Name)
		sum, err := sweep.Summarize(cfg.Permutations(), outDir)
		if err != nil {
			return err
		}
		return writeYAMLReport(cmd.OutOrStdout(), newStatusReport(cfg, outDir, sum))
	},
}
