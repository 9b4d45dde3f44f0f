package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elliopitas/MNER/sweep"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [config]",
	Short: "Validate a sweep file and report its size",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := sweepArgs(args)
		cfg, err := sweep.LoadConfig(configPath)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config OK: %s, %d permutations across %d hosts\n",
			cfg.Name, len(cfg.Permutations()), len(cfg.Hosts))
		return nil
	},
}
