package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// collectCmd is reserved for collecting results of a run without
// dispatching. run already collects every finished permutation.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Reserved; results are collected by run",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "collect is not implemented; run collects results as permutations finish")
		return nil
	},
}
