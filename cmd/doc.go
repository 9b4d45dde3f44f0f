// Package cmd implements the mner command-line interface.
//
// The package wires the run, collect, verify and status subcommands with
// cobra, binds their flags to MNER_* environment variables through viper,
// and turns a sweep file into a dispatched run.
//
// New contributors should start by reading rootCmd.go and init.go to see how
// cobra is wired, then runSweep.go for the main execution flow: load the
// sweep, filter completed permutations, start the agent, connect every
// host, dispatch and clean up.
package cmd
