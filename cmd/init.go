package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the persistent and run flags, binds them to MNER_*
// environment variables via Viper, and registers all subcommands.
func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgRemoteRoot, "remote-root", "/tmp/mner", "Directory on every host under which sweeps are staged")
	pf.StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	pf.BoolVar(&cfgStrictHost, "strict-host-key", false, "Require host key verification against --known-hosts")
	pf.DurationVar(&cfgConnTimeout, "conn-timeout", 15*time.Second, "Connection timeout per host")
	pf.StringVar(&cfgLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&cfgLogFormat, "log-format", "console", "Log encoding (console, json)")
	pf.StringVar(&cfgLogFile, "log-file", "", "Also write JSON logs to this file, rotated")
	pf.BoolVar(&cfgJournal, "journal", true, "Record every attempt in <output>/journal.db")
	pf.BoolVar(&cfgAgent, "agent", true, "Start a private ssh-agent for the run (disable to use the current one)")

	runCmd.Flags().StringArrayVar(&cfgSSHKeys, "ssh-keys", nil, "Private key to add to the agent; repeatable")
	runCmd.Flags().BoolVar(&cfgNoop, "noop", false, "Print the planned remote command of every pending permutation and exit")

	// Bind env with Viper
	for _, name := range []string{"remote-root", "known-hosts", "strict-host-key", "conn-timeout",
		"log-level", "log-format", "log-file", "journal", "agent"} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}
	_ = viper.BindPFlag("noop", runCmd.Flags().Lookup("noop"))

	viper.SetEnvPrefix("MNER")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("remote-root"); v != "" {
			cfgRemoteRoot = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if v := viper.GetString("conn-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgConnTimeout = d
			}
		}
		if v := viper.GetString("log-level"); v != "" {
			cfgLogLevel = v
		}
		if v := viper.GetString("log-format"); v != "" {
			cfgLogFormat = v
		}
		if v := viper.GetString("log-file"); v != "" {
			cfgLogFile = v
		}
		// Booleans
		if viper.IsSet("strict-host-key") {
			cfgStrictHost = viper.GetBool("strict-host-key")
		}
		if viper.IsSet("journal") {
			cfgJournal = viper.GetBool("journal")
		}
		if viper.IsSet("agent") {
			cfgAgent = viper.GetBool("agent")
		}
		if viper.IsSet("noop") {
			cfgNoop = viper.GetBool("noop")
		}
	})

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(statusCmd)
}
