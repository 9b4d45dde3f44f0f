package cmd

import (
	"time"
)

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

// Positional defaults of run and status.
const (
	defaultConfigPath = "experiment.toml"
	defaultOutputRoot = "results"
)

var (
	// Global configuration populated by flags and/or environment variables.
	// These are declared here so they are visible across subcommands.
	cfgRemoteRoot  string
	cfgKnownHosts  string
	cfgStrictHost  bool
	cfgConnTimeout time.Duration
	cfgLogLevel    string
	cfgLogFormat   string
	cfgLogFile     string
	cfgJournal     bool
	cfgAgent       bool

	// run only
	cfgSSHKeys []string
	cfgNoop    bool
)

// Allow tests to stub the agent and the connection pool.
var (
	startAgentFunc = startAgent
	connectFunc    = connectNodes
)
