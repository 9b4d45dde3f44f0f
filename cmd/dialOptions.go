package cmd

import "github.com/elliopitas/MNER/remote"

// dialOptions builds the connection settings shared by every host. Without
// a private agent the --ssh-keys files are offered directly and must be
// unencrypted.
func dialOptions() remote.DialOptions {
	opts := remote.DialOptions{
		KnownHostsPath: cfgKnownHosts,
		StrictHostKey:  cfgStrictHost,
		Timeout:        cfgConnTimeout,
	}
	if !cfgAgent {
		opts.KeyPaths = cfgSSHKeys
	}
	return opts
}
