// Package remote connects mner to its compute hosts.
//
// A Node is one connected SSH host: it runs single shell commands with
// separately captured stdout/stderr, reports its thread count, and moves
// directories to and from the host with rsync. Connect builds every Node of
// a run at once and fails the whole pool if any host cannot be reached.
// StartAgent bootstraps the ssh-agent the rest of the process authenticates
// through.
//
// Start with node.go for the Node surface, pool.go for fail-fast connection,
// and runRemoteCommand.go for how exit status is separated from transport
// failures.
package remote
