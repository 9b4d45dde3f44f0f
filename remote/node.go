package remote

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Node is one connected remote host. The connection is opened once and
// shared by every worker assigned to the host; each command gets its own
// session on it.
type Node struct {
	Host   string // identifier as written in the sweep config
	Target Target // effective endpoint after alias resolution

	threads  int
	sessions sessionClient
	closer   io.Closer
	rsh      string
}

// Allow tests to stub command execution.
var runRemoteCommandFunc = runRemoteCommand

// connectNode dials host and asks it for its thread count. Any failure
// closes the connection again.
func connectNode(ctx context.Context, host string, resolver *Resolver, opts DialOptions) (*Node, error) {
	t := resolver.Resolve(host)
	client, err := dialFunc(ctx, t, opts)
	if err != nil {
		return nil, fmt.Errorf("ssh connection to %s failed: %w", t.Addr(), err)
	}
	n := &Node{
		Host:     host,
		Target:   t,
		sessions: sshClientWrapper{client},
		closer:   client,
		rsh:      rshCommand(t, opts),
	}
	if err := n.queryThreads(ctx); err != nil {
		_ = n.Close()
		return nil, err
	}
	return n, nil
}

// queryThreads runs nproc and records the result as the node's capacity.
func (n *Node) queryThreads(ctx context.Context) error {
	out, err := n.Exec(ctx, "nproc")
	if err != nil {
		return fmt.Errorf("failed to query for threads: %w", err)
	}
	if out.ExitStatus != 0 {
		return fmt.Errorf("nproc exited with %d: %s", out.ExitStatus, strings.TrimSpace(string(out.Stderr)))
	}
	threads, err := strconv.Atoi(strings.TrimSpace(string(out.Stdout)))
	if err != nil || threads < 0 {
		return fmt.Errorf("failed to parse threads %q", strings.TrimSpace(string(out.Stdout)))
	}
	n.threads = threads
	return nil
}

// Name returns the configured host identifier.
func (n *Node) Name() string { return n.Host }

// Threads returns the thread count reported by the host at connect time.
func (n *Node) Threads() int { return n.threads }

// Exec runs cmd through the remote user's shell and waits for it to exit.
func (n *Node) Exec(ctx context.Context, cmd string) (Output, error) {
	return runRemoteCommandFunc(ctx, n.sessions, cmd)
}

// Remove deletes dir on the host recursively.
func (n *Node) Remove(ctx context.Context, dir string) error {
	out, err := n.Exec(ctx, "rm -rf "+ShellQuote(dir))
	if err != nil {
		return fmt.Errorf("failed to execute rm: %w", err)
	}
	if out.ExitStatus != 0 {
		return fmt.Errorf("rm failed: %s", strings.TrimSpace(string(out.Stderr)))
	}
	return nil
}

// Close closes the SSH connection.
func (n *Node) Close() error {
	if n.closer == nil {
		return nil
	}
	return n.closer.Close()
}
