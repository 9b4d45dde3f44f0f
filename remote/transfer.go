package remote

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Allow tests to stub the rsync invocation.
var rsyncFunc = rsync

// rsync copies from to to with the local rsync binary, using rsh as the
// remote shell. The destination mirrors the source; with removeSource the
// transferred source files are deleted as well.
func rsync(ctx context.Context, rsh, from, to string, removeSource bool) error {
	args := []string{"-arz", "--delete", "--mkpath"}
	if rsh != "" {
		args = append(args, "-e", rsh)
	}
	if removeSource {
		args = append(args, "--remove-source-files")
	}
	args = append(args, from, to)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "rsync", args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rsync failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// rshCommand builds the ssh command rsync uses so it reaches the same
// endpoint, as the same user, with the same host key policy as the Go
// client did.
func rshCommand(t Target, opts DialOptions) string {
	parts := []string{"ssh", "-p", strconv.Itoa(t.Port), "-l", ShellQuote(t.User), "-o", "BatchMode=yes"}
	if opts.StrictHostKey {
		if opts.KnownHostsPath != "" {
			parts = append(parts, "-o", ShellQuote("UserKnownHostsFile="+opts.KnownHostsPath))
		}
	} else {
		parts = append(parts, "-o", "StrictHostKeyChecking=no", "-o", "UserKnownHostsFile=/dev/null")
	}
	for _, k := range opts.KeyPaths {
		parts = append(parts, "-i", ShellQuote(k))
	}
	return strings.Join(parts, " ")
}

// remotePath renders host:path for rsync, bracketing IPv6 literals.
func (n *Node) remotePath(path string) string {
	host := n.Target.Host
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return host + ":" + path
}

// Push synchronizes the contents of localDir into remoteDir on the host.
func (n *Node) Push(ctx context.Context, localDir, remoteDir string) error {
	out, err := n.Exec(ctx, "mkdir -p "+ShellQuote(remoteDir))
	if err != nil {
		return fmt.Errorf("failed to create remote directory: %w", err)
	}
	if out.ExitStatus != 0 {
		return fmt.Errorf("failed to create remote directory: %s", strings.TrimSpace(string(out.Stderr)))
	}
	return rsyncFunc(ctx, n.rsh, withTrailingSlash(localDir), n.remotePath(remoteDir), false)
}

// Pull moves the contents of remoteDir into localDir, deleting the remote
// files once they are transferred.
func (n *Node) Pull(ctx context.Context, remoteDir, localDir string) error {
	return rsyncFunc(ctx, n.rsh, n.remotePath(withTrailingSlash(remoteDir)), localDir, true)
}

// withTrailingSlash makes rsync copy a directory's contents rather than the
// directory itself.
func withTrailingSlash(dir string) string {
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}
