package dispatch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/elliopitas/MNER/remote"
)

// fakeNode runs nothing; it records what the dispatcher asked of it.
type fakeNode struct {
	name      string
	threads   int
	pushErr   error
	pullErr   error
	removeErr error
	delay     time.Duration
	// exec decides the outcome of a command; nil means exit 0 with "out".
	exec func(cmd string) (remote.Output, error)

	mu          sync.Mutex
	cmds        []string
	pulls       []string
	removed     []string
	inflight    int
	maxInflight int
}

func (n *fakeNode) Name() string { return n.name }
func (n *fakeNode) Threads() int { return n.threads }

func (n *fakeNode) Exec(ctx context.Context, cmd string) (remote.Output, error) {
	n.mu.Lock()
	n.cmds = append(n.cmds, cmd)
	n.inflight++
	n.maxInflight = max(n.maxInflight, n.inflight)
	n.mu.Unlock()
	defer func() {
		n.mu.Lock()
		n.inflight--
		n.mu.Unlock()
	}()

	if n.delay > 0 {
		select {
		case <-time.After(n.delay):
		case <-ctx.Done():
			return remote.Output{ExitStatus: -1}, ctx.Err()
		}
	}
	if n.exec != nil {
		return n.exec(cmd)
	}
	return remote.Output{Stdout: []byte("out\n"), Stderr: []byte("err\n")}, nil
}

func (n *fakeNode) Push(context.Context, string, string) error { return n.pushErr }

// Pull drops a result file into localDir, standing in for rsync.
func (n *fakeNode) Pull(_ context.Context, remoteDir, localDir string) error {
	n.mu.Lock()
	n.pulls = append(n.pulls, remoteDir)
	n.mu.Unlock()
	if n.pullErr != nil {
		return n.pullErr
	}
	return os.WriteFile(filepath.Join(localDir, "result.csv"), []byte("1,2\n"), 0o644)
}

func (n *fakeNode) Remove(_ context.Context, dir string) error {
	n.mu.Lock()
	n.removed = append(n.removed, dir)
	n.mu.Unlock()
	return n.removeErr
}

func (n *fakeNode) commands() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.cmds...)
}

// recorder collects attempts in memory.
type recorder struct {
	mu       sync.Mutex
	attempts []Attempt
}

func (r *recorder) Record(_ context.Context, a Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, a)
	return nil
}

// exitFor fails every command mentioning needle with status code.
func exitFor(needle string, code int) func(string) (remote.Output, error) {
	return func(cmd string) (remote.Output, error) {
		if strings.Contains(cmd, needle) {
			return remote.Output{ExitStatus: code, Stderr: []byte("boom\n")}, nil
		}
		return remote.Output{Stdout: []byte("out\n")}, nil
	}
}
