package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/elliopitas/MNER/dispatch"
	"github.com/elliopitas/MNER/remote"
)

// writeTemp creates a temp file with content and returns its path.
func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// resetConfig clears global configuration so tests don't leak state
func resetConfig() {
	viper.Reset()
	viper.SetEnvPrefix("MNER")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}
	cfgSSHKeys = nil
	rootCmd.SetOut(nil)
}

// execute runs the CLI with args and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	rootCmd.SetOut(nil)
	return out.String(), err
}

// sweepFile writes a two-host, four-permutation sweep and returns its path.
func sweepFile(t *testing.T, dir string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "wd"), 0o755))
	return writeTemp(t, dir, "experiment.toml", `
name = "grid"
hosts = ["alpha", "beta"]
workdir = "`+filepath.Join(dir, "wd")+`"
executable = "run.sh"
repeat = 2
threads_per_task = 1

[arguments]
a = ["1", "2"]
`)
}

// stubNode is a dispatch.Node that succeeds at everything.
type stubNode struct {
	name    string
	threads int

	mu      sync.Mutex
	cmds    []string
	removed []string
}

func (n *stubNode) Name() string { return n.name }
func (n *stubNode) Threads() int { return n.threads }

func (n *stubNode) Exec(_ context.Context, cmd string) (remote.Output, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cmds = append(n.cmds, cmd)
	return remote.Output{Stdout: []byte("ok\n")}, nil
}

func (n *stubNode) Push(context.Context, string, string) error { return nil }
func (n *stubNode) Pull(context.Context, string, string) error { return nil }

func (n *stubNode) Remove(_ context.Context, dir string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removed = append(n.removed, dir)
	return nil
}

// connectStub records how connectFunc was called.
type connectStub struct {
	calls  int
	hosts  []string
	opts   remote.DialOptions
	closed int
}

// stubConnect makes connectFunc hand out nodes, or fail with err.
func stubConnect(t *testing.T, err error, nodes ...*stubNode) *connectStub {
	t.Helper()
	s := &connectStub{}
	orig := connectFunc
	connectFunc = func(_ context.Context, hosts []string, opts remote.DialOptions) ([]dispatch.Node, func(), error) {
		s.calls++
		s.hosts, s.opts = hosts, opts
		if err != nil {
			return nil, nil, err
		}
		out := make([]dispatch.Node, len(nodes))
		for i, n := range nodes {
			out[i] = n
		}
		return out, func() { s.closed++ }, nil
	}
	t.Cleanup(func() { connectFunc = orig })
	return s
}

type agentStub struct {
	started int
	keys    []string
	closed  int
}

func (a *agentStub) Close() error {
	a.closed++
	return nil
}

// stubAgent replaces the ssh-agent bootstrap; a non-nil err makes it fail.
func stubAgent(t *testing.T, err error) *agentStub {
	t.Helper()
	a := &agentStub{}
	orig := startAgentFunc
	startAgentFunc = func(_ context.Context, keys []string) (io.Closer, error) {
		a.started++
		a.keys = keys
		if err != nil {
			return nil, err
		}
		return a, nil
	}
	t.Cleanup(func() { startAgentFunc = orig })
	return a
}

var errUnreachable = errors.New(`failed to create node for hostname "beta": connection refused`)
