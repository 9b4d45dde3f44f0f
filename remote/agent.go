package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
)

// Binaries used to bootstrap the agent; tests point these at fakes.
var (
	agentBinary = "ssh-agent"
	addBinary   = "ssh-add"
)

// Agent is a private ssh-agent started for this process. Its socket is
// exported through SSH_AUTH_SOCK so both the Go SSH client and the ssh
// processes spawned by rsync authenticate through it.
type Agent struct {
	PID int

	prev map[string]*string
}

// StartAgent launches ssh-agent, exports its environment into the process
// and loads keys with ssh-add (the default identities when keys is empty).
// Callers must Close the returned agent on every exit path.
func StartAgent(ctx context.Context, keys []string) (*Agent, error) {
	out, err := exec.CommandContext(ctx, agentBinary, "-s").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to start ssh-agent: %w", err)
	}
	vars := parseAgentOutput(string(out))
	pidStr, ok := vars["SSH_AGENT_PID"]
	if !ok {
		return nil, errors.New("could not parse SSH_AGENT_PID from ssh-agent output")
	}
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse SSH_AGENT_PID %q: %w", pidStr, err)
	}

	a := &Agent{PID: pid, prev: make(map[string]*string, len(vars))}
	for k, v := range vars {
		if old, set := os.LookupEnv(k); set {
			a.prev[k] = &old
		} else {
			a.prev[k] = nil
		}
		if err := os.Setenv(k, v); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("export %s: %w", k, err)
		}
	}

	var stderr bytes.Buffer
	add := exec.CommandContext(ctx, addBinary, keys...)
	add.Stderr = &stderr
	if err := add.Run(); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("ssh-add failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return a, nil
}

// parseAgentOutput extracts NAME=value pairs from `ssh-agent -s` output,
// e.g. "SSH_AUTH_SOCK=/tmp/ssh-x/agent.1; export SSH_AUTH_SOCK;".
func parseAgentOutput(s string) map[string]string {
	vars := make(map[string]string)
	for _, line := range strings.Split(s, "\n") {
		assign, _, _ := strings.Cut(line, ";")
		k, v, ok := strings.Cut(strings.TrimSpace(assign), "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}
	return vars
}

// Close terminates the agent and restores the environment it replaced.
// It is safe to call more than once.
func (a *Agent) Close() error {
	if a == nil || a.PID == 0 {
		return nil
	}
	for k, v := range a.prev {
		if v == nil {
			_ = os.Unsetenv(k)
		} else {
			_ = os.Setenv(k, *v)
		}
	}
	pid := a.PID
	a.PID = 0
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill ssh-agent %d: %w", pid, err)
	}
	return nil
}
