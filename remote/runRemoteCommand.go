package remote

import (
	"context"
	"errors"

	"golang.org/x/crypto/ssh"
)

// runRemoteCommand executes a single command on a fresh session. A remote
// exit status, zero or not, is reported in Output with a nil error; the
// error is reserved for failures to run the command at all. When ctx is
// done first the session is closed and ctx.Err() returned.
func runRemoteCommand(ctx context.Context, client sessionClient, cmd string) (Output, error) {
	type result struct {
		stdout, stderr []byte
		err            error
	}

	currSession, err := client.NewSession()
	if err != nil {
		return Output{ExitStatus: -1}, err
	}

	ch := make(chan result, 1)
	go func() {
		stdout, stderr, err := currSession.Output(cmd)
		ch <- result{stdout, stderr, err}
	}()

	select {
	case r := <-ch:
		_ = currSession.Close()
		out := Output{Stdout: r.stdout, Stderr: r.stderr}
		if r.err == nil {
			return out, nil
		}
		var ee *ssh.ExitError
		if errors.As(r.err, &ee) {
			out.ExitStatus = ee.ExitStatus()
			return out, nil
		}
		out.ExitStatus = -1
		return out, r.err
	case <-ctx.Done():
		_ = currSession.Close()
		return Output{ExitStatus: -1}, ctx.Err()
	}
}
