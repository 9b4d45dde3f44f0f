package remote

import (
	"bytes"

	"golang.org/x/crypto/ssh"
)

// sshSessionWrapper adapts *ssh.Session to the session interface.
type sshSessionWrapper struct {
	s *ssh.Session
}

// Output runs cmd and returns stdout and stderr as separate buffers. The
// error is the one from ssh.Session.Run, so a non-zero exit surfaces as
// *ssh.ExitError.
func (w sshSessionWrapper) Output(cmd string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	w.s.Stdout = &stdout
	w.s.Stderr = &stderr
	err := w.s.Run(cmd)
	return stdout.Bytes(), stderr.Bytes(), err
}

// Close closes the underlying ssh.Session.
func (w sshSessionWrapper) Close() error {
	return w.s.Close()
}
