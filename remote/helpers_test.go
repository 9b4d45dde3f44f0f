package remote

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// writeTemp creates a file under dir with content and returns its path.
func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	return p
}

// fakeSession records the commands it is given and answers with canned
// output after an optional delay.
type fakeSession struct {
	stdout, stderr []byte
	err            error
	delay          time.Duration

	mu     sync.Mutex
	cmds   []string
	closed bool
}

func (s *fakeSession) Output(cmd string) ([]byte, []byte, error) {
	s.mu.Lock()
	s.cmds = append(s.cmds, cmd)
	s.mu.Unlock()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.stdout, s.stderr, s.err
}

func (s *fakeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSession) commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cmds...)
}

func (s *fakeSession) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

type fakeClient struct {
	sess   *fakeSession
	newErr error
}

func (c *fakeClient) NewSession() (session, error) {
	if c.newErr != nil {
		return nil, c.newErr
	}
	return c.sess, nil
}

// fakeNode returns a Node whose sessions come from sess.
func fakeNode(sess *fakeSession) *Node {
	return &Node{
		Host:     "alpha",
		Target:   Target{Host: "10.0.0.5", Port: 2222, User: "bench"},
		threads:  4,
		sessions: &fakeClient{sess: sess},
		rsh:      "ssh -p 2222",
	}
}
