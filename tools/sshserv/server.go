// Package sshserv is a throwaway SSH server for exercising mner's transport
// without real hosts. It accepts any user without authentication and answers
// exec requests through a Handler.
package sshserv

import (
	"crypto/rand"
	"crypto/rsa"
	"net"
	"strings"
	"sync"

	"golang.org/x/crypto/ssh"
)

// Handler produces the stdout, stderr and exit status for one exec request.
type Handler func(cmd string) (stdout, stderr string, exit int)

// DefaultHandler emulates just enough of a shell for mner: nproc reports
// four threads, a command containing "exit N" exits with N, and anything
// else prints "ok".
func DefaultHandler(cmd string) (string, string, int) {
	if strings.TrimSpace(cmd) == "nproc" {
		return "4\n", "", 0
	}
	if i := strings.LastIndex(cmd, "exit "); i >= 0 {
		code := 0
		for _, r := range strings.TrimSpace(cmd[i+5:]) {
			if r < '0' || r > '9' {
				break
			}
			code = code*10 + int(r-'0')
		}
		return "", "exiting\n", code
	}
	return "ok\n", "", 0
}

// Server is a running test server.
type Server struct {
	ln      net.Listener
	cfg     *ssh.ServerConfig
	handler Handler
	done    chan struct{}

	mu       sync.Mutex
	commands []string
}

// Start listens on listenAddr (use 127.0.0.1:0 for a free port) and serves
// until Stop. A nil handler means DefaultHandler.
func Start(listenAddr string, handler Handler) (*Server, error) {
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		_ = ln.Close()
		return nil, err
	}
	signer, err := ssh.NewSignerFromKey(priv)
	if err != nil {
		_ = ln.Close()
		return nil, err
	}
	cfg := &ssh.ServerConfig{NoClientAuth: true}
	cfg.AddHostKey(signer)
	if handler == nil {
		handler = DefaultHandler
	}

	s := &Server{ln: ln, cfg: cfg, handler: handler, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go s.handleConn(conn)
		}
	}()
	return s, nil
}

// Addr returns the listening address.
func (s *Server) Addr() string { return s.ln.Addr().String() }

// Port returns the listening TCP port.
func (s *Server) Port() int { return s.ln.Addr().(*net.TCPAddr).Port }

// Commands returns every exec command received so far, in arrival order.
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}

// Stop closes the listener and waits for the accept loop to exit.
func (s *Server) Stop() {
	_ = s.ln.Close()
	<-s.done
}

func (s *Server) handleConn(raw net.Conn) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, s.cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	defer func() { _ = sc.Close() }()
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, in, err := ch.Accept()
		if err != nil {
			continue
		}
		go s.handleSession(c, in)
	}
}

func (s *Server) handleSession(ch ssh.Channel, in <-chan *ssh.Request) {
	defer func() { _ = ch.Close() }()
	for req := range in {
		if req.Type != "exec" {
			_ = req.Reply(false, nil)
			continue
		}
		var payload struct{ Command string }
		if err := ssh.Unmarshal(req.Payload, &payload); err != nil {
			_ = req.Reply(false, nil)
			return
		}
		_ = req.Reply(true, nil)

		s.mu.Lock()
		s.commands = append(s.commands, payload.Command)
		s.mu.Unlock()

		stdout, stderr, exit := s.handler(payload.Command)
		_, _ = ch.Write([]byte(stdout))
		_, _ = ch.Stderr().Write([]byte(stderr))
		status := struct{ Status uint32 }{uint32(exit)}
		_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(&status))
		return
	}
}
