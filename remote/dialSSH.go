package remote

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// DialOptions controls authentication and host key checking for every node.
type DialOptions struct {
	// KeyPaths are unencrypted private keys offered in addition to the agent.
	KeyPaths       []string
	KnownHostsPath string
	StrictHostKey  bool
	Timeout        time.Duration
}

// Allow tests to stub dialing.
var dialFunc = dialSSH

// dialSSH establishes an SSH client connection to t.
func dialSSH(ctx context.Context, t Target, opts DialOptions) (*ssh.Client, error) {
	var auths []ssh.AuthMethod

	for _, p := range opts.KeyPaths {
		signer, err := loadSigner(p)
		if err != nil {
			return nil, fmt.Errorf("load key: %w", err)
		}
		auths = append(auths, ssh.PublicKeys(signer))
	}

	// The agent started by StartAgent exports SSH_AUTH_SOCK for the process.
	if a := os.Getenv("SSH_AUTH_SOCK"); a != "" {
		if conn, err := net.Dial("unix", a); err == nil {
			// Signers are only needed during the handshake.
			defer func() { _ = conn.Close() }()
			ag := agent.NewClient(conn)
			auths = append(auths, ssh.PublicKeysCallback(ag.Signers))
		}
	}

	var hostKeyCB ssh.HostKeyCallback
	if opts.StrictHostKey {
		if _, err := os.Stat(opts.KnownHostsPath); err != nil {
			return nil, fmt.Errorf("known_hosts file not found at %s and strict-host-key is enabled", opts.KnownHostsPath)
		}
		cb, err := knownhosts.New(opts.KnownHostsPath)
		if err != nil {
			return nil, fmt.Errorf("known_hosts: %w", err)
		}
		hostKeyCB = cb
	} else {
		hostKeyCB = ssh.InsecureIgnoreHostKey()
	}

	cfg := &ssh.ClientConfig{
		User:            t.User,
		Auth:            auths,
		HostKeyCallback: hostKeyCB,
		Timeout:         opts.Timeout,
	}

	addr := t.Addr()
	d := net.Dialer{Timeout: opts.Timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, cfg)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}
