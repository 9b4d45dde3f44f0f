package remote

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kevinburke/ssh_config"
)

const defaultPort = 22

// Target is the effective connection endpoint of a configured host.
type Target struct {
	Host string
	Port int
	User string
}

// Addr returns host:port suitable for net.Dial.
func (t Target) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// Resolver maps host identifiers to Targets using the HostName, Port and
// User entries of an OpenSSH client config.
type Resolver struct {
	cfg         *ssh_config.Config
	defaultUser string
}

// NewResolver reads ~/.ssh/config when it exists. A missing or unreadable
// file only means no overrides apply.
func NewResolver() *Resolver {
	r := &Resolver{defaultUser: invokingUser()}
	home, err := os.UserHomeDir()
	if err != nil {
		return r
	}
	f, err := os.Open(filepath.Join(home, ".ssh", "config"))
	if err != nil {
		return r
	}
	defer func() { _ = f.Close() }()
	if cfg, err := ssh_config.Decode(f); err == nil {
		r.cfg = cfg
	}
	return r
}

// NewResolverFrom decodes an ssh client config from rd. defaultUser is used
// when the config has no User for a host; empty means the invoking user.
func NewResolverFrom(rd io.Reader, defaultUser string) (*Resolver, error) {
	cfg, err := ssh_config.Decode(rd)
	if err != nil {
		return nil, err
	}
	if defaultUser == "" {
		defaultUser = invokingUser()
	}
	return &Resolver{cfg: cfg, defaultUser: defaultUser}, nil
}

// Resolve returns the Target for host, falling back to the literal host,
// port 22 and the default user for anything the config does not set.
func (r *Resolver) Resolve(host string) Target {
	if r == nil {
		return Target{Host: host, Port: defaultPort, User: invokingUser()}
	}
	t := Target{Host: host, Port: defaultPort, User: r.defaultUser}
	if r.cfg == nil {
		return t
	}
	if v, err := r.cfg.Get(host, "HostName"); err == nil && v != "" {
		t.Host = v
	}
	if v, err := r.cfg.Get(host, "Port"); err == nil && v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			t.Port = p
		}
	}
	if v, err := r.cfg.Get(host, "User"); err == nil && v != "" {
		t.User = v
	}
	return t
}

func invokingUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "root"
}
