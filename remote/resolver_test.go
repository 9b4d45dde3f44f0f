package remote

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSSHConfig = `
Host gpu1
  HostName 10.1.2.3
  Port 2200
  User bench

Host cpu*
  User batch
`

func TestResolver_AppliesOverrides(t *testing.T) {
	r, err := NewResolverFrom(strings.NewReader(sampleSSHConfig), "fallback")
	require.NoError(t, err)

	require.Equal(t, Target{Host: "10.1.2.3", Port: 2200, User: "bench"}, r.Resolve("gpu1"))
	require.Equal(t, Target{Host: "cpu7", Port: 22, User: "batch"}, r.Resolve("cpu7"))
	require.Equal(t, Target{Host: "other.example", Port: 22, User: "fallback"}, r.Resolve("other.example"))
}

func TestResolver_DefaultUserFromEnvironment(t *testing.T) {
	t.Setenv("USER", "alice")
	r, err := NewResolverFrom(strings.NewReader(""), "")
	require.NoError(t, err)
	require.Equal(t, "alice", r.Resolve("h").User)

	t.Setenv("USER", "")
	require.Equal(t, "root", invokingUser())
}

func TestResolver_NilIsLiteral(t *testing.T) {
	t.Setenv("USER", "bob")
	var r *Resolver
	require.Equal(t, Target{Host: "h", Port: 22, User: "bob"}, r.Resolve("h"))
}

func TestTarget_Addr(t *testing.T) {
	require.Equal(t, "10.0.0.1:22", Target{Host: "10.0.0.1", Port: 22}.Addr())
	require.Equal(t, "[::1]:2222", Target{Host: "::1", Port: 2222}.Addr())
}
