package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVerify_Succeeds_OnValidConfig verifies that verify accepts a valid
// sweep and reports its size. Assumes a local temp file and no network.
func TestVerify_Succeeds_OnValidConfig(t *testing.T) {
	resetConfig()
	cfgPath := sweepFile(t, t.TempDir())
	out, err := execute(t, "verify", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Config OK: grid, 4 permutations across 2 hosts")
}

// TestVerify_Errors_OnInvalidConfig verifies that validation errors surface
// with the offending file named.
func TestVerify_Errors_OnInvalidConfig(t *testing.T) {
	resetConfig()
	tmp := t.TempDir()
	cfgPath := writeTemp(t, tmp, "bad.toml", `
name = "grid"
hosts = []
workdir = "."
executable = "run.sh"
repeat = 1
`)
	_, err := execute(t, "verify", cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.toml")
}

func TestVerify_YAMLConfig(t *testing.T) {
	resetConfig()
	tmp := t.TempDir()
	cfgPath := writeTemp(t, tmp, "sweep.yaml", `
name: yaml-grid
hosts: [h1]
workdir: .
executable: run.sh
repeat: 3
arguments:
  lr: ["0.1", "0.01"]
`)
	out, err := execute(t, "verify", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "6 permutations across 1 hosts")
}
