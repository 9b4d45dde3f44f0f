package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/elliopitas/MNER/sweep"
)

func TestStatus_ReportsMarkers(t *testing.T) {
	resetConfig()
	tmp := t.TempDir()
	cfgPath := sweepFile(t, tmp)
	outRoot := filepath.Join(tmp, "out")
	writeTemp(t, filepath.Join(outRoot, "grid", "a=1_0"), sweep.CompleteMarker, "")
	writeTemp(t, filepath.Join(outRoot, "grid", "a=1_1"), sweep.CompleteMarker, "")
	writeTemp(t, filepath.Join(outRoot, "grid", "a=2_0"), sweep.FailedMarker, "")

	out, err := execute(t, "status", cfgPath, outRoot)
	require.NoError(t, err)

	var rep statusReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.Equal(t, "grid", rep.Name)
	require.Equal(t, []string{"alpha", "beta"}, rep.Hosts)
	require.Equal(t, filepath.Join(outRoot, "grid"), rep.Output)
	require.NotEmpty(t, rep.Generated)
	require.Equal(t, sweep.Summary{Total: 4, Complete: 2, Failed: 1, Pending: 1, FailedIDs: []string{"a=2_0"}}, rep.Summary)
}

func TestStatus_NoResultsYet(t *testing.T) {
	resetConfig()
	tmp := t.TempDir()
	out, err := execute(t, "status", sweepFile(t, tmp), filepath.Join(tmp, "nowhere"))
	require.NoError(t, err)
	require.Contains(t, out, "pending: 4")
}
