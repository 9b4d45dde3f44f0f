package dispatch

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/elliopitas/MNER/remote"
	"github.com/elliopitas/MNER/sweep"
)

// Layout fixes where a sweep lives locally and on every node:
//
//	<RemoteRoot>/<Sweep>/workdir          staged copy of Workdir
//	<RemoteRoot>/<Sweep>/results/<id>     working directory of one run
//	<OutputDir>/<id>                      collected result of one run
type Layout struct {
	Sweep      string
	Workdir    string
	Executable string
	RemoteRoot string
	OutputDir  string
}

// RemoteSweepRoot is the per-node directory removed by Cleanup.
func (l Layout) RemoteSweepRoot() string {
	return path.Join(l.RemoteRoot, l.Sweep)
}

// RemoteWorkdir is where the working directory is staged.
func (l Layout) RemoteWorkdir() string {
	return path.Join(l.RemoteSweepRoot(), "workdir")
}

// RemoteResultDir is the directory permutation id runs in.
func (l Layout) RemoteResultDir(id string) string {
	return path.Join(l.RemoteSweepRoot(), "results", id)
}

// LocalResultDir is where the result of permutation id is collected.
func (l Layout) LocalResultDir(id string) string {
	return filepath.Join(l.OutputDir, id)
}

// Command is the shell command that runs p on a node: the executable is
// started from inside the permutation's own result directory so relative
// output files land there.
func (l Layout) Command(p sweep.Permutation) string {
	dir := remote.ShellQuote(l.RemoteResultDir(p.ID))
	exe := remote.ShellQuote(path.Join(l.RemoteWorkdir(), l.Executable))
	parts := []string{"mkdir -p " + dir, "cd " + dir, strings.TrimSpace(exe + " " + p.Params)}
	return strings.Join(parts, " && ")
}
