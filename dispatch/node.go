package dispatch

import (
	"context"

	"github.com/elliopitas/MNER/remote"
)

// Node is the part of a remote host the dispatcher needs. *remote.Node
// implements it.
type Node interface {
	Name() string
	Threads() int
	Exec(ctx context.Context, cmd string) (remote.Output, error)
	Push(ctx context.Context, localDir, remoteDir string) error
	Pull(ctx context.Context, remoteDir, localDir string) error
	Remove(ctx context.Context, dir string) error
}

var _ Node = (*remote.Node)(nil)

// Nodes adapts a connected pool to the dispatcher's view of it.
func Nodes(p *remote.Pool) []Node {
	out := make([]Node, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		out = append(out, n)
	}
	return out
}
