package remote

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Pool holds every connected node of a run, in configuration order.
type Pool struct {
	Nodes []*Node
}

// Connect dials all hosts concurrently. It is all or nothing: the first
// failure cancels the remaining dials, closes the nodes that did connect and
// is returned naming the host.
func Connect(ctx context.Context, hosts []string, resolver *Resolver, opts DialOptions) (*Pool, error) {
	nodes := make([]*Node, len(hosts))
	g, gctx := errgroup.WithContext(ctx)
	for i, host := range hosts {
		g.Go(func() error {
			n, err := connectNode(gctx, host, resolver, opts)
			if err != nil {
				return fmt.Errorf("failed to create node for hostname %q: %w", host, err)
			}
			nodes[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		(&Pool{Nodes: nodes}).Close()
		return nil, err
	}
	return &Pool{Nodes: nodes}, nil
}

// Close closes every node's connection.
func (p *Pool) Close() {
	for _, n := range p.Nodes {
		if n != nil {
			_ = n.Close()
		}
	}
}
