package cmd

import (
	"context"

	"github.com/elliopitas/MNER/dispatch"
	"github.com/elliopitas/MNER/remote"
)

// connectNodes connects every host, resolving aliases through
// ~/.ssh/config. The returned func closes all connections.
func connectNodes(ctx context.Context, hosts []string, opts remote.DialOptions) ([]dispatch.Node, func(), error) {
	pool, err := remote.Connect(ctx, hosts, remote.NewResolver(), opts)
	if err != nil {
		return nil, nil, err
	}
	return dispatch.Nodes(pool), pool.Close, nil
}
