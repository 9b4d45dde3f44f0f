package cmd

import (
	"context"
	"io"

	"github.com/elliopitas/MNER/remote"
)

// startAgent starts the run's private ssh-agent loaded with keys.
func startAgent(ctx context.Context, keys []string) (io.Closer, error) {
	return remote.StartAgent(ctx, keys)
}
