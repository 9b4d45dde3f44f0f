package dispatch

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Cleanup removes dir from every node concurrently. Failures are only
// logged at debug level; a leftover staging directory is harmless.
func Cleanup(ctx context.Context, nodes []Node, dir string, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	var wg sync.WaitGroup
	for _, n := range nodes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := n.Remove(ctx, dir); err != nil {
				log.Debug("failed to clean up node", zap.String("node", n.Name()), zap.String("dir", dir), zap.Error(err))
			}
		}()
	}
	wg.Wait()
}
