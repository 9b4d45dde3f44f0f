package dispatch

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/elliopitas/MNER/remote"
	"github.com/elliopitas/MNER/sweep"
)

// Allow tests to stub clearing a previous attempt.
var removeAllFunc = os.RemoveAll

// ResultWriter persists the outcome of one execution under the local
// output directory. Only a successful run whose results were collected
// gets the completion marker.
type ResultWriter struct {
	Layout Layout
	Log    *zap.Logger
}

// Write records out for permutation p executed on n and reports what was
// written. Failures are logged, never returned: one permutation's trouble
// must not stop the worker.
func (w *ResultWriter) Write(ctx context.Context, n Node, p sweep.Permutation, out remote.Output) Outcome {
	log := w.logger().With(zap.String("permutation", p.ID), zap.String("node", n.Name()))
	dir := w.Layout.LocalResultDir(p.ID)

	// Leftovers of an earlier interrupted attempt must not mix with this one.
	if err := removeAllFunc(dir); err != nil {
		log.Error("failed to clear previous result directory", zap.String("dir", dir), zap.Error(err))
		return OutcomeUnfinished
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error("failed to create result directory", zap.String("dir", dir), zap.Error(err))
		return OutcomeUnfinished
	}

	outcome := OutcomeUnfinished
	if out.ExitStatus == 0 {
		remoteDir := w.Layout.RemoteResultDir(p.ID)
		if err := n.Pull(ctx, remoteDir, dir); err != nil {
			log.Error("failed to collect results", zap.String("from", remoteDir), zap.String("to", dir), zap.Error(err))
		} else if err := touch(filepath.Join(dir, sweep.CompleteMarker)); err != nil {
			log.Error("failed to write completion marker", zap.Error(err))
		} else {
			outcome = OutcomeComplete
		}
	} else {
		log.Warn("permutation exited with non-zero status", zap.Int("exit_status", out.ExitStatus))
		if err := touch(filepath.Join(dir, sweep.FailedMarker)); err != nil {
			log.Error("failed to write failure marker", zap.Error(err))
		}
		outcome = OutcomeFailed
	}

	if err := os.WriteFile(filepath.Join(dir, sweep.StdoutFile), out.Stdout, 0o644); err != nil {
		log.Error("failed to write stdout", zap.Error(err))
	}
	if err := os.WriteFile(filepath.Join(dir, sweep.StderrFile), out.Stderr, 0o644); err != nil {
		log.Error("failed to write stderr", zap.Error(err))
	}
	return outcome
}

func (w *ResultWriter) logger() *zap.Logger {
	if w.Log == nil {
		return zap.NewNop()
	}
	return w.Log
}

func touch(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return f.Close()
}
