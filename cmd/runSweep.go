package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/elliopitas/MNER/dispatch"
	"github.com/elliopitas/MNER/journal"
	"github.com/elliopitas/MNER/logging"
	"github.com/elliopitas/MNER/sweep"
)

// cleanupTimeout bounds the removal of staging directories, which still
// runs after the run was interrupted.
const cleanupTimeout = 30 * time.Second

// runSweep is the run subcommand. Only failures that prevent the sweep from
// starting are returned; everything that goes wrong per node or per
// permutation is logged and the sweep carries on.
func runSweep(ctx context.Context, out io.Writer, configPath, outputRoot string) error {
	log := logging.L()

	cfg, err := sweep.LoadConfig(configPath)
	if err != nil {
		return err
	}
	log = log.With(zap.String("sweep", cfg.Name))

	outDir := filepath.Join(outputRoot, cfg.Name)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	perms := cfg.Permutations()
	pending, err := sweep.Pending(perms, outDir)
	if err != nil {
		return fmt.Errorf("failed to scan results: %w", err)
	}
	log.Info("sweep loaded", zap.Int("permutations", len(perms)), zap.Int("pending", len(pending)))

	layout := dispatch.Layout{
		Sweep:      cfg.Name,
		Workdir:    cfg.Workdir,
		Executable: cfg.Executable,
		RemoteRoot: cfgRemoteRoot,
		OutputDir:  outDir,
	}

	if cfgNoop {
		return writePlan(out, cfg, layout, pending)
	}
	if len(pending) == 0 {
		log.Info("nothing to run, every permutation is complete")
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfgAgent {
		agent, err := startAgentFunc(ctx, cfgSSHKeys)
		if err != nil {
			return err
		}
		defer func() {
			if err := agent.Close(); err != nil {
				log.Warn("failed to stop ssh-agent", zap.Error(err))
			}
		}()
	}

	nodes, closeNodes, err := connectFunc(ctx, cfg.Hosts, dialOptions())
	if err != nil {
		return err
	}
	defer closeNodes()

	d := &dispatch.Dispatcher{
		Layout:         layout,
		ThreadsPerTask: cfg.ThreadsPerTask,
		Log:            log,
	}
	if cfgJournal {
		j, err := journal.Open(filepath.Join(outputRoot, journal.FileName))
		if err != nil {
			log.Warn("journal disabled", zap.Error(err))
		} else {
			defer func() { _ = j.Close() }()
			d.Recorder = j
			log = log.With(zap.String("run", j.RunID()))
			d.Log = log
		}
	}

	q := dispatch.NewQueue(pending)
	d.Run(ctx, nodes, q)
	if ctx.Err() != nil {
		log.Warn("sweep interrupted", zap.Int("not_started", q.Len()))
	}

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()
	dispatch.Cleanup(cleanupCtx, nodes, layout.RemoteSweepRoot(), log)

	if sum, err := sweep.Summarize(perms, outDir); err == nil {
		log.Info("sweep finished",
			zap.Int("complete", sum.Complete),
			zap.Int("failed", sum.Failed),
			zap.Int("pending", sum.Pending))
	}
	return nil
}
