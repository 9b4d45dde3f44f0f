package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/elliopitas/MNER/sweep"
)

// Dispatcher runs a queue of permutations on a set of nodes.
type Dispatcher struct {
	Layout         Layout
	ThreadsPerTask int
	Writer         *ResultWriter
	Recorder       Recorder
	Log            *zap.Logger
}

// Run drains q across nodes and returns when every node is done. Nodes that
// cannot be staged are skipped; the remaining ones take over their share of
// the queue. Once ctx is done workers stop taking new permutations.
func (d *Dispatcher) Run(ctx context.Context, nodes []Node, q *Queue) {
	if d.Writer == nil {
		d.Writer = &ResultWriter{Layout: d.Layout, Log: d.Log}
	}
	var wg sync.WaitGroup
	for _, n := range nodes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.runNode(ctx, n, q)
		}()
	}
	wg.Wait()
}

func (d *Dispatcher) runNode(ctx context.Context, n Node, q *Queue) {
	log := d.logger().With(zap.String("node", n.Name()))

	if err := n.Push(ctx, d.Layout.Workdir, d.Layout.RemoteWorkdir()); err != nil {
		log.Error("failed to stage workdir, skipping node", zap.Error(err))
		return
	}

	workers := Concurrency(n.Threads(), d.ThreadsPerTask)
	pool, err := ants.NewPool(workers, ants.WithPanicHandler(func(p any) {
		log.Error("worker panicked", zap.Any("panic", p))
	}))
	if err != nil {
		log.Error("failed to create worker pool", zap.Error(err))
		return
	}
	defer pool.Release()
	log.Info("node ready", zap.Int("threads", n.Threads()), zap.Int("workers", workers))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			d.work(ctx, n, q, log)
		}); err != nil {
			wg.Done()
			log.Error("failed to start worker", zap.Error(err))
		}
	}
	wg.Wait()
}

// work pops permutations until the queue is empty or ctx is done.
func (d *Dispatcher) work(ctx context.Context, n Node, q *Queue, log *zap.Logger) {
	for ctx.Err() == nil {
		p, ok := q.Pop()
		if !ok {
			return
		}
		d.attempt(ctx, n, p, log.With(zap.String("permutation", p.ID)))
	}
}

func (d *Dispatcher) attempt(ctx context.Context, n Node, p sweep.Permutation, log *zap.Logger) {
	a := Attempt{
		Sweep:       d.Layout.Sweep,
		Permutation: p.ID,
		Node:        n.Name(),
		Started:     time.Now(),
	}

	log.Debug("starting permutation")
	out, err := n.Exec(ctx, d.Layout.Command(p))
	a.ExitStatus = out.ExitStatus
	switch {
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		log.Warn("permutation interrupted", zap.Error(err))
		a.Outcome = OutcomeUnfinished
	case err != nil:
		log.Error("failed to execute permutation", zap.Error(err))
		a.Outcome = OutcomeUnfinished
	default:
		a.Outcome = d.Writer.Write(ctx, n, p, out)
		log.Info("permutation finished", zap.String("outcome", string(a.Outcome)), zap.Int("exit_status", out.ExitStatus))
	}
	a.Finished = time.Now()

	// The ledger is still written for attempts cut short by cancellation.
	if err := d.recorder().Record(context.WithoutCancel(ctx), a); err != nil {
		log.Warn("failed to record attempt", zap.Error(err))
	}
}

func (d *Dispatcher) logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}

func (d *Dispatcher) recorder() Recorder {
	if d.Recorder == nil {
		return nopRecorder{}
	}
	return d.Recorder
}
