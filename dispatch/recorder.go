package dispatch

import (
	"context"
	"time"
)

// Outcome is how an attempt ended from the collector's point of view.
type Outcome string

const (
	// OutcomeComplete means the completion marker was written.
	OutcomeComplete Outcome = "complete"
	// OutcomeFailed means the executable exited non-zero.
	OutcomeFailed Outcome = "failed"
	// OutcomeUnfinished means no marker was written: the command could
	// not be run, was interrupted, or its results could not be collected.
	OutcomeUnfinished Outcome = "unfinished"
)

// Attempt describes one execution of a permutation on a node.
type Attempt struct {
	Sweep       string
	Permutation string
	Node        string
	ExitStatus  int
	Outcome     Outcome
	Started     time.Time
	Finished    time.Time
}

// Recorder receives every attempt once it has been written out. It is an
// audit hook; whether a permutation is done is decided from the result
// directories alone.
type Recorder interface {
	Record(ctx context.Context, a Attempt) error
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, Attempt) error { return nil }
