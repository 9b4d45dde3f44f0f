package sweep

// File names inside a permutation's result directory. CompleteMarker is the
// one name both the result writer and the resume filter agree on.
const (
	CompleteMarker = "complete"
	FailedMarker   = "failed"
	StdoutFile     = "stdout"
	StderrFile     = "stderr"
)
