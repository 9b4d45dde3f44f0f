package dispatch

import "github.com/elliopitas/MNER/sweep"

// Queue hands out each pending permutation to exactly one worker. It is
// filled once at construction and never grows.
type Queue struct {
	ch chan sweep.Permutation
}

// NewQueue returns a queue holding perms in order.
func NewQueue(perms []sweep.Permutation) *Queue {
	ch := make(chan sweep.Permutation, len(perms))
	for _, p := range perms {
		ch <- p
	}
	close(ch)
	return &Queue{ch: ch}
}

// Pop returns the next permutation, or false once the queue is drained.
// It never blocks.
func (q *Queue) Pop() (sweep.Permutation, bool) {
	select {
	case p, ok := <-q.ch:
		return p, ok
	default:
		return sweep.Permutation{}, false
	}
}

// Len reports how many permutations have not been popped yet.
func (q *Queue) Len() int { return len(q.ch) }
