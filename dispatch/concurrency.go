package dispatch

// Concurrency is the number of workers a node with capacity threads runs
// when each task needs threadsPerTask threads. A node always gets at least
// one worker; threadsPerTask of 0 means tasks run one at a time.
func Concurrency(capacity, threadsPerTask int) int {
	if threadsPerTask <= 0 {
		return 1
	}
	return max(1, capacity/threadsPerTask)
}
