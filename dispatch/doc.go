// Package dispatch drains a sweep's pending permutations across connected
// nodes.
//
// Every node gets its own goroutine which stages the working directory and
// then runs as many workers as the node's capacity allows. Workers pop from
// one shared Queue until it is empty, run the permutation remotely and hand
// the outcome to the ResultWriter, which is the only code that writes
// completion markers.
package dispatch
