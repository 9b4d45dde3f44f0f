// Package sweep defines an experiment sweep: the configuration file, the
// permutations it expands to, and the on-disk result markers used to decide
// which permutations still need to run.
//
// Start with config.go for the file schema and permutation.go for how
// identifiers and parameter strings are built. resume.go is the only place
// that decides whether a permutation counts as done.
package sweep
