package remote

// Output is the result of one remote command. A non-zero ExitStatus is a
// normal outcome, not an error.
type Output struct {
	ExitStatus int
	Stdout     []byte
	Stderr     []byte
}
