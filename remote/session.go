package remote

// session is a minimal interface for running one command and closing.
type session interface {
	Output(cmd string) (stdout, stderr []byte, err error)
	Close() error
}

// sessionClient is a minimal interface to obtain a command session.
type sessionClient interface {
	NewSession() (session, error)
}
