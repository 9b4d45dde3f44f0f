package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	srv "github.com/elliopitas/MNER/tools/sshserv"
)

func main() {
	s, err := srv.Start("127.0.0.1:20222", nil)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to start test ssh server:", err)
		os.Exit(1)
	}
	_, _ = fmt.Fprintln(os.Stderr, "test ssh server listening on", s.Addr())
	defer s.Stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
