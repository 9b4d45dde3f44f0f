package cmd

import (
	"fmt"
	"os"

	"github.com/elliopitas/MNER/logging"
)

// Execute runs the CLI. Any error returned by a subcommand is fatal: it is
// printed to stderr and the process exits with status 1.
func Execute() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		exitFunc(1)
		return
	}
}
