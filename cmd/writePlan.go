package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/elliopitas/MNER/dispatch"
	"github.com/elliopitas/MNER/sweep"
)

// writePlan writes the sweep header followed by the remote command of every
// pending permutation, one per line.
func writePlan(w io.Writer, cfg *sweep.Config, layout dispatch.Layout, pending []sweep.Permutation) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "Name: %s\n", cfg.Name)
	_, _ = fmt.Fprintf(bw, "Hosts: %s\n", strings.Join(cfg.Hosts, ", "))
	_, _ = fmt.Fprintf(bw, "Generated: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(bw, "Pending: %d\n", len(pending))
	_, _ = fmt.Fprintln(bw, strings.Repeat("=", 80))
	for _, p := range pending {
		_, _ = fmt.Fprintln(bw, layout.Command(p))
	}
	return bw.Flush()
}
