package cmd

import (
	"bufio"
	"bytes"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elliopitas/MNER/sweep"
)

// statusReport is the document printed by the status subcommand.
type statusReport struct {
	Name      string   `yaml:"name"`
	Hosts     []string `yaml:"hosts"`
	Output    string   `yaml:"output"`
	Generated string   `yaml:"generated"`

	sweep.Summary `yaml:",inline"`
}

// newStatusReport seeds a report with sweep metadata and a generated
// timestamp.
func newStatusReport(cfg *sweep.Config, outDir string, sum sweep.Summary) *statusReport {
	return &statusReport{
		Name:      cfg.Name,
		Hosts:     cfg.Hosts,
		Output:    outDir,
		Generated: time.Now().Format(time.RFC3339),
		Summary:   sum,
	}
}

// writeYAMLReport serializes the report to YAML with indentation and writes to
// the provided writer in a buffered manner for efficiency.
func writeYAMLReport(w io.Writer, r *statusReport) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		return err
	}
	_ = enc.Close()
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(buf.Bytes()); err != nil {
		return err
	}
	return bw.Flush()
}
