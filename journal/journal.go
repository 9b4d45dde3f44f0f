// Package journal keeps an append-only SQLite ledger of every attempt made
// by mner runs. It is for auditing; resuming never consults it.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/elliopitas/MNER/dispatch"
)

// FileName is the journal's name inside the output root.
const FileName = "journal.db"

// Journal records the attempts of one run. Each Open starts a new run id.
type Journal struct {
	db    *sql.DB
	runID string
}

var _ dispatch.Recorder = (*Journal)(nil)

// Open opens or creates the journal at path.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	// Workers on every node record concurrently; SQLite wants one writer.
	db.SetMaxOpenConns(1)
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init journal %s: %w", path, err)
	}
	return &Journal{db: db, runID: uuid.NewString()}, nil
}

func initSchema(db *sql.DB) error {
	const createAttempts = `
CREATE TABLE IF NOT EXISTS attempts (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  run_id      TEXT NOT NULL,
  sweep       TEXT NOT NULL,
  permutation TEXT NOT NULL,
  node        TEXT NOT NULL,
  exit_status INTEGER,
  outcome     TEXT NOT NULL,
  started_at  TEXT,
  finished_at TEXT
);`
	if _, err := db.Exec(createAttempts); err != nil {
		return err
	}
	_, err := db.Exec(`CREATE INDEX IF NOT EXISTS attempts_permutation ON attempts (sweep, permutation)`)
	return err
}

// RunID identifies the attempts written through this handle.
func (j *Journal) RunID() string { return j.runID }

// Record appends a.
func (j *Journal) Record(ctx context.Context, a dispatch.Attempt) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO attempts (run_id, sweep, permutation, node, exit_status, outcome, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.runID, a.Sweep, a.Permutation, a.Node, a.ExitStatus, string(a.Outcome),
		formatTime(a.Started), formatTime(a.Finished))
	if err != nil {
		return fmt.Errorf("record attempt %s: %w", a.Permutation, err)
	}
	return nil
}

// Entry is a recorded attempt together with the run it belongs to.
type Entry struct {
	RunID string
	dispatch.Attempt
}

// History returns every recorded attempt of permutation in sweep, oldest
// first.
func (j *Journal) History(ctx context.Context, sweep, permutation string) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT run_id, sweep, permutation, node, exit_status, outcome, started_at, finished_at
		   FROM attempts WHERE sweep = ? AND permutation = ? ORDER BY id`,
		sweep, permutation)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Entry
	for rows.Next() {
		var (
			e                 Entry
			outcome           string
			started, finished sql.NullString
		)
		if err := rows.Scan(&e.RunID, &e.Sweep, &e.Permutation, &e.Node, &e.ExitStatus, &outcome, &started, &finished); err != nil {
			return nil, err
		}
		e.Outcome = dispatch.Outcome(outcome)
		e.Started = parseTime(started)
		e.Finished = parseTime(finished)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the database.
func (j *Journal) Close() error { return j.db.Close() }

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s sql.NullString) time.Time {
	if !s.Valid {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return time.Time{}
	}
	return t
}
