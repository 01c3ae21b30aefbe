package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at TEXT    NOT NULL,
	scenario   TEXT    NOT NULL,
	goroutines INTEGER NOT NULL,
	iterations INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	passed     INTEGER NOT NULL,
	detail     TEXT    NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS runs_scenario ON runs (scenario, id);`

// history appends scenario results to a SQLite database so runs on the
// same machine can be compared.
type history struct {
	db *sql.DB
}

func openHistory(path string) (*history, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open history %s", path)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "create history schema in %s", path)
	}
	return &history{db: db}, nil
}

// Append stores every result of one run in a single transaction.
func (h *history) Append(ctx context.Context, started time.Time, results []Result) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin history transaction")
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO runs
		(started_at, scenario, goroutines, iterations, elapsed_ns, passed, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "prepare history insert")
	}
	defer stmt.Close()

	stamp := started.UTC().Format(time.RFC3339Nano)
	for _, r := range results {
		passed := 0
		if r.Passed {
			passed = 1
		}
		if _, err := stmt.ExecContext(ctx, stamp, r.Scenario, r.Goroutines, r.Iterations,
			int64(r.Elapsed), passed, r.Detail); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "insert %s result", r.Scenario)
		}
	}
	return errors.Wrap(tx.Commit(), "commit history")
}

// Last returns the most recent stored result for scenario, or false when
// there is none.
func (h *history) Last(ctx context.Context, scenario string) (Result, bool, error) {
	var (
		r       Result
		elapsed int64
		passed  int
	)
	err := h.db.QueryRowContext(ctx, `SELECT scenario, goroutines, iterations, elapsed_ns, passed, detail
		FROM runs WHERE scenario = ? ORDER BY id DESC LIMIT 1`, scenario).
		Scan(&r.Scenario, &r.Goroutines, &r.Iterations, &elapsed, &passed, &r.Detail)
	if err == sql.ErrNoRows {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, errors.Wrapf(err, "query last %s run", scenario)
	}
	r.Elapsed = time.Duration(elapsed)
	r.Passed = passed != 0
	return r, true, nil
}

// Count returns the number of stored rows.
func (h *history) Count(ctx context.Context) (int, error) {
	var n int
	err := h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n)
	return n, errors.Wrap(err, "count history rows")
}

func (h *history) Close() error {
	return h.db.Close()
}
