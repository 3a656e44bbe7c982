package output

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/babcal/core/cas"
	"github.com/FocuswithJustin/babcal/core/errors"
	"github.com/FocuswithJustin/babcal/core/sqlite"
	"github.com/FocuswithJustin/babcal/core/table"
)

const schema = `
CREATE TABLE IF NOT EXISTS months (
	jdn          INTEGER PRIMARY KEY,
	julian_year  INTEGER NOT NULL,
	julian_month INTEGER NOT NULL,
	julian_day   INTEGER NOT NULL,
	month_number INTEGER NOT NULL,
	month_name   TEXT    NOT NULL,
	month_days   INTEGER NOT NULL,
	new_moon     REAL    NOT NULL,
	diff         REAL    NOT NULL,
	run_id       TEXT    NOT NULL
);
CREATE TABLE IF NOT EXISTS runs (
	id               TEXT PRIMARY KEY,
	started_at       TEXT NOT NULL,
	finished_at      TEXT NOT NULL,
	input_sha256     TEXT,
	input_blake3     TEXT,
	input_size       INTEGER,
	reference_sha256 TEXT,
	reference_blake3 TEXT,
	reference_source TEXT,
	initial_era      TEXT NOT NULL,
	initial_year     INTEGER NOT NULL,
	initial_last_jdn INTEGER NOT NULL,
	final_era        TEXT NOT NULL,
	final_year       INTEGER NOT NULL,
	final_last_jdn   INTEGER NOT NULL,
	lines            INTEGER NOT NULL,
	headings         INTEGER NOT NULL,
	months           INTEGER NOT NULL,
	error            TEXT
);
`

// Run describes one invocation of the parser.
type Run struct {
	ID              string
	StartedAt       time.Time
	FinishedAt      time.Time
	Input           cas.HashResult
	Reference       cas.HashResult
	ReferenceSource string
	Initial         table.State
	Final           table.State
	Lines           int
	Headings        int
	Months          int
	Error           string
}

// NewRun returns a Run with a fresh ID, started now.
func NewRun(initial table.State) Run {
	return Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Initial:   initial,
		Final:     initial,
	}
}

// SQLiteWriter stores records in the months table of a SQLite database.
// Everything written through one writer is committed in a single transaction
// on Close.
type SQLiteWriter struct {
	db     *sql.DB
	tx     *sql.Tx
	insert *sql.Stmt
	runID  string
	closed bool
}

// NewSQLite opens (creating if needed) the database at path.
func NewSQLite(ctx context.Context, path string) (*SQLiteWriter, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	err = sqlite.WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, schema)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema in %s: %w", path, err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("begin: %w", err)
	}
	insert, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO months
		(jdn, julian_year, julian_month, julian_day, month_number, month_name, month_days, new_moon, diff, run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	return &SQLiteWriter{db: db, tx: tx, insert: insert}, nil
}

// SetRunID tags subsequently written months with id.
func (s *SQLiteWriter) SetRunID(id string) {
	s.runID = id
}

// Write inserts one record. A record for an existing JDN replaces it.
func (s *SQLiteWriter) Write(m table.MonthRecord) error {
	_, err := s.insert.Exec(m.JDN, m.JulianYear, m.JulianMonth, m.JulianDay,
		m.MonthNumber, m.MonthName, m.MonthDays, m.NewMoon, m.Diff, s.runID)
	if err != nil {
		return fmt.Errorf("insert month %d: %w", m.JDN, err)
	}
	return nil
}

// RecordRun stores run in the runs table.
func (s *SQLiteWriter) RecordRun(ctx context.Context, run Run) error {
	var errText any
	if run.Error != "" {
		errText = run.Error
	}
	_, err := s.tx.ExecContext(ctx, `INSERT OR REPLACE INTO runs
		(id, started_at, finished_at,
		 input_sha256, input_blake3, input_size,
		 reference_sha256, reference_blake3, reference_source,
		 initial_era, initial_year, initial_last_jdn,
		 final_era, final_year, final_last_jdn,
		 lines, headings, months, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.Format(time.RFC3339), run.FinishedAt.Format(time.RFC3339),
		run.Input.SHA256, run.Input.BLAKE3, run.Input.Size,
		run.Reference.SHA256, run.Reference.BLAKE3, run.ReferenceSource,
		run.Initial.Era.String(), run.Initial.Year, run.Initial.LastJDN,
		run.Final.Era.String(), run.Final.Year, run.Final.LastJDN,
		run.Lines, run.Headings, run.Months, errText,
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", run.ID, err)
	}
	return nil
}

// Close commits and closes the database. It is safe to call more than once.
func (s *SQLiteWriter) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.insert.Close()
	err := s.tx.Commit()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}
