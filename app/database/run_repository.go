package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lysyi3m/feedbench/app/bench"
	"github.com/lysyi3m/feedbench/app/conformance"
)

var _ RunStore = (*RunRepository)(nil)

// RunRepository handles database operations for runs
type RunRepository struct {
	db  *DB
	now func() time.Time
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db, now: time.Now}
}

// SaveBenchRun stores one benchmark outcome and returns its id
func (r *RunRepository) SaveBenchRun(corpus string, outcome bench.Outcome) (string, error) {
	id := uuid.New().String()

	_, err := r.db.Exec(`
		INSERT INTO runs (
			id, kind, parser, clean_html, corpus,
			documents, failures, bytes, elapsed_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, RunKindBench, outcome.Parser, outcome.CleanHTML, corpus,
		outcome.Documents, outcome.Failures, outcome.Bytes,
		outcome.Elapsed.Milliseconds(), r.now().UnixMilli())

	if err != nil {
		return "", fmt.Errorf("failed to save bench run: %w", err)
	}

	return id, nil
}

// SaveConformanceRun stores a conformance report and its failures in one
// transaction and returns the run id
func (r *RunRepository) SaveConformanceRun(corpus string, report *conformance.Report, elapsed time.Duration) (string, error) {
	id := uuid.New().String()

	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (
			id, kind, parser, reference, clean_html, corpus,
			documents, failures, elapsed_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, RunKindConformance, report.Candidate, report.Reference, true, corpus,
		report.Documents, len(report.Failures), elapsed.Milliseconds(), r.now().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("failed to save conformance run: %w", err)
	}

	for _, failure := range report.Failures {
		var entry sql.NullInt64
		if failure.Entry != nil {
			entry = sql.NullInt64{Int64: int64(*failure.Entry), Valid: true}
		}

		_, err = tx.Exec(`
			INSERT INTO conformance_failures (
				run_id, document, entry, field, rule, reference, candidate, message
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, id, failure.Document, entry, failure.Field, failure.Rule,
			failure.Reference, failure.Candidate, failure.Message)
		if err != nil {
			return "", fmt.Errorf("failed to save conformance failure: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit conformance run: %w", err)
	}

	return id, nil
}

// RecentRuns returns up to limit runs, newest first
func (r *RunRepository) RecentRuns(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT id, kind, parser, reference, clean_html, corpus,
			documents, failures, bytes, elapsed_ms, created_at
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var kind string
		var elapsedMs, createdAt int64

		err := rows.Scan(&run.ID, &kind, &run.Parser, &run.Reference, &run.CleanHTML, &run.Corpus,
			&run.Documents, &run.Failures, &run.Bytes, &elapsedMs, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.Kind = RunKind(kind)
		run.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		run.CreatedAt = time.UnixMilli(createdAt)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// FailureCount returns the number of stored failures for a conformance run
func (r *RunRepository) FailureCount(runID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM conformance_failures WHERE run_id = ?`, runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count failures: %w", err)
	}
	return count, nil
}
