package database

import (
	"time"
)

type RunKind string

const (
	RunKindBench       RunKind = "bench"
	RunKindConformance RunKind = "conformance"
)

// Run is one stored benchmark or conformance run.
type Run struct {
	ID        string
	Kind      RunKind
	Parser    string
	Reference string // conformance runs only
	CleanHTML bool
	Corpus    string
	Documents int
	Failures  int
	Bytes     int64
	Elapsed   time.Duration
	CreatedAt time.Time
}
