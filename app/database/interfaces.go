package database

import (
	"time"

	"github.com/lysyi3m/feedbench/app/bench"
	"github.com/lysyi3m/feedbench/app/conformance"
)

type RunStore interface {
	SaveBenchRun(corpus string, outcome bench.Outcome) (string, error)
	SaveConformanceRun(corpus string, report *conformance.Report, elapsed time.Duration) (string, error)
	RecentRuns(limit int) ([]Run, error)
}
