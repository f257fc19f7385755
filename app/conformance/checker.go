package conformance

import (
	"fmt"
	"strconv"

	"github.com/lysyi3m/feedbench/app/bench"
	"github.com/lysyi3m/feedbench/app/feed"
	"github.com/lysyi3m/feedbench/app/oracle"
	"github.com/rs/zerolog/log"
)

// Checker parses each document with a reference and a candidate parser and
// asks the oracle whether the two results are equivalent.
type Checker struct {
	reference feed.Parser
	candidate feed.Parser
	oracle    *oracle.Oracle
}

func NewChecker(reference, candidate feed.Parser, o *oracle.Oracle) *Checker {
	if o == nil {
		o = oracle.New(nil)
	}
	return &Checker{
		reference: reference,
		candidate: candidate,
		oracle:    o,
	}
}

// Check compares every source. A failing field is recorded and the next
// field is still checked. Read errors and untyped parser errors abort.
func (c *Checker) Check(sources []bench.Source) (*Report, error) {
	report := &Report{
		Reference: c.reference.Name(),
		Candidate: c.candidate.Name(),
		Failures:  []FailureRecord{},
	}

	for _, source := range sources {
		data, err := source.Read()
		if err != nil {
			return report, fmt.Errorf("failed to read %s: %w", source.Name(), err)
		}
		report.Documents++

		expected, err := c.reference.Parse(data, true)
		if err != nil {
			if _, ok := feed.AsParseError(err); !ok {
				return report, fmt.Errorf("reference parser failed on %s: %w", source.Name(), err)
			}
			report.Skipped++
			log.Debug().Str("document", source.Name()).Err(err).Msg("Reference parser rejected document, skipping")
			continue
		}

		actual, err := c.candidate.Parse(data, true)
		if err != nil {
			if _, ok := feed.AsParseError(err); !ok {
				return report, fmt.Errorf("candidate parser failed on %s: %w", source.Name(), err)
			}
			report.Failures = append(report.Failures, FailureRecord{
				Document: source.Name(),
				Field:    "parse",
				Message:  err.Error(),
			})
			continue
		}

		before := len(report.Failures)
		c.compare(report, source.Name(), expected, actual)

		if failed := len(report.Failures) - before; failed > 0 {
			log.Info().Str("document", source.Name()).Int("failures", failed).Msg("Parsers disagree")
		}
	}

	return report, nil
}

func (c *Checker) compare(report *Report, document string, expected, actual *feed.Result) {
	record := func(entry *int, field string, err error) {
		if err == nil {
			return
		}
		report.Failures = append(report.Failures, newFailureRecord(document, entry, field, err))
	}

	record(nil, "title", c.oracle.AssertPrettyClose(expected.Title, actual.Title))
	record(nil, "link", c.oracle.AssertSameLinks(expected.Link, actual.Link))
	record(nil, "author", c.oracle.AssertSameEmail(expected.Author, actual.Author))

	count := len(expected.Entries)
	if len(actual.Entries) != count {
		report.Failures = append(report.Failures, FailureRecord{
			Document:  document,
			Field:     "entries",
			Reference: strconv.Itoa(len(expected.Entries)),
			Candidate: strconv.Itoa(len(actual.Entries)),
			Message:   "entry counts differ",
		})
		count = min(count, len(actual.Entries))
	}

	for i := 0; i < count; i++ {
		index := i
		want, got := expected.Entries[i], actual.Entries[i]

		record(&index, "title", c.oracle.AssertPrettyClose(want.Title, got.Title))
		record(&index, "link", c.oracle.AssertSameLinks(want.Link, got.Link))
		record(&index, "author", c.oracle.AssertSameEmail(want.Author, got.Author))
		record(&index, "published", c.oracle.AssertSameTime(want.Published, got.Published))
	}
}

func newFailureRecord(document string, entry *int, field string, err error) FailureRecord {
	record := FailureRecord{
		Document: document,
		Entry:    entry,
		Field:    field,
		Message:  err.Error(),
	}

	if failure, ok := oracle.AsFailure(err); ok {
		record.Rule = failure.Rule
		record.Reference = failure.Left
		record.Candidate = failure.Right
		record.Ratio = failure.Ratio
		record.Threshold = failure.Threshold
	}

	return record
}
