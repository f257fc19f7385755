package bench

import (
	"fmt"
	"time"

	"github.com/lysyi3m/feedbench/app/feed"
	"github.com/rs/zerolog/log"
)

// Source is one document of a benchmark batch. corpus.Document satisfies it.
type Source interface {
	Name() string
	Read() ([]byte, error)
}

// Outcome totals one benchmark run.
type Outcome struct {
	Parser    string
	CleanHTML bool
	Elapsed   time.Duration
	Bytes     int64
	Documents int
	Failures  int
	Entries   int
}

func (o Outcome) DocsPerSecond() float64 {
	if o.Elapsed <= 0 {
		return 0
	}
	return float64(o.Documents) / o.Elapsed.Seconds()
}

func (o Outcome) BytesPerSecond() float64 {
	if o.Elapsed <= 0 {
		return 0
	}
	return float64(o.Bytes) / o.Elapsed.Seconds()
}

type Runner struct {
	parser feed.Parser
	limit  int
}

// NewRunner returns a runner over parser. limit caps the number of
// documents per run; 0 means no cap.
func NewRunner(parser feed.Parser, limit int) *Runner {
	return &Runner{
		parser: parser,
		limit:  limit,
	}
}

// Run reads and parses every source in order. Documents the parser rejects
// with a *feed.ParseError are logged, counted as failures and still count
// towards Bytes. Read errors and any other parser error abort the run.
func (r *Runner) Run(sources []Source, cleanHTML bool) (Outcome, error) {
	if r.limit > 0 && len(sources) > r.limit {
		sources = sources[:r.limit]
	}

	outcome := Outcome{
		Parser:    r.parser.Name(),
		CleanHTML: cleanHTML,
	}

	start := time.Now()
	for _, source := range sources {
		data, err := source.Read()
		if err != nil {
			return outcome, fmt.Errorf("failed to read %s: %w", source.Name(), err)
		}
		outcome.Bytes += int64(len(data))
		outcome.Documents++

		log.Debug().Str("document", source.Name()).Int("bytes", len(data)).Msg("Parsing document")

		result, err := r.parser.Parse(data, cleanHTML)
		if err != nil {
			parseErr, ok := feed.AsParseError(err)
			if !ok {
				return outcome, fmt.Errorf("parser %s failed on %s: %w", r.parser.Name(), source.Name(), err)
			}
			outcome.Failures++
			log.Warn().Str("document", source.Name()).Str("kind", string(parseErr.Kind)).Err(parseErr.Err).Msg("Failed to parse document")
			continue
		}

		outcome.Entries += len(result.Entries)
		log.Debug().Str("document", source.Name()).Int("entries", len(result.Entries)).Msg("Parsed document")
	}
	outcome.Elapsed = time.Since(start)

	return outcome, nil
}
