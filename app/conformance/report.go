package conformance

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Report collects every field on which the candidate parser disagreed with
// the reference parser.
type Report struct {
	Reference string          `yaml:"reference"`
	Candidate string          `yaml:"candidate"`
	Documents int             `yaml:"documents"`
	Skipped   int             `yaml:"skipped"`
	Failures  []FailureRecord `yaml:"failures"`
}

// FailureRecord is one disagreement. Entry is nil for feed-level fields.
type FailureRecord struct {
	Document  string  `yaml:"document"`
	Entry     *int    `yaml:"entry,omitempty"`
	Field     string  `yaml:"field"`
	Rule      string  `yaml:"rule,omitempty"`
	Reference string  `yaml:"reference"`
	Candidate string  `yaml:"candidate"`
	Ratio     float64 `yaml:"ratio,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`
	Message   string  `yaml:"message"`
}

// Passed reports whether no failures were recorded.
func (r *Report) Passed() bool {
	return len(r.Failures) == 0
}

// FailedDocuments counts the distinct documents with at least one failure.
func (r *Report) FailedDocuments() int {
	seen := make(map[string]bool)
	for _, failure := range r.Failures {
		seen[failure.Document] = true
	}
	return len(seen)
}

func (r *Report) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode conformance report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush conformance report: %w", err)
	}
	return nil
}
