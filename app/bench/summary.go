package bench

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Summary renders "<label>: <docs>/sec, <bytes>/sec".
func Summary(label string, outcome Outcome) string {
	return fmt.Sprintf("%s: %0.2f/sec, %s/sec",
		label, outcome.DocsPerSecond(), humanize.Bytes(uint64(outcome.BytesPerSecond())))
}

// Label names a run after its parser and cleaning mode.
func Label(outcome Outcome) string {
	if outcome.CleanHTML {
		return outcome.Parser
	}
	return fmt.Sprintf("%s (no html cleaning)", outcome.Parser)
}
