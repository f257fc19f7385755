package oracle

import (
	"strings"
	"unicode/utf8"

	"github.com/lysyi3m/feedbench/app/similarity"
)

// TextCase is the state shared by the text rules for one comparison.
type TextCase struct {
	Left       string
	Right      string
	Threshold  float64
	thresholds Thresholds
	sim        *similarity.Result
}

func newTextCase(left, right string, thresholds Thresholds) *TextCase {
	return &TextCase{
		Left:       left,
		Right:      right,
		Threshold:  thresholds.RatioFor(utf8.RuneCountInString(left), utf8.RuneCountInString(right)),
		thresholds: thresholds,
	}
}

// Similarity is computed on first use; the cheap rules never pay for it.
func (c *TextCase) Similarity() similarity.Result {
	if c.sim == nil {
		result := similarity.Compare(c.Left, c.Right)
		c.sim = &result
	}
	return *c.sim
}

var textRules = []Rule[TextCase]{
	{
		// Titles made only of numeric character references are decoded
		// differently by every parser.
		Name: "escaped-short-text",
		Apply: func(c *TextCase) Verdict {
			if strings.Contains(c.Left, "&#") && !strings.Contains(c.Right, "&#") &&
				utf8.RuneCountInString(c.Left) < c.thresholds.EscapedMaxLength {
				return Accept
			}
			return Continue
		},
	},
	{
		Name: "effectively-empty",
		Apply: func(c *TextCase) Verdict {
			if strings.TrimSpace(c.Left) == "" &&
				utf8.RuneCountInString(strings.TrimSpace(c.Right)) < c.thresholds.EmptyMaxLength {
				return Accept
			}
			return Continue
		},
	},
	{
		Name: "ratio",
		Apply: func(c *TextCase) Verdict {
			if c.Similarity().Ratio >= c.Threshold {
				return Accept
			}
			return Continue
		},
	},
	{
		Name: "longest-block-fraction",
		Apply: func(c *TextCase) Verdict {
			leftLen := utf8.RuneCountInString(c.Left)
			if leftLen > 0 && float64(c.Similarity().Longest)/float64(leftLen) > c.Threshold {
				return Accept
			}
			return Continue
		},
	},
	{
		Name: "shared-block",
		Apply: func(c *TextCase) Verdict {
			if c.Similarity().Longest >= c.thresholds.SharedBlockMin {
				return Accept
			}
			return Reject
		},
	},
}

// AssertPrettyClose accepts two texts that differ only by the noise parsers
// introduce when tidying HTML and whitespace.
func (o *Oracle) AssertPrettyClose(s1, s2 string) error {
	c := newTextCase(s1, s2, o.thresholds)
	rule, verdict := evaluate(textRules, c)
	if verdict == Accept {
		return nil
	}

	sim := c.Similarity()
	return &EquivalenceFailure{
		Kind:      KindText,
		Rule:      rule,
		Left:      s1,
		Right:     s2,
		Ratio:     sim.Ratio,
		Threshold: c.Threshold,
		Longest:   sim.Longest,
	}
}
