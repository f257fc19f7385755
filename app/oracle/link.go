package oracle

import (
	"strings"

	"github.com/lysyi3m/feedbench/app/normalize"
)

// Services whose link enclosures are not comparable between parsers.
var unstableLinkMarkers = []string{"buzz", "plus.google.com"}

const scriptScheme = "javascript:"

type LinkCase struct {
	Left  string
	Right string

	prettyClose func(a, b string) error
	failure     *EquivalenceFailure
}

var linkRules = []Rule[LinkCase]{
	{Name: "identical", Apply: func(c *LinkCase) Verdict {
		return acceptIf(c.Left == c.Right)
	}},
	{Name: "contained", Apply: func(c *LinkCase) Verdict {
		return acceptIf(strings.Contains(c.Right, c.Left))
	}},
	{Name: "unstable-service", Apply: func(c *LinkCase) Verdict {
		for _, marker := range unstableLinkMarkers {
			if strings.Contains(c.Right, marker) {
				return Accept
			}
		}
		return Continue
	}},
	{
		// Script hrefs are free text; some parsers also eat the ';' of
		// escaped entities inside them.
		Name: "script-link",
		Apply: func(c *LinkCase) Verdict {
			if !strings.HasPrefix(c.Right, scriptScheme) {
				return Continue
			}
			if err := c.prettyClose(c.Left, c.Right); err != nil {
				c.failure, _ = AsFailure(err)
				return Reject
			}
			return Accept
		},
	},
	{Name: "different", Apply: func(c *LinkCase) Verdict {
		return Reject
	}},
}

// AssertSameLinks accepts two links that point at the same resource once
// case, surrounding whitespace and stray fragment markers are ignored.
func (o *Oracle) AssertSameLinks(l1, l2 string) error {
	c := &LinkCase{
		Left:        normalize.Link(l1),
		Right:       normalize.Link(l2),
		prettyClose: o.AssertPrettyClose,
	}

	rule, verdict := evaluate(linkRules, c)
	if verdict == Accept {
		return nil
	}

	failure := &EquivalenceFailure{Kind: KindLink, Rule: rule, Left: c.Left, Right: c.Right}
	if c.failure != nil {
		failure.Ratio = c.failure.Ratio
		failure.Threshold = c.failure.Threshold
		failure.Longest = c.failure.Longest
	}
	return failure
}
