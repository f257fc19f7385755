package oracle

import "strings"

type EmailCase struct {
	Left  string
	Right string
	munge func(string) string
}

var emailRules = []Rule[EmailCase]{
	{Name: "identical", Apply: func(c *EmailCase) Verdict {
		return acceptIf(c.Left == c.Right)
	}},
	{Name: "left-matches-munged-right", Apply: func(c *EmailCase) Verdict {
		return acceptIf(c.Left == c.munge(c.Right))
	}},
	{Name: "right-matches-munged-left", Apply: func(c *EmailCase) Verdict {
		return acceptIf(c.Right == c.munge(c.Left))
	}},
	{Name: "both-munged", Apply: func(c *EmailCase) Verdict {
		return acceptIf(c.munge(c.Left) == c.munge(c.Right))
	}},
	{
		// The candidate recorded more than the reference did.
		Name: "contained",
		Apply: func(c *EmailCase) Verdict {
			return acceptIf(strings.Contains(c.Right, c.Left))
		},
	},
	{
		// Neither side holds an address; parsers mangle such fields
		// arbitrarily, so there is nothing meaningful to compare.
		Name: "no-address",
		Apply: func(c *EmailCase) Verdict {
			if !strings.Contains(c.Left, "@") && !strings.Contains(c.Right, "@") {
				return Accept
			}
			return Reject
		},
	},
}

// AssertSameEmail accepts two author fields that name the same person.
func (o *Oracle) AssertSameEmail(e1, e2 string) error {
	rule, verdict := evaluate(emailRules, &EmailCase{Left: e1, Right: e2, munge: o.munge})
	if verdict == Accept {
		return nil
	}
	return &EquivalenceFailure{Kind: KindEmail, Rule: rule, Left: e1, Right: e2}
}

func acceptIf(ok bool) Verdict {
	if ok {
		return Accept
	}
	return Continue
}
