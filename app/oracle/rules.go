package oracle

type Verdict int

const (
	Continue Verdict = iota
	Accept
	Reject
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "continue"
	}
}

// Rule is one step of an assertion. Rules run in order and the first one
// that does not return Continue decides.
type Rule[C any] struct {
	Name  string
	Apply func(c *C) Verdict
}

// evaluate runs rules against c. When every rule continues the result is a
// rejection attributed to the last rule.
func evaluate[C any](rules []Rule[C], c *C) (string, Verdict) {
	for _, rule := range rules {
		if verdict := rule.Apply(c); verdict != Continue {
			return rule.Name, verdict
		}
	}

	if len(rules) == 0 {
		return "", Reject
	}
	return rules[len(rules)-1].Name, Reject
}
