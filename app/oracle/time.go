package oracle

import (
	"time"
)

const absentTime = "<absent>"

type TimeCase struct {
	Left  *time.Time
	Right *time.Time
}

var timeRules = []Rule[TimeCase]{
	{Name: "both-absent", Apply: func(c *TimeCase) Verdict {
		return acceptIf(c.Left == nil && c.Right == nil)
	}},
	{Name: "one-absent", Apply: func(c *TimeCase) Verdict {
		if c.Left == nil || c.Right == nil {
			return Reject
		}
		return Continue
	}},
	{Name: "identical", Apply: func(c *TimeCase) Verdict {
		return acceptIf(sameCalendarTime(*c.Left, *c.Right))
	}},
	{
		// One parser may report the offset it found while the other
		// normalizes to UTC.
		Name: "utc-round-trip",
		Apply: func(c *TimeCase) Verdict {
			if sameCalendarTime(*c.Left, toUTC(*c.Right)) || sameCalendarTime(*c.Right, toUTC(*c.Left)) {
				return Accept
			}
			return Reject
		},
	},
}

// AssertSameTime accepts two timestamps denoting the same instant when at
// most one of them carries a non-UTC offset. Nil means absent.
func (o *Oracle) AssertSameTime(t1, t2 *time.Time) error {
	rule, verdict := evaluate(timeRules, &TimeCase{Left: t1, Right: t2})
	if verdict == Accept {
		return nil
	}
	return &EquivalenceFailure{Kind: KindTime, Rule: rule, Left: formatTime(t1), Right: formatTime(t2)}
}

// toUTC round-trips t through Unix seconds. Go time has no leap seconds, so
// the conversion is exact for whole seconds.
func toUTC(t time.Time) time.Time {
	return time.Unix(t.Unix(), 0).UTC()
}

// sameCalendarTime compares wall clock fields at second resolution together
// with the UTC offset.
func sameCalendarTime(a, b time.Time) bool {
	_, offsetA := a.Zone()
	_, offsetB := b.Zone()
	return a.Unix() == b.Unix() && offsetA == offsetB
}

func formatTime(t *time.Time) string {
	if t == nil {
		return absentTime
	}
	return t.Format(time.RFC3339)
}
