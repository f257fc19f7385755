// Package oracle decides whether the outputs of two feed parsers are
// equivalent. Each assertion is an ordered list of rules; the first rule
// that accepts or rejects decides, and a rejection is returned as an
// *EquivalenceFailure.
//
// The first argument of every assertion is the reference value and the
// second the candidate value; containment rules accept a candidate that
// carries more information than the reference.
package oracle

import (
	"github.com/lysyi3m/feedbench/app/normalize"
)

type Oracle struct {
	thresholds Thresholds
	munge      func(string) string
}

// New returns an oracle using DefaultThresholds. A nil munge falls back to
// normalize.MungeAuthor.
func New(munge func(string) string) *Oracle {
	if munge == nil {
		munge = normalize.MungeAuthor
	}
	return &Oracle{
		thresholds: DefaultThresholds,
		munge:      munge,
	}
}

func (o *Oracle) Thresholds() Thresholds {
	return o.thresholds
}
