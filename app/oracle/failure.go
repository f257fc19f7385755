package oracle

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindText  Kind = "text"
	KindEmail Kind = "email"
	KindLink  Kind = "link"
	KindTime  Kind = "time"
)

// EquivalenceFailure reports two values that are not close enough. Ratio,
// Threshold and Longest are only set when a text comparison was involved.
type EquivalenceFailure struct {
	Kind      Kind
	Rule      string
	Left      string
	Right     string
	Ratio     float64
	Threshold float64
	Longest   int
}

func (f *EquivalenceFailure) Error() string {
	if f.Kind == KindText || f.Threshold > 0 {
		return fmt.Sprintf("%s values are not similar enough (%0.3f < %0.3f, longest block %d): %q != %q",
			f.Kind, f.Ratio, f.Threshold, f.Longest, f.Left, f.Right)
	}
	return fmt.Sprintf("%s values are not similar enough: %q != %q", f.Kind, f.Left, f.Right)
}

// AsFailure unwraps err into an *EquivalenceFailure.
func AsFailure(err error) (*EquivalenceFailure, bool) {
	var failure *EquivalenceFailure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}
