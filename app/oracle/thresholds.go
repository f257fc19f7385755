package oracle

const (
	ShortTextRatio        = 0.10
	LongTextRatio         = 0.25
	LongTextLength        = 1024
	EscapedTitleMaxLength = 50
	EmptyTextMaxLength    = 25
	SharedBlockMinLength  = 50
)

// Thresholds collects every tuning constant of the text comparison.
type Thresholds struct {
	// ShortRatio applies unless both strings are longer than LongLength.
	ShortRatio float64
	LongRatio  float64
	LongLength int
	// EscapedMaxLength bounds how long a value with numeric character
	// references may be and still be accepted without comparison.
	EscapedMaxLength int
	// EmptyMaxLength bounds the counterpart of a blank value.
	EmptyMaxLength int
	// SharedBlockMin is the shared block length accepted regardless of ratio.
	SharedBlockMin int
}

var DefaultThresholds = Thresholds{
	ShortRatio:       ShortTextRatio,
	LongRatio:        LongTextRatio,
	LongLength:       LongTextLength,
	EscapedMaxLength: EscapedTitleMaxLength,
	EmptyMaxLength:   EmptyTextMaxLength,
	SharedBlockMin:   SharedBlockMinLength,
}

// RatioFor returns the ratio threshold for a pair of texts of the given
// rune lengths.
func (t Thresholds) RatioFor(leftLen, rightLen int) float64 {
	if leftLen > t.LongLength && rightLen > t.LongLength {
		return t.LongRatio
	}
	return t.ShortRatio
}
