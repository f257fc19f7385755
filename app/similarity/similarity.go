// Package similarity scores how alike two strings are.
package similarity

// Result is the outcome of comparing two strings.
type Result struct {
	// Ratio is 2*M/(len(a)+len(b)) where M counts shared runes. Two empty
	// strings have ratio 1.
	Ratio float64
	// Longest is the rune length of the longest common contiguous block.
	Longest int
}

// Compare returns the quick ratio and the longest matching block of a and b.
// It is symmetric in its arguments.
func Compare(a, b string) Result {
	m := NewMatcher(a, b)
	return Result{
		Ratio:   m.QuickRatio(),
		Longest: m.FindLongestMatch(0, m.LenA(), 0, m.LenB()).Size,
	}
}
