package feed

// Parser turns a raw document into a Result. cleanHTML enables the
// post-processing of text fields; disabling it isolates raw parse cost.
// Failures are reported as *ParseError.
type Parser interface {
	Name() string
	Parse(data []byte, cleanHTML bool) (*Result, error)
}
