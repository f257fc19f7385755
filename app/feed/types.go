package feed

import (
	"errors"
	"fmt"
	"time"
)

// Result is what a parser produces for one document. It is not modified
// after Parse returns.
type Result struct {
	Title   string
	Link    string
	Author  string // "email (name)", "name" or "email"
	Entries []Entry
}

type Entry struct {
	Title     string
	Link      string
	Author    string
	Content   string
	Published *time.Time // nil when the entry carries no usable date
}

type ErrorKind string

const (
	KindUnsupported ErrorKind = "unsupported"
	KindMalformed   ErrorKind = "malformed"
)

// ParseError is returned by every Parser for documents it cannot turn into
// a Result.
type ParseError struct {
	Kind ErrorKind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s feed: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AsParseError unwraps err into a *ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}
