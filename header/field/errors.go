package field

import (
	"errors"
	"fmt"
)

// Errors returned while scanning header framing. Every one of these is wrapped
// in a *ParseError, so use errors.Is to test for them.
var (
	// ErrEmptyInput is returned by Parse when there are no bytes left to scan
	// at the requested offset.
	ErrEmptyInput = errors.New("empty header input")

	// ErrMalformedHeader is returned when a field begins with whitespace or
	// its name contains a byte outside of printable US-ASCII.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrLoneCarriageReturn is returned when a CR appears between fields
	// without being followed by LF.
	ErrLoneCarriageReturn = errors.New("lone CR in header")
)

// ParseError describes where and why a header failed to parse.
type ParseError struct {
	Offset int    // byte offset of the offending byte in the scanned buffer
	Reason string // human-readable detail
	Err    error  // one of the sentinel errors above
}

// Error returns the error message.
func (err *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", err.Err, err.Offset, err.Reason)
}

// Unwrap returns the sentinel error.
func (err *ParseError) Unwrap() error {
	return err.Err
}

// NewParseError returns a *ParseError wrapping the given sentinel.
func NewParseError(sentinel error, offset int, reason string) *ParseError {
	return &ParseError{
		Offset: offset,
		Reason: reason,
		Err:    sentinel,
	}
}
