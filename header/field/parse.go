package field

import (
	"fmt"

	"github.com/zostay/go-mailparse/internal/span"
)

// scanState is the state of the field scanner.
type scanState int

const (
	stateInitial   scanState = iota // nothing classified yet
	stateName                       // reading the field name
	stateSeparator                  // skipping blanks after the colon
	stateValue                      // reading value bytes
	stateNewLine                    // just consumed a line ending
)

// isSpace reports whether c is ASCII whitespace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// isBlank reports whether c may indent a continuation line or pad the
// separator.
func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// Parse scans exactly one header field from buf, beginning at offset start. It
// returns the field and the number of bytes the field occupies, which includes
// the line ending of its last physical line but never the first byte of
// whatever follows.
//
// The scan is a single forward pass. A line that begins with a space or tab
// after a line ending is a continuation and becomes part of the value. A line
// ending without any colon finishes the field with MissingColonValue set. A
// bare LF sets NonCanonicalLineEndings. Neither of these is an error.
//
// Parse fails with ErrEmptyInput if no bytes remain at start and with
// ErrMalformedHeader if the field begins with whitespace or the name holds a
// byte outside printable US-ASCII. Error offsets are relative to buf.
func Parse(buf []byte, start int) (*Field, int, error) {
	if start < 0 || start >= len(buf) {
		return nil, 0, NewParseError(ErrEmptyInput, start, "empty header string")
	}

	data := span.New(buf).Slice(start, len(buf))

	var (
		state       = stateInitial
		nameEnd     = -1
		valueStart  = -1
		valueEnd    = -1
		sawCR       = false
		conformance Conformance
		idx         = 0
	)

Scan:
	for idx < data.Len() {
		c := data.At(idx)
		switch state {
		case stateInitial:
			if isSpace(c) {
				return nil, 0, NewParseError(ErrMalformedHeader, data.Start()+idx,
					"header cannot start with space")
			}
			state = stateName
			continue Scan

		case stateName:
			if sawCR && c != '\n' {
				return nil, 0, NewParseError(ErrMalformedHeader, data.Start()+idx-1,
					"header name must be comprised of printable US-ASCII characters. Found '\\r'")
			}

			switch {
			case c == ':':
				nameEnd = idx
				state = stateSeparator
			case c == '\n':
				conformance = conformance.With(MissingColonValue)
				nameEnd = idx
				if sawCR {
					nameEnd--
				} else {
					conformance = conformance.With(NonCanonicalLineEndings)
				}
				valueStart, valueEnd = nameEnd, nameEnd
				state = stateNewLine
				idx++
				break Scan
			case c == '\r':
				sawCR = true
			case c < 33 || c > 126:
				return nil, 0, NewParseError(ErrMalformedHeader, data.Start()+idx,
					fmt.Sprintf("header name must be comprised of printable US-ASCII characters. Found %q", c))
			}

		case stateSeparator:
			if !isBlank(c) {
				valueStart, valueEnd = idx, idx
				state = stateValue
				continue Scan
			}

		case stateValue:
			switch c {
			case '\n':
				if !sawCR {
					conformance = conformance.With(NonCanonicalLineEndings)
				}
				sawCR = false
				state = stateNewLine
			case '\r':
				sawCR = true
			default:
				valueEnd = idx + 1
				sawCR = false
			}

		case stateNewLine:
			if isBlank(c) {
				state = stateValue
				continue Scan
			}
			break Scan
		}

		idx++
	}

	// input ran out before the field was finished
	switch state {
	case stateName:
		if sawCR {
			return nil, 0, NewParseError(ErrMalformedHeader, data.Start()+idx-1,
				"header name must be comprised of printable US-ASCII characters. Found '\\r'")
		}
		if nameEnd < 0 {
			conformance = conformance.With(MissingColonValue)
			nameEnd = idx
			valueStart, valueEnd = idx, idx
		}
	case stateSeparator:
		valueStart, valueEnd = idx, idx
	}

	f := &Field{
		name:        data.Slice(0, nameEnd),
		separator:   data.Slice(nameEnd, valueStart),
		value:       data.Slice(valueStart, valueEnd),
		raw:         data.Slice(0, idx),
		conformance: conformance,
	}

	return f, idx, nil
}
