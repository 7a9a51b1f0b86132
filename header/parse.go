package header

import (
	"github.com/zostay/go-mailparse/header/field"
)

// isIndent reports whether c may not begin a header block. CR and LF are left
// out because they form the blank line of an empty header.
func isIndent(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f'
}

// Parse scans a header block from the start of buf, one field at a time, until
// it reaches the blank line separating the header from the body or runs out of
// input. It returns the header and the length of the header block, so
// buf[n:] is the message body.
//
// The blank line may be LF or CRLF. A CR between fields that is not followed by
// LF fails with field.ErrLoneCarriageReturn, and so does a lone CR as the very
// first byte of the block. A block that begins with a space, tab or form feed
// fails with field.ErrMalformedHeader. Any error from field.Parse is
// returned as is.
//
// The Break of the returned header records the blank line found. It is Meh if
// input ran out first.
func Parse(buf []byte) (*Header, int, error) {
	h := &Header{}
	h.SetBreak(Meh)

	idx := 0
	for idx < len(buf) {
		c := buf[idx]
		if len(h.fields) == 0 && isIndent(c) {
			return nil, 0, field.NewParseError(field.ErrMalformedHeader, idx,
				"header block must not start with spaces")
		}

		switch c {
		case '\n':
			h.SetBreak(LF)
			return h, idx + 1, nil
		case '\r':
			if idx+1 < len(buf) && buf[idx+1] == '\n' {
				h.SetBreak(CRLF)
				return h, idx + 2, nil
			}
			return nil, 0, field.NewParseError(field.ErrLoneCarriageReturn, idx,
				"lone CR in header")
		}

		f, n, err := field.Parse(buf, idx)
		if err != nil {
			return nil, 0, err
		}

		h.fields = append(h.fields, f)
		idx += n
	}

	return h, idx, nil
}
