package message

import (
	"bytes"
	"io"
)

// remainder is the part of a message left after the header: the bytes that were
// read past the end of the header while looking for it, then the unread rest of
// the source.
type remainder struct {
	io.Reader
	src io.Reader
}

// newRemainder returns a reader over buffered followed by src. If src is nil,
// the whole message has been read already and the result reads only buffered,
// or is nil when buffered is empty.
func newRemainder(buffered []byte, src io.Reader) io.Reader {
	if src == nil {
		if len(buffered) == 0 {
			return nil
		}
		return bytes.NewReader(buffered)
	}

	return &remainder{
		Reader: io.MultiReader(bytes.NewReader(buffered), src),
		src:    src,
	}
}

// Close implements io.Closer, passing the call through to the source if it is
// an io.Closer. Otherwise, it is a no-op.
func (r *remainder) Close() error {
	if c, isCloser := r.src.(io.Closer); isCloser {
		return c.Close()
	}
	return nil
}
