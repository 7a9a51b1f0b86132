package message

import (
	"io"

	"github.com/zostay/go-mailparse/header"
)

// Opaque is a message header and a message body, very similar to the net/mail
// message implementation. The body is never interpreted.
type Opaque struct {
	// Header is the parsed header block.
	header.Header

	// Reader yields the unread body. It is nil when the input ended at or
	// before the end of the header.
	io.Reader
}

// WriteTo writes the Opaque header and body to the destination io.Writer. A
// message returned by Parse is written exactly as it was read.
//
// The body is consumed, so this works once.
func (m *Opaque) WriteTo(w io.Writer) (int64, error) {
	total, err := m.Header.WriteTo(w)
	if err != nil {
		return total, err
	}

	if m.Reader == nil {
		return total, nil
	}

	n, err := io.Copy(w, m.Reader)
	return total + n, err
}

// GetHeader returns the header for the message.
func (m *Opaque) GetHeader() *header.Header {
	return &m.Header
}

// GetReader returns the reader containing the body of the message.
func (m *Opaque) GetReader() io.Reader {
	return m.Reader
}

// Close closes the source the body is being read from, if it can be closed.
func (m *Opaque) Close() error {
	if c, isCloser := m.Reader.(io.Closer); isCloser {
		return c.Close()
	}
	return nil
}
