package message

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log/slog"

	"github.com/zostay/go-mailparse/header"
	"github.com/zostay/go-mailparse/header/field"
	"github.com/zostay/go-mailparse/internal/log"
)

// Constants related to Parse() options.
const (
	// DefaultChunkSize the default size of chunks to read from the input while
	// splitting the message into header and body. Defaults to 16K, though this
	// could change at any time.
	DefaultChunkSize = 16_384

	// DefaultMaxHeaderLength is the default maximum byte length to scan before
	// giving up on finding the end of the header.
	DefaultMaxHeaderLength = bufio.MaxScanTokenSize
)

// Errors that occur during parsing.
var (
	// ErrLargeHeader is returned by Parse when the header is longer than the
	// configured WithMaxHeaderLength option (or the default,
	// DefaultMaxHeaderLength).
	ErrLargeHeader = errors.New("the header exceeds the maximum parse length")
)

type parser struct {
	maxHeaderLen int
	chunkSize    int
	logger       *slog.Logger
}

func (pr *parser) clone() *parser {
	p := *pr
	return &p
}

var defaultParser = &parser{
	maxHeaderLen: DefaultMaxHeaderLength,
	chunkSize:    DefaultChunkSize,
	logger:       log.Noop,
}

// ParseOption refers to options that may be passed to the Parse function to
// modify how the parser works.
type ParseOption func(pr *parser)

// WithMaxHeaderLength is a ParseOption that sets the maximum size the buffer is
// allowed to reach before parsing exits with an ErrLargeHeader error. During
// parsing, the io.Reader will be read from a chunk at a time until the end of
// the header is found. This setting prevents bad input from resulting in an out
// of memory error. Setting this to a value less than or equal to 0 will result
// in there being no maximum length. The default value is
// DefaultMaxHeaderLength.
func WithMaxHeaderLength(n int) ParseOption {
	return func(pr *parser) { pr.maxHeaderLen = n }
}

// WithChunkSize is a ParseOption that controls how many bytes to read at a time
// while parsing an email message. The default chunk size is DefaultChunkSize.
// Values less than 1 select the default.
func WithChunkSize(chunkSize int) ParseOption {
	return func(pr *parser) {
		if chunkSize < 1 {
			chunkSize = DefaultChunkSize
		}
		pr.chunkSize = chunkSize
	}
}

// WithLogger is a ParseOption that sets the logger used to report progress and
// header fields that are not canonically formatted. Nothing is logged by
// default.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(pr *parser) {
		if logger == nil {
			logger = log.Noop
		}
		pr.logger = logger
	}
}

// final reports whether a parse error cannot be cured by reading more input.
// The scanner looks at most one byte past the byte it fails on, so an error
// before the last buffered byte is final.
func final(err error, buffered int) bool {
	var perr *field.ParseError
	if errors.As(err, &perr) {
		return perr.Offset < buffered-1
	}
	return true
}

// Parse will consume input from the given reader and return an *Opaque message
// containing the parsed header and the unread body.
//
// The given io.Reader will be read in chunks, as defined by the WithChunkSize()
// option (or by the default, DefaultChunkSize). After each chunk, the bytes read
// so far are scanned with header.Parse. Once the blank line ending the header
// is found, the bytes after it and the rest of the io.Reader become the body.
// If the io.Reader runs out first, the whole input is treated as header.
//
// If the header grows larger than the WithMaxHeaderLength() option (or the
// default, DefaultMaxHeaderLength) before its end is found, Parse fails with
// ErrLargeHeader. If this happens, the io.Reader may be in a partial read state.
// Parse errors from the header are returned as is.
func Parse(r io.Reader, opts ...ParseOption) (*Opaque, error) {
	pr := defaultParser.clone()
	for _, opt := range opts {
		opt(pr)
	}

	return pr.parse(r)
}

// parse implements Parse.
func (pr *parser) parse(r io.Reader) (*Opaque, error) {
	p := make([]byte, pr.chunkSize)
	buf := &bytes.Buffer{}
	for {
		n, err := r.Read(p)

		isEOF := false
		if errors.Is(err, io.EOF) {
			isEOF = true
		} else if err != nil {
			return nil, err
		}

		buf.Write(p[:n])
		pr.logger.Debug("read message chunk", "bytes", n, "buffered", buf.Len(), "eof", isEOF)

		if n == 0 && !isEOF {
			continue
		}

		// the whole buffer is rescanned each time, the header scan is cheap
		// compared to the read
		h, hlen, err := header.Parse(buf.Bytes())
		switch {
		case err != nil && (isEOF || final(err, buf.Len())):
			pr.logger.Debug("header parse failed", "error", err)
			return nil, err

		case err == nil && (isEOF || h.Break() != header.Meh):
			if pr.maxHeaderLen > 0 && hlen > pr.maxHeaderLen {
				return nil, ErrLargeHeader
			}

			src := r
			if isEOF {
				src = nil
			}
			pr.logHeader(h, hlen)
			return &Opaque{
				Header: *h,
				Reader: newRemainder(buf.Bytes()[hlen:], src),
			}, nil
		}

		if pr.maxHeaderLen > 0 && buf.Len() > pr.maxHeaderLen {
			return nil, ErrLargeHeader
		}
	}
}

// logHeader reports the fields of a freshly parsed header.
func (pr *parser) logHeader(h *header.Header, hlen int) {
	pr.logger.Debug("parsed header",
		"fields", h.Len(),
		"length", hlen,
		"conformance", h.Conformance().String(),
	)

	for i, f := range h.ListFields() {
		if f.Conformance().IsCanonical() {
			continue
		}
		pr.logger.Debug("non-canonical header field",
			"index", i,
			"name", log.StringValue(f.NameBytes()),
			"conformance", f.Conformance().String(),
		)
	}
}
