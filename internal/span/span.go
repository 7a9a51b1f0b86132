// Package span provides a zero-copy view of a contiguous range of bytes in a
// shared buffer. The header scanner hands these out for the name, separator,
// and value of every field it parses so that no byte of the original message
// is ever copied or normalized.
package span

// Span is a half-open range [start, end) over buf. The zero value is an empty
// span over no buffer. Spans are values; copying one never copies the bytes.
type Span struct {
	buf        []byte
	start, end int
}

// New returns a span covering all of buf.
func New(buf []byte) Span {
	return Span{buf, 0, len(buf)}
}

// FromString returns a span covering a fresh copy of s.
func FromString(s string) Span {
	return New([]byte(s))
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return s.end - s.start
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.end == s.start
}

// At returns the ith byte of the span. It panics if i is out of range, just
// like indexing a slice.
func (s Span) At(i int) byte {
	if i < 0 || i >= s.Len() {
		panic("span: index out of range")
	}
	return s.buf[s.start+i]
}

// Slice returns the sub-span [i, j) relative to the start of s. It panics if
// the range is invalid.
func (s Span) Slice(i, j int) Span {
	if i < 0 || j < i || j > s.Len() {
		panic("span: slice bounds out of range")
	}
	return Span{s.buf, s.start + i, s.start + j}
}

// Start returns the offset of the span in the underlying buffer.
func (s Span) Start() int {
	return s.start
}

// Bytes returns the bytes of the span. The returned slice aliases the
// underlying buffer and its capacity is clipped so appending to it cannot
// overwrite bytes following the span.
func (s Span) Bytes() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf[s.start:s.end:s.end]
}

// String returns a copy of the span as a string.
func (s Span) String() string {
	return string(s.buf[s.start:s.end])
}
