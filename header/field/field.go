package field

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"

	"github.com/zostay/go-mailparse/internal/span"
)

// DefaultSeparator is placed between the name and value of fields built with
// New.
const DefaultSeparator = ": "

// Line endings written after a field by WriteTo.
var (
	crlf = []byte("\r\n")
	lf   = []byte("\n")
)

// Field is a single header field, possibly folded over several physical lines.
// The name, separator, and value are kept exactly as they were found in the
// input. Objects of this type are immutable.
type Field struct {
	name        span.Span
	separator   span.Span
	value       span.Span
	raw         span.Span // every byte consumed by Parse, zero for New
	conformance Conformance
}

// New builds a field from a logical name and value, joined by
// DefaultSeparator. Nothing about the name or value is validated. The result
// is canonical and will be written with CRLF.
func New(name, value string) *Field {
	all := span.FromString(name + DefaultSeparator + value)
	nameEnd := len(name)
	valueStart := nameEnd + len(DefaultSeparator)
	return &Field{
		name:      all.Slice(0, nameEnd),
		separator: all.Slice(nameEnd, valueStart),
		value:     all.Slice(valueStart, all.Len()),
	}
}

// Name returns the field name exactly as written.
func (f *Field) Name() string {
	return f.name.String()
}

// NameBytes returns the field name without copying.
func (f *Field) NameBytes() []byte {
	return f.name.Bytes()
}

// Separator returns everything between the end of the name and the start of
// the value, usually ": ".
func (f *Field) Separator() string {
	return f.separator.String()
}

// SeparatorBytes returns the separator without copying.
func (f *Field) SeparatorBytes() []byte {
	return f.separator.Bytes()
}

// RawValue returns the value as written. Any folding inside the value is
// preserved; only the final line ending is excluded.
func (f *Field) RawValue() string {
	return f.value.String()
}

// RawValueBytes returns the value without copying.
func (f *Field) RawValueBytes() []byte {
	return f.value.Bytes()
}

// Conformance returns the formatting deviations recorded while parsing.
func (f *Field) Conformance() Conformance {
	return f.conformance
}

// Raw returns every byte Parse consumed for this field, including its
// terminating line ending. It returns nil for a field built with New.
func (f *Field) Raw() []byte {
	if f.raw.IsEmpty() {
		return nil
	}
	return f.raw.Bytes()
}

// Len returns the number of bytes Parse consumed for this field. It is 0 for a
// field built with New.
func (f *Field) Len() int {
	return f.raw.Len()
}

// lineEnding returns the line ending WriteTo will use.
func (f *Field) lineEnding() []byte {
	if f.conformance.Has(NonCanonicalLineEndings) {
		return lf
	}
	return crlf
}

// WriteTo writes the name, separator, and value followed by a line ending. The
// line ending is LF when the field was parsed with non-canonical line endings
// and CRLF otherwise.
func (f *Field) WriteTo(w io.Writer) (int64, error) {
	total := int64(0)
	for _, p := range [][]byte{f.name.Bytes(), f.separator.Bytes(), f.value.Bytes(), f.lineEnding()} {
		n, err := w.Write(p)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Bytes returns the output of WriteTo as a slice of bytes.
func (f *Field) Bytes() []byte {
	buf := &bytes.Buffer{}
	_, _ = f.WriteTo(buf)
	return buf.Bytes()
}

// String returns the output of WriteTo as text. Byte sequences that are not
// valid UTF-8 are replaced with U+FFFD.
func (f *Field) String() string {
	out, _ := unicode.UTF8.NewDecoder().Bytes(f.Bytes())
	return string(out)
}
