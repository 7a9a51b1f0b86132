package header

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/zostay/go-mailparse/header/field"
)

// Errors returned when looking up or editing fields.
var (
	// ErrNoSuchField means no field in the header has the requested name.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields means more than one field has the requested name where at
	// most one was expected.
	ErrManyFields = errors.New("many header fields found")

	// ErrIndexOutOfRange means a field index was negative or past the last
	// field.
	ErrIndexOutOfRange = errors.New("header field index is out of range")
)

// Header is an ordered list of header fields along with the blank line that
// ended the block. A Header returned from Parse writes back out exactly the
// bytes it was parsed from. The zero value is an empty header that will be
// terminated with CRLF.
type Header struct {
	fields   []*field.Field
	lbr      Break
	hasBreak bool
}

// Break returns the line break that terminates the header. This is CRLF unless
// the header was parsed or SetBreak was called.
func (h *Header) Break() Break {
	if !h.hasBreak {
		return CRLF
	}
	return h.lbr
}

// SetBreak changes the line break that terminates the header. Use Meh to write
// no blank line at all.
func (h *Header) SetBreak(lbr Break) {
	h.lbr = lbr
	h.hasBreak = true
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// GetField returns the nth field or nil if n is out of range.
func (h *Header) GetField(n int) *field.Field {
	if n < 0 || n >= len(h.fields) {
		return nil
	}
	return h.fields[n]
}

// GetFieldNamed returns the nth (0-indexed) field with the given name or nil if
// no such field is set. Names are compared case-insensitively.
func (h *Header) GetFieldNamed(name string, n int) *field.Field {
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			if n == 0 {
				return f
			}
			n--
		}
	}
	return nil
}

// GetAllFieldsNamed returns all the fields with the given name, in order.
func (h *Header) GetAllFieldsNamed(name string) []*field.Field {
	ixs := h.GetIndexesNamed(name)
	fs := make([]*field.Field, len(ixs))
	for i, ix := range ixs {
		fs[i] = h.fields[ix]
	}
	return fs
}

// GetIndexesNamed returns the indexes of fields with the given name. Names are
// compared case-insensitively.
func (h *Header) GetIndexesNamed(name string) []int {
	var ixs []int
	for i, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			ixs = append(ixs, i)
		}
	}
	return ixs
}

// ListFields returns all the fields in the header.
func (h *Header) ListFields() []*field.Field {
	fs := make([]*field.Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}

// Get returns the raw value of the named field. It fails with ErrNoSuchField if
// there is no such field. With more than one, the first value is returned along
// with ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	v := h.fields[ixs[0]].RawValue()
	if len(ixs) > 1 {
		return v, ErrManyFields
	}

	return v, nil
}

// GetAll retrieves the raw values of every field with the given name, in order.
// It returns ErrNoSuchField if there are none.
func (h *Header) GetAll(name string) ([]string, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	vs := make([]string, len(fs))
	for i, f := range fs {
		vs[i] = f.RawValue()
	}
	return vs, nil
}

// Conformance returns the union of the conformance flags of every field.
func (h *Header) Conformance() field.Conformance {
	var c field.Conformance
	for _, f := range h.fields {
		c = c.With(f.Conformance())
	}
	return c
}

// Add appends a new canonical field to the end of the header.
func (h *Header) Add(name, value string) {
	h.fields = append(h.fields, field.New(name, value))
}

// InsertBeforeField will insert a new canonical field with the given name and
// value into the header at the given index.
func (h *Header) InsertBeforeField(n int, name, value string) {
	n = min(max(n, 0), len(h.fields))

	h.fields = append(h.fields, nil)
	copy(h.fields[n+1:], h.fields[n:])
	h.fields[n] = field.New(name, value)
}

// DeleteField removes the nth field, or returns ErrIndexOutOfRange.
func (h *Header) DeleteField(n int) error {
	if n < 0 || n >= len(h.fields) {
		return ErrIndexOutOfRange
	}

	copy(h.fields[n:], h.fields[n+1:])
	h.fields[len(h.fields)-1] = nil
	h.fields = h.fields[:len(h.fields)-1]

	return nil
}

// ClearFields removes all fields from the header.
func (h *Header) ClearFields() {
	h.fields = h.fields[:0]
}

// keepRaw reports whether the raw bytes of the ith field may be written as-is.
// A raw field missing its line ending is only safe to write at the very end of
// an unterminated header.
func (h *Header) keepRaw(i int, raw []byte) bool {
	switch {
	case raw == nil:
		return false
	case raw[len(raw)-1] == '\n':
		return true
	default:
		return i == len(h.fields)-1 && h.Break() == Meh
	}
}

// WriteTo writes the header to the given io.Writer. Parsed fields are written
// byte for byte as they were read. Fields added by Add or InsertBeforeField are
// written with field.Field.WriteTo. The header is followed by its Break.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, f := range h.fields {
		if raw := f.Raw(); h.keepRaw(i, raw) {
			n, err := w.Write(raw)
			total += int64(n)
			if err != nil {
				return total, err
			}
			continue
		}

		n, err := f.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err := w.Write(h.Break().Bytes())
	total += int64(n)
	return total, err
}

// Bytes returns the output of WriteTo as a slice of bytes. The result is never
// nil, even for a header that writes nothing.
func (h *Header) Bytes() []byte {
	buf := &bytes.Buffer{}
	_, _ = h.WriteTo(buf)
	return append([]byte{}, buf.Bytes()...)
}

// String returns the output of WriteTo as a string.
func (h *Header) String() string {
	return string(h.Bytes())
}
