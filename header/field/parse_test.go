package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailparse/header/field"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		fieldName   string
		separator   string
		value       string
		consumed    int
		conformance field.Conformance
	}{
		{
			name:      "canonical",
			input:     "Subject: hi\r\nFrom: a@b\r\n",
			fieldName: "Subject",
			separator: ": ",
			value:     "hi",
			consumed:  13,
		},
		{
			name:        "bare LF",
			input:       "Subject: hello there\nFrom: x\n",
			fieldName:   "Subject",
			separator:   ": ",
			value:       "hello there",
			consumed:    21,
			conformance: field.NonCanonicalLineEndings,
		},
		{
			name:        "wide separator",
			input:       "From:  Someone <someone@example.com>\n\n",
			fieldName:   "From",
			separator:   ":  ",
			value:       "Someone <someone@example.com>",
			consumed:    37,
			conformance: field.NonCanonicalLineEndings,
		},
		{
			name:      "no separator space",
			input:     "To:x\r\n",
			fieldName: "To",
			separator: ":",
			value:     "x",
			consumed:  6,
		},
		{
			name:      "tab separator",
			input:     "To:\t x\r\n",
			fieldName: "To",
			separator: ":\t ",
			value:     "x",
			consumed:  8,
		},
		{
			name:        "folded",
			input:       "X-A: line1\n line2\n",
			fieldName:   "X-A",
			separator:   ": ",
			value:       "line1\n line2",
			consumed:    18,
			conformance: field.NonCanonicalLineEndings,
		},
		{
			name:      "folded CRLF with tab",
			input:     "X-A: line1\r\n\tline2\r\n\r\n",
			fieldName: "X-A",
			separator: ": ",
			value:     "line1\r\n\tline2",
			consumed:  20,
		},
		{
			name:        "mixed line endings",
			input:       "X-A: one\n two\r\nNext: x\r\n",
			fieldName:   "X-A",
			separator:   ": ",
			value:       "one\n two",
			consumed:    15,
			conformance: field.NonCanonicalLineEndings,
		},
		{
			name:        "missing colon",
			input:       "Malformed\nNext: ok\n\nbody",
			fieldName:   "Malformed",
			consumed:    10,
			conformance: field.MissingColonValue | field.NonCanonicalLineEndings,
		},
		{
			name:        "missing colon CRLF",
			input:       "Malformed\r\nNext: ok\r\n",
			fieldName:   "Malformed",
			consumed:    11,
			conformance: field.MissingColonValue,
		},
		{
			name:        "missing colon at end of input",
			input:       "Malformed",
			fieldName:   "Malformed",
			consumed:    9,
			conformance: field.MissingColonValue,
		},
		{
			name:      "no line ending",
			input:     "Subject: hi",
			fieldName: "Subject",
			separator: ": ",
			value:     "hi",
			consumed:  11,
		},
		{
			name:      "colon at end of input",
			input:     "Subject: ",
			fieldName: "Subject",
			separator: ": ",
			consumed:  9,
		},
		{
			name:        "empty value",
			input:       "Subject:\nX: y\n",
			fieldName:   "Subject",
			separator:   ":",
			consumed:    9,
			conformance: field.NonCanonicalLineEndings,
		},
		{
			name:      "empty first line then fold",
			input:     "Subject:\r\n folded\r\n",
			fieldName: "Subject",
			separator: ":",
			value:     "\r\n folded",
			consumed:  19,
		},
		{
			name:      "colon inside value",
			input:     "Date: Mon, 1 Jan 2024 10:00:00 +0000\r\n",
			fieldName: "Date",
			separator: ": ",
			value:     "Mon, 1 Jan 2024 10:00:00 +0000",
			consumed:  38,
		},
		{
			name:      "stray CR inside value",
			input:     "X: a\rb\r\n",
			fieldName: "X",
			separator: ": ",
			value:     "a\rb",
			consumed:  8,
		},
		{
			name:      "trailing CR before CRLF",
			input:     "X: a\r\r\n",
			fieldName: "X",
			separator: ": ",
			value:     "a",
			consumed:  7,
		},
		{
			name:      "eight bit value",
			input:     "Subject: caf\xc3\xa9\r\n",
			fieldName: "Subject",
			separator: ": ",
			value:     "caf\xc3\xa9",
			consumed:  16,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, n, err := field.Parse([]byte(tt.input), 0)
			require.NoError(t, err)
			require.NotNil(t, f)

			assert.Equal(t, tt.fieldName, f.Name())
			assert.Equal(t, tt.separator, f.Separator())
			assert.Equal(t, tt.value, f.RawValue())
			assert.Equal(t, tt.consumed, n)
			assert.Equal(t, tt.conformance, f.Conformance())
			assert.Equal(t, tt.input[:n], string(f.Raw()))
			assert.Equal(t, n, f.Len())

			// the three spans cover the framing bytes in order
			framing := f.Name() + f.Separator() + f.RawValue()
			assert.Equal(t, tt.input[:len(framing)], framing)
		})
	}
}

func TestParse_Offset(t *testing.T) {
	t.Parallel()

	buf := []byte("Subject: hi\r\nFrom: a@b\r\n\r\nBODY")

	f, n, err := field.Parse(buf, 13)
	require.NoError(t, err)
	assert.Equal(t, "From", f.Name())
	assert.Equal(t, "a@b", f.RawValue())
	assert.Equal(t, 11, n)
	assert.True(t, f.Conformance().IsCanonical())

	g, m, err := field.Parse(buf[13:], 0)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, f.Name(), g.Name())
	assert.Equal(t, f.Separator(), g.Separator())
	assert.Equal(t, f.RawValue(), g.RawValue())
}

func TestParse_ZeroCopy(t *testing.T) {
	t.Parallel()

	buf := []byte("Subject: hi\r\n")
	f, _, err := field.Parse(buf, 0)
	require.NoError(t, err)

	buf[9] = 'H'
	assert.Equal(t, "Hi", f.RawValue())
	assert.Equal(t, []byte("Subject"), f.NameBytes())
	assert.Equal(t, []byte(": "), f.SeparatorBytes())
	assert.Equal(t, []byte("Hi"), f.RawValueBytes())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		start  int
		err    error
		offset int
	}{
		{"empty", "", 0, field.ErrEmptyInput, 0},
		{"start at end", "Subject: hi\n", 12, field.ErrEmptyInput, 12},
		{"negative start", "Subject: hi\n", -1, field.ErrEmptyInput, -1},
		{"leading space", " Subject: hi\n", 0, field.ErrMalformedHeader, 0},
		{"leading tab", "\tSubject: hi\n", 0, field.ErrMalformedHeader, 0},
		{"leading LF", "\nSubject: hi\n", 0, field.ErrMalformedHeader, 0},
		{"leading CR", "\r\n", 0, field.ErrMalformedHeader, 0},
		{"space in name", "Bad Name: x\n", 0, field.ErrMalformedHeader, 3},
		{"control in name", "Bad\x01: x\n", 0, field.ErrMalformedHeader, 3},
		{"DEL in name", "Bad\x7f: x\n", 0, field.ErrMalformedHeader, 3},
		{"eight bit name", "Caf\xc3\xa9: x\n", 0, field.ErrMalformedHeader, 3},
		{"CR in name", "Bad\rName: x\n", 0, field.ErrMalformedHeader, 3},
		{"CR ending name at end of input", "Bad\r", 0, field.ErrMalformedHeader, 3},
		{"offset is relative to buffer", "A: b\n C", 5, field.ErrMalformedHeader, 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, n, err := field.Parse([]byte(tt.input), tt.start)
			assert.Nil(t, f)
			assert.Zero(t, n)
			assert.ErrorIs(t, err, tt.err)

			var perr *field.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.offset, perr.Offset)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	pairs := []struct{ name, value string }{
		{"To", "someone@example.com"},
		{"Subject", "hello there"},
		{"X-Empty", ""},
		{"Message-ID", "<1234@example.com>"},
		{"Content-Type", "text/plain; charset=utf-8"},
		{"X", "a:b:c"},
		{"Received", "from mx.example.com by mx2.example.com; Tue, 1 Oct 2024"},
		{"!#$%&'*+-.^_`|~", "punctuation"},
	}

	for _, p := range pairs {
		orig := field.New(p.name, p.value)
		f, n, err := field.Parse(orig.Bytes(), 0)
		require.NoError(t, err, p.name)

		assert.Equal(t, p.name, f.Name())
		assert.Equal(t, p.value, f.RawValue())
		assert.True(t, f.Conformance().IsCanonical(), p.name)
		assert.Equal(t, len(orig.Bytes()), n)
		assert.Equal(t, orig.Bytes(), f.Bytes())
	}
}
