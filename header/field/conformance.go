package field

import "strings"

// Conformance records the ways in which a parsed field deviates from canonical
// formatting. Each deviation is an independent flag. The zero value means the
// field is fully canonical.
type Conformance uint8

// Conformance flags.
const (
	// MissingColonValue is set when the field line ended without any colon,
	// so the whole line became the name and the value is empty.
	MissingColonValue Conformance = 1 << iota

	// NonCanonicalLineEndings is set when at least one line of the field was
	// terminated by a bare LF rather than CRLF.
	NonCanonicalLineEndings
)

var conformanceNames = []struct {
	flag Conformance
	name string
}{
	{MissingColonValue, "MISSING_COLON_VALUE"},
	{NonCanonicalLineEndings, "NON_CANONICAL_LINE_ENDINGS"},
}

// Has returns true if every flag in flag is set on c.
func (c Conformance) Has(flag Conformance) bool {
	return c&flag == flag
}

// With returns c with the given flags set.
func (c Conformance) With(flag Conformance) Conformance {
	return c | flag
}

// IsCanonical returns true if no deviation has been recorded.
func (c Conformance) IsCanonical() bool {
	return c == 0
}

// String returns the set flags joined by "|", or "CANONICAL" for the empty set.
func (c Conformance) String() string {
	if c.IsCanonical() {
		return "CANONICAL"
	}

	names := make([]string, 0, len(conformanceNames))
	for _, cn := range conformanceNames {
		if c.Has(cn.flag) {
			names = append(names, cn.name)
		}
	}
	return strings.Join(names, "|")
}
