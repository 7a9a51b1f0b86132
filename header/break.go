package header

// Break represents the line break that terminated a header block.
type Break string

// Constants for the line breaks that may end a header block. A block that ran to
// the end of input without a blank line is terminated by Meh.
const (
	Meh  Break = ""         // No terminating blank line
	CRLF Break = "\x0d\x0a" // \r\n - Network linebreak
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
