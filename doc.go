// Package mailparse scans email message headers exactly as they were written.
// Most mail libraries normalize a header as they read it: line endings change,
// folded values are unfolded, and fields that are not quite right get dropped
// or rejected. This library does none of that. Every field keeps the bytes it
// was read from, so a header can be written back out byte-for-byte identical,
// even when it uses bare LF line endings or has a line with no colon on it.
//
// The work is split by part of the message.
//
// The header/field package reads a single field with field.Parse. It reports
// how far into the input the field went and a set of field.Conformance flags
// describing what, if anything, was wrong with it. A field that was not
// perfectly formed is still returned so long as it can be read without
// guessing. field.New builds a new, canonical field.
//
// The header package reads a whole header block with header.Parse, up to and
// including the blank line that ends it. The header.Header it returns can be
// queried and edited, and fields that were never touched are written back out
// exactly as they were read.
//
// The message package reads a header from an io.Reader with message.Parse and
// leaves the body unread in a message.Opaque.
//
// The cmd/mailscan command lists the fields of messages and checks how well
// they survive a round-trip.
package mailparse
