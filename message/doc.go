// Package message splits a whole email message into its header and its body
// without disturbing a single byte of either. The header is scanned with
// header.Parse; the body is left as an io.Reader that has not been read any
// further than needed to find the end of the header.
//
//	m, err := message.Parse(in)
//	if err != nil {
//	  panic(err)
//	}
//
//	subject, _ := m.Get("Subject")
//	_, err = m.WriteTo(out) // identical to in
//
// Nothing about the body is interpreted. MIME structure and transfer decoding
// are left to the caller.
package message
