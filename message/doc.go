// Package message provides structured parsing of email messages. A
// message is a header plus either plain content (Opaque) or a list of
// sub-parts (Multipart), and parsing recursively discovers the tree
// structure of a multipart MIME message from a byte stream.
//
// The parser is deliberately lenient. Real mail archives are full of
// messages that bend the RFCs: missing final boundaries, absent
// boundary parameters, junk before the first header field, unusual line
// endings. Wherever recovery is possible the parser produces a usable
// message rather than an error.
package message
