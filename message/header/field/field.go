// Package field provides the low-level storage and parsing of individual
// header fields: splitting a header block into logical lines, unfolding
// continuations, and decoding RFC 2047 encoded words on demand.
package field

// Field is a single parsed header field. The body is stored unfolded,
// with folding whitespace collapsed to a single space, but otherwise
// undecoded; encoded words are resolved lazily via DecodeWords so the
// original value remains available.
type Field struct {
	name string
	body string
	raw  []byte
}

// Name returns the field name, the text before the first colon.
func (f *Field) Name() string {
	return f.name
}

// Body returns the unfolded field body with encoded words left intact.
func (f *Field) Body() string {
	return f.body
}

// DecodedBody returns the field body with RFC 2047 encoded words
// resolved. Tokens that fail to decode are kept verbatim.
func (f *Field) DecodedBody() string {
	return DecodeWords(f.body)
}

// Raw returns the original bytes of the field, folds included.
func (f *Field) Raw() []byte {
	return f.raw
}
