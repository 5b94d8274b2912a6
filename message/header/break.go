package header

// Break is the line break a message uses between header fields.
type Break string

// The line breaks seen in the wild. CRLF is the one the RFCs call for.
const (
	CRLF Break = "\x0d\x0a" // \r\n - network line break
	LF   Break = "\x0a"     // \n - unix line break
	CR   Break = "\x0d"     // \r - old Mac line break
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
