// Package charset converts text from declared MIME character sets into
// native Go strings. Lookups go through the IANA registry provided by
// golang.org/x/text. Decoding here never fails: an unknown or lying
// charset degrades to a byte-preserving decode with the Unicode
// replacement character standing in for anything undecodable.
package charset

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Decode interprets b as text in the named character set and returns it
// as a string. The name is matched against the IANA MIME registry. An
// empty or unrecognized name falls back to UTF-8 with invalid sequences
// replaced, which also covers us-ascii input.
func Decode(name string, b []byte) string {
	if e := lookup(name); e != nil {
		if out, err := e.NewDecoder().Bytes(b); err == nil {
			return string(out)
		}
	}
	return decodeLossy(b)
}

// Supported reports whether the named character set resolves to a known
// decoder. UTF-8 and us-ascii count as supported even though they take
// the fallback path in Decode.
func Supported(name string) bool {
	switch normalize(name) {
	case "utf-8", "utf8", "us-ascii", "ascii", "":
		return true
	}
	return lookup(name) != nil
}

func lookup(name string) encoding.Encoding {
	n := normalize(name)
	switch n {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		// decodeLossy handles these directly
		return nil
	}

	e, err := ianaindex.MIME.Encoding(n)
	if err != nil || e == nil {
		return nil
	}
	return e
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// decodeLossy reads b as UTF-8, substituting the replacement character
// for each byte that is not part of a valid sequence.
func decodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var s strings.Builder
	s.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		s.WriteRune(r)
		b = b[size:]
	}
	return s.String()
}
