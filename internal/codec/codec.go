// Package codec holds the lenient byte-level decoders shared by the
// transfer-encoding readers and the header encoded-word decoder. Both of
// those consumers have to accept the sloppy base64 and quoted-printable
// found in real mail, so the permissive scanning lives here rather than
// being duplicated in each package.
package codec

import "encoding/base64"

// Base64 decodes b as base64 as permissively as possible. Characters
// outside the base64 alphabet (including all whitespace and line breaks)
// are skipped. Missing trailing padding is tolerated. A trailing group of
// a single character cannot encode anything and is dropped.
//
// The second return is false only when nothing decodable remained after
// cleaning, in which case the caller should fall back to the raw input.
func Base64(b []byte) ([]byte, bool) {
	clean := make([]byte, 0, len(b))
	for _, c := range b {
		if isBase64(c) {
			clean = append(clean, c)
		}
	}

	if len(clean)%4 == 1 {
		clean = clean[:len(clean)-1]
	}
	if len(clean) == 0 {
		return nil, len(b) == 0
	}

	out := make([]byte, base64.RawStdEncoding.DecodedLen(len(clean)))
	n, err := base64.RawStdEncoding.Decode(out, clean)
	if err != nil {
		return out[:n], n > 0
	}
	return out[:n], true
}

func isBase64(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '+' || c == '/':
		return true
	}
	return false
}

// QuotedPrintable decodes b from quoted-printable form. Soft line breaks
// ("=" at end of line) vanish, "=XX" hex escapes become the encoded byte,
// and anything that only looks like an escape passes through literally.
// When underscoreSpace is set, "_" decodes to a space as required for
// Q-encoded header words.
//
// This decoder cannot fail; at worst the input comes back unchanged.
func QuotedPrintable(b []byte, underscoreSpace bool) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]

		if underscoreSpace && c == '_' {
			out = append(out, ' ')
			continue
		}

		if c != '=' {
			out = append(out, c)
			continue
		}

		// soft break: "=\r\n" or "=\n"
		if i+1 < len(b) && b[i+1] == '\n' {
			i++
			continue
		}
		if i+2 < len(b) && b[i+1] == '\r' && b[i+2] == '\n' {
			i += 2
			continue
		}

		if i+2 < len(b) {
			hi, okHi := unhex(b[i+1])
			lo, okLo := unhex(b[i+2])
			if okHi && okLo {
				out = append(out, hi<<4|lo)
				i += 2
				continue
			}
		}

		// not a valid escape, keep the literal "="
		out = append(out, c)
	}
	return out
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
