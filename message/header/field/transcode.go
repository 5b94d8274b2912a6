package field

import (
	"regexp"
	"strings"

	"github.com/zostay/go-eml/internal/codec"
	"github.com/zostay/go-eml/message/charset"
)

// encodedWord matches a single RFC 2047 encoded word,
// =?charset?B|Q?payload?=. The payload may be empty.
var encodedWord = regexp.MustCompile(`=\?([^?\s]+)\?([BbQq])\?([^?\s]*)\?=`)

// DecodeWords resolves all RFC 2047 encoded words in a header body.
//
// Adjacent encoded words separated by nothing but folding whitespace
// decode as one concatenated string with the separator dropped. All other
// text, including the whitespace between an encoded word and plain text,
// is kept verbatim. A word whose payload fails to decode is emitted raw;
// a word with an unknown charset is decoded byte-preservingly with
// replacement characters. DecodeWords never fails.
func DecodeWords(body string) string {
	if !strings.Contains(body, "=?") {
		return body
	}

	matches := encodedWord.FindAllStringSubmatchIndex(body, -1)
	if matches == nil {
		return body
	}

	var (
		out      strings.Builder
		last     int
		prevWord bool
	)
	out.Grow(len(body))

	for _, m := range matches {
		gap := body[last:m[0]]
		cs := body[m[2]:m[3]]
		enc := body[m[4]:m[5]]
		payload := body[m[6]:m[7]]

		decoded, ok := decodeWord(cs, enc, payload)

		if !(ok && prevWord && isFoldingSpace(gap)) {
			out.WriteString(gap)
		}

		if ok {
			out.WriteString(decoded)
		} else {
			out.WriteString(body[m[0]:m[1]])
		}

		prevWord = ok
		last = m[1]
	}
	out.WriteString(body[last:])

	return out.String()
}

// decodeWord decodes one encoded word payload. The second return is false
// when the payload is not valid for its encoding, in which case the
// caller should keep the raw token.
func decodeWord(cs, enc, payload string) (string, bool) {
	var raw []byte
	switch enc {
	case "B", "b":
		var ok bool
		raw, ok = codec.Base64([]byte(payload))
		if !ok {
			return "", false
		}
	case "Q", "q":
		var ok bool
		raw, ok = decodeQWord(payload)
		if !ok {
			return "", false
		}
	default:
		return "", false
	}

	return charset.Decode(cs, raw), true
}

// decodeQWord decodes a Q-encoded payload: "_" is a space and "=XX" is a
// hex escape. Unlike body quoted-printable, a broken escape fails the
// whole word so the raw token can be preserved.
func decodeQWord(payload string) ([]byte, bool) {
	out := make([]byte, 0, len(payload))
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		switch c {
		case '_':
			out = append(out, ' ')
		case '=':
			if i+2 >= len(payload) {
				return nil, false
			}
			hi, okHi := unhex(payload[i+1])
			lo, okLo := unhex(payload[i+2])
			if !okHi || !okLo {
				return nil, false
			}
			out = append(out, hi<<4|lo)
			i += 2
		default:
			out = append(out, c)
		}
	}
	return out, true
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

// isFoldingSpace reports whether s consists only of whitespace, i.e. the
// linear whitespace that may separate two encoded words.
func isFoldingSpace(s string) bool {
	if s == "" {
		return false
	}
	return strings.TrimLeft(s, " \t\r\n") == ""
}
