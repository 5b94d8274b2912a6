package field

import (
	"bytes"
)

// BadStartError is returned when the header begins with text that does
// not look like a header field. The junk text is preserved in the error
// and the rest of the header is still parsed.
type BadStartError struct {
	BadStart []byte
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header field"
}

// Line is the unparsed content of one complete header field, folds
// included.
type Line []byte

// ParseLines splits raw header bytes into one Line per field using the
// given line break. A line that starts with a space or tab, or that
// contains no colon, continues the field before it. Junk lines before the
// first real field are skipped and reported via a BadStartError, which is
// recoverable: the Lines returned alongside it are still valid.
func ParseLines(m, lb []byte) ([]Line, error) {
	lines := make([]Line, 0, len(m)/80)
	var badStart *BadStartError
	for _, line := range bytes.SplitAfter(m, lb) {
		if len(line) == 0 {
			break
		}

		// a blank line ends the header
		if bytes.Equal(line, lb) {
			break
		}

		if line[0] == ' ' || line[0] == '\t' || !bytes.ContainsRune(line, ':') {
			if len(lines) == 0 {
				if badStart != nil {
					badStart.BadStart = append(badStart.BadStart, line...)
				} else {
					badStart = &BadStartError{line}
				}
				continue
			}

			lines[len(lines)-1] = append(lines[len(lines)-1], line...)
			continue
		}

		lines = append(lines, line)
	}

	if badStart != nil {
		return lines, badStart
	}
	return lines, nil
}

// Parse turns one Line into a Field. The name is everything before the
// first colon; the body is unfolded with each fold collapsed to a single
// space. A line without a colon produces a field with an empty body.
func Parse(l Line, lb []byte) *Field {
	raw := bytes.TrimRight(l, string(lb))

	off := 1
	ix := bytes.IndexByte(raw, ':')
	if ix < 0 {
		ix = len(raw)
		off = 0
	}

	name := string(bytes.TrimSpace(unfold(raw[:ix], lb)))
	body := string(bytes.TrimSpace(unfold(raw[ix+off:], lb)))

	return &Field{name: name, body: body, raw: raw}
}

// unfold collapses each line break plus its continuation whitespace into
// a single space.
func unfold(b, lb []byte) []byte {
	if !bytes.Contains(b, lb) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if bytes.HasPrefix(b[i:], lb) {
			i += len(lb) - 1
			for i+1 < len(b) && (b[i+1] == ' ' || b[i+1] == '\t') {
				i++
			}
			out = append(out, ' ')
			continue
		}
		out = append(out, b[i])
	}
	return out
}
