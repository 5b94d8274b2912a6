// Package boundary implements the line-oriented splitting of a multipart
// body into its part byte ranges.
package boundary

import "bytes"

// Split divides body into the byte ranges delimited by the boundary
// marker. A separator is a line of exactly "--boundary" and the
// terminator is "--boundary--"; trailing transport padding (spaces and
// tabs) on a marker line is ignored. Bytes before the first separator
// (the preamble) and after the terminator (the epilogue) are discarded.
//
// Each returned range is a sub-slice of body, so ranges of sibling parts
// never overlap. The line break immediately preceding a marker belongs to
// the marker, not to the part before it.
//
// The boolean reports whether the terminator line was found. When it is
// missing, everything after the last separator becomes the final range.
func Split(body []byte, boundary string) ([][]byte, bool) {
	sep := []byte("--" + boundary)
	term := []byte("--" + boundary + "--")

	var (
		ranges [][]byte
		start  int
		inPart bool
	)

	pos := 0
	for pos <= len(body) {
		lineEnd := len(body)
		next := len(body) + 1
		if ix := bytes.IndexByte(body[pos:], '\n'); ix >= 0 {
			lineEnd = pos + ix
			next = lineEnd + 1
		}

		line := trimMarker(body[pos:lineEnd])
		switch {
		case bytes.Equal(line, term):
			if inPart {
				ranges = append(ranges, body[start:chompBreak(body, pos)])
			}
			return ranges, true
		case bytes.Equal(line, sep):
			if inPart {
				ranges = append(ranges, body[start:chompBreak(body, pos)])
			}
			if next > len(body) {
				next = len(body)
			}
			start = next
			inPart = true
		}

		pos = next
	}

	if inPart {
		ranges = append(ranges, body[start:])
	}
	return ranges, false
}

// trimMarker removes the line break and transport padding from the end of
// a candidate marker line.
func trimMarker(line []byte) []byte {
	return bytes.TrimRight(line, " \t\r")
}

// chompBreak backs up over the line break that introduced the marker line
// starting at pos, so the break is not counted as part content.
func chompBreak(body []byte, pos int) int {
	if pos > 0 && body[pos-1] == '\n' {
		pos--
		if pos > 0 && body[pos-1] == '\r' {
			pos--
		}
	}
	return pos
}
