package header

import (
	"errors"

	"github.com/zostay/go-eml/message/header/field"
)

// Parse parses the given bytes into a Header using the given line break.
// The entire input is treated as header content.
//
// Junk text before the first field is skipped; when that happens the
// Header is still returned together with a *field.BadStartError so the
// caller may choose to care. Any other error means the input could not be
// parsed at all.
func Parse(m []byte, lb Break) (*Header, error) {
	lines, err := field.ParseLines(m, lb.Bytes())

	var badStart *field.BadStartError
	var finalErr error
	if errors.As(err, &badStart) {
		finalErr = badStart
	} else if err != nil {
		return nil, err
	}

	fields := make([]*field.Field, len(lines))
	for i, line := range lines {
		fields[i] = field.Parse(line, lb.Bytes())
	}

	return &Header{lbr: lb, fields: fields}, finalErr
}
