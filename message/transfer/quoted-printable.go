package transfer

import (
	"io"

	"github.com/zostay/go-eml/internal/codec"
)

// NewQuotedPrintableDecoder will read bytes from the given io.Reader and
// return them in the returned io.Reader after decoding them from
// quoted-printable format.
//
// Unlike mime/quotedprintable, decoding never fails: soft line breaks
// are removed, valid =XX escapes are resolved, and anything malformed is
// kept literally.
func NewQuotedPrintableDecoder(r io.Reader) io.Reader {
	return &decodeReader{
		src: r,
		decode: func(b []byte) []byte {
			return codec.QuotedPrintable(b, false)
		},
	}
}
