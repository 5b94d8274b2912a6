package transfer

import (
	"io"

	"github.com/zostay/go-eml/internal/codec"
)

// NewBase64Decoder will read bytes from the given io.Reader and return
// them in the returned io.Reader after decoding them from base64.
//
// Decoding is deliberately forgiving: embedded whitespace and line
// breaks are skipped, characters outside the base64 alphabet are
// dropped, and missing padding is repaired. If nothing in the input
// decodes, the bytes are passed through unchanged.
func NewBase64Decoder(r io.Reader) io.Reader {
	return &decodeReader{
		src: r,
		decode: func(b []byte) []byte {
			if out, ok := codec.Base64(b); ok {
				return out
			}
			return b
		},
	}
}
