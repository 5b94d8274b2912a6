package transfer

import (
	"bytes"
	"io"
	"strings"

	"github.com/zostay/go-eml/message/header"
)

// The Content-transfer-encoding values with defined handling. Anything
// else is passed through as-is.
const (
	None            = ""                 // bytes will be left as-is
	Bit7            = "7bit"             // bytes will be left as-is
	Bit8            = "8bit"             // bytes will be left as-is
	Binary          = "binary"           // bytes will be left as-is
	QuotedPrintable = "quoted-printable" // bytes will be decoded from quoted-printable
	Base64          = "base64"           // bytes will be decoded from base64
)

// Decoding builds an io.Reader that decodes a transfer encoding as it
// reads from the given io.Reader.
type Decoding func(io.Reader) io.Reader

// Decodings defines the supported Content-transfer-encodings and how to
// handle them. It can be modified to change the global handling of
// transfer encodings.
var Decodings = map[string]Decoding{
	None:            NewAsIsDecoder,
	Bit7:            NewAsIsDecoder,
	Bit8:            NewAsIsDecoder,
	Binary:          NewAsIsDecoder,
	QuotedPrintable: NewQuotedPrintableDecoder,
	Base64:          NewBase64Decoder,
}

// Canonical normalizes a Content-transfer-encoding body for lookup in
// Decodings.
func Canonical(cte string) string {
	return strings.ToLower(strings.TrimSpace(cte))
}

// ApplyTransferDecoding returns an io.Reader that will modify incoming
// bytes according to the transfer encoding detected from the given
// header. The io.Reader will leave the bytes as-is if there is no
// transfer encoding, the transfer encoding is one that is interpreted
// as-is, or the transfer encoding is unknown.
//
// Multipart content is never transfer decoded: the encoding applies to
// the parts, not the container.
func ApplyTransferDecoding(h *header.Header, r io.Reader) io.Reader {
	ct, err := h.GetContentType()
	if err == nil && ct != nil && ct.Type() == "multipart" {
		return r
	}

	cte, err := h.GetTransferEncoding()
	if err != nil {
		return r
	}

	if d, hasCode := Decodings[Canonical(cte)]; hasCode {
		return d(r)
	}

	return r
}

// decodeReader defers a whole-buffer decode until the first Read. The
// lenient decoders need the full input at once, so nothing is consumed
// from the source until the decoded bytes are wanted.
type decodeReader struct {
	src    io.Reader
	decode func([]byte) []byte
	out    *bytes.Reader
}

func (d *decodeReader) Read(p []byte) (int, error) {
	if d.out == nil {
		b, err := io.ReadAll(d.src)
		if err != nil {
			return 0, err
		}
		d.out = bytes.NewReader(d.decode(b))
	}
	return d.out.Read(p)
}
