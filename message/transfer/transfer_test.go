package transfer_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-eml/message/header"
	"github.com/zostay/go-eml/message/transfer"
)

func parseHeader(t *testing.T, src string) *header.Header {
	t.Helper()
	h, err := header.Parse([]byte(src), header.LF)
	require.NoError(t, err)
	return h
}

func TestApplyTransferDecoding_Base64(t *testing.T) {
	t.Parallel()

	h := parseHeader(t, "Content-Transfer-Encoding: base64\n")

	r := transfer.ApplyTransferDecoding(h, strings.NewReader("SGVsbG8g\nV29ybGQ=\n"))
	b, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "Hello World", string(b))
}

func TestApplyTransferDecoding_Base64Broken(t *testing.T) {
	t.Parallel()

	h := parseHeader(t, "Content-Transfer-Encoding: BASE64\n")

	// missing padding and stray characters still decode
	r := transfer.ApplyTransferDecoding(h, strings.NewReader("SGVs!bG8g V29ybGQ"))
	b, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "Hello World", string(b))
}

func TestApplyTransferDecoding_QuotedPrintable(t *testing.T) {
	t.Parallel()

	h := parseHeader(t, "Content-Transfer-Encoding: quoted-printable\n")

	r := transfer.ApplyTransferDecoding(h, strings.NewReader("Caf=C3=A9 au=\r\n lait =zz"))
	b, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "Caf\xc3\xa9 au lait =zz", string(b))
}

func TestApplyTransferDecoding_AsIs(t *testing.T) {
	t.Parallel()

	for _, cte := range []string{"7bit", "8bit", "binary", "x-unknown"} {
		h := parseHeader(t, "Content-Transfer-Encoding: "+cte+"\n")

		r := transfer.ApplyTransferDecoding(h, strings.NewReader("abc=20def"))
		b, err := io.ReadAll(r)
		assert.NoError(t, err)
		assert.Equal(t, "abc=20def", string(b), cte)
	}
}

func TestApplyTransferDecoding_NoHeader(t *testing.T) {
	t.Parallel()

	h := parseHeader(t, "Subject: none\n")

	r := transfer.ApplyTransferDecoding(h, strings.NewReader("plain"))
	b, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "plain", string(b))
}

func TestApplyTransferDecoding_MultipartSkipped(t *testing.T) {
	t.Parallel()

	h := parseHeader(t,
		"Content-Type: multipart/mixed; boundary=xyz\n"+
			"Content-Transfer-Encoding: base64\n")

	// the container is never decoded, only its parts are
	r := transfer.ApplyTransferDecoding(h, strings.NewReader("SGVsbG8="))
	b, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "SGVsbG8=", string(b))
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	assert.Equal(t, transfer.Base64, transfer.Canonical(" Base64 "))
	assert.Equal(t, transfer.QuotedPrintable, transfer.Canonical("Quoted-Printable"))
}
