package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-eml/internal/codec"
)

func TestBase64(t *testing.T) {
	t.Parallel()

	out, ok := codec.Base64([]byte("aGVsbG8gd29ybGQ="))
	assert.True(t, ok)
	assert.Equal(t, []byte("hello world"), out)

	// line breaks and stray characters are skipped
	out, ok = codec.Base64([]byte("aGVs\r\nbG8g\td29y bGQ="))
	assert.True(t, ok)
	assert.Equal(t, []byte("hello world"), out)

	// missing padding is tolerated
	out, ok = codec.Base64([]byte("aGVsbG8"))
	assert.True(t, ok)
	assert.Equal(t, []byte("hello"), out)

	// a trailing group of one character is dropped
	out, ok = codec.Base64([]byte("aGVsbG8gd"))
	assert.True(t, ok)
	assert.Equal(t, []byte("hello "), out)
}

func TestBase64Empty(t *testing.T) {
	t.Parallel()

	out, ok := codec.Base64(nil)
	assert.True(t, ok)
	assert.Empty(t, out)

	_, ok = codec.Base64([]byte("!!!"))
	assert.False(t, ok)
}

func TestQuotedPrintable(t *testing.T) {
	t.Parallel()

	out := codec.QuotedPrintable([]byte("Caf=C3=A9"), false)
	assert.Equal(t, "Café", string(out))

	// soft line breaks vanish
	out = codec.QuotedPrintable([]byte("foo=\r\nbar=\nbaz"), false)
	assert.Equal(t, "foobarbaz", string(out))

	// invalid escapes pass through literally
	out = codec.QuotedPrintable([]byte("100=zz=5"), false)
	assert.Equal(t, "100=zz=5", string(out))

	// underscores become spaces only in header mode
	out = codec.QuotedPrintable([]byte("a_b"), false)
	assert.Equal(t, "a_b", string(out))
	out = codec.QuotedPrintable([]byte("a_b"), true)
	assert.Equal(t, "a b", string(out))
}
