package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-eml/message/charset"
)

func TestDecodeUTF8(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "héllo", charset.Decode("utf-8", []byte("héllo")))
	assert.Equal(t, "plain", charset.Decode("", []byte("plain")))
	assert.Equal(t, "plain", charset.Decode("US-ASCII", []byte("plain")))
}

func TestDecodeLatin1(t *testing.T) {
	t.Parallel()

	// 0xE9 is é in ISO-8859-1
	assert.Equal(t, "café", charset.Decode("ISO-8859-1", []byte("caf\xe9")))
}

func TestDecodeUnknownCharset(t *testing.T) {
	t.Parallel()

	got := charset.Decode("bogus-enc", []byte("still readable"))
	assert.Equal(t, "still readable", got)

	// invalid bytes degrade to replacement characters, never an error
	got = charset.Decode("bogus-enc", []byte("a\xffb"))
	assert.Equal(t, "a�b", got)
}

func TestSupported(t *testing.T) {
	t.Parallel()

	assert.True(t, charset.Supported("utf-8"))
	assert.True(t, charset.Supported("ISO-8859-1"))
	assert.True(t, charset.Supported(""))
	assert.False(t, charset.Supported("bogus-enc"))
}
