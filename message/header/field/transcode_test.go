package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-eml/message/header/field"
)

func TestDecodeWordsB(t *testing.T) {
	t.Parallel()

	got := field.DecodeWords("=?utf-8?B?SGVsbG8sIFdvcmxk?=")
	assert.Equal(t, "Hello, World", got)
}

func TestDecodeWordsQ(t *testing.T) {
	t.Parallel()

	got := field.DecodeWords("=?iso-8859-1?Q?Caf=E9_au_lait?=")
	assert.Equal(t, "Café au lait", got)
}

func TestDecodeWordsAdjacent(t *testing.T) {
	t.Parallel()

	// folding whitespace between two encoded words is dropped
	got := field.DecodeWords("=?utf-8?B?SGVsbG8s?= =?utf-8?B?IFdvcmxk?=")
	assert.Equal(t, "Hello, World", got)

	got = field.DecodeWords("=?utf-8?Q?one?=\r\n =?utf-8?Q?two?=")
	assert.Equal(t, "onetwo", got)
}

func TestDecodeWordsMixedRuns(t *testing.T) {
	t.Parallel()

	// whitespace between plain text and an encoded word survives
	got := field.DecodeWords("Re: =?utf-8?Q?hello?= world")
	assert.Equal(t, "Re: hello world", got)
}

func TestDecodeWordsSloppyB(t *testing.T) {
	t.Parallel()

	// stray characters inside a B payload are skipped, not fatal
	got := field.DecodeWords("=?utf-8?B?SGVsbG8s!IFdvcmxk?=")
	assert.Equal(t, "Hello, World", got)
}

func TestDecodeWordsBadPayload(t *testing.T) {
	t.Parallel()

	// a B payload with nothing decodable in it keeps the raw token
	raw := "=?utf-8?B?....?="
	assert.Equal(t, raw, field.DecodeWords(raw))

	// broken Q escape keeps the raw token
	raw = "=?utf-8?Q?bad=ZZescape?="
	assert.Equal(t, raw, field.DecodeWords(raw))
}

func TestDecodeWordsUnknownCharset(t *testing.T) {
	t.Parallel()

	// unknown charsets decode byte-preservingly instead of failing
	got := field.DecodeWords("=?x-weird-charset?Q?plain_text?=")
	assert.Equal(t, "plain text", got)
}

func TestDecodeWordsPlain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nothing encoded", field.DecodeWords("nothing encoded"))
}
