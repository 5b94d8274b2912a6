package header_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-eml/message/header"
)

const basicHeader = "From: Jane Doe <jane@example.com>\x0d\x0a" +
	"To: bob@example.com\x0d\x0a" +
	"Subject: A basic message\x0d\x0a" +
	"Date: Mon, 5 Dec 2022 16:46:38 -0500\x0d\x0a" +
	"Received: from one\x0d\x0a" +
	"Received: from two\x0d\x0a"

func TestHeader_Get(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte(basicHeader), header.CRLF)
	require.NoError(t, err)

	assert.Equal(t, 6, h.Len())
	assert.Equal(t, header.CRLF, h.Break())

	s, err := h.Get("subject")
	assert.NoError(t, err)
	assert.Equal(t, "A basic message", s)

	s, err = h.Get("Received")
	assert.ErrorIs(t, err, header.ErrManyFields)
	assert.Equal(t, "from one", s)

	_, err = h.Get("X-Missing")
	assert.ErrorIs(t, err, header.ErrNoSuchField)
}

func TestHeader_GetAll(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte(basicHeader), header.CRLF)
	require.NoError(t, err)

	rs, err := h.GetAll("received")
	assert.NoError(t, err)
	assert.Equal(t, []string{"from one", "from two"}, rs)

	_, err = h.GetAll("X-Missing")
	assert.ErrorIs(t, err, header.ErrNoSuchField)
}

func TestHeader_GetDecoded(t *testing.T) {
	t.Parallel()

	const headerStr = "Subject: =?utf-8?B?SGVsbG8s?= =?utf-8?B?IFdvcmxk?=\x0d\x0a"

	h, err := header.Parse([]byte(headerStr), header.CRLF)
	require.NoError(t, err)

	// raw body keeps the encoded words
	s, err := h.Get("Subject")
	assert.NoError(t, err)
	assert.Equal(t, "=?utf-8?B?SGVsbG8s?= =?utf-8?B?IFdvcmxk?=", s)

	s, err = h.GetDecoded("Subject")
	assert.NoError(t, err)
	assert.Equal(t, "Hello, World", s)
}

func TestHeader_GetTime(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte(basicHeader), header.CRLF)
	require.NoError(t, err)

	d, err := h.GetDate()
	assert.NoError(t, err)

	loc := time.FixedZone("EST", -5*3600)
	assert.Equal(t, time.Date(2022, time.December, 5, 16, 46, 38, 0, loc).Unix(), d.Unix())

	// second call hits the value cache
	d2, err := h.GetDate()
	assert.NoError(t, err)
	assert.True(t, d.Equal(d2))
}

func TestHeader_GetTimeOddFormats(t *testing.T) {
	t.Parallel()

	dates := []string{
		"2022-12-05 16:46:38",
		"Mon Dec 05 16:46:38 2022 UTC",
	}

	for _, date := range dates {
		h, err := header.Parse([]byte("Date: "+date+"\x0a"), header.LF)
		require.NoError(t, err)

		d, err := h.GetDate()
		assert.NoError(t, err, date)
		assert.Equal(t, 2022, d.Year(), date)
	}
}

func TestHeader_GetContentType(t *testing.T) {
	t.Parallel()

	const headerStr = "Content-Type: text/html; charset=ISO-8859-1\x0d\x0a"

	h, err := header.Parse([]byte(headerStr), header.CRLF)
	require.NoError(t, err)

	ct, err := h.GetContentType()
	assert.NoError(t, err)
	assert.Equal(t, "text/html", ct.Value())
	assert.Equal(t, "text", ct.Type())
	assert.Equal(t, "html", ct.Subtype())

	mt, err := h.GetMediaType()
	assert.NoError(t, err)
	assert.Equal(t, "text/html", mt)

	cs, err := h.GetCharset()
	assert.NoError(t, err)
	assert.Equal(t, "ISO-8859-1", cs)

	_, err = h.GetBoundary()
	assert.ErrorIs(t, err, header.ErrNoSuchFieldParameter)
}

func TestHeader_GetContentTypeMalformed(t *testing.T) {
	t.Parallel()

	const headerStr = "Content-Type: x-text:foo; charset=UTF-8\x0d\x0a"

	h, err := header.Parse([]byte(headerStr), header.CRLF)
	require.NoError(t, err)

	// a body that is not type/subtype degrades to text/plain
	ct, err := h.GetContentType()
	assert.NoError(t, err)
	assert.Equal(t, "text/plain", ct.Value())
}

func TestHeader_GetContentTypeMissing(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte(basicHeader), header.CRLF)
	require.NoError(t, err)

	_, err = h.GetContentType()
	assert.ErrorIs(t, err, header.ErrNoSuchField)
}

func TestHeader_GetFilename(t *testing.T) {
	t.Parallel()

	const cdHeader = "Content-Disposition: attachment; filename=\"report.pdf\"\x0d\x0a" +
		"Content-Type: application/pdf; name=other.pdf\x0d\x0a"

	h, err := header.Parse([]byte(cdHeader), header.CRLF)
	require.NoError(t, err)

	p, err := h.GetPresentation()
	assert.NoError(t, err)
	assert.Equal(t, "attachment", p)

	// Content-disposition filename wins over Content-type name
	fn, err := h.GetFilename()
	assert.NoError(t, err)
	assert.Equal(t, "report.pdf", fn)

	const ctHeader = "Content-Type: application/pdf; name=other.pdf\x0d\x0a"

	h, err = header.Parse([]byte(ctHeader), header.CRLF)
	require.NoError(t, err)

	fn, err = h.GetFilename()
	assert.NoError(t, err)
	assert.Equal(t, "other.pdf", fn)

	h, err = header.Parse([]byte(basicHeader), header.CRLF)
	require.NoError(t, err)

	_, err = h.GetFilename()
	assert.ErrorIs(t, err, header.ErrNoSuchFieldParameter)
}

func TestHeader_GetContentID(t *testing.T) {
	t.Parallel()

	const headerStr = "Content-ID: <image001@example.com>\x0d\x0a"

	h, err := header.Parse([]byte(headerStr), header.CRLF)
	require.NoError(t, err)

	cid, err := h.GetContentID()
	assert.NoError(t, err)
	assert.Equal(t, "image001@example.com", cid)
}

func TestHeader_GetTransferEncoding(t *testing.T) {
	t.Parallel()

	const headerStr = "Content-Transfer-Encoding: Base64 \x0d\x0a"

	h, err := header.Parse([]byte(headerStr), header.CRLF)
	require.NoError(t, err)

	cte, err := h.GetTransferEncoding()
	assert.NoError(t, err)
	assert.Equal(t, "base64", cte)

	_, err = h.GetTransferEncoding()
	assert.NoError(t, err)
}

func TestHeader_GetAddressList(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte(basicHeader), header.CRLF)
	require.NoError(t, err)

	mbs, err := h.GetAddressList("From")
	assert.NoError(t, err)
	require.Len(t, mbs, 1)
	assert.Equal(t, "jane@example.com", mbs[0].Address())
	assert.Equal(t, "Jane Doe", mbs[0].DisplayName())

	// the cached value is returned on the second call
	mbs2, err := h.GetAddressList("From")
	assert.NoError(t, err)
	assert.Equal(t, mbs, mbs2)

	_, err = h.GetAddressList("X-Missing")
	assert.ErrorIs(t, err, header.ErrNoSuchField)
}
