package message

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/zostay/go-eml/internal/boundary"
	"github.com/zostay/go-eml/message/header"
	"github.com/zostay/go-eml/message/header/field"
	"github.com/zostay/go-eml/message/transfer"
)

// Constants related to Parse() options.
const (
	// DefaultMaxMultipartDepth is the default depth the parser will
	// recurse into a message. Negative means unlimited.
	DefaultMaxMultipartDepth = -1

	// DefaultChunkSize is the default size of chunks to read from the
	// input while splitting the message into header and body.
	DefaultChunkSize = 16_384

	// DefaultMaxHeaderLength is the default maximum byte length to scan
	// before giving up on finding the end of the header.
	DefaultMaxHeaderLength = bufio.MaxScanTokenSize
)

// ErrLargeHeader is returned by Parse when the header is longer than the
// configured WithMaxHeaderLength option (or the default,
// DefaultMaxHeaderLength).
var ErrLargeHeader = errors.New("the header exceeds the maximum parse length")

// The header/body split sequences checked for, in order of preference.
var splits = [][]byte{
	[]byte("\x0d\x0a\x0d\x0a"), // \r\n\r\n
	[]byte("\x0a\x0d\x0a\x0d"), // \n\r\n\r, extremely unlikely, possibly never
	[]byte("\x0a\x0a"),         // \n\n
	[]byte("\x0d\x0d"),         // \r\r
}

type parser struct {
	maxHeaderLen int
	maxDepth     int
	chunkSize    int
	decode       bool
}

func (pr *parser) clone() *parser {
	p := *pr
	return &p
}

var defaultParser = &parser{
	maxHeaderLen: DefaultMaxHeaderLength,
	maxDepth:     DefaultMaxMultipartDepth,
	chunkSize:    DefaultChunkSize,
	decode:       false,
}

// ParseOption refers to options that may be passed to the Parse function
// to modify how the parser works.
type ParseOption func(pr *parser)

// WithMaxHeaderLength is a ParseOption that sets the maximum size the
// buffer is allowed to reach before parsing exits with an ErrLargeHeader
// error. During parsing, the io.Reader will be read from a chunk at a
// time until the end of the header is found. This setting prevents bad
// input from resulting in an out of memory error. Setting this to a
// value less than or equal to 0 will result in there being no maximum
// length. The default value is DefaultMaxHeaderLength.
func WithMaxHeaderLength(n int) ParseOption {
	return func(pr *parser) { pr.maxHeaderLen = n }
}

// DecodeTransferEncoding is a ParseOption that enables the decoding of
// Content-transfer-encoding. By default, Content-transfer-encoding will
// not be decoded and the part readers return the body bytes as found in
// the input. If you want to display or process the message body, you
// will want to enable this.
func DecodeTransferEncoding() ParseOption {
	return func(pr *parser) { pr.decode = true }
}

// WithChunkSize is a ParseOption that controls how many bytes to read at
// a time while parsing an email message. The default chunk size is
// DefaultChunkSize.
func WithChunkSize(chunkSize int) ParseOption {
	return func(pr *parser) { pr.chunkSize = chunkSize }
}

// WithMaxDepth is a ParseOption that controls how deep the parser will
// go in recursively parsing a multipart message. A negative value
// removes the limit, which is the default.
func WithMaxDepth(maxDepth int) ParseOption {
	return func(pr *parser) { pr.maxDepth = maxDepth }
}

// WithoutMultipart is a ParseOption that will not allow parsing of any
// multipart messages. The message returned from Parse() will always be
// *Opaque.
//
// You should use this option if all you are interested in is the
// top-level headers. For large email messages, use of this option can
// grant extreme improvements to memory performance, because only the
// header is read and parsed and only a single chunk of the body will
// have been read. The rest of the input io.Reader is left unread.
func WithoutMultipart() ParseOption {
	return func(pr *parser) { pr.maxDepth = 0 }
}

// WithoutRecursion is a ParseOption that will only allow a single level
// of multipart parsing.
func WithoutRecursion() ParseOption {
	return func(pr *parser) { pr.maxDepth = 1 }
}

// searchForSplit looks for a header/body split. Returns -1, nil if none
// is found. If the header/body split is found, it returns the location
// of the split (including the split newlines) and the line break to use
// with the header as a slice of bytes.
func searchForSplit(buf []byte, subpart bool) (pos int, crlf []byte) {
	if subpart {
		// if the header is empty, the first char might be a line break,
		// indicating an empty header. It happens.
		for _, s := range splits {
			if testPos := bytes.Index(buf, s[0:len(s)/2]); testPos == 0 {
				pos = testPos + len(s)/2
				crlf = s[0 : len(s)/2]
				return
			}
		}
	}

	pos = -1
	for _, s := range splits {
		if testPos := bytes.Index(buf, s); testPos > -1 {
			pos = testPos + len(s)
			crlf = s[0 : len(s)/2]
			return
		}
	}
	return
}

// splitHeadFromBody will pull the header off the front of the given
// input. It detects the index of the split between the message header
// and the message body as well as the line break the email is using and
// returns both, along with a reader for the unread body.
func (pr *parser) splitHeadFromBody(r io.Reader, subpart bool) ([]byte, []byte, io.Reader, error) {
	p := make([]byte, pr.chunkSize)
	buf := &bytes.Buffer{}
	searched := 0
	for {
		n, err := r.Read(p)

		if pr.maxHeaderLen > 0 && n+buf.Len() > pr.maxHeaderLen {
			return nil, nil, nil, ErrLargeHeader
		}

		isEof := false
		if errors.Is(err, io.EOF) {
			isEof = true
		} else if err != nil {
			return nil, nil, nil, err
		}

		buf.Write(p[:n])

		// check the tail of the buffer for end of header
		pos, crlf := searchForSplit(buf.Bytes()[searched:], subpart)
		if pos >= 0 {
			pos += searched

			all := buf.Bytes()
			hdr := all[:pos]

			// the rest of the buffer plus the unread input is the body
			var body io.Reader = bytes.NewReader(all[pos:])
			if !isEof {
				body = io.MultiReader(body, r)
			}
			return hdr, crlf, body, nil
		}

		// No split found and EOF? Break out and process as if the entire
		// message is just header.
		if isEof {
			break
		}

		// The last 3 bytes might be the prefix to the split point
		searched = buf.Len() - 3
		if searched < 0 {
			searched = 0
		}
	}

	// If we're here, we were unable to find a header/body split. We will
	// just assume the message is all header, no body. Let's see if we can
	// find what to use as a break.
	for _, s := range splits {
		crlf := s[0 : len(s)/2]
		if bytes.Contains(buf.Bytes(), crlf) {
			return buf.Bytes(), crlf, nil, nil
		}
	}

	// Or the ultimate fallback is...
	return buf.Bytes(), []byte("\x0d"), nil, nil
}

// parseToOpaque turns a reader into an Opaque.
func (pr *parser) parseToOpaque(r io.Reader, subpart bool) (*Opaque, error) {
	hdr, crlf, body, err := pr.splitHeadFromBody(r, subpart)
	if err != nil {
		return nil, err
	}

	head, err := header.Parse(hdr, header.Break(crlf))
	if err != nil {
		var badStart *field.BadStartError
		if !errors.As(err, &badStart) {
			return nil, err
		}
		// junk before the first field was skipped, keep going
	}

	if pr.decode && body != nil {
		body = transfer.ApplyTransferDecoding(head, body)
	}

	return &Opaque{*head, body}, nil
}

// Parse will consume input from the given reader and return a Generic
// message containing the parsed content. Parse proceeds in two phases.
//
// During the first phase, the given io.Reader will be read in chunks at
// a time, as defined by the WithChunkSize() option (or by the default,
// DefaultChunkSize). Each chunk will be checked for a double line break
// of some kind (e.g., "\r\n\r\n" or "\n\n" are the most common). Once
// found, that line break is used to determine what line break the
// message will use for breaking up the header into fields. The fields
// will be parsed from the accumulated header chunks using the bytes
// read in so far preceding the header break. An input with no
// header/body split at all is treated as all header with an empty body.
//
// If accumulated header chunks total larger than the
// WithMaxHeaderLength() option (or the default, DefaultMaxHeaderLength)
// while searching for the double line break, the Parse will fail and
// return ErrLargeHeader. If this happens, the io.Reader may be in a
// partial read state.
//
// During the second phase, the *Opaque message created during the first
// phase may be transformed into a *Multipart. This happens when the
// Content-type of the message is a multipart/* MIME type with a
// boundary parameter and the WithMaxDepth() related options permit
// recursion at this depth. The body is then broken into parts on the
// boundary lines and each part goes through the two phase parsing
// process itself. The bytes before the first boundary and after the
// final one are discarded. A missing final boundary is tolerated. A
// multipart/* message whose Content-type has no boundary parameter
// cannot be split and stays an *Opaque leaf.
//
// If the DecodeTransferEncoding() option is passed, the parts of the
// message that do not have sub-parts and have a
// Content-transfer-encoding header set will have their content decoded
// as it is read. This is not the default behavior because the decoding
// is lossy: the original encoded bytes cannot be recovered from the
// decoded output.
//
// Errors during sub-part parsing return the partially parsed message
// object whenever possible.
func Parse(r io.Reader, opts ...ParseOption) (Generic, error) {
	pr := defaultParser.clone()
	for _, opt := range opts {
		opt(pr)
	}

	msg, err := pr.parseToOpaque(r, false)
	if err != nil {
		return msg, err
	}

	return pr.parse(msg, 0)
}

// parse implements the second phase of Parse, recursively.
func (pr *parser) parse(msg *Opaque, depth int) (Generic, error) {
	// we're too deep: stop here and just return the leaf
	if pr.maxDepth >= 0 && depth >= pr.maxDepth {
		return msg, nil
	}

	pv, err := msg.GetContentType()
	if err != nil {
		return msg, nil
	}

	// only multipart/* containers are split into parts; a message/rfc822
	// body is content like any other
	if pv.Type() != "multipart" {
		return msg, nil
	}

	// without a boundary the body cannot be split, degrade to a leaf
	bd := pv.Boundary()
	if bd == "" {
		return msg, nil
	}

	if msg.Reader == nil {
		return msg, nil
	}

	body, err := io.ReadAll(msg.Reader)
	if err != nil {
		return msg, err
	}

	// restores the unsplit body so the caller still gets a usable leaf
	// when splitting or sub-part parsing goes sideways
	asLeaf := func() *Opaque {
		msg.Reader = bytes.NewReader(body)
		return msg
	}

	rawParts, _ := boundary.Split(body, bd)
	if len(rawParts) == 0 {
		// no boundary lines in the body at all
		return asLeaf(), nil
	}

	msgParts := make([]Generic, 0, len(rawParts))
	for _, rawPart := range rawParts {
		opMsg, err := pr.parseToOpaque(bytes.NewReader(rawPart), true)
		if err != nil {
			return asLeaf(), err
		}

		part, err := pr.parse(opMsg, depth+1)
		if err != nil {
			return asLeaf(), err
		}

		msgParts = append(msgParts, part)
	}

	return &Multipart{
		Header: msg.Header,
		parts:  msgParts,
	}, nil
}
