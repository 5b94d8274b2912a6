package eml

import (
	"bytes"
	"errors"
	"html"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/zostay/go-eml/message"
	"github.com/zostay/go-eml/message/charset"
	"github.com/zostay/go-eml/message/header"
	"github.com/zostay/go-eml/message/header/field"
)

// Kind says whether a message was sent by the reader's own identity or
// received from elsewhere.
type Kind string

// The message kinds.
const (
	KindSent     Kind = "sent"
	KindReceived Kind = "received"
)

// Message is a fully parsed email message. It wraps the part tree built
// by message.Parse with classification of each leaf and convenient
// accessors for the common questions. A Message is immutable once
// built; it may be shared across goroutines.
type Message struct {
	root message.Generic
	tree *Part
}

// Part is one node of the classified part tree: the underlying parsed
// part plus its Role and, for leaves, the transfer-decoded content.
type Part struct {
	node     message.Part
	role     Role
	content  []byte
	children []*Part
}

// Parse reads a raw message into a Message. It never fails for
// malformed email content: decode problems degrade per component and
// the structural parse of in-memory bytes always succeeds. The header
// length cap of the underlying parser is lifted because the input is
// already fully in memory. Additional message.ParseOption values, such
// as message.WithMaxDepth for untrusted input, are passed through to
// the underlying parser and applied after these defaults.
func Parse(raw []byte, opts ...message.ParseOption) (*Message, error) {
	opts = append([]message.ParseOption{message.WithMaxHeaderLength(0)}, opts...)
	opts = append(opts, message.DecodeTransferEncoding())

	root, err := message.Parse(bytes.NewReader(raw), opts...)
	if err != nil {
		return nil, err
	}

	return &Message{
		root: root,
		tree: buildPart(root),
	}, nil
}

// buildPart mirrors the message tree into the classified view, reading
// each leaf's decoded content as it goes.
func buildPart(node message.Part) *Part {
	p := &Part{node: node}

	if node.IsMultipart() {
		subs := node.GetParts()
		p.children = make([]*Part, len(subs))
		for i, sub := range subs {
			p.children[i] = buildPart(sub)
		}
		return p
	}

	if r := node.GetReader(); r != nil {
		p.content, _ = io.ReadAll(r)
	}
	p.role = classify(node.GetHeader())
	return p
}

// Root returns the root of the classified part tree.
func (m *Message) Root() *Part {
	return m.tree
}

// Header returns the header of the underlying part.
func (p *Part) Header() *header.Header {
	return p.node.GetHeader()
}

// Role returns the classification of a leaf part, or RoleNone for a
// container.
func (p *Part) Role() Role {
	return p.role
}

// IsMultipart returns true when the part is a container with sub-parts.
func (p *Part) IsMultipart() bool {
	return p.node.IsMultipart()
}

// Children returns the sub-parts of a container in input order, or nil
// for a leaf.
func (p *Part) Children() []*Part {
	return p.children
}

// Content returns a leaf's transfer-decoded bytes. Containers have no
// content.
func (p *Part) Content() []byte {
	return p.content
}

// Text returns a leaf's content as text, decoded from the charset the
// part declares. Unknown or absent charsets fall back to UTF-8 with
// invalid bytes replaced, so this never fails.
func (p *Part) Text() string {
	cs, err := p.Header().GetCharset()
	if err != nil {
		cs = ""
	}
	return charset.Decode(cs, p.content)
}

// IsAttachment returns true for leaves classified as attachments.
func (p *Part) IsAttachment() bool {
	return p.role == RoleAttachment
}

// IsInlineImage returns true for leaves classified as inline images.
func (p *Part) IsInlineImage() bool {
	return p.role == RoleInlineImage
}

// FindByContentType returns the first part, depth-first in input order,
// whose media type matches. An empty subtype matches any subtype of the
// given type. It returns nil when nothing matches.
func (p *Part) FindByContentType(mediaType, subType string) *Part {
	mt := mediaTypeOf(p.Header())
	typ, sub, _ := strings.Cut(mt, "/")
	if strings.EqualFold(typ, mediaType) &&
		(subType == "" || strings.EqualFold(sub, subType)) {
		return p
	}

	for _, c := range p.children {
		if found := c.FindByContentType(mediaType, subType); found != nil {
			return found
		}
	}
	return nil
}

// leaves appends the leaf parts, depth-first in input order.
func (p *Part) leaves(out []*Part) []*Part {
	if !p.IsMultipart() {
		return append(out, p)
	}
	for _, c := range p.children {
		out = c.leaves(out)
	}
	return out
}

// HeaderRaw returns the raw bodies of all header fields with the given
// name in input order, or nil when the header is absent.
func (m *Message) HeaderRaw(name string) []string {
	bs, err := m.root.GetHeader().GetAll(name)
	if err != nil {
		return nil
	}
	return bs
}

// HeaderDecoded returns the body of the named header with RFC 2047
// encoded words resolved, and whether the header was present. When the
// name appears more than once the first value is returned. With
// removeLineBreaks set, any line break characters surviving the unfold
// are dropped from the result.
func (m *Message) HeaderDecoded(name string, removeLineBreaks bool) (string, bool) {
	b, err := m.root.GetHeader().GetDecoded(name)
	if err != nil && !errors.Is(err, header.ErrManyFields) {
		return "", false
	}

	if removeLineBreaks {
		b = strings.Map(func(r rune) rune {
			if r == '\r' || r == '\n' {
				return -1
			}
			return r
		}, b)
	}
	return b, true
}

// Subject returns the decoded Subject and whether one was present.
func (m *Message) Subject() (string, bool) {
	return m.HeaderDecoded(header.Subject, false)
}

// Date returns the parsed Date header. The boolean is false when the
// header is absent or does not parse as a date in any known format.
func (m *Message) Date() (time.Time, bool) {
	t, err := m.root.GetHeader().GetDate()
	return t, err == nil
}

// Kind reports whether the message was sent or received, relative to
// the given identities. When identities are given, the message is sent
// if any From address matches one of them case-insensitively, and
// received otherwise. With no identities the presence of a Received
// header marks the message received, as received mail passed through at
// least one relay that stamped it.
func (m *Message) Kind(identities ...string) Kind {
	if len(identities) > 0 {
		for _, a := range m.From() {
			for _, id := range identities {
				if strings.EqualFold(a.Email, id) {
					return KindSent
				}
			}
		}
		return KindReceived
	}

	if _, err := m.root.GetHeader().GetAll(header.Received); err == nil {
		return KindReceived
	}
	return KindSent
}

// findRole returns the first leaf with the given role, depth-first in
// input order, or nil.
func (m *Message) findRole(role Role) *Part {
	for _, leaf := range m.tree.leaves(nil) {
		if leaf.role == role {
			return leaf
		}
	}
	return nil
}

// BodyText returns the displayable plain text body of the message. When
// the message has no text body but does have an HTML one, the HTML is
// reduced to its text. Returns the empty string when the message has no
// displayable body at all.
func (m *Message) BodyText() string {
	if p := m.findRole(RoleBodyText); p != nil {
		return p.Text()
	}
	if p := m.findRole(RoleBodyHTML); p != nil {
		return htmlToText(p.Text())
	}
	return ""
}

// BodyHTML returns the HTML body of the message. When the message has
// no HTML body but does have a plain text one, the text is escaped and
// its line breaks become <br /> tags. Returns the empty string when the
// message has no displayable body at all.
func (m *Message) BodyHTML() string {
	if p := m.findRole(RoleBodyHTML); p != nil {
		return p.Text()
	}
	if p := m.findRole(RoleBodyText); p != nil {
		return textToHTML(p.Text())
	}
	return ""
}

// Attachments returns the files attached to the message, depth-first in
// input order, with decoded content.
func (m *Message) Attachments() []Attachment {
	var as []Attachment
	for _, leaf := range m.tree.leaves(nil) {
		if leaf.role != RoleAttachment {
			continue
		}
		as = append(as, Attachment{
			Filename:    declaredFilename(leaf.Header()),
			ContentType: mediaTypeOf(leaf.Header()),
			Content:     leaf.content,
			Filesize:    len(leaf.content),
		})
	}
	return as
}

// InlineImages returns the images referenced from the HTML body,
// depth-first in input order, with decoded content.
func (m *Message) InlineImages() []InlineImage {
	var is []InlineImage
	for _, leaf := range m.tree.leaves(nil) {
		if leaf.role != RoleInlineImage {
			continue
		}
		cid, _ := leaf.Header().GetContentID()
		is = append(is, InlineImage{
			Filename:    declaredFilename(leaf.Header()),
			ContentType: mediaTypeOf(leaf.Header()),
			ContentID:   cid,
			Content:     leaf.content,
			Filesize:    len(leaf.content),
		})
	}
	return is
}

// declaredFilename returns the part's declared file name with any
// encoded words resolved, or empty when none was declared.
func declaredFilename(h *header.Header) string {
	fn, err := h.GetFilename()
	if err != nil {
		return ""
	}
	return field.DecodeWords(fn)
}

// htmlToText reduces an HTML document to its text content: scripts and
// styles dropped, tags stripped, entities resolved.
func htmlToText(src string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return src
	}

	doc.Find("script,style").Remove()
	return strings.TrimSpace(doc.Text())
}

// textToHTML renders plain text as minimal HTML, escaping markup and
// turning line breaks into <br /> tags.
func textToHTML(text string) string {
	out := html.EscapeString(text)
	out = strings.ReplaceAll(out, "\r\n", "\n")
	out = strings.ReplaceAll(out, "\n", "<br />\n")
	return out
}
