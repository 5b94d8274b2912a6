package message

import (
	"io"

	"github.com/zostay/go-eml/message/header"
)

// Part is an interface defining the parts of a parsed message. Each
// Part is either a branch or a leaf.
//
// A branch Part is one that has sub-parts. In this case, the
// IsMultipart() method will return true, GetParts() returns the
// sub-parts, and GetReader() returns nil.
//
// A leaf Part is one that contains content. In this case, the
// IsMultipart() method will return false, GetReader() returns a reader
// for the content, and GetParts() returns nil.
//
// It should be noted that it is possible for a Part to contain content
// that is a multipart MIME message when IsMultipart() returns false,
// such as when the maximum parse depth cut recursion short or the
// boundary parameter was missing. This is perfectly legal.
type Part interface {
	// IsMultipart will return true if this Part is a branch with nested
	// parts. You may call the GetParts() method to process the parts
	// only if this returns true. If it returns false, this Part is a
	// leaf and GetReader() returns its content.
	IsMultipart() bool

	// GetHeader is available on all Part objects.
	GetHeader() *header.Header

	// GetReader provides the content of the message, but only if
	// IsMultipart() returns false. This returns nil for a branch.
	GetReader() io.Reader

	// GetParts provides the sub-parts of a branch. This returns nil for
	// a leaf.
	GetParts() []Part
}

// Generic is just an alias for Part, which is intended to convey
// additional semantics:
//
// 1. The message returned is not necessarily a sub-part of a message.
//
// 2. The returned message is guaranteed to either be a *Opaque or a
// *Multipart. Therefore, it is safe to use this in a type-switch and
// only look for either of those two objects.
type Generic = Part

// Multipart is a multipart MIME message. The Content-type of a
// Multipart always has a media type starting with multipart/ and a
// boundary parameter. The bytes before the first boundary and after the
// final one carry no content and are discarded during parsing.
type Multipart struct {
	// Header is the header for the message.
	header.Header

	// parts holds this layer's parts.
	parts []Part
}

// IsMultipart always returns true.
func (mm *Multipart) IsMultipart() bool {
	return true
}

// GetHeader returns the header for the message.
func (mm *Multipart) GetHeader() *header.Header {
	return &mm.Header
}

// GetReader always returns nil.
func (mm *Multipart) GetReader() io.Reader {
	return nil
}

// GetParts returns the sub-parts of this message in input order.
func (mm *Multipart) GetParts() []Part {
	return mm.parts
}
