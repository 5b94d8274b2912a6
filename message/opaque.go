package message

import (
	"io"

	"github.com/zostay/go-eml/message/header"
)

// Opaque is the base-level email message: a header and a body of plain
// bytes, very similar to the net/mail message implementation. An Opaque
// either is a whole simple message or is a leaf part of a Multipart.
type Opaque struct {
	// Header contains the header of the message.
	header.Header

	// Reader contains the body content of the message. If the content is
	// zero bytes long, Reader is nil.
	io.Reader
}

// IsMultipart always returns false.
func (m *Opaque) IsMultipart() bool {
	return false
}

// GetHeader returns the header for the message.
func (m *Opaque) GetHeader() *header.Header {
	return &m.Header
}

// GetReader returns the reader containing the body of the message. Any
// Content-transfer-encoding will already have been decoded if the
// message was parsed with the DecodeTransferEncoding() option.
func (m *Opaque) GetReader() io.Reader {
	return m.Reader
}

// GetParts always returns nil.
func (m *Opaque) GetParts() []Part {
	return nil
}
