package eml

import (
	"strings"

	"github.com/zostay/go-eml/message/header"
)

// Role labels what a leaf part is for. Containers carry RoleNone;
// classification only happens once parsing bottoms out at a leaf.
type Role int

const (
	// RoleNone is the role of multipart containers, which are never
	// classified.
	RoleNone Role = iota

	// RoleBodyText marks the plain text body of the message.
	RoleBodyText

	// RoleBodyHTML marks the HTML body of the message.
	RoleBodyHTML

	// RoleAttachment marks an attached file.
	RoleAttachment

	// RoleInlineImage marks an image referenced from the HTML body via
	// its Content-ID.
	RoleInlineImage
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleBodyText:
		return "body-text"
	case RoleBodyHTML:
		return "body-html"
	case RoleAttachment:
		return "attachment"
	case RoleInlineImage:
		return "inline-image"
	}
	return "none"
}

// classify determines the Role of a leaf part from its header. The rules
// are ordered and the first match wins:
//
//  1. Content-disposition attachment is an attachment, always.
//  2. With an inline or absent disposition and a Content-ID, an image/*
//     part is an inline image and anything else is an attachment.
//  3. With an inline or absent disposition, no Content-ID, and no
//     declared filename, text/plain is the text body and text/html the
//     HTML body.
//  4. Everything else, filename or not, is an attachment. That is the
//     conservative default: an unclaimed part is still reachable as a
//     file rather than silently dropped.
func classify(h *header.Header) Role {
	disp, _ := h.GetPresentation()
	disp = strings.ToLower(strings.TrimSpace(disp))

	if disp == "attachment" {
		return RoleAttachment
	}

	if disp != "" && disp != "inline" {
		return RoleAttachment
	}

	mt := mediaTypeOf(h)

	if cid, err := h.GetContentID(); err == nil && cid != "" {
		if strings.HasPrefix(mt, "image/") {
			return RoleInlineImage
		}
		return RoleAttachment
	}

	if _, err := h.GetFilename(); err != nil {
		switch mt {
		case "text/plain":
			return RoleBodyText
		case "text/html":
			return RoleBodyHTML
		}
	}

	return RoleAttachment
}

// mediaTypeOf returns the part's media type, applying the text/plain
// default for leaves that declare none.
func mediaTypeOf(h *header.Header) string {
	mt, err := h.GetMediaType()
	if err != nil {
		return "text/plain"
	}
	return strings.ToLower(mt)
}
