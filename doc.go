// Package eml reads raw RFC 5322 / MIME email byte streams into a
// structured, queryable form: headers, decoded text and HTML bodies,
// attachments, and inline images.
//
// The top-level entry point is Parse(), which structurally parses any
// byte input into a Message. Parsing is deliberately forgiving: decode
// problems in headers, transfer encodings, charsets, or address lists
// never fail the parse, they degrade to best-effort or raw values. The
// Message accessors then answer the questions mail handling code
// usually asks. Subject() and Date() read the common headers, From()
// and friends parse address lists, BodyText() and BodyHTML() locate and
// decode the displayable bodies, and Attachments() and InlineImages()
// collect the files carried by the message.
// BodyHTMLWithInlineImages() additionally resolves "cid:" image
// references in the HTML body, either to data URLs or to files written
// on disk.
//
// Underneath the facade, the message/ packages do the heavy lifting and
// may be used directly when finer control is wanted. message.Parse()
// builds the part tree, a message.Opaque is a leaf with content and a
// message.Multipart is a container of sub-parts, and the sub-packages
// handle headers, media type parameters, transfer encodings, and
// charsets. Message.Root() exposes the classified view of that tree for
// callers that need to walk it themselves.
package eml
