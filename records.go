package eml

// Attachment is a file carried by a message: a view over a classified
// leaf part with its content fully transfer-decoded.
type Attachment struct {
	// Filename is the name declared for the file, or empty when the
	// part declared none.
	Filename string

	// ContentType is the part's media type, e.g. "application/pdf".
	ContentType string

	// Content holds the decoded file bytes.
	Content []byte

	// Filesize is the decoded size in bytes.
	Filesize int
}

// InlineImage is an image referenced from the HTML body by Content-ID:
// a view over a classified leaf part with its content fully
// transfer-decoded.
type InlineImage struct {
	// Filename is the name declared for the image, or empty when the
	// part declared none.
	Filename string

	// ContentType is the image's media type, e.g. "image/png".
	ContentType string

	// ContentID is the cid the HTML body refers to the image by, with
	// the surrounding angle brackets stripped.
	ContentID string

	// Content holds the decoded image bytes.
	Content []byte

	// Filesize is the decoded size in bytes.
	Filesize int
}
