// Package transfer contains utilities for decoding transfer encodings,
// which interpret the Content-transfer-encoding header to undo certain
// 8bit to 7bit encodings. If a Content-transfer-encoding is present,
// only the values of quoted-printable and base64 will actually result
// in changes to the bytes being decoded. Other settings such as binary,
// 7bit, or 8bit leave the bytes as-is, as does any unrecognized value.
//
// The decoders here trade strictness for coverage: real mail is full of
// slightly broken encodings and a decoder that errors out on them
// renders entire messages unreadable. Each decoder always produces some
// output.
package transfer
