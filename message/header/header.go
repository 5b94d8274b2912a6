package header

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-eml/message/header/field"
	"github.com/zostay/go-eml/message/header/param"
)

// Errors returned by the Header getters.
var (
	// ErrNoSuchField is returned when the named header field does not
	// exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrNoSuchFieldParameter is returned when the header field exists,
	// but the requested parameter is not set on it.
	ErrNoSuchFieldParameter = errors.New("no such header field parameter")

	// ErrManyFields is returned together with the first value when
	// multiple fields share the requested name.
	ErrManyFields = errors.New("many header fields found")
)

// Standard field names defined by RFC 5322 and MIME.
const (
	Bcc                     = "Bcc"
	Cc                      = "Cc"
	ContentDisposition      = "Content-disposition"
	ContentID               = "Content-id"
	ContentTransferEncoding = "Content-transfer-encoding"
	ContentType             = "Content-type"
	Date                    = "Date"
	From                    = "From"
	Received                = "Received"
	ReplyTo                 = "Reply-to"
	Sender                  = "Sender"
	Subject                 = "Subject"
	To                      = "To"
)

// UnixDateWithEarlyYear is one more date format seen in the wild that the
// usual parsers have trouble with.
const UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"

// Header is a parsed message header: an ordered list of fields keeping
// input order and duplicates. All lookups are case-insensitive. The
// semantic getters cache their parsed values, so a Header must not be
// shared across goroutines while in use.
type Header struct {
	lbr    Break
	fields []*field.Field

	// valueCache holds parsed semantic values (times, address lists,
	// param values) keyed by lower-cased field name. Only immutable
	// values may be stored here.
	valueCache map[string]any
}

// Break returns the line break detected for this header.
func (h *Header) Break() Break {
	return h.lbr
}

// Len returns the number of fields.
func (h *Header) Len() int {
	return len(h.fields)
}

// Fields returns the header fields in input order. The returned slice is
// a copy; the fields themselves are shared.
func (h *Header) Fields() []*field.Field {
	fs := make([]*field.Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}

func (h *Header) fieldsNamed(name string) []*field.Field {
	var fs []*field.Field
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			fs = append(fs, f)
		}
	}
	return fs
}

func (h *Header) getValue(name string) (any, bool) {
	v, found := h.valueCache[strings.ToLower(name)]
	return v, found
}

func (h *Header) setValue(name string, value any) {
	if h.valueCache == nil {
		h.valueCache = make(map[string]any, h.Len())
	}
	h.valueCache[strings.ToLower(name)] = value
}

// Get retrieves the raw body of the named field.
//
// If the field is not set, it returns an empty string with
// ErrNoSuchField. If there are multiple fields with the name, it returns
// the first body together with ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	fs := h.fieldsNamed(name)
	if len(fs) == 0 {
		return "", ErrNoSuchField
	}

	b := fs[0].Body()
	if len(fs) > 1 {
		return b, ErrManyFields
	}
	return b, nil
}

// GetAll retrieves the raw bodies of all fields with the given name in
// input order. It returns nil with ErrNoSuchField when there are none.
func (h *Header) GetAll(name string) ([]string, error) {
	fs := h.fieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	bs := make([]string, len(fs))
	for i, f := range fs {
		bs[i] = f.Body()
	}
	return bs, nil
}

// GetDecoded retrieves the body of the named field with RFC 2047 encoded
// words resolved. Error behavior matches Get.
func (h *Header) GetDecoded(name string) (string, error) {
	b, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return "", err
	}
	return field.DecodeWords(b), err
}

// ParseTime parses a date field body. It tries the RFC 5322 format
// first, then a wide net of other formats.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// GetTime parses the named field as a date. It returns the zero value
// with ErrNoSuchField when the field is absent and an error when the
// body cannot be parsed as a time in any known format.
func (h *Header) GetTime(name string) (time.Time, error) {
	if v, found := h.getValue(name); found {
		if t, isTime := v.(time.Time); isTime {
			return t, nil
		}
	}

	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return time.Time{}, err
	}

	t, err := ParseTime(body)
	if err != nil {
		return t, err
	}

	h.setValue(name, t)
	return t, nil
}

// GetDate retrieves the Date field as a time.Time.
func (h *Header) GetDate() (time.Time, error) {
	return h.GetTime(Date)
}

// GetSubject returns the raw value of the Subject field.
func (h *Header) GetSubject() (string, error) {
	return h.Get(Subject)
}

// GetAddressList returns the mailboxes named by the given address field,
// with any groups flattened into their member mailboxes. Parsing is as
// forgiving as possible and never fails: a strict RFC 5322 parse is
// attempted first and a lenient parse mops up anything the strict parser
// rejects.
//
// It returns nil with ErrNoSuchField when the field is absent. A present
// field with no parseable mailboxes yields an empty, non-nil list.
func (h *Header) GetAddressList(name string) ([]*addr.Mailbox, error) {
	if v, found := h.getValue(name); found {
		if mbs, isMbs := v.([]*addr.Mailbox); isMbs {
			return mbs, nil
		}
	}

	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return nil, err
	}

	mbs := ParseAddressList(body)
	h.setValue(name, mbs)
	return mbs, nil
}

// GetParamValue returns the parameterized value of the named field.
// Parsing is lenient and cannot fail; the only error is ErrNoSuchField
// (or ErrManyFields alongside the first value).
func (h *Header) GetParamValue(name string) (*param.Value, error) {
	if v, found := h.getValue(name); found {
		if pv, isPV := v.(*param.Value); isPV {
			return pv, nil
		}
	}

	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return nil, err
	}

	pv := param.Parse(body)
	h.setValue(name, pv)
	return pv, err
}

// GetContentType returns the Content-type field as a param.Value. A
// value that does not parse as type/subtype degrades to text/plain with
// no parameters. Absence of the field is still ErrNoSuchField; the
// caller decides what its default content type is.
func (h *Header) GetContentType() (*param.Value, error) {
	pv, err := h.GetParamValue(ContentType)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return nil, err
	}

	if !pv.IsMediaType() {
		pv = param.New("text/plain")
		h.setValue(ContentType, pv)
	}
	return pv, nil
}

// GetMediaType returns the type/subtype of the Content-type field.
func (h *Header) GetMediaType() (string, error) {
	pv, err := h.GetContentType()
	if err != nil {
		return "", err
	}
	return pv.Value(), nil
}

// GetCharset returns the charset parameter of the Content-type field.
func (h *Header) GetCharset() (string, error) {
	return h.getParam(h.GetContentType, param.Charset)
}

// GetBoundary returns the boundary parameter of the Content-type field.
func (h *Header) GetBoundary() (string, error) {
	return h.getParam(h.GetContentType, param.Boundary)
}

// GetContentDisposition returns the Content-disposition field as a
// param.Value.
func (h *Header) GetContentDisposition() (*param.Value, error) {
	return h.GetParamValue(ContentDisposition)
}

// GetPresentation returns the primary value of the Content-disposition
// field, e.g. "inline" or "attachment".
func (h *Header) GetPresentation() (string, error) {
	pv, err := h.GetContentDisposition()
	if err != nil && !errors.Is(err, ErrManyFields) {
		return "", err
	}
	return pv.Value(), nil
}

// GetFilename returns the file name declared for this part: the filename
// parameter of Content-disposition if set, else the name parameter of
// Content-type. It returns ErrNoSuchFieldParameter when neither names a
// file.
func (h *Header) GetFilename() (string, error) {
	if fn, err := h.getParam(h.GetContentDisposition, param.Filename); err == nil {
		return fn, nil
	}

	if fn, err := h.getParam(h.GetContentType, param.Name); err == nil {
		return fn, nil
	}

	return "", ErrNoSuchFieldParameter
}

// GetContentID returns the Content-id field body with any surrounding
// angle brackets removed.
func (h *Header) GetContentID() (string, error) {
	b, err := h.Get(ContentID)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return "", err
	}

	b = strings.TrimSpace(b)
	if strings.HasPrefix(b, "<") && strings.HasSuffix(b, ">") {
		b = strings.TrimSpace(b[1 : len(b)-1])
	}
	return b, err
}

// GetTransferEncoding returns the canonical (lower-cased, trimmed)
// Content-transfer-encoding. The field being absent is ErrNoSuchField;
// callers treat that as 7bit.
func (h *Header) GetTransferEncoding() (string, error) {
	b, err := h.Get(ContentTransferEncoding)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(b)), err
}

func (h *Header) getParam(get func() (*param.Value, error), name string) (string, error) {
	pv, err := get()
	if err != nil && !errors.Is(err, ErrManyFields) {
		return "", err
	}

	if v := pv.Parameter(name); v != "" {
		return v, nil
	}
	return "", ErrNoSuchFieldParameter
}
