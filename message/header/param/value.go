// Package param parses the parameterized header values used by
// Content-type and Content-disposition, following the grammar
//
//	value *(";" token "=" (token / quoted-string))
//
// Parsing is layered: the strict parser from mime.ParseMediaType runs
// first and a permissive scanner picks up whatever the strict parser
// rejects. Parse never fails; callers that need a type/subtype shape
// check IsMediaType and substitute their own default.
package param

import (
	"mime"
	"sort"
	"strings"
)

// Parameter names with dedicated accessors.
const (
	Boundary = "boundary"
	Charset  = "charset"
	Filename = "filename"
	Name     = "name"
)

// Value is a parsed parameterized header value, such as
// "text/plain; charset=utf-8" or "attachment; filename=a.pdf". The
// primary value is case-folded to lower case, as are parameter names.
// Parameter values keep their original case.
type Value struct {
	v  string
	ps map[string]string
}

// Parse parses a parameterized header value. It never returns nil: input
// the strict grammar rejects is rescanned permissively, and at worst the
// result carries an empty primary value with whatever parameters could be
// salvaged.
func Parse(body string) *Value {
	mt, ps, err := mime.ParseMediaType(body)
	if err == nil {
		return &Value{mt, ps}
	}

	return parseLenient(body)
}

// New creates a Value with the given primary value and no parameters.
func New(v string) *Value {
	return &Value{strings.ToLower(strings.TrimSpace(v)), map[string]string{}}
}

// Value returns the primary value, e.g. "text/plain" for a Content-type
// or "attachment" for a Content-disposition.
func (pv *Value) Value() string {
	return pv.v
}

// IsMediaType reports whether the primary value has the type/subtype
// shape required of a Content-type.
func (pv *Value) IsMediaType() bool {
	ix := strings.IndexByte(pv.v, '/')
	return ix > 0 && ix < len(pv.v)-1
}

// Type returns the part of the primary value before the slash, or "" if
// there is no slash.
func (pv *Value) Type() string {
	if ix := strings.IndexByte(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype returns the part of the primary value after the slash, or ""
// if there is no slash.
func (pv *Value) Subtype() string {
	if ix := strings.IndexByte(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// Parameter returns the named parameter value or "" when it is not set.
// The name match is case-insensitive.
func (pv *Value) Parameter(name string) string {
	return pv.ps[strings.ToLower(name)]
}

// Parameters returns a copy of the parameter map.
func (pv *Value) Parameters() map[string]string {
	ps := make(map[string]string, len(pv.ps))
	for k, v := range pv.ps {
		ps[k] = v
	}
	return ps
}

// Boundary returns the boundary parameter.
func (pv *Value) Boundary() string {
	return pv.ps[Boundary]
}

// Charset returns the charset parameter.
func (pv *Value) Charset() string {
	return pv.ps[Charset]
}

// Filename returns the filename parameter.
func (pv *Value) Filename() string {
	return pv.ps[Filename]
}

// String reassembles the value with its parameters in sorted order.
func (pv *Value) String() string {
	ks := make([]string, 0, len(pv.ps))
	for k := range pv.ps {
		ks = append(ks, k)
	}
	sort.Strings(ks)

	var s strings.Builder
	s.WriteString(pv.v)
	for _, k := range ks {
		s.WriteString("; ")
		s.WriteString(k)
		s.WriteByte('=')
		s.WriteString(pv.ps[k])
	}
	return s.String()
}

// parseLenient is the permissive fallback scanner. It splits the value on
// top-level semicolons, honoring quoted strings with backslash escapes,
// so parameter values may contain ";" and "," without confusing it.
// Malformed pieces are dropped rather than failing the whole value.
//
// RFC 2231 continuations (name*0=...) are not reassembled here; such
// parameters come through under their literal starred names.
func parseLenient(body string) *Value {
	pieces := splitUnquoted(body, ';')
	if len(pieces) == 0 {
		return New("")
	}

	pv := New(pieces[0])
	for _, piece := range pieces[1:] {
		piece = strings.TrimSpace(piece)
		eq := strings.IndexByte(piece, '=')
		if eq <= 0 {
			continue
		}

		name := strings.ToLower(strings.TrimSpace(piece[:eq]))
		if name == "" {
			continue
		}
		pv.ps[name] = unquote(strings.TrimSpace(piece[eq+1:]))
	}
	return pv
}

// splitUnquoted splits s on sep wherever sep occurs outside a quoted
// string.
func splitUnquoted(s string, sep byte) []string {
	var (
		pieces  []string
		start   int
		quoted  bool
		escaped bool
	)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case quoted && c == '\\':
			escaped = true
		case c == '"':
			quoted = !quoted
		case c == sep && !quoted:
			pieces = append(pieces, s[start:i])
			start = i + 1
		}
	}
	return append(pieces, s[start:])
}

// unquote removes surrounding double quotes and resolves backslash
// escapes. Unquoted input is returned as-is.
func unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}

	var out strings.Builder
	out.Grow(len(s) - 2)
	escaped := false
	for _, c := range s[1 : len(s)-1] {
		if escaped {
			out.WriteRune(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		out.WriteRune(c)
	}
	return out.String()
}
