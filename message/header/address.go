package header

import (
	"strings"

	"github.com/zostay/go-addr/pkg/addr"
)

// ParseAddressList parses a field body into mailboxes, flattening any
// groups into their member mailboxes. It attempts a strict RFC 5322
// parse first. If that fails, an extremely lenient parse is attempted,
// which might produce results that can only be described as "weird" in
// the effort to provide some kind of result. It returns some kind of
// value for any input; a body with nothing resembling an address in it
// yields an empty, non-nil list.
func ParseAddressList(body string) []*addr.Mailbox {
	al, err := addr.ParseEmailAddressList(body)
	if err == nil {
		return flattenAddressList(al)
	}
	return parseEmailAddressList(body)
}

// flattenAddressList replaces each group in the list with its member
// mailboxes, preserving order.
func flattenAddressList(al addr.AddressList) []*addr.Mailbox {
	mbs := make([]*addr.Mailbox, 0, len(al))
	for _, a := range al {
		switch a := a.(type) {
		case *addr.Mailbox:
			mbs = append(mbs, a)
		case *addr.Group:
			mbs = append(mbs, a.MailboxList()...)
		}
	}
	return mbs
}

// parseEmailAddressList performs lenient address list parsing for when
// the strict parser lets us down. This is an ad hoc parse that loses
// information:
//
// 1. Comments (in parentheses) are extracted, with nesting allowed.
// 2. The list is split on commas outside of quotes and angle brackets.
// 3. Group syntax is unwrapped: the display name before the colon and
//    the trailing semicolon are discarded, the members are kept.
// 4. An angle-bracketed token is the address; what precedes it is the
//    display name, unquoted if it was quoted.
// 5. Otherwise the last word is the address and the rest the display
//    name.
//
// As some address fields have something other than an address in them
// because people on the Internet are weird, the result will be wrong
// sometimes. We stuff whatever we get into an addr.Mailbox and call it
// good.
func parseEmailAddressList(v string) []*addr.Mailbox {
	mbs := make([]*addr.Mailbox, 0, strings.Count(v, ",")+1)
	for _, orig := range splitMailboxes(v) {
		mb, com := extractComments(orig)

		mb = strings.TrimSpace(mb)
		com = strings.TrimSpace(com)

		dn, email := splitMailbox(mb)
		if email == "" {
			continue
		}

		var addrSpec *addr.AddrSpec
		if i := strings.Index(email, "@"); i > -1 {
			addrSpec = addr.NewAddrSpecParsed(
				email[:i],
				email[i+1:],
				email,
			)
		} else {
			addrSpec = addr.NewAddrSpecParsed(
				email,
				"",
				email,
			)
		}

		mailbox, err := addr.NewMailboxParsed(dn, addrSpec, com, orig)
		if err != nil {
			mailbox, _ = addr.NewMailboxParsed(dn, addrSpec, "", orig)
		}

		mbs = append(mbs, mailbox)
	}

	return mbs
}

// splitMailboxes splits an address list body on commas, but not commas
// inside quoted strings or angle brackets. Group syntax is unwrapped in
// the process: a colon outside quotes discards the text before it and a
// semicolon acts as another separator.
func splitMailboxes(v string) []string {
	var (
		pieces  []string
		piece   strings.Builder
		inQuote bool
		escaped bool
		angle   bool
	)

	cut := func() {
		if piece.Len() > 0 {
			pieces = append(pieces, piece.String())
			piece.Reset()
		}
	}

	for _, c := range v {
		switch {
		case escaped:
			escaped = false
			piece.WriteRune(c)
		case c == '\\' && inQuote:
			escaped = true
			piece.WriteRune(c)
		case c == '"':
			inQuote = !inQuote
			piece.WriteRune(c)
		case inQuote:
			piece.WriteRune(c)
		case c == '<':
			angle = true
			piece.WriteRune(c)
		case c == '>':
			angle = false
			piece.WriteRune(c)
		case angle:
			piece.WriteRune(c)
		case c == ',' || c == ';':
			cut()
		case c == ':':
			piece.Reset()
		default:
			piece.WriteRune(c)
		}
	}
	cut()

	return pieces
}

// splitMailbox splits a single cleaned mailbox string into display name
// and email address.
func splitMailbox(mb string) (string, string) {
	if open := strings.IndexByte(mb, '<'); open > -1 {
		email := mb[open+1:]
		if close := strings.IndexByte(email, '>'); close > -1 {
			email = email[:close]
		}
		dn := unquoteDisplayName(strings.TrimSpace(mb[:open]))
		return dn, strings.TrimSpace(email)
	}

	parts := strings.Fields(mb)
	switch {
	case len(parts) == 0:
		return "", ""
	case len(parts) > 1:
		return unquoteDisplayName(strings.Join(parts[:len(parts)-1], " ")), parts[len(parts)-1]
	default:
		return "", parts[0]
	}
}

// unquoteDisplayName removes surrounding double quotes from a display
// name and resolves backslash escapes inside them.
func unquoteDisplayName(dn string) string {
	if len(dn) < 2 || dn[0] != '"' || dn[len(dn)-1] != '"' {
		return dn
	}

	var out strings.Builder
	out.Grow(len(dn) - 2)
	escaped := false
	for _, c := range dn[1 : len(dn)-1] {
		if !escaped && c == '\\' {
			escaped = true
			continue
		}
		escaped = false
		out.WriteRune(c)
	}
	return out.String()
}

// extractComments pulls RFC 5322 comments out of a mailbox string,
// honoring nesting. It returns the string with comments removed and the
// comment text. Parentheses inside quoted strings are literal.
func extractComments(s string) (string, string) {
	var (
		clean, comment strings.Builder
		nestLevel      int
		inQuote        bool
		escaped        bool
	)

	for _, c := range s {
		switch {
		case escaped:
			escaped = false
			clean.WriteRune(c)
		case inQuote && c == '\\':
			escaped = true
			clean.WriteRune(c)
		case c == '"' && nestLevel == 0:
			inQuote = !inQuote
			clean.WriteRune(c)
		case inQuote:
			clean.WriteRune(c)
		case c == '(':
			nestLevel++
			if nestLevel > 1 {
				comment.WriteRune(c)
			}
		case c == ')':
			nestLevel--
			switch {
			case nestLevel == 0:
			case nestLevel < 0:
				nestLevel = 0
				clean.WriteRune(c)
			default:
				comment.WriteRune(c)
			}
		case nestLevel > 0:
			comment.WriteRune(c)
		default:
			clean.WriteRune(c)
		}
	}

	return clean.String(), comment.String()
}
