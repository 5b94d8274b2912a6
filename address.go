package eml

import (
	"github.com/zostay/go-eml/message/header"
)

// Address is one mailbox from an address header.
type Address struct {
	// Name is the display name, or empty when the mailbox has none.
	Name string

	// Email is the address itself.
	Email string
}

// AddressList is the parsed mailboxes of one address header in input
// order.
type AddressList []Address

// Emails returns just the email addresses of the list.
func (al AddressList) Emails() []string {
	es := make([]string, len(al))
	for i, a := range al {
		es[i] = a.Email
	}
	return es
}

// Names returns just the display names of the list. Mailboxes without a
// display name contribute an empty string, keeping the indexes aligned
// with Emails().
func (al AddressList) Names() []string {
	ns := make([]string, len(al))
	for i, a := range al {
		ns[i] = a.Name
	}
	return ns
}

// AddressList parses the named address header. It returns nil when the
// header is absent and an empty list when the header is present but
// contains nothing parseable as a mailbox. Parsing is lenient and
// groups are flattened into their member mailboxes.
func (m *Message) AddressList(name string) AddressList {
	mbs, err := m.root.GetHeader().GetAddressList(name)
	if err != nil {
		return nil
	}

	al := make(AddressList, len(mbs))
	for i, mb := range mbs {
		al[i] = Address{
			Name:  mb.DisplayName(),
			Email: mb.Address(),
		}
	}
	return al
}

// From returns the mailboxes of the From header.
func (m *Message) From() AddressList {
	return m.AddressList(header.From)
}

// To returns the mailboxes of the To header.
func (m *Message) To() AddressList {
	return m.AddressList(header.To)
}

// Cc returns the mailboxes of the Cc header.
func (m *Message) Cc() AddressList {
	return m.AddressList(header.Cc)
}

// Bcc returns the mailboxes of the Bcc header.
func (m *Message) Bcc() AddressList {
	return m.AddressList(header.Bcc)
}

// ReplyTo returns the mailboxes of the Reply-to header.
func (m *Message) ReplyTo() AddressList {
	return m.AddressList(header.ReplyTo)
}
