package party

import "strings"

// Contact is the name, address and phone shared by senders and recipients.
// It carries raw input; the application validators decide whether it is acceptable.
type Contact struct {
	name    string
	address string
	phone   string
}

// NewContact trims surrounding whitespace from every field.
func NewContact(name, address, phone string) Contact {
	return Contact{
		name:    strings.TrimSpace(name),
		address: strings.TrimSpace(address),
		phone:   strings.TrimSpace(phone),
	}
}

func (c Contact) Name() string {
	return c.name
}

func (c Contact) Address() string {
	return c.address
}

func (c Contact) Phone() string {
	return c.phone
}
