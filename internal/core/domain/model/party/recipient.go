package party

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrRecipientIsNotConstructed is returned by Validate for a zero-value Recipient.
var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Recipient is the party a package is addressed to.
//
// Example:
//
//	contact := party.NewContact("John Doe", "12 Main Street, Springfield", "+15551234567")
//	recipient, err := party.NewRecipient(kernel.NewUUID(), contact)
type Recipient struct {
	id      kernel.UUID
	contact Contact
	guard   guard.ConstructorGuard
}

// NewRecipient creates a Recipient. Only the identifier is checked here;
// contact rules are enforced by the recipient validator before persistence.
func NewRecipient(id kernel.UUID, contact Contact) (*Recipient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Recipient{
		id:      id,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreRecipient rebuilds a Recipient loaded from storage.
func RestoreRecipient(id kernel.UUID, contact Contact) *Recipient {
	return &Recipient{
		id:      id,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}
}

func (s *Recipient) Validate() error {
	if s == nil {
		return ErrRecipientIsNotConstructed
	}
	return s.guard.Validate(ErrRecipientIsNotConstructed)
}

func (s *Recipient) ID() kernel.UUID {
	return s.id
}

func (s *Recipient) Contact() Contact {
	return s.contact
}
