package party

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrSenderIsNotConstructed is returned by Validate for a zero-value Sender.
var ErrSenderIsNotConstructed = errors.New("Sender must be created via NewSender constructor")

// Sender is the party that ships a package.
//
// Example:
//
//	contact := party.NewContact("Jane Roe", "12 Main Street, Springfield", "+15551234567")
//	sender, err := party.NewSender(kernel.NewUUID(), contact)
type Sender struct {
	id      kernel.UUID
	contact Contact
	guard   guard.ConstructorGuard
}

// NewSender creates a Sender. Only the identifier is checked here;
// contact rules are enforced by the sender validator before persistence.
func NewSender(id kernel.UUID, contact Contact) (*Sender, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Sender{
		id:      id,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreSender rebuilds a Sender loaded from storage.
func RestoreSender(id kernel.UUID, contact Contact) *Sender {
	return &Sender{
		id:      id,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}
}

func (s *Sender) Validate() error {
	if s == nil {
		return ErrSenderIsNotConstructed
	}
	return s.guard.Validate(ErrSenderIsNotConstructed)
}

func (s *Sender) ID() kernel.UUID {
	return s.id
}

func (s *Sender) Contact() Contact {
	return s.contact
}
