// Package entityrepo persists the reference parties of a package (senders and
// recipients). Both share one generic GORM repository and differ only in
// their table and mapping functions.
package entityrepo

import (
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/party"

	"github.com/google/uuid"
)

// ContactDTO is embedded into every party table.
type ContactDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(255);not null"`
	Phone   string `gorm:"type:varchar(32);not null"`
}

// SenderDTO represents the database structure of a sender.
type SenderDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Contact ContactDTO `gorm:"embedded"`
}

// TableName overrides GORM's default "sender_dtos".
func (SenderDTO) TableName() string {
	return "senders"
}

// RecipientDTO represents the database structure of a recipient.
type RecipientDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Contact ContactDTO `gorm:"embedded"`
}

// TableName overrides GORM's default "recipient_dtos".
func (RecipientDTO) TableName() string {
	return "recipients"
}

// SenderFromDomain converts a sender to its database representation.
func SenderFromDomain(s *party.Sender) SenderDTO {
	return SenderDTO{
		ID:      s.ID().Bytes(),
		Contact: contactFromDomain(s.Contact()),
	}
}

// SenderToDomain rebuilds a sender from its stored row.
func SenderToDomain(dto SenderDTO) (*party.Sender, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return party.RestoreSender(id, contactToDomain(dto.Contact)), nil
}

// RecipientFromDomain converts a recipient to its database representation.
func RecipientFromDomain(r *party.Recipient) RecipientDTO {
	return RecipientDTO{
		ID:      r.ID().Bytes(),
		Contact: contactFromDomain(r.Contact()),
	}
}

// RecipientToDomain rebuilds a recipient from its stored row.
func RecipientToDomain(dto RecipientDTO) (*party.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return party.RestoreRecipient(id, contactToDomain(dto.Contact)), nil
}

func contactFromDomain(c party.Contact) ContactDTO {
	return ContactDTO{Name: c.Name(), Address: c.Address(), Phone: c.Phone()}
}

func contactToDomain(dto ContactDTO) party.Contact {
	return party.NewContact(dto.Name, dto.Address, dto.Phone)
}
