// Package packagerepo provides data transfer objects and mapping functions for
// package persistence. A package row owns its status history rows and refers
// to one sender and one recipient row.
package packagerepo

import (
	"time"

	"tracking/internal/adapters/out/postgres/entityrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/domain/model/party"

	"github.com/google/uuid"
)

// PackageDTO represents the database structure for persisting package aggregates.
type PackageDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber string    `gorm:"type:varchar(50);not null;index"`
	Status         int       `gorm:"type:int;not null;index"`
	CreatedAt      time.Time `gorm:"not null;index"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Version        int64     `gorm:"not null;default:0"`

	Sender    *entityrepo.SenderDTO    `gorm:"foreignKey:SenderID"`
	Recipient *entityrepo.RecipientDTO `gorm:"foreignKey:RecipientID"`
	History   []StatusHistoryDTO       `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "package_dtos".
func (PackageDTO) TableName() string {
	return "packages"
}

// StatusHistoryDTO is one row of a package's status history. Status holds the
// status the package left at ChangedAt. Ordinal is the package version the
// transition produced; it orders the rows independently of the wall clock.
type StatusHistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_history_package_ordinal,priority:1"`
	Ordinal   int64     `gorm:"not null;uniqueIndex:idx_history_package_ordinal,priority:2"`
	Status    int       `gorm:"type:int;not null"`
	ChangedAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default "status_history_dtos".
func (StatusHistoryDTO) TableName() string {
	return "package_status_history"
}

// fromDomain converts a package to its row. Parties are stored separately and
// never written through the package.
func fromDomain(pkg *parcel.Package) PackageDTO {
	packageID := pkg.ID().Bytes()
	history := make([]StatusHistoryDTO, 0, len(pkg.History()))
	for i, h := range pkg.History() {
		history = append(history, historyFromDomain(packageID, int64(i+1), h))
	}

	return PackageDTO{
		ID:             packageID,
		TrackingNumber: pkg.TrackingNumber(),
		Status:         pkg.Status().Code(),
		CreatedAt:      pkg.CreatedAt(),
		SenderID:       pkg.SenderID().Bytes(),
		RecipientID:    pkg.RecipientID().Bytes(),
		Version:        pkg.Version(),
		History:        history,
	}
}

func historyFromDomain(packageID uuid.UUID, ordinal int64, h *parcel.StatusHistory) StatusHistoryDTO {
	return StatusHistoryDTO{
		ID:        h.ID().Bytes(),
		PackageID: packageID,
		Ordinal:   ordinal,
		Status:    h.Status().Code(),
		ChangedAt: h.ChangedAt(),
	}
}

// toDomain rebuilds a package aggregate, attaching the parties when they were preloaded.
func toDomain(dto PackageDTO) (*parcel.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	history := make([]*parcel.StatusHistory, 0, len(dto.History))
	for _, h := range dto.History {
		hID, hErr := kernel.UUIDFromBytes(h.ID[:])
		if hErr != nil {
			return nil, hErr
		}
		history = append(history, parcel.RestoreStatusHistory(hID, parcel.StatusFromCode(h.Status), h.ChangedAt))
	}

	pkg := parcel.RestorePackage(
		id,
		dto.TrackingNumber,
		parcel.StatusFromCode(dto.Status),
		dto.CreatedAt,
		senderID,
		recipientID,
		history,
		dto.Version,
	)

	if err = attachParties(pkg, dto.Sender, dto.Recipient); err != nil {
		return nil, err
	}
	return pkg, nil
}

func attachParties(pkg *parcel.Package, s *entityrepo.SenderDTO, r *entityrepo.RecipientDTO) error {
	var (
		sender    *party.Sender
		recipient *party.Recipient
		err       error
	)
	if s != nil {
		if sender, err = entityrepo.SenderToDomain(*s); err != nil {
			return err
		}
	}
	if r != nil {
		if recipient, err = entityrepo.RecipientToDomain(*r); err != nil {
			return err
		}
	}
	if sender == nil && recipient == nil {
		return nil
	}
	return pkg.AttachParties(sender, recipient)
}
