// Package ports defines the persistence contracts of the package tracking domain.
// These interfaces sit between the application layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
)

// PackageRepository defines the persistence contract for package aggregates.
type PackageRepository interface {
	// Add persists a new package. Its history is expected to be empty.
	Add(ctx context.Context, pkg *parcel.Package) error

	// Get retrieves a package with its sender, recipient and history (oldest first).
	// Returns errs.ObjectNotFoundError when no package has the id.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	// GetForUpdate is Get plus a row lock held until the surrounding
	// transaction ends. Stores without row locks fall back to Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	// List returns every package ordered by creation time.
	List(ctx context.Context) ([]*parcel.Package, error)

	// Filter returns packages matching the tracking number or the status,
	// ordered by creation time. A nil argument does not constrain the result.
	//
	// Example:
	//   tn := "TRK-0001"
	//   found, err := repo.Filter(ctx, &tn, nil)
	Filter(ctx context.Context, trackingNumber *string, status *parcel.Status) ([]*parcel.Package, error)

	// ApplyStatusAndHistory persists a status change produced by
	// Package.ChangeStatus: the history record is inserted and the package row
	// updated in one transaction. The update only succeeds while the stored
	// version is the one the package was read at; otherwise nothing is written
	// and errs.VersionIsInvalidError is returned.
	ApplyStatusAndHistory(ctx context.Context, pkg *parcel.Package, record *parcel.StatusHistory) error
}
