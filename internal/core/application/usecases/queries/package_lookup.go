// Package queries contains read-only operations. Package lookups go through
// ports.PackageRepository; aggregate reports query the database directly.
package queries

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

var (
	errInvalidPackageID = errors.New("Invalid packageId")
	errPackageNotFound  = errors.New("package not found")
)

// loadPackage parses rawID and loads the package. The returned error is either
// errInvalidPackageID, errPackageNotFound or a storage fault. The nil UUID is
// well formed and is looked up like any other id.
func loadPackage(ctx context.Context, repo ports.PackageRepository, rawID string) (*parcel.Package, error) {
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return nil, errInvalidPackageID
	}

	pkg, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errPackageNotFound
	}
	if err != nil {
		return nil, err
	}

	return pkg, nil
}

// isLookupFailure reports whether err is one of the fixed lookup messages.
func isLookupFailure(err error) bool {
	return errors.Is(err, errInvalidPackageID) || errors.Is(err, errPackageNotFound)
}
