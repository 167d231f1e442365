package queries

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery retrieves one package by its raw identifier.
//
// Example:
//
//	query := NewGetPackageQuery(c.Param("id"))
//	res := handler.Handle(ctx, query)
type GetPackageQuery struct {
	packageID string
	guard     guard.ConstructorGuard
}

func NewGetPackageQuery(packageID string) GetPackageQuery {
	return GetPackageQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

func (q GetPackageQuery) PackageID() string {
	return q.packageID
}
