package queries

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
	"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
)

// GetStatusHistoryQuery retrieves the status history of one package.
type GetStatusHistoryQuery struct {
	packageID string
	guard     guard.ConstructorGuard
}

func NewGetStatusHistoryQuery(packageID string) GetStatusHistoryQuery {
	return GetStatusHistoryQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

func (q GetStatusHistoryQuery) PackageID() string {
	return q.packageID
}
