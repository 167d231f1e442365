package queries

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var ErrListPackagesQueryIsNotConstructed = errors.New(
	"ListPackagesQuery must be created via NewListPackagesQuery constructor",
)

// ListPackagesQuery retrieves every package. It has no parameters.
type ListPackagesQuery struct {
	guard guard.ConstructorGuard
}

func NewListPackagesQuery() ListPackagesQuery {
	return ListPackagesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}
