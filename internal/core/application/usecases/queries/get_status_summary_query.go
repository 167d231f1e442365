package queries

import (
	"errors"

	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/pkg/guard"
)

var ErrGetStatusSummaryQueryIsNotConstructed = errors.New(
	"GetStatusSummaryQuery must be created via NewGetStatusSummaryQuery constructor",
)

// GetStatusSummaryQuery counts packages per status.
type GetStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatusSummaryQuery() GetStatusSummaryQuery {
	return GetStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusSummaryQueryIsNotConstructed)
}

// GetStatusSummaryQueryResponse is the number of packages currently in Status.
type GetStatusSummaryQueryResponse struct {
	Status parcel.Status `json:"status"`
	Count  int64         `json:"count"`
}
