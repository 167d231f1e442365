package queries

import (
	"context"

	"tracking/internal/core/application/projection"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/result"
)

// GetStatusHistoryQueryHandler returns the history entries of a package,
// oldest first, as lightweight projections.
//
// Example:
//
//	res := handler.Handle(ctx, NewGetStatusHistoryQuery(id))
//	for _, h := range res.Data() {
//	    fmt.Printf("%s left at %s\n", h.Status, h.ChangedAt)
//	}
type GetStatusHistoryQueryHandler struct {
	repo      ports.PackageRepository
	projector projection.Projector
}

func NewGetStatusHistoryQueryHandler(
	repo ports.PackageRepository,
	projector projection.Projector,
) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{
		repo:      repo,
		projector: projector,
	}
}

func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusHistoryQuery,
) result.Result[[]projection.HistoryResponse] {
	if err := query.Validate(); err != nil {
		return result.FromError[[]projection.HistoryResponse](err)
	}

	pkg, err := loadPackage(ctx, h.repo, query.PackageID())
	if err != nil {
		if isLookupFailure(err) {
			return result.FromError[[]projection.HistoryResponse](err)
		}
		return result.Failure[[]projection.HistoryResponse]("Error retrieving status history: " + err.Error())
	}

	return result.Success(h.projector.History(pkg))
}
