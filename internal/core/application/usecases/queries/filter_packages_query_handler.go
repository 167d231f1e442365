package queries

import (
	"context"

	"tracking/internal/core/application/projection"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/result"
)

const exclusiveFilterMessage = "Provide exactly one filter: either trackingNumber OR status (but not both)."

// FilterPackagesQueryHandler searches packages by exactly one criterion.
//
// Behaviour:
//   - both or neither filter: the exclusive-or failure, storage untouched
//   - status code outside 0..4: "No packages found", storage untouched
//   - no match: "No packages found"
//   - otherwise the matches ordered by creation time
type FilterPackagesQueryHandler struct {
	repo      ports.PackageRepository
	projector projection.Projector
}

func NewFilterPackagesQueryHandler(
	repo ports.PackageRepository,
	projector projection.Projector,
) FilterPackagesQueryHandler {
	return FilterPackagesQueryHandler{
		repo:      repo,
		projector: projector,
	}
}

func (h FilterPackagesQueryHandler) Handle(
	ctx context.Context,
	query FilterPackagesQuery,
) result.Result[[]projection.PackageResponse] {
	if err := query.Validate(); err != nil {
		return result.FromError[[]projection.PackageResponse](err)
	}

	hasTracking := query.TrackingNumber() != nil
	hasStatus := query.StatusCode() != nil
	if hasTracking == hasStatus {
		return result.Failure[[]projection.PackageResponse](exclusiveFilterMessage)
	}

	var status *parcel.Status
	if hasStatus {
		s := parcel.StatusFromCode(*query.StatusCode())
		if s == parcel.Unknown {
			return result.Failure[[]projection.PackageResponse]("No packages found")
		}
		status = &s
	}

	pkgs, err := h.repo.Filter(ctx, query.TrackingNumber(), status)
	if err != nil {
		return result.Failure[[]projection.PackageResponse]("Error retrieving packages: " + err.Error())
	}

	if len(pkgs) == 0 {
		return result.Failure[[]projection.PackageResponse]("No packages found")
	}

	return result.Success(h.projector.Packages(pkgs))
}
