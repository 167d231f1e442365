package queries

import (
	"context"

	"tracking/internal/core/application/projection"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/result"
)

// GetPackageQueryHandler returns the projection of one package.
//
// Failure messages: "Invalid packageId", "package not found",
// "Error retrieving package: <cause>".
type GetPackageQueryHandler struct {
	repo      ports.PackageRepository
	projector projection.Projector
}

func NewGetPackageQueryHandler(repo ports.PackageRepository, projector projection.Projector) GetPackageQueryHandler {
	return GetPackageQueryHandler{
		repo:      repo,
		projector: projector,
	}
}

func (h GetPackageQueryHandler) Handle(
	ctx context.Context,
	query GetPackageQuery,
) result.Result[projection.PackageResponse] {
	if err := query.Validate(); err != nil {
		return result.FromError[projection.PackageResponse](err)
	}

	pkg, err := loadPackage(ctx, h.repo, query.PackageID())
	if err != nil {
		if isLookupFailure(err) {
			return result.FromError[projection.PackageResponse](err)
		}
		return result.Failure[projection.PackageResponse]("Error retrieving package: " + err.Error())
	}

	return result.Success(h.projector.Package(pkg))
}
