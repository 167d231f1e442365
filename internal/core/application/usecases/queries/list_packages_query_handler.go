package queries

import (
	"context"

	"tracking/internal/core/application/projection"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/result"
)

// ListPackagesQueryHandler returns every package ordered by creation time.
// An empty store is reported as the failure "packages not found".
type ListPackagesQueryHandler struct {
	repo      ports.PackageRepository
	projector projection.Projector
}

func NewListPackagesQueryHandler(repo ports.PackageRepository, projector projection.Projector) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{
		repo:      repo,
		projector: projector,
	}
}

func (h ListPackagesQueryHandler) Handle(
	ctx context.Context,
	query ListPackagesQuery,
) result.Result[[]projection.PackageResponse] {
	if err := query.Validate(); err != nil {
		return result.FromError[[]projection.PackageResponse](err)
	}

	pkgs, err := h.repo.List(ctx)
	if err != nil {
		return result.Failure[[]projection.PackageResponse]("Error retrieving packages: " + err.Error())
	}

	if len(pkgs) == 0 {
		return result.Failure[[]projection.PackageResponse]("packages not found")
	}

	return result.Success(h.projector.Packages(pkgs))
}
