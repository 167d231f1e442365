package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
)

// EntityRepository is the minimal store for reference entities such as
// senders and recipients.
type EntityRepository[T any] interface {
	// Add persists a new entity.
	Add(ctx context.Context, entity T) error

	// Get retrieves an entity by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (T, error)
}
