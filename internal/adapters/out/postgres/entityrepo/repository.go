package entityrepo

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// entity is what the generic repository needs from a stored domain object.
type entity interface {
	Validate() error
	ID() kernel.UUID
}

// GormEntityRepository stores one kind of entity T as rows of D.
//
// Example:
//
//	repo := entityrepo.NewSenderRepository(db, uow)
//	err := repo.Add(ctx, sender)
//	found, err := repo.Get(ctx, sender.ID())
type GormEntityRepository[T entity, D any] struct {
	db         *gorm.DB
	tracker    aggregateTracker
	name       string
	fromDomain func(T) D
	toDomain   func(D) (T, error)
}

// NewGormEntityRepository creates a repository for entities named name
// (used in not-found errors). tracker may be nil.
func NewGormEntityRepository[T entity, D any](
	db *gorm.DB,
	tracker aggregateTracker,
	name string,
	fromDomain func(T) D,
	toDomain func(D) (T, error),
) *GormEntityRepository[T, D] {
	return &GormEntityRepository[T, D]{
		db:         db,
		tracker:    tracker,
		name:       name,
		fromDomain: fromDomain,
		toDomain:   toDomain,
	}
}

// NewSenderRepository creates the sender store.
func NewSenderRepository(db *gorm.DB, tracker aggregateTracker) *GormEntityRepository[*party.Sender, SenderDTO] {
	return NewGormEntityRepository(db, tracker, "sender", SenderFromDomain, SenderToDomain)
}

// NewRecipientRepository creates the recipient store.
func NewRecipientRepository(db *gorm.DB, tracker aggregateTracker) *GormEntityRepository[*party.Recipient, RecipientDTO] {
	return NewGormEntityRepository(db, tracker, "recipient", RecipientFromDomain, RecipientToDomain)
}

// Add saves a new entity.
func (r *GormEntityRepository[T, D]) Add(ctx context.Context, e T) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := r.fromDomain(e)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(e.ID(), e)
	}
	return nil
}

// Get retrieves an entity by ID.
func (r *GormEntityRepository[T, D]) Get(ctx context.Context, id kernel.UUID) (T, error) {
	var zero T
	if err := id.Validate(); err != nil {
		return zero, err
	}

	var dto D
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, errs.NewObjectNotFoundError(r.name, id.String())
		}
		return zero, err
	}

	return r.toDomain(dto)
}
