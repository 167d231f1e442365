package packagerepo

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLSTATE codes Postgres reports when a concurrent writer won the race.
var concurrencyCodes = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
	"55P03": {}, // lock_not_available
	"23505": {}, // unique_violation on (package_id, ordinal)
}

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackageRepository creates a new GORM package repository.
// tracker may be nil for read-only use.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package to the database.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Get retrieves a package by ID together with its parties and history.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a package and locks its row until the surrounding
// transaction ends. Only Postgres takes the lock; SQLite serializes writers
// on its own.
func (r *GormPackageRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	return r.get(ctx, id, true)
}

// List retrieves every package ordered by creation time.
func (r *GormPackageRepository) List(ctx context.Context) ([]*parcel.Package, error) {
	return r.find(r.withRelations(ctx))
}

// Filter retrieves packages by tracking number or status. Nil arguments are ignored.
//
// Example:
//
//	sent := parcel.Sent
//	packages, err := repo.Filter(ctx, nil, &sent)
func (r *GormPackageRepository) Filter(
	ctx context.Context,
	trackingNumber *string,
	status *parcel.Status,
) ([]*parcel.Package, error) {
	query := r.withRelations(ctx)
	if trackingNumber != nil {
		query = query.Where("tracking_number = ?", *trackingNumber)
	}
	if status != nil {
		query = query.Where("status = ?", status.Code())
	}
	return r.find(query)
}

// ApplyStatusAndHistory writes the outcome of Package.ChangeStatus: moves the
// package row from version-1 to version and inserts record with the new
// version as its ordinal.
//
// Returns errs.VersionIsInvalidError when the row is no longer at the version
// the package was read at, or when Postgres aborts the transaction because of
// a concurrent writer. Nothing is written in either case.
func (r *GormPackageRepository) ApplyStatusAndHistory(
	ctx context.Context,
	aggregate *parcel.Package,
	record *parcel.StatusHistory,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := record.Validate(); err != nil {
		return err
	}

	packageID := aggregate.ID().Bytes()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&PackageDTO{}).
			Where("id = ? AND version = ?", packageID, aggregate.Version()-1).
			Updates(map[string]any{
				"status":  aggregate.Status().Code(),
				"version": aggregate.Version(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewVersionIsInvalidError("package")
		}

		history := historyFromDomain(packageID, aggregate.Version(), record)
		return tx.Create(&history).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if _, ok := concurrencyCodes[pgErr.Code]; ok {
				return errs.NewVersionIsInvalidErrorWithCause("package", err)
			}
		}
		return err
	}

	r.track(aggregate)
	return nil
}

// get treats the nil UUID as an ordinary key: no row carries it, so it ends as
// ErrObjectNotFound.
func (r *GormPackageRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*parcel.Package, error) {
	query := r.withRelations(ctx)
	if lock && r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto PackageDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPackageRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal ASC").Order("changed_at ASC")
		})
}

func (r *GormPackageRepository) find(query *gorm.DB) ([]*parcel.Package, error) {
	var dtos []PackageDTO
	if err := query.Order("created_at ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	packages := make([]*parcel.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, nil
}

func (r *GormPackageRepository) track(aggregate *parcel.Package) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
