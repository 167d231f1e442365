// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// A unit of work wraps one database transaction and hands out repositories bound
// to it, so that a package and the rows it depends on are written atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	sender, err := uow.SenderRepository().Get(ctx, senderID)
//	if err != nil {
//	    return err
//	}
//	// ... build the package
//	if err := uow.PackageRepository().Add(ctx, pkg); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance holds its own transaction
//   - Multiple goroutines must use separate UnitOfWork instances
//   - Status exchanges rely on row locks (Postgres) and the package version column
//
// Every aggregate a repository writes is tracked; a successful Commit logs the
// tracked aggregates and Rollback forgets them.
//
// The same code runs against Postgres and SQLite; only GetForUpdate behaves
// differently, since SQLite has no row locks.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"tracking/internal/adapters/out/postgres/entityrepo"
	"tracking/internal/adapters/out/postgres/packagerepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, slog.Default())
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// A nil logger discards the commit log.
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GormUnitOfWorkFactory{
		db:     db,
		logger: logger.With("component", "unit_of_work"),
	}
}

// Create produces a fresh UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records every
// aggregate its repositories wrote.
type GormUnitOfWork struct {
	db                *gorm.DB
	logger            *slog.Logger
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again while a transaction is
// active does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and logs the aggregates it wrote.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	uow.logCommitted(ctx)
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which makes
// a deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// PackageRepository returns a package store bound to the active transaction,
// or to the plain connection when none is active.
func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	return packagerepo.NewGormPackageRepository(uow.conn(), uow)
}

// SenderRepository returns a sender store bound to the active transaction.
func (uow *GormUnitOfWork) SenderRepository() ports.EntityRepository[*party.Sender] {
	return entityrepo.NewSenderRepository(uow.conn(), uow)
}

// RecipientRepository returns a recipient store bound to the active transaction.
func (uow *GormUnitOfWork) RecipientRepository() ports.EntityRepository[*party.Recipient] {
	return entityrepo.NewRecipientRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written in the open transaction,
// in write order.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	aggregates := make([]any, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		aggregates = append(aggregates, t.Aggregate)
	}
	return aggregates
}

func (uow *GormUnitOfWork) logCommitted(ctx context.Context) {
	if len(uow.trackedAggregates) == 0 {
		return
	}

	written := make([]string, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		written = append(written, fmt.Sprintf("%T:%s", t.Aggregate, t.ID))
	}
	uow.logger.InfoContext(ctx, "unit of work committed", "aggregates", written)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
