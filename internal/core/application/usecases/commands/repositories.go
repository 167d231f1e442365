// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All handlers follow a consistent pattern: validation, transaction management,
// persistence, and a result.Result returned in place of a bare error.
package commands

import (
	"context"

	"tracking/internal/core/domain/model/party"
	"tracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// PartyRepoFactory provides access to the sender and recipient stores within a transaction.
	PartyRepoFactory interface {
		SenderRepository() ports.EntityRepository[*party.Sender]
		RecipientRepository() ports.EntityRepository[*party.Recipient]
	}

	// PackageUoW manages transactions for operations touching packages only.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// UoW manages transactions that read parties and write packages.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   sender, err := uow.SenderRepository().Get(ctx, senderID)
	//   // ... build the package
	//   err = uow.PackageRepository().Add(ctx, pkg)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		PackageRepoFactory
		PartyRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// EntityUoW manages transactions for a single kind of reference entity.
	EntityUoW[T any] interface {
		TxManager
		EntityRepository() ports.EntityRepository[T]
	}

	// EntityUoWFactory creates new entity unit of work instances.
	EntityUoWFactory[T any] interface {
		Create() EntityUoW[T]
	}
)
