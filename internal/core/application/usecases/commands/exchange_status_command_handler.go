package commands

import (
	"context"
	"errors"
	"time"

	"tracking/internal/core/application/projection"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/result"

	"github.com/cenkalti/backoff/v4"
)

// DefaultExchangeMaxRetries is how many times a status change that lost an
// optimistic concurrency race is replayed against fresh state.
const DefaultExchangeMaxRetries = 3

// ExchangeStatusCommandHandler moves a package along the transition table.
//
// Flow:
//  1. parse the package id ("Invalid packageId")
//  2. load the package under a row lock ("package not found")
//  3. decode the status code, out-of-range codes become parcel.Unknown
//  4. same status: success without touching the policy or storage
//  5. policy rejects: "Invalid status transition"
//  6. append history and update status in one store call, then commit
//
// A write that loses the version race is retried from step 2 with exponential
// backoff. Any other fault ends as "Error updating package status: <cause>".
//
// Example:
//
//	handler := NewExchangeStatusCommandHandler(uowFactory, parcel.NewTransitionTable(), projection.NewProjector(), 3)
//	res := handler.Handle(ctx, NewExchangeStatusCommand(id, int(parcel.Sent)))
type ExchangeStatusCommandHandler struct {
	uowFactory PackageUoWFactory
	policy     parcel.TransitionPolicy
	projector  projection.Projector
	maxRetries uint64
	now        func() time.Time
	backOff    func() backoff.BackOff
}

// NewExchangeStatusCommandHandler creates a status change handler.
// maxRetries bounds the replays after a lost version race; zero disables them.
func NewExchangeStatusCommandHandler(
	uowFactory PackageUoWFactory,
	policy parcel.TransitionPolicy,
	projector projection.Projector,
	maxRetries uint64,
) ExchangeStatusCommandHandler {
	return ExchangeStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		projector:  projector,
		maxRetries: maxRetries,
		now:        time.Now,
		backOff:    newExchangeBackOff,
	}
}

func newExchangeBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 5 * time.Second
	return b
}

// Handle runs the status change.
func (h ExchangeStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ExchangeStatusCommand,
) result.Result[projection.PackageResponse] {
	if err := cmd.Validate(); err != nil {
		return result.FromError[projection.PackageResponse](err)
	}

	id, err := kernel.UUIDFromString(cmd.PackageID())
	if err != nil {
		return result.Failure[projection.PackageResponse]("Invalid packageId")
	}

	requested := parcel.StatusFromCode(cmd.StatusCode())

	var res result.Result[projection.PackageResponse]
	operation := func() error {
		r, opErr := h.exchange(ctx, id, requested)
		if opErr != nil {
			if errors.Is(opErr, errs.ErrVersionIsInvalid) {
				return opErr
			}
			return backoff.Permanent(opErr)
		}
		res = r
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(h.backOff(), h.maxRetries), ctx)
	if err = backoff.Retry(operation, policy); err != nil {
		return result.Failure[projection.PackageResponse]("Error updating package status: " + err.Error())
	}

	return res
}

func (h ExchangeStatusCommandHandler) exchange(
	ctx context.Context,
	id kernel.UUID,
	requested parcel.Status,
) (result.Result[projection.PackageResponse], error) {
	var none result.Result[projection.PackageResponse]

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return none, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()

	pkg, err := repo.GetForUpdate(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return result.Failure[projection.PackageResponse]("package not found"), nil
	}
	if err != nil {
		return none, err
	}

	record, err := pkg.ChangeStatus(h.policy, requested, kernel.NewUUID(), h.now())
	if errors.Is(err, parcel.ErrStatusTransitionIsNotAllowed) {
		return result.Failure[projection.PackageResponse]("Invalid status transition"), nil
	}
	if err != nil {
		return none, err
	}

	if record == nil {
		return result.Success(h.projector.Package(pkg)), nil
	}

	if err = repo.ApplyStatusAndHistory(ctx, pkg, record); err != nil {
		return none, err
	}

	if err = uow.Commit(ctx); err != nil {
		return none, err
	}

	return result.Success(h.projector.Package(pkg)), nil
}
