package commands

import (
	"context"
	"errors"
	"time"

	"tracking/internal/core/application/projection"
	"tracking/internal/core/application/validation"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/result"
)

// CreatePackageCommandHandler registers a package for an existing sender and
// recipient. The package starts in Created with an empty history.
//
// Failure messages:
//   - every validator message, all at once
//   - "Sender does not exist" / "Recipient does not exist"
//   - "Error adding package: <cause>" for storage faults
type CreatePackageCommandHandler struct {
	uowFactory UoWFactory
	validator  validation.EntityValidator[validation.PackageCandidate]
	projector  projection.Projector
	now        func() time.Time
}

// NewCreatePackageCommandHandler creates a handler for package registration.
func NewCreatePackageCommandHandler(
	uowFactory UoWFactory,
	validator validation.EntityValidator[validation.PackageCandidate],
	projector projection.Projector,
) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		projector:  projector,
		now:        time.Now,
	}
}

// Handle validates the command, resolves both parties and persists the package.
func (h CreatePackageCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePackageCommand,
) result.Result[projection.PackageResponse] {
	if err := cmd.Validate(); err != nil {
		return result.FromError[projection.PackageResponse](err)
	}

	if messages := h.validator.Validate(cmd); len(messages) > 0 {
		return result.Failures[projection.PackageResponse](messages)
	}

	senderID, err := kernel.UUIDFromString(cmd.SenderID())
	if err != nil {
		return result.Failure[projection.PackageResponse]("SenderId must be a valid identifier")
	}
	recipientID, err := kernel.UUIDFromString(cmd.RecipientID())
	if err != nil {
		return result.Failure[projection.PackageResponse]("RecipientId must be a valid identifier")
	}

	res, err := h.create(ctx, cmd.TrackingNumber(), senderID, recipientID)
	if err != nil {
		return result.Failure[projection.PackageResponse]("Error adding package: " + err.Error())
	}

	return res
}

func (h CreatePackageCommandHandler) create(
	ctx context.Context,
	trackingNumber string,
	senderID kernel.UUID,
	recipientID kernel.UUID,
) (result.Result[projection.PackageResponse], error) {
	var none result.Result[projection.PackageResponse]

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return none, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sender, err := uow.SenderRepository().Get(ctx, senderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return result.Failure[projection.PackageResponse]("Sender does not exist"), nil
	}
	if err != nil {
		return none, err
	}

	recipient, err := uow.RecipientRepository().Get(ctx, recipientID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return result.Failure[projection.PackageResponse]("Recipient does not exist"), nil
	}
	if err != nil {
		return none, err
	}

	pkg, err := parcel.NewPackage(kernel.NewUUID(), trackingNumber, senderID, recipientID, h.now())
	if err != nil {
		return none, err
	}
	if err = pkg.AttachParties(sender, recipient); err != nil {
		return none, err
	}

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return none, err
	}

	if err = uow.Commit(ctx); err != nil {
		return none, err
	}

	return result.Success(h.projector.Package(pkg)), nil
}
