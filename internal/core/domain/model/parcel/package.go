package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// MaxTrackingNumberLength is the longest tracking number a package accepts.
const MaxTrackingNumberLength = 50

var (
	// ErrPackageIsNotConstructed is returned when a Package was not built by
	// NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

	// ErrStatusTransitionIsNotAllowed is returned by ChangeStatus when the
	// transition policy rejects the requested move.
	ErrStatusTransitionIsNotAllowed = errors.New("status transition is not allowed")
)

// Package is the aggregate root of a tracked shipment.
//
// Package follows these invariants:
//   - id, tracking number, sender and recipient never change after creation
//   - status is always one of the five valid states
//   - history holds one entry per performed transition, oldest first, and is append-only
//   - version grows by one with every status change and guards concurrent writers
type Package struct {
	id             kernel.UUID
	trackingNumber string
	status         Status
	createdAt      time.Time

	senderID    kernel.UUID
	recipientID kernel.UUID

	// sender and recipient are set only when loaded together with the package.
	sender    *party.Sender
	recipient *party.Recipient

	history []*StatusHistory
	version int64

	guard guard.ConstructorGuard
}

// NewPackage creates a package in status Created with an empty history.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - trackingNumber: non-blank, at most MaxTrackingNumberLength characters
//   - senderID, recipientID: identifiers of existing parties
//   - createdAt: creation time, stored in UTC
//
// Example:
//
//	pkg, err := parcel.NewPackage(kernel.NewUUID(), "TRK-0001", sender.ID(), recipient.ID(), time.Now())
//	if err != nil {
//	    // one or more arguments were invalid, errors are joined
//	}
func NewPackage(
	id kernel.UUID,
	trackingNumber string,
	senderID kernel.UUID,
	recipientID kernel.UUID,
	createdAt time.Time,
) (*Package, error) {
	pkg := &Package{
		status:  Created,
		history: []*StatusHistory{},
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setTrackingNumber(trackingNumber),
		pkg.setSenderID(senderID),
		pkg.setRecipientID(recipientID),
		pkg.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return pkg, nil
}

// RestorePackage rebuilds a package loaded from storage without re-running
// creation rules. History is expected oldest first.
func RestorePackage(
	id kernel.UUID,
	trackingNumber string,
	status Status,
	createdAt time.Time,
	senderID kernel.UUID,
	recipientID kernel.UUID,
	history []*StatusHistory,
	version int64,
) *Package {
	copied := make([]*StatusHistory, len(history))
	copy(copied, history)

	return &Package{
		id:             id,
		trackingNumber: trackingNumber,
		status:         status,
		createdAt:      createdAt.UTC(),
		senderID:       senderID,
		recipientID:    recipientID,
		history:        copied,
		version:        version,
		guard:          guard.NewConstructorGuard(),
	}
}

// Validate ensures the package was built by one of its constructors.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// IsEqual compares packages by identifier.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Package) ID() kernel.UUID {
	return p.id
}

func (p *Package) TrackingNumber() string {
	return p.trackingNumber
}

func (p *Package) Status() Status {
	return p.status
}

func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Package) SenderID() kernel.UUID {
	return p.senderID
}

func (p *Package) RecipientID() kernel.UUID {
	return p.recipientID
}

// Sender returns the loaded sender, or nil when it was not loaded.
func (p *Package) Sender() *party.Sender {
	return p.sender
}

// Recipient returns the loaded recipient, or nil when it was not loaded.
func (p *Package) Recipient() *party.Recipient {
	return p.recipient
}

// History returns a copy of the history entries, oldest first.
func (p *Package) History() []*StatusHistory {
	copied := make([]*StatusHistory, len(p.history))
	copy(copied, p.history)
	return copied
}

// Version returns the optimistic concurrency version.
func (p *Package) Version() int64 {
	return p.version
}

// AttachParties sets the loaded sender and recipient. Parties whose id does
// not match the package references are rejected.
func (p *Package) AttachParties(sender *party.Sender, recipient *party.Recipient) error {
	if sender != nil && !sender.ID().IsEqual(p.senderID) {
		return errs.NewValueIsInvalidErrorWithCause("sender",
			fmt.Errorf("%s is not the package sender", sender.ID()))
	}
	if recipient != nil && !recipient.ID().IsEqual(p.recipientID) {
		return errs.NewValueIsInvalidErrorWithCause("recipient",
			fmt.Errorf("%s is not the package recipient", recipient.ID()))
	}

	p.sender = sender
	p.recipient = recipient
	return nil
}

// ChangeStatus moves the package to requested.
//
// Behaviour:
//   - requested equal to the current status: no-op, returns (nil, nil) and
//     does not consult policy
//   - policy rejects the move: returns ErrStatusTransitionIsNotAllowed, nothing changes
//   - otherwise: appends a history entry holding the status being left, stamped
//     with at, switches to requested and bumps the version
//
// The returned entry is the one appended, so the caller can persist it.
//
// Example:
//
//	record, err := pkg.ChangeStatus(parcel.NewTransitionTable(), parcel.Sent, kernel.NewUUID(), time.Now())
//	if errors.Is(err, parcel.ErrStatusTransitionIsNotAllowed) {
//	    // reject the request
//	}
//	if record == nil {
//	    // status was already Sent
//	}
func (p *Package) ChangeStatus(
	policy TransitionPolicy,
	requested Status,
	historyID kernel.UUID,
	at time.Time,
) (*StatusHistory, error) {
	if requested == p.status {
		return nil, nil
	}

	if !policy.Allowed(p.status, requested) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionIsNotAllowed, p.status, requested)
	}

	record, err := NewStatusHistory(historyID, p.status, at)
	if err != nil {
		return nil, err
	}

	p.history = append(p.history, record)
	p.status = requested
	p.version++

	return record, nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if n := utf8.RuneCountInString(trackingNumber); n > MaxTrackingNumberLength {
		return errs.NewValueIsOutOfRangeError("trackingNumber length", n, 1, MaxTrackingNumberLength)
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Package) setSenderID(id kernel.UUID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("senderID")
	}
	p.senderID = id
	return nil
}

func (p *Package) setRecipientID(id kernel.UUID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("recipientID")
	}
	p.recipientID = id
	return nil
}

func (p *Package) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt.UTC()
	return nil
}
