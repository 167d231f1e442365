package parcel

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrStatusHistoryIsNotConstructed is returned by Validate for a zero-value record.
var ErrStatusHistoryIsNotConstructed = errors.New("StatusHistory must be created via NewStatusHistory constructor")

// StatusHistory is one immutable entry of a package's history. Status is the
// state the package was in before the change, ChangedAt is when it changed.
type StatusHistory struct {
	id        kernel.UUID
	status    Status
	changedAt time.Time
	guard     guard.ConstructorGuard
}

// NewStatusHistory creates a history entry. changedAt is stored in UTC.
func NewStatusHistory(id kernel.UUID, status Status, changedAt time.Time) (*StatusHistory, error) {
	h := &StatusHistory{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		h.setID(id),
		h.setStatus(status),
		h.setChangedAt(changedAt),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// RestoreStatusHistory rebuilds a history entry loaded from storage.
func RestoreStatusHistory(id kernel.UUID, status Status, changedAt time.Time) *StatusHistory {
	return &StatusHistory{
		id:        id,
		status:    status,
		changedAt: changedAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}
}

func (h *StatusHistory) Validate() error {
	if h == nil {
		return ErrStatusHistoryIsNotConstructed
	}
	return h.guard.Validate(ErrStatusHistoryIsNotConstructed)
}

func (h *StatusHistory) ID() kernel.UUID {
	return h.id
}

func (h *StatusHistory) Status() Status {
	return h.status
}

func (h *StatusHistory) ChangedAt() time.Time {
	return h.changedAt
}

func (h *StatusHistory) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *StatusHistory) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	h.status = status
	return nil
}

func (h *StatusHistory) setChangedAt(changedAt time.Time) error {
	if changedAt.IsZero() {
		return errs.NewValueIsRequiredError("changedAt")
	}
	h.changedAt = changedAt.UTC()
	return nil
}
