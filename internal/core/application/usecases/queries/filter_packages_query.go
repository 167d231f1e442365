package queries

import (
	"errors"
	"strings"

	"tracking/internal/pkg/guard"
)

var ErrFilterPackagesQueryIsNotConstructed = errors.New(
	"FilterPackagesQuery must be created via NewFilterPackagesQuery constructor",
)

// FilterPackagesQuery searches packages by tracking number or by status code.
// Exactly one of the two must be given; the handler enforces it.
//
// Example:
//
//	tn := "TRK123456"
//	query := NewFilterPackagesQuery(&tn, nil)
//
//	code := int(parcel.Sent)
//	query = NewFilterPackagesQuery(nil, &code)
type FilterPackagesQuery struct {
	trackingNumber *string
	statusCode     *int
	guard          guard.ConstructorGuard
}

// NewFilterPackagesQuery creates a filter query. A blank tracking number
// counts as absent.
func NewFilterPackagesQuery(trackingNumber *string, statusCode *int) FilterPackagesQuery {
	q := FilterPackagesQuery{guard: guard.NewConstructorGuard()}

	if trackingNumber != nil {
		if tn := strings.TrimSpace(*trackingNumber); tn != "" {
			q.trackingNumber = &tn
		}
	}
	if statusCode != nil {
		code := *statusCode
		q.statusCode = &code
	}

	return q
}

// Validate ensures the query was created through the constructor.
func (q FilterPackagesQuery) Validate() error {
	return q.guard.Validate(ErrFilterPackagesQueryIsNotConstructed)
}

func (q FilterPackagesQuery) TrackingNumber() *string {
	return q.trackingNumber
}

func (q FilterPackagesQuery) StatusCode() *int {
	return q.statusCode
}
