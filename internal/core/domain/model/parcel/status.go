package parcel

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of a package.
//
// State transitions:
//
//	Created ──┬──> Sent ──┬──> Accepted
//	          │     ^     ├──> Returned ──┐
//	          │     └─────┼───────────────┘
//	          │           │
//	          └───────────┴──> Cancelled
//
// The integer values are the codes clients use to request a status, so they
// are stable: 0=Created, 1=Sent, 2=Accepted, 3=Returned, 4=Cancelled.
type Status int

// Unknown is what an out-of-range code decodes to. It is never stored
// and no transition leads to or from it.
const Unknown Status = -1

const (
	// Created is the initial status of every package.
	Created Status = iota

	// Sent indicates the package left the sender.
	Sent

	// Accepted indicates the recipient took the package. Final.
	Accepted

	// Returned indicates the package is on its way back; it may be sent again.
	Returned

	// Cancelled indicates the shipment was called off. Final.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Created:   "Created",
		Sent:      "Sent",
		Accepted:  "Accepted",
		Returned:  "Returned",
		Cancelled: "Cancelled",
	}
}

// Statuses returns the valid statuses ordered by code.
func Statuses() []Status {
	return []Status{Created, Sent, Accepted, Returned, Cancelled}
}

// StatusFromCode decodes a boundary code. Codes outside 0..4 become Unknown.
//
// Example:
//
//	parcel.StatusFromCode(1)  // Sent
//	parcel.StatusFromCode(42) // Unknown
func StatusFromCode(code int) Status {
	s := Status(code)
	if s.Validate() != nil {
		return Unknown
	}
	return s
}

// Code returns the boundary code of the status.
func (s Status) Code() int {
	return int(s)
}

// Validate returns an error for Unknown and any value outside the five states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the state name, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarshalText renders the state name, so responses show "Sent" instead of 1.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
