package validation

import (
	"strings"
	"unicode/utf8"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
)

// PackageCandidate is the raw input of a package registration.
type PackageCandidate interface {
	TrackingNumber() string
	SenderID() string
	RecipientID() string
}

// PackageRequestValidator checks a package registration before any lookup happens.
type PackageRequestValidator struct{}

var _ EntityValidator[PackageCandidate] = PackageRequestValidator{}

func NewPackageRequestValidator() PackageRequestValidator {
	return PackageRequestValidator{}
}

func (PackageRequestValidator) Validate(candidate PackageCandidate) []string {
	var messages []string

	trackingNumber := strings.TrimSpace(candidate.TrackingNumber())
	switch {
	case trackingNumber == "":
		messages = append(messages, "Tracking number is required")
	case utf8.RuneCountInString(trackingNumber) > parcel.MaxTrackingNumberLength:
		messages = append(messages, "Tracking number must be between 1 and 50 characters")
	}

	if msg := checkReference("SenderId", candidate.SenderID()); msg != "" {
		messages = append(messages, msg)
	}
	if msg := checkReference("RecipientId", candidate.RecipientID()); msg != "" {
		messages = append(messages, msg)
	}

	return messages
}

func checkReference(field, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return field + " is required"
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil || id.IsZero() {
		return field + " must be a valid identifier"
	}
	return ""
}
