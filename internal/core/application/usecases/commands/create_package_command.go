package commands

import (
	"errors"
	"strings"

	"tracking/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand carries the raw input of a package registration.
// Field rules are checked by the handler's validator so every violation can
// be reported at once.
//
// Example:
//
//	cmd := NewCreatePackageCommand("TRK123456", senderID, recipientID)
//	res := handler.Handle(ctx, cmd)
//	if !res.IsSuccessful() {
//	    return res.Errors()
//	}
type CreatePackageCommand struct {
	trackingNumber string
	senderID       string
	recipientID    string

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to register a new package.
// Surrounding whitespace is stripped from both party ids.
func NewCreatePackageCommand(trackingNumber, senderID, recipientID string) CreatePackageCommand {
	return CreatePackageCommand{
		trackingNumber: trackingNumber,
		senderID:       strings.TrimSpace(senderID),
		recipientID:    strings.TrimSpace(recipientID),
		guard:          guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c CreatePackageCommand) SenderID() string {
	return c.senderID
}

func (c CreatePackageCommand) RecipientID() string {
	return c.recipientID
}
