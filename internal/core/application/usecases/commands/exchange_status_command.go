package commands

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var ErrExchangeStatusCommandIsNotConstructed = errors.New(
	"ExchangeStatusCommand must be created via NewExchangeStatusCommand constructor",
)

// ExchangeStatusCommand asks to move a package to the status with the given code.
// The package id stays a raw string until the handler parses it.
type ExchangeStatusCommand struct {
	packageID  string
	statusCode int

	guard guard.ConstructorGuard
}

// NewExchangeStatusCommand creates a status change request.
//
// Example:
//
//	cmd := NewExchangeStatusCommand("550e8400-e29b-41d4-a716-446655440000", int(parcel.Sent))
func NewExchangeStatusCommand(packageID string, statusCode int) ExchangeStatusCommand {
	return ExchangeStatusCommand{
		packageID:  packageID,
		statusCode: statusCode,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExchangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrExchangeStatusCommandIsNotConstructed)
}

func (c ExchangeStatusCommand) PackageID() string {
	return c.packageID
}

func (c ExchangeStatusCommand) StatusCode() int {
	return c.statusCode
}
