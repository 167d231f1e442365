// Package guard provides ConstructorGuard, a marker that lets aggregates,
// commands and queries detect whether they were built by their constructor
// or are zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types that must only be created through
// their constructor. The zero value reports "not constructed".
//
// Example:
//
//	var ErrSenderIsNotConstructed = errors.New("Sender must be created via NewSender")
//
//	type Sender struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSender(name string) *Sender {
//	    return &Sender{name: name, guard: guard.NewConstructorGuard()}
//	}
//
//	func (s *Sender) Validate() error {
//	    return s.guard.Validate(ErrSenderIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
