// Package guard provides the constructor guard used by value objects and
// command/query types to reject zero values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as built by its designated constructor.
// Embed it in a struct, set it with NewConstructorGuard in the constructor and
// call Validate before using the object:
//
//	type AdvanceSimulationCommand struct {
//	    deltaMinutes float64
//	    guard        guard.ConstructorGuard
//	}
//
//	func (c AdvanceSimulationCommand) Validate() error {
//	    return c.guard.Validate(ErrAdvanceSimulationCommandIsNotConstructed)
//	}
//
// The zero value reports the object as not constructed.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not created through its constructor, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
