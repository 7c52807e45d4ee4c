// Package guard implements the constructor guard pattern used by domain objects,
// commands and queries to detect zero-value instances that bypassed their
// designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor function.
// Embed it as a private field and set it with NewConstructorGuard inside the
// constructor; a zero-value instance of the enclosing struct then fails Validate.
//
// Example:
//
//	type RenameBoxCommand struct {
//	    boxID string
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRenameBoxCommand(boxID, name string) (RenameBoxCommand, error) {
//	    ...
//	    return RenameBoxCommand{boxID: boxID, name: name, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
