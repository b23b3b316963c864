package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, commands, and queries are only created
// through their designated constructor functions. A zero-value struct embedding a
// zero-value guard fails validation, which catches bypassed constructors before
// any business logic runs on an unvalidated object.
//
// Example usage:
//
//	type CreateDishCommand struct {
//	    data  map[string]any
//	    guard ConstructorGuard
//	}
//
//	func NewCreateDishCommand(data map[string]any) CreateDishCommand {
//	    return CreateDishCommand{data: data, guard: NewConstructorGuard()}
//	}
//
//	func (c CreateDishCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// This should be called in the constructor of the guarded object.
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
